package domain_test

import (
	"catalog/pkg/domain"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseUrn(t *testing.T) {
	cases := []struct {
		name     string
		in       string
		wantType domain.EntityType
		ok       bool
	}{
		{name: "corpuser", in: "urn:li:corpuser:alice", wantType: domain.EntityTypeCorpUser, ok: true},
		{name: "domain with colon in key", in: "urn:li:domain:eng:platform", wantType: domain.EntityTypeDomain, ok: true},
		{name: "missing prefix", in: "urn:domain:eng"},
		{name: "missing key", in: "urn:li:domain:"},
		{name: "no key separator", in: "urn:li:domain"},
		{name: "unknown entity", in: "urn:li:dataset:x"},
		{name: "empty", in: ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			urn, entityType, err := domain.ParseUrn(tc.in)
			if !tc.ok {
				require.Error(t, err)

				return
			}
			require.NoError(t, err)
			require.Equal(t, domain.Urn(tc.in), urn)
			require.Equal(t, tc.wantType, entityType)
		})
	}
}

func TestNewUrn(t *testing.T) {
	require.Equal(t, domain.Urn("urn:li:domain:sales"), domain.NewUrn(domain.EntityTypeDomain, "sales"))
	require.Equal(t, domain.Urn("urn:li:corpuser:bob"), domain.NewUrn(domain.EntityTypeCorpUser, "bob"))
}

func TestNewDomainStub(t *testing.T) {
	stub := domain.NewDomainStub("urn:domain:eng")
	require.Equal(t, domain.DomainStub{ID: "urn:domain:eng", Kind: domain.EntityTypeDomain}, stub)
}
