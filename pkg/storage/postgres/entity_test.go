package postgres_test

import (
	"catalog/pkg/domain"
	"catalog/pkg/storage"
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func sampleDomain(key, name string) domain.Domain {
	return domain.Domain{
		Urn: domain.NewUrn(domain.EntityTypeDomain, key),
		Properties: domain.DomainProperties{
			Name:        name,
			Description: name + " assets",
			Owners:      []domain.Urn{"urn:li:corpuser:alice"},
		},
	}
}

func TestPgSQL_StoreDomains(t *testing.T) {
	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	t.Run("store and return rows", func(t *testing.T) {
		res, err := pgSQL.StoreDomains(ctx, sampleDomain("eng", "Engineering"), sampleDomain("sales", "Sales"))
		require.NoError(t, err)
		require.Len(t, res, 2)
		require.Equal(t, "Engineering", res[0].Properties.Name)
		require.False(t, res[0].CreatedAt.IsZero())
		require.True(t, res[0].UpdatedAt.IsZero())
	})

	t.Run("upsert replaces properties", func(t *testing.T) {
		res, err := pgSQL.StoreDomains(ctx, sampleDomain("eng", "Platform Engineering"))
		require.NoError(t, err)
		require.Len(t, res, 1)
		require.Equal(t, "Platform Engineering", res[0].Properties.Name)
		require.False(t, res[0].UpdatedAt.IsZero())
	})

	t.Run("store nothing", func(t *testing.T) {
		res, err := pgSQL.StoreDomains(ctx)
		require.NoError(t, err)
		require.Empty(t, res)
	})
}

func TestPgSQL_ListEntities_Pagination(t *testing.T) {
	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	for i := range 5 {
		_, err := pgSQL.StoreDomains(ctx, sampleDomain(fmt.Sprintf("d%d", i), fmt.Sprintf("Domain %d", i)))
		require.NoError(t, err)
	}

	page, err := pgSQL.ListEntities(ctx, domain.EntityTypeDomain, storage.Filter{}, 0, 2)
	require.NoError(t, err)
	require.Equal(t, storage.EntityPage{
		Start: 0,
		Count: 2,
		Total: 5,
		Urns:  []domain.Urn{"urn:li:domain:d0", "urn:li:domain:d1"},
	}, page)

	// last page is short but still echoes the requested count
	page, err = pgSQL.ListEntities(ctx, domain.EntityTypeDomain, storage.Filter{}, 4, 2)
	require.NoError(t, err)
	require.Equal(t, 2, page.Count)
	require.Equal(t, 5, page.Total)
	require.Equal(t, []domain.Urn{"urn:li:domain:d4"}, page.Urns)

	// past the end
	page, err = pgSQL.ListEntities(ctx, domain.EntityTypeDomain, storage.Filter{}, 10, 2)
	require.NoError(t, err)
	require.Empty(t, page.Urns)
	require.Equal(t, 5, page.Total)

	// zero count returns only the total
	page, err = pgSQL.ListEntities(ctx, domain.EntityTypeDomain, storage.Filter{}, 0, 0)
	require.NoError(t, err)
	require.Empty(t, page.Urns)
	require.Equal(t, 5, page.Total)

	// other types are not mixed in
	page, err = pgSQL.ListEntities(ctx, domain.EntityTypeCorpUser, storage.Filter{}, 0, 20)
	require.NoError(t, err)
	require.Zero(t, page.Total)
}

func TestPgSQL_ListEntities_Filter(t *testing.T) {
	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	_, err := pgSQL.StoreDomains(ctx, sampleDomain("eng", "Engineering"), sampleDomain("sales", "Sales"))
	require.NoError(t, err)

	page, err := pgSQL.ListEntities(ctx, domain.EntityTypeDomain, storage.Filter{"name": "Sales"}, 0, 20)
	require.NoError(t, err)
	require.Equal(t, 1, page.Total)
	require.Equal(t, []domain.Urn{"urn:li:domain:sales"}, page.Urns)
}

func TestPgSQL_ListEntities_InvalidPage(t *testing.T) {
	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	_, err := pgSQL.ListEntities(ctx, domain.EntityTypeDomain, nil, -1, 20)
	require.ErrorIs(t, err, storage.ErrInvalidPage)

	_, err = pgSQL.ListEntities(ctx, domain.EntityTypeDomain, nil, 0, -5)
	require.ErrorIs(t, err, storage.ErrInvalidPage)
}

func TestPgSQL_DomainsByUrn(t *testing.T) {
	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	_, err := pgSQL.StoreDomains(ctx, sampleDomain("eng", "Engineering"), sampleDomain("sales", "Sales"))
	require.NoError(t, err)

	res, err := pgSQL.DomainsByUrn(ctx, "urn:li:domain:sales", "urn:li:domain:missing")
	require.NoError(t, err)
	require.Len(t, res, 1)
	require.Equal(t, domain.Urn("urn:li:domain:sales"), res[0].Urn)
	require.Equal(t, []domain.Urn{"urn:li:corpuser:alice"}, res[0].Properties.Owners)

	res, err = pgSQL.DomainsByUrn(ctx)
	require.NoError(t, err)
	require.Empty(t, res)
}
