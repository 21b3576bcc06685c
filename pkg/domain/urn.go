package domain

import (
	"fmt"
	"strings"
)

// UrnPrefix is the scheme and namespace every catalog URN starts with.
const UrnPrefix = "urn:li:"

// Urn is the opaque, globally unique identifier of a catalog entity, e.g.
// "urn:li:domain:engineering". Values produced by the entity store are passed
// through verbatim; only URNs supplied by callers are validated with ParseUrn.
type Urn string

// EntityType tags the kind of catalog entity a URN points to.
type EntityType string

const (
	// EntityTypeDomain is the tag carried by domain entities and domain stubs.
	EntityTypeDomain EntityType = "DOMAIN"
	// EntityTypeCorpUser is the tag carried by user accounts acting on the catalog.
	EntityTypeCorpUser EntityType = "CORP_USER"
)

// urnEntityTypes maps the entity segment of a URN to its EntityType.
var urnEntityTypes = map[string]EntityType{ //nolint: gochecknoglobals
	"domain":   EntityTypeDomain,
	"corpuser": EntityTypeCorpUser,
}

// urnSegments maps an EntityType back to its URN entity segment.
var urnSegments = map[EntityType]string{ //nolint: gochecknoglobals
	EntityTypeDomain:   "domain",
	EntityTypeCorpUser: "corpuser",
}

// NewUrn builds a URN for the given entity type and key.
func NewUrn(entityType EntityType, key string) Urn {
	return Urn(UrnPrefix + urnSegments[entityType] + ":" + key)
}

// ParseUrn validates raw as "urn:li:<entity>:<key>" for a known entity and
// returns the URN together with its entity type.
func ParseUrn(raw string) (Urn, EntityType, error) {
	rest, ok := strings.CutPrefix(raw, UrnPrefix)
	if !ok {
		return "", "", fmt.Errorf("urn %q does not start with %q", raw, UrnPrefix)
	}

	segment, key, ok := strings.Cut(rest, ":")
	if !ok || key == "" {
		return "", "", fmt.Errorf("urn %q has no entity key", raw)
	}

	entityType, ok := urnEntityTypes[segment]
	if !ok {
		return "", "", fmt.Errorf("urn %q has unknown entity type %q", raw, segment)
	}

	return Urn(raw), entityType, nil
}

// String implements fmt.Stringer.
func (u Urn) String() string { return string(u) }
