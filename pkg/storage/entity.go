package storage

import (
	"catalog/pkg/domain"
	"context"
	"maps"
	"slices"
)

// Filter restricts a list to entities whose property equals the given value,
// for every key. An empty Filter matches every entity of the requested type.
type Filter map[string]string

// Keys returns the filter keys in lexical order so generated queries are stable.
func (f Filter) Keys() []string {
	return slices.Sorted(maps.Keys(f))
}

// EntityPage is one window into the ordered set of entities of a type.
type EntityPage struct {
	// Start is the offset of the first URN in Urns.
	Start int
	// Count is the page size that was requested. It may exceed len(Urns) near
	// the end of the data.
	Count int
	// Total is the number of entities matching the query across all pages.
	Total int
	// Urns are the entity identifiers of the page, in store order.
	Urns []domain.Urn
}

// EntityStorage lists entity identifiers and reads and writes domains.
//
//go:generate mockgen -package mockstorage -source=entity.go -destination=mock/mockentity.go *
type EntityStorage interface {
	// ListEntities returns up to count URNs of entities of entityType matching
	// filter, skipping the first start, ordered by URN. ErrInvalidPage is
	// returned for negative arguments.
	ListEntities(ctx context.Context,
		entityType domain.EntityType,
		filter Filter,
		start, count int) (EntityPage, error)
	// DomainsByUrn fetches the domains with the given URNs. URNs that do not
	// exist are skipped; the result order is unspecified.
	DomainsByUrn(ctx context.Context, urns ...domain.Urn) ([]domain.Domain, error)
	// StoreDomains inserts the given domains, replacing the properties of any
	// that already exist, and returns the stored rows.
	StoreDomains(ctx context.Context, domains ...domain.Domain) ([]domain.Domain, error)
}
