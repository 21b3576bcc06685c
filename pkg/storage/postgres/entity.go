package postgres

import (
	"catalog/pkg/domain"
	"catalog/pkg/storage"
	"context"
	"fmt"

	"github.com/doug-martin/goqu/v9"
)

const (
	entitiesTable = "entities"
)

// ListEntities returns one page of URNs of the given type ordered by urn.
// Count on the returned page echoes the requested count; Total is computed
// with a separate COUNT over the same predicate.
func (p *PgSQL) ListEntities(ctx context.Context,
	entityType domain.EntityType,
	filter storage.Filter,
	start, count int) (storage.EntityPage, error) {
	if start < 0 || count < 0 {
		return storage.EntityPage{}, storage.ErrInvalidPage
	}

	w := []goqu.Expression{
		goqu.I("entity_type").Eq(string(entityType)),
	}
	for _, k := range filter.Keys() {
		w = append(w, goqu.L("properties->>?", k).Eq(filter[k]))
	}

	total, err := p.Builder.From(entitiesTable).Where(w...).CountContext(ctx)
	if err != nil {
		return storage.EntityPage{}, fmt.Errorf("could not count entities in pg: %w", err)
	}

	page := storage.EntityPage{
		Start: start,
		Count: count,
		Total: int(total),
		Urns:  []domain.Urn{},
	}
	// goqu treats a zero limit as no limit at all
	if count == 0 {
		return page, nil
	}

	var urns []string
	if err := p.Builder.From(entitiesTable).
		Select("urn").
		Where(w...).
		Order(goqu.I("urn").Asc()).
		Offset(uint(start)).
		Limit(uint(count)).
		ScanValsContext(ctx, &urns); err != nil {
		return storage.EntityPage{}, fmt.Errorf("could not list entities from pg: %w", err)
	}

	for _, u := range urns {
		page.Urns = append(page.Urns, domain.Urn(u))
	}

	return page, nil
}

// DomainsByUrn fetches the domains with the given URNs, skipping unknown ones.
func (p *PgSQL) DomainsByUrn(ctx context.Context, urns ...domain.Urn) ([]domain.Domain, error) {
	if len(urns) == 0 {
		return nil, nil
	}

	keys := make([]string, len(urns))
	for i, u := range urns {
		keys[i] = string(u)
	}

	var rows []PgEntity
	if err := p.Builder.From(entitiesTable).
		Where(
			goqu.I("entity_type").Eq(string(domain.EntityTypeDomain)),
			goqu.I("urn").In(keys),
		).
		ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch domains by urn from pg: %w", err)
	}

	return pgToDomains(rows)
}

// StoreDomains upserts the given domains. On conflict the properties are
// replaced and updated_at is set.
func (p *PgSQL) StoreDomains(ctx context.Context, domains ...domain.Domain) ([]domain.Domain, error) {
	if len(domains) == 0 {
		return nil, nil
	}

	rows, err := domainsToPg(domains)
	if err != nil {
		return nil, err
	}

	var result []PgEntity
	if err := p.Builder.Insert(entitiesTable).
		Rows(rows).
		OnConflict(goqu.DoUpdate("urn", goqu.Record{
			"properties": goqu.L("EXCLUDED.properties"),
			"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		})).
		Returning(&PgEntity{}).
		Executor().ScanStructsContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store domains into pg: %w", err)
	}

	return pgToDomains(result)
}
