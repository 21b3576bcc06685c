package postgres

import (
	"catalog/pkg/domain"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"
)

// PgEntity is a row of the entities table.
type PgEntity struct {
	URN        string          `db:"urn"`
	EntityType string          `db:"entity_type"`
	Properties json.RawMessage `db:"properties"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

// ToDomain decodes a DOMAIN row.
func (p *PgEntity) ToDomain() (*domain.Domain, error) {
	var props domain.DomainProperties
	if err := json.Unmarshal(p.Properties, &props); err != nil {
		return nil, fmt.Errorf("could not unmarshal domain properties of %s: %w", p.URN, err)
	}

	return &domain.Domain{
		Urn:        domain.Urn(p.URN),
		Properties: props,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt.Time,
	}, nil
}

// FromDomain encodes d as a DOMAIN row.
func (p *PgEntity) FromDomain(d domain.Domain) error {
	props, err := json.Marshal(d.Properties)
	if err != nil {
		return fmt.Errorf("could not marshal domain properties of %s: %w", d.Urn, err)
	}

	*p = PgEntity{
		URN:        string(d.Urn),
		EntityType: string(domain.EntityTypeDomain),
		Properties: props,
		CreatedAt:  d.CreatedAt,
		UpdatedAt: sql.NullTime{
			Time:  d.UpdatedAt,
			Valid: !d.UpdatedAt.IsZero(),
		},
	}

	return nil
}

func domainsToPg(domains []domain.Domain) ([]PgEntity, error) {
	out := make([]PgEntity, len(domains))
	for i := range out {
		if err := out[i].FromDomain(domains[i]); err != nil {
			return nil, err
		}
	}

	return out, nil
}

func pgToDomains(rows []PgEntity) ([]domain.Domain, error) {
	out := make([]domain.Domain, 0, len(rows))
	for _, row := range rows {
		d, err := row.ToDomain()
		if err != nil {
			return nil, err
		}

		out = append(out, *d)
	}

	return out, nil
}
