package postgres

import (
	"catalog/pkg/domain"
	"context"
	"fmt"

	"github.com/doug-martin/goqu/v9"
)

const (
	actorPrivilegesTable = "actor_privileges"
)

// ActorPrivileges returns the privileges granted to actor, ordered by name.
func (p *PgSQL) ActorPrivileges(ctx context.Context, actor domain.Urn) ([]domain.Privilege, error) {
	var names []string
	if err := p.Builder.From(actorPrivilegesTable).
		Select("privilege").
		Where(goqu.I("actor_urn").Eq(string(actor))).
		Order(goqu.I("privilege").Asc()).
		ScanValsContext(ctx, &names); err != nil {
		return nil, fmt.Errorf("could not fetch actor privileges from pg: %w", err)
	}

	out := make([]domain.Privilege, len(names))
	for i, n := range names {
		out[i] = domain.Privilege(n)
	}

	return out, nil
}

// GrantPrivileges inserts the grants, ignoring ones the actor already holds.
func (p *PgSQL) GrantPrivileges(ctx context.Context, actor domain.Urn, privileges ...domain.Privilege) error {
	if len(privileges) == 0 {
		return nil
	}

	rows := make([]interface{}, len(privileges))
	for i, priv := range privileges {
		rows[i] = goqu.Record{
			"actor_urn": string(actor),
			"privilege": string(priv),
		}
	}

	if _, err := p.Builder.Insert(actorPrivilegesTable).
		Rows(rows...).
		OnConflict(goqu.DoNothing()).
		Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not grant privileges in pg: %w", err)
	}

	return nil
}
