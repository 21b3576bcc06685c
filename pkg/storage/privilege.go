package storage

import (
	"catalog/pkg/domain"
	"context"
)

// PrivilegeStorage persists the platform privileges granted to actors.
//
//go:generate mockgen -package mockstorage -source=privilege.go -destination=mock/mockprivilege.go *
type PrivilegeStorage interface {
	// ActorPrivileges returns every privilege granted to actor.
	ActorPrivileges(ctx context.Context, actor domain.Urn) ([]domain.Privilege, error)
	// GrantPrivileges grants privileges to actor. Granting an already held
	// privilege is a no-op.
	GrantPrivileges(ctx context.Context, actor domain.Urn, privileges ...domain.Privilege) error
}
