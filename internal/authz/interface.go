// Package authz decides whether a caller may perform platform-level actions.
//
//go:generate mockgen -package mockauthz -source=interface.go -destination=mock/mockauthz.go *
package authz

import (
	"catalog/pkg/domain"
	"context"
)

// Authorizer answers privilege questions about a session.
type Authorizer interface {
	// CanManageDomains reports whether session holds the MANAGE_DOMAINS privilege.
	CanManageDomains(ctx context.Context, session domain.Session) bool
}
