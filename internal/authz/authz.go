package authz

import (
	"catalog/internal/config"
	"catalog/pkg/domain"
	"catalog/pkg/logger"
	"catalog/pkg/storage"
	"context"
	"slices"

	"go.uber.org/zap"
)

// Options configures the privilege-based authorizer.
type Options struct {
	// SuperUsers hold every privilege regardless of grants.
	SuperUsers []domain.Urn
}

// NewOptions builds Options from the application config.
func NewOptions(cfg *config.Config) Options {
	superUsers := make([]domain.Urn, 0, len(cfg.Authz.SuperUsers))
	for _, u := range cfg.Authz.SuperUsers {
		superUsers = append(superUsers, domain.Urn(u))
	}

	return Options{SuperUsers: superUsers}
}

type privileges struct {
	storage storage.PrivilegeStorage
	options Options
}

var _ Authorizer = (*privileges)(nil)

// New returns an Authorizer backed by the privileges granted in s.
func New(s storage.PrivilegeStorage, options Options) Authorizer {
	return &privileges{storage: s, options: options}
}

func (p *privileges) CanManageDomains(ctx context.Context, session domain.Session) bool {
	return p.holds(ctx, session, domain.PrivilegeManageDomains)
}

// holds fails closed: a lookup error denies the privilege.
func (p *privileges) holds(ctx context.Context, session domain.Session, privilege domain.Privilege) bool {
	if !session.Authenticated || session.Actor == "" {
		return false
	}
	if slices.Contains(p.options.SuperUsers, session.Actor) {
		return true
	}

	granted, err := p.storage.ActorPrivileges(ctx, session.Actor)
	if err != nil {
		logger.Error(ctx, "could not load actor privileges",
			zap.Stringer("actor", session.Actor), zap.Error(err))

		return false
	}

	return slices.Contains(granted, privilege)
}
