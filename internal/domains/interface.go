// Package domains lists and resolves the domains of the catalog.
//
//go:generate mockgen -package mockdomains -source=interface.go -destination=mock/mockdomains.go *
package domains

import (
	"catalog/pkg/async"
	"catalog/pkg/domain"
	"context"
)

// ListRequest selects a page of domains. A nil field takes its default.
type ListRequest struct {
	// Start is the offset of the first domain to return.
	Start *int
	// Count is the maximum number of domains to return.
	Count *int
}

// ListResult is one page of unresolved domains. Start, Count and Total are
// reported by the entity store as-is.
type ListResult struct {
	Start   int
	Count   int
	Total   int
	Domains []domain.DomainStub
}

// Lister lists the domains visible to a session.
type Lister interface {
	// List runs the whole listing as one asynchronous unit of work. Failures
	// are reported only through the returned future: serrors.ErrForbidden when
	// the session may not manage domains, serrors.ErrListFailed when the entity
	// store fails.
	List(ctx context.Context, session domain.Session, req ListRequest) *async.Future[ListResult]
}

// BatchResolver hydrates domain stubs into full domains.
type BatchResolver interface {
	// Resolve returns one entry per stub, in order. Stubs whose domain does not
	// exist resolve to nil.
	Resolve(ctx context.Context, stubs []domain.DomainStub) ([]*domain.Domain, error)
}
