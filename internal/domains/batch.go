package domains

import (
	"catalog/pkg/domain"
	"catalog/pkg/storage"
	"context"
	"fmt"
)

type resolver struct {
	storage storage.EntityStorage
}

var _ BatchResolver = (*resolver)(nil)

// NewBatchResolver returns a BatchResolver that loads domains from s with a
// single query per call.
func NewBatchResolver(s storage.EntityStorage) BatchResolver {
	return &resolver{storage: s}
}

func (r *resolver) Resolve(ctx context.Context, stubs []domain.DomainStub) ([]*domain.Domain, error) {
	resolved := make([]*domain.Domain, len(stubs))

	urns := make([]domain.Urn, 0, len(stubs))
	seen := make(map[domain.Urn]struct{}, len(stubs))
	for _, stub := range stubs {
		if stub.Kind != domain.EntityTypeDomain {
			continue
		}
		if _, ok := seen[stub.ID]; ok {
			continue
		}
		seen[stub.ID] = struct{}{}
		urns = append(urns, stub.ID)
	}
	if len(urns) == 0 {
		return resolved, nil
	}

	found, err := r.storage.DomainsByUrn(ctx, urns...)
	if err != nil {
		return nil, fmt.Errorf("could not load domains: %w", err)
	}

	byUrn := make(map[domain.Urn]domain.Domain, len(found))
	for _, d := range found {
		byUrn[d.Urn] = d
	}

	for i, stub := range stubs {
		if stub.Kind != domain.EntityTypeDomain {
			continue
		}
		if d, ok := byUrn[stub.ID]; ok {
			resolved[i] = &d
		}
	}

	return resolved, nil
}
