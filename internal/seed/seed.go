// Package seed loads domains and privilege grants from a YAML file into storage.
package seed

import (
	"catalog/pkg/domain"
	"catalog/pkg/logger"
	"catalog/pkg/storage"
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/ilyakaznacheev/cleanenv"
	"go.uber.org/zap"
)

// File is the content of a seed file.
//
//	domains:
//	  - key: engineering
//	    name: Engineering
//	    owners: [urn:li:corpuser:alice]
//	grants:
//	  - actor: urn:li:corpuser:alice
//	    privileges: [MANAGE_DOMAINS]
type File struct {
	Domains []Domain `yaml:"domains"`
	Grants  []Grant  `yaml:"grants"`
}

// Domain describes one domain to store. A missing key gets a random UUID.
type Domain struct {
	Key         string   `yaml:"key"`
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Owners      []string `yaml:"owners"`
}

// Grant lists the privileges to grant to an actor.
type Grant struct {
	Actor      string   `yaml:"actor"`
	Privileges []string `yaml:"privileges"`
}

// Result reports what Apply stored.
type Result struct {
	Domains []domain.Domain
	Grants  int
}

// Load reads a seed file.
func Load(path string) (*File, error) {
	var f File
	if err := cleanenv.ReadConfig(path, &f); err != nil {
		return nil, fmt.Errorf("could not read seed file: %w", err)
	}

	return &f, nil
}

func (f *File) domains() ([]domain.Domain, error) {
	out := make([]domain.Domain, 0, len(f.Domains))
	for i, d := range f.Domains {
		if d.Name == "" {
			return nil, fmt.Errorf("domain #%d has no name", i)
		}
		key := d.Key
		if key == "" {
			key = uuid.NewString()
		}

		owners := make([]domain.Urn, 0, len(d.Owners))
		for _, o := range d.Owners {
			urn, entityType, err := domain.ParseUrn(o)
			if err != nil {
				return nil, fmt.Errorf("domain %q: %w", d.Name, err)
			}
			if entityType != domain.EntityTypeCorpUser {
				return nil, fmt.Errorf("domain %q: owner %q is not a user", d.Name, o)
			}
			owners = append(owners, urn)
		}

		out = append(out, domain.Domain{
			Urn: domain.NewUrn(domain.EntityTypeDomain, key),
			Properties: domain.DomainProperties{
				Name:        d.Name,
				Description: d.Description,
				Owners:      owners,
			},
		})
	}

	return out, nil
}

// Apply stores every domain and grant of f in a single transaction.
func (f *File) Apply(ctx context.Context, s storage.Storage) (*Result, error) {
	domains, err := f.domains()
	if err != nil {
		return nil, err
	}

	grants := make(map[domain.Urn][]domain.Privilege, len(f.Grants))
	actors := make([]domain.Urn, 0, len(f.Grants))
	for _, g := range f.Grants {
		actor, entityType, err := domain.ParseUrn(g.Actor)
		if err != nil {
			return nil, fmt.Errorf("grant: %w", err)
		}
		if entityType != domain.EntityTypeCorpUser {
			return nil, fmt.Errorf("grant: actor %q is not a user", g.Actor)
		}
		if _, ok := grants[actor]; !ok {
			actors = append(actors, actor)
		}
		for _, p := range g.Privileges {
			grants[actor] = append(grants[actor], domain.Privilege(p))
		}
	}

	res := &Result{}
	if err := s.WithTx(ctx, func(tx storage.AllStorage) error {
		if len(domains) > 0 {
			stored, err := tx.StoreDomains(ctx, domains...)
			if err != nil {
				return fmt.Errorf("could not store domains: %w", err)
			}
			res.Domains = stored
		}

		for _, actor := range actors {
			if len(grants[actor]) == 0 {
				continue
			}
			if err := tx.GrantPrivileges(ctx, actor, grants[actor]...); err != nil {
				return fmt.Errorf("could not grant privileges to %s: %w", actor, err)
			}
			res.Grants += len(grants[actor])
		}

		return nil
	}); err != nil {
		return nil, err //nolint: wrapcheck
	}

	logger.Info(ctx, "seed applied", zap.Int("domains", len(res.Domains)), zap.Int("grants", res.Grants))

	return res, nil
}
