package domain

import "time"

// DomainProperties are the descriptive attributes of a domain.
type DomainProperties struct {
	// Name is the human-readable display name.
	Name string `json:"name"`
	// Description is free-form documentation of what the domain groups.
	Description string `json:"description,omitempty"`
	// Owners lists the actors responsible for the domain.
	Owners []Urn `json:"owners,omitempty"`
}

// Domain is a fully hydrated organizational grouping of metadata assets.
type Domain struct {
	// Urn uniquely identifies the domain.
	Urn Urn `json:"urn"`
	// Properties carries the name, description and ownership of the domain.
	Properties DomainProperties `json:"properties"`

	// CreatedAt is the time when the domain was first stored.
	CreatedAt time.Time `json:"createdAt"`
	// UpdatedAt is the time of the last change; zero value means never updated.
	UpdatedAt time.Time `json:"updatedAt"`
}

// DomainStub is the identifier-only projection of a domain returned by list
// operations. It carries no name, description or ownership; a
// batch resolver turns a sequence of stubs into hydrated Domain values.
type DomainStub struct {
	// ID is the URN of the domain exactly as the entity store returned it.
	ID Urn
	// Kind is always EntityTypeDomain.
	Kind EntityType
}

// NewDomainStub returns an unresolved domain for the given URN.
func NewDomainStub(id Urn) DomainStub {
	return DomainStub{ID: id, Kind: EntityTypeDomain}
}
