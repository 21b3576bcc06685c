// Package storage defines the persistence interfaces the catalog relies on.
// It abstracts entity and privilege persistence and transaction management so
// that different backends (e.g. PostgreSQL) can provide implementations.
//
//go:generate mockgen -package mockstorage -source=interface.go -destination=mock/mockstorage.go *
package storage

import "context"

// AllStorage is the composite of every domain-specific storage capability.
type AllStorage interface {
	EntityStorage
	PrivilegeStorage
}

// TxStorage is a storage handle bound to a database transaction. It becomes
// unusable after Commit or Rollback.
type TxStorage interface {
	AllStorage

	// Commit finalizes the transaction, persisting all changes.
	Commit() error
	// Rollback aborts the transaction, discarding all uncommitted changes.
	Rollback() error
}

// Storage is a non-transactional storage handle able to start transactions.
type Storage interface {
	AllStorage

	// Close releases the resources held by the implementation (e.g. the
	// connection pool). After Close, the instance should not be used.
	Close() error

	// Begin starts a new transaction.
	Begin(ctx context.Context) (TxStorage, error)
	// WithTx begins a transaction, invokes cb with it, and commits on success
	// or rolls back if cb returns an error.
	WithTx(ctx context.Context, cb func(storage AllStorage) error) error
}
