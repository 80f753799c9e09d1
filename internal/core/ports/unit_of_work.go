package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork per command, isolating
// concurrent operations from each other.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is the transaction boundary of one command. Repository writes
// performed between Begin and Commit apply atomically; Rollback discards them.
// Commit is always the last action of a command, so an aborted command leaves
// no partial write behind.
type UnitOfWork interface {
	// Begin starts the transaction.
	Begin(ctx context.Context) error

	// Commit durably applies all staged changes, all-or-nothing.
	Commit(ctx context.Context) error

	// Rollback discards staged changes. Safe to defer after Begin.
	Rollback(ctx context.Context) error

	// OrderRepository returns a repository bound to the current transaction.
	OrderRepository() OrderRepository
}
