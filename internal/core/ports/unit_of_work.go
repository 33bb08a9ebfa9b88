package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork per request or command so
// concurrent operations never share transaction state.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is the business transaction boundary. Callers drive the
// lifecycle explicitly: Begin, do repository work, Commit, with Rollback
// deferred as the safety net.
type UnitOfWork interface {
	// Begin starts a database transaction. Calling it again while a
	// transaction is active is a no-op.
	Begin(ctx context.Context) error

	// Commit commits the active transaction, erroring when none is active.
	Commit(ctx context.Context) error

	// Rollback aborts the active transaction, erroring when none is active.
	Rollback(ctx context.Context) error

	// ShipmentRepository returns a repository bound to the transaction
	// started by Begin, or to the bare connection before Begin is called.
	ShipmentRepository() ShipmentRepository
}
