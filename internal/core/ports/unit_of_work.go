package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// It provides transaction control and tracks aggregate changes.
// Client code must explicitly manage transaction lifecycle.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// BookRepository returns a BookRepository bound to the current transaction.
	BookRepository() BookRepository

	// OrderRepository returns an OrderRepository bound to the current transaction.
	OrderRepository() OrderRepository

	// CartRepository returns a CartRepository bound to the current transaction.
	CartRepository() CartRepository

	// CheckoutRepository returns a CheckoutRepository bound to the current transaction.
	CheckoutRepository() CheckoutRepository

	// NewsletterRepository returns a NewsletterRepository bound to the current transaction.
	NewsletterRepository() NewsletterRepository

	// UserRepository returns a UserRepository bound to the current transaction.
	UserRepository() UserRepository
}
