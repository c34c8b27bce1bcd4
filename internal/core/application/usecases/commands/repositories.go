// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"bookstore/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// BookRepoFactory provides access to the book repository within a transaction.
	BookRepoFactory interface {
		BookRepository() ports.BookRepository
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// CartRepoFactory provides access to the cart repository within a transaction.
	CartRepoFactory interface {
		CartRepository() ports.CartRepository
	}

	// CheckoutRepoFactory provides access to the checkout repository within a transaction.
	CheckoutRepoFactory interface {
		CheckoutRepository() ports.CheckoutRepository
	}

	// NewsletterRepoFactory provides access to the newsletter repository within a transaction.
	NewsletterRepoFactory interface {
		NewsletterRepository() ports.NewsletterRepository
	}

	// UserRepoFactory provides access to the user repository within a transaction.
	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	// BookUoW manages transactions for catalog-only operations.
	BookUoW interface {
		TxManager
		BookRepoFactory
	}

	// BookUoWFactory creates new catalog unit of work instances.
	BookUoWFactory interface {
		Create() BookUoW
	}

	// CartUoW manages transactions for cart operations.
	// Cart mutations verify the referenced books exist, so the book
	// repository travels with the cart repository.
	CartUoW interface {
		TxManager
		CartRepoFactory
		BookRepoFactory
	}

	// CartUoWFactory creates new cart unit of work instances.
	CartUoWFactory interface {
		Create() CartUoW
	}

	// CheckoutUoW manages transactions for staging a checkout from a cart.
	CheckoutUoW interface {
		TxManager
		CartRepoFactory
		CheckoutRepoFactory
		BookRepoFactory
	}

	// CheckoutUoWFactory creates new checkout staging unit of work instances.
	CheckoutUoWFactory interface {
		Create() CheckoutUoW
	}

	// CommitCheckoutUoW manages the transaction that turns a staged checkout
	// into a placed order: lock stock, decrement it, write the order, drop
	// the staging row and the cart.
	CommitCheckoutUoW interface {
		TxManager
		CheckoutRepoFactory
		BookRepoFactory
		OrderRepoFactory
		CartRepoFactory
	}

	// CommitCheckoutUoWFactory creates new commit unit of work instances.
	CommitCheckoutUoWFactory interface {
		Create() CommitCheckoutUoW
	}

	// OrderUoW manages transactions for order status changes.
	// Cancellations release stock, so the book repository travels with
	// the order repository.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		BookRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// NewsletterUoW manages transactions for mailing list operations.
	NewsletterUoW interface {
		TxManager
		NewsletterRepoFactory
	}

	// NewsletterUoWFactory creates new mailing list unit of work instances.
	NewsletterUoWFactory interface {
		Create() NewsletterUoW
	}

	// UserUoW manages transactions for account operations.
	UserUoW interface {
		TxManager
		UserRepoFactory
	}

	// UserUoWFactory creates new account unit of work instances.
	UserUoWFactory interface {
		Create() UserUoW
	}

	// CheckoutSweepUoW manages transactions for the abandoned checkout sweep.
	CheckoutSweepUoW interface {
		TxManager
		CheckoutRepoFactory
	}

	// CheckoutSweepUoWFactory creates new sweep unit of work instances.
	CheckoutSweepUoWFactory interface {
		Create() CheckoutSweepUoW
	}
)
