// Package order provides domain entities and business logic for order
// management in the bookstore. It implements the ShoppingOrder aggregate root
// with lifecycle management and state transitions.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, amounts, lines, and lifecycle
//   - Status: A state machine that enforces valid order status transitions
//   - Customer: The contact snapshot copied onto the order at checkout commit
//   - Line: An immutable order line holding book, quantity, format and unit price
//
// Key business rules:
//   - Order status follows a defined workflow:
//     Pending -> Confirmed -> Shipped -> Delivered, with cancellation allowed
//     from Pending and Confirmed only
//   - Illegal transitions fail with InvalidStatusTransitionError and mutate nothing
//   - Customer contact data is a copy taken at commit time, not a live user
//     reference; later profile edits never alter historical orders
//   - Lines are immutable after the order is created
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
