package order

import (
	"fmt"

	"bookstore/internal/pkg/errs"
)

// Status represents the lifecycle state of a shopping order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct business workflow.
//
// State transitions:
//
//	Pending ──> Confirmed ──> Shipped ──> Delivered
//	   │            │
//	   └────────────┴──> Cancelled
//
// Delivered and Cancelled are terminal. Cancellation is only reachable while
// the order has not shipped; it is the one transition with an inventory side
// effect (reserved copies return to stock).
//
// Status is persisted by its string label to match the order's status column.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status, set when a checkout commit creates the order.
	Pending

	// Confirmed indicates the order has been accepted for fulfilment.
	Confirmed

	// Shipped indicates the order has left the warehouse.
	// Cancellation is no longer possible.
	Shipped

	// Delivered is the terminal success state.
	Delivered

	// Cancelled is the terminal failure state, reachable from Pending and
	// Confirmed only. Entering it releases the order's reserved stock.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "UNKNOWN",
		Pending:   "PENDING",
		Confirmed: "CONFIRMED",
		Shipped:   "SHIPPED",
		Delivered: "DELIVERED",
		Cancelled: "CANCELLED",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "PENDING",
		Confirmed: "CONFIRMED",
		Shipped:   "SHIPPED",
		Delivered: "DELIVERED",
		Cancelled: "CANCELLED",
	}
}

// transitions is the full legal-edge table of the state machine.
// Absence means the edge is illegal.
func transitions() map[Status][]Status {
	return map[Status][]Status{
		Pending:   {Confirmed, Cancelled},
		Confirmed: {Shipped, Cancelled},
		Shipped:   {Delivered},
		Delivered: {},
		Cancelled: {},
	}
}

// StatusFromString parses the persistence/wire label of a status.
// Returns an error for unrecognized labels, including "UNKNOWN".
func StatusFromString(s string) (Status, error) {
	for status, label := range getValidStatusStrings() {
		if label == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid status", s),
	)
}

// Validate checks if the Status value is one of the five legal states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// String returns the persistence label of the status.
// Implements fmt.Stringer and is safe on any value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// CanTransitionTo reports whether the edge from s to target is legal.
func (s Status) CanTransitionTo(target Status) bool {
	for _, next := range transitions()[s] {
		if next == target {
			return true
		}
	}
	return false
}

// TransitionTo validates the edge from s to target and returns the new status.
//
// Returns:
//   - (target, nil) on a legal transition
//   - (Unknown, *InvalidStatusTransitionError) otherwise; the error carries
//     both endpoints for diagnostics
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return Unknown, NewInvalidStatusTransitionError(s, target.String())
	}
	if !s.CanTransitionTo(target) {
		return Unknown, NewInvalidStatusTransitionError(s, target.String())
	}
	return target, nil
}
