package order

import (
	"errors"
	"time"

	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory functions.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
)

// Order represents a placed shopping order. It is the aggregate root that
// manages the order lifecycle from checkout commit through delivery or
// cancellation.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and owning user
//   - Customer contact data is a validated snapshot, not a user reference
//   - Must have at least one line; lines are immutable after creation
//   - Shipping and taxes amounts are never negative
//   - order_amount always equals the sum of line subtotals plus shipping and taxes
//   - Status transitions follow the table in Status
//   - Can only be created through NewOrder or RestoreOrder
type Order struct {
	id       kernel.UUID
	userID   kernel.UUID
	customer Customer

	shippingMethod string
	shippingAmount kernel.Cents
	taxesAmount    kernel.Cents
	orderAmount    kernel.Cents

	status    Status
	lines     []Line
	createdAt time.Time

	isConstructed bool
}

// NewOrder creates an order at checkout commit time. The order starts in
// Pending status and its order_amount is computed as the sum of line
// subtotals plus shipping and taxes.
func NewOrder(
	id kernel.UUID,
	userID kernel.UUID,
	customer Customer,
	shippingMethod string,
	shippingAmount kernel.Cents,
	taxesAmount kernel.Cents,
	lines []Line,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setUserID(userID),
		o.setCustomer(customer),
		o.setShipping(shippingMethod, shippingAmount),
		o.setTaxes(taxesAmount),
		o.setLines(lines),
		o.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	o.orderAmount = o.computeAmount()
	return o, nil
}

// RestoreOrder reconstructs an Order from persisted state, re-running all
// invariant checks including the amount equation. Repositories use it when
// mapping database rows back into the domain.
func RestoreOrder(
	id kernel.UUID,
	userID kernel.UUID,
	customer Customer,
	shippingMethod string,
	shippingAmount kernel.Cents,
	taxesAmount kernel.Cents,
	orderAmount kernel.Cents,
	status Status,
	lines []Line,
	createdAt time.Time,
) (*Order, error) {
	o, err := NewOrder(id, userID, customer, shippingMethod, shippingAmount, taxesAmount, lines, createdAt)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	o.status = status

	if orderAmount != o.computeAmount() {
		return nil, errs.NewValueIsInvalidError("order amount does not match lines plus shipping and taxes")
	}
	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID { return o.id }

// UserID returns the identifier of the user who placed the order.
func (o *Order) UserID() kernel.UUID { return o.userID }

// Customer returns the contact snapshot taken at commit time.
func (o *Order) Customer() Customer { return o.customer }

// ShippingMethod returns the chosen shipping method label.
func (o *Order) ShippingMethod() string { return o.shippingMethod }

// ShippingAmount returns the shipping fee.
func (o *Order) ShippingAmount() kernel.Cents { return o.shippingAmount }

// TaxesAmount returns the taxes charged on the order.
func (o *Order) TaxesAmount() kernel.Cents { return o.taxesAmount }

// OrderAmount returns the total charged: lines plus shipping plus taxes.
func (o *Order) OrderAmount() kernel.Cents { return o.orderAmount }

// Status returns the current lifecycle status.
func (o *Order) Status() Status { return o.status }

// Lines returns a copy of the order lines.
func (o *Order) Lines() []Line {
	lines := make([]Line, len(o.lines))
	copy(lines, o.lines)
	return lines
}

// CreatedAt returns the commit timestamp.
func (o *Order) CreatedAt() time.Time { return o.createdAt }

// TransitionTo moves the order along one edge of the status state machine.
//
// On an illegal edge the order is left untouched and an
// *InvalidStatusTransitionError carrying both endpoints is returned.
//
// Transitioning into Cancelled means the copies reserved by this order's
// lines must be returned to stock in the same transaction as the status
// write; the command handler owns that side effect and uses Lines() to
// drive it.
func (o *Order) TransitionTo(target Status) error {
	newStatus, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

func (o *Order) computeAmount() kernel.Cents {
	total := o.shippingAmount.Add(o.taxesAmount)
	for _, line := range o.lines {
		total = total.Add(line.Subtotal())
	}
	return total
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	o.userID = userID
	return nil
}

func (o *Order) setCustomer(customer Customer) error {
	if err := customer.Validate(); err != nil {
		return err
	}
	o.customer = customer
	return nil
}

func (o *Order) setShipping(method string, amount kernel.Cents) error {
	if method == "" {
		return errs.NewValueIsRequiredError("shipping method")
	}
	if err := amount.Validate(); err != nil {
		return err
	}
	o.shippingMethod = method
	o.shippingAmount = amount
	return nil
}

func (o *Order) setTaxes(amount kernel.Cents) error {
	if err := amount.Validate(); err != nil {
		return err
	}
	o.taxesAmount = amount
	return nil
}

func (o *Order) setLines(lines []Line) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("order lines")
	}
	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return err
		}
	}
	o.lines = make([]Line, len(lines))
	copy(o.lines, lines)
	return nil
}

func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("created at")
	}
	o.createdAt = createdAt
	return nil
}
