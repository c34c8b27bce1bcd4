package commands

import (
	"errors"

	"bookstore/internal/core/domain/model/book"
	"bookstore/internal/core/domain/model/checkout"
	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/core/domain/model/order"
	"bookstore/internal/pkg/guard"
)

var ErrBeginCheckoutCommandIsNotConstructed = errors.New(
	"BeginCheckoutCommand must be created via NewBeginCheckoutCommand constructor",
)

// BeginCheckoutItem carries one requested line: which book, how many
// copies, and in which format. Format is the persisted label, for
// example "HARDCOVER".
type BeginCheckoutItem struct {
	BookID   kernel.UUID
	Quantity int
	Format   string
}

// BeginCheckoutCommand represents a request to stage a checkout from the
// user's cart. Staging reserves nothing; stock is checked and decremented
// only when the checkout is committed.
type BeginCheckoutCommand struct { //nolint:recvcheck //using for validation
	checkoutID     kernel.UUID
	userID         kernel.UUID
	customer       order.Customer
	shippingMethod string
	items          []checkout.Item

	guard guard.ConstructorGuard
}

// NewBeginCheckoutCommand creates a command to stage a checkout.
func NewBeginCheckoutCommand(checkoutID, userID kernel.UUID, customer order.Customer,
	shippingMethod string, items []BeginCheckoutItem) (BeginCheckoutCommand, error) {
	command := BeginCheckoutCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCheckoutID(checkoutID),
		command.setUserID(userID),
		command.setCustomer(customer),
		command.setShippingMethod(shippingMethod),
		command.setItems(items),
	); err != nil {
		return BeginCheckoutCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c BeginCheckoutCommand) Validate() error {
	return c.guard.Validate(ErrBeginCheckoutCommandIsNotConstructed)
}

// CheckoutID returns the identifier assigned to the staged checkout.
func (c BeginCheckoutCommand) CheckoutID() kernel.UUID {
	return c.checkoutID
}

// UserID returns the identifier of the user checking out.
func (c BeginCheckoutCommand) UserID() kernel.UUID {
	return c.userID
}

// Customer returns the shipping contact snapshot.
func (c BeginCheckoutCommand) Customer() order.Customer {
	return c.customer
}

// ShippingMethod returns the chosen shipping method.
func (c BeginCheckoutCommand) ShippingMethod() string {
	return c.shippingMethod
}

// Items returns the requested lines.
func (c BeginCheckoutCommand) Items() []checkout.Item {
	items := make([]checkout.Item, len(c.items))
	copy(items, c.items)
	return items
}

func (c *BeginCheckoutCommand) setCheckoutID(checkoutID kernel.UUID) error {
	if err := checkoutID.Validate(); err != nil {
		return err
	}

	c.checkoutID = checkoutID
	return nil
}

func (c *BeginCheckoutCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}

func (c *BeginCheckoutCommand) setCustomer(customer order.Customer) error {
	if err := customer.Validate(); err != nil {
		return err
	}

	c.customer = customer
	return nil
}

func (c *BeginCheckoutCommand) setShippingMethod(shippingMethod string) error {
	if shippingMethod == "" {
		return errors.New("shipping method is required")
	}

	c.shippingMethod = shippingMethod
	return nil
}

func (c *BeginCheckoutCommand) setItems(items []BeginCheckoutItem) error {
	if len(items) == 0 {
		return errors.New("at least one item is required")
	}

	parsed := make([]checkout.Item, 0, len(items))
	for _, item := range items {
		format, err := book.FormatFromString(item.Format)
		if err != nil {
			return err
		}
		converted := checkout.Item{
			BookID:   item.BookID,
			Quantity: item.Quantity,
			Format:   format,
		}
		if err = converted.Validate(); err != nil {
			return err
		}
		parsed = append(parsed, converted)
	}

	c.items = parsed
	return nil
}
