// Package newsletter contains the mailing list subscription entity.
// Email uniqueness is enforced by the storage layer.
package newsletter

import (
	"errors"
	"fmt"
	"net/mail"
	"time"

	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/pkg/errs"
)

var ErrSubscriptionIsNotConstructed = fmt.Errorf("subscription is not constructed")

// Subscription is a single mailing list entry.
type Subscription struct {
	id            kernel.UUID
	email         string
	subscribedAt  time.Time
	isConstructed bool
}

func NewSubscription(id kernel.UUID, email string, subscribedAt time.Time) (*Subscription, error) {
	subscription := &Subscription{isConstructed: true}
	err := errors.Join(
		subscription.setID(id),
		subscription.setEmail(email),
		subscription.setSubscribedAt(subscribedAt),
	)
	if err != nil {
		return nil, err
	}
	return subscription, nil
}

func (s *Subscription) ID() kernel.UUID { return s.id }

func (s *Subscription) Email() string { return s.email }

func (s *Subscription) SubscribedAt() time.Time { return s.subscribedAt }

func (s *Subscription) Validate() error {
	if !s.isConstructed {
		return ErrSubscriptionIsNotConstructed
	}
	return nil
}

func (s *Subscription) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("id", err)
	}
	s.id = id
	return nil
}

func (s *Subscription) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("email", err)
	}
	s.email = email
	return nil
}

func (s *Subscription) setSubscribedAt(subscribedAt time.Time) error {
	if subscribedAt.IsZero() {
		return errs.NewValueIsRequiredError("subscribedAt")
	}
	s.subscribedAt = subscribedAt
	return nil
}
