// Package user contains the account aggregate.
//
// Passwords are stored only as bcrypt hashes. Role controls access to staff
// and administrative operations; Active gates login for suspended accounts.
package user

import (
	"errors"
	"fmt"
	"net/mail"
	"time"

	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/pkg/errs"

	"golang.org/x/crypto/bcrypt"
)

var ErrUserIsNotConstructed = fmt.Errorf("user is not constructed")

var ErrInvalidCredentials = fmt.Errorf("invalid credentials")

// User is a registered account.
type User struct {
	id            kernel.UUID
	email         string
	name          string
	passwordHash  string
	role          Role
	active        bool
	createdAt     time.Time
	isConstructed bool
}

// NewUser registers an account with the given plain-text password. The
// password is hashed before it is stored.
func NewUser(id kernel.UUID, email string, name string, password string, role Role,
	createdAt time.Time) (*User, error) {
	if len(password) < 8 {
		return nil, errs.NewValueIsInvalidError("password must be at least 8 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("password", err)
	}

	user := &User{isConstructed: true, active: true}
	err = errors.Join(
		user.setID(id),
		user.setEmail(email),
		user.setName(name),
		user.setPasswordHash(string(hash)),
		user.setRole(role),
		user.setCreatedAt(createdAt),
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// RestoreUser rebuilds an account from persisted state.
func RestoreUser(id kernel.UUID, email string, name string, passwordHash string, role Role,
	active bool, createdAt time.Time) (*User, error) {
	user := &User{isConstructed: true, active: active}
	err := errors.Join(
		user.setID(id),
		user.setEmail(email),
		user.setName(name),
		user.setPasswordHash(passwordHash),
		user.setRole(role),
		user.setCreatedAt(createdAt),
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (u *User) ID() kernel.UUID { return u.id }

func (u *User) Email() string { return u.email }

func (u *User) Name() string { return u.name }

func (u *User) PasswordHash() string { return u.passwordHash }

func (u *User) Role() Role { return u.role }

func (u *User) IsActive() bool { return u.active }

func (u *User) CreatedAt() time.Time { return u.createdAt }

func (u *User) IsEqual(other *User) bool {
	return u.id.IsEqual(other.id)
}

// CheckPassword compares a candidate password against the stored hash.
// Suspended accounts always fail.
func (u *User) CheckPassword(password string) error {
	if err := u.Validate(); err != nil {
		return err
	}
	if !u.active {
		return ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.passwordHash), []byte(password)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

// ToggleActive suspends an active account or reinstates a suspended one.
func (u *User) ToggleActive() error {
	if err := u.Validate(); err != nil {
		return err
	}
	u.active = !u.active
	return nil
}

func (u *User) Validate() error {
	if !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("id", err)
	}
	u.id = id
	return nil
}

func (u *User) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("email", err)
	}
	u.email = email
	return nil
}

func (u *User) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	u.name = name
	return nil
}

func (u *User) setPasswordHash(hash string) error {
	if hash == "" {
		return errs.NewValueIsRequiredError("passwordHash")
	}
	u.passwordHash = hash
	return nil
}

func (u *User) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	u.role = role
	return nil
}

func (u *User) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	u.createdAt = createdAt
	return nil
}
