package services

import (
	"errors"
	"fmt"
)

// ErrEmptyCart is returned by checkout when the user has no active cart
// or the active cart holds no items.
var ErrEmptyCart = errors.New("cannot complete an empty cart")

// ErrEmailTaken is returned on registration with an already used email.
var ErrEmailTaken = errors.New("email already registered")

// ErrInvalidCredentials is returned on login with a wrong email or password.
var ErrInvalidCredentials = errors.New("invalid email or password")

// NotFoundError reports an id-based lookup that resolved to nothing.
type NotFoundError struct {
	Entity string
	Key    any
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %v not found", e.Entity, e.Key)
}

// IsNotFound reports whether err wraps a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
