package domain

import (
	"errors"
	"fmt"
)

// NotFoundError is returned when a user, article or post does not exist.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e NotFoundError) Error() string {
	switch {
	case e.Resource == "":
		return "not found"
	case e.ID == "":
		return fmt.Sprintf("%s not found", e.Resource)
	default:
		return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
	}
}

func (e NotFoundError) Is(target error) bool {
	switch target.(type) {
	case NotFoundError, *NotFoundError:
		return true
	}
	return false
}

var ErrNotFound = NotFoundError{}

// InvalidInputError rejects a request field before it reaches storage.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e InvalidInputError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e InvalidInputError) Is(target error) bool {
	switch target.(type) {
	case InvalidInputError, *InvalidInputError:
		return true
	}
	return false
}

var ErrInvalidInput = InvalidInputError{}

// ErrActorMismatch rejects acting on behalf of someone other than the
// authenticated actor.
var ErrActorMismatch = errors.New("actor does not match the authenticated actor")
