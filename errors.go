package favorite

import (
	"errors"
	"fmt"
)

var (
	// ErrNoActor is returned when an operation needs an actor and none was
	// supplied or resolvable.
	ErrNoActor = errors.New("no actor")

	// ErrEmptyFilter guards DeleteWhere against wiping the whole table.
	ErrEmptyFilter = errors.New("empty filter")

	// ErrNoTarget is returned by writes on a target whose type or id is empty.
	ErrNoTarget = errors.New("no target")
)

// UnknownTypeError is returned when a type discriminator has no registered loader.
type UnknownTypeError struct {
	Type string
}

func (e UnknownTypeError) Error() string {
	if e.Type == "" {
		return "unknown entity type"
	}
	return fmt.Sprintf("unknown entity type %q", e.Type)
}

// Is enables errors.Is matching on UnknownTypeError.
func (e UnknownTypeError) Is(target error) bool {
	_, ok := target.(UnknownTypeError)
	if ok {
		return true
	}
	_, ok = target.(*UnknownTypeError)
	return ok
}

// ErrUnknownType is the sentinel for unregistered type discriminators.
var ErrUnknownType = UnknownTypeError{}
