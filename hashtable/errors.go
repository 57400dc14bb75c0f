package hashtable

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidArgument   = errors.New("invalid argument")
	ErrKeyNotFound       = errors.New("key not found")
	ErrAllocationFailure = errors.New("allocation failure")
	ErrDestroyed         = fmt.Errorf("%w: table destroyed", ErrInvalidArgument)
	ErrBudgetExceeded    = errors.New("allocation budget exceeded")
)

// KeyNotFoundError is returned by lookups of absent keys. It keeps its own
// copy of the key.
type KeyNotFoundError struct {
	Key string
}

func (e *KeyNotFoundError) Error() string {
	return fmt.Sprintf("%s: %q", ErrKeyNotFound, e.Key)
}

func (e *KeyNotFoundError) Is(target error) bool {
	return target == ErrKeyNotFound
}
