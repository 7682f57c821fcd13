package cache

import (
	"errors"
	"fmt"
)

// KeyNotFoundError is returned by Lookup for keys the cache does not hold.
// It is the only error the access path produces; expiry is never reported as
// an error.
type KeyNotFoundError struct {
	Key any
}

func (e *KeyNotFoundError) Error() string {
	return fmt.Sprintf("cache: key not found: %v", e.Key)
}

// IsKeyNotFound reports whether err is a KeyNotFoundError.
func IsKeyNotFound(err error) bool {
	var notFound *KeyNotFoundError
	return errors.As(err, &notFound)
}
