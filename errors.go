package localcache

import "fmt"

// SourceError indicates that a catalog source failed to load a string id.
type SourceError struct {
	ID    string
	Cause error
}

func (e *SourceError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("source error for %q: %v", e.ID, e.Cause)
	}
	return fmt.Sprintf("source error for %q", e.ID)
}

func (e *SourceError) Unwrap() error {
	return e.Cause
}

// UnknownIDError indicates that neither the static entries nor the source
// know the requested string id.
type UnknownIDError struct {
	ID string
}

func (e *UnknownIDError) Error() string {
	return fmt.Sprintf("unknown string id %q", e.ID)
}
