package reach

import (
	"errors"
	"fmt"
)

// Standard sentinel errors.
var (
	// ErrNodeNotFound is returned when a reachability query touches an id
	// that is not a node of the cached graph. It usually means a mutation
	// happened without the matching invalidation call, leaving the cache
	// stale.
	ErrNodeNotFound = errors.New("reach: node not found")

	// ErrSourceUnavailable is returned when a source cannot be read while
	// building a graph.
	ErrSourceUnavailable = errors.New("reach: source unavailable")
)

// NodeNotFoundError reports that an id was looked up in a graph that has no
// node for it.
type NodeNotFoundError struct {
	id ID
}

// Error returns the error string.
func (e *NodeNotFoundError) Error() string {
	return fmt.Sprintf("reach: node %d not found in graph", e.id)
}

// Is reports whether the target error matches NodeNotFoundError.
// This allows errors.Is(err, ErrNodeNotFound) to return true.
func (e *NodeNotFoundError) Is(err error) bool {
	return err == ErrNodeNotFound
}

// NodeID returns the id that was looked up.
func (e *NodeNotFoundError) NodeID() ID {
	return e.id
}

// NewNodeNotFoundError returns a new NodeNotFoundError for the given id.
func NewNodeNotFoundError(id ID) *NodeNotFoundError {
	return &NodeNotFoundError{id: id}
}

// IsNodeNotFound returns true if the error is a NodeNotFoundError.
func IsNodeNotFound(err error) bool {
	if err == nil {
		return false
	}
	var e *NodeNotFoundError
	return errors.As(err, &e) || errors.Is(err, ErrNodeNotFound)
}

// SourceUnavailableError wraps a read failure from a source's data-mapping
// layer. The underlying error is preserved unmodified.
type SourceUnavailableError struct {
	identity string
	err      error
}

// Error returns the error string.
func (e *SourceUnavailableError) Error() string {
	return fmt.Sprintf("reach: source %s unavailable: %v", e.identity, e.err)
}

// Is reports whether the target error matches SourceUnavailableError.
func (e *SourceUnavailableError) Is(err error) bool {
	return err == ErrSourceUnavailable
}

// Unwrap returns the underlying error.
func (e *SourceUnavailableError) Unwrap() error {
	return e.err
}

// Identity returns the identity of the source that failed.
func (e *SourceUnavailableError) Identity() string {
	return e.identity
}

// NewSourceUnavailableError returns a new SourceUnavailableError wrapping
// the collaborator's error.
func NewSourceUnavailableError(identity string, err error) *SourceUnavailableError {
	return &SourceUnavailableError{identity: identity, err: err}
}

// IsSourceUnavailable returns true if the error is a SourceUnavailableError.
func IsSourceUnavailable(err error) bool {
	if err == nil {
		return false
	}
	var e *SourceUnavailableError
	return errors.As(err, &e) || errors.Is(err, ErrSourceUnavailable)
}
