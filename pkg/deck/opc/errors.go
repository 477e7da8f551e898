package opc

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel kinds for structural invariant violations. Match with errors.Is.
var (
	ErrDuplicatePart           = errors.New("duplicate part")
	ErrInvalidPartName         = errors.New("invalid part name")
	ErrDanglingRelationship    = errors.New("relationship target not in package")
	ErrDuplicateRelationshipID = errors.New("duplicate relationship id")
	ErrUncoveredPart           = errors.New("part has no content type")
	ErrInvalidContentTypes     = errors.New("invalid content type manifest")
	ErrMalformedPart           = errors.New("malformed xml part")
)

// InvariantError reports a structural rule the package breaks. Scope names
// the part or relationship scope in which the problem was found.
type InvariantError struct {
	Kind   error
	Scope  string
	Detail string
}

func (e *InvariantError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%v in %s: %s", e.Kind, e.Scope, e.Detail)
	}
	return fmt.Sprintf("%v in %s", e.Kind, e.Scope)
}

func (e *InvariantError) Unwrap() error {
	return e.Kind
}

func newInvariantError(kind error, scope, format string, args ...interface{}) *InvariantError {
	return &InvariantError{
		Kind:   kind,
		Scope:  scope,
		Detail: fmt.Sprintf(format, args...),
	}
}

// Issues collects every invariant violation found in one pass.
type Issues []*InvariantError

func (is Issues) Error() string {
	if len(is) == 1 {
		return is[0].Error()
	}
	parts := []string{fmt.Sprintf("%d structural issues:", len(is))}
	for i, issue := range is {
		parts = append(parts, fmt.Sprintf("  [%d] %v", i+1, issue))
	}
	return strings.Join(parts, "\n")
}

// Unwrap exposes the individual issues to errors.Is and errors.As.
func (is Issues) Unwrap() []error {
	errs := make([]error, len(is))
	for i, issue := range is {
		errs[i] = issue
	}
	return errs
}

// Err returns nil for an empty collection.
func (is Issues) Err() error {
	if len(is) == 0 {
		return nil
	}
	return is
}
