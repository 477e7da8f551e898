package deck

import (
	"errors"
	"fmt"

	"github.com/benjaminschreck/go-deck/pkg/deck/opc"
)

// Stage names the pipeline step an error came from.
type Stage string

const (
	StageLoad    Stage = "load"
	StageRender  Stage = "render"
	StageCompose Stage = "compose"
	StageWrite   Stage = "write"
)

// StageError represents a failure of one pipeline step
type StageError struct {
	Stage Stage
	Path  string
	Cause error
}

func (e *StageError) Error() string {
	if e.Path != "" && e.Cause != nil {
		return fmt.Sprintf("%s failed for '%s': %v", e.Stage, e.Path, e.Cause)
	} else if e.Path != "" {
		return fmt.Sprintf("%s failed for '%s'", e.Stage, e.Path)
	} else if e.Cause != nil {
		return fmt.Sprintf("%s failed: %v", e.Stage, e.Cause)
	}
	return fmt.Sprintf("%s failed", e.Stage)
}

func (e *StageError) Unwrap() error {
	return e.Cause
}

// NewStageError creates a new stage error
func NewStageError(stage Stage, path string, cause error) error {
	return &StageError{
		Stage: stage,
		Path:  path,
		Cause: cause,
	}
}

// InvariantError is a structural violation found while composing or verifying.
type InvariantError = opc.InvariantError

// Invariant violation kinds, re-exported from the package model.
var (
	ErrDuplicatePart           = opc.ErrDuplicatePart
	ErrInvalidPartName         = opc.ErrInvalidPartName
	ErrDanglingRelationship    = opc.ErrDanglingRelationship
	ErrDuplicateRelationshipID = opc.ErrDuplicateRelationshipID
	ErrUncoveredPart           = opc.ErrUncoveredPart
	ErrInvalidContentTypes     = opc.ErrInvalidContentTypes
	ErrMalformedPart           = opc.ErrMalformedPart
)

// RecoverError converts a panic recovery value to an error
func RecoverError(r interface{}) error {
	switch v := r.(type) {
	case error:
		return fmt.Errorf("panic recovered: %w", v)
	case string:
		return fmt.Errorf("panic recovered: %s", v)
	default:
		return fmt.Errorf("panic recovered: %v", v)
	}
}

// StageOf returns the stage of the outermost StageError in err's chain.
func StageOf(err error) (Stage, bool) {
	var se *StageError
	if errors.As(err, &se) {
		return se.Stage, true
	}
	return "", false
}

// IsStageError checks if an error is a stage error
func IsStageError(err error) bool {
	var se *StageError
	return errors.As(err, &se)
}

// IsInvariantError checks if an error carries an invariant violation
func IsInvariantError(err error) bool {
	var ie *InvariantError
	return errors.As(err, &ie)
}
