package deck

import (
	"errors"
	"io/fs"
	"strings"
	"testing"

	"github.com/benjaminschreck/go-deck/pkg/deck/opc"
)

func TestStageError(t *testing.T) {
	cause := errors.New("permission denied")
	tests := []struct {
		name    string
		err     *StageError
		wantMsg string
	}{
		{
			name:    "path and cause",
			err:     &StageError{Stage: StageWrite, Path: "out.pptx", Cause: cause},
			wantMsg: "write failed for 'out.pptx': permission denied",
		},
		{
			name:    "path only",
			err:     &StageError{Stage: StageLoad, Path: "deck.toml"},
			wantMsg: "load failed for 'deck.toml'",
		},
		{
			name:    "cause only",
			err:     &StageError{Stage: StageCompose, Cause: cause},
			wantMsg: "compose failed: permission denied",
		},
		{
			name:    "bare",
			err:     &StageError{Stage: StageRender},
			wantMsg: "render failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", got, tt.wantMsg)
			}
			if tt.err.Cause != nil && !errors.Is(tt.err, tt.err.Cause) {
				t.Error("cause is not reachable through Unwrap")
			}
		})
	}
}

func TestStageOf(t *testing.T) {
	err := NewStageError(StageWrite, "out.pptx", fs.ErrPermission)

	stage, ok := StageOf(err)
	if !ok || stage != StageWrite {
		t.Errorf("StageOf() = %q, %v, want write, true", stage, ok)
	}
	if !errors.Is(err, fs.ErrPermission) {
		t.Error("errors.Is(err, fs.ErrPermission) = false")
	}
	if !IsStageError(err) {
		t.Error("IsStageError() = false")
	}

	if _, ok := StageOf(errors.New("plain")); ok {
		t.Error("StageOf(plain error) reported a stage")
	}
	if IsStageError(nil) {
		t.Error("IsStageError(nil) = true")
	}
}

func TestInvariantErrorsThroughStageError(t *testing.T) {
	issue := &InvariantError{Kind: ErrDuplicateRelationshipID, Scope: "ppt/_rels/presentation.xml.rels", Detail: "rId2"}
	err := NewStageError(StageCompose, "", opc.Issues{issue})

	if !errors.Is(err, ErrDuplicateRelationshipID) {
		t.Error("errors.Is(err, ErrDuplicateRelationshipID) = false")
	}
	if errors.Is(err, ErrDuplicatePart) {
		t.Error("errors.Is(err, ErrDuplicatePart) = true")
	}

	var got *InvariantError
	if !errors.As(err, &got) || got != issue {
		t.Errorf("errors.As() = %v, want the original issue", got)
	}
	if !strings.Contains(err.Error(), "duplicate relationship id in ppt/_rels/presentation.xml.rels: rId2") {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestRecoverError(t *testing.T) {
	sentinel := errors.New("boom")
	tests := []struct {
		name    string
		value   interface{}
		wantMsg string
	}{
		{"error", sentinel, "panic recovered: boom"},
		{"string", "index out of range", "panic recovered: index out of range"},
		{"other", 42, "panic recovered: 42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := RecoverError(tt.value)
			if err.Error() != tt.wantMsg {
				t.Errorf("RecoverError(%v) = %q, want %q", tt.value, err.Error(), tt.wantMsg)
			}
		})
	}

	if !errors.Is(RecoverError(sentinel), sentinel) {
		t.Error("recovered error values should stay matchable")
	}
}
