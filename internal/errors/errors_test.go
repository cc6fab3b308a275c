package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestExitError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *ExitError
		want string
	}{
		{
			name: "with underlying error",
			err:  NewExitError(errors.New("disk full"), ExitFailure),
			want: "disk full",
		},
		{
			name: "nil underlying error",
			err:  NewExitError(nil, ExitFailure),
			want: "exit code 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExitError_Unwrap(t *testing.T) {
	wrapped := fmt.Errorf("reading config: %w", ErrInvalidConfig)
	err := NewFatal(wrapped, "fix fndeploy.json and rerun")

	if !errors.Is(err, ErrInvalidConfig) {
		t.Error("errors.Is should find ErrInvalidConfig through ExitError")
	}

	var exitErr *ExitError
	if !errors.As(error(err), &exitErr) {
		t.Fatal("errors.As should extract *ExitError")
	}
	if exitErr.Code != ExitFailure {
		t.Errorf("Code = %d, want %d", exitErr.Code, ExitFailure)
	}
	if exitErr.Suggestion == "" {
		t.Error("Suggestion should be preserved")
	}
}

func TestNewFatal_Code(t *testing.T) {
	err := NewFatal(ErrNoFlags, "")
	if err.Code != ExitFailure {
		t.Errorf("Code = %d, want %d", err.Code, ExitFailure)
	}
}
