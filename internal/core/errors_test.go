package core

import (
	"errors"
	"fmt"
	"testing"
)

func TestMapExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ExitCode
	}{
		{name: "nil", err: nil, want: ExitSuccess},
		{name: "cancelled", err: ErrCancelled, want: ExitSuccess},
		{name: "missing home", err: ErrMissingHome, want: ExitMissingHome},
		{name: "no config", err: fmt.Errorf("load: %w", ErrNoConfigFound), want: ExitNoConfig},
		{name: "no profiles", err: ErrNoProfilesFound, want: ExitNoProfiles},
		{name: "config error", err: ErrConfig, want: ExitGeneral},
		{name: "other", err: errors.New("boom"), want: ExitGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MapExitCode(tt.err); got != tt.want {
				t.Fatalf("MapExitCode(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
