package taskreport_test

import (
	"testing"

	"github.com/AndreyAkinshin/taskreport/internal/errors"
	"github.com/AndreyAkinshin/taskreport/pkg/taskreport"
)

func TestExitCodeValues(t *testing.T) {
	tests := []struct {
		name     string
		constant int
		expected int
	}{
		{"ExitSuccess", taskreport.ExitSuccess, 0},
		{"ExitFailure", taskreport.ExitFailure, 1},
		{"ExitConfigError", taskreport.ExitConfigError, 2},
		{"ExitReportError", taskreport.ExitReportError, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.constant != tt.expected {
				t.Errorf("taskreport.%s = %d, want %d", tt.name, tt.constant, tt.expected)
			}
		})
	}
}

// TestExitCodeConsistency verifies that public exit code constants match
// the internal errors package constants.
func TestExitCodeConsistency(t *testing.T) {
	tests := []struct {
		name     string
		public   int
		internal int
	}{
		{"Success", taskreport.ExitSuccess, errors.ExitSuccess},
		{"Failure", taskreport.ExitFailure, errors.ExitTaskFailed},
		{"ConfigError", taskreport.ExitConfigError, errors.ExitConfigError},
		{"ReportError", taskreport.ExitReportError, errors.ExitReportFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.public != tt.internal {
				t.Errorf("exit code mismatch: public constant = %d, errors constant = %d",
					tt.public, tt.internal)
			}
		})
	}
}
