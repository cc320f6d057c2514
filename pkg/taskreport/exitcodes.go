// Package taskreport provides public constants for external tools
// integrating with taskreport.
package taskreport

// Exit codes returned by the taskreport CLI.
// These constants allow external tools to check exit codes symbolically
// rather than using magic numbers.
const (
	// ExitSuccess indicates every task succeeded or was up to date.
	ExitSuccess = 0

	// ExitFailure indicates at least one task failed.
	ExitFailure = 1

	// ExitConfigError indicates a configuration error (bad task file, unknown reporter, etc.).
	ExitConfigError = 2

	// ExitReportError indicates the report could not be written.
	ExitReportError = 3
)
