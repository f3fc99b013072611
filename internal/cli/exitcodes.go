package cli

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error: storage errors, unexpected
	// failures, or anything that doesn't fit the categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage: missing required flags
	// or invalid flag combinations.
	ExitUsage = 2

	// ExitNotFound indicates a requested resource was not found:
	// project, team member or task id that doesn't exist.
	ExitNotFound = 3

	// ExitDataErr indicates invalid or malformed data, such as an import
	// blob that cannot be decoded.
	ExitDataErr = 4

	// ExitValidation indicates input that failed form validation:
	// blank names, a due date before the start date, an unknown status.
	ExitValidation = 5
)
