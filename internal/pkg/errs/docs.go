// Package errs provides standardized error types for the application.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the codebase.
//
// The package includes error types for the common failure scenarios:
//   - ObjectNotFoundError: a referenced object is absent from storage
//   - ValueIsInvalidError: a supplied value fails validation
//   - ValueIsRequiredError: a required value is missing
//   - ExternalCallError: a call to an external collaborator failed
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is matches the sentinel
//
// This keeps error classification uniform: handlers and the HTTP layer
// branch on the sentinels, never on message text.
package errs
