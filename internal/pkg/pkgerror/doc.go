// Package pkgerror defines shared error types and sentinel errors used across
// the application.
//
// It helps keep error handling consistent by:
//   - Providing sentinel errors that can be checked with errors.Is.
//   - Providing a structured Error type that carries a user-facing message, a
//     type, and a code, which the terminal surface turns into the message it
//     shows and the process into its exit status.
package pkgerror
