// Package pkguid provides helpers for generating unique identifiers.
//
// The codebase uses these interfaces to avoid hard-coding a specific UID
// strategy:
//   - String IDs (UUIDv7) identify sessions and double as log correlation IDs.
//   - Numeric IDs (Snowflake) identify ledger transactions; they grow with
//     time, so sorting by ID matches recording order.
package pkguid
