// Package pkgroutine contains helpers for running goroutines safely.
//
// The Manager type limits concurrency, collects returned errors, and turns
// panics into errors so a crashed task is reported instead of silently lost.
package pkgroutine
