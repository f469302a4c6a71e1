// Package pkgrouter routes menu actions to handlers.
//
// It provides an ordered registry of actions (what the menu shows and in which
// order) plus shared concerns applied around every dispatch: error mapping to
// user-facing messages, logging, panic recovery and correlation ID
// propagation.
package pkgrouter
