// Package pkgprompt implements the blocking, one-question-at-a-time dialog
// surface used by the terminal session.
//
// A Prompt writes labels and messages to an io.Writer and reads answers line by
// line from an io.Reader. Secrets are read without echo when the reader is an
// interactive terminal. End of input is reported as ErrCanceled, the terminal
// equivalent of pressing "Cancel" on a dialog.
package pkgprompt
