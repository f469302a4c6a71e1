package entity

import "fmt"

// Session tracks one run of the login + menu flow.
type Session struct {
	ID    string
	State SessionState
}

// NewSession returns a logged-out session.
func NewSession(id string) *Session {
	return &Session{ID: id, State: SessionStateLoggedOut}
}

// Authenticated reports whether the menu may be shown.
func (s *Session) Authenticated() bool {
	return s.State == SessionStateMenuLoop
}

// Active is false once the session has terminated.
func (s *Session) Active() bool {
	return s.State != SessionStateTerminated
}

//nolint:gochecknoglobals // static transition table
var transitions = map[SessionState][]SessionState{
	SessionStateLoggedOut:      {SessionStateAuthenticating, SessionStateTerminated},
	SessionStateAuthenticating: {SessionStateMenuLoop, SessionStateLoggedOut},
	SessionStateMenuLoop:       {SessionStateTerminated},
}

// Transition moves the session to next, rejecting moves the state machine
// does not allow.
func (s *Session) Transition(next SessionState) error {
	for _, allowed := range transitions[s.State] {
		if allowed == next {
			s.State = next
			return nil
		}
	}

	return fmt.Errorf("invalid session transition %s -> %s", s.State, next)
}
