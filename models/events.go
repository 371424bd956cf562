package models

// EventKind identifies the type of a state change notification. The set is
// closed: auth client operations emit no other kinds.
type EventKind string

const (
	// EventHello carries the greeting message returned by the bootstrap probe.
	EventHello EventKind = "hello"

	// EventSignup carries the profile of a freshly created account.
	EventSignup EventKind = "signup"

	// EventLogin carries the raw login payload. A zero Session clears the
	// authenticated state (emitted on logout).
	EventLogin EventKind = "login"

	// EventProfile carries the current user profile. A nil User clears it
	// (emitted on logout).
	EventProfile EventKind = "profile"
)

// StateEvent is a typed notification delivered to the state sink. Exactly one
// payload field is meaningful for a given Kind.
type StateEvent struct {
	Kind EventKind

	// Message is set for EventHello.
	Message string

	// User is set for EventSignup and EventProfile; nil clears the profile.
	User *UserProfile

	// Session is set for EventLogin; the zero value clears the session state.
	Session Session
}

// Notify is the state sink interface: a callback receiving typed
// notifications of authentication state changes. Every auth client operation
// takes one; the client holds no reference to the sink between calls.
type Notify func(StateEvent)
