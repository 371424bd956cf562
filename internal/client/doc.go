// Package client implements the command-line client application runtime.
//
// It wires the auth client service, the session store, and an in-process
// state container into a single process lifecycle: the backend is probed once
// at startup, then exactly one auth command is executed and its outcome
// printed.
package client
