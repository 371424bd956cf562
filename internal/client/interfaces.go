package client

import "context"

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run executes the client application with the given command-line
	// arguments and blocks until exit.
	Run(ctx context.Context, args []string) error
}
