// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources win for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// The main entry points are [GetServerConfig] for the backend binary and
// [GetClientConfig] for the CLI client. Both narrow the merged
// [StructuredConfig] to the fields their runtime needs and fail fast on
// invalid values — in particular, the client refuses to start without a
// configured backend URL.
package config
