// Package config provides configuration loading, merging, and validation
// facilities for the relay and the stub verifier.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// Fields that remain empty are filled from [Defaults], so the relay starts
// against http://api.externalservice.net when nothing else is configured.
//
// The main entry point is [GetStructuredConfig].
package config
