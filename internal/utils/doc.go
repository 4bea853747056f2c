// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for HTTP response writing, outbound HTTP client
// initialization, trace id generation, and the JWT signing and validation
// used by the stub verifier.
package utils
