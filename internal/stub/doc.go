// Package stub implements a stand-in for the external verifier.
//
// It answers POST /verify with 200 for accepted tokens and 403 for
// everything else, and counts the requests it receives so tests can assert
// how often the relay called out. Tokens are accepted from a static
// allowlist or as HS256 JWTs signed with a configured key.
package stub
