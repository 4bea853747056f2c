// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// TokenHeader is the HTTP header that carries the credential token both on
// the inbound /helloworld request and on the outbound /verify call.
const TokenHeader = "Token"

// Credential is the caller-supplied token extracted from an inbound request.
//
// The token is opaque: nothing inspects its structure. Provided distinguishes
// a request without the header from a request whose header value is empty;
// only the former is treated as a missing credential.
type Credential struct {
	// Token is the raw header value. Never log it.
	Token string

	// Provided reports whether the header was present on the request.
	Provided bool
}

// NewCredential builds a provided [Credential] for token.
func NewCredential(token string) Credential {
	return Credential{Token: token, Provided: true}
}

// NoCredential returns the [Credential] of a request that carried no token.
func NoCredential() Credential {
	return Credential{}
}

// String hides the token so a Credential can be passed to a logger safely.
func (c Credential) String() string {
	if !c.Provided {
		return "<missing>"
	}
	return "<redacted>"
}
