// Package http implements the inbound HTTP surface of the relay.
//
// It exposes route wiring, request handlers, and middleware. Request tracing,
// access logging, and panic recovery are handled here before requests are
// delegated to the service layer.
package http
