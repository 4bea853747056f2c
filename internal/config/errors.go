package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when a
// configuration group holds an unusable value.
var (
	// ErrInvalidServerConfigs indicates invalid inbound server settings
	// (for example, a negative request timeout).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAdapterConfigs indicates invalid verifier adapter settings
	// (for example, an address without a host).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStubConfigs indicates inconsistent stub verifier settings.
	ErrInvalidStubConfigs = errors.New("invalid stub configuration")
)

var (
	errEmptyAddress       = errors.New("empty address")
	errAddressWithoutHost = errors.New("address must include host and scheme")
)
