package config

import "time"

// Built-in fallbacks used when no source provides a value.
const (
	DefaultLogLevel              = "debug"
	DefaultHTTPAddress           = "localhost:8080"
	DefaultServerRequestTimeout  = 30 * time.Second
	DefaultVerifierAddress       = "http://api.externalservice.net"
	DefaultAdapterRequestTimeout = 10 * time.Second
	DefaultStubHTTPAddress       = "localhost:8081"
)

// Defaults returns the configuration applied to fields that no other source
// has set.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			LogLevel: DefaultLogLevel,
		},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultServerRequestTimeout,
		},
		Adapter: Adapter{
			VerifierAddress: DefaultVerifierAddress,
			RequestTimeout:  DefaultAdapterRequestTimeout,
		},
		Stub: Stub{
			HTTPAddress: DefaultStubHTTPAddress,
		},
	}
}
