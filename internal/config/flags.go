package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a relay server address in format [host]:[port]
//	-request-timeout inbound request timeout (e.g., "30s", "1m")
//	-verifier-address external verifier base URL
//	-verifier-timeout outbound verification call timeout (e.g., "5s")
//	-version application version reported by GET /version
//	-log-level minimum log level (debug, info, warn, error)
//	-stub-address stub verifier address in format [host]:[port]
//	-stub-tokens comma separated tokens accepted by the stub verifier
//	-stub-sign-key HS256 key of JWTs accepted by the stub verifier
//	-stub-issuer required issuer of JWTs accepted by the stub verifier
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var serverAddress, stubAddress NetAddress
	var requestTimeout time.Duration
	var verifierAddress string
	var verifierTimeout time.Duration
	var version string
	var logLevel string
	var stubTokens string
	var stubSignKey string
	var stubIssuer string
	var jsonConfigPath string

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&verifierAddress, "verifier-address", "", "External verifier base URL")
	flag.DurationVar(&verifierTimeout, "verifier-timeout", 0, "Verification call timeout (e.g., 5s)")
	flag.StringVar(&version, "version", "", "Application version")
	flag.StringVar(&logLevel, "log-level", "", "Minimum log level")
	flag.Var(&stubAddress, "stub-address", "Stub verifier net address host:port")
	flag.StringVar(&stubTokens, "stub-tokens", "", "Comma separated tokens accepted by the stub verifier")
	flag.StringVar(&stubSignKey, "stub-sign-key", "", "Stub verifier JWT signing key")
	flag.StringVar(&stubIssuer, "stub-issuer", "", "Stub verifier JWT issuer")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			Version:  version,
			LogLevel: logLevel,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			VerifierAddress: verifierAddress,
			RequestTimeout:  verifierTimeout,
		},
		Stub: Stub{
			HTTPAddress:    stubAddress.String(),
			AcceptedTokens: splitList(stubTokens),
			SignKey:        stubSignKey,
			Issuer:         stubIssuer,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// splitList splits a comma separated flag value, dropping blank items.
// It returns nil for an empty input so that mergo treats it as unset.
func splitList(s string) []string {
	var items []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
