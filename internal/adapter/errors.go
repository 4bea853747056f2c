package adapter

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrTokenRejected indicates the verifier answered, but not with 200.
	ErrTokenRejected = errors.New("token rejected by verifier")
	// ErrCallFailed indicates the verifier call could not complete.
	ErrCallFailed = errors.New("verifier call failed")

	errInvalidVerifierAddress = errors.New("invalid verifier address")
)

// StatusError carries the status code of a rejected verification.
// It unwraps to [ErrTokenRejected].
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: http %d %s", ErrTokenRejected, e.StatusCode, http.StatusText(e.StatusCode))
}

func (e *StatusError) Unwrap() error {
	return ErrTokenRejected
}
