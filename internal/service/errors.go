package service

import "errors"

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
	ErrNoVerifierAdapter     = errors.New("no verifier adapter provided")
)
