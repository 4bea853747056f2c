// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

var (
	// errNoHandlersAreCreated is returned by NewHandlers when no HTTP address
	// is configured. It is fatal at startup.
	errNoHandlersAreCreated = errors.New("no handlers are created")

	errNoServices = errors.New("no services provided")
)
