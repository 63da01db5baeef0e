// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced by the transport layer itself. Callers can match
// against them with [errors.Is].
var (
	// ErrMissingToken is returned by the auth gate when the request carries
	// neither an "Authorization" header nor a token cookie.
	ErrMissingToken = errors.New("no session token in request")

	// ErrInvalidRequestBody is returned when the request body is not valid
	// JSON for the expected payload.
	ErrInvalidRequestBody = errors.New("invalid request body")
)
