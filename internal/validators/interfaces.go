// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks incoming requests for required fields before
// they reach business logic.
//
// A failed check is reported as a [MissingFieldsError] naming every absent
// field by its JSON name, so the client can be told exactly what to send.
package validators

import "context"

// Validator checks obj. When fields is non-empty only the named fields are
// checked.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
