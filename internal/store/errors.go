// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"errors"
	"strings"
)

var (
	// ErrNotFound reports that no record matched the given id or slug.
	ErrNotFound = errors.New("record not found")

	// ErrAlreadyApproved reports an approve call on a comment that is
	// already approved. A no-op, distinct from success and from failure.
	ErrAlreadyApproved = errors.New("comment is already approved")
)

// ValidationErrors is the list of human-readable messages produced when
// required fields are missing or invalid.
type ValidationErrors []string

func (v ValidationErrors) Error() string {
	return "validation failed: " + strings.Join(v, "; ")
}

// AsValidation unwraps err into a ValidationErrors list if it is one.
func AsValidation(err error) (ValidationErrors, bool) {
	var v ValidationErrors
	if errors.As(err, &v) {
		return v, true
	}
	return nil, false
}
