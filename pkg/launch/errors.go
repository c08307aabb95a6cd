// Copyright 2026 LAMB Project
// SPDX-License-Identifier: AGPL-3.0

package launch

import "errors"

var (
	// ErrNotConfigured covers both a placement that was never configured and
	// one that has been disabled. Students get the same answer for either, so
	// a disabled activity is indistinguishable from an absent one.
	ErrNotConfigured = errors.New("activity is not configured")

	ErrInvalidCredentials = errors.New("credential verification failed")
)
