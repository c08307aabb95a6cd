// Copyright 2026 LAMB Project
// SPDX-License-Identifier: AGPL-3.0

package activity

import "errors"

var (
	ErrNotOwner = errors.New("requester may not manage this activity")
	// ErrForeignAssistant is returned when a requested assistant does not
	// exist, is unpublished, or belongs to another organization. The three
	// cases are deliberately indistinguishable to the caller.
	ErrForeignAssistant  = errors.New("assistant not available to this activity")
	ErrAlreadyConfigured = errors.New("placement is already configured")
	ErrUnknownAccount    = errors.New("account is not a candidate for this launch")
)
