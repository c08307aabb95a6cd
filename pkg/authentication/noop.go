// Copyright 2026 LAMB Project
// SPDX-License-Identifier: AGPL-3.0

package authentication

import "context"

// NoopVerifier accepts every token and resolves it to a fixed subject. Used
// when admin authentication is disabled in local development.
type NoopVerifier struct {
	Subject string
}

func (v *NoopVerifier) VerifyToken(ctx context.Context, rawToken string) (string, error) {
	return v.Subject, nil
}

func NewNoopVerifier(subject string) *NoopVerifier {
	return &NoopVerifier{Subject: subject}
}
