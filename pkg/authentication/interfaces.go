// Copyright 2026 LAMB Project
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"

	"github.com/coreos/go-oidc/v3/oidc"
)

type TokenVerifierInterface interface {
	VerifyToken(ctx context.Context, rawToken string) (string, error)
}

type ProviderInterface interface {
	Verifier(config *oidc.Config) *oidc.IDTokenVerifier
}

// PageTokenInterface issues and checks the short-lived tokens gating the
// setup, dashboard and consent pages. Tokens are scoped to one placement and
// one purpose and are never renewed.
type PageTokenInterface interface {
	Issue(claims PageClaims) (string, error)
	Verify(rawToken, purpose string) (*PageClaims, error)
}
