// Copyright 2026 LAMB Project
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"

	"github.com/coreos/go-oidc/v3/oidc"
)

var _ ProviderInterface = (*oidc.Provider)(nil)

// NewProvider performs OIDC discovery against the issuer.
func NewProvider(ctx context.Context, issuer string) (*oidc.Provider, error) {
	return oidc.NewProvider(ctx, issuer)
}

// NewProviderWithJWKS builds a verifier from a manually configured JWKS URL,
// for issuers without a discovery endpoint.
func NewProviderWithJWKS(ctx context.Context, issuer, jwksURL string) (*oidc.IDTokenVerifier, error) {
	keySet := oidc.NewRemoteKeySet(ctx, jwksURL)
	return oidc.NewVerifier(issuer, keySet, &oidc.Config{SkipClientIDCheck: true}), nil
}
