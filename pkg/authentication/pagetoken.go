// Copyright 2026 LAMB Project
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Lamb-Project/lamb-sub010/internal/logging"
	"github.com/Lamb-Project/lamb-sub010/internal/tracing"
)

const (
	PurposeSetup     = "setup"
	PurposeDashboard = "dashboard"
	PurposeConsent   = "consent"
)

// RegisteredClaims is re-exported so callers set the subject without
// importing the jwt module themselves.
type RegisteredClaims = jwt.RegisteredClaims

// PageClaims is the payload of a page token. Every token carries the purpose
// it was minted for and the placement it is bound to; handlers reject tokens
// presented for a different page or a different activity.
type PageClaims struct {
	Purpose     string `json:"purpose"`
	PlacementID string `json:"placement_id"`
	ActivityID  string `json:"activity_id,omitempty"`
	IsOwner     bool   `json:"is_owner,omitempty"`

	// Launch context carried through to the setup and consent pages so they
	// never have to re-read the LTI POST.
	Email       string `json:"email,omitempty"`
	DisplayName string `json:"display_name,omitempty"`
	CourseID    string `json:"course_id,omitempty"`
	CourseTitle string `json:"course_title,omitempty"`

	jwt.RegisteredClaims
}

type PageTokenIssuer struct {
	secret   []byte
	lifetime time.Duration

	tracer tracing.TracingInterface
	logger logging.LoggerInterface
}

func (p *PageTokenIssuer) Issue(claims PageClaims) (string, error) {
	now := time.Now()
	claims.RegisteredClaims.IssuedAt = jwt.NewNumericDate(now)
	claims.RegisteredClaims.ExpiresAt = jwt.NewNumericDate(now.Add(p.lifetime))

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(p.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign page token: %w", err)
	}

	return signed, nil
}

func (p *PageTokenIssuer) Verify(rawToken, purpose string) (*PageClaims, error) {
	claims := new(PageClaims)

	_, err := jwt.ParseWithClaims(rawToken, claims, func(t *jwt.Token) (interface{}, error) {
		return p.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return nil, fmt.Errorf("invalid page token: %w", err)
	}

	if claims.Purpose != purpose {
		return nil, fmt.Errorf("page token not valid for %s", purpose)
	}

	return claims, nil
}

func NewPageTokenIssuer(secret string, lifetime time.Duration, tracer tracing.TracingInterface, logger logging.LoggerInterface) *PageTokenIssuer {
	return &PageTokenIssuer{
		secret:   []byte(secret),
		lifetime: lifetime,
		tracer:   tracer,
		logger:   logger,
	}
}
