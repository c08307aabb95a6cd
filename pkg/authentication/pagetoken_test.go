// Copyright 2026 LAMB Project
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"strings"
	"testing"
	"time"

	"github.com/Lamb-Project/lamb-sub010/internal/logging"
	"github.com/Lamb-Project/lamb-sub010/internal/tracing"
)

func TestPageTokenRoundTrip(t *testing.T) {
	issuer := NewPageTokenIssuer("test-secret", time.Minute, tracing.NewNoopTracer(), logging.NewNoopLogger())

	token, err := issuer.Issue(PageClaims{
		Purpose:     PurposeDashboard,
		PlacementID: "placement-1",
		ActivityID:  "activity-1",
		IsOwner:     true,
	})
	if err != nil {
		t.Fatalf("expected token to be issued, got %v", err)
	}

	claims, err := issuer.Verify(token, PurposeDashboard)
	if err != nil {
		t.Fatalf("expected token to verify, got %v", err)
	}

	if claims.PlacementID != "placement-1" {
		t.Errorf("expected placement-1, got %s", claims.PlacementID)
	}

	if claims.ActivityID != "activity-1" {
		t.Errorf("expected activity-1, got %s", claims.ActivityID)
	}

	if !claims.IsOwner {
		t.Errorf("expected owner flag to survive the round trip")
	}
}

func TestPageTokenPurposeMismatch(t *testing.T) {
	issuer := NewPageTokenIssuer("test-secret", time.Minute, tracing.NewNoopTracer(), logging.NewNoopLogger())

	token, err := issuer.Issue(PageClaims{Purpose: PurposeConsent, PlacementID: "placement-1"})
	if err != nil {
		t.Fatalf("expected token to be issued, got %v", err)
	}

	if _, err := issuer.Verify(token, PurposeDashboard); err == nil {
		t.Errorf("expected a consent token to be rejected on the dashboard")
	}
}

func TestPageTokenExpiry(t *testing.T) {
	issuer := NewPageTokenIssuer("test-secret", -time.Minute, tracing.NewNoopTracer(), logging.NewNoopLogger())

	token, err := issuer.Issue(PageClaims{Purpose: PurposeSetup, PlacementID: "placement-1"})
	if err != nil {
		t.Fatalf("expected token to be issued, got %v", err)
	}

	_, err = issuer.Verify(token, PurposeSetup)
	if err == nil {
		t.Fatal("expected an expired token to be rejected")
	}

	if !strings.Contains(err.Error(), "expired") {
		t.Errorf("expected an expiry error, got %v", err)
	}
}

func TestPageTokenWrongSecret(t *testing.T) {
	issuer := NewPageTokenIssuer("test-secret", time.Minute, tracing.NewNoopTracer(), logging.NewNoopLogger())
	other := NewPageTokenIssuer("other-secret", time.Minute, tracing.NewNoopTracer(), logging.NewNoopLogger())

	token, err := issuer.Issue(PageClaims{Purpose: PurposeSetup, PlacementID: "placement-1"})
	if err != nil {
		t.Fatalf("expected token to be issued, got %v", err)
	}

	if _, err := other.Verify(token, PurposeSetup); err == nil {
		t.Errorf("expected a token signed with a different secret to be rejected")
	}
}
