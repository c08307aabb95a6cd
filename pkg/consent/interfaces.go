// Copyright 2026 LAMB Project
// SPDX-License-Identifier: AGPL-3.0

package consent

import (
	"context"

	"github.com/Lamb-Project/lamb-sub010/pkg/authentication"
	"github.com/Lamb-Project/lamb-sub010/pkg/launch"
)

type ServiceInterface interface {
	Accept(ctx context.Context, claims *authentication.PageClaims) (*launch.Result, error)
}

type StorageInterface interface {
	RecordConsent(ctx context.Context, activityID, syntheticAddress string) error
}

// SessionEntryInterface hands a consented participant onward to the session
// provider. Implemented by the launch service.
type SessionEntryInterface interface {
	EnterSession(ctx context.Context, activityID, syntheticAddress string) (*launch.Result, error)
}

type PageTokenInterface interface {
	Verify(rawToken, purpose string) (*authentication.PageClaims, error)
}
