// Copyright 2026 LAMB Project
// SPDX-License-Identifier: AGPL-3.0

package launch

import (
	"context"
	"errors"
	"fmt"

	"github.com/Lamb-Project/lamb-sub010/internal/logging"
	"github.com/Lamb-Project/lamb-sub010/internal/storage"
	"github.com/Lamb-Project/lamb-sub010/internal/tracing"
)

// CredentialResolver reads the persisted consumer credential override on every
// launch, falling back to the deployment defaults when no override row exists.
// Reading per request means a rotation takes effect without a restart.
type CredentialResolver struct {
	storage StorageInterface

	defaultKey    string
	defaultSecret string

	tracer tracing.TracingInterface
	logger logging.LoggerInterface
}

func (c *CredentialResolver) Resolve(ctx context.Context) (string, string, error) {
	ctx, span := c.tracer.Start(ctx, "launch.CredentialResolver.Resolve")
	defer span.End()

	cred, err := c.storage.GetGlobalCredential(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return c.defaultKey, c.defaultSecret, nil
		}
		return "", "", fmt.Errorf("failed to resolve consumer credentials: %w", err)
	}

	return cred.ConsumerKey, cred.ConsumerSecret, nil
}

func NewCredentialResolver(storage StorageInterface, defaultKey, defaultSecret string, tracer tracing.TracingInterface, logger logging.LoggerInterface) *CredentialResolver {
	return &CredentialResolver{
		storage:       storage,
		defaultKey:    defaultKey,
		defaultSecret: defaultSecret,
		tracer:        tracer,
		logger:        logger,
	}
}
