// Copyright 2026 LAMB Project
// SPDX-License-Identifier: AGPL-3.0

// Package consent records a participant's agreement to transcript visibility.
// Consent is write-once: once recorded it survives visibility toggles and is
// never overwritten or cleared by this service.
package consent

import (
	"context"

	"github.com/Lamb-Project/lamb-sub010/internal/logging"
	"github.com/Lamb-Project/lamb-sub010/internal/monitoring"
	"github.com/Lamb-Project/lamb-sub010/internal/tracing"
	"github.com/Lamb-Project/lamb-sub010/internal/types"
	"github.com/Lamb-Project/lamb-sub010/pkg/authentication"
	"github.com/Lamb-Project/lamb-sub010/pkg/launch"
)

type Service struct {
	storage StorageInterface
	entry   SessionEntryInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	entry SessionEntryInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage: storage,
		entry:   entry,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// Accept records consent and hands the participant to their session. A replay
// of an already-recorded consent is a no-op and still redirects onward.
func (s *Service) Accept(ctx context.Context, claims *authentication.PageClaims) (*launch.Result, error) {
	ctx, span := s.tracer.Start(ctx, "consent.Service.Accept")
	defer span.End()

	address := types.SyntheticAddress(claims.Subject, claims.PlacementID)

	if err := s.storage.RecordConsent(ctx, claims.ActivityID, address); err != nil {
		return nil, err
	}

	s.logger.Security().ConsentRecorded(claims.ActivityID, address)

	return s.entry.EnterSession(ctx, claims.ActivityID, address)
}
