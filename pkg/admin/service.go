// Copyright 2026 LAMB Project
// SPDX-License-Identifier: AGPL-3.0

// Package admin is the operator surface: organization-scoped activity
// management and the shared consumer credential override. Callers reach it
// with an OIDC bearer token; every organization-scoped call is additionally
// checked against the authorization model.
package admin

import (
	"context"
	"errors"
	"fmt"

	"github.com/Lamb-Project/lamb-sub010/internal/logging"
	"github.com/Lamb-Project/lamb-sub010/internal/monitoring"
	"github.com/Lamb-Project/lamb-sub010/internal/tracing"
	"github.com/Lamb-Project/lamb-sub010/internal/types"
)

var ErrNotAdmin = errors.New("not an administrator of this organization")

type Service struct {
	storage StorageInterface
	authz   AuthzInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	authz AuthzInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage: storage,
		authz:   authz,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (s *Service) ListActivities(ctx context.Context, adminID, organizationID string) ([]*types.Activity, error) {
	ctx, span := s.tracer.Start(ctx, "admin.Service.ListActivities")
	defer span.End()

	if err := s.requireOrgAdmin(ctx, adminID, organizationID); err != nil {
		return nil, err
	}

	return s.storage.ListActivitiesByOrganization(ctx, organizationID)
}

func (s *Service) GetActivity(ctx context.Context, adminID, activityID string) (*types.Activity, error) {
	ctx, span := s.tracer.Start(ctx, "admin.Service.GetActivity")
	defer span.End()

	activity, err := s.storage.GetActivityByID(ctx, activityID)
	if err != nil {
		return nil, err
	}

	if err := s.requireOrgAdmin(ctx, adminID, activity.OrganizationID); err != nil {
		return nil, err
	}

	return activity, nil
}

func (s *Service) UpdateActivity(ctx context.Context, adminID, activityID, name string, chatVisibility bool) (*types.Activity, error) {
	ctx, span := s.tracer.Start(ctx, "admin.Service.UpdateActivity")
	defer span.End()

	activity, err := s.GetActivity(ctx, adminID, activityID)
	if err != nil {
		return nil, err
	}

	if err := s.storage.UpdateActivity(ctx, activity.ID, name, chatVisibility); err != nil {
		return nil, err
	}

	return s.storage.GetActivityByID(ctx, activity.ID)
}

func (s *Service) SetActivityStatus(ctx context.Context, adminID, activityID, status string) error {
	ctx, span := s.tracer.Start(ctx, "admin.Service.SetActivityStatus")
	defer span.End()

	if status != types.ActivityStatusActive && status != types.ActivityStatusDisabled {
		return fmt.Errorf("unknown status %q", status)
	}

	activity, err := s.GetActivity(ctx, adminID, activityID)
	if err != nil {
		return err
	}

	s.logger.Infof("admin %s set activity %s status to %s", adminID, activity.ID, status)

	return s.storage.SetActivityStatus(ctx, activity.ID, status)
}

func (s *Service) GetCredential(ctx context.Context) (*types.GlobalCredential, error) {
	ctx, span := s.tracer.Start(ctx, "admin.Service.GetCredential")
	defer span.End()

	return s.storage.GetGlobalCredential(ctx)
}

// UpdateCredential rotates the shared consumer key/secret. Takes effect on
// the next launch; outstanding page tokens are untouched.
func (s *Service) UpdateCredential(ctx context.Context, adminID, consumerKey, consumerSecret string) error {
	ctx, span := s.tracer.Start(ctx, "admin.Service.UpdateCredential")
	defer span.End()

	err := s.storage.UpsertGlobalCredential(ctx, &types.GlobalCredential{
		ConsumerKey:    consumerKey,
		ConsumerSecret: consumerSecret,
		UpdatedBy:      adminID,
	})
	if err != nil {
		return err
	}

	s.logger.Infof("admin %s rotated the consumer credential", adminID)

	return nil
}

func (s *Service) requireOrgAdmin(ctx context.Context, adminID, organizationID string) error {
	ok, err := s.authz.IsOrganizationAdmin(ctx, adminID, organizationID)
	if err != nil {
		return fmt.Errorf("failed to check organization admin: %w", err)
	}
	if !ok {
		s.logger.Security().AuthzFailure(adminID, "admin access to organization "+organizationID)
		return ErrNotAdmin
	}
	return nil
}
