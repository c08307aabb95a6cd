// Copyright 2026 LAMB Project
// SPDX-License-Identifier: AGPL-3.0

package admin

import (
	"context"

	"github.com/Lamb-Project/lamb-sub010/internal/types"
)

type ServiceInterface interface {
	ListActivities(ctx context.Context, adminID, organizationID string) ([]*types.Activity, error)
	GetActivity(ctx context.Context, adminID, activityID string) (*types.Activity, error)
	UpdateActivity(ctx context.Context, adminID, activityID, name string, chatVisibility bool) (*types.Activity, error)
	SetActivityStatus(ctx context.Context, adminID, activityID, status string) error
	GetCredential(ctx context.Context) (*types.GlobalCredential, error)
	UpdateCredential(ctx context.Context, adminID, consumerKey, consumerSecret string) error
}

type StorageInterface interface {
	ListActivitiesByOrganization(ctx context.Context, organizationID string) ([]*types.Activity, error)
	GetActivityByID(ctx context.Context, id string) (*types.Activity, error)
	UpdateActivity(ctx context.Context, id, name string, chatVisibility bool) error
	SetActivityStatus(ctx context.Context, id, status string) error
	GetGlobalCredential(ctx context.Context) (*types.GlobalCredential, error)
	UpsertGlobalCredential(ctx context.Context, c *types.GlobalCredential) error
}

type AuthzInterface interface {
	IsOrganizationAdmin(ctx context.Context, accountID, organizationID string) (bool, error)
}
