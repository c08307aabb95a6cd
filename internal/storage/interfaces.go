// Copyright 2026 LAMB Project
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"time"

	"github.com/Lamb-Project/lamb-sub010/internal/types"
)

type StorageInterface interface {
	CreateActivity(ctx context.Context, a *types.Activity) (*types.Activity, error)
	GetActivityByPlacementID(ctx context.Context, placementID string) (*types.Activity, error)
	GetActivityByID(ctx context.Context, id string) (*types.Activity, error)
	ListActivitiesByOrganization(ctx context.Context, organizationID string) ([]*types.Activity, error)
	UpdateActivity(ctx context.Context, id, name string, chatVisibility bool) error
	SetActivityStatus(ctx context.Context, id, status string) error

	ListActivityAssistants(ctx context.Context, activityID string) ([]*types.ActivityAssistant, error)
	AddActivityAssistant(ctx context.Context, activityID, assistantID string) error
	RemoveActivityAssistant(ctx context.Context, activityID, assistantID string) error

	GetActivityUser(ctx context.Context, activityID, syntheticAddress string) (*types.ActivityUser, error)
	CreateActivityUser(ctx context.Context, u *types.ActivityUser) (*types.ActivityUser, error)
	TouchActivityUser(ctx context.Context, id string) error
	SetProviderUserRef(ctx context.Context, id, ref string) error
	RecordConsent(ctx context.Context, activityID, syntheticAddress string) error
	ListActivityUsersOrdered(ctx context.Context, activityID string) ([]*types.ActivityUser, error)
	ListParticipants(ctx context.Context, activityID string, offset, limit uint64) ([]*types.Participant, error)
	CountParticipants(ctx context.Context, activityID string) (int64, error)
	CountActiveParticipants(ctx context.Context, activityID string, since time.Time) (int64, error)

	FindIdentityLinks(ctx context.Context, ltiUserID, email string) ([]*types.IdentityLink, error)
	CreateIdentityLink(ctx context.Context, link *types.IdentityLink) (*types.IdentityLink, error)

	GetGlobalCredential(ctx context.Context) (*types.GlobalCredential, error)
	UpsertGlobalCredential(ctx context.Context, c *types.GlobalCredential) error

	ListPublishedAssistants(ctx context.Context, organizationID string) ([]*types.Assistant, error)
	GetAssistantsByIDs(ctx context.Context, ids []string) ([]*types.Assistant, error)
	GetAssistantsByResourceRefs(ctx context.Context, refs []string) ([]*types.Assistant, error)
}
