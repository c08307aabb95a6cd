// Copyright 2026 LAMB Project
// SPDX-License-Identifier: AGPL-3.0

package activity

import (
	"context"

	"github.com/Lamb-Project/lamb-sub010/internal/types"
	"github.com/Lamb-Project/lamb-sub010/pkg/authentication"
)

type ServiceInterface interface {
	Configure(ctx context.Context, claims *authentication.PageClaims, req *ConfigureRequest) (*types.Activity, error)
	Reconfigure(ctx context.Context, claims *authentication.PageClaims, req *ReconfigureRequest) (*types.Activity, error)
	GetConfiguration(ctx context.Context, activityID string) (*Configuration, error)
}

type StorageInterface interface {
	CreateActivity(ctx context.Context, a *types.Activity) (*types.Activity, error)
	GetActivityByPlacementID(ctx context.Context, placementID string) (*types.Activity, error)
	GetActivityByID(ctx context.Context, id string) (*types.Activity, error)
	UpdateActivity(ctx context.Context, id, name string, chatVisibility bool) error
	ListActivityAssistants(ctx context.Context, activityID string) ([]*types.ActivityAssistant, error)
	AddActivityAssistant(ctx context.Context, activityID, assistantID string) error
	RemoveActivityAssistant(ctx context.Context, activityID, assistantID string) error
	GetAssistantsByIDs(ctx context.Context, ids []string) ([]*types.Assistant, error)
}

type ResolverInterface interface {
	Resolve(ctx context.Context, ltiUserID, email string) ([]*types.AccountCandidate, error)
}

type AuthzInterface interface {
	CanManageActivity(ctx context.Context, accountID, activityID string) (bool, error)
	AssignActivityOwner(ctx context.Context, activityID, accountID string) error
	LinkActivityToOrganization(ctx context.Context, activityID, organizationID string) error
}

type SessionsClientInterface interface {
	CreateGroup(ctx context.Context, name string) (string, error)
	GrantGroupToResource(ctx context.Context, resourceID, groupRef string) error
	RevokeGroupFromResource(ctx context.Context, resourceID, groupRef string) error
}

type TxRunnerInterface interface {
	WithTx(ctx context.Context, f func(ctx context.Context) error) error
}
