// Copyright 2026 LAMB Project
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"

	fga "github.com/openfga/go-sdk"
	"github.com/openfga/go-sdk/client"

	"github.com/Lamb-Project/lamb-sub010/internal/openfga"
)

type AuthorizerInterface interface {
	Check(context.Context, string, string, string, ...openfga.Tuple) (bool, error)
	ListObjects(context.Context, string, string, string) ([]string, error)
	ValidateModel(context.Context) error

	AssignActivityOwner(ctx context.Context, activityID, accountID string) error
	// LinkActivityToOrganization binds an activity under an organization so
	// organization admins can manage it.
	LinkActivityToOrganization(ctx context.Context, activityID, organizationID string) error
	AssignOrganizationAdmin(ctx context.Context, organizationID, accountID string) error

	CanManageActivity(ctx context.Context, accountID, activityID string) (bool, error)
	IsOrganizationAdmin(ctx context.Context, accountID, organizationID string) (bool, error)
}

type AuthzClientInterface interface {
	Check(context.Context, string, string, string, ...openfga.Tuple) (bool, error)
	ListObjects(context.Context, string, string, string) ([]string, error)
	ReadTuples(context.Context, string, string, string, string) (*client.ClientReadResponse, error)
	WriteTuple(ctx context.Context, user, relation, object string) error
	DeleteTuple(ctx context.Context, user, relation, object string) error
	DeleteTuples(context.Context, ...openfga.Tuple) error
	WriteModel(context.Context, fga.WriteAuthorizationModelRequest) (string, error)
	CompareModel(context.Context, fga.WriteAuthorizationModelRequest) (bool, error)
	ReadModel(context.Context) (*fga.AuthorizationModel, error)
	CreateStore(context.Context, string) (string, error)
}
