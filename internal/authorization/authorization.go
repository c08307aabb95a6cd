// Copyright 2026 LAMB Project
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"
	"fmt"

	"github.com/Lamb-Project/lamb-sub010/internal/logging"
	"github.com/Lamb-Project/lamb-sub010/internal/monitoring"
	"github.com/Lamb-Project/lamb-sub010/internal/openfga"
	"github.com/Lamb-Project/lamb-sub010/internal/tracing"
)

var ErrInvalidAuthModel = fmt.Errorf("invalid authorization model schema")

var _ AuthorizerInterface = (*Authorizer)(nil)

type Authorizer struct {
	client AuthzClientInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *Authorizer) Check(ctx context.Context, user, relation, object string, contextualTuples ...openfga.Tuple) (bool, error) {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.Check")
	defer span.End()

	return a.client.Check(ctx, user, relation, object, contextualTuples...)
}

func (a *Authorizer) ListObjects(ctx context.Context, user, relation, objectType string) ([]string, error) {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.ListObjects")
	defer span.End()

	return a.client.ListObjects(ctx, user, relation, objectType)
}

func (a *Authorizer) ValidateModel(ctx context.Context) error {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.ValidateModel")
	defer span.End()

	v0AuthzModel := NewAuthorizationModelProvider("v0")
	model := *v0AuthzModel.GetModel()

	eq, err := a.client.CompareModel(ctx, model)
	if err != nil {
		return err
	}
	if !eq {
		return ErrInvalidAuthModel
	}
	return nil
}

func (a *Authorizer) AssignActivityOwner(ctx context.Context, activityID, accountID string) error {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.AssignActivityOwner")
	defer span.End()

	return a.client.WriteTuple(ctx, UserTuple(accountID), OWNER_RELATION, ActivityTuple(activityID))
}

func (a *Authorizer) LinkActivityToOrganization(ctx context.Context, activityID, organizationID string) error {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.LinkActivityToOrganization")
	defer span.End()

	return a.client.WriteTuple(ctx, OrganizationTuple(organizationID), ORGANIZATION_RELATION, ActivityTuple(activityID))
}

func (a *Authorizer) AssignOrganizationAdmin(ctx context.Context, organizationID, accountID string) error {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.AssignOrganizationAdmin")
	defer span.End()

	return a.client.WriteTuple(ctx, UserTuple(accountID), ADMIN_RELATION, OrganizationTuple(organizationID))
}

// CanManageActivity resolves the can_manage union: the direct owner or an
// admin of the organization the activity is linked under.
func (a *Authorizer) CanManageActivity(ctx context.Context, accountID, activityID string) (bool, error) {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.CanManageActivity")
	defer span.End()

	return a.client.Check(ctx, UserTuple(accountID), CAN_MANAGE_PERMISSION, ActivityTuple(activityID))
}

func (a *Authorizer) IsOrganizationAdmin(ctx context.Context, accountID, organizationID string) (bool, error) {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.IsOrganizationAdmin")
	defer span.End()

	return a.client.Check(ctx, UserTuple(accountID), ADMIN_RELATION, OrganizationTuple(organizationID))
}

func NewAuthorizer(client AuthzClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Authorizer {
	authorizer := new(Authorizer)
	authorizer.client = client
	authorizer.tracer = tracer
	authorizer.monitor = monitor
	authorizer.logger = logger

	return authorizer
}
