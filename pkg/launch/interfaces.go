// Copyright 2026 LAMB Project
// SPDX-License-Identifier: AGPL-3.0

package launch

import (
	"context"
	"net/http"

	"github.com/Lamb-Project/lamb-sub010/internal/lti"
	"github.com/Lamb-Project/lamb-sub010/internal/types"
	"github.com/Lamb-Project/lamb-sub010/pkg/authentication"
)

type ServiceInterface interface {
	Launch(ctx context.Context, r *http.Request) (*Result, error)
	SetupContext(ctx context.Context, claims *authentication.PageClaims) (*SetupContext, error)
	LinkIdentity(ctx context.Context, claims *authentication.PageClaims, email, password string) (*types.AccountCandidate, error)
	EnterSession(ctx context.Context, activityID, syntheticAddress string) (*Result, error)
}

// ResolverInterface maps an inbound LMS identity onto internal accounts. Each
// candidate carries the organization it would bind the activity to.
type ResolverInterface interface {
	Resolve(ctx context.Context, ltiUserID, email string) ([]*types.AccountCandidate, error)
	Link(ctx context.Context, ltiUserID, email, password string) (*types.AccountCandidate, error)
}

// CredentialsInterface yields the LTI consumer credentials to validate the
// next launch with. Resolution order is persisted override, then deployment
// default.
type CredentialsInterface interface {
	Resolve(ctx context.Context) (key, secret string, err error)
}

type ValidatorInterface interface {
	Validate(r *http.Request, launchURL, consumerKey, consumerSecret string) (*lti.LaunchParams, error)
}

type StorageInterface interface {
	GetActivityByPlacementID(ctx context.Context, placementID string) (*types.Activity, error)
	GetActivityByID(ctx context.Context, id string) (*types.Activity, error)
	GetActivityUser(ctx context.Context, activityID, syntheticAddress string) (*types.ActivityUser, error)
	CreateActivityUser(ctx context.Context, u *types.ActivityUser) (*types.ActivityUser, error)
	TouchActivityUser(ctx context.Context, id string) error
	SetProviderUserRef(ctx context.Context, id, ref string) error
	ListPublishedAssistants(ctx context.Context, organizationID string) ([]*types.Assistant, error)
	FindIdentityLinks(ctx context.Context, ltiUserID, email string) ([]*types.IdentityLink, error)
	CreateIdentityLink(ctx context.Context, link *types.IdentityLink) (*types.IdentityLink, error)
	GetGlobalCredential(ctx context.Context) (*types.GlobalCredential, error)
}

type KratosClientInterface interface {
	FindAccountsByEmail(ctx context.Context, email string) ([]*types.AccountCandidate, error)
	FindAccountsByLTILink(ctx context.Context, ltiUserID string) ([]*types.AccountCandidate, error)
	GetAccount(ctx context.Context, accountID string) (*types.AccountCandidate, error)
	VerifyCredentials(ctx context.Context, email, password string) (string, error)
}

type SessionsClientInterface interface {
	CreateOrGetUser(ctx context.Context, address, displayName string) (string, error)
	AddUserToGroup(ctx context.Context, userRef, groupRef string) error
	SessionURL(userRef string) string
}

type PageTokenInterface interface {
	Issue(claims authentication.PageClaims) (string, error)
	Verify(rawToken, purpose string) (*authentication.PageClaims, error)
}
