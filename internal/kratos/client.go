// Copyright 2026 LAMB Project
// SPDX-License-Identifier: AGPL-3.0

package kratos

import (
	"context"
	"fmt"

	ory "github.com/ory/client-go"

	"github.com/Lamb-Project/lamb-sub010/internal/logging"
	"github.com/Lamb-Project/lamb-sub010/internal/monitoring"
	"github.com/Lamb-Project/lamb-sub010/internal/tracing"
	"github.com/Lamb-Project/lamb-sub010/internal/types"
)

// ClientInterface is the account/organization catalog boundary. Accounts live
// in Ory Kratos; the organization binding is carried in identity traits.
type ClientInterface interface {
	FindAccountsByEmail(ctx context.Context, email string) ([]*types.AccountCandidate, error)
	FindAccountsByLTILink(ctx context.Context, ltiUserID string) ([]*types.AccountCandidate, error)
	GetAccount(ctx context.Context, accountID string) (*types.AccountCandidate, error)
	VerifyCredentials(ctx context.Context, email, password string) (string, error)
}

type Client struct {
	admin  *ory.APIClient
	public *ory.APIClient

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewClient(adminURL, publicURL string, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Client {
	adminConf := ory.NewConfiguration()
	adminConf.Servers = ory.ServerConfigurations{{URL: adminURL}}

	publicConf := ory.NewConfiguration()
	publicConf.Servers = ory.ServerConfigurations{{URL: publicURL}}

	return &Client{
		admin:   ory.NewAPIClient(adminConf),
		public:  ory.NewAPIClient(publicConf),
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (c *Client) FindAccountsByEmail(ctx context.Context, email string) ([]*types.AccountCandidate, error) {
	ctx, span := c.tracer.Start(ctx, "kratos.FindAccountsByEmail")
	defer span.End()

	if email == "" {
		return nil, nil
	}

	// NOTE: empty page token because of https://github.com/ory/sdk/issues/461
	ids, _, err := c.admin.IdentityAPI.ListIdentities(ctx).CredentialsIdentifier(email).PageToken("").Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to list identities: %w", err)
	}

	var candidates []*types.AccountCandidate
	for _, id := range ids {
		if candidate := candidateFromIdentity(&id); candidate != nil {
			candidates = append(candidates, candidate)
		}
	}

	return candidates, nil
}

// FindAccountsByLTILink matches against accounts that already carry the LMS
// user id as a federated credential identifier from an earlier link.
func (c *Client) FindAccountsByLTILink(ctx context.Context, ltiUserID string) ([]*types.AccountCandidate, error) {
	ctx, span := c.tracer.Start(ctx, "kratos.FindAccountsByLTILink")
	defer span.End()

	if ltiUserID == "" {
		return nil, nil
	}

	// NOTE: empty page token because of https://github.com/ory/sdk/issues/461
	ids, _, err := c.admin.IdentityAPI.ListIdentities(ctx).CredentialsIdentifier(ltiUserID).PageToken("").Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to list identities: %w", err)
	}

	var candidates []*types.AccountCandidate
	for _, id := range ids {
		if candidate := candidateFromIdentity(&id); candidate != nil {
			candidates = append(candidates, candidate)
		}
	}

	return candidates, nil
}

func (c *Client) GetAccount(ctx context.Context, accountID string) (*types.AccountCandidate, error) {
	ctx, span := c.tracer.Start(ctx, "kratos.GetAccount")
	defer span.End()

	identity, _, err := c.admin.IdentityAPI.GetIdentity(ctx, accountID).Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to get identity: %w", err)
	}

	candidate := candidateFromIdentity(identity)
	if candidate == nil {
		return nil, fmt.Errorf("identity %s has no usable traits", accountID)
	}

	return candidate, nil
}

// VerifyCredentials runs a native password login flow and returns the account
// ID on success. Used only by the manual identity-linking fallback.
func (c *Client) VerifyCredentials(ctx context.Context, email, password string) (string, error) {
	ctx, span := c.tracer.Start(ctx, "kratos.VerifyCredentials")
	defer span.End()

	flow, _, err := c.public.FrontendAPI.CreateNativeLoginFlow(ctx).Execute()
	if err != nil {
		return "", fmt.Errorf("failed to create login flow: %w", err)
	}

	body := ory.UpdateLoginFlowWithPasswordMethodAsUpdateLoginFlowBody(
		ory.NewUpdateLoginFlowWithPasswordMethod(email, "password", password),
	)

	login, _, err := c.public.FrontendAPI.UpdateLoginFlow(ctx).
		Flow(flow.Id).
		UpdateLoginFlowBody(body).
		Execute()
	if err != nil {
		return "", fmt.Errorf("credential verification failed: %w", err)
	}

	return login.Session.Identity.Id, nil
}

func candidateFromIdentity(identity *ory.Identity) *types.AccountCandidate {
	traits, ok := identity.Traits.(map[string]interface{})
	if !ok {
		return nil
	}

	candidate := &types.AccountCandidate{AccountID: identity.Id}
	if email, ok := traits["email"].(string); ok {
		candidate.Email = email
	}
	if name, ok := traits["name"].(string); ok {
		candidate.DisplayName = name
	}
	if org, ok := traits["organization_id"].(string); ok {
		candidate.OrganizationID = org
	}

	if candidate.OrganizationID == "" {
		// An account without an organization cannot own activities.
		return nil
	}

	return candidate
}
