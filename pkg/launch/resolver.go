// Copyright 2026 LAMB Project
// SPDX-License-Identifier: AGPL-3.0

package launch

import (
	"context"
	"errors"
	"fmt"

	"github.com/Lamb-Project/lamb-sub010/internal/logging"
	"github.com/Lamb-Project/lamb-sub010/internal/monitoring"
	"github.com/Lamb-Project/lamb-sub010/internal/storage"
	"github.com/Lamb-Project/lamb-sub010/internal/tracing"
	"github.com/Lamb-Project/lamb-sub010/internal/types"
)

// Resolver runs the identity strategies in order and stops at the first one
// producing candidates. A strategy can yield one candidate per organization;
// later strategies are never consulted once an earlier one matched, so a
// stale manual link cannot widen an already-resolved launch.
type Resolver struct {
	storage StorageInterface
	kratos  KratosClientInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewResolver(
	storage StorageInterface,
	kratos KratosClientInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Resolver {
	return &Resolver{
		storage: storage,
		kratos:  kratos,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (r *Resolver) Resolve(ctx context.Context, ltiUserID, email string) ([]*types.AccountCandidate, error) {
	ctx, span := r.tracer.Start(ctx, "launch.Resolver.Resolve")
	defer span.End()

	strategies := []func(context.Context) ([]*types.AccountCandidate, error){
		// 1. Accounts whose credential identifier matches the LMS email.
		func(ctx context.Context) ([]*types.AccountCandidate, error) {
			return r.kratos.FindAccountsByEmail(ctx, email)
		},
		// 2. Accounts the catalog already links to this LMS user id.
		func(ctx context.Context) ([]*types.AccountCandidate, error) {
			return r.kratos.FindAccountsByLTILink(ctx, ltiUserID)
		},
		// 3. Previously recorded manual links for this LMS user or email.
		func(ctx context.Context) ([]*types.AccountCandidate, error) {
			return r.resolveIdentityLinks(ctx, ltiUserID, email)
		},
	}

	for _, strategy := range strategies {
		candidates, err := strategy(ctx)
		if err != nil {
			return nil, err
		}
		if len(candidates) > 0 {
			return dedupeCandidates(candidates), nil
		}
	}

	return nil, nil
}

func (r *Resolver) resolveIdentityLinks(ctx context.Context, ltiUserID, email string) ([]*types.AccountCandidate, error) {
	links, err := r.storage.FindIdentityLinks(ctx, ltiUserID, email)
	if err != nil {
		return nil, fmt.Errorf("failed to find identity links: %w", err)
	}

	var candidates []*types.AccountCandidate
	for _, link := range links {
		candidate, err := r.kratos.GetAccount(ctx, link.AccountID)
		if err != nil {
			// The linked account may have been deleted since; a stale link
			// must not fail the whole launch.
			r.logger.Warnf("skipping identity link %s: %v", link.ID, err)
			continue
		}
		candidates = append(candidates, candidate)
	}

	return candidates, nil
}

func dedupeCandidates(candidates []*types.AccountCandidate) []*types.AccountCandidate {
	seen := make(map[string]bool, len(candidates))
	out := candidates[:0]
	for _, c := range candidates {
		if c == nil || seen[c.AccountID] {
			continue
		}
		seen[c.AccountID] = true
		out = append(out, c)
	}
	return out
}

// Link verifies the presented credentials against the account catalog and
// persists the association so later launches resolve without a prompt.
func (r *Resolver) Link(ctx context.Context, ltiUserID, email, password string) (*types.AccountCandidate, error) {
	ctx, span := r.tracer.Start(ctx, "launch.Resolver.Link")
	defer span.End()

	accountID, err := r.kratos.VerifyCredentials(ctx, email, password)
	if err != nil {
		r.logger.Security().AuthnFailure(ltiUserID, "identity link credential check failed")
		return nil, ErrInvalidCredentials
	}

	candidate, err := r.kratos.GetAccount(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to load linked account: %w", err)
	}

	_, err = r.storage.CreateIdentityLink(ctx, &types.IdentityLink{
		LTIUserID: ltiUserID,
		Email:     email,
		AccountID: accountID,
	})
	if err != nil && !errors.Is(err, storage.ErrDuplicateKey) {
		return nil, fmt.Errorf("failed to persist identity link: %w", err)
	}

	return candidate, nil
}
