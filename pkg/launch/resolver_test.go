// Copyright 2026 LAMB Project
// SPDX-License-Identifier: AGPL-3.0

package launch

import (
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/Lamb-Project/lamb-sub010/internal/storage"
	"github.com/Lamb-Project/lamb-sub010/internal/types"
)

type resolverMocks struct {
	storage  *MockStorageInterface
	kratos   *MockKratosClientInterface
	logger   *MockLoggerInterface
	security *MockSecurityLoggerInterface
}

func newResolverUnderTest(t *testing.T) (*Resolver, *resolverMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := &resolverMocks{
		storage:  NewMockStorageInterface(ctrl),
		kratos:   NewMockKratosClientInterface(ctrl),
		logger:   NewMockLoggerInterface(ctrl),
		security: NewMockSecurityLoggerInterface(ctrl),
	}

	mockTracer := NewMockTracingInterface(ctrl)
	mockTracer.EXPECT().Start(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
			return ctx, trace.SpanFromContext(ctx)
		},
	).AnyTimes()

	m.logger.EXPECT().Security().Return(m.security).AnyTimes()
	m.logger.EXPECT().Warnf(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()

	r := NewResolver(m.storage, m.kratos, mockTracer, NewMockMonitorInterface(ctrl), m.logger)
	return r, m
}

func TestResolver_Resolve(t *testing.T) {
	t.Run("an email match wins and later strategies are not consulted", func(t *testing.T) {
		r, m := newResolverUnderTest(t)

		// No FindAccountsByLTILink or FindIdentityLinks expectations: a stale
		// manual link into another organization must not widen the result.
		m.kratos.EXPECT().FindAccountsByEmail(gomock.Any(), "teacher@example.com").Return([]*types.AccountCandidate{
			{AccountID: "account-1", OrganizationID: "org-1"},
		}, nil)

		candidates, err := r.Resolve(context.Background(), "lti-user-1", "teacher@example.com")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(candidates) != 1 || candidates[0].AccountID != "account-1" {
			t.Fatalf("expected only the email match, got %+v", candidates)
		}
	})

	t.Run("the catalog LTI link is consulted when email yields nothing", func(t *testing.T) {
		r, m := newResolverUnderTest(t)

		m.kratos.EXPECT().FindAccountsByEmail(gomock.Any(), "teacher@example.com").Return(nil, nil)
		m.kratos.EXPECT().FindAccountsByLTILink(gomock.Any(), "lti-user-1").Return([]*types.AccountCandidate{
			{AccountID: "account-2", OrganizationID: "org-2"},
		}, nil)

		candidates, err := r.Resolve(context.Background(), "lti-user-1", "teacher@example.com")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(candidates) != 1 || candidates[0].AccountID != "account-2" {
			t.Fatalf("expected the LTI-linked account, got %+v", candidates)
		}
	})

	t.Run("stored identity links are the last resort and deduplicated", func(t *testing.T) {
		r, m := newResolverUnderTest(t)

		m.kratos.EXPECT().FindAccountsByEmail(gomock.Any(), "teacher@example.com").Return(nil, nil)
		m.kratos.EXPECT().FindAccountsByLTILink(gomock.Any(), "lti-user-1").Return(nil, nil)
		m.storage.EXPECT().FindIdentityLinks(gomock.Any(), "lti-user-1", "teacher@example.com").Return([]*types.IdentityLink{
			{ID: "link-1", AccountID: "account-2"},
			{ID: "link-2", AccountID: "account-2"},
		}, nil)
		m.kratos.EXPECT().GetAccount(gomock.Any(), "account-2").Times(2).
			Return(&types.AccountCandidate{AccountID: "account-2", OrganizationID: "org-2"}, nil)

		candidates, err := r.Resolve(context.Background(), "lti-user-1", "teacher@example.com")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(candidates) != 1 || candidates[0].AccountID != "account-2" {
			t.Fatalf("expected one deduplicated candidate, got %+v", candidates)
		}
	})

	t.Run("a stale link is skipped, not fatal", func(t *testing.T) {
		r, m := newResolverUnderTest(t)

		m.kratos.EXPECT().FindAccountsByEmail(gomock.Any(), "").Return(nil, nil)
		m.kratos.EXPECT().FindAccountsByLTILink(gomock.Any(), "lti-user-1").Return(nil, nil)
		m.storage.EXPECT().FindIdentityLinks(gomock.Any(), "lti-user-1", "").Return([]*types.IdentityLink{
			{ID: "link-1", AccountID: "deleted-account"},
		}, nil)
		m.kratos.EXPECT().GetAccount(gomock.Any(), "deleted-account").Return(nil, errors.New("identity not found"))

		candidates, err := r.Resolve(context.Background(), "lti-user-1", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(candidates) != 0 {
			t.Errorf("expected no candidates, got %d", len(candidates))
		}
	})

	t.Run("catalog failure is fatal", func(t *testing.T) {
		r, m := newResolverUnderTest(t)

		m.kratos.EXPECT().FindAccountsByEmail(gomock.Any(), "teacher@example.com").Return(nil, errors.New("kratos down"))

		if _, err := r.Resolve(context.Background(), "lti-user-1", "teacher@example.com"); err == nil {
			t.Fatal("expected an error")
		}
	})
}

func TestResolver_Link(t *testing.T) {
	t.Run("verifies credentials and persists the link", func(t *testing.T) {
		r, m := newResolverUnderTest(t)

		m.kratos.EXPECT().VerifyCredentials(gomock.Any(), "teacher@example.com", "hunter2").Return("account-1", nil)
		m.kratos.EXPECT().GetAccount(gomock.Any(), "account-1").Return(&types.AccountCandidate{AccountID: "account-1", OrganizationID: "org-1"}, nil)
		m.storage.EXPECT().CreateIdentityLink(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, link *types.IdentityLink) (*types.IdentityLink, error) {
				if link.LTIUserID != "lti-user-1" || link.AccountID != "account-1" {
					t.Errorf("unexpected link: %+v", link)
				}
				return link, nil
			},
		)

		candidate, err := r.Link(context.Background(), "lti-user-1", "teacher@example.com", "hunter2")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if candidate.AccountID != "account-1" {
			t.Errorf("unexpected candidate: %+v", candidate)
		}
	})

	t.Run("an existing link is not an error", func(t *testing.T) {
		r, m := newResolverUnderTest(t)

		m.kratos.EXPECT().VerifyCredentials(gomock.Any(), "teacher@example.com", "hunter2").Return("account-1", nil)
		m.kratos.EXPECT().GetAccount(gomock.Any(), "account-1").Return(&types.AccountCandidate{AccountID: "account-1", OrganizationID: "org-1"}, nil)
		m.storage.EXPECT().CreateIdentityLink(gomock.Any(), gomock.Any()).Return(nil, storage.ErrDuplicateKey)

		if _, err := r.Link(context.Background(), "lti-user-1", "teacher@example.com", "hunter2"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("bad credentials are reported as invalid, with an audit entry", func(t *testing.T) {
		r, m := newResolverUnderTest(t)

		m.kratos.EXPECT().VerifyCredentials(gomock.Any(), "teacher@example.com", "wrong").Return("", errors.New("401"))
		m.security.EXPECT().AuthnFailure("lti-user-1", gomock.Any())

		if _, err := r.Link(context.Background(), "lti-user-1", "teacher@example.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})
}
