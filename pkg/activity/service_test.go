// Copyright 2026 LAMB Project
// SPDX-License-Identifier: AGPL-3.0

package activity

import (
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/Lamb-Project/lamb-sub010/internal/storage"
	"github.com/Lamb-Project/lamb-sub010/internal/types"
	"github.com/Lamb-Project/lamb-sub010/pkg/authentication"
)

//go:generate mockgen -build_flags=--mod=mod -package activity -destination ./mock_activity.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package activity -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package activity -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package activity -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

type serviceMocks struct {
	storage  *MockStorageInterface
	tx       *MockTxRunnerInterface
	resolver *MockResolverInterface
	authz    *MockAuthzInterface
	sessions *MockSessionsClientInterface
	logger   *MockLoggerInterface
	security *MockSecurityLoggerInterface
}

func newServiceUnderTest(t *testing.T) (*Service, *serviceMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := &serviceMocks{
		storage:  NewMockStorageInterface(ctrl),
		tx:       NewMockTxRunnerInterface(ctrl),
		resolver: NewMockResolverInterface(ctrl),
		authz:    NewMockAuthzInterface(ctrl),
		sessions: NewMockSessionsClientInterface(ctrl),
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
	m.logger.EXPECT().Infof(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	m.logger.EXPECT().Errorf(gomock.Any(), gomock.Any()).AnyTimes()

	// The transaction runner just executes the closure; rollback semantics
	// are covered by the db client's own tests.
	m.tx.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, f func(context.Context) error) error {
			return f(ctx)
		},
	).AnyTimes()

	s := NewService(m.storage, m.tx, m.resolver, m.authz, m.sessions, mockTracer, NewMockMonitorInterface(ctrl), m.logger)
	return s, m
}

func setupClaims() *authentication.PageClaims {
	return &authentication.PageClaims{
		Purpose:     authentication.PurposeSetup,
		PlacementID: "placement-1",
		Email:       "teacher@example.com",
		CourseID:    "course-1",
		CourseTitle: "Intro",
		RegisteredClaims: authentication.RegisteredClaims{
			Subject: "lti-user-1",
		},
	}
}

func TestService_Configure(t *testing.T) {
	candidate := &types.AccountCandidate{AccountID: "account-1", OrganizationID: "org-1"}
	assistant := &types.Assistant{ID: "assistant-1", OrganizationID: "org-1", Published: true, ResourceRef: "res-1"}

	t.Run("success", func(t *testing.T) {
		s, m := newServiceUnderTest(t)

		m.resolver.EXPECT().Resolve(gomock.Any(), "lti-user-1", "teacher@example.com").
			Return([]*types.AccountCandidate{candidate}, nil)
		m.storage.EXPECT().GetAssistantsByIDs(gomock.Any(), []string{"assistant-1"}).
			Return([]*types.Assistant{assistant}, nil)
		m.sessions.EXPECT().CreateGroup(gomock.Any(), "activity-placement-1").Return("group-1", nil)
		m.storage.EXPECT().CreateActivity(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, a *types.Activity) (*types.Activity, error) {
				if a.OrganizationID != "org-1" || a.OwnerID != "account-1" || a.GroupRef != "group-1" {
					t.Errorf("unexpected activity: %+v", a)
				}
				a.ID = "activity-1"
				return a, nil
			},
		)
		m.storage.EXPECT().AddActivityAssistant(gomock.Any(), "activity-1", "assistant-1").Return(nil)
		m.sessions.EXPECT().GrantGroupToResource(gomock.Any(), "res-1", "group-1").Return(nil)
		m.authz.EXPECT().AssignActivityOwner(gomock.Any(), "activity-1", "account-1").Return(nil)
		m.authz.EXPECT().LinkActivityToOrganization(gomock.Any(), "activity-1", "org-1").Return(nil)

		created, err := s.Configure(context.Background(), setupClaims(), &ConfigureRequest{
			AccountID:      "account-1",
			Name:           "My Activity",
			AssistantIDs:   []string{"assistant-1"},
			ChatVisibility: true,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.ID != "activity-1" {
			t.Errorf("unexpected activity: %+v", created)
		}
	})

	t.Run("rejects an account that is not a candidate", func(t *testing.T) {
		s, m := newServiceUnderTest(t)

		m.resolver.EXPECT().Resolve(gomock.Any(), "lti-user-1", "teacher@example.com").
			Return([]*types.AccountCandidate{candidate}, nil)
		m.security.EXPECT().AuthzFailure("lti-user-1", gomock.Any())

		_, err := s.Configure(context.Background(), setupClaims(), &ConfigureRequest{
			AccountID:    "someone-else",
			Name:         "My Activity",
			AssistantIDs: []string{"assistant-1"},
		})
		if !errors.Is(err, ErrUnknownAccount) {
			t.Fatalf("expected ErrUnknownAccount, got %v", err)
		}
	})

	t.Run("rejects assistants outside the bound organization", func(t *testing.T) {
		s, m := newServiceUnderTest(t)

		foreign := &types.Assistant{ID: "assistant-2", OrganizationID: "org-2", Published: true}

		m.resolver.EXPECT().Resolve(gomock.Any(), "lti-user-1", "teacher@example.com").
			Return([]*types.AccountCandidate{candidate}, nil)
		m.storage.EXPECT().GetAssistantsByIDs(gomock.Any(), []string{"assistant-2"}).
			Return([]*types.Assistant{foreign}, nil)

		_, err := s.Configure(context.Background(), setupClaims(), &ConfigureRequest{
			AccountID:    "account-1",
			Name:         "My Activity",
			AssistantIDs: []string{"assistant-2"},
		})
		if !errors.Is(err, ErrForeignAssistant) {
			t.Fatalf("expected ErrForeignAssistant, got %v", err)
		}
	})

	t.Run("rejects unpublished assistants", func(t *testing.T) {
		s, m := newServiceUnderTest(t)

		draft := &types.Assistant{ID: "assistant-3", OrganizationID: "org-1", Published: false}

		m.resolver.EXPECT().Resolve(gomock.Any(), "lti-user-1", "teacher@example.com").
			Return([]*types.AccountCandidate{candidate}, nil)
		m.storage.EXPECT().GetAssistantsByIDs(gomock.Any(), []string{"assistant-3"}).
			Return([]*types.Assistant{draft}, nil)

		_, err := s.Configure(context.Background(), setupClaims(), &ConfigureRequest{
			AccountID:    "account-1",
			Name:         "My Activity",
			AssistantIDs: []string{"assistant-3"},
		})
		if !errors.Is(err, ErrForeignAssistant) {
			t.Fatalf("expected ErrForeignAssistant, got %v", err)
		}
	})

	t.Run("losing the configuration race maps to conflict", func(t *testing.T) {
		s, m := newServiceUnderTest(t)

		m.resolver.EXPECT().Resolve(gomock.Any(), "lti-user-1", "teacher@example.com").
			Return([]*types.AccountCandidate{candidate}, nil)
		m.storage.EXPECT().GetAssistantsByIDs(gomock.Any(), []string{"assistant-1"}).
			Return([]*types.Assistant{assistant}, nil)
		m.sessions.EXPECT().CreateGroup(gomock.Any(), "activity-placement-1").Return("group-1", nil)
		m.storage.EXPECT().CreateActivity(gomock.Any(), gomock.Any()).Return(nil, storage.ErrDuplicateKey)

		_, err := s.Configure(context.Background(), setupClaims(), &ConfigureRequest{
			AccountID:    "account-1",
			Name:         "My Activity",
			AssistantIDs: []string{"assistant-1"},
		})
		if !errors.Is(err, ErrAlreadyConfigured) {
			t.Fatalf("expected ErrAlreadyConfigured, got %v", err)
		}
	})

	t.Run("a provider grant failure aborts the attempt", func(t *testing.T) {
		s, m := newServiceUnderTest(t)

		m.resolver.EXPECT().Resolve(gomock.Any(), "lti-user-1", "teacher@example.com").
			Return([]*types.AccountCandidate{candidate}, nil)
		m.storage.EXPECT().GetAssistantsByIDs(gomock.Any(), []string{"assistant-1"}).
			Return([]*types.Assistant{assistant}, nil)
		m.sessions.EXPECT().CreateGroup(gomock.Any(), "activity-placement-1").Return("group-1", nil)
		m.storage.EXPECT().CreateActivity(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, a *types.Activity) (*types.Activity, error) {
				a.ID = "activity-1"
				return a, nil
			},
		)
		m.storage.EXPECT().AddActivityAssistant(gomock.Any(), "activity-1", "assistant-1").Return(nil)
		m.sessions.EXPECT().GrantGroupToResource(gomock.Any(), "res-1", "group-1").
			Return(errors.New("provider unavailable"))

		if _, err := s.Configure(context.Background(), setupClaims(), &ConfigureRequest{
			AccountID:    "account-1",
			Name:         "My Activity",
			AssistantIDs: []string{"assistant-1"},
		}); err == nil {
			t.Fatal("expected an error")
		}
	})
}

func dashboardClaims() *authentication.PageClaims {
	return &authentication.PageClaims{
		Purpose:     authentication.PurposeDashboard,
		PlacementID: "placement-1",
		ActivityID:  "activity-1",
		Email:       "teacher@example.com",
		RegisteredClaims: authentication.RegisteredClaims{
			Subject: "lti-user-1",
		},
	}
}

func TestService_Reconfigure(t *testing.T) {
	activity := &types.Activity{
		ID:             "activity-1",
		PlacementID:    "placement-1",
		OrganizationID: "org-1",
		OwnerID:        "account-1",
		GroupRef:       "group-1",
	}
	owner := &types.AccountCandidate{AccountID: "account-1", OrganizationID: "org-1"}
	kept := &types.Assistant{ID: "assistant-1", OrganizationID: "org-1", Published: true, ResourceRef: "res-1"}
	added := &types.Assistant{ID: "assistant-2", OrganizationID: "org-1", Published: true, ResourceRef: "res-2"}
	dropped := &types.Assistant{ID: "assistant-3", OrganizationID: "org-1", Published: true, ResourceRef: "res-3"}

	t.Run("owner applies the symmetric difference", func(t *testing.T) {
		s, m := newServiceUnderTest(t)

		m.storage.EXPECT().GetActivityByID(gomock.Any(), "activity-1").Return(activity, nil)
		m.resolver.EXPECT().Resolve(gomock.Any(), "lti-user-1", "teacher@example.com").
			Return([]*types.AccountCandidate{owner}, nil)
		m.storage.EXPECT().GetAssistantsByIDs(gomock.Any(), []string{"assistant-1", "assistant-2"}).
			Return([]*types.Assistant{kept, added}, nil)
		m.storage.EXPECT().ListActivityAssistants(gomock.Any(), "activity-1").Return([]*types.ActivityAssistant{
			{AssistantID: "assistant-1"},
			{AssistantID: "assistant-3"},
		}, nil)
		m.storage.EXPECT().GetAssistantsByIDs(gomock.Any(), []string{"assistant-3"}).
			Return([]*types.Assistant{dropped}, nil)

		m.storage.EXPECT().UpdateActivity(gomock.Any(), "activity-1", "Renamed", false).Return(nil)
		m.storage.EXPECT().AddActivityAssistant(gomock.Any(), "activity-1", "assistant-2").Return(nil)
		m.sessions.EXPECT().GrantGroupToResource(gomock.Any(), "res-2", "group-1").Return(nil)
		m.storage.EXPECT().RemoveActivityAssistant(gomock.Any(), "activity-1", "assistant-3").Return(nil)
		m.sessions.EXPECT().RevokeGroupFromResource(gomock.Any(), "res-3", "group-1").Return(nil)

		m.storage.EXPECT().GetActivityByID(gomock.Any(), "activity-1").Return(activity, nil)

		if _, err := s.Reconfigure(context.Background(), dashboardClaims(), &ReconfigureRequest{
			ActivityID:     "activity-1",
			Name:           "Renamed",
			AssistantIDs:   []string{"assistant-1", "assistant-2"},
			ChatVisibility: false,
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("toggling visibility leaves recorded consent untouched", func(t *testing.T) {
		s, m := newServiceUnderTest(t)

		visible := &types.Activity{
			ID:             "activity-1",
			PlacementID:    "placement-1",
			OrganizationID: "org-1",
			OwnerID:        "account-1",
			GroupRef:       "group-1",
			ChatVisibility: true,
		}

		// Strict mocks: only the activity row itself is updated. No call
		// touches activity_users, so consent recorded while visibility was
		// on survives the off/on round trip.
		m.storage.EXPECT().GetActivityByID(gomock.Any(), "activity-1").Return(visible, nil)
		m.resolver.EXPECT().Resolve(gomock.Any(), "lti-user-1", "teacher@example.com").
			Return([]*types.AccountCandidate{owner}, nil)
		m.storage.EXPECT().GetAssistantsByIDs(gomock.Any(), []string{"assistant-1"}).
			Return([]*types.Assistant{kept}, nil)
		m.storage.EXPECT().ListActivityAssistants(gomock.Any(), "activity-1").
			Return([]*types.ActivityAssistant{{AssistantID: "assistant-1"}}, nil)
		m.storage.EXPECT().GetAssistantsByIDs(gomock.Any(), gomock.Len(0)).Return(nil, nil)
		m.storage.EXPECT().UpdateActivity(gomock.Any(), "activity-1", "My Activity", false).Return(nil)
		m.storage.EXPECT().GetActivityByID(gomock.Any(), "activity-1").Return(visible, nil)

		if _, err := s.Reconfigure(context.Background(), dashboardClaims(), &ReconfigureRequest{
			ActivityID:     "activity-1",
			Name:           "My Activity",
			AssistantIDs:   []string{"assistant-1"},
			ChatVisibility: false,
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("an instructor who is not the owner is refused", func(t *testing.T) {
		s, m := newServiceUnderTest(t)

		other := &types.AccountCandidate{AccountID: "account-2", OrganizationID: "org-1"}

		m.storage.EXPECT().GetActivityByID(gomock.Any(), "activity-1").Return(activity, nil)
		m.resolver.EXPECT().Resolve(gomock.Any(), "lti-user-1", "teacher@example.com").
			Return([]*types.AccountCandidate{other}, nil)
		m.authz.EXPECT().CanManageActivity(gomock.Any(), "account-2", "activity-1").Return(false, nil)
		m.security.EXPECT().AuthzFailure("lti-user-1", gomock.Any())

		_, err := s.Reconfigure(context.Background(), dashboardClaims(), &ReconfigureRequest{
			ActivityID:   "activity-1",
			Name:         "Renamed",
			AssistantIDs: []string{"assistant-1"},
		})
		if !errors.Is(err, ErrNotOwner) {
			t.Fatalf("expected ErrNotOwner, got %v", err)
		}
	})

	t.Run("an organization admin may manage someone else's activity", func(t *testing.T) {
		s, m := newServiceUnderTest(t)

		admin := &types.AccountCandidate{AccountID: "admin-1", OrganizationID: "org-1"}

		m.storage.EXPECT().GetActivityByID(gomock.Any(), "activity-1").Return(activity, nil)
		m.resolver.EXPECT().Resolve(gomock.Any(), "lti-user-1", "teacher@example.com").
			Return([]*types.AccountCandidate{admin}, nil)
		m.authz.EXPECT().CanManageActivity(gomock.Any(), "admin-1", "activity-1").Return(true, nil)
		m.storage.EXPECT().GetAssistantsByIDs(gomock.Any(), []string{"assistant-1"}).
			Return([]*types.Assistant{kept}, nil)
		m.storage.EXPECT().ListActivityAssistants(gomock.Any(), "activity-1").
			Return([]*types.ActivityAssistant{{AssistantID: "assistant-1"}}, nil)
		m.storage.EXPECT().GetAssistantsByIDs(gomock.Any(), gomock.Len(0)).Return(nil, nil)
		m.storage.EXPECT().UpdateActivity(gomock.Any(), "activity-1", "Renamed", true).Return(nil)
		m.storage.EXPECT().GetActivityByID(gomock.Any(), "activity-1").Return(activity, nil)

		if _, err := s.Reconfigure(context.Background(), dashboardClaims(), &ReconfigureRequest{
			ActivityID:     "activity-1",
			Name:           "Renamed",
			AssistantIDs:   []string{"assistant-1"},
			ChatVisibility: true,
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("a token for another placement is refused", func(t *testing.T) {
		s, m := newServiceUnderTest(t)

		foreign := &types.Activity{ID: "activity-1", PlacementID: "placement-other"}
		m.storage.EXPECT().GetActivityByID(gomock.Any(), "activity-1").Return(foreign, nil)

		_, err := s.Reconfigure(context.Background(), dashboardClaims(), &ReconfigureRequest{
			ActivityID:   "activity-1",
			Name:         "Renamed",
			AssistantIDs: []string{"assistant-1"},
		})
		if !errors.Is(err, ErrNotOwner) {
			t.Fatalf("expected ErrNotOwner, got %v", err)
		}
	})
}
