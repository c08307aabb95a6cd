// Copyright 2026 LAMB Project
// SPDX-License-Identifier: AGPL-3.0

package admin

import (
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/Lamb-Project/lamb-sub010/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package admin -destination ./mock_admin.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package admin -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package admin -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package admin -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

func newServiceUnderTest(t *testing.T) (*Service, *MockStorageInterface, *MockAuthzInterface, *MockSecurityLoggerInterface) {
	t.Helper()
	ctrl := gomock.NewController(t)

	mockStorage := NewMockStorageInterface(ctrl)
	mockAuthz := NewMockAuthzInterface(ctrl)
	mockSecurity := NewMockSecurityLoggerInterface(ctrl)

	mockTracer := NewMockTracingInterface(ctrl)
	mockTracer.EXPECT().Start(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
			return ctx, trace.SpanFromContext(ctx)
		},
	).AnyTimes()

	mockLogger := NewMockLoggerInterface(ctrl)
	mockLogger.EXPECT().Security().Return(mockSecurity).AnyTimes()
	mockLogger.EXPECT().Infof(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Infof(gomock.Any(), gomock.Any()).AnyTimes()

	s := NewService(mockStorage, mockAuthz, mockTracer, NewMockMonitorInterface(ctrl), mockLogger)
	return s, mockStorage, mockAuthz, mockSecurity
}

func TestService_ListActivities(t *testing.T) {
	t.Run("organization admin lists activities", func(t *testing.T) {
		s, mockStorage, mockAuthz, _ := newServiceUnderTest(t)

		mockAuthz.EXPECT().IsOrganizationAdmin(gomock.Any(), "admin-1", "org-1").Return(true, nil)
		mockStorage.EXPECT().ListActivitiesByOrganization(gomock.Any(), "org-1").
			Return([]*types.Activity{{ID: "activity-1"}}, nil)

		activities, err := s.ListActivities(context.Background(), "admin-1", "org-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(activities) != 1 {
			t.Errorf("expected 1 activity, got %d", len(activities))
		}
	})

	t.Run("a non-admin is refused with an audit entry", func(t *testing.T) {
		s, _, mockAuthz, mockSecurity := newServiceUnderTest(t)

		mockAuthz.EXPECT().IsOrganizationAdmin(gomock.Any(), "admin-1", "org-1").Return(false, nil)
		mockSecurity.EXPECT().AuthzFailure("admin-1", gomock.Any())

		if _, err := s.ListActivities(context.Background(), "admin-1", "org-1"); !errors.Is(err, ErrNotAdmin) {
			t.Fatalf("expected ErrNotAdmin, got %v", err)
		}
	})
}

func TestService_SetActivityStatus(t *testing.T) {
	activity := &types.Activity{ID: "activity-1", OrganizationID: "org-1"}

	t.Run("disable", func(t *testing.T) {
		s, mockStorage, mockAuthz, _ := newServiceUnderTest(t)

		mockStorage.EXPECT().GetActivityByID(gomock.Any(), "activity-1").Return(activity, nil)
		mockAuthz.EXPECT().IsOrganizationAdmin(gomock.Any(), "admin-1", "org-1").Return(true, nil)
		mockStorage.EXPECT().SetActivityStatus(gomock.Any(), "activity-1", types.ActivityStatusDisabled).Return(nil)

		if err := s.SetActivityStatus(context.Background(), "admin-1", "activity-1", types.ActivityStatusDisabled); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("unknown status is rejected before any check", func(t *testing.T) {
		s, _, _, _ := newServiceUnderTest(t)

		if err := s.SetActivityStatus(context.Background(), "admin-1", "activity-1", "archived"); err == nil {
			t.Fatal("expected an error")
		}
	})

	t.Run("admin of another organization is refused", func(t *testing.T) {
		s, mockStorage, mockAuthz, mockSecurity := newServiceUnderTest(t)

		mockStorage.EXPECT().GetActivityByID(gomock.Any(), "activity-1").Return(activity, nil)
		mockAuthz.EXPECT().IsOrganizationAdmin(gomock.Any(), "admin-2", "org-1").Return(false, nil)
		mockSecurity.EXPECT().AuthzFailure("admin-2", gomock.Any())

		err := s.SetActivityStatus(context.Background(), "admin-2", "activity-1", types.ActivityStatusDisabled)
		if !errors.Is(err, ErrNotAdmin) {
			t.Fatalf("expected ErrNotAdmin, got %v", err)
		}
	})
}

func TestService_UpdateCredential(t *testing.T) {
	s, mockStorage, _, _ := newServiceUnderTest(t)

	mockStorage.EXPECT().UpsertGlobalCredential(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, c *types.GlobalCredential) error {
			if c.ConsumerKey != "new-key" || c.ConsumerSecret != "new-secret" || c.UpdatedBy != "admin-1" {
				t.Errorf("unexpected credential: %+v", c)
			}
			return nil
		},
	)

	if err := s.UpdateCredential(context.Background(), "admin-1", "new-key", "new-secret"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
