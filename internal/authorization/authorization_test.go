// Copyright 2026 LAMB Project
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"
)

//go:generate mockgen -build_flags=--mod=mod -package authorization -destination ./mock_interfaces.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package authorization -destination ./mock_logger.go -source=../logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package authorization -destination ./mock_monitor.go -source=../monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package authorization -destination ./mock_tracing.go -source=../tracing/interfaces.go

func setupAuthorizer(t *testing.T, spanName string) (*Authorizer, *MockAuthzClientInterface) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockClient := NewMockAuthzClientInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)

	mockTracer.EXPECT().Start(gomock.Any(), spanName).
		Return(context.Background(), trace.SpanFromContext(context.Background()))

	return NewAuthorizer(mockClient, mockTracer, mockMonitor, mockLogger), mockClient
}

// The account always lands in the user position of the tuple and the target
// object in the object position, in the order the services pass them.
func TestAuthorizerCanManageActivityTuple(t *testing.T) {
	a, mockClient := setupAuthorizer(t, "authorization.Authorizer.CanManageActivity")

	mockClient.EXPECT().
		Check(gomock.Any(), "user:account-1", CAN_MANAGE_PERMISSION, "activity:activity-1").
		Return(true, nil)

	ok, err := a.CanManageActivity(context.Background(), "account-1", "activity-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Error("expected check to pass through the client result")
	}
}

func TestAuthorizerIsOrganizationAdminTuple(t *testing.T) {
	testCases := []struct {
		name     string
		allowed  bool
		clientEr error
	}{
		{name: "admin", allowed: true},
		{name: "not admin", allowed: false},
		{name: "client error", clientEr: errors.New("client error")},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			a, mockClient := setupAuthorizer(t, "authorization.Authorizer.IsOrganizationAdmin")

			mockClient.EXPECT().
				Check(gomock.Any(), "user:admin-1", ADMIN_RELATION, "organization:org-1").
				Return(tc.allowed, tc.clientEr)

			ok, err := a.IsOrganizationAdmin(context.Background(), "admin-1", "org-1")

			if tc.clientEr != nil {
				if err == nil {
					t.Fatal("expected error but got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if ok != tc.allowed {
				t.Errorf("expected %v, got %v", tc.allowed, ok)
			}
		})
	}
}

func TestAuthorizerAssignmentTuples(t *testing.T) {
	t.Run("activity owner", func(t *testing.T) {
		a, mockClient := setupAuthorizer(t, "authorization.Authorizer.AssignActivityOwner")

		mockClient.EXPECT().
			WriteTuple(gomock.Any(), "user:account-1", OWNER_RELATION, "activity:activity-1").
			Return(nil)

		if err := a.AssignActivityOwner(context.Background(), "activity-1", "account-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("organization link", func(t *testing.T) {
		a, mockClient := setupAuthorizer(t, "authorization.Authorizer.LinkActivityToOrganization")

		mockClient.EXPECT().
			WriteTuple(gomock.Any(), "organization:org-1", ORGANIZATION_RELATION, "activity:activity-1").
			Return(nil)

		if err := a.LinkActivityToOrganization(context.Background(), "activity-1", "org-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("organization admin", func(t *testing.T) {
		a, mockClient := setupAuthorizer(t, "authorization.Authorizer.AssignOrganizationAdmin")

		mockClient.EXPECT().
			WriteTuple(gomock.Any(), "user:account-1", ADMIN_RELATION, "organization:org-1").
			Return(nil)

		if err := a.AssignOrganizationAdmin(context.Background(), "org-1", "account-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestAuthorizerValidateModel(t *testing.T) {
	testCases := []struct {
		name        string
		setupMocks  func(*MockAuthzClientInterface)
		expectedErr error
	}{
		{
			name: "model matches",
			setupMocks: func(mockClient *MockAuthzClientInterface) {
				mockClient.EXPECT().CompareModel(gomock.Any(), gomock.Any()).Return(true, nil)
			},
		},
		{
			name: "model out of sync",
			setupMocks: func(mockClient *MockAuthzClientInterface) {
				mockClient.EXPECT().CompareModel(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			expectedErr: ErrInvalidAuthModel,
		},
		{
			name: "client error",
			setupMocks: func(mockClient *MockAuthzClientInterface) {
				mockClient.EXPECT().CompareModel(gomock.Any(), gomock.Any()).Return(false, errors.New("client error"))
			},
			expectedErr: errors.New("client error"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			a, mockClient := setupAuthorizer(t, "authorization.Authorizer.ValidateModel")
			tc.setupMocks(mockClient)

			err := a.ValidateModel(context.Background())

			if tc.expectedErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected error but got none")
			}
			if errors.Is(tc.expectedErr, ErrInvalidAuthModel) && !errors.Is(err, ErrInvalidAuthModel) {
				t.Errorf("expected ErrInvalidAuthModel, got %v", err)
			}
		})
	}
}
