// Copyright 2026 LAMB Project
// SPDX-License-Identifier: AGPL-3.0

package consent

import (
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/Lamb-Project/lamb-sub010/internal/types"
	"github.com/Lamb-Project/lamb-sub010/pkg/authentication"
	"github.com/Lamb-Project/lamb-sub010/pkg/launch"
)

//go:generate mockgen -build_flags=--mod=mod -package consent -destination ./mock_consent.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package consent -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package consent -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package consent -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

func TestService_Accept(t *testing.T) {
	claims := &authentication.PageClaims{
		Purpose:     authentication.PurposeConsent,
		PlacementID: "placement-1",
		ActivityID:  "activity-1",
		RegisteredClaims: authentication.RegisteredClaims{
			Subject: "lti-user-1",
		},
	}
	address := types.SyntheticAddress("lti-user-1", "placement-1")

	newUnderTest := func(t *testing.T) (*Service, *MockStorageInterface, *MockSessionEntryInterface, *MockSecurityLoggerInterface) {
		t.Helper()
		ctrl := gomock.NewController(t)

		mockStorage := NewMockStorageInterface(ctrl)
		mockEntry := NewMockSessionEntryInterface(ctrl)
		mockLogger := NewMockLoggerInterface(ctrl)
		mockSecurity := NewMockSecurityLoggerInterface(ctrl)
		mockLogger.EXPECT().Security().Return(mockSecurity).AnyTimes()

		mockTracer := NewMockTracingInterface(ctrl)
		mockTracer.EXPECT().Start(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
				return ctx, trace.SpanFromContext(ctx)
			},
		).AnyTimes()

		s := NewService(mockStorage, mockEntry, mockTracer, NewMockMonitorInterface(ctrl), mockLogger)
		return s, mockStorage, mockEntry, mockSecurity
	}

	t.Run("records consent and redirects onward", func(t *testing.T) {
		s, mockStorage, mockEntry, mockSecurity := newUnderTest(t)

		mockStorage.EXPECT().RecordConsent(gomock.Any(), "activity-1", address).Return(nil)
		mockSecurity.EXPECT().ConsentRecorded("activity-1", address)
		mockEntry.EXPECT().EnterSession(gomock.Any(), "activity-1", address).
			Return(&launch.Result{RedirectURL: "https://sessions.example.com/ref-1"}, nil)

		result, err := s.Accept(context.Background(), claims)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.RedirectURL != "https://sessions.example.com/ref-1" {
			t.Errorf("unexpected redirect: %s", result.RedirectURL)
		}
	})

	t.Run("storage failure stops the flow", func(t *testing.T) {
		s, mockStorage, _, _ := newUnderTest(t)

		mockStorage.EXPECT().RecordConsent(gomock.Any(), "activity-1", address).Return(errors.New("db down"))

		if _, err := s.Accept(context.Background(), claims); err == nil {
			t.Fatal("expected an error")
		}
	})
}
