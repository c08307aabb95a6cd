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

func TestCredentialResolver_Resolve(t *testing.T) {
	testCases := []struct {
		name           string
		setupMocks     func(*MockStorageInterface)
		expectedKey    string
		expectedSecret string
		expectedErr    bool
	}{
		{
			name: "override row wins",
			setupMocks: func(m *MockStorageInterface) {
				m.EXPECT().GetGlobalCredential(gomock.Any()).Return(&types.GlobalCredential{
					ConsumerKey:    "rotated-key",
					ConsumerSecret: "rotated-secret",
				}, nil)
			},
			expectedKey:    "rotated-key",
			expectedSecret: "rotated-secret",
		},
		{
			name: "no override falls back to deployment default",
			setupMocks: func(m *MockStorageInterface) {
				m.EXPECT().GetGlobalCredential(gomock.Any()).Return(nil, storage.ErrNotFound)
			},
			expectedKey:    "default-key",
			expectedSecret: "default-secret",
		},
		{
			name: "storage failure propagates",
			setupMocks: func(m *MockStorageInterface) {
				m.EXPECT().GetGlobalCredential(gomock.Any()).Return(nil, errors.New("db down"))
			},
			expectedErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			mockStorage := NewMockStorageInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockTracer.EXPECT().Start(gomock.Any(), gomock.Any()).DoAndReturn(
				func(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
					return ctx, trace.SpanFromContext(ctx)
				},
			).AnyTimes()

			tc.setupMocks(mockStorage)

			c := NewCredentialResolver(mockStorage, "default-key", "default-secret", mockTracer, NewMockLoggerInterface(ctrl))

			key, secret, err := c.Resolve(context.Background())
			if tc.expectedErr {
				if err == nil {
					t.Fatal("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if key != tc.expectedKey || secret != tc.expectedSecret {
				t.Errorf("expected %s/%s, got %s/%s", tc.expectedKey, tc.expectedSecret, key, secret)
			}
		})
	}
}
