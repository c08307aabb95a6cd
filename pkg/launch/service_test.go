// Copyright 2026 LAMB Project
// SPDX-License-Identifier: AGPL-3.0

package launch

import (
	"context"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/Lamb-Project/lamb-sub010/internal/lti"
	"github.com/Lamb-Project/lamb-sub010/internal/storage"
	"github.com/Lamb-Project/lamb-sub010/internal/types"
	"github.com/Lamb-Project/lamb-sub010/pkg/authentication"
)

//go:generate mockgen -build_flags=--mod=mod -package launch -destination ./mock_launch.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package launch -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package launch -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package launch -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

const baseURL = "https://launch.example.com"

type serviceMocks struct {
	storage     *MockStorageInterface
	resolver    *MockResolverInterface
	credentials *MockCredentialsInterface
	validator   *MockValidatorInterface
	sessions    *MockSessionsClientInterface
	pageTokens  *MockPageTokenInterface
	logger      *MockLoggerInterface
	security    *MockSecurityLoggerInterface
}

func newServiceUnderTest(t *testing.T) (*Service, *serviceMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := &serviceMocks{
		storage:     NewMockStorageInterface(ctrl),
		resolver:    NewMockResolverInterface(ctrl),
		credentials: NewMockCredentialsInterface(ctrl),
		validator:   NewMockValidatorInterface(ctrl),
		sessions:    NewMockSessionsClientInterface(ctrl),
		pageTokens:  NewMockPageTokenInterface(ctrl),
		logger:      NewMockLoggerInterface(ctrl),
		security:    NewMockSecurityLoggerInterface(ctrl),
	}

	mockTracer := NewMockTracingInterface(ctrl)
	mockTracer.EXPECT().Start(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
			return ctx, trace.SpanFromContext(ctx)
		},
	).AnyTimes()

	mockMonitor := NewMockMonitorInterface(ctrl)
	m.logger.EXPECT().Security().Return(m.security).AnyTimes()
	m.logger.EXPECT().Errorf(gomock.Any(), gomock.Any()).AnyTimes()
	m.logger.EXPECT().Warnf(gomock.Any(), gomock.Any()).AnyTimes()

	s := NewService(m.storage, m.resolver, m.credentials, m.validator, m.sessions, m.pageTokens, baseURL, mockTracer, mockMonitor, m.logger)
	return s, m
}

func TestService_Launch_RejectsInvalidSignature(t *testing.T) {
	s, m := newServiceUnderTest(t)

	r := httptest.NewRequest("POST", baseURL+"/lti/launch", strings.NewReader("user_id=u1"))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	_ = r.ParseForm()

	m.credentials.EXPECT().Resolve(gomock.Any()).Return("key", "secret", nil)
	m.validator.EXPECT().Validate(r, baseURL+"/lti/launch", "key", "secret").Return(nil, lti.ErrInvalidSignature)
	m.security.EXPECT().AuthnFailure("u1", gomock.Any())

	_, err := s.Launch(context.Background(), r)
	if !errors.Is(err, lti.ErrInvalidSignature) {
		t.Fatalf("expected signature error, got %v", err)
	}
}

func TestService_Launch_InstructorSetupRedirect(t *testing.T) {
	s, m := newServiceUnderTest(t)

	r := httptest.NewRequest("POST", baseURL+"/lti/launch", nil)
	params := &lti.LaunchParams{
		PlacementID: "placement-1",
		UserID:      "lti-user-1",
		Roles:       []string{"Instructor"},
		Email:       "teacher@example.com",
		DisplayName: "Teacher One",
		CourseID:    "course-1",
		CourseTitle: "Intro",
	}

	m.credentials.EXPECT().Resolve(gomock.Any()).Return("key", "secret", nil)
	m.validator.EXPECT().Validate(r, gomock.Any(), "key", "secret").Return(params, nil)
	m.storage.EXPECT().GetActivityByPlacementID(gomock.Any(), "placement-1").Return(nil, storage.ErrNotFound)
	m.pageTokens.EXPECT().Issue(gomock.Any()).DoAndReturn(func(claims authentication.PageClaims) (string, error) {
		if claims.Purpose != authentication.PurposeSetup {
			t.Errorf("expected setup purpose, got %s", claims.Purpose)
		}
		if claims.PlacementID != "placement-1" || claims.Subject != "lti-user-1" {
			t.Errorf("unexpected claims: %+v", claims)
		}
		return "setup-token", nil
	})

	result, err := s.Launch(context.Background(), r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.RedirectURL != baseURL+"/ui/setup?token=setup-token" {
		t.Errorf("unexpected redirect: %s", result.RedirectURL)
	}
}

func TestService_Launch_InstructorDashboardRedirect(t *testing.T) {
	activity := &types.Activity{ID: "activity-1", PlacementID: "placement-1", OwnerID: "account-1"}
	params := &lti.LaunchParams{
		PlacementID: "placement-1",
		UserID:      "lti-user-1",
		Roles:       []string{"urn:lti:role:ims/lis/Instructor"},
		Email:       "teacher@example.com",
	}

	testCases := []struct {
		name            string
		candidates      []*types.AccountCandidate
		expectedIsOwner bool
	}{
		{
			name:            "owner",
			candidates:      []*types.AccountCandidate{{AccountID: "account-1", OrganizationID: "org-1"}},
			expectedIsOwner: true,
		},
		{
			name:            "instructor but not owner",
			candidates:      []*types.AccountCandidate{{AccountID: "account-2", OrganizationID: "org-1"}},
			expectedIsOwner: false,
		},
		{
			name:            "unresolved identity",
			candidates:      nil,
			expectedIsOwner: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, m := newServiceUnderTest(t)
			r := httptest.NewRequest("POST", baseURL+"/lti/launch", nil)

			m.credentials.EXPECT().Resolve(gomock.Any()).Return("key", "secret", nil)
			m.validator.EXPECT().Validate(r, gomock.Any(), "key", "secret").Return(params, nil)
			m.storage.EXPECT().GetActivityByPlacementID(gomock.Any(), "placement-1").Return(activity, nil)
			m.resolver.EXPECT().Resolve(gomock.Any(), "lti-user-1", "teacher@example.com").Return(tc.candidates, nil)
			m.pageTokens.EXPECT().Issue(gomock.Any()).DoAndReturn(func(claims authentication.PageClaims) (string, error) {
				if claims.Purpose != authentication.PurposeDashboard {
					t.Errorf("expected dashboard purpose, got %s", claims.Purpose)
				}
				if claims.IsOwner != tc.expectedIsOwner {
					t.Errorf("expected IsOwner=%v, got %v", tc.expectedIsOwner, claims.IsOwner)
				}
				if claims.ActivityID != "activity-1" {
					t.Errorf("expected activity-1, got %s", claims.ActivityID)
				}
				return "dash-token", nil
			})

			result, err := s.Launch(context.Background(), r)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !strings.Contains(result.RedirectURL, "/ui/dashboard?token=") {
				t.Errorf("unexpected redirect: %s", result.RedirectURL)
			}
		})
	}
}

func TestService_Launch_StudentUnconfigured(t *testing.T) {
	params := &lti.LaunchParams{PlacementID: "placement-1", UserID: "lti-user-1", Roles: []string{"Learner"}}

	testCases := []struct {
		name     string
		activity *types.Activity
		err      error
	}{
		{name: "placement never configured", activity: nil, err: storage.ErrNotFound},
		{name: "activity disabled", activity: &types.Activity{ID: "activity-1", Status: types.ActivityStatusDisabled}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, m := newServiceUnderTest(t)
			r := httptest.NewRequest("POST", baseURL+"/lti/launch", nil)

			m.credentials.EXPECT().Resolve(gomock.Any()).Return("key", "secret", nil)
			m.validator.EXPECT().Validate(r, gomock.Any(), "key", "secret").Return(params, nil)
			m.storage.EXPECT().GetActivityByPlacementID(gomock.Any(), "placement-1").Return(tc.activity, tc.err)

			_, err := s.Launch(context.Background(), r)
			if !errors.Is(err, ErrNotConfigured) {
				t.Fatalf("expected ErrNotConfigured, got %v", err)
			}
		})
	}
}

func TestService_Launch_StudentEntry(t *testing.T) {
	now := time.Now()
	address := types.SyntheticAddress("lti-user-1", "placement-1")
	params := &lti.LaunchParams{
		PlacementID: "placement-1",
		UserID:      "lti-user-1",
		Roles:       []string{"Learner"},
		DisplayName: "Student One",
	}

	t.Run("returning consented user goes straight to the session", func(t *testing.T) {
		s, m := newServiceUnderTest(t)
		r := httptest.NewRequest("POST", baseURL+"/lti/launch", nil)

		activity := &types.Activity{ID: "activity-1", GroupRef: "group-1", ChatVisibility: true, Status: types.ActivityStatusActive}
		user := &types.ActivityUser{ID: "user-1", SyntheticAddress: address, ProviderUserRef: "ref-1", ConsentedAt: &now}

		m.credentials.EXPECT().Resolve(gomock.Any()).Return("key", "secret", nil)
		m.validator.EXPECT().Validate(r, gomock.Any(), "key", "secret").Return(params, nil)
		m.storage.EXPECT().GetActivityByPlacementID(gomock.Any(), "placement-1").Return(activity, nil)
		m.storage.EXPECT().GetActivityUser(gomock.Any(), "activity-1", address).Return(user, nil)
		m.storage.EXPECT().TouchActivityUser(gomock.Any(), "user-1").Return(nil)
		m.sessions.EXPECT().AddUserToGroup(gomock.Any(), "ref-1", "group-1").Return(nil)
		m.sessions.EXPECT().SessionURL("ref-1").Return("https://sessions.example.com/ref-1")

		result, err := s.Launch(context.Background(), r)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.RedirectURL != "https://sessions.example.com/ref-1" {
			t.Errorf("unexpected redirect: %s", result.RedirectURL)
		}
	})

	t.Run("first launch creates the participant and provisions the provider user", func(t *testing.T) {
		s, m := newServiceUnderTest(t)
		r := httptest.NewRequest("POST", baseURL+"/lti/launch", nil)

		activity := &types.Activity{ID: "activity-1", GroupRef: "group-1", ChatVisibility: false, Status: types.ActivityStatusActive}
		created := &types.ActivityUser{ID: "user-1", ActivityID: "activity-1", SyntheticAddress: address, DisplayName: "Student One"}

		m.credentials.EXPECT().Resolve(gomock.Any()).Return("key", "secret", nil)
		m.validator.EXPECT().Validate(r, gomock.Any(), "key", "secret").Return(params, nil)
		m.storage.EXPECT().GetActivityByPlacementID(gomock.Any(), "placement-1").Return(activity, nil)
		m.storage.EXPECT().GetActivityUser(gomock.Any(), "activity-1", address).Return(nil, storage.ErrNotFound)
		m.storage.EXPECT().CreateActivityUser(gomock.Any(), gomock.Any()).Return(created, nil)
		m.sessions.EXPECT().CreateOrGetUser(gomock.Any(), address, "Student One").Return("ref-1", nil)
		m.storage.EXPECT().SetProviderUserRef(gomock.Any(), "user-1", "ref-1").Return(nil)
		m.sessions.EXPECT().AddUserToGroup(gomock.Any(), "ref-1", "group-1").Return(nil)
		m.sessions.EXPECT().SessionURL("ref-1").Return("https://sessions.example.com/ref-1")

		if _, err := s.Launch(context.Background(), r); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("losing the creation race falls back to the winner's row", func(t *testing.T) {
		s, m := newServiceUnderTest(t)
		r := httptest.NewRequest("POST", baseURL+"/lti/launch", nil)

		activity := &types.Activity{ID: "activity-1", GroupRef: "group-1", Status: types.ActivityStatusActive}
		winner := &types.ActivityUser{ID: "user-1", SyntheticAddress: address, ProviderUserRef: "ref-1"}

		m.credentials.EXPECT().Resolve(gomock.Any()).Return("key", "secret", nil)
		m.validator.EXPECT().Validate(r, gomock.Any(), "key", "secret").Return(params, nil)
		m.storage.EXPECT().GetActivityByPlacementID(gomock.Any(), "placement-1").Return(activity, nil)
		gomock.InOrder(
			m.storage.EXPECT().GetActivityUser(gomock.Any(), "activity-1", address).Return(nil, storage.ErrNotFound),
			m.storage.EXPECT().CreateActivityUser(gomock.Any(), gomock.Any()).Return(nil, storage.ErrDuplicateKey),
			m.storage.EXPECT().GetActivityUser(gomock.Any(), "activity-1", address).Return(winner, nil),
		)
		m.sessions.EXPECT().AddUserToGroup(gomock.Any(), "ref-1", "group-1").Return(nil)
		m.sessions.EXPECT().SessionURL("ref-1").Return("https://sessions.example.com/ref-1")

		if _, err := s.Launch(context.Background(), r); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("re-enabled visibility honors consent recorded before the toggle", func(t *testing.T) {
		// Visibility went on, off, and on again. A participant who consented
		// during the first window is never prompted twice; a participant who
		// first shows up now still is.
		reEnabled := &types.Activity{ID: "activity-1", GroupRef: "group-1", ChatVisibility: true, Status: types.ActivityStatusActive}
		earlier := now.Add(-48 * time.Hour)

		s, m := newServiceUnderTest(t)
		r := httptest.NewRequest("POST", baseURL+"/lti/launch", nil)

		consented := &types.ActivityUser{ID: "user-1", SyntheticAddress: address, ProviderUserRef: "ref-1", ConsentedAt: &earlier}

		m.credentials.EXPECT().Resolve(gomock.Any()).Return("key", "secret", nil)
		m.validator.EXPECT().Validate(r, gomock.Any(), "key", "secret").Return(params, nil)
		m.storage.EXPECT().GetActivityByPlacementID(gomock.Any(), "placement-1").Return(reEnabled, nil)
		m.storage.EXPECT().GetActivityUser(gomock.Any(), "activity-1", address).Return(consented, nil)
		m.storage.EXPECT().TouchActivityUser(gomock.Any(), "user-1").Return(nil)
		m.sessions.EXPECT().AddUserToGroup(gomock.Any(), "ref-1", "group-1").Return(nil)
		m.sessions.EXPECT().SessionURL("ref-1").Return("https://sessions.example.com/ref-1")

		result, err := s.Launch(context.Background(), r)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if strings.Contains(result.RedirectURL, "/ui/consent") {
			t.Errorf("consented participant was prompted again: %s", result.RedirectURL)
		}

		// A classmate launching for the first time against the same activity
		// is still gated.
		s2, m2 := newServiceUnderTest(t)
		r2 := httptest.NewRequest("POST", baseURL+"/lti/launch", nil)
		newcomerParams := &lti.LaunchParams{
			PlacementID: "placement-1",
			UserID:      "lti-user-2",
			Roles:       []string{"Learner"},
			DisplayName: "Student Two",
		}
		newcomerAddress := types.SyntheticAddress("lti-user-2", "placement-1")

		m2.credentials.EXPECT().Resolve(gomock.Any()).Return("key", "secret", nil)
		m2.validator.EXPECT().Validate(r2, gomock.Any(), "key", "secret").Return(newcomerParams, nil)
		m2.storage.EXPECT().GetActivityByPlacementID(gomock.Any(), "placement-1").Return(reEnabled, nil)
		m2.storage.EXPECT().GetActivityUser(gomock.Any(), "activity-1", newcomerAddress).Return(nil, storage.ErrNotFound)
		m2.storage.EXPECT().CreateActivityUser(gomock.Any(), gomock.Any()).
			Return(&types.ActivityUser{ID: "user-2", ActivityID: "activity-1", SyntheticAddress: newcomerAddress}, nil)
		m2.pageTokens.EXPECT().Issue(gomock.Any()).Return("consent-token", nil)

		result2, err := s2.Launch(context.Background(), r2)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(result2.RedirectURL, "/ui/consent?token=") {
			t.Errorf("newcomer was not gated: %s", result2.RedirectURL)
		}
	})

	t.Run("transcript visibility without consent redirects to the consent page", func(t *testing.T) {
		s, m := newServiceUnderTest(t)
		r := httptest.NewRequest("POST", baseURL+"/lti/launch", nil)

		activity := &types.Activity{ID: "activity-1", GroupRef: "group-1", ChatVisibility: true, Status: types.ActivityStatusActive}
		user := &types.ActivityUser{ID: "user-1", SyntheticAddress: address}

		m.credentials.EXPECT().Resolve(gomock.Any()).Return("key", "secret", nil)
		m.validator.EXPECT().Validate(r, gomock.Any(), "key", "secret").Return(params, nil)
		m.storage.EXPECT().GetActivityByPlacementID(gomock.Any(), "placement-1").Return(activity, nil)
		m.storage.EXPECT().GetActivityUser(gomock.Any(), "activity-1", address).Return(user, nil)
		m.storage.EXPECT().TouchActivityUser(gomock.Any(), "user-1").Return(nil)
		m.pageTokens.EXPECT().Issue(gomock.Any()).DoAndReturn(func(claims authentication.PageClaims) (string, error) {
			if claims.Purpose != authentication.PurposeConsent {
				t.Errorf("expected consent purpose, got %s", claims.Purpose)
			}
			return "consent-token", nil
		})

		result, err := s.Launch(context.Background(), r)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(result.RedirectURL, "/ui/consent?token=") {
			t.Errorf("unexpected redirect: %s", result.RedirectURL)
		}
	})
}

func TestService_EnterSession(t *testing.T) {
	address := types.SyntheticAddress("lti-user-1", "placement-1")

	t.Run("disabled activity stays hidden", func(t *testing.T) {
		s, m := newServiceUnderTest(t)
		m.storage.EXPECT().GetActivityByID(gomock.Any(), "activity-1").
			Return(&types.Activity{ID: "activity-1", Status: types.ActivityStatusDisabled}, nil)

		_, err := s.EnterSession(context.Background(), "activity-1", address)
		if !errors.Is(err, ErrNotConfigured) {
			t.Fatalf("expected ErrNotConfigured, got %v", err)
		}
	})

	t.Run("known participant is handed to the provider", func(t *testing.T) {
		s, m := newServiceUnderTest(t)
		activity := &types.Activity{ID: "activity-1", GroupRef: "group-1", Status: types.ActivityStatusActive}
		user := &types.ActivityUser{ID: "user-1", SyntheticAddress: address, ProviderUserRef: "ref-1"}

		m.storage.EXPECT().GetActivityByID(gomock.Any(), "activity-1").Return(activity, nil)
		m.storage.EXPECT().GetActivityUser(gomock.Any(), "activity-1", address).Return(user, nil)
		m.sessions.EXPECT().AddUserToGroup(gomock.Any(), "ref-1", "group-1").Return(nil)
		m.sessions.EXPECT().SessionURL("ref-1").Return("https://sessions.example.com/ref-1")

		result, err := s.EnterSession(context.Background(), "activity-1", address)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.RedirectURL != "https://sessions.example.com/ref-1" {
			t.Errorf("unexpected redirect: %s", result.RedirectURL)
		}
	})
}

func TestService_SetupContext(t *testing.T) {
	s, m := newServiceUnderTest(t)

	claims := &authentication.PageClaims{
		Purpose:     authentication.PurposeSetup,
		PlacementID: "placement-1",
		Email:       "teacher@example.com",
		CourseTitle: "Intro",
		RegisteredClaims: authentication.RegisteredClaims{
			Subject: "lti-user-1",
		},
	}
	candidates := []*types.AccountCandidate{
		{AccountID: "account-1", OrganizationID: "org-1"},
		{AccountID: "account-2", OrganizationID: "org-1"},
	}

	m.resolver.EXPECT().Resolve(gomock.Any(), "lti-user-1", "teacher@example.com").Return(candidates, nil)
	// Both candidates live in the same organization, so one catalog read.
	m.storage.EXPECT().ListPublishedAssistants(gomock.Any(), "org-1").
		Return([]*types.Assistant{{ID: "assistant-1", Name: "Tutor"}}, nil)

	sc, err := s.SetupContext(context.Background(), claims)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sc.Candidates) != 2 {
		t.Errorf("expected 2 candidates, got %d", len(sc.Candidates))
	}
	if len(sc.Assistants["org-1"]) != 1 {
		t.Errorf("expected 1 assistant for org-1, got %d", len(sc.Assistants["org-1"]))
	}
}
