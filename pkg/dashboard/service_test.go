// Copyright 2026 LAMB Project
// SPDX-License-Identifier: AGPL-3.0

package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/Lamb-Project/lamb-sub010/internal/sessions"
	"github.com/Lamb-Project/lamb-sub010/internal/types"
	"github.com/Lamb-Project/lamb-sub010/pkg/authentication"
)

//go:generate mockgen -build_flags=--mod=mod -package dashboard -destination ./mock_dashboard.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package dashboard -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package dashboard -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package dashboard -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

type serviceMocks struct {
	storage  *MockStorageInterface
	sessions *MockSessionsClientInterface
	security *MockSecurityLoggerInterface
}

func newServiceUnderTest(t *testing.T) (*Service, *serviceMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := &serviceMocks{
		storage:  NewMockStorageInterface(ctrl),
		sessions: NewMockSessionsClientInterface(ctrl),
		security: NewMockSecurityLoggerInterface(ctrl),
	}

	mockTracer := NewMockTracingInterface(ctrl)
	mockTracer.EXPECT().Start(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
			return ctx, trace.SpanFromContext(ctx)
		},
	).AnyTimes()

	mockLogger := NewMockLoggerInterface(ctrl)
	mockLogger.EXPECT().Security().Return(m.security).AnyTimes()
	mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any()).AnyTimes()

	s := NewService(m.storage, m.sessions, 7*24*time.Hour, mockTracer, NewMockMonitorInterface(ctrl), mockLogger)
	return s, m
}

func claims(isOwner bool) *authentication.PageClaims {
	return &authentication.PageClaims{
		Purpose:     authentication.PurposeDashboard,
		PlacementID: "placement-1",
		ActivityID:  "activity-1",
		IsOwner:     isOwner,
		RegisteredClaims: authentication.RegisteredClaims{
			Subject: "lti-user-1",
		},
	}
}

func TestService_Summary(t *testing.T) {
	s, m := newServiceUnderTest(t)

	activity := &types.Activity{
		ID:             "activity-1",
		Name:           "My Activity",
		CourseTitle:    "Intro",
		Status:         types.ActivityStatusActive,
		ChatVisibility: true,
	}

	m.storage.EXPECT().GetActivityByID(gomock.Any(), "activity-1").Return(activity, nil)
	m.storage.EXPECT().CountParticipants(gomock.Any(), "activity-1").Return(int64(12), nil)
	m.storage.EXPECT().CountActiveParticipants(gomock.Any(), "activity-1", gomock.Any()).Return(int64(5), nil)
	m.storage.EXPECT().ListActivityAssistants(gomock.Any(), "activity-1").
		Return([]*types.ActivityAssistant{{AssistantID: "assistant-1"}}, nil)
	m.storage.EXPECT().GetAssistantsByIDs(gomock.Any(), []string{"assistant-1"}).
		Return([]*types.Assistant{{ID: "assistant-1", Name: "Tutor", ResourceRef: "res-1"}}, nil)
	m.storage.EXPECT().ListActivityUsersOrdered(gomock.Any(), "activity-1").Return([]*types.ActivityUser{
		{ID: "user-1", ProviderUserRef: "ref-1"},
		{ID: "user-2", ProviderUserRef: "ref-2"},
	}, nil)
	m.sessions.EXPECT().ListConversations(gomock.Any(), gomock.Nil(), []string{"ref-1", "ref-2"}).
		Return([]*sessions.Conversation{
			{ID: "c1", ResourceID: "res-1", UserRef: "ref-1"},
			{ID: "c2", ResourceID: "res-1", UserRef: "ref-2"},
			{ID: "c3", ResourceID: "res-removed", UserRef: "ref-1"},
		}, nil)
	m.storage.EXPECT().GetAssistantsByResourceRefs(gomock.Any(), []string{"res-removed"}).
		Return([]*types.Assistant{{ID: "assistant-9", Name: "Old Tutor", ResourceRef: "res-removed"}}, nil)

	summary, err := s.Summary(context.Background(), claims(true))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if summary.Participants != 12 || summary.ActiveParticipants != 5 {
		t.Errorf("unexpected counts: %+v", summary)
	}
	if summary.Status != types.ActivityStatusActive {
		t.Errorf("unexpected status: %s", summary.Status)
	}
	if !summary.CanManage {
		t.Error("expected owner to get the manage affordance")
	}
	if len(summary.Assistants) != 2 {
		t.Fatalf("expected 2 assistant stats, got %d", len(summary.Assistants))
	}
	if summary.Assistants[0].Conversations != 2 || summary.Assistants[0].Removed {
		t.Errorf("unexpected current assistant stat: %+v", summary.Assistants[0])
	}
	if summary.Assistants[1].Conversations != 1 || !summary.Assistants[1].Removed {
		t.Errorf("unexpected removed assistant stat: %+v", summary.Assistants[1])
	}
}

func TestService_SummaryDisabledActivity(t *testing.T) {
	s, m := newServiceUnderTest(t)

	// A disabled activity still renders its dashboard; the status lets the
	// page show the instructor a disabled-state notice.
	m.storage.EXPECT().GetActivityByID(gomock.Any(), "activity-1").
		Return(&types.Activity{ID: "activity-1", Name: "Paused", Status: types.ActivityStatusDisabled}, nil)
	m.storage.EXPECT().CountParticipants(gomock.Any(), "activity-1").Return(int64(4), nil)
	m.storage.EXPECT().CountActiveParticipants(gomock.Any(), "activity-1", gomock.Any()).Return(int64(0), nil)
	m.storage.EXPECT().ListActivityAssistants(gomock.Any(), "activity-1").Return(nil, nil)
	m.storage.EXPECT().GetAssistantsByIDs(gomock.Any(), gomock.Len(0)).Return(nil, nil)
	m.storage.EXPECT().ListActivityUsersOrdered(gomock.Any(), "activity-1").Return(nil, nil)

	summary, err := s.Summary(context.Background(), claims(true))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.Status != types.ActivityStatusDisabled {
		t.Errorf("expected disabled status, got %q", summary.Status)
	}
}

func TestService_Participants(t *testing.T) {
	s, m := newServiceUnderTest(t)

	page1 := []*types.Participant{{Label: 1}, {Label: 2}}

	m.storage.EXPECT().ListParticipants(gomock.Any(), "activity-1", uint64(0), uint64(2)).Return(page1, nil)
	m.storage.EXPECT().CountParticipants(gomock.Any(), "activity-1").Return(int64(3), nil)

	page, err := s.Participants(context.Background(), claims(false), "", 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.Total != 3 || len(page.Participants) != 2 {
		t.Errorf("unexpected page: %+v", page)
	}
	if page.NextPageToken == "" {
		t.Fatal("expected a next page token")
	}

	// The token carries the offset of the next page.
	m.storage.EXPECT().ListParticipants(gomock.Any(), "activity-1", uint64(2), uint64(2)).
		Return([]*types.Participant{{Label: 3}}, nil)
	m.storage.EXPECT().CountParticipants(gomock.Any(), "activity-1").Return(int64(3), nil)

	page2, err := s.Participants(context.Background(), claims(false), page.NextPageToken, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(page2.Participants) != 1 || page2.Participants[0].Label != 3 {
		t.Errorf("unexpected second page: %+v", page2)
	}
	if page2.NextPageToken != "" {
		t.Errorf("expected no further page, got %q", page2.NextPageToken)
	}
}

func TestService_Transcripts(t *testing.T) {
	now := time.Now()

	t.Run("hidden activity refuses everyone, owner included", func(t *testing.T) {
		s, m := newServiceUnderTest(t)

		m.storage.EXPECT().GetActivityByID(gomock.Any(), "activity-1").
			Return(&types.Activity{ID: "activity-1", ChatVisibility: false}, nil)
		m.security.EXPECT().AuthzFailure("lti-user-1", gomock.Any())

		if _, err := s.Transcripts(context.Background(), claims(true), "", "", 0); !errors.Is(err, ErrTranscriptsDisabled) {
			t.Fatalf("expected ErrTranscriptsDisabled, got %v", err)
		}
	})

	t.Run("lists only consented participants, labeled not named", func(t *testing.T) {
		s, m := newServiceUnderTest(t)

		m.storage.EXPECT().GetActivityByID(gomock.Any(), "activity-1").
			Return(&types.Activity{ID: "activity-1", ChatVisibility: true}, nil)
		m.storage.EXPECT().ListActivityUsersOrdered(gomock.Any(), "activity-1").Return([]*types.ActivityUser{
			{ID: "user-1", ProviderUserRef: "ref-1", ConsentedAt: &now},
			{ID: "user-2", ProviderUserRef: "ref-2"}, // no consent
			{ID: "user-3", ProviderUserRef: "ref-3", ConsentedAt: &now},
		}, nil)
		m.sessions.EXPECT().ListConversations(gomock.Any(), gomock.Nil(), []string{"ref-1", "ref-3"}).
			Return([]*sessions.Conversation{
				{ID: "c1", ResourceID: "res-1", UserRef: "ref-3", MessageCount: 4, UpdatedAt: now},
			}, nil)
		m.storage.EXPECT().GetAssistantsByResourceRefs(gomock.Any(), []string{"res-1"}).
			Return([]*types.Assistant{{ID: "assistant-1", Name: "Tutor", ResourceRef: "res-1"}}, nil)

		page, err := s.Transcripts(context.Background(), claims(true), "", "", 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(page.Transcripts) != 1 || page.Total != 1 {
			t.Fatalf("expected 1 transcript, got %+v", page)
		}
		// user-3 is the third participant in first_seen order.
		if page.Transcripts[0].Label != 3 {
			t.Errorf("expected label 3, got %d", page.Transcripts[0].Label)
		}
		if page.Transcripts[0].AssistantName != "Tutor" {
			t.Errorf("unexpected assistant name: %s", page.Transcripts[0].AssistantName)
		}
	})

	t.Run("the assistant filter narrows the provider query to its resource", func(t *testing.T) {
		s, m := newServiceUnderTest(t)

		m.storage.EXPECT().GetActivityByID(gomock.Any(), "activity-1").
			Return(&types.Activity{ID: "activity-1", ChatVisibility: true}, nil)
		m.storage.EXPECT().GetAssistantsByIDs(gomock.Any(), []string{"assistant-1"}).
			Return([]*types.Assistant{{ID: "assistant-1", Name: "Tutor", ResourceRef: "res-1"}}, nil)
		m.storage.EXPECT().ListActivityUsersOrdered(gomock.Any(), "activity-1").Return([]*types.ActivityUser{
			{ID: "user-1", ProviderUserRef: "ref-1", ConsentedAt: &now},
		}, nil)
		m.sessions.EXPECT().ListConversations(gomock.Any(), []string{"res-1"}, []string{"ref-1"}).
			Return([]*sessions.Conversation{
				{ID: "c1", ResourceID: "res-1", UserRef: "ref-1", UpdatedAt: now},
			}, nil)
		m.storage.EXPECT().GetAssistantsByResourceRefs(gomock.Any(), []string{"res-1"}).
			Return([]*types.Assistant{{ID: "assistant-1", Name: "Tutor", ResourceRef: "res-1"}}, nil)

		page, err := s.Transcripts(context.Background(), claims(true), "assistant-1", "", 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(page.Transcripts) != 1 {
			t.Fatalf("expected 1 transcript, got %+v", page)
		}
	})

	t.Run("an unknown assistant filter yields an empty page", func(t *testing.T) {
		s, m := newServiceUnderTest(t)

		m.storage.EXPECT().GetActivityByID(gomock.Any(), "activity-1").
			Return(&types.Activity{ID: "activity-1", ChatVisibility: true}, nil)
		m.storage.EXPECT().ListActivityUsersOrdered(gomock.Any(), "activity-1").Return([]*types.ActivityUser{
			{ID: "user-1", ProviderUserRef: "ref-1", ConsentedAt: &now},
		}, nil)
		m.storage.EXPECT().GetAssistantsByIDs(gomock.Any(), []string{"assistant-gone"}).Return(nil, nil)

		page, err := s.Transcripts(context.Background(), claims(true), "assistant-gone", "", 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(page.Transcripts) != 0 || page.NextPageToken != "" {
			t.Errorf("expected an empty page, got %+v", page)
		}
	})

	t.Run("pages are linked by the returned token", func(t *testing.T) {
		s, m := newServiceUnderTest(t)

		users := []*types.ActivityUser{
			{ID: "user-1", ProviderUserRef: "ref-1", ConsentedAt: &now},
		}
		conversations := []*sessions.Conversation{
			{ID: "c1", ResourceID: "res-1", UserRef: "ref-1", UpdatedAt: now},
			{ID: "c2", ResourceID: "res-1", UserRef: "ref-1", UpdatedAt: now},
			{ID: "c3", ResourceID: "res-1", UserRef: "ref-1", UpdatedAt: now},
		}
		assistants := []*types.Assistant{{ID: "assistant-1", Name: "Tutor", ResourceRef: "res-1"}}

		m.storage.EXPECT().GetActivityByID(gomock.Any(), "activity-1").
			Return(&types.Activity{ID: "activity-1", ChatVisibility: true}, nil).Times(2)
		m.storage.EXPECT().ListActivityUsersOrdered(gomock.Any(), "activity-1").Return(users, nil).Times(2)
		m.sessions.EXPECT().ListConversations(gomock.Any(), gomock.Nil(), []string{"ref-1"}).
			Return(conversations, nil).Times(2)
		m.storage.EXPECT().GetAssistantsByResourceRefs(gomock.Any(), []string{"res-1"}).
			Return(assistants, nil).Times(2)

		page1, err := s.Transcripts(context.Background(), claims(true), "", "", 2)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(page1.Transcripts) != 2 || page1.Total != 3 {
			t.Fatalf("unexpected first page: %+v", page1)
		}
		if page1.NextPageToken == "" {
			t.Fatal("expected a next page token")
		}

		page2, err := s.Transcripts(context.Background(), claims(true), "", page1.NextPageToken, 2)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(page2.Transcripts) != 1 || page2.Transcripts[0].ConversationID != "c3" {
			t.Errorf("unexpected second page: %+v", page2)
		}
		if page2.NextPageToken != "" {
			t.Errorf("expected no further page, got %q", page2.NextPageToken)
		}
	})

	t.Run("labels stay stable across consecutive reads", func(t *testing.T) {
		s, m := newServiceUnderTest(t)

		users := []*types.ActivityUser{
			{ID: "user-1", ProviderUserRef: "ref-1", ConsentedAt: &now},
			{ID: "user-2", ProviderUserRef: "ref-2", ConsentedAt: &now},
		}
		conversations := []*sessions.Conversation{
			{ID: "c1", ResourceID: "res-1", UserRef: "ref-2", UpdatedAt: now},
		}
		assistants := []*types.Assistant{{ID: "assistant-1", Name: "Tutor", ResourceRef: "res-1"}}

		m.storage.EXPECT().GetActivityByID(gomock.Any(), "activity-1").
			Return(&types.Activity{ID: "activity-1", ChatVisibility: true}, nil).Times(2)
		m.storage.EXPECT().ListActivityUsersOrdered(gomock.Any(), "activity-1").Return(users, nil).Times(2)
		m.sessions.EXPECT().ListConversations(gomock.Any(), gomock.Nil(), []string{"ref-1", "ref-2"}).
			Return(conversations, nil).Times(2)
		m.storage.EXPECT().GetAssistantsByResourceRefs(gomock.Any(), []string{"res-1"}).
			Return(assistants, nil).Times(2)

		first, err := s.Transcripts(context.Background(), claims(true), "", "", 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, err := s.Transcripts(context.Background(), claims(true), "", "", 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if first.Transcripts[0].Label != 2 || second.Transcripts[0].Label != 2 {
			t.Errorf("labels drifted between reads: %d then %d",
				first.Transcripts[0].Label, second.Transcripts[0].Label)
		}
	})
}

func TestService_Transcript(t *testing.T) {
	now := time.Now()

	t.Run("a conversation outside the consented set is not found", func(t *testing.T) {
		s, m := newServiceUnderTest(t)

		m.storage.EXPECT().GetActivityByID(gomock.Any(), "activity-1").
			Return(&types.Activity{ID: "activity-1", ChatVisibility: true}, nil)
		m.storage.EXPECT().ListActivityUsersOrdered(gomock.Any(), "activity-1").Return([]*types.ActivityUser{
			{ID: "user-1", ProviderUserRef: "ref-1", ConsentedAt: &now},
		}, nil)
		m.sessions.EXPECT().GetConversation(gomock.Any(), "c-foreign").
			Return(&sessions.Conversation{ID: "c-foreign", UserRef: "ref-outside"}, nil)

		if _, err := s.Transcript(context.Background(), claims(true), "c-foreign"); !errors.Is(err, ErrForeignConversation) {
			t.Fatalf("expected ErrForeignConversation, got %v", err)
		}
	})

	t.Run("returns messages with the anonymized label", func(t *testing.T) {
		s, m := newServiceUnderTest(t)

		m.storage.EXPECT().GetActivityByID(gomock.Any(), "activity-1").
			Return(&types.Activity{ID: "activity-1", ChatVisibility: true}, nil)
		m.storage.EXPECT().ListActivityUsersOrdered(gomock.Any(), "activity-1").Return([]*types.ActivityUser{
			{ID: "user-1", ProviderUserRef: "ref-1", ConsentedAt: &now},
		}, nil)
		m.sessions.EXPECT().GetConversation(gomock.Any(), "c1").Return(&sessions.Conversation{
			ID:         "c1",
			ResourceID: "res-1",
			UserRef:    "ref-1",
			Messages:   []sessions.Message{{Role: "user", Content: "hi"}},
		}, nil)
		m.storage.EXPECT().GetAssistantsByResourceRefs(gomock.Any(), []string{"res-1"}).
			Return([]*types.Assistant{{ID: "assistant-1", Name: "Tutor", ResourceRef: "res-1"}}, nil)

		transcript, err := s.Transcript(context.Background(), claims(true), "c1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if transcript.Label != 1 || len(transcript.Messages) != 1 {
			t.Errorf("unexpected transcript: %+v", transcript)
		}
	})
}
