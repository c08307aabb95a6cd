// Copyright 2026 LAMB Project
// SPDX-License-Identifier: AGPL-3.0

package dashboard

import (
	"context"
	"time"

	"github.com/Lamb-Project/lamb-sub010/internal/sessions"
	"github.com/Lamb-Project/lamb-sub010/internal/types"
	"github.com/Lamb-Project/lamb-sub010/pkg/authentication"
)

type ServiceInterface interface {
	Summary(ctx context.Context, claims *authentication.PageClaims) (*Summary, error)
	Participants(ctx context.Context, claims *authentication.PageClaims, pageToken string, size uint64) (*ParticipantPage, error)
	Transcripts(ctx context.Context, claims *authentication.PageClaims, assistantID, pageToken string, size uint64) (*TranscriptPage, error)
	Transcript(ctx context.Context, claims *authentication.PageClaims, conversationID string) (*Transcript, error)
}

type StorageInterface interface {
	GetActivityByID(ctx context.Context, id string) (*types.Activity, error)
	ListActivityAssistants(ctx context.Context, activityID string) ([]*types.ActivityAssistant, error)
	GetAssistantsByIDs(ctx context.Context, ids []string) ([]*types.Assistant, error)
	GetAssistantsByResourceRefs(ctx context.Context, refs []string) ([]*types.Assistant, error)
	ListActivityUsersOrdered(ctx context.Context, activityID string) ([]*types.ActivityUser, error)
	ListParticipants(ctx context.Context, activityID string, offset, limit uint64) ([]*types.Participant, error)
	CountParticipants(ctx context.Context, activityID string) (int64, error)
	CountActiveParticipants(ctx context.Context, activityID string, since time.Time) (int64, error)
}

type SessionsClientInterface interface {
	ListConversations(ctx context.Context, resourceIDs, userRefs []string) ([]*sessions.Conversation, error)
	GetConversation(ctx context.Context, id string) (*sessions.Conversation, error)
}
