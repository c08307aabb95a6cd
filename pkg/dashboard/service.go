// Copyright 2026 LAMB Project
// SPDX-License-Identifier: AGPL-3.0

// Package dashboard aggregates activity usage for instructors. Everything it
// returns about participants is anonymized: labels are positional, computed
// on read, and no endpoint maps a label back to an LMS identity.
package dashboard

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/Lamb-Project/lamb-sub010/internal/logging"
	"github.com/Lamb-Project/lamb-sub010/internal/monitoring"
	"github.com/Lamb-Project/lamb-sub010/internal/sessions"
	"github.com/Lamb-Project/lamb-sub010/internal/tracing"
	"github.com/Lamb-Project/lamb-sub010/internal/types"
	"github.com/Lamb-Project/lamb-sub010/pkg/authentication"
)

var (
	// ErrTranscriptsDisabled is returned whenever chat visibility is off. It
	// applies to every caller, the owner included.
	ErrTranscriptsDisabled = errors.New("transcripts are not visible for this activity")

	ErrForeignConversation = errors.New("conversation does not belong to this activity")
)

const defaultPageSize = 50

type AssistantStat struct {
	ID            string
	Name          string
	Conversations int64
	Removed       bool
}

// Summary carries Status so the page can render the disabled-state notice
// instructors land on when students are locked out.
type Summary struct {
	Name               string
	CourseTitle        string
	Status             string
	ChatVisibility     bool
	CanManage          bool
	Participants       int64
	ActiveParticipants int64
	Assistants         []*AssistantStat
}

type ParticipantPage struct {
	Participants  []*types.Participant
	Total         int64
	NextPageToken string
}

type TranscriptSummary struct {
	ConversationID string
	Label          int64
	AssistantName  string
	MessageCount   int64
	UpdatedAt      time.Time
}

type TranscriptPage struct {
	Transcripts   []*TranscriptSummary
	Total         int64
	NextPageToken string
}

type Transcript struct {
	ConversationID string
	Label          int64
	AssistantName  string
	Messages       []sessions.Message
}

type Service struct {
	storage  StorageInterface
	sessions SessionsClientInterface

	activityWindow time.Duration

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	sessionsClient SessionsClientInterface,
	activityWindow time.Duration,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage:        storage,
		sessions:       sessionsClient,
		activityWindow: activityWindow,
		tracer:         tracer,
		monitor:        monitor,
		logger:         logger,
	}
}

func (s *Service) Summary(ctx context.Context, claims *authentication.PageClaims) (*Summary, error) {
	ctx, span := s.tracer.Start(ctx, "dashboard.Service.Summary")
	defer span.End()

	activity, err := s.storage.GetActivityByID(ctx, claims.ActivityID)
	if err != nil {
		return nil, err
	}

	total, err := s.storage.CountParticipants(ctx, activity.ID)
	if err != nil {
		return nil, err
	}

	active, err := s.storage.CountActiveParticipants(ctx, activity.ID, time.Now().Add(-s.activityWindow))
	if err != nil {
		return nil, err
	}

	stats, err := s.assistantStats(ctx, activity)
	if err != nil {
		return nil, err
	}

	return &Summary{
		Name:               activity.Name,
		CourseTitle:        activity.CourseTitle,
		Status:             activity.Status,
		ChatVisibility:     activity.ChatVisibility,
		CanManage:          claims.IsOwner,
		Participants:       total,
		ActiveParticipants: active,
		Assistants:         stats,
	}, nil
}

// assistantStats counts conversations per assistant. Assistants that have
// been removed from the activity but still hold conversations show up flagged
// as removed rather than disappearing from the numbers.
func (s *Service) assistantStats(ctx context.Context, activity *types.Activity) ([]*AssistantStat, error) {
	associations, err := s.storage.ListActivityAssistants(ctx, activity.ID)
	if err != nil {
		return nil, err
	}

	currentIDs := make([]string, 0, len(associations))
	for _, aa := range associations {
		currentIDs = append(currentIDs, aa.AssistantID)
	}

	current, err := s.storage.GetAssistantsByIDs(ctx, currentIDs)
	if err != nil {
		return nil, err
	}

	users, err := s.storage.ListActivityUsersOrdered(ctx, activity.ID)
	if err != nil {
		return nil, err
	}

	userRefs := make([]string, 0, len(users))
	for _, u := range users {
		if u.ProviderUserRef != "" {
			userRefs = append(userRefs, u.ProviderUserRef)
		}
	}

	countsByRef := make(map[string]int64)
	if len(userRefs) > 0 {
		conversations, err := s.sessions.ListConversations(ctx, nil, userRefs)
		if err != nil {
			return nil, fmt.Errorf("failed to list conversations: %w", err)
		}
		for _, c := range conversations {
			countsByRef[c.ResourceID]++
		}
	}

	stats := make([]*AssistantStat, 0, len(current))
	seenRefs := make(map[string]bool, len(current))
	for _, a := range current {
		seenRefs[a.ResourceRef] = true
		stats = append(stats, &AssistantStat{
			ID:            a.ID,
			Name:          a.Name,
			Conversations: countsByRef[a.ResourceRef],
		})
	}

	var removedRefs []string
	for ref := range countsByRef {
		if !seenRefs[ref] {
			removedRefs = append(removedRefs, ref)
		}
	}
	removed, err := s.storage.GetAssistantsByResourceRefs(ctx, removedRefs)
	if err != nil {
		return nil, err
	}
	for _, a := range removed {
		stats = append(stats, &AssistantStat{
			ID:            a.ID,
			Name:          a.Name,
			Conversations: countsByRef[a.ResourceRef],
			Removed:       true,
		})
	}

	return stats, nil
}

func (s *Service) Participants(ctx context.Context, claims *authentication.PageClaims, pageToken string, size uint64) (*ParticipantPage, error) {
	ctx, span := s.tracer.Start(ctx, "dashboard.Service.Participants")
	defer span.End()

	if size == 0 || size > defaultPageSize {
		size = defaultPageSize
	}

	offset := decodePageToken(pageToken)

	participants, err := s.storage.ListParticipants(ctx, claims.ActivityID, offset, size)
	if err != nil {
		return nil, err
	}

	total, err := s.storage.CountParticipants(ctx, claims.ActivityID)
	if err != nil {
		return nil, err
	}

	page := &ParticipantPage{Participants: participants, Total: total}
	if offset+uint64(len(participants)) < uint64(total) {
		page.NextPageToken = encodePageToken(offset + uint64(len(participants)))
	}

	return page, nil
}

func (s *Service) Transcripts(ctx context.Context, claims *authentication.PageClaims, assistantID, pageToken string, size uint64) (*TranscriptPage, error) {
	ctx, span := s.tracer.Start(ctx, "dashboard.Service.Transcripts")
	defer span.End()

	_, users, err := s.transcriptContext(ctx, claims)
	if err != nil {
		return nil, err
	}

	if size == 0 || size > defaultPageSize {
		size = defaultPageSize
	}

	// The optional assistant filter narrows the provider query to that
	// assistant's resource.
	var resourceIDs []string
	if assistantID != "" {
		assistants, err := s.storage.GetAssistantsByIDs(ctx, []string{assistantID})
		if err != nil {
			return nil, err
		}
		if len(assistants) == 0 {
			return &TranscriptPage{}, nil
		}
		resourceIDs = []string{assistants[0].ResourceRef}
	}

	labelsByRef, refs := consentedRefs(users)
	if len(refs) == 0 {
		return &TranscriptPage{}, nil
	}

	conversations, err := s.sessions.ListConversations(ctx, resourceIDs, refs)
	if err != nil {
		return nil, fmt.Errorf("failed to list conversations: %w", err)
	}

	namesByRef, err := s.assistantNames(ctx, conversations)
	if err != nil {
		return nil, err
	}

	page := &TranscriptPage{Total: int64(len(conversations))}

	offset := decodePageToken(pageToken)
	if offset >= uint64(len(conversations)) {
		return page, nil
	}
	end := offset + size
	if end > uint64(len(conversations)) {
		end = uint64(len(conversations))
	}

	for _, c := range conversations[offset:end] {
		page.Transcripts = append(page.Transcripts, &TranscriptSummary{
			ConversationID: c.ID,
			Label:          labelsByRef[c.UserRef],
			AssistantName:  namesByRef[c.ResourceID],
			MessageCount:   c.MessageCount,
			UpdatedAt:      c.UpdatedAt,
		})
	}
	if end < uint64(len(conversations)) {
		page.NextPageToken = encodePageToken(end)
	}

	return page, nil
}

func (s *Service) Transcript(ctx context.Context, claims *authentication.PageClaims, conversationID string) (*Transcript, error) {
	ctx, span := s.tracer.Start(ctx, "dashboard.Service.Transcript")
	defer span.End()

	_, users, err := s.transcriptContext(ctx, claims)
	if err != nil {
		return nil, err
	}

	conversation, err := s.sessions.GetConversation(ctx, conversationID)
	if err != nil {
		return nil, fmt.Errorf("failed to get conversation: %w", err)
	}

	labelsByRef, _ := consentedRefs(users)
	label, ok := labelsByRef[conversation.UserRef]
	if !ok {
		// Either not a participant of this activity or not consented; the
		// caller cannot tell which.
		return nil, ErrForeignConversation
	}

	namesByRef, err := s.assistantNames(ctx, []*sessions.Conversation{conversation})
	if err != nil {
		return nil, err
	}

	return &Transcript{
		ConversationID: conversation.ID,
		Label:          label,
		AssistantName:  namesByRef[conversation.ResourceID],
		Messages:       conversation.Messages,
	}, nil
}

// transcriptContext enforces the visibility gate and loads the ordered
// participant list used for labeling.
func (s *Service) transcriptContext(ctx context.Context, claims *authentication.PageClaims) (*types.Activity, []*types.ActivityUser, error) {
	activity, err := s.storage.GetActivityByID(ctx, claims.ActivityID)
	if err != nil {
		return nil, nil, err
	}

	if !activity.ChatVisibility {
		s.logger.Security().AuthzFailure(claims.Subject, "transcript access on hidden activity "+activity.ID)
		return nil, nil, ErrTranscriptsDisabled
	}

	users, err := s.storage.ListActivityUsersOrdered(ctx, activity.ID)
	if err != nil {
		return nil, nil, err
	}

	return activity, users, nil
}

// consentedRefs maps provider user refs to anonymized labels, keeping only
// participants who consented. Labels are positions in the first_seen order of
// the full participant list, matching the participants page.
func consentedRefs(users []*types.ActivityUser) (map[string]int64, []string) {
	labels := make(map[string]int64)
	var refs []string
	for i, u := range users {
		if u.ConsentedAt == nil || u.ProviderUserRef == "" {
			continue
		}
		labels[u.ProviderUserRef] = int64(i + 1)
		refs = append(refs, u.ProviderUserRef)
	}
	return labels, refs
}

func (s *Service) assistantNames(ctx context.Context, conversations []*sessions.Conversation) (map[string]string, error) {
	var refs []string
	seen := make(map[string]bool)
	for _, c := range conversations {
		if !seen[c.ResourceID] {
			seen[c.ResourceID] = true
			refs = append(refs, c.ResourceID)
		}
	}

	assistants, err := s.storage.GetAssistantsByResourceRefs(ctx, refs)
	if err != nil {
		return nil, err
	}

	names := make(map[string]string, len(assistants))
	for _, a := range assistants {
		names[a.ResourceRef] = a.Name
	}
	return names, nil
}

func encodePageToken(offset uint64) string {
	return base64.StdEncoding.EncodeToString([]byte(strconv.FormatUint(offset, 10)))
}

func decodePageToken(token string) uint64 {
	if token == "" {
		return 0
	}
	raw, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return 0
	}
	offset, err := strconv.ParseUint(string(raw), 10, 64)
	if err != nil {
		return 0
	}
	return offset
}
