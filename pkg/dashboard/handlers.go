// Copyright 2026 LAMB Project
// SPDX-License-Identifier: AGPL-3.0

package dashboard

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/Lamb-Project/lamb-sub010/internal/logging"
	"github.com/Lamb-Project/lamb-sub010/internal/storage"
	"github.com/Lamb-Project/lamb-sub010/internal/tracing"
	"github.com/Lamb-Project/lamb-sub010/pkg/authentication"
	"github.com/Lamb-Project/lamb-sub010/pkg/launch"
)

type PageTokenInterface interface {
	Verify(rawToken, purpose string) (*authentication.PageClaims, error)
}

type API struct {
	service    ServiceInterface
	pageTokens PageTokenInterface

	tracer tracing.TracingInterface
	logger logging.LoggerInterface
}

func NewAPI(service ServiceInterface, pageTokens PageTokenInterface, tracer tracing.TracingInterface, logger logging.LoggerInterface) *API {
	return &API{
		service:    service,
		pageTokens: pageTokens,
		tracer:     tracer,
		logger:     logger,
	}
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Get("/api/v0/dashboard/summary", a.summary)
	mux.Get("/api/v0/dashboard/participants", a.participants)
	mux.Get("/api/v0/dashboard/transcripts", a.transcripts)
	mux.Get("/api/v0/dashboard/transcripts/{id}", a.transcript)
}

type assistantStatResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Conversations int64  `json:"conversations"`
	Removed       bool   `json:"removed,omitempty"`
}

type summaryResponse struct {
	Name               string                  `json:"name"`
	CourseTitle        string                  `json:"course_title"`
	Status             string                  `json:"status"`
	ChatVisibility     bool                    `json:"chat_visibility"`
	CanManage          bool                    `json:"can_manage"`
	Participants       int64                   `json:"participants"`
	ActiveParticipants int64                   `json:"active_participants"`
	Assistants         []assistantStatResponse `json:"assistants"`
}

func (a *API) summary(w http.ResponseWriter, r *http.Request) {
	claims, ok := a.pageClaims(w, r)
	if !ok {
		return
	}

	summary, err := a.service.Summary(r.Context(), claims)
	if err != nil {
		a.writeServiceError(w, err, "failed to load summary")
		return
	}

	resp := summaryResponse{
		Name:               summary.Name,
		CourseTitle:        summary.CourseTitle,
		Status:             summary.Status,
		ChatVisibility:     summary.ChatVisibility,
		CanManage:          summary.CanManage,
		Participants:       summary.Participants,
		ActiveParticipants: summary.ActiveParticipants,
		Assistants:         make([]assistantStatResponse, 0, len(summary.Assistants)),
	}
	for _, s := range summary.Assistants {
		resp.Assistants = append(resp.Assistants, assistantStatResponse{
			ID:            s.ID,
			Name:          s.Name,
			Conversations: s.Conversations,
			Removed:       s.Removed,
		})
	}

	a.writeJSON(w, resp)
}

type participantResponse struct {
	Label     int64     `json:"label"`
	FirstSeen time.Time `json:"first_seen"`
	LastSeen  time.Time `json:"last_seen"`
	Visits    int64     `json:"visits"`
	Consented bool      `json:"consented"`
}

type participantPageResponse struct {
	Participants  []participantResponse `json:"participants"`
	Total         int64                 `json:"total"`
	NextPageToken string                `json:"next_page_token,omitempty"`
}

func (a *API) participants(w http.ResponseWriter, r *http.Request) {
	claims, ok := a.pageClaims(w, r)
	if !ok {
		return
	}

	size, _ := strconv.ParseUint(r.URL.Query().Get("size"), 10, 64)

	page, err := a.service.Participants(r.Context(), claims, r.URL.Query().Get("page_token"), size)
	if err != nil {
		a.writeServiceError(w, err, "failed to list participants")
		return
	}

	resp := participantPageResponse{
		Participants:  make([]participantResponse, 0, len(page.Participants)),
		Total:         page.Total,
		NextPageToken: page.NextPageToken,
	}
	for _, p := range page.Participants {
		resp.Participants = append(resp.Participants, participantResponse{
			Label:     p.Label,
			FirstSeen: p.FirstSeen,
			LastSeen:  p.LastSeen,
			Visits:    p.Visits,
			Consented: p.Consented,
		})
	}

	a.writeJSON(w, resp)
}

type transcriptSummaryResponse struct {
	ConversationID string    `json:"conversation_id"`
	Label          int64     `json:"label"`
	AssistantName  string    `json:"assistant_name"`
	MessageCount   int64     `json:"message_count"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type transcriptPageResponse struct {
	Transcripts   []transcriptSummaryResponse `json:"transcripts"`
	Total         int64                       `json:"total"`
	NextPageToken string                      `json:"next_page_token,omitempty"`
}

func (a *API) transcripts(w http.ResponseWriter, r *http.Request) {
	claims, ok := a.pageClaims(w, r)
	if !ok {
		return
	}

	size, _ := strconv.ParseUint(r.URL.Query().Get("size"), 10, 64)

	page, err := a.service.Transcripts(
		r.Context(),
		claims,
		r.URL.Query().Get("assistant_id"),
		r.URL.Query().Get("page_token"),
		size,
	)
	if err != nil {
		a.writeServiceError(w, err, "failed to list transcripts")
		return
	}

	resp := transcriptPageResponse{
		Transcripts:   make([]transcriptSummaryResponse, 0, len(page.Transcripts)),
		Total:         page.Total,
		NextPageToken: page.NextPageToken,
	}
	for _, s := range page.Transcripts {
		resp.Transcripts = append(resp.Transcripts, transcriptSummaryResponse{
			ConversationID: s.ConversationID,
			Label:          s.Label,
			AssistantName:  s.AssistantName,
			MessageCount:   s.MessageCount,
			UpdatedAt:      s.UpdatedAt,
		})
	}

	a.writeJSON(w, resp)
}

type messageResponse struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type transcriptResponse struct {
	ConversationID string            `json:"conversation_id"`
	Label          int64             `json:"label"`
	AssistantName  string            `json:"assistant_name"`
	Messages       []messageResponse `json:"messages"`
}

func (a *API) transcript(w http.ResponseWriter, r *http.Request) {
	claims, ok := a.pageClaims(w, r)
	if !ok {
		return
	}

	transcript, err := a.service.Transcript(r.Context(), claims, chi.URLParam(r, "id"))
	if err != nil {
		a.writeServiceError(w, err, "failed to load transcript")
		return
	}

	resp := transcriptResponse{
		ConversationID: transcript.ConversationID,
		Label:          transcript.Label,
		AssistantName:  transcript.AssistantName,
		Messages:       make([]messageResponse, 0, len(transcript.Messages)),
	}
	for _, m := range transcript.Messages {
		resp.Messages = append(resp.Messages, messageResponse{
			Role:      m.Role,
			Content:   m.Content,
			CreatedAt: m.CreatedAt,
		})
	}

	a.writeJSON(w, resp)
}

func (a *API) writeServiceError(w http.ResponseWriter, err error, message string) {
	switch {
	case errors.Is(err, ErrTranscriptsDisabled):
		http.Error(w, err.Error(), http.StatusForbidden)
	case errors.Is(err, ErrForeignConversation), errors.Is(err, storage.ErrNotFound):
		http.Error(w, "not found", http.StatusNotFound)
	default:
		a.logger.Errorf("%s: %v", message, err)
		http.Error(w, message, http.StatusInternalServerError)
	}
}

func (a *API) pageClaims(w http.ResponseWriter, r *http.Request) (*authentication.PageClaims, bool) {
	claims, err := a.pageTokens.Verify(launch.PageToken(r), authentication.PurposeDashboard)
	if err != nil {
		http.Error(w, "invalid or expired page token", http.StatusUnauthorized)
		return nil, false
	}
	return claims, true
}

func (a *API) writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		a.logger.Errorf("failed to encode response: %v", err)
	}
}
