// Copyright 2026 LAMB Project
// SPDX-License-Identifier: AGPL-3.0

package activity

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/Lamb-Project/lamb-sub010/internal/logging"
	"github.com/Lamb-Project/lamb-sub010/internal/storage"
	"github.com/Lamb-Project/lamb-sub010/internal/tracing"
	"github.com/Lamb-Project/lamb-sub010/internal/types"
	"github.com/Lamb-Project/lamb-sub010/pkg/authentication"
	"github.com/Lamb-Project/lamb-sub010/pkg/launch"
)

type PageTokenInterface interface {
	Issue(claims authentication.PageClaims) (string, error)
	Verify(rawToken, purpose string) (*authentication.PageClaims, error)
}

type API struct {
	service    ServiceInterface
	pageTokens PageTokenInterface
	validate   *validator.Validate

	tracer tracing.TracingInterface
	logger logging.LoggerInterface
}

func NewAPI(service ServiceInterface, pageTokens PageTokenInterface, tracer tracing.TracingInterface, logger logging.LoggerInterface) *API {
	return &API{
		service:    service,
		pageTokens: pageTokens,
		validate:   validator.New(),
		tracer:     tracer,
		logger:     logger,
	}
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Post("/api/v0/activities", a.configure)
	mux.Get("/api/v0/activities/{id}", a.getConfiguration)
	mux.Put("/api/v0/activities/{id}", a.reconfigure)
}

type configureRequest struct {
	AccountID      string   `json:"account_id" validate:"required"`
	Name           string   `json:"name" validate:"required,max=200"`
	AssistantIDs   []string `json:"assistant_ids" validate:"required,min=1"`
	ChatVisibility bool     `json:"chat_visibility"`
}

type activityResponse struct {
	ID             string `json:"id"`
	PlacementID    string `json:"placement_id"`
	OrganizationID string `json:"organization_id"`
	CourseID       string `json:"course_id"`
	CourseTitle    string `json:"course_title"`
	Name           string `json:"name"`
	ChatVisibility bool   `json:"chat_visibility"`
	Status         string `json:"status"`
}

type configureResponse struct {
	Activity       activityResponse `json:"activity"`
	DashboardToken string           `json:"dashboard_token"`
}

func (a *API) configure(w http.ResponseWriter, r *http.Request) {
	claims, ok := a.pageClaims(w, r, authentication.PurposeSetup)
	if !ok {
		return
	}

	var req configureRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := a.validate.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	created, err := a.service.Configure(r.Context(), claims, &ConfigureRequest{
		AccountID:      req.AccountID,
		Name:           req.Name,
		AssistantIDs:   req.AssistantIDs,
		ChatVisibility: req.ChatVisibility,
	})
	if err != nil {
		a.writeServiceError(w, err, "failed to configure activity")
		return
	}

	// Hand the instructor straight to their new dashboard.
	token, err := a.pageTokens.Issue(authentication.PageClaims{
		Purpose:     authentication.PurposeDashboard,
		PlacementID: created.PlacementID,
		ActivityID:  created.ID,
		IsOwner:     true,
		RegisteredClaims: authentication.RegisteredClaims{
			Subject: claims.Subject,
		},
	})
	if err != nil {
		a.logger.Errorf("failed to issue dashboard token: %v", err)
		http.Error(w, "failed to configure activity", http.StatusInternalServerError)
		return
	}

	a.writeJSON(w, http.StatusCreated, configureResponse{
		Activity:       toActivityResponse(created),
		DashboardToken: token,
	})
}

type reconfigureRequest struct {
	Name           string   `json:"name" validate:"required,max=200"`
	AssistantIDs   []string `json:"assistant_ids" validate:"required,min=1"`
	ChatVisibility bool     `json:"chat_visibility"`
}

func (a *API) reconfigure(w http.ResponseWriter, r *http.Request) {
	claims, ok := a.pageClaims(w, r, authentication.PurposeDashboard)
	if !ok {
		return
	}

	activityID := chi.URLParam(r, "id")
	if activityID != claims.ActivityID {
		http.Error(w, "token does not match activity", http.StatusForbidden)
		return
	}

	var req reconfigureRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := a.validate.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	updated, err := a.service.Reconfigure(r.Context(), claims, &ReconfigureRequest{
		ActivityID:     activityID,
		Name:           req.Name,
		AssistantIDs:   req.AssistantIDs,
		ChatVisibility: req.ChatVisibility,
	})
	if err != nil {
		a.writeServiceError(w, err, "failed to reconfigure activity")
		return
	}

	a.writeJSON(w, http.StatusOK, toActivityResponse(updated))
}

type assistantResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type configurationResponse struct {
	Activity   activityResponse    `json:"activity"`
	Assistants []assistantResponse `json:"assistants"`
}

func (a *API) getConfiguration(w http.ResponseWriter, r *http.Request) {
	claims, ok := a.pageClaims(w, r, authentication.PurposeDashboard)
	if !ok {
		return
	}

	activityID := chi.URLParam(r, "id")
	if activityID != claims.ActivityID {
		http.Error(w, "token does not match activity", http.StatusForbidden)
		return
	}

	config, err := a.service.GetConfiguration(r.Context(), activityID)
	if err != nil {
		a.writeServiceError(w, err, "failed to load configuration")
		return
	}

	resp := configurationResponse{
		Activity:   toActivityResponse(config.Activity),
		Assistants: make([]assistantResponse, 0, len(config.Assistants)),
	}
	for _, as := range config.Assistants {
		resp.Assistants = append(resp.Assistants, assistantResponse{ID: as.ID, Name: as.Name})
	}

	a.writeJSON(w, http.StatusOK, resp)
}

func (a *API) writeServiceError(w http.ResponseWriter, err error, message string) {
	switch {
	case errors.Is(err, ErrNotOwner), errors.Is(err, ErrUnknownAccount):
		http.Error(w, err.Error(), http.StatusForbidden)
	case errors.Is(err, ErrForeignAssistant):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	case errors.Is(err, ErrAlreadyConfigured):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, storage.ErrNotFound):
		http.Error(w, "activity not found", http.StatusNotFound)
	default:
		a.logger.Errorf("%s: %v", message, err)
		http.Error(w, message, http.StatusInternalServerError)
	}
}

func (a *API) pageClaims(w http.ResponseWriter, r *http.Request, purpose string) (*authentication.PageClaims, bool) {
	claims, err := a.pageTokens.Verify(launch.PageToken(r), purpose)
	if err != nil {
		http.Error(w, "invalid or expired page token", http.StatusUnauthorized)
		return nil, false
	}
	return claims, true
}

func (a *API) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		a.logger.Errorf("failed to encode response: %v", err)
	}
}

func toActivityResponse(a *types.Activity) activityResponse {
	return activityResponse{
		ID:             a.ID,
		PlacementID:    a.PlacementID,
		OrganizationID: a.OrganizationID,
		CourseID:       a.CourseID,
		CourseTitle:    a.CourseTitle,
		Name:           a.Name,
		ChatVisibility: a.ChatVisibility,
		Status:         a.Status,
	}
}
