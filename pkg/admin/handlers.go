// Copyright 2026 LAMB Project
// SPDX-License-Identifier: AGPL-3.0

package admin

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/Lamb-Project/lamb-sub010/internal/logging"
	"github.com/Lamb-Project/lamb-sub010/internal/storage"
	"github.com/Lamb-Project/lamb-sub010/internal/tracing"
	"github.com/Lamb-Project/lamb-sub010/internal/types"
	"github.com/Lamb-Project/lamb-sub010/pkg/authentication"
)

type API struct {
	service  ServiceInterface
	validate *validator.Validate

	tracer tracing.TracingInterface
	logger logging.LoggerInterface
}

func NewAPI(service ServiceInterface, tracer tracing.TracingInterface, logger logging.LoggerInterface) *API {
	return &API{
		service:  service,
		validate: validator.New(),
		tracer:   tracer,
		logger:   logger,
	}
}

// RegisterEndpoints mounts the admin routes under the given router, which is
// expected to already carry the bearer authentication middleware.
func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Get("/api/v0/admin/organizations/{orgID}/activities", a.listActivities)
	mux.Get("/api/v0/admin/activities/{id}", a.getActivity)
	mux.Patch("/api/v0/admin/activities/{id}", a.updateActivity)
	mux.Post("/api/v0/admin/activities/{id}/disable", a.disableActivity)
	mux.Post("/api/v0/admin/activities/{id}/enable", a.enableActivity)
	mux.Get("/api/v0/admin/credential", a.getCredential)
	mux.Put("/api/v0/admin/credential", a.updateCredential)
}

type activityResponse struct {
	ID             string    `json:"id"`
	PlacementID    string    `json:"placement_id"`
	OrganizationID string    `json:"organization_id"`
	CourseID       string    `json:"course_id"`
	CourseTitle    string    `json:"course_title"`
	Name           string    `json:"name"`
	OwnerID        string    `json:"owner_id"`
	ChatVisibility bool      `json:"chat_visibility"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (a *API) listActivities(w http.ResponseWriter, r *http.Request) {
	adminID, ok := a.adminID(w, r)
	if !ok {
		return
	}

	activities, err := a.service.ListActivities(r.Context(), adminID, chi.URLParam(r, "orgID"))
	if err != nil {
		a.writeServiceError(w, err, "failed to list activities")
		return
	}

	resp := make([]activityResponse, 0, len(activities))
	for _, act := range activities {
		resp = append(resp, toActivityResponse(act))
	}

	a.writeJSON(w, http.StatusOK, resp)
}

func (a *API) getActivity(w http.ResponseWriter, r *http.Request) {
	adminID, ok := a.adminID(w, r)
	if !ok {
		return
	}

	activity, err := a.service.GetActivity(r.Context(), adminID, chi.URLParam(r, "id"))
	if err != nil {
		a.writeServiceError(w, err, "failed to get activity")
		return
	}

	a.writeJSON(w, http.StatusOK, toActivityResponse(activity))
}

type updateActivityRequest struct {
	Name           string `json:"name" validate:"required,max=200"`
	ChatVisibility bool   `json:"chat_visibility"`
}

func (a *API) updateActivity(w http.ResponseWriter, r *http.Request) {
	adminID, ok := a.adminID(w, r)
	if !ok {
		return
	}

	var req updateActivityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := a.validate.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	updated, err := a.service.UpdateActivity(r.Context(), adminID, chi.URLParam(r, "id"), req.Name, req.ChatVisibility)
	if err != nil {
		a.writeServiceError(w, err, "failed to update activity")
		return
	}

	a.writeJSON(w, http.StatusOK, toActivityResponse(updated))
}

func (a *API) disableActivity(w http.ResponseWriter, r *http.Request) {
	a.setStatus(w, r, types.ActivityStatusDisabled)
}

func (a *API) enableActivity(w http.ResponseWriter, r *http.Request) {
	a.setStatus(w, r, types.ActivityStatusActive)
}

func (a *API) setStatus(w http.ResponseWriter, r *http.Request, status string) {
	adminID, ok := a.adminID(w, r)
	if !ok {
		return
	}

	if err := a.service.SetActivityStatus(r.Context(), adminID, chi.URLParam(r, "id"), status); err != nil {
		a.writeServiceError(w, err, "failed to set activity status")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type credentialResponse struct {
	ConsumerKey string    `json:"consumer_key"`
	UpdatedAt   time.Time `json:"updated_at"`
	UpdatedBy   string    `json:"updated_by"`
}

func (a *API) getCredential(w http.ResponseWriter, r *http.Request) {
	if _, ok := a.adminID(w, r); !ok {
		return
	}

	cred, err := a.service.GetCredential(r.Context())
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			// No override recorded; the deployment default is in effect.
			w.WriteHeader(http.StatusNoContent)
			return
		}
		a.writeServiceError(w, err, "failed to get credential")
		return
	}

	// The secret is write-only.
	a.writeJSON(w, http.StatusOK, credentialResponse{
		ConsumerKey: cred.ConsumerKey,
		UpdatedAt:   cred.UpdatedAt,
		UpdatedBy:   cred.UpdatedBy,
	})
}

type updateCredentialRequest struct {
	ConsumerKey    string `json:"consumer_key" validate:"required,min=8"`
	ConsumerSecret string `json:"consumer_secret" validate:"required,min=16"`
}

func (a *API) updateCredential(w http.ResponseWriter, r *http.Request) {
	adminID, ok := a.adminID(w, r)
	if !ok {
		return
	}

	var req updateCredentialRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := a.validate.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := a.service.UpdateCredential(r.Context(), adminID, req.ConsumerKey, req.ConsumerSecret); err != nil {
		a.writeServiceError(w, err, "failed to update credential")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *API) adminID(w http.ResponseWriter, r *http.Request) (string, bool) {
	adminID, ok := authentication.GetUserID(r.Context())
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return "", false
	}
	return adminID, true
}

func (a *API) writeServiceError(w http.ResponseWriter, err error, message string) {
	switch {
	case errors.Is(err, ErrNotAdmin):
		http.Error(w, err.Error(), http.StatusForbidden)
	case errors.Is(err, storage.ErrNotFound):
		http.Error(w, "not found", http.StatusNotFound)
	default:
		a.logger.Errorf("%s: %v", message, err)
		http.Error(w, message, http.StatusInternalServerError)
	}
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
		OwnerID:        a.OwnerID,
		ChatVisibility: a.ChatVisibility,
		Status:         a.Status,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
}
