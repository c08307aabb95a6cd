// Copyright 2026 LAMB Project
// SPDX-License-Identifier: AGPL-3.0

package launch

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/Lamb-Project/lamb-sub010/internal/logging"
	"github.com/Lamb-Project/lamb-sub010/internal/lti"
	"github.com/Lamb-Project/lamb-sub010/internal/tracing"
	"github.com/Lamb-Project/lamb-sub010/pkg/authentication"
)

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
	mux.Post("/lti/launch", a.launch)
	mux.Get("/api/v0/setup-context", a.setupContext)
	mux.Post("/api/v0/identity/link", a.linkIdentity)
}

func (a *API) launch(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form body", http.StatusBadRequest)
		return
	}

	result, err := a.service.Launch(r.Context(), r)
	if err != nil {
		switch {
		case errors.Is(err, lti.ErrInvalidSignature), errors.Is(err, lti.ErrStaleTimestamp), errors.Is(err, lti.ErrMissingParams):
			http.Error(w, "launch could not be verified", http.StatusUnauthorized)
		case errors.Is(err, ErrNotConfigured):
			// Shown inside the LMS iframe, so a plain page beats a JSON error.
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("<p>This activity has not been set up yet. Please check back later.</p>"))
		default:
			a.logger.Errorf("launch failed: %v", err)
			http.Error(w, "launch failed", http.StatusInternalServerError)
		}
		return
	}

	http.Redirect(w, r, result.RedirectURL, http.StatusFound)
}

type candidateResponse struct {
	AccountID      string `json:"account_id"`
	Email          string `json:"email"`
	DisplayName    string `json:"display_name"`
	OrganizationID string `json:"organization_id"`
}

type assistantResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type setupContextResponse struct {
	CourseID    string                         `json:"course_id"`
	CourseTitle string                         `json:"course_title"`
	Candidates  []candidateResponse            `json:"candidates"`
	Assistants  map[string][]assistantResponse `json:"assistants"`
}

func (a *API) setupContext(w http.ResponseWriter, r *http.Request) {
	claims, ok := a.pageClaims(w, r, authentication.PurposeSetup)
	if !ok {
		return
	}

	sc, err := a.service.SetupContext(r.Context(), claims)
	if err != nil {
		a.logger.Errorf("failed to build setup context: %v", err)
		http.Error(w, "failed to load setup context", http.StatusInternalServerError)
		return
	}

	resp := setupContextResponse{
		CourseID:    sc.CourseID,
		CourseTitle: sc.CourseTitle,
		Candidates:  make([]candidateResponse, 0, len(sc.Candidates)),
		Assistants:  make(map[string][]assistantResponse, len(sc.Assistants)),
	}
	for _, c := range sc.Candidates {
		resp.Candidates = append(resp.Candidates, candidateResponse{
			AccountID:      c.AccountID,
			Email:          c.Email,
			DisplayName:    c.DisplayName,
			OrganizationID: c.OrganizationID,
		})
	}
	for org, assistants := range sc.Assistants {
		list := make([]assistantResponse, 0, len(assistants))
		for _, as := range assistants {
			list = append(list, assistantResponse{ID: as.ID, Name: as.Name})
		}
		resp.Assistants[org] = list
	}

	a.writeJSON(w, http.StatusOK, resp)
}

type linkIdentityRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (a *API) linkIdentity(w http.ResponseWriter, r *http.Request) {
	claims, ok := a.pageClaims(w, r, authentication.PurposeSetup)
	if !ok {
		return
	}

	var req linkIdentityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := a.validate.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	candidate, err := a.service.LinkIdentity(r.Context(), claims, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			http.Error(w, "invalid credentials", http.StatusUnauthorized)
			return
		}
		a.logger.Errorf("failed to link identity: %v", err)
		http.Error(w, "failed to link identity", http.StatusInternalServerError)
		return
	}

	a.writeJSON(w, http.StatusOK, candidateResponse{
		AccountID:      candidate.AccountID,
		Email:          candidate.Email,
		DisplayName:    candidate.DisplayName,
		OrganizationID: candidate.OrganizationID,
	})
}

func (a *API) pageClaims(w http.ResponseWriter, r *http.Request, purpose string) (*authentication.PageClaims, bool) {
	claims, err := a.pageTokens.Verify(PageToken(r), purpose)
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

// PageToken pulls the page token from the Authorization header or, for the
// initial redirect, the query string.
func PageToken(r *http.Request) string {
	if bearer := r.Header.Get("Authorization"); strings.HasPrefix(bearer, "Bearer ") {
		return strings.TrimPrefix(bearer, "Bearer ")
	}
	return r.URL.Query().Get("token")
}
