// Copyright 2026 LAMB Project
// SPDX-License-Identifier: AGPL-3.0

package consent

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Lamb-Project/lamb-sub010/internal/logging"
	"github.com/Lamb-Project/lamb-sub010/internal/storage"
	"github.com/Lamb-Project/lamb-sub010/internal/tracing"
	"github.com/Lamb-Project/lamb-sub010/pkg/authentication"
	"github.com/Lamb-Project/lamb-sub010/pkg/launch"
)

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
	mux.Post("/api/v0/consent", a.accept)
}

type acceptResponse struct {
	RedirectURL string `json:"redirect_url"`
}

func (a *API) accept(w http.ResponseWriter, r *http.Request) {
	claims, err := a.pageTokens.Verify(launch.PageToken(r), authentication.PurposeConsent)
	if err != nil {
		http.Error(w, "invalid or expired page token", http.StatusUnauthorized)
		return
	}

	result, err := a.service.Accept(r.Context(), claims)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			http.Error(w, "participant not found", http.StatusNotFound)
		case errors.Is(err, launch.ErrNotConfigured):
			http.Error(w, "activity is not available", http.StatusConflict)
		default:
			a.logger.Errorf("failed to record consent: %v", err)
			http.Error(w, "failed to record consent", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(acceptResponse{RedirectURL: result.RedirectURL}); err != nil {
		a.logger.Errorf("failed to encode response: %v", err)
	}
}
