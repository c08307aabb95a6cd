// Copyright 2026 LAMB Project
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"
	"time"

	chi "github.com/go-chi/chi/v5"
	middleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/Lamb-Project/lamb-sub010/internal/authorization"
	"github.com/Lamb-Project/lamb-sub010/internal/db"
	"github.com/Lamb-Project/lamb-sub010/internal/kratos"
	"github.com/Lamb-Project/lamb-sub010/internal/logging"
	"github.com/Lamb-Project/lamb-sub010/internal/lti"
	"github.com/Lamb-Project/lamb-sub010/internal/monitoring"
	"github.com/Lamb-Project/lamb-sub010/internal/sessions"
	"github.com/Lamb-Project/lamb-sub010/internal/storage"
	"github.com/Lamb-Project/lamb-sub010/internal/tracing"
	"github.com/Lamb-Project/lamb-sub010/pkg/activity"
	"github.com/Lamb-Project/lamb-sub010/pkg/admin"
	"github.com/Lamb-Project/lamb-sub010/pkg/authentication"
	"github.com/Lamb-Project/lamb-sub010/pkg/consent"
	"github.com/Lamb-Project/lamb-sub010/pkg/dashboard"
	"github.com/Lamb-Project/lamb-sub010/pkg/launch"
	"github.com/Lamb-Project/lamb-sub010/pkg/metrics"
	"github.com/Lamb-Project/lamb-sub010/pkg/status"
)

// Config carries the request-path settings the router wires into the
// services. Everything else comes in as a constructed dependency.
type Config struct {
	BaseURL string

	LTIConsumerKey    string
	LTIConsumerSecret string
	LTITimestampSkew  time.Duration

	PageTokenSecret   string
	PageTokenLifetime time.Duration

	ActivityWindow time.Duration

	AdminVerifier authentication.TokenVerifierInterface
}

func NewRouter(
	cfg *Config,
	store storage.StorageInterface,
	dbClient db.DBClientInterface,
	authorizer authorization.AuthorizerInterface,
	kratosClient kratos.ClientInterface,
	sessionsClient sessions.ClientInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) http.Handler {
	router := chi.NewMux()

	middlewares := make(chi.Middlewares, 0)
	middlewares = append(
		middlewares,
		middleware.RequestID,
		monitoring.NewMiddleware(monitor, logger).ResponseTime(),
		cors.Handler(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		}),
	)

	router.Use(middlewares...)

	pageTokens := authentication.NewPageTokenIssuer(cfg.PageTokenSecret, cfg.PageTokenLifetime, tracer, logger)
	ltiValidator := lti.NewValidator(cfg.LTITimestampSkew)
	credentials := launch.NewCredentialResolver(store, cfg.LTIConsumerKey, cfg.LTIConsumerSecret, tracer, logger)
	resolver := launch.NewResolver(store, kratosClient, tracer, monitor, logger)

	launchService := launch.NewService(store, resolver, credentials, ltiValidator, sessionsClient, pageTokens, cfg.BaseURL, tracer, monitor, logger)
	activityService := activity.NewService(store, dbClient, resolver, authorizer, sessionsClient, tracer, monitor, logger)
	consentService := consent.NewService(store, launchService, tracer, monitor, logger)
	dashboardService := dashboard.NewService(store, sessionsClient, cfg.ActivityWindow, tracer, monitor, logger)
	adminService := admin.NewService(store, authorizer, tracer, monitor, logger)

	metrics.NewAPI(logger).RegisterEndpoints(router)
	status.NewAPI(tracer, monitor, logger).RegisterEndpoints(router)
	launch.NewAPI(launchService, pageTokens, tracer, logger).RegisterEndpoints(router)
	activity.NewAPI(activityService, pageTokens, tracer, logger).RegisterEndpoints(router)
	consent.NewAPI(consentService, pageTokens, tracer, logger).RegisterEndpoints(router)
	dashboard.NewAPI(dashboardService, pageTokens, tracer, logger).RegisterEndpoints(router)

	router.Group(func(r chi.Router) {
		r.Use(authentication.NewMiddleware(cfg.AdminVerifier, tracer, monitor, logger).Authenticate())
		admin.NewAPI(adminService, tracer, logger).RegisterEndpoints(r)
	})

	return tracing.NewMiddleware(monitor, logger).OpenTelemetry(router)
}
