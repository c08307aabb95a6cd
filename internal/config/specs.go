// Copyright 2026 LAMB Project
// SPDX-License-Identifier: AGPL-3.0

package config

import (
	"time"
)

// EnvSpec is the basic environment configuration setup needed for the app to start
type EnvSpec struct {
	OtelGRPCEndpoint string `envconfig:"otel_grpc_endpoint"`
	OtelHTTPEndpoint string `envconfig:"otel_http_endpoint"`
	TracingEnabled   bool   `envconfig:"tracing_enabled" default:"true"`

	LogLevel string `envconfig:"log_level" default:"error"`
	Debug    bool   `envconfig:"debug" default:"false"`

	Port int `envconfig:"port" default:"8080"`

	// BaseURL is the externally reachable root of this service, used when
	// building redirect and consent URLs handed to the LMS.
	BaseURL string `envconfig:"base_url" required:"true"`

	DSN string `envconfig:"DSN" required:"true"`

	DBMaxConns        int32         `envconfig:"db_max_conns" default:"25"`
	DBMinConns        int32         `envconfig:"db_min_conns" default:"2"`
	DBMaxConnLifetime time.Duration `envconfig:"db_max_conn_lifetime" default:"1h"`
	DBMaxConnIdleTime time.Duration `envconfig:"db_max_conn_idle_time" default:"30m"`

	// Fallback LTI consumer credentials, used when no override row exists.
	LTIConsumerKey    string `envconfig:"lti_consumer_key" required:"true"`
	LTIConsumerSecret string `envconfig:"lti_consumer_secret" required:"true"`
	// Launches older than this window are rejected as replays.
	LTITimestampSkew time.Duration `envconfig:"lti_timestamp_skew" default:"5m"`

	// Signing key for the short-lived setup/dashboard/consent page tokens.
	PageTokenSecret   string        `envconfig:"page_token_secret" required:"true"`
	PageTokenLifetime time.Duration `envconfig:"page_token_lifetime" default:"30m"`

	// Trailing window for the dashboard "recently active" counter.
	ActivityWindow time.Duration `envconfig:"activity_window" default:"168h"`

	KratosAdminURL  string `envconfig:"kratos_admin_url" required:"true"`
	KratosPublicURL string `envconfig:"kratos_public_url" required:"true"`

	SessionProviderURL    string `envconfig:"session_provider_url" required:"true"`
	SessionProviderAPIKey string `envconfig:"session_provider_api_key" required:"true"`

	AdminIssuer          string   `envconfig:"admin_oidc_issuer"`
	AdminJWKSURL         string   `envconfig:"admin_oidc_jwks_url"`
	AdminAllowedSubjects []string `envconfig:"admin_allowed_subjects"`
	AdminRequiredScope   string   `envconfig:"admin_required_scope" default:"lamb:admin"`

	AuthorizationEnabled bool   `envconfig:"authorization_enabled" default:"false"`
	OpenfgaApiScheme     string `envconfig:"openfga_api_scheme" default:""`
	OpenfgaApiHost       string `envconfig:"openfga_api_host"`
	OpenfgaApiToken      string `envconfig:"openfga_api_token"`
	OpenfgaStoreId       string `envconfig:"openfga_store_id"`
	OpenfgaModelId       string `envconfig:"openfga_authorization_model_id" default:""`
}
