// Copyright 2026 LAMB Project
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Lamb-Project/lamb-sub010/internal/authorization"
	"github.com/Lamb-Project/lamb-sub010/internal/config"
	"github.com/Lamb-Project/lamb-sub010/internal/db"
	"github.com/Lamb-Project/lamb-sub010/internal/kratos"
	"github.com/Lamb-Project/lamb-sub010/internal/logging"
	"github.com/Lamb-Project/lamb-sub010/internal/monitoring/prometheus"
	"github.com/Lamb-Project/lamb-sub010/internal/openfga"
	"github.com/Lamb-Project/lamb-sub010/internal/sessions"
	"github.com/Lamb-Project/lamb-sub010/internal/storage"
	"github.com/Lamb-Project/lamb-sub010/internal/tracing"
	"github.com/Lamb-Project/lamb-sub010/pkg/authentication"
	"github.com/Lamb-Project/lamb-sub010/pkg/web"
	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serve starts the web server",
	Long:  `Launch the web application, list of environment variables is available in the readme`,
	Run: func(cmd *cobra.Command, args []string) {
		main()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serve() error {
	specs := new(config.EnvSpec)
	if err := envconfig.Process("", specs); err != nil {
		panic(fmt.Errorf("issues with environment sourcing: %s", err))
	}

	logger := logging.NewLogger(specs.LogLevel)
	logger.Debugf("env vars: %v", specs)
	defer logger.Sync()

	monitor := prometheus.NewMonitor("unified-launch", logger)
	tracer := tracing.NewTracer(tracing.NewConfig(specs.TracingEnabled, specs.OtelGRPCEndpoint, specs.OtelHTTPEndpoint, logger))

	dbConfig := db.Config{
		DSN:             specs.DSN,
		MaxConns:        specs.DBMaxConns,
		MinConns:        specs.DBMinConns,
		MaxConnLifetime: specs.DBMaxConnLifetime,
		MaxConnIdleTime: specs.DBMaxConnIdleTime,
		TracingEnabled:  specs.TracingEnabled,
	}
	dbClient, err := db.NewDBClient(dbConfig, tracer, monitor, logger)
	if err != nil {
		return fmt.Errorf("failed to create database client: %v", err)
	}
	defer dbClient.Close()
	s := storage.NewStorage(dbClient, tracer, monitor, logger)

	var authorizer *authorization.Authorizer
	if specs.AuthorizationEnabled {
		ofga := openfga.NewClient(
			openfga.NewConfig(
				specs.OpenfgaApiScheme,
				specs.OpenfgaApiHost,
				specs.OpenfgaStoreId,
				specs.OpenfgaApiToken,
				specs.OpenfgaModelId,
				specs.Debug,
				tracer,
				monitor,
				logger,
			),
		)
		authorizer = authorization.NewAuthorizer(
			ofga,
			tracer,
			monitor,
			logger,
		)
		logger.Info("Authorization is enabled")
		if authorizer.ValidateModel(context.Background()) != nil {
			panic("Invalid authorization model provided")
		}
	} else {
		authorizer = authorization.NewAuthorizer(
			openfga.NewNoopClient(tracer, monitor, logger),
			tracer,
			monitor,
			logger,
		)
		logger.Info("Using noop authorizer")
	}

	kratosClient := kratos.NewClient(
		specs.KratosAdminURL,
		specs.KratosPublicURL,
		tracer,
		monitor,
		logger,
	)

	sessionsClient := sessions.NewClient(
		specs.SessionProviderURL,
		specs.SessionProviderAPIKey,
		tracer,
		monitor,
		logger,
	)

	var adminVerifier authentication.TokenVerifierInterface
	if specs.AdminIssuer != "" {
		adminVerifier, err = authentication.NewJWTAuthenticator(
			context.Background(),
			specs.AdminIssuer,
			specs.AdminJWKSURL,
			specs.AdminAllowedSubjects,
			specs.AdminRequiredScope,
			tracer,
			monitor,
			logger,
		)
		if err != nil {
			return fmt.Errorf("failed to create admin token verifier: %v", err)
		}
	} else {
		adminVerifier = authentication.NewNoopVerifier("admin")
		logger.Info("Admin API authentication is disabled")
	}

	router := web.NewRouter(
		&web.Config{
			BaseURL:           specs.BaseURL,
			LTIConsumerKey:    specs.LTIConsumerKey,
			LTIConsumerSecret: specs.LTIConsumerSecret,
			LTITimestampSkew:  specs.LTITimestampSkew,
			PageTokenSecret:   specs.PageTokenSecret,
			PageTokenLifetime: specs.PageTokenLifetime,
			ActivityWindow:    specs.ActivityWindow,
			AdminVerifier:     adminVerifier,
		},
		s,
		dbClient,
		authorizer,
		kratosClient,
		sessionsClient,
		tracer,
		monitor,
		logger,
	)
	logger.Infof("Starting HTTP server on port %v", specs.Port)

	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%v", specs.Port),
		WriteTimeout: time.Second * 60,
		ReadTimeout:  time.Second * 15,
		IdleTimeout:  time.Second * 60,
		Handler:      router,
	}

	var serverError error
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Security().SystemStartup()
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverError = fmt.Errorf("server error: %w", err)
			c <- os.Interrupt
		}
	}()

	<-c

	// Create a deadline to wait for.
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logger.Security().SystemShutdown()
	if err := srv.Shutdown(ctx); err != nil {
		serverError = fmt.Errorf("server shutdown error: %w", err)
	}

	return serverError
}

func main() {
	if err := serve(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}
