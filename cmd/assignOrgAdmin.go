// Copyright 2026 LAMB Project
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Lamb-Project/lamb-sub010/internal/authorization"
	"github.com/Lamb-Project/lamb-sub010/internal/logging"
	"github.com/Lamb-Project/lamb-sub010/internal/monitoring"
	"github.com/Lamb-Project/lamb-sub010/internal/openfga"
	"github.com/Lamb-Project/lamb-sub010/internal/tracing"
)

// assignOrgAdminCmd represents the assign-org-admin command
var assignOrgAdminCmd = &cobra.Command{
	Use:   "assign-org-admin",
	Short: "Grants an account the admin relation on an organization",
	Long:  `Grants an account the admin relation on an organization, letting it manage every activity bound to that organization`,
	Run: func(cmd *cobra.Command, args []string) {
		apiUrl, _ := cmd.Flags().GetString("fga-api-url")
		apiToken, _ := cmd.Flags().GetString("fga-api-token")
		storeId, _ := cmd.Flags().GetString("fga-store-id")
		modelId, _ := cmd.Flags().GetString("fga-model-id")
		organizationId, _ := cmd.Flags().GetString("organization-id")
		accountId, _ := cmd.Flags().GetString("account-id")
		verbose, _ := cmd.Flags().GetBool("verbose")

		if err := assignOrgAdmin(apiUrl, apiToken, storeId, modelId, organizationId, accountId, verbose); err != nil {
			cmd.PrintErrln(err)
			os.Exit(1)
		}

		cmd.Printf("Account %s is now an admin of organization %s\n", accountId, organizationId)
	},
}

func init() {
	rootCmd.AddCommand(assignOrgAdminCmd)

	assignOrgAdminCmd.Flags().String("fga-api-url", "", "The openfga API URL")
	assignOrgAdminCmd.Flags().String("fga-api-token", "", "The openfga API token")
	assignOrgAdminCmd.Flags().String("fga-store-id", "", "The openfga store holding the authorization model")
	assignOrgAdminCmd.Flags().String("fga-model-id", "", "The authorization model to write against")
	assignOrgAdminCmd.Flags().String("organization-id", "", "The organization to grant the admin relation on")
	assignOrgAdminCmd.Flags().String("account-id", "", "The account receiving the admin relation")
	assignOrgAdminCmd.Flags().BoolP("verbose", "v", false, "Enable verbose logging")
	assignOrgAdminCmd.MarkFlagRequired("fga-api-url")
	assignOrgAdminCmd.MarkFlagRequired("fga-api-token")
	assignOrgAdminCmd.MarkFlagRequired("fga-store-id")
	assignOrgAdminCmd.MarkFlagRequired("organization-id")
	assignOrgAdminCmd.MarkFlagRequired("account-id")
}

func assignOrgAdmin(apiUrl, apiToken, storeId, modelId, organizationId, accountId string, verbose bool) error {
	ctx := context.Background()

	logger := logging.NewNoopLogger()
	tracer := tracing.NewNoopTracer()
	monitor := monitoring.NewNoopMonitor()

	scheme, host, err := parseURL(apiUrl)
	if err != nil {
		return fmt.Errorf("failed to parse url: %w", err)
	}

	cfg := openfga.Config{
		ApiScheme: scheme,
		ApiHost:   host,
		StoreID:   storeId,
		ApiToken:  apiToken,
		ModelID:   modelId,
		Debug:     verbose,
		Tracer:    tracer,
		Monitor:   monitor,
		Logger:    logger,
	}

	authorizer := authorization.NewAuthorizer(openfga.NewClient(&cfg), tracer, monitor, logger)

	if err := authorizer.AssignOrganizationAdmin(ctx, organizationId, accountId); err != nil {
		return fmt.Errorf("failed to assign organization admin: %w", err)
	}

	return nil
}
