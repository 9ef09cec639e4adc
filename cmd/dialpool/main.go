package main

import (
	"os"

	"github.com/spf13/cobra"

	"dialpool/internal/interfaces/cli/agent"
	"dialpool/internal/interfaces/cli/backfill"
	"dialpool/internal/interfaces/cli/migrate"
	"dialpool/internal/interfaces/cli/server"
	"dialpool/internal/interfaces/cli/token"
	"dialpool/internal/shared/version"
)

// @title Dialpool API
// @description Lead distribution for outbound call teams.
// @BasePath /
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the access token.
func main() {
	rootCmd := &cobra.Command{
		Use:     "dialpool",
		Short:   "Dialpool - lead distribution for outbound call teams",
		Long:    `Dialpool imports company records, enriches them from the public registry and hands them out to call-center agents in daily batches.`,
		Version: version.String(),
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		agent.NewCommand(),
		backfill.NewCommand(),
		token.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
