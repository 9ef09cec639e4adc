package backfill

import (
	"fmt"

	"github.com/spf13/cobra"

	"dialpool/internal/application/enrichment/usecases"
	"dialpool/internal/infrastructure/database"
	"dialpool/internal/interfaces/cli/clienv"
	httpRouter "dialpool/internal/interfaces/http"
	"dialpool/internal/shared/logger"
)

var (
	flags clienv.Flags
	all   bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "backfill [identifier...]",
		Short: "Re-run registry enrichment",
		Long: `Look stored records up in the company registry again and rewrite their
enrichment. With --all every record that was never enriched or failed is
processed; otherwise only the given identifiers.`,
		RunE: run,
	}

	flags.Register(cmd)
	cmd.Flags().BoolVar(&all, "all", false, "Process every record that needs enrichment")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if all == (len(args) > 0) {
		return fmt.Errorf("pass either --all or a list of identifiers")
	}

	env, err := clienv.Load(flags)
	if err != nil {
		return err
	}
	defer logger.Sync()

	gdb, err := env.OpenDatabase()
	if err != nil {
		return err
	}
	defer database.Close()

	container, err := httpRouter.NewContainer(env.Config, gdb, env.Log)
	if err != nil {
		return err
	}
	defer container.Shutdown()

	result, err := container.UseCases().Backfill.Execute(cmd.Context(), usecases.BackfillCommand{
		All:         all,
		Identifiers: args,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Backfill %s\n", result.RunID)
	fmt.Fprintf(out, "  Processed: %d\n", result.Processed)
	fmt.Fprintf(out, "  Successes: %d\n", result.Successes)
	fmt.Fprintf(out, "  Errors:    %d\n", result.Errors)
	if len(result.NotFound) > 0 {
		fmt.Fprintf(out, "  Not found: %v\n", result.NotFound)
	}
	for _, detail := range result.ErrorDetails {
		fmt.Fprintf(out, "  ! %s\n", detail)
	}
	return nil
}
