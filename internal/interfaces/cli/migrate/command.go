package migrate

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"dialpool/internal/infrastructure/database"
	"dialpool/internal/infrastructure/migration"
	"dialpool/internal/interfaces/cli/clienv"
	sharedConfig "dialpool/internal/shared/config"
	"dialpool/internal/shared/logger"
)

var (
	flags clienv.Flags
	name  string
	steps int
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Manage database migrations including running migrations, checking status, and creating new migration files.`,
	}

	flags.Register(cmd)

	cmd.AddCommand(
		newUpCommand(),
		newDownCommand(),
		newStatusCommand(),
		newCreateCommand(),
	)

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Run all pending migrations",
		Long:  `Apply all pending migrations. SQLite databases are synced from the models instead of the SQL scripts.`,
		RunE:  runUp,
	}
}

func newDownCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "down",
		Short: "Rollback migrations",
		Long:  `Rollback a specified number of database migrations.`,
		RunE:  runDown,
	}

	cmd.Flags().IntVarP(&steps, "steps", "n", 1, "Number of migrations to rollback")

	return cmd
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		Long:  `Display the current migration version and status of the database.`,
		RunE:  runStatus,
	}
}

func newCreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new migration",
		Long:  `Create a new timestamped SQL migration script.`,
		RunE:  runCreate,
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Name of the migration (required)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func runUp(cmd *cobra.Command, args []string) error {
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

	env.Log.Infow("running up migrations", "environment", flags.Env, "driver", env.Config.Database.Driver)

	if err := migration.NewManager(env.Config.Database.Driver).Migrate(gdb); err != nil {
		return err
	}

	env.Log.Infow("migrations completed successfully")
	return nil
}

// gooseStrategy rejects the goose-only subcommands on sqlite, where the
// schema comes from the models.
func gooseStrategy(env *clienv.Env) (*migration.GooseStrategy, error) {
	if env.Config.Database.Driver == sharedConfig.DriverSQLite {
		return nil, fmt.Errorf("this subcommand needs the mysql driver; sqlite schemas are managed by migrate up")
	}

	scriptsPath, err := filepath.Abs(migration.DefaultScriptsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to get scripts path: %w", err)
	}
	return migration.NewGooseStrategy(scriptsPath, env.Config.Database.Driver), nil
}

func runDown(cmd *cobra.Command, args []string) error {
	env, err := clienv.Load(flags)
	if err != nil {
		return err
	}
	defer logger.Sync()

	strategy, err := gooseStrategy(env)
	if err != nil {
		return err
	}

	gdb, err := env.OpenDatabase()
	if err != nil {
		return err
	}
	defer database.Close()

	env.Log.Infow("running down migrations", "environment", flags.Env, "steps", steps)

	if err := strategy.MigrateDown(gdb, steps); err != nil {
		return fmt.Errorf("down migration failed: %w", err)
	}

	env.Log.Infow("down migration completed successfully")
	return nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	env, err := clienv.Load(flags)
	if err != nil {
		return err
	}
	defer logger.Sync()

	strategy, err := gooseStrategy(env)
	if err != nil {
		return err
	}

	gdb, err := env.OpenDatabase()
	if err != nil {
		return err
	}
	defer database.Close()

	version, err := strategy.GetVersion(gdb)
	if err != nil {
		return fmt.Errorf("failed to get migration version: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "\nMigration Status:\n")
	fmt.Fprintf(out, "  Environment:     %s\n", flags.Env)
	fmt.Fprintf(out, "  Current Version: %d\n", version)

	if err := strategy.Status(gdb); err != nil {
		return fmt.Errorf("failed to get detailed status: %w", err)
	}
	return nil
}

func runCreate(cmd *cobra.Command, args []string) error {
	env, err := clienv.Load(flags)
	if err != nil {
		return err
	}
	defer logger.Sync()

	strategy, err := gooseStrategy(env)
	if err != nil {
		return err
	}

	if err := strategy.Create(name); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Migration '%s' created\n", name)
	return nil
}
