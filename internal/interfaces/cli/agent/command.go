package agent

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"dialpool/internal/application/agent/usecases"
	"dialpool/internal/infrastructure/database"
	"dialpool/internal/interfaces/cli/clienv"
	httpRouter "dialpool/internal/interfaces/http"
	"dialpool/internal/shared/logger"
)

var (
	flags       clienv.Flags
	username    string
	displayName string
	password    string
	dailyQuota  int
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "agent",
		Short: "Manage call-center agents",
	}

	flags.Register(cmd)
	cmd.AddCommand(newCreateCommand())

	return cmd
}

func newCreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an agent account",
		Long:  `Create an agent that can log in and receive records. The password is prompted for when --password is omitted.`,
		RunE:  runCreate,
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "Login name (required)")
	cmd.Flags().StringVarP(&displayName, "display-name", "d", "", "Name shown to admins (defaults to the username)")
	cmd.Flags().StringVarP(&password, "password", "p", "", "Password; prompted when empty")
	cmd.Flags().IntVarP(&dailyQuota, "quota", "q", 0, "Daily quota (0 uses allocation.default_daily_quota)")
	_ = cmd.MarkFlagRequired("username")

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	env, err := clienv.Load(flags)
	if err != nil {
		return err
	}
	defer logger.Sync()

	if password == "" {
		password, err = readPassword(cmd.InOrStdin(), cmd.ErrOrStderr())
		if err != nil {
			return err
		}
	}
	if displayName == "" {
		displayName = username
	}

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

	result, err := container.UseCases().CreateAgent.Execute(cmd.Context(), usecases.CreateAgentCommand{
		Username:    username,
		DisplayName: displayName,
		Password:    password,
		DailyQuota:  dailyQuota,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Agent %q created with id %d (daily quota %d)\n",
		result.Username, result.ID, result.DailyQuota)
	return nil
}

// readPassword reads without echo from a terminal, or a single line from
// piped input.
func readPassword(in io.Reader, prompt io.Writer) (string, error) {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(prompt, "Password: ")
		raw, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(prompt)
		if err != nil {
			return "", fmt.Errorf("failed to read password: %w", err)
		}
		return string(raw), nil
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
