package token

import (
	"fmt"

	"github.com/spf13/cobra"

	"dialpool/internal/infrastructure/auth"
	"dialpool/internal/interfaces/cli/clienv"
	"dialpool/internal/shared/authorization"
	"dialpool/internal/shared/logger"
)

var (
	flags   clienv.Flags
	admin   bool
	agentID uint
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue an access token",
		Long: `Sign an access token with the configured JWT secret. Admin tokens are
only issued here; there is no admin login endpoint.`,
		RunE: run,
	}

	flags.Register(cmd)
	cmd.Flags().BoolVar(&admin, "admin", false, "Issue an admin token")
	cmd.Flags().UintVar(&agentID, "agent", 0, "Issue a token for this agent id")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	principal, err := selectPrincipal(admin, agentID)
	if err != nil {
		return err
	}

	env, err := clienv.Load(flags)
	if err != nil {
		return err
	}
	defer logger.Sync()

	jwtCfg := env.Config.Auth.JWT
	token, err := auth.NewJWTService(jwtCfg.Secret, jwtCfg.AccessExpMinutes).Generate(principal)
	if err != nil {
		return err
	}

	env.Log.Infow("access token issued", "role", principal.Role().String(), "expires_in", token.ExpiresIn)
	fmt.Fprintln(cmd.OutOrStdout(), token.Token)
	return nil
}

func selectPrincipal(admin bool, agentID uint) (authorization.Principal, error) {
	switch {
	case admin && agentID != 0:
		return authorization.Principal{}, fmt.Errorf("--admin and --agent are mutually exclusive")
	case admin:
		return authorization.AdminPrincipal(), nil
	case agentID != 0:
		return authorization.AgentPrincipal(agentID), nil
	default:
		return authorization.Principal{}, fmt.Errorf("pass --admin or --agent <id>")
	}
}
