package cli

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/Anirach/ncd-health-plus/pkg/auth"
)

func newTokenCommand() *cobra.Command {
	var (
		subject  string
		roles    []string
		issuer   string
		audience []string
		ttl      time.Duration
	)
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint an HS256 API token signed with JWT_SECRET",
		Args:  cobra.NoArgs,
		// token needs no model
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		RunE: func(cmd *cobra.Command, _ []string) error {
			secret := os.Getenv("JWT_SECRET")
			if secret == "" {
				return errors.New("JWT_SECRET is not set")
			}
			gen, err := auth.NewJWTGenerator(secret, issuer, audience, ttl)
			if err != nil {
				return err
			}
			token, err := gen.GenerateToken(subject, roles)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), token)
			return err
		},
	}
	f := cmd.Flags()
	f.StringVar(&subject, "subject", "", "token subject")
	f.StringSliceVar(&roles, "roles", nil, "comma separated roles")
	f.StringVar(&issuer, "issuer", "ncd-health-plus", "token issuer")
	f.StringSliceVar(&audience, "audience", nil, "token audience")
	f.DurationVar(&ttl, "ttl", time.Hour, "token lifetime")
	_ = cmd.MarkFlagRequired("subject")
	return cmd
}
