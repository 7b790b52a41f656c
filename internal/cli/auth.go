package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	authservice "github.com/dexsamir/portfolio/internal/auth/service"
	"github.com/dexsamir/portfolio/internal/forms"
	"github.com/dexsamir/portfolio/internal/session"
)

func (a *app) loginCmd() *cobra.Command {
	var email, password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and store the API token",
		RunE: func(cmd *cobra.Command, args []string) error {
			if password == "" {
				password = os.Getenv("PORTFOLIO_PASSWORD")
			}
			if password == "" {
				p, err := prompt(cmd.InOrStdin(), cmd.OutOrStdout(), "Password: ")
				if err != nil {
					return err
				}
				password = p
			}

			form := forms.LoginForm{Email: email, Password: password}
			if err := form.Validate(); err != nil {
				return err
			}

			token, err := authservice.NewAuthService(a.api, a.logger).Login(cmd.Context(), form.Email, form.Password)
			if err != nil {
				return err
			}
			if err := SaveToken(a.dataDir, token); err != nil {
				return err
			}
			a.cfg.BackendURL = a.api.BaseURL()
			if err := SaveConfig(a.dataDir, a.cfg); err != nil {
				return err
			}

			claims := session.ParseClaims(token)
			fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s\n", claims.Name)
			return nil
		},
	}
	cmd.Flags().StringVarP(&email, "email", "e", "", "admin email")
	cmd.Flags().StringVarP(&password, "password", "p", "", "admin password (defaults to $PORTFOLIO_PASSWORD or a prompt)")
	return cmd
}

func (a *app) logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored API token",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := ClearToken(a.dataDir); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
			return nil
		},
	}
}

func prompt(in io.Reader, out io.Writer, label string) (string, error) {
	fmt.Fprint(out, label)
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return strings.TrimSpace(line), nil
}
