// ABOUTME: Login command for the wayfarer CLI
// ABOUTME: Authenticates with email/password or an OAuth provider

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/wayfarerhq/wayfarer-cli/internal/oauth"
	"github.com/wayfarerhq/wayfarer-cli/internal/session"
)

var (
	loginEmail    string
	loginPassword string
	loginProvider string
	loginRemember bool
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in to the Wayfarer backend",
	Long: `Sign in with email and password, or through an OAuth provider.

Missing credentials are prompted for interactively. With --provider, the
identity token is read from WAYFARER_OAUTH_TOKEN.

Exit codes:
  0 - Signed in
  1 - Authentication rejected
  2 - Error (connectivity, invalid input)`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runLogin(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "Account email (prompts when omitted)")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "Account password (prompts when omitted)")
	loginCmd.Flags().StringVar(&loginProvider, "provider", "", "Sign in through an OAuth provider (google, apple)")
	loginCmd.Flags().BoolVar(&loginRemember, "remember", true, "Persist the session for future commands")
}

// runLogin executes the login flow and returns exit code
func runLogin(ctx context.Context, w io.Writer) int {
	_, mgr := newSession()

	if loginProvider != "" {
		return runProviderLogin(ctx, w, mgr)
	}

	email, password := loginEmail, loginPassword
	if email == "" || password == "" {
		var err error
		email, password, err = promptCredentials(email, password)
		if err != nil {
			fmt.Fprintf(w, "Error: %v\n", err)
			return 2
		}
	}

	user, err := mgr.Login(ctx, email, password, loginRemember)
	if err != nil {
		fmt.Fprintf(w, "Login failed: %v\n", err)
		return exitCodeFor(err)
	}

	fmt.Fprintf(w, "Signed in as %s <%s>\n", user.Name, user.Email)
	return 0
}

// runProviderLogin exchanges a provider identity token for a session
func runProviderLogin(ctx context.Context, w io.Writer, mgr *session.Manager) int {
	provider, err := oauth.DefaultRegistry().Lookup(loginProvider)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	identity := mgr.LoginWithProvider(ctx, tokenSource(), provider, loginRemember)
	if identity == nil {
		fmt.Fprintf(w, "Login with %s failed\n", provider)
		return 1
	}

	fmt.Fprintf(w, "Signed in via %s as %s <%s>\n", identity.Provider, identity.Name, identity.Email)
	return 0
}

// tokenSource picks where provider identity tokens come from
func tokenSource() oauth.TokenSource {
	if cfg != nil && cfg.OAuthIDToken != "" {
		return oauth.StaticTokenSource{Token: cfg.OAuthIDToken}
	}
	return oauth.EnvTokenSource{}
}

// promptCredentials asks for whichever of email and password is missing
func promptCredentials(email, password string) (string, string, error) {
	var fields []huh.Field
	if email == "" {
		fields = append(fields, huh.NewInput().
			Title("Email").
			Placeholder("you@example.com").
			Validate(validateNotEmpty("email")).
			Value(&email))
	}
	if password == "" {
		fields = append(fields, huh.NewInput().
			Title("Password").
			EchoMode(huh.EchoModePassword).
			Validate(validateNotEmpty("password")).
			Value(&password))
	}

	if err := huh.NewForm(huh.NewGroup(fields...)).Run(); err != nil {
		return "", "", err
	}
	return email, password, nil
}

// validateNotEmpty rejects blank form input
func validateNotEmpty(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}
