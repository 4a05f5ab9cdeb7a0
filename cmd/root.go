// ABOUTME: Root command for the wayfarer CLI
// ABOUTME: Handles global flags, configuration, and session construction

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/wayfarerhq/wayfarer-cli/internal/api"
	"github.com/wayfarerhq/wayfarer-cli/internal/config"
	"github.com/wayfarerhq/wayfarer-cli/internal/credstore"
	"github.com/wayfarerhq/wayfarer-cli/internal/session"
)

var (
	apiURL     string
	jsonOutput bool
	cfg        *config.Config
)

const defaultAPIURL = "http://localhost:8000"

var version = "0.1.0"

// rootCmd is the base command
var rootCmd = &cobra.Command{
	Use:   "wayfarer",
	Short: "CLI for the Wayfarer travel planner",
	Long: `wayfarer is a command-line interface for the Wayfarer travel planner.

Sign in once, then manage trips, build itineraries, and get destination
suggestions from scripts or an interactive terminal.

Environment Variables:
  WAYFARER_API_URL          Backend API URL (default: http://localhost:8000)
  WAYFARER_TIMEOUT_SECONDS  Per-request timeout in seconds (default: 30)
  WAYFARER_ALL_PROXY        SSH+SOCKS5 proxy for reaching the backend
  WAYFARER_OAUTH_TOKEN      Pre-acquired identity token for --provider logins`,
	Version: version,
}

// Execute runs the root command with the loaded configuration
func Execute(c *config.Config) error {
	cfg = c
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "Backend API URL (overrides WAYFARER_API_URL)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output JSON instead of human-readable text")
}

// GetAPIURL returns the API URL from flag, config, env, or default (in priority order)
func GetAPIURL() string {
	if apiURL != "" {
		return apiURL
	}
	if cfg != nil && cfg.APIURL != "" {
		return cfg.APIURL
	}
	if envURL := os.Getenv("WAYFARER_API_URL"); envURL != "" {
		return envURL
	}
	return defaultAPIURL
}

// IsJSONOutput returns whether JSON output is requested
func IsJSONOutput() bool {
	return jsonOutput
}

// newClient builds an API client honoring the configured timeout.
func newClient() *api.Client {
	c := api.New(GetAPIURL())
	if cfg != nil && cfg.TimeoutSeconds > 0 {
		c.SetTimeout(time.Duration(cfg.TimeoutSeconds) * time.Second)
	}
	return c
}

// newSession builds an API client and a session manager over the durable
// credential store. Commands that call authenticated endpoints share the
// client between the manager and their own requests.
func newSession() (*api.Client, *session.Manager) {
	c := newClient()
	return c, session.NewManager(c, credstore.NewFileStore(credstore.DefaultConfigDir()))
}

// restoreSession builds a session and restores any remembered credentials.
func restoreSession(ctx context.Context) (*api.Client, *session.Manager) {
	c, mgr := newSession()
	mgr.InitializeAuth(ctx)
	return c, mgr
}

// requireSession restores the remembered session for commands that need
// authentication. Reports false after printing guidance when none exists.
func requireSession(ctx context.Context, w io.Writer) (*api.Client, *session.Manager, bool) {
	c, mgr := restoreSession(ctx)
	if mgr.AccessToken() == "" {
		fmt.Fprintln(w, "Not signed in. Run 'wayfarer login' first.")
		return nil, nil, false
	}
	return c, mgr, true
}

// exitCodeFor maps an error to the CLI exit code contract:
// 0 success, 1 authentication required or rejected, 2 everything else.
func exitCodeFor(err error) int {
	if err == nil {
		return 0
	}
	if api.IsAuthFailure(err) {
		return 1
	}
	var authErr *session.AuthError
	if errors.As(err, &authErr) && authErr.Err == nil {
		return 1
	}
	return 2
}
