// ABOUTME: Whoami command for the wayfarer CLI
// ABOUTME: Shows the signed-in account and its travel preferences

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/wayfarerhq/wayfarer-cli/internal/models"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in account",
	Long: `Display the account the current session belongs to.

Exit codes:
  0 - Signed in
  1 - Not signed in`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runWhoami(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}

// runWhoami resolves the current user and returns exit code
func runWhoami(ctx context.Context, w io.Writer) int {
	_, mgr := newSession()

	user := mgr.InitializeAuth(ctx)
	if user == nil {
		fmt.Fprintln(w, "Not signed in. Run 'wayfarer login' first.")
		return 1
	}

	if IsJSONOutput() {
		fmt.Fprintln(w, formatWhoamiJSON(user))
	} else {
		fmt.Fprintln(w, formatWhoamiHuman(user))
	}
	return 0
}

// formatWhoamiHuman formats the account for human readability
func formatWhoamiHuman(user *models.User) string {
	out := fmt.Sprintf(`Name:   %s
Email:  %s
ID:     %d`, user.Name, user.Email, user.ID)

	if user.TravelStyle != "" {
		out += fmt.Sprintf("\nStyle:  %s", user.TravelStyle)
	}
	if user.BudgetRange != "" {
		out += fmt.Sprintf("\nBudget: %s", user.BudgetRange)
	}
	return out
}

// formatWhoamiJSON formats the account as JSON
func formatWhoamiJSON(user *models.User) string {
	data, _ := json.MarshalIndent(user, "", "  ")
	return string(data)
}
