// ABOUTME: Logout command for the wayfarer CLI
// ABOUTME: Ends the session locally and best-effort on the backend

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out of the Wayfarer backend",
	Long: `Sign out and forget the remembered session.

Local credentials are always cleared, even when the backend cannot be
reached.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runLogout(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}

// runLogout executes the logout and returns exit code
func runLogout(ctx context.Context, w io.Writer) int {
	_, mgr := restoreSession(ctx)

	hadSession := mgr.AccessToken() != ""
	mgr.Logout(ctx)

	if hadSession {
		fmt.Fprintln(w, "Signed out.")
	} else {
		fmt.Fprintln(w, "No active session.")
	}
	return 0
}
