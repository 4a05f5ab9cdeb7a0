// ABOUTME: Token command for the wayfarer CLI
// ABOUTME: Prints or copies the current access token for scripting

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
)

var tokenCopy bool

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Print the current access token",
	Long: `Print the access token of the remembered session to stdout.

Useful for scripting against the backend directly:
  curl -H "Authorization: Bearer $(wayfarer token)" ...

Exit codes:
  0 - Token printed or copied
  1 - Not signed in
  2 - Clipboard error`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runToken(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(tokenCmd)
	tokenCmd.Flags().BoolVar(&tokenCopy, "copy", false, "Copy the token to the clipboard instead of printing it")
}

// runToken prints or copies the access token and returns exit code
func runToken(ctx context.Context, w io.Writer) int {
	_, mgr := restoreSession(ctx)

	token := mgr.AccessToken()
	if token == "" {
		fmt.Fprintln(w, "Not signed in. Run 'wayfarer login' first.")
		return 1
	}

	if tokenCopy {
		if err := clipboard.WriteAll(token); err != nil {
			fmt.Fprintf(w, "Error: failed to copy to clipboard: %v\n", err)
			return 2
		}
		fmt.Fprintln(w, "Access token copied to clipboard.")
		return 0
	}

	fmt.Fprintln(w, token)
	return 0
}
