// ABOUTME: Password recovery commands for the wayfarer CLI
// ABOUTME: Requests reset emails and completes resets with emailed tokens

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var (
	forgotEmail      string
	resetToken       string
	resetNewPassword string
)

var passwordCmd = &cobra.Command{
	Use:   "password",
	Short: "Recover access to your account",
}

var passwordForgotCmd = &cobra.Command{
	Use:   "forgot",
	Short: "Request a password reset email",
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runPasswordForgot(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

var passwordResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Set a new password with an emailed reset token",
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runPasswordReset(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(passwordCmd)
	passwordCmd.AddCommand(passwordForgotCmd)
	passwordCmd.AddCommand(passwordResetCmd)

	passwordForgotCmd.Flags().StringVar(&forgotEmail, "email", "", "Account email (prompts when omitted)")
	passwordResetCmd.Flags().StringVar(&resetToken, "token", "", "Reset token from the email (prompts when omitted)")
	passwordResetCmd.Flags().StringVar(&resetNewPassword, "new-password", "", "New password (prompts when omitted)")
}

// runPasswordForgot requests a reset email and returns exit code
func runPasswordForgot(ctx context.Context, w io.Writer) int {
	email := forgotEmail
	if email == "" {
		field := huh.NewInput().
			Title("Email").
			Placeholder("you@example.com").
			Validate(validateNotEmpty("email")).
			Value(&email)
		if err := huh.NewForm(huh.NewGroup(field)).Run(); err != nil {
			fmt.Fprintf(w, "Error: %v\n", err)
			return 2
		}
	}

	_, mgr := newSession()
	if err := mgr.ForgotPassword(ctx, email); err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return exitCodeFor(err)
	}

	fmt.Fprintf(w, "If %s has an account, a reset email is on its way.\n", email)
	return 0
}

// runPasswordReset completes a reset and returns exit code
func runPasswordReset(ctx context.Context, w io.Writer) int {
	token, newPassword := resetToken, resetNewPassword
	if token == "" || newPassword == "" {
		var fields []huh.Field
		if token == "" {
			fields = append(fields, huh.NewInput().
				Title("Reset token").
				Validate(validateNotEmpty("token")).
				Value(&token))
		}
		if newPassword == "" {
			fields = append(fields, huh.NewInput().
				Title("New password").
				EchoMode(huh.EchoModePassword).
				Validate(validateNotEmpty("password")).
				Value(&newPassword))
		}
		if err := huh.NewForm(huh.NewGroup(fields...)).Run(); err != nil {
			fmt.Fprintf(w, "Error: %v\n", err)
			return 2
		}
	}

	_, mgr := newSession()
	if err := mgr.ResetPassword(ctx, token, newPassword); err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return exitCodeFor(err)
	}

	fmt.Fprintln(w, "Password updated. Sign in with 'wayfarer login'.")
	return 0
}
