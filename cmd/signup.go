// ABOUTME: Signup command for the wayfarer CLI
// ABOUTME: Registers a new account with optional travel preferences

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

	"github.com/wayfarerhq/wayfarer-cli/internal/models"
)

var (
	signupName     string
	signupEmail    string
	signupPassword string
	signupStyle    string
	signupBudget   string
	signupInfo     string
	signupRemember bool
)

var travelStyleOptions = []huh.Option[string]{
	huh.NewOption("Adventure", "adventure"),
	huh.NewOption("Culture", "culture"),
	huh.NewOption("Relaxation", "relaxation"),
	huh.NewOption("Mixed", "mixed"),
	huh.NewOption("Skip", ""),
}

var budgetRangeOptions = []huh.Option[string]{
	huh.NewOption("Budget", "budget"),
	huh.NewOption("Moderate", "moderate"),
	huh.NewOption("Luxury", "luxury"),
	huh.NewOption("Skip", ""),
}

var signupCmd = &cobra.Command{
	Use:   "signup",
	Short: "Create a Wayfarer account",
	Long: `Create a new account and sign in with it.

Missing fields are prompted for interactively. Travel style and budget range
are optional and feed destination suggestions.

Exit codes:
  0 - Account created and signed in
  2 - Error (connectivity, invalid input, email already registered)`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runSignup(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(signupCmd)
	signupCmd.Flags().StringVar(&signupName, "name", "", "Display name (prompts when omitted)")
	signupCmd.Flags().StringVar(&signupEmail, "email", "", "Account email (prompts when omitted)")
	signupCmd.Flags().StringVar(&signupPassword, "password", "", "Account password (prompts when omitted)")
	signupCmd.Flags().StringVar(&signupStyle, "travel-style", "", "Preferred travel style (adventure, culture, relaxation, mixed)")
	signupCmd.Flags().StringVar(&signupBudget, "budget", "", "Typical budget range (budget, moderate, luxury)")
	signupCmd.Flags().StringVar(&signupInfo, "notes", "", "Anything else the planner should know")
	signupCmd.Flags().BoolVar(&signupRemember, "remember", true, "Persist the session for future commands")
}

// runSignup executes the signup flow and returns exit code
func runSignup(ctx context.Context, w io.Writer) int {
	params := &models.SignupParams{
		Name:           signupName,
		Email:          signupEmail,
		Password:       signupPassword,
		TravelStyle:    signupStyle,
		BudgetRange:    signupBudget,
		AdditionalInfo: signupInfo,
	}

	if params.Name == "" || params.Email == "" || params.Password == "" {
		if err := promptSignup(params); err != nil {
			fmt.Fprintf(w, "Error: %v\n", err)
			return 2
		}
	}

	_, mgr := newSession()
	user, err := mgr.Signup(ctx, params, signupRemember)
	if err != nil {
		fmt.Fprintf(w, "Signup failed: %v\n", err)
		return exitCodeFor(err)
	}

	fmt.Fprintf(w, "Welcome aboard, %s! Signed in as %s\n", user.Name, user.Email)
	return 0
}

// promptSignup fills in the missing signup fields interactively
func promptSignup(params *models.SignupParams) error {
	var fields []huh.Field
	if params.Name == "" {
		fields = append(fields, huh.NewInput().
			Title("Name").
			Validate(validateNotEmpty("name")).
			Value(&params.Name))
	}
	if params.Email == "" {
		fields = append(fields, huh.NewInput().
			Title("Email").
			Placeholder("you@example.com").
			Validate(validateNotEmpty("email")).
			Value(&params.Email))
	}
	if params.Password == "" {
		fields = append(fields, huh.NewInput().
			Title("Password").
			EchoMode(huh.EchoModePassword).
			Validate(validateNotEmpty("password")).
			Value(&params.Password))
	}
	if params.TravelStyle == "" {
		fields = append(fields, huh.NewSelect[string]().
			Title("Travel style").
			Description("Feeds destination suggestions").
			Options(travelStyleOptions...).
			Value(&params.TravelStyle))
	}
	if params.BudgetRange == "" {
		fields = append(fields, huh.NewSelect[string]().
			Title("Budget range").
			Options(budgetRangeOptions...).
			Value(&params.BudgetRange))
	}

	return huh.NewForm(huh.NewGroup(fields...)).Run()
}
