// ABOUTME: Suggest command for the wayfarer CLI
// ABOUTME: Asks the planner for destination recommendations

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/wayfarerhq/wayfarer-cli/internal/models"
)

var (
	suggestDestination string
	suggestDays        int
	suggestBudget      string
)

var suggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Get destination suggestions",
	Long: `Ask the planner for destination suggestions around a region or theme.

Exit codes:
  0 - Suggestions printed
  1 - Not signed in or session rejected
  2 - Error (connectivity, invalid input)`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runSuggest(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(suggestCmd)
	suggestCmd.Flags().StringVar(&suggestDestination, "destination", "", "Region or theme to explore (required)")
	suggestCmd.Flags().IntVar(&suggestDays, "days", 7, "Trip length in days")
	suggestCmd.Flags().StringVar(&suggestBudget, "budget", "", "Budget range (budget, moderate, luxury)")
}

// runSuggest fetches recommendations and returns exit code
func runSuggest(ctx context.Context, w io.Writer) int {
	if suggestDestination == "" {
		fmt.Fprintln(w, "Error: --destination is required")
		return 2
	}
	if suggestDays <= 0 {
		fmt.Fprintln(w, "Error: --days must be positive")
		return 2
	}

	c, mgr, ok := requireSession(ctx, w)
	if !ok {
		return 1
	}

	req := &models.RecommendationRequest{
		Destination: suggestDestination,
		Days:        suggestDays,
		BudgetRange: suggestBudget,
	}

	var recs []models.Recommendation
	err := mgr.Do(ctx, func(ctx context.Context, token string) error {
		var err error
		recs, err = c.GetRecommendations(ctx, token, req)
		return err
	})
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return exitCodeFor(err)
	}

	if IsJSONOutput() {
		data, _ := json.MarshalIndent(recs, "", "  ")
		fmt.Fprintln(w, string(data))
	} else {
		fmt.Fprintln(w, formatSuggestionsHuman(recs))
	}
	return 0
}

// formatSuggestionsHuman formats recommendations for human readability
func formatSuggestionsHuman(recs []models.Recommendation) string {
	if len(recs) == 0 {
		return "No suggestions for that search. Try a broader destination."
	}

	var out []string
	for _, rec := range recs {
		entry := fmt.Sprintf("%s\n  %s", rec.Destination, rec.Summary)
		if rec.EstimatedCost > 0 {
			entry += fmt.Sprintf("\n  Estimated cost: $%.0f", rec.EstimatedCost)
		}
		if rec.BestSeason != "" {
			entry += fmt.Sprintf("\n  Best season: %s", rec.BestSeason)
		}
		out = append(out, entry)
	}
	return strings.Join(out, "\n\n")
}
