// ABOUTME: Status command for the wayfarer CLI
// ABOUTME: Checks backend health, latency, and the session state

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show backend health and session state",
	Long: `Check that the backend is reachable and report whether a remembered
session is active.

Exit codes:
  0 - Backend healthy
  2 - Backend unreachable or unhealthy`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runStatus(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

// statusReport is the status command's output shape
type statusReport struct {
	Backend   string `json:"backend"`
	Status    string `json:"status"`
	Version   string `json:"version,omitempty"`
	LatencyMS int64  `json:"latency_ms"`
	Account   string `json:"account,omitempty"`
}

// runStatus checks backend health and returns exit code
func runStatus(ctx context.Context, w io.Writer) int {
	c, mgr := newSession()

	start := time.Now()
	health, err := c.Health(ctx)
	latency := time.Since(start)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	report := statusReport{
		Backend:   GetAPIURL(),
		Status:    health.Status,
		Version:   health.Version,
		LatencyMS: latency.Milliseconds(),
	}
	if user := mgr.InitializeAuth(ctx); user != nil {
		report.Account = user.Email
	}

	if IsJSONOutput() {
		fmt.Fprintln(w, formatStatusJSON(report))
	} else {
		fmt.Fprintln(w, formatStatusHuman(report))
	}

	if health.Status != "healthy" {
		return 2
	}
	return 0
}

// formatStatusHuman formats the status report for human readability
func formatStatusHuman(report statusReport) string {
	out := fmt.Sprintf(`Backend:  %s
Status:   %s
Latency:  %dms`, report.Backend, report.Status, report.LatencyMS)

	if report.Version != "" {
		out += fmt.Sprintf("\nVersion:  %s", report.Version)
	}
	if report.Account != "" {
		out += fmt.Sprintf("\nAccount:  %s", report.Account)
	} else {
		out += "\nAccount:  not signed in"
	}
	return out
}

// formatStatusJSON formats the status report as JSON
func formatStatusJSON(report statusReport) string {
	data, _ := json.MarshalIndent(report, "", "  ")
	return string(data)
}
