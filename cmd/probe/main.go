// Command probe checks that the intake backend is up before the API is
// started against it.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/xyz-asif/findme/internal/config"
	"github.com/xyz-asif/findme/internal/pkg/backend"
	"github.com/xyz-asif/findme/internal/pkg/logger"
)

var (
	baseURL string
	timeout time.Duration
)

var rootCmd = &cobra.Command{
	Use:   "probe",
	Short: "Check the intake backend the API submits to",
	Long: `Ping the intake backend configured by API_BASE_URL (or --base-url)
and print the endpoints the API will use.`,
	SilenceUsage: true,
	RunE:         runProbe,
}

func init() {
	rootCmd.Flags().StringVar(&baseURL, "base-url", "", "backend base URL (defaults to API_BASE_URL)")
	rootCmd.Flags().DurationVar(&timeout, "timeout", 10*time.Second, "how long to wait for the backend")
}

func runProbe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Invalid configuration: %v", err)
	}
	if baseURL != "" {
		cfg.APIBaseURL = strings.TrimRight(baseURL, "/")
	}
	endpoints := cfg.Endpoints()

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	fmt.Printf("Testing intake backend at %s...\n", cfg.APIBaseURL)
	msg, err := backend.NewClient(cfg.APIBaseURL, nil).Ping(ctx)
	if err != nil {
		return fmt.Errorf("%s", backend.Classify(err, cfg.APIBaseURL).Message)
	}

	fmt.Println("✅ Backend says:", msg)
	fmt.Println(strings.Repeat("─", 50))
	fmt.Printf("   %-20s %s\n", "upload endpoint:", endpoints.Upload)
	fmt.Printf("   %-20s %s\n", "counselor endpoint:", endpoints.Counselor)
	fmt.Printf("   %-20s %s\n", "report transport:", cfg.ReportTransport)
	return nil
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "❌", err)
		os.Exit(1)
	}
}
