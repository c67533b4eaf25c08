// Package ironlogctl implements the ironlog command line companion.
package ironlogctl

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/2beens/ironlog/internal/ironlog/api"

	"github.com/spf13/cobra"
)

const defaultBackendURL = "http://localhost:5000"

type options struct {
	backendURL string
	cookie     string
	timeout    time.Duration
}

func (o *options) client() *api.Client {
	return api.NewClient(o.backendURL, &http.Client{Timeout: o.timeout}, nil)
}

func (o *options) context(cmd *cobra.Command) context.Context {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if o.cookie != "" {
		ctx = api.ContextWithCredentials(ctx, o.cookie)
	}
	return ctx
}

// NewRootCmd builds the command tree; output goes to cmd.OutOrStdout().
func NewRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:           "ironlogctl",
		Short:         "IronLog - workout log from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	backendURL := os.Getenv("IRONLOG_BACKEND_URL")
	if backendURL == "" {
		backendURL = defaultBackendURL
	}
	rootCmd.PersistentFlags().StringVarP(&opts.backendURL, "backend", "b", backendURL, "IronLog API address (env IRONLOG_BACKEND_URL)")
	rootCmd.PersistentFlags().StringVar(&opts.cookie, "cookie", os.Getenv("IRONLOG_COOKIE"), "cookie header forwarded to the API (env IRONLOG_COOKIE)")
	rootCmd.PersistentFlags().DurationVar(&opts.timeout, "timeout", 10*time.Second, "API request timeout")

	rootCmd.AddCommand(
		newPaceCmd(),
		newExercisesCmd(opts),
		newHistoryCmd(opts),
		newSessionCmd(opts),
		newBodyWeightCmd(opts),
		newForgeCmd(opts),
	)
	return rootCmd
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "✗", err)
		os.Exit(1)
	}
}
