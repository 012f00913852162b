package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "barhop",
	Short: "Discover bars, events, and reviews from your terminal",
	Long: `barhop is the terminal client for the barhop nightlife platform.

Running it with no arguments starts the interactive application. Subcommands
offer the same features in a scriptable form: browsing bars and events,
reading and writing reviews, and managing your own bars with a business
account.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runUI(cmd.Context())
	},
}

// ExecuteContext runs the root command with the given context
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.barhop/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}
