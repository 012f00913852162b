package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/barhopapp/barhop/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and initialize configuration",
	Long: `Inspect and initialize the barhop configuration.

Configuration is resolved from built-in defaults, then ~/.barhop/config.yaml,
then BARHOP_* environment variables, each layer overriding the last.

Examples:
  barhop config show
  barhop config init`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}

		fmt.Printf("api_base_url:     %s\n", a.cfg.APIBaseURL)
		fmt.Printf("request_timeout:  %s\n", a.cfg.RequestTimeout.Std())
		fmt.Printf("credentials_path: %s\n", a.cfg.CredentialsPath)
		fmt.Printf("log_level:        %s\n", a.cfg.LogLevel)
		fmt.Printf("log_format:       %s\n", a.cfg.LogFormat)
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with the default settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := config.Dir()
		if err != nil {
			return err
		}

		path := filepath.Join(dir, "config.yaml")
		if _, err := os.Stat(path); err == nil {
			force, _ := cmd.Flags().GetBool("force")
			if !force {
				return fmt.Errorf("%s already exists, use --force to overwrite", path)
			}
		}

		if err := config.Default().Write(path); err != nil {
			return err
		}

		fmt.Printf("Wrote %s\n", path)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)

	configInitCmd.Flags().Bool("force", false, "Overwrite an existing config file")

	rootCmd.AddCommand(configCmd)
}
