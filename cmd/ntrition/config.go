package ntrition

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nitheesb/personal-calorie-tracker/internal/app"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect ntrition configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration as YAML",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if jsonOutput {
			return printJSON(cmd.OutOrStdout(), cfg)
		}
		out, err := cfg.YAML()
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), string(out))
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show where the config file and database live",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfgFile := configPath
		if cfgFile == "" {
			p, err := app.DefaultConfigPath()
			if err != nil {
				return err
			}
			cfgFile = p
		}
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		db, err := resolveDBPath(cfg)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "config: %s\ndatabase: %s\n", cfgFile, db)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd, configPathCmd)
}
