package ntrition

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nitheesb/personal-calorie-tracker/internal/db"
)

var cacheExpiredOnly bool

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage cached Open Food Facts responses",
}

var cachePurgeCmd = &cobra.Command{
	Use:   "purge",
	Short: "Delete cached search and barcode results",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		sqldb, _, err := openDB(cfg)
		if err != nil {
			return err
		}
		defer sqldb.Close()

		n, err := db.NewCache(sqldb).Purge(commandContext(cmd), cacheExpiredOnly)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Removed %d cached response(s)\n", n)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(cacheCmd)
	cacheCmd.AddCommand(cachePurgeCmd)
	cachePurgeCmd.Flags().BoolVar(&cacheExpiredOnly, "expired", false, "Only delete entries past their TTL")
}
