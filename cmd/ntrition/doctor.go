package ntrition

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/nitheesb/personal-calorie-tracker/internal/db"
)

var doctorFix bool

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Run data integrity checks",
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

		ctx := commandContext(cmd)
		report, err := db.RunDoctor(ctx, sqldb, time.Now(), doctorFix)
		if err != nil {
			return err
		}
		if jsonOutput {
			if err := printJSON(cmd.OutOrStdout(), report); err != nil {
				return err
			}
		} else {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Schema version: %d (latest %d)\n", report.SchemaVersion, report.LatestVersion)
			fmt.Fprintf(out, "Corrupt stored values: %d %s\n", len(report.CorruptKeys), strings.Join(report.CorruptKeys, ", "))
			fmt.Fprintf(out, "Expired cache rows: %d\n", report.ExpiredCacheRows)
			if doctorFix {
				fmt.Fprintf(out, "Removed values: %d | Purged cache rows: %d\n", report.RemovedKeys, report.PurgedCacheRows)
			}
		}
		if doctorFix {
			// Re-check after fixes so exit status reflects final state.
			report, err = db.RunDoctor(ctx, sqldb, time.Now(), false)
			if err != nil {
				return err
			}
		}
		if !report.Healthy() {
			return fmt.Errorf("doctor found integrity issues")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
	doctorCmd.Flags().BoolVar(&doctorFix, "fix", false, "Remove corrupt values and expired cache rows")
}
