package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/pkritika/cortex/internal/gamification"
	"github.com/pkritika/cortex/internal/ui/components"
)

var statsCmd = &cobra.Command{
	Use:   "stats <userId>",
	Short: "Show points, streak and badges for a user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd, true)
		if err != nil {
			return err
		}
		defer a.Close()

		results, err := a.Store.ResultsForUser(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("load results: %w", err)
		}
		stats := gamification.Calculate(results, time.Now(), time.Local)
		fmt.Fprintln(cmd.OutOrStdout(), components.StatsCard(args[0], stats))
		return nil
	},
}
