package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/learnpal/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent tutoring exchanges from the local event log",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open event log: %w", err)
		}
		defer st.Close()

		events, err := st.EventRepo()
		if err != nil {
			return fmt.Errorf("open event log: %w", err)
		}

		turns, err := events.RecentTurns(cmd.Context(), limit)
		if err != nil {
			return fmt.Errorf("load turns: %w", err)
		}
		if len(turns) == 0 {
			fmt.Println("No tutoring history yet.")
			return nil
		}

		for _, turn := range turns {
			fmt.Printf("%s  learner %d  %s",
				turn.Timestamp.Local().Format("2006-01-02 15:04"),
				turn.LearnerID,
				turn.Status,
			)
			if turn.LatencyMs > 0 {
				fmt.Printf("  %.1fs", float64(turn.LatencyMs)/1000)
			}
			fmt.Println()
			if turn.UserText != "" {
				fmt.Println("  >", oneLine(turn.UserText))
			}
			fmt.Println("  <", oneLine(turn.BotText))
			fmt.Println()
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().Int("limit", 20, "Maximum number of exchanges to show")
}

// oneLine flattens a reply for compact listing.
func oneLine(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	if len(s) > 100 {
		return s[:97] + "..."
	}
	return s
}
