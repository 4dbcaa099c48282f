package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/learnpal/internal/api"
	"github.com/abhisek/learnpal/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "learnpal",
	Short: "AI tutoring companion for kids",
	Long:  "LearnPal is a terminal client for the LearnPal tutoring service. Guardians sign in, pick a learner, and the learner chats with a tutor that talks back.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("api", "", "Base URL of the tutoring service (overrides LEARNPAL_API env var)")
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite event log file (overrides LEARNPAL_DB env var)")
	rootCmd.Flags().Bool("mute", false, "Disable spoken tutor replies")

	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the event log path using --db flag (highest
// priority), then LEARNPAL_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// resolveAPIConfig returns the gateway config with the --api flag
// taking priority over the environment.
func resolveAPIConfig(cmd *cobra.Command) api.Config {
	cfg := api.FromEnv()
	if base, _ := cmd.Flags().GetString("api"); base != "" {
		cfg.BaseURL = base
	}
	return cfg
}
