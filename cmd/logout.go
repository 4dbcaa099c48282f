package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/learnpal/internal/credentials"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Forget the saved sign-in credential",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := credentials.DefaultPath()
		if err != nil {
			return fmt.Errorf("resolve credential path: %w", err)
		}
		if err := credentials.NewFileStore(path).Clear(); err != nil {
			return fmt.Errorf("clear credential: %w", err)
		}
		fmt.Println("Signed out. The next launch will ask for your email and password.")
		return nil
	},
}
