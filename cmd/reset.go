package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/coach/internal/store"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all data for the current project",
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")
		if !force {
			return fmt.Errorf("this deletes the project's plan, profile, and decks; re-run with --force to confirm")
		}

		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}
		dataDir, err := cfg.ResolveDataDir()
		if err != nil {
			return err
		}
		st, err := store.Open(dataDir)
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.Project(cfg.UserID, cfg.Project).ClearAll(); err != nil {
			return err
		}
		fmt.Printf("Project %q reset.\n", cfg.Project)
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("force", false, "Confirm deletion")
}
