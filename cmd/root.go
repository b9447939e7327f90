package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/coach/internal/app"
)

var rootCmd = &cobra.Command{
	Use:           "coach",
	Short:         "AI learning coach",
	Long:          "Coach — turns any learning goal into a milestone plan with AI-generated quizzes, exams, and flashcard decks.",
	SilenceUsage:  true,
	SilenceErrors: false,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("data", "", "Data directory (overrides COACH_DATA)")
	rootCmd.PersistentFlags().StringP("user", "u", "", "User id (overrides COACH_USER)")
	rootCmd.PersistentFlags().StringP("project", "p", "", "Project name (overrides COACH_PROJECT)")

	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(reviseCmd)
	rootCmd.AddCommand(quizCmd)
	rootCmd.AddCommand(studyCmd)
	rootCmd.AddCommand(examCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(projectsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveConfig layers command flags over the COACH_* environment.
func resolveConfig(cmd *cobra.Command) (app.Config, error) {
	cfg, err := app.ConfigFromEnv()
	if err != nil {
		return app.Config{}, err
	}
	if v, _ := cmd.Flags().GetString("data"); v != "" {
		cfg.DataDir = v
	}
	if v, _ := cmd.Flags().GetString("user"); v != "" {
		cfg.UserID = v
	}
	if v, _ := cmd.Flags().GetString("project"); v != "" {
		cfg.Project = v
	}
	return cfg, nil
}

// buildApp assembles the application for a command invocation.
func buildApp(cmd *cobra.Command) (*app.App, error) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return nil, err
	}
	a, err := app.New(cmd.Context(), cfg)
	if err != nil {
		return nil, fmt.Errorf("initialize coach: %w", err)
	}
	return a, nil
}
