package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/coach/internal/progress"
	"github.com/abhisek/coach/internal/store"
	"github.com/abhisek/coach/internal/tui"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show progress against the current plan",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := buildApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		ctx := cmd.Context()
		goal, err := a.Project.LoadGoal(ctx)
		if err != nil {
			return err
		}
		if goal == nil {
			return fmt.Errorf("no plan yet; create one with `coach new <goal>`")
		}
		st, err := a.Engine.State(ctx, a.Project)
		if err != nil {
			if errors.Is(err, progress.ErrNotInitialized) {
				return fmt.Errorf("no plan yet; create one with `coach new <goal>`")
			}
			return err
		}

		fmt.Println(tui.RenderStatus(goal, st))

		profile, err := a.Project.LoadProfile(ctx)
		if err != nil {
			return err
		}
		if profile != nil {
			if latest := profile.LatestResult(); latest != nil {
				fmt.Printf("Last assessment: %.0f%% on %s\n",
					latest.Score*100, latest.Timestamp.Local().Format("2006-01-02"))
			}
			if profile.CurrentDeckPath != "" {
				fmt.Println("Current deck:", profile.CurrentDeckPath)
			}
		}
		return nil
	},
}

var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "List your projects",
	RunE: func(cmd *cobra.Command, args []string) error {
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

		names, err := st.ListProjects(cfg.UserID)
		if err != nil {
			return err
		}
		if len(names) == 0 {
			fmt.Println("No projects yet. Start one with `coach new <goal>`.")
			return nil
		}
		for _, name := range names {
			marker := " "
			if name == store.SanitizeID(cfg.Project) {
				marker = "*"
			}
			line := name
			if goal, err := st.Project(cfg.UserID, name).LoadGoal(cmd.Context()); err == nil && goal != nil {
				line = fmt.Sprintf("%-20s %s", name, truncate(goal.SmartGoal, 60))
			}
			fmt.Printf("%s %s\n", marker, line)
		}
		return nil
	},
}
