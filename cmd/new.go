package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/coach/internal/plan"
	"github.com/abhisek/coach/internal/store"
	"github.com/abhisek/coach/internal/tui"
)

var newCmd = &cobra.Command{
	Use:   "new <learning goal>",
	Short: "Create a learning plan for a new goal",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := buildApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		ctx := cmd.Context()
		force, _ := cmd.Flags().GetBool("force")
		existed := a.Project.Exists()
		if existed && !force {
			return fmt.Errorf("project already has a plan; use `coach revise` to change it or `coach new --force` to start over")
		}

		topic := strings.Join(args, " ")
		fmt.Println("Building your plan...")
		goal, err := a.Builder.Create(ctx, topic, "")
		if err != nil {
			return fmt.Errorf("build plan: %w", err)
		}
		if err := installPlan(ctx, a.Project, goal, existed); err != nil {
			return fmt.Errorf("save plan: %w", err)
		}

		fmt.Println()
		fmt.Println(tui.RenderPlan(goal))
		fmt.Println("Next: take the diagnostic quiz with `coach quiz`.")
		return nil
	},
}

// installPlan saves a freshly built goal. Replacing an existing plan wipes
// the whole project first: the old profile, pinned quizzes, and flashcard
// caches all refer to milestones that no longer exist, and a stale
// assessment history would skip the new plan's diagnostic baseline.
func installPlan(ctx context.Context, project *store.Project, goal *plan.LearningGoal, replace bool) error {
	if replace {
		if err := project.ClearAll(); err != nil {
			return err
		}
	}
	return project.SaveGoal(ctx, goal)
}

func init() {
	newCmd.Flags().Bool("force", false, "Replace an existing plan")
}
