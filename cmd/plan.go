package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/coach/internal/tui"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Show the current learning plan",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := buildApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		goal, err := a.Project.LoadGoal(cmd.Context())
		if err != nil {
			return err
		}
		if goal == nil {
			return fmt.Errorf("no plan yet; create one with `coach new <goal>`")
		}
		fmt.Println(tui.RenderPlan(goal))
		return nil
	},
}

var reviseCmd = &cobra.Command{
	Use:   "revise <feedback>",
	Short: "Revise the plan based on your feedback",
	Args:  cobra.MinimumNArgs(1),
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
			return fmt.Errorf("no plan to revise; create one with `coach new <goal>`")
		}

		fmt.Println("Revising your plan...")
		revised, err := a.Builder.Revise(ctx, goal, strings.Join(args, " "))
		if err != nil {
			return fmt.Errorf("revise plan: %w", err)
		}
		if err := a.Project.SaveGoal(ctx, revised); err != nil {
			return fmt.Errorf("save plan: %w", err)
		}
		fmt.Println()
		fmt.Println(tui.RenderPlan(revised))
		return nil
	},
}
