package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/coach/internal/progress"
	"github.com/abhisek/coach/internal/tui"
)

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Take the diagnostic quiz to set your baseline",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := buildApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		ctx := cmd.Context()
		fmt.Println("Preparing your diagnostic quiz...")
		questions, err := a.Engine.StartDiagnostic(ctx, a.Project)
		if err != nil {
			if errors.Is(err, progress.ErrNotInitialized) {
				return fmt.Errorf("no plan yet; create one with `coach new <goal>`")
			}
			return err
		}

		answers, err := tui.RunQuiz("Diagnostic Quiz", questions)
		if err != nil {
			if errors.Is(err, tui.ErrAborted) {
				fmt.Println("Quiz abandoned. Run `coach quiz` to start over with a fresh set.")
				return nil
			}
			return err
		}

		fmt.Println("Grading...")
		result, err := a.Engine.SubmitDiagnostic(ctx, a.Project, answers)
		if err != nil {
			return fmt.Errorf("grade quiz: %w", err)
		}

		fmt.Println()
		fmt.Println(tui.RenderResult(result, 0))
		fmt.Println("Baseline recorded. Start studying with `coach study`.")
		return nil
	},
}
