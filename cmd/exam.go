package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/coach/internal/progress"
	"github.com/abhisek/coach/internal/tui"
)

var examCmd = &cobra.Command{
	Use:   "exam",
	Short: "Take the exam for the current milestone",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := buildApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		ctx := cmd.Context()
		fmt.Println("Preparing your exam...")
		questions, milestone, err := a.Engine.StartExam(ctx, a.Project)
		if err != nil {
			switch {
			case errors.Is(err, progress.ErrNotInitialized):
				return fmt.Errorf("no plan yet; create one with `coach new <goal>`")
			case errors.Is(err, progress.ErrNoActiveMilestone):
				fmt.Println("All milestones complete. Nothing left to examine!")
				return nil
			}
			return err
		}

		answers, err := tui.RunQuiz("Exam: "+milestone.Title, questions)
		if err != nil {
			if errors.Is(err, tui.ErrAborted) {
				fmt.Println("Exam abandoned. Run `coach exam` to start a fresh attempt.")
				return nil
			}
			return err
		}

		fmt.Println("Grading...")
		outcome, err := a.Engine.SubmitExam(ctx, a.Project, answers)
		if err != nil {
			return fmt.Errorf("grade exam: %w", err)
		}

		threshold := a.Engine.PassThreshold()
		fmt.Println()
		fmt.Println(tui.RenderResult(outcome.Result, threshold))

		switch {
		case outcome.AllComplete:
			fmt.Println("That was the final milestone. Goal achieved — congratulations!")
		case outcome.Passed:
			fmt.Printf("Milestone %q complete. Run `coach study` for the next one.\n", outcome.Milestone.Title)
		default:
			fmt.Println("Not this time. Generating a remediation deck for the concepts you missed...")
			deckPath, cards, err := a.Engine.Remediate(ctx, a.Project)
			if err != nil {
				return fmt.Errorf("generate remediation: %w", err)
			}
			if len(cards) > 0 {
				fmt.Println()
				fmt.Println(tui.RenderDeck(deckPath, cards))
			}
			fmt.Println("Review the material, then retake with `coach exam`.")
		}
		return nil
	},
}
