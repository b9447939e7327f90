package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/coach/internal/progress"
	"github.com/abhisek/coach/internal/tui"
)

var studyCmd = &cobra.Command{
	Use:   "study",
	Short: "Generate study materials for the current milestone",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := buildApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		ctx := cmd.Context()
		st, err := a.Engine.State(ctx, a.Project)
		if err != nil {
			if errors.Is(err, progress.ErrNotInitialized) {
				return fmt.Errorf("no plan yet; create one with `coach new <goal>`")
			}
			return err
		}
		switch st.Phase {
		case progress.PhaseNeedsBaseline:
			return fmt.Errorf("take the diagnostic quiz first: `coach quiz`")
		case progress.PhaseAllComplete:
			fmt.Println("All milestones complete. Nothing left to study!")
			return nil
		}

		fmt.Printf("Milestone: %s\n", st.Active.Title)
		fmt.Println("Generating flashcards...")
		deckPath, cards, err := a.Engine.Materialize(ctx, a.Project)
		if err != nil {
			return fmt.Errorf("generate materials: %w", err)
		}

		fmt.Println()
		fmt.Println(tui.RenderDeck(deckPath, cards))
		fmt.Println("When you feel ready, run `coach exam`.")
		return nil
	},
}
