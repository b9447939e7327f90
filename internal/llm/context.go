package llm

import "context"

// Purpose labels for journal entries, one per generation kind the coach makes.
const (
	PurposePlanCreate  = "plan-create"
	PurposePlanRevise  = "plan-revise"
	PurposeQuiz        = "quiz-generate"
	PurposeExam        = "exam-generate"
	PurposeFlashcards  = "flashcards-generate"
	PurposeRemediation = "remediation-generate"
	PurposeGrading     = "grading-evaluate"
)

type contextKey string

const purposeKey contextKey = "llm_purpose"

// WithPurpose attaches a purpose label to the context for journaling.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey, purpose)
}

// PurposeFrom extracts the purpose label from the context.
func PurposeFrom(ctx context.Context) string {
	if v, ok := ctx.Value(purposeKey).(string); ok {
		return v
	}
	return "unknown"
}
