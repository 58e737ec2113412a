package types

// AnalysisStep is one of the four fixed analysis phases. Steps always appear
// in StepOrder; a step's weight in overall progress does not depend on how
// many questions it carries.
type AnalysisStep string

const (
	StepCloneEditing       AnalysisStep = "clone_editing"
	StepBlast              AnalysisStep = "blast"
	StepAnalysisSubmission AnalysisStep = "analysis_submission"
	StepReview             AnalysisStep = "review"
)

var StepOrder = []AnalysisStep{
	StepCloneEditing,
	StepBlast,
	StepAnalysisSubmission,
	StepReview,
}
