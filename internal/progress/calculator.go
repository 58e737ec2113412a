// Package progress computes per-group, per-step, and overall completion
// percentages for a clone analysis from the question definitions and the
// student's answer map.
package progress

import (
	"math"

	"github.com/gabevillegas628/dsap-backend/internal/types"
)

// AnswerMap holds in-memory answers keyed by question ID. Values mirror the
// persisted JSON blob: scalar strings or numbers for most question types, a
// {value1, value2} map for sequence ranges, and a flat map of indexed
// sub-fields for BLAST results.
type AnswerMap map[string]any

// Visible reports whether q applies given the current answers. A question
// with a show-if rule is hidden unless the gating question's answer equals
// the rule's answer exactly; no type coercion is performed, so a numeric
// answer never matches a string rule.
func Visible(q *types.AnalysisQuestion, answers AnswerMap) bool {
	rule := q.ShowIf()
	if rule == nil {
		return true
	}
	got, ok := answers[rule.QuestionID]
	if !ok {
		return false
	}
	s, ok := got.(string)
	return ok && s == rule.Answer
}

// Answered reports whether q carries an answer. Sequence ranges count when
// either endpoint is a non-empty string; every other type counts when the
// value is present and not the empty string.
func Answered(q *types.AnalysisQuestion, answers AnswerMap) bool {
	val, ok := answers[q.ID.String()]
	if !ok || val == nil {
		return false
	}
	if q.Type == types.QuestionTypeSequenceRange {
		pair, ok := val.(map[string]any)
		if !ok {
			return false
		}
		return nonEmptyString(pair["value1"]) || nonEmptyString(pair["value2"])
	}
	if s, ok := val.(string); ok {
		return s != ""
	}
	return true
}

func nonEmptyString(v any) bool {
	s, ok := v.(string)
	return ok && s != ""
}

// StepProgress returns the completion percentage for one step, 0 when the
// step has no qualifying questions.
func StepProgress(step types.AnalysisStep, questions []*types.AnalysisQuestion, answers AnswerMap) int {
	total, answered := tally(questions, answers, func(q *types.AnalysisQuestion) bool {
		return q.Step == step
	})
	if total == 0 {
		return 0
	}
	return percent(answered, total)
}

// GroupProgress returns the completion percentage for one group within a
// step. A group with zero qualifying questions is vacuously complete and
// returns 100, unlike StepProgress.
func GroupProgress(step types.AnalysisStep, group string, questions []*types.AnalysisQuestion, answers AnswerMap) int {
	total, answered := tally(questions, answers, func(q *types.AnalysisQuestion) bool {
		return q.Step == step && q.QuestionGroup == group
	})
	if total == 0 {
		return 100
	}
	return percent(answered, total)
}

// OverallProgress weights each of the four steps at exactly one quarter,
// regardless of question count. A step with no questions contributes 0 and
// drags the average down; that is the intended weighting, not a bug.
func OverallProgress(questions []*types.AnalysisQuestion, answers AnswerMap) int {
	var sum float64
	for _, step := range types.StepOrder {
		sum += float64(StepProgress(step, questions, answers)) * 0.25
	}
	return int(math.Round(sum))
}

func tally(questions []*types.AnalysisQuestion, answers AnswerMap, match func(*types.AnalysisQuestion) bool) (total, answered int) {
	for _, q := range questions {
		if !match(q) || q.IsDisplayOnly() || !Visible(q, answers) {
			continue
		}
		total++
		if Answered(q, answers) {
			answered++
		}
	}
	return total, answered
}

func percent(answered, total int) int {
	return int(math.Round(100 * float64(answered) / float64(total)))
}
