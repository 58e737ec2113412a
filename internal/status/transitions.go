package status

import "fmt"

// transitions is the static adjacency table over statuses. A source with no
// entry rejects every outgoing move; an empty source status (no status yet)
// may move anywhere.
var transitions = map[Status][]Status{
	Unassigned:             {BeingWorkedOn},
	Available:              {BeingWorkedOn},
	BeingWorkedOn:          {CompletedWaitingReview, CorrectedWaitingReview, Unassigned},
	CompletedWaitingReview: {ReviewedByTeacher, NeedsReanalysis, NeedsCorrections},
	CorrectedWaitingReview: {ReviewedByTeacher, NeedsReanalysis, NeedsCorrections},
	NeedsReanalysis:        {BeingWorkedOn, CorrectedWaitingReview},
	NeedsCorrections:       {BeingWorkedOn, CorrectedWaitingReview},
	ReviewedByTeacher:      {ToBeSubmittedNCBI, SubmittedToNCBI, Unreadable, NeedsReanalysis},
	ReviewedCorrect:        {CompletedWaitingReview, ToBeSubmittedNCBI},
	ToBeSubmittedNCBI:      {SubmittedToNCBI, Unreadable},
	SubmittedToNCBI:        {ToBeSubmittedNCBI},
	Unreadable:             {NeedsReanalysis},
}

// IsLegalTransition reports whether moving a clone from one status to another
// is allowed. Any destination is legal when from is empty, since the first
// assignment of a status is unconstrained.
func IsLegalTransition(from, to Status) bool {
	if from == "" {
		return true
	}
	for _, dest := range transitions[from] {
		if dest == to {
			return true
		}
	}
	return false
}

// LegalTransitions returns the allowed destinations for from, in table order.
// The result is a copy; mutating it does not affect the table.
func LegalTransitions(from Status) []Status {
	dests := transitions[from]
	out := make([]Status, len(dests))
	copy(out, dests)
	return out
}

// IllegalTransitionError identifies a rejected status change.
type IllegalTransitionError struct {
	From Status
	To   Status
}

func (e *IllegalTransitionError) Error() string {
	return fmt.Sprintf("illegal status transition from %q to %q", string(e.From), string(e.To))
}

// CheckTransition returns a typed error when the move is not in the table.
// Callers that persist status changes should invoke this before writing.
func CheckTransition(from, to Status) error {
	if IsLegalTransition(from, to) {
		return nil
	}
	return &IllegalTransitionError{From: from, To: to}
}
