package status

// Status is the single enumerated field describing a clone's position in the
// review pipeline. It is stored as a plain string column; an empty string (or
// a missing record) is treated as "no status yet".
type Status string

const (
	Unassigned             Status = "unassigned"
	Available              Status = "available"
	BeingWorkedOn          Status = "being_worked_on"
	CompletedWaitingReview Status = "completed_waiting_review"
	CorrectedWaitingReview Status = "corrected_waiting_review"
	NeedsReanalysis        Status = "needs_reanalysis"
	NeedsCorrections       Status = "needs_corrections"
	ReviewedByTeacher      Status = "reviewed_by_teacher"
	ReviewedCorrect        Status = "reviewed_correct"
	ToBeSubmittedNCBI      Status = "to_be_submitted_ncbi"
	SubmittedToNCBI        Status = "submitted_to_ncbi"
	Unreadable             Status = "unreadable"
)

// All lists every member of the closed status set, in pipeline order.
var All = []Status{
	Unassigned,
	Available,
	BeingWorkedOn,
	CompletedWaitingReview,
	CorrectedWaitingReview,
	NeedsReanalysis,
	NeedsCorrections,
	ReviewedByTeacher,
	ReviewedCorrect,
	ToBeSubmittedNCBI,
	SubmittedToNCBI,
	Unreadable,
}

var known = func() map[Status]bool {
	m := make(map[Status]bool, len(All))
	for _, s := range All {
		m[s] = true
	}
	return m
}()

// IsKnown reports whether s is a member of the closed status set. The empty
// string is not a member; callers that accept "no status yet" check for it
// explicitly.
func IsKnown(s Status) bool {
	return known[s]
}
