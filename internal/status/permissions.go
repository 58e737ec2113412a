package status

import "github.com/gabevillegas628/dsap-backend/internal/logger"

// editable and readOnly are intentionally not complements of each other over
// the full status set: ReviewedCorrect is editable and also feedback-worthy,
// and is in neither the read-only set nor excluded from feedback. Callers
// must consult both predicates rather than assume !CanEdit == IsReadOnly.
var editable = map[Status]bool{
	"":               true,
	Unassigned:       true,
	Available:        true,
	BeingWorkedOn:    true,
	NeedsReanalysis:  true,
	NeedsCorrections: true,
	ReviewedCorrect:  true,
}

var readOnly = map[Status]bool{
	CompletedWaitingReview: true,
	CorrectedWaitingReview: true,
	ReviewedByTeacher:      true,
	ToBeSubmittedNCBI:      true,
	SubmittedToNCBI:        true,
	Unreadable:             true,
}

var feedbackWorthy = map[Status]bool{
	NeedsReanalysis:  true,
	NeedsCorrections: true,
	ReviewedCorrect:  true,
}

// Policy derives edit permissions from a clone's status. An unrecognized
// status is logged once per check and falls through to "not editable, not
// read-only, no feedback" rather than failing.
type Policy struct {
	log *logger.Logger
}

func NewPolicy(log *logger.Logger) *Policy {
	return &Policy{log: log.With("component", "StatusPolicy")}
}

// CanEdit reports whether a student may still mutate answers under s.
func (p *Policy) CanEdit(s Status) bool {
	p.warnIfUnknown(s)
	return editable[s]
}

// IsReadOnly reports whether the analysis form should be locked under s.
func (p *Policy) IsReadOnly(s Status) bool {
	return readOnly[s]
}

// ShowsFeedback reports whether instructor feedback banners apply under s.
func (p *Policy) ShowsFeedback(s Status) bool {
	return feedbackWorthy[s]
}

func (p *Policy) warnIfUnknown(s Status) {
	if s == "" || IsKnown(s) {
		return
	}
	p.log.Warn("Unrecognized clone status", "status", string(s))
}
