package status

import "fmt"

// Metadata is the static display record attached to each status. It never
// changes at runtime; every consumer reads from the same compiled-in table.
type Metadata struct {
	Title        string `json:"title"`
	Message      string `json:"message"`
	ShowRefresh  bool   `json:"show_refresh"`
	ShowFeedback bool   `json:"show_feedback"`
}

var metadata = map[Status]Metadata{
	Unassigned: {
		Title:   "Unassigned",
		Message: "This clone has not been assigned to a student yet.",
	},
	Available: {
		Title:   "Available",
		Message: "This clone is available to be worked on.",
	},
	BeingWorkedOn: {
		Title:   "Being Worked On",
		Message: "Analysis is in progress. Save your work often.",
	},
	CompletedWaitingReview: {
		Title:       "Waiting for Review",
		Message:     "Your analysis has been submitted and is waiting for instructor review.",
		ShowRefresh: true,
	},
	CorrectedWaitingReview: {
		Title:       "Corrections Waiting for Review",
		Message:     "Your corrected analysis has been submitted and is waiting for instructor review.",
		ShowRefresh: true,
	},
	NeedsReanalysis: {
		Title:        "Needs Reanalysis",
		Message:      "Your instructor has requested a reanalysis. Check the feedback on each question.",
		ShowFeedback: true,
	},
	NeedsCorrections: {
		Title:        "Needs Corrections",
		Message:      "Your instructor has requested corrections. Check the feedback on each question.",
		ShowFeedback: true,
	},
	ReviewedByTeacher: {
		Title:       "Reviewed by Teacher",
		Message:     "Your analysis has been reviewed and forwarded to the program director.",
		ShowRefresh: true,
	},
	ReviewedCorrect: {
		Title:        "Reviewed - Correct",
		Message:      "Your analysis has been reviewed and marked correct. Well done!",
		ShowFeedback: true,
	},
	ToBeSubmittedNCBI: {
		Title:   "To Be Submitted to NCBI",
		Message: "Your analysis is queued for submission to NCBI.",
	},
	SubmittedToNCBI: {
		Title:   "Submitted to NCBI",
		Message: "Your analysis has been submitted to NCBI.",
	},
	Unreadable: {
		Title:   "Unreadable",
		Message: "This clone's sequence data was unreadable and cannot be analyzed.",
	},
}

// MetadataFor returns the display metadata for s. It is total: any value
// outside the known set, including the empty string, yields a generic
// fallback record with the raw status interpolated into the message and all
// affordances off.
func MetadataFor(s Status) Metadata {
	if m, ok := metadata[s]; ok {
		return m
	}
	return Metadata{
		Title:   "Unknown Status",
		Message: fmt.Sprintf("Unrecognized clone status %q. Contact your instructor if this persists.", string(s)),
	}
}
