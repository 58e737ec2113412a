package status

import (
	"testing"

	"github.com/gabevillegas628/dsap-backend/internal/logger"
)

func newTestPolicy(t *testing.T) *Policy {
	t.Helper()
	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("init logger: %v", err)
	}
	return NewPolicy(log)
}

func TestPermissionSets(t *testing.T) {
	policy := newTestPolicy(t)

	cases := []struct {
		status       Status
		wantEdit     bool
		wantReadOnly bool
	}{
		{status: "", wantEdit: true, wantReadOnly: false},
		{status: Unassigned, wantEdit: true, wantReadOnly: false},
		{status: Available, wantEdit: true, wantReadOnly: false},
		{status: BeingWorkedOn, wantEdit: true, wantReadOnly: false},
		{status: CompletedWaitingReview, wantEdit: false, wantReadOnly: true},
		{status: CorrectedWaitingReview, wantEdit: false, wantReadOnly: true},
		{status: NeedsReanalysis, wantEdit: true, wantReadOnly: false},
		{status: NeedsCorrections, wantEdit: true, wantReadOnly: false},
		{status: ReviewedByTeacher, wantEdit: false, wantReadOnly: true},
		{status: ReviewedCorrect, wantEdit: true, wantReadOnly: false},
		{status: ToBeSubmittedNCBI, wantEdit: false, wantReadOnly: true},
		{status: SubmittedToNCBI, wantEdit: false, wantReadOnly: true},
		{status: Unreadable, wantEdit: false, wantReadOnly: true},
	}

	for _, tc := range cases {
		name := string(tc.status)
		if name == "" {
			name = "empty"
		}
		t.Run(name, func(t *testing.T) {
			if got := policy.CanEdit(tc.status); got != tc.wantEdit {
				t.Fatalf("CanEdit(%q) = %v, want %v", tc.status, got, tc.wantEdit)
			}
			if got := policy.IsReadOnly(tc.status); got != tc.wantReadOnly {
				t.Fatalf("IsReadOnly(%q) = %v, want %v", tc.status, got, tc.wantReadOnly)
			}
		})
	}
}

// ReviewedCorrect stays editable while also being a feedback state; the two
// predicates are separate sets, not complements.
func TestReviewedCorrectAsymmetry(t *testing.T) {
	policy := newTestPolicy(t)

	if !policy.CanEdit(ReviewedCorrect) {
		t.Fatal("CanEdit(ReviewedCorrect) = false, want true")
	}
	if policy.IsReadOnly(ReviewedCorrect) {
		t.Fatal("IsReadOnly(ReviewedCorrect) = true, want false")
	}
	if !policy.ShowsFeedback(ReviewedCorrect) {
		t.Fatal("ShowsFeedback(ReviewedCorrect) = false, want true")
	}
}

func TestUnknownStatusFailsClosed(t *testing.T) {
	policy := newTestPolicy(t)

	const bogus Status = "mystery_status"
	if policy.CanEdit(bogus) {
		t.Fatal("CanEdit on unknown status = true, want false")
	}
	if policy.IsReadOnly(bogus) {
		t.Fatal("IsReadOnly on unknown status = true, want false")
	}
	if policy.ShowsFeedback(bogus) {
		t.Fatal("ShowsFeedback on unknown status = true, want false")
	}
}
