package status

import (
	"errors"
	"testing"
)

func TestTransitionTable(t *testing.T) {
	wanted := map[Status][]Status{
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

	// Closure: for every (from, to) pair over the whole enum, legality holds
	// iff to is literally in from's destination set.
	for _, from := range All {
		allowed := make(map[Status]bool)
		for _, to := range wanted[from] {
			allowed[to] = true
		}
		for _, to := range All {
			got := IsLegalTransition(from, to)
			if got != allowed[to] {
				t.Errorf("IsLegalTransition(%q, %q) = %v, want %v", from, to, got, allowed[to])
			}
		}
	}
}

func TestEmptyFromIsAlwaysLegal(t *testing.T) {
	for _, to := range All {
		if !IsLegalTransition("", to) {
			t.Fatalf("IsLegalTransition(\"\", %q) = false, want true", to)
		}
	}
	if !IsLegalTransition("", "even_garbage") {
		t.Fatal("empty source must allow any destination")
	}
}

func TestUnknownSourceRejectsAll(t *testing.T) {
	for _, to := range All {
		if IsLegalTransition("not_in_the_table", to) {
			t.Fatalf("unknown source allowed transition to %q", to)
		}
	}
}

func TestCheckTransition(t *testing.T) {
	if err := CheckTransition(BeingWorkedOn, CompletedWaitingReview); err != nil {
		t.Fatalf("legal transition rejected: %v", err)
	}

	err := CheckTransition(SubmittedToNCBI, BeingWorkedOn)
	var illegal *IllegalTransitionError
	if !errors.As(err, &illegal) {
		t.Fatalf("want IllegalTransitionError, got %v", err)
	}
	if illegal.From != SubmittedToNCBI || illegal.To != BeingWorkedOn {
		t.Fatalf("error carries wrong endpoints: %+v", illegal)
	}
}

func TestLegalTransitionsReturnsCopy(t *testing.T) {
	first := LegalTransitions(BeingWorkedOn)
	if len(first) == 0 {
		t.Fatal("BeingWorkedOn should have destinations")
	}
	first[0] = "tampered"
	second := LegalTransitions(BeingWorkedOn)
	if second[0] == "tampered" {
		t.Fatal("LegalTransitions exposed the underlying table")
	}
}
