package status

import (
	"strings"
	"testing"
)

func TestMetadataForKnownStatuses(t *testing.T) {
	for _, s := range All {
		t.Run(string(s), func(t *testing.T) {
			m := MetadataFor(s)
			if m.Title == "" {
				t.Fatalf("MetadataFor(%q) returned empty title", s)
			}
			if m.Message == "" {
				t.Fatalf("MetadataFor(%q) returned empty message", s)
			}
			if m.Title == "Unknown Status" {
				t.Fatalf("MetadataFor(%q) fell through to the unknown fallback", s)
			}
		})
	}
}

func TestMetadataForIsTotal(t *testing.T) {
	cases := []struct {
		name  string
		input Status
	}{
		{name: "empty", input: ""},
		{name: "garbage", input: "definitely_not_a_status"},
		{name: "whitespace", input: "   "},
		{name: "near_miss", input: "being_worked_on_"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := MetadataFor(tc.input)
			if m.Title != "Unknown Status" {
				t.Fatalf("MetadataFor(%q).Title = %q, want fallback", tc.input, m.Title)
			}
			if !strings.Contains(m.Message, string(tc.input)) {
				t.Fatalf("fallback message %q does not interpolate the raw status %q", m.Message, tc.input)
			}
			if m.ShowRefresh || m.ShowFeedback {
				t.Fatalf("fallback metadata for %q has affordances enabled", tc.input)
			}
		})
	}
}

func TestIsKnown(t *testing.T) {
	for _, s := range All {
		if !IsKnown(s) {
			t.Fatalf("IsKnown(%q) = false for enum member", s)
		}
	}
	if IsKnown("") {
		t.Fatal("IsKnown(\"\") = true, empty is not a member")
	}
	if IsKnown("bogus") {
		t.Fatal("IsKnown(\"bogus\") = true")
	}
}
