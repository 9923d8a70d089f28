package recruit

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseTimeLayouts(t *testing.T) {
	if parseTime("2025-12-13T10:11:12Z").IsZero() {
		t.Fatalf("parseTime should parse RFC3339")
	}
	if parseTime("2025-12-13T10:11:12.123456Z").IsZero() {
		t.Fatalf("parseTime should parse RFC3339Nano")
	}
	got := parseTime("2025-12-13 10:11:12")
	if got.Year() != 2025 || got.Month() != time.December || got.Day() != 13 || got.Hour() != 10 {
		t.Fatalf("parseTime = %v, want 2025-12-13 10:00", got)
	}
	got = parseTime(" 2025-02-01 ")
	if got.Year() != 2025 || got.Month() != time.February || got.Day() != 1 {
		t.Fatalf("parseTime = %v, want 2025-02-01", got)
	}
	if !parseTime("next tuesday").IsZero() {
		t.Fatalf("parseTime should yield zero time for garbage")
	}
	if !parseTime("").IsZero() {
		t.Fatalf("parseTime should yield zero time for empty input")
	}
}

func TestCandidateFullName(t *testing.T) {
	cases := []struct {
		first, last, want string
	}{
		{"Ann", "Lee", "Ann Lee"},
		{"Ann", "", "Ann"},
		{"", "Lee", "Lee"},
		{"", "", ""},
	}
	for _, tc := range cases {
		got := Candidate{FirstName: tc.first, LastName: tc.last}.FullName()
		if got != tc.want {
			t.Fatalf("FullName(%q, %q) = %q, want %q", tc.first, tc.last, got, tc.want)
		}
	}
}

func TestDocumentKindLabel(t *testing.T) {
	cases := map[string]string{
		"id_card":             "ID card",
		" HOUSE_REGISTRATION": "House registration",
		"education":           "Education",
		"work_permit":         "Work permit",
		"":                    "",
	}
	for kind, want := range cases {
		if got := (DocumentUpload{Kind: kind}).KindLabel(); got != want {
			t.Fatalf("KindLabel(%q) = %q, want %q", kind, got, want)
		}
	}
}

func TestNullableTimestamps(t *testing.T) {
	var hc HealthCheckup
	if err := json.Unmarshal([]byte(`{"id":1,"checkedAt":null}`), &hc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !hc.ParsedCheckedAt().IsZero() {
		t.Fatalf("pending checkup should have zero CheckedAt")
	}

	signed := "2024-06-01"
	c := ContractOfEmployment{SignedAt: &signed}
	if c.ParsedSignedAt().IsZero() {
		t.Fatalf("signed contract should parse SignedAt")
	}
}
