package timeutil

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	parsed, err := ParseDate("2024-01-02")
	if err != nil {
		t.Fatalf("expected parse to succeed, got %v", err)
	}
	if got := FormatDate(parsed); got != "2024-01-02" {
		t.Fatalf("expected formatted date to round-trip, got %s", got)
	}
}

func TestFormatDateUsesLocation(t *testing.T) {
	loc := time.FixedZone("test", -5*60*60)
	value := time.Date(2024, 1, 2, 23, 0, 0, 0, loc)
	if got := FormatDate(value); got != "2024-01-02" {
		t.Fatalf("expected formatted date, got %s", got)
	}
}

func TestParseGameDateFormats(t *testing.T) {
	cases := map[string]string{
		"NOV 20, 2024":        "2024-11-20",
		"Feb 01, 2024":        "2024-02-01",
		"Jan 5, 2024":         "2024-01-05",
		"2023-11-22":          "2023-11-22",
		"2024-03-04T00:00:00": "2024-03-04",
		" MAR 02, 2024 ":      "2024-03-02",
	}
	for input, want := range cases {
		got, err := ParseGameDate(input)
		if err != nil {
			t.Fatalf("ParseGameDate(%q) error: %v", input, err)
		}
		if FormatDate(got) != want {
			t.Fatalf("ParseGameDate(%q) = %s, want %s", input, FormatDate(got), want)
		}
	}
}

func TestParseGameDateRejectsGarbage(t *testing.T) {
	if _, err := ParseGameDate("yesterday"); err == nil {
		t.Fatal("expected error for unrecognized date")
	}
}
