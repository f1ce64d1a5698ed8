package prompts

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultRotation(t *testing.T) {
	r := Default()
	if r.Len() != 15 {
		t.Fatalf("expected 15 prompts, got %d", r.Len())
	}
	if got := r.Pick(0); got != "What was your biggest win today?" {
		t.Errorf("Pick(0) = %q", got)
	}
}

func TestDayOfYear(t *testing.T) {
	utc := time.UTC
	tests := []struct {
		name string
		now  time.Time
		want int
	}{
		{"jan 1 midnight", time.Date(2024, 1, 1, 0, 0, 0, 0, utc), 1},
		{"jan 1 evening", time.Date(2024, 1, 1, 23, 59, 0, 0, utc), 1},
		{"feb 1", time.Date(2024, 2, 1, 12, 0, 0, 0, utc), 32},
		{"leap day", time.Date(2024, 2, 29, 8, 0, 0, 0, utc), 60},
		{"dec 31 leap year", time.Date(2024, 12, 31, 8, 0, 0, 0, utc), 366},
		{"dec 31 common year", time.Date(2023, 12, 31, 8, 0, 0, 0, utc), 365},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DayOfYear(tt.now); got != tt.want {
				t.Errorf("DayOfYear(%v) = %d, want %d", tt.now, got, tt.want)
			}
		})
	}
}

func TestPickWraps(t *testing.T) {
	r := Default()
	n := r.Len()

	if r.Pick(0) != r.Pick(n) {
		t.Error("Pick(0) and Pick(len) should match")
	}
	if r.Pick(3) != r.Pick(3+2*n) {
		t.Error("Pick should wrap more than once")
	}
	if r.Pick(-1) != r.Pick(n-1) {
		t.Error("Pick(-1) should wrap to the last prompt")
	}
}

func TestForDateIsStableWithinADay(t *testing.T) {
	r := Default()
	morning := time.Date(2024, 7, 4, 6, 0, 0, 0, time.UTC)
	night := time.Date(2024, 7, 4, 23, 0, 0, 0, time.UTC)
	next := time.Date(2024, 7, 5, 6, 0, 0, 0, time.UTC)

	if r.ForDate(morning) != r.ForDate(night) {
		t.Error("same calendar day returned different prompts")
	}
	if r.ForDate(morning) == r.ForDate(next) {
		t.Error("consecutive days returned the same prompt")
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantLen int
		wantErr bool
	}{
		{"valid", "prompts:\n  - one\n  - two\n", 2, false},
		{"blank entries dropped", "prompts:\n  - one\n  - '  '\n", 1, false},
		{"empty list", "prompts: []\n", 0, true},
		{"missing key", "questions:\n  - one\n", 0, true},
		{"not yaml", "prompts: [unterminated", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := Parse([]byte(tt.data))
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && r.Len() != tt.wantLen {
				t.Errorf("Len() = %d, want %d", r.Len(), tt.wantLen)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	r, err := Load("")
	if err != nil || r.Len() != Default().Len() {
		t.Fatalf("Load(\"\") = %v, %v", r, err)
	}

	path := filepath.Join(t.TempDir(), "prompts.yaml")
	if err := os.WriteFile(path, []byte("prompts:\n  - only one\n"), 0600); err != nil {
		t.Fatal(err)
	}
	r, err = Load(path)
	if err != nil {
		t.Fatalf("Load(file) failed: %v", err)
	}
	if r.Pick(42) != "only one" {
		t.Errorf("Pick() = %q", r.Pick(42))
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
