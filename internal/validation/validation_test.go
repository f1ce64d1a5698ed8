package validation

import (
	"errors"
	"reflect"
	"testing"

	"github.com/julianstephens/score100/internal/models"
)

func TestValidateTask(t *testing.T) {
	tests := []struct {
		name         string
		taskName     string
		points       int
		clock        string
		totalPlanned int
		wantErr      error
		wantRemain   int
	}{
		{name: "valid", taskName: "Write", points: 30, clock: "09:00 AM"},
		{name: "exactly at ceiling", taskName: "Write", points: 40, clock: "09:00 AM", totalPlanned: 60},
		{name: "one over ceiling", taskName: "Write", points: 41, clock: "09:00 AM", totalPlanned: 60, wantRemain: 40},
		{name: "already full", taskName: "Write", points: 1, clock: "09:00 AM", totalPlanned: 100, wantRemain: 0},
		{name: "blank name", taskName: "   ", points: 10, clock: "09:00 AM", wantErr: ErrEmptyName},
		{name: "zero points", taskName: "Write", points: 0, clock: "09:00 AM", wantErr: ErrInvalidPoints},
		{name: "negative points", taskName: "Write", points: -5, clock: "09:00 AM", wantErr: ErrInvalidPoints},
		{name: "empty time", taskName: "Write", points: 10, clock: " ", wantErr: ErrEmptyTime},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateTask(tt.taskName, tt.points, tt.clock, tt.totalPlanned)

			var ceiling *CeilingError
			switch {
			case tt.wantErr != nil:
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("error = %v, want %v", err, tt.wantErr)
				}
			case tt.wantRemain != 0 || (tt.totalPlanned+tt.points > 100):
				if !errors.As(err, &ceiling) {
					t.Fatalf("error = %v, want *CeilingError", err)
				}
				if ceiling.Remaining != tt.wantRemain {
					t.Errorf("Remaining = %d, want %d", ceiling.Remaining, tt.wantRemain)
				}
			default:
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if got.Points != tt.points || got.Name != tt.taskName {
					t.Errorf("ValidateTask() = %+v", got)
				}
			}
		})
	}
}

func TestValidateTaskTrims(t *testing.T) {
	got, err := ValidateTask("  Deep work ", 20, " 10:00 AM ", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Name != "Deep work" || got.Time != "10:00 AM" {
		t.Errorf("ValidateTask() = %+v", got)
	}
}

func TestCeilingErrorMessage(t *testing.T) {
	err := &CeilingError{Remaining: 15}
	want := "That would exceed 100 points! You only have 15 points left."
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestParsePoints(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"25", 25, false},
		{" 7 ", 7, false},
		{"0", 0, true},
		{"-3", 0, true},
		{"abc", 0, true},
		{"12abc", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		got, err := ParsePoints(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParsePoints(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParsePoints(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestLoopItemEdits(t *testing.T) {
	seed := models.SeedLoop()

	added := AddLoopItem(seed, "42")
	if len(added) != 4 || len(seed) != 3 {
		t.Fatalf("AddLoopItem() len = %d, seed len = %d", len(added), len(seed))
	}
	if last := added[3]; last != (models.LoopItem{ID: "42", Name: "New Habit", Time: "08:00 AM"}) {
		t.Errorf("AddLoopItem() appended %+v", last)
	}

	edited, err := EditLoopItem(added, "42", "  Stretch ", " 09:15 PM ")
	if err != nil {
		t.Fatalf("EditLoopItem() failed: %v", err)
	}
	if edited[3].Name != "Stretch" || edited[3].Time != "09:15 PM" {
		t.Errorf("EditLoopItem() = %+v", edited[3])
	}
	if added[3].Name != "New Habit" {
		t.Error("EditLoopItem() mutated its input")
	}

	if _, err := EditLoopItem(added, "42", "   ", "09:00 AM"); !errors.Is(err, ErrEmptyName) {
		t.Errorf("EditLoopItem(blank) error = %v", err)
	}
	if _, err := EditLoopItem(added, "nope", "x", "09:00 AM"); !errors.Is(err, ErrLoopNotFound) {
		t.Errorf("EditLoopItem(missing) error = %v", err)
	}

	deleted, err := DeleteLoopItem(edited, "2")
	if err != nil {
		t.Fatalf("DeleteLoopItem() failed: %v", err)
	}
	wantIDs := []string{"1", "3", "42"}
	var gotIDs []string
	for _, item := range deleted {
		gotIDs = append(gotIDs, item.ID)
	}
	if !reflect.DeepEqual(gotIDs, wantIDs) {
		t.Errorf("DeleteLoopItem() ids = %v, want %v", gotIDs, wantIDs)
	}
	if _, err := DeleteLoopItem(deleted, "2"); !errors.Is(err, ErrLoopNotFound) {
		t.Errorf("DeleteLoopItem(missing) error = %v", err)
	}
}
