package models

import "fmt"

// DayStatus is where a day sits in its plan/execute/reflect cycle.
type DayStatus string

const (
	DayPlanning  DayStatus = "planning"
	DayActive    DayStatus = "active"
	DayCompleted DayStatus = "completed"
)

// IsValid reports whether s is one of the known statuses.
func (s DayStatus) IsValid() bool {
	switch s {
	case DayPlanning, DayActive, DayCompleted:
		return true
	}
	return false
}

// ParseDayStatus converts a persisted value into a DayStatus.
func ParseDayStatus(v string) (DayStatus, error) {
	s := DayStatus(v)
	if !s.IsValid() {
		return "", fmt.Errorf("invalid day status: %q", v)
	}
	return s, nil
}

func (s DayStatus) String() string {
	return string(s)
}
