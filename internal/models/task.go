package models

// Task is a planned, point-weighted unit of work for one day.
type Task struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Points    int    `json:"points"`
	Time      string `json:"time"` // 12-hour clock, e.g. "09:00 AM"
	Completed bool   `json:"completed"`
	Skipped   bool   `json:"skipped,omitempty"`
}

// LoopItem is a recurring daily habit. The list is a template shared by every day.
type LoopItem struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Time string `json:"time"`
}

// LoopChecks maps a LoopItem id to whether it was checked off on a given day.
type LoopChecks map[string]bool

// Clone returns an independent copy of the check map.
func (c LoopChecks) Clone() LoopChecks {
	out := make(LoopChecks, len(c))
	for k, v := range c {
		out[k] = v
	}
	return out
}

// ScoreHistory maps a calendar-date key (YYYY-MM-DD) to the score frozen when that day closed.
type ScoreHistory map[string]int

// SeedLoop returns the habits a fresh install starts with.
func SeedLoop() []LoopItem {
	return []LoopItem{
		{ID: "1", Name: "Hydrate", Time: "06:00 AM"},
		{ID: "2", Name: "Meditate", Time: "07:30 AM"},
		{ID: "3", Name: "No Screen", Time: "08:00 PM"},
	}
}
