// Package score holds the daily score arithmetic and the text derived from it.
package score

import (
	"fmt"
	"time"

	"github.com/julianstephens/score100/internal/constants"
	"github.com/julianstephens/score100/internal/models"
)

// Current sums the points of completed tasks.
func Current(tasks []models.Task) int {
	total := 0
	for _, t := range tasks {
		if t.Completed {
			total += t.Points
		}
	}
	return total
}

// TotalPlanned sums the points of every task regardless of status.
func TotalPlanned(tasks []models.Task) int {
	total := 0
	for _, t := range tasks {
		total += t.Points
	}
	return total
}

// Remaining is how many points can still be planned under the ceiling.
func Remaining(tasks []models.Task) int {
	return constants.PointCeiling - TotalPlanned(tasks)
}

// Delta compares today with yesterday. ok is false when there is no
// yesterday score, which callers must not render as zero.
func Delta(today int, yesterday int, hasYesterday bool) (delta int, ok bool) {
	if !hasYesterday {
		return 0, false
	}
	return today - yesterday, true
}

// FormatDelta renders a delta as "+N from yesterday" or "-N from yesterday".
func FormatDelta(delta int) string {
	if delta >= 0 {
		return fmt.Sprintf("+%d from yesterday", delta)
	}
	return fmt.Sprintf("%d from yesterday", delta)
}

// Progress is the score as a fraction of the ceiling, clamped to [0, 1].
func Progress(score int) float64 {
	if score <= 0 {
		return 0
	}
	if score >= constants.PointCeiling {
		return 1
	}
	return float64(score) / float64(constants.PointCeiling)
}

// Message is the encouragement shown next to a closed day's score.
func Message(score int) string {
	switch {
	case score >= constants.PointCeiling:
		return "Perfection, Achiever!"
	case score >= 80:
		return "Great Job, Achiever!"
	case score >= 60:
		return "Good job, Achiever!"
	case score >= 40:
		return "Keep pushing!"
	default:
		return "New start tomorrow."
	}
}

// Greeting picks the header salutation from the local hour.
func Greeting(now time.Time) string {
	switch h := now.Hour(); {
	case h < 12:
		return "GOOD MORNING"
	case h < 17:
		return "GOOD AFTERNOON"
	default:
		return "GOOD EVENING"
	}
}
