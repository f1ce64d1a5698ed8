package storage

import "github.com/julianstephens/score100/internal/constants"

func dayKey(prefix, date string) string {
	return prefix + "_" + date
}

func TasksKey(date string) string      { return dayKey(constants.KeyTasks, date) }
func LoopChecksKey(date string) string { return dayKey(constants.KeyLoopChecks, date) }
func JournalKey(date string) string    { return dayKey(constants.KeyJournal, date) }
func DayStatusKey(date string) string  { return dayKey(constants.KeyDayStatus, date) }

// LoopKey and ScoresKey are not day-scoped.
func LoopKey() string   { return constants.KeyLoop }
func ScoresKey() string { return constants.KeyScores }
