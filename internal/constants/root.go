package constants

import "time"

const (
	AppName            = "score100"
	DefaultConfigPath  = "~/.config/score100/score100.db"
	DefaultKeyringUser = "database-connection"
	Version            = "v0.1.0"

	// DateFormat is the calendar-day key format used for day-scoped keys (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// ClockFormat is the 12-hour wall-clock format tasks and loop items carry ("09:00 AM")
	ClockFormat = "03:04 PM"

	// PointCeiling is the most points a single day may plan
	PointCeiling = 100

	// SwipeThreshold is the distance a completion gesture must travel before it counts
	SwipeThreshold = 100

	// Persistence key prefixes. Day-scoped keys are suffixed with "_" + DateFormat.
	KeyTasks      = "tasks"
	KeyLoop       = "loop"
	KeyLoopChecks = "loop_checks"
	KeyScores     = "scores"
	KeyJournal    = "journal"
	KeyDayStatus  = "day_status"

	// Loop item defaults used by the "add" action
	DefaultLoopItemName = "New Habit"
	DefaultLoopItemTime = "08:00 AM"

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "score100-"
	BackupFileSuffix = ".db"

	// Log file constants
	LogDirName  = "logs"
	LogFileName = "score100.log"

	// Adapter timeouts
	RedisDialTimeout = 5 * time.Second
	RedisIOTimeout   = 3 * time.Second
)
