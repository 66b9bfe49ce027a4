package constants

const (
	// DateFormat is the standard civil date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// DefaultStorePath is where the habit collection is persisted when no --file is given
	DefaultStorePath = "habits.json"
)
