package config

// Log level constants
const (
	LogLevelInfo     = "info"
	LogLevelDebug    = "debug"
	LogLevelError    = "error"
	LogLevelWarning  = "warning"
	LogLevelCritical = "critical"
)

// Log type constants
const (
	LogTypeConsole = "console"
	LogTypeFile    = "file"
)

// SqliteDbType represents the SQLite database backend
const SqliteDbType = "sqlite"

// PostgresDbType represents the PostgreSQL database backend
const PostgresDbType = "postgres"
