// Package persistence provides GORM-based repository implementations for
// users, sessions and notes, plus database connection management for the
// SQLite and PostgreSQL backends.
package persistence
