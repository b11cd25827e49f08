package repositories

import (
	"database/sql"
)

// Repositories struct holds all repository interfaces
type Repositories struct {
	WorkLog WorkLogRepository
	Audit   AuditRepository
}

// NewRepositories creates and initializes all repositories
func NewRepositories(db *sql.DB) *Repositories {
	return &Repositories{
		WorkLog: NewWorkLogRepository(db),
		Audit:   NewAuditRepository(db),
	}
}
