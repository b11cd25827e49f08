package repositories

import (
	"database/sql"
	"fmt"

	"github.com/chaiyapat/worklog/models"
)

// WorkLogRepository interface defines work-log database operations.
// The store is append-only: no update or delete exists.
type WorkLogRepository interface {
	Create(entry *models.WorkLogEntry) error
	GetAll() ([]models.WorkLogEntry, error)
	GetByDate(date string) ([]models.WorkLogEntry, error)
	Count() (int, error)
}

// workLogRepository implements WorkLogRepository interface
type workLogRepository struct {
	db *sql.DB
}

// NewWorkLogRepository creates a new work-log repository
func NewWorkLogRepository(db *sql.DB) WorkLogRepository {
	return &workLogRepository{db: db}
}

// Create appends a new work-log row
func (r *workLogRepository) Create(entry *models.WorkLogEntry) error {
	query := `
		INSERT INTO work_logs (submitted_at, date, name, time_in, time_out, details, location, submit_timestamp, file_url, file_name, file_mime)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.Exec(
		query,
		entry.SubmittedAt(),
		entry.Date,
		entry.Name,
		entry.TimeIn,
		entry.TimeOut,
		entry.Details,
		entry.Location,
		entry.SubmitTimestamp,
		entry.FileURL,
		entry.FileName,
		entry.FileMime,
	)
	if err != nil {
		return fmt.Errorf("failed to insert work log: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get inserted work log id: %w", err)
	}
	entry.ID = id

	return nil
}

// GetAll retrieves all work-log rows, newest submission first
func (r *workLogRepository) GetAll() ([]models.WorkLogEntry, error) {
	query := `
		SELECT id, date, name, time_in, time_out, details, location, submit_timestamp, file_url, file_name, file_mime
		FROM work_logs
		ORDER BY submit_timestamp DESC
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query work logs: %w", err)
	}
	defer rows.Close()

	return scanWorkLogs(rows)
}

// GetByDate retrieves work-log rows for a single calendar date, newest first
func (r *workLogRepository) GetByDate(date string) ([]models.WorkLogEntry, error) {
	query := `
		SELECT id, date, name, time_in, time_out, details, location, submit_timestamp, file_url, file_name, file_mime
		FROM work_logs
		WHERE date = ?
		ORDER BY submit_timestamp DESC
	`

	rows, err := r.db.Query(query, date)
	if err != nil {
		return nil, fmt.Errorf("failed to query work logs for %s: %w", date, err)
	}
	defer rows.Close()

	return scanWorkLogs(rows)
}

// Count returns the number of stored work-log rows
func (r *workLogRepository) Count() (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM work_logs").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count work logs: %w", err)
	}
	return count, nil
}

// scanWorkLogs reads work-log rows from a result set
func scanWorkLogs(rows *sql.Rows) ([]models.WorkLogEntry, error) {
	var entries []models.WorkLogEntry
	for rows.Next() {
		var entry models.WorkLogEntry
		err := rows.Scan(
			&entry.ID,
			&entry.Date,
			&entry.Name,
			&entry.TimeIn,
			&entry.TimeOut,
			&entry.Details,
			&entry.Location,
			&entry.SubmitTimestamp,
			&entry.FileURL,
			&entry.FileName,
			&entry.FileMime,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan work log: %w", err)
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating work logs: %w", err)
	}

	return entries, nil
}
