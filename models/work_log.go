package models

import (
	"strings"
	"time"
)

// WorkLogEntry represents one submitted work-log record. The JSON field
// names match the layout of the client's local mirror file, so older
// mirrors stay readable.
type WorkLogEntry struct {
	ID              int64  `json:"-" db:"id"`
	Date            string `json:"date" db:"date"`         // "2006-01-02" format
	Name            string `json:"name" db:"name"`
	TimeIn          string `json:"timeIn" db:"time_in"`    // "15:04" format
	TimeOut         string `json:"timeOut" db:"time_out"`
	Details         string `json:"details" db:"details"`
	Location        string `json:"location" db:"location"`
	SubmitTimestamp int64  `json:"submitTimestamp" db:"submit_timestamp"` // epoch milliseconds, sole sort key
	FileURL         string `json:"fileUrl" db:"file_url"`
	FileName        string `json:"fileName" db:"file_name"`
	FileMime        string `json:"-" db:"file_mime"`
}

// SubmittedAt returns the submission timestamp as a time.Time.
func (e *WorkLogEntry) SubmittedAt() time.Time {
	return time.UnixMilli(e.SubmitTimestamp)
}

// HasFile reports whether the remote store accepted a file for this entry.
func (e *WorkLogEntry) HasFile() bool {
	return e.FileURL != ""
}

// WorkLogForm represents the raw form input for a new work-log submission
type WorkLogForm struct {
	Date     string `json:"date"`
	Name     string `json:"name"`
	TimeIn   string `json:"timeIn"`
	TimeOut  string `json:"timeOut"`
	Details  string `json:"details"`
	Location string `json:"location"`
}

// Validate validates the work-log form data. Date, name, timeIn and timeOut
// are required; details and location are free text. timeOut is deliberately
// not checked against timeIn (overnight shifts record timeOut < timeIn).
func (f *WorkLogForm) Validate() []string {
	var errors []string

	if strings.TrimSpace(f.Date) == "" {
		errors = append(errors, "Date is required")
	}

	if strings.TrimSpace(f.Name) == "" {
		errors = append(errors, "Name is required")
	}

	if strings.TrimSpace(f.TimeIn) == "" {
		errors = append(errors, "Clock-in time is required")
	}

	if strings.TrimSpace(f.TimeOut) == "" {
		errors = append(errors, "Clock-out time is required")
	}

	return errors
}

// Normalized returns a copy of the form with the free-text fields trimmed
func (f *WorkLogForm) Normalized() WorkLogForm {
	return WorkLogForm{
		Date:     strings.TrimSpace(f.Date),
		Name:     strings.TrimSpace(f.Name),
		TimeIn:   strings.TrimSpace(f.TimeIn),
		TimeOut:  strings.TrimSpace(f.TimeOut),
		Details:  strings.TrimSpace(f.Details),
		Location: strings.TrimSpace(f.Location),
	}
}

// EncodedFile holds a file selected for upload, encoded for transport.
// It lives only for the duration of one submission attempt and is never
// persisted; only the fileUrl the remote store returns survives into a
// WorkLogEntry.
type EncodedFile struct {
	Content  string // base64 (standard encoding) of the raw bytes
	MimeType string
	FileName string
}

// SubmitResponse is the wire response of the remote store adapter.
type SubmitResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	FileURL string `json:"fileUrl,omitempty"`
}
