package models

import (
	"time"
)

// Wire field names shared by the client payload and the adapter's form
// parser. The remote contract cannot distinguish "no file" from "empty
// file" other than by all three file fields being empty strings.
const (
	FieldDate            = "date"
	FieldName            = "name"
	FieldTimeIn          = "timeIn"
	FieldTimeOut         = "timeOut"
	FieldDetails         = "details"
	FieldLocation        = "location"
	FieldSubmitTimestamp = "submitTimestamp"
	FieldFileBase64      = "fileBase64"
	FieldFileName        = "fileName"
	FieldFileMime        = "fileMime"
)

// DefaultMimeType is used when a file's media type cannot be determined.
const DefaultMimeType = "application/octet-stream"

// FormatDate formats a time as YYYY-MM-DD
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// FormatDateTime formats a time as YYYY-MM-DD HH:MM
func FormatDateTime(t time.Time) string {
	return t.Format("2006-01-02 15:04")
}

// ParseDate parses a YYYY-MM-DD string into a time.Time
func ParseDate(dateStr string) (time.Time, error) {
	return time.Parse("2006-01-02", dateStr)
}
