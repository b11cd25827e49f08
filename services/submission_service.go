package services

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/chaiyapat/worklog/blobstore"
	"github.com/chaiyapat/worklog/models"
	"github.com/chaiyapat/worklog/repositories"
)

// SubmitRequest is the decoded form payload of one client submission.
// An empty FileBase64/FileName pair means no file was attached; the wire
// format has no other way to say so.
type SubmitRequest struct {
	Form            models.WorkLogForm
	SubmitTimestamp string
	FileBase64      string
	FileName        string
	FileMime        string
}

// SubmissionService interface defines the remote store adapter's business logic
type SubmissionService interface {
	Submit(ctx context.Context, req *SubmitRequest) *models.SubmitResponse
	GetAllEntries(ctx context.Context) ([]models.WorkLogEntry, error)
}

// submissionService implements SubmissionService interface
type submissionService struct {
	workLogRepo repositories.WorkLogRepository
	files       blobstore.ObjectStore
}

// NewSubmissionService creates a new submission service
func NewSubmissionService(workLogRepo repositories.WorkLogRepository, files blobstore.ObjectStore) SubmissionService {
	return &submissionService{
		workLogRepo: workLogRepo,
		files:       files,
	}
}

// Submit persists one submission: the attached file (if any) goes to the
// object store, the scalar fields become a work-log row. Every failure is
// reported as a structured response, never as a raw HTTP error. The file
// write and the row append are independent resources; a file can land while
// the row insert fails, which is reported but not rolled back.
func (s *submissionService) Submit(ctx context.Context, req *SubmitRequest) *models.SubmitResponse {
	form := req.Form.Normalized()

	submitTimestamp, err := strconv.ParseInt(req.SubmitTimestamp, 10, 64)
	if err != nil || submitTimestamp <= 0 {
		// Clients always send one, but the upstream contract tolerates its
		// absence and falls back to the server clock.
		submitTimestamp = time.Now().UnixMilli()
	}

	fileURL := ""
	fileName := ""
	fileMime := ""

	if req.FileBase64 != "" && req.FileName != "" {
		raw, err := base64.StdEncoding.DecodeString(req.FileBase64)
		if err != nil {
			return failure(fmt.Errorf("failed to decode file content: %w", err))
		}

		fileMime = req.FileMime
		if fileMime == "" {
			fileMime = models.DefaultMimeType
		}
		fileName = blobstore.SafeFileName(req.FileName)

		key, err := s.files.Put(ctx, fileName, fileMime, bytes.NewReader(raw), int64(len(raw)))
		if err != nil {
			return failure(fmt.Errorf("failed to store file: %w", err))
		}

		// Sharing failure is non-fatal: keep the row, drop the link
		url, err := s.files.PublicURL(ctx, key)
		if err != nil {
			log.Printf("failed to resolve public URL for %s: %v", key, err)
		} else {
			fileURL = url
		}
	}

	entry := &models.WorkLogEntry{
		Date:            form.Date,
		Name:            form.Name,
		TimeIn:          form.TimeIn,
		TimeOut:         form.TimeOut,
		Details:         form.Details,
		Location:        form.Location,
		SubmitTimestamp: submitTimestamp,
		FileURL:         fileURL,
		FileName:        fileName,
		FileMime:        fileMime,
	}

	if err := s.workLogRepo.Create(entry); err != nil {
		return failure(fmt.Errorf("failed to append work log: %w", err))
	}

	return &models.SubmitResponse{
		Success: true,
		Message: "Saved",
		FileURL: fileURL,
	}
}

// GetAllEntries retrieves all stored work logs, newest first
func (s *submissionService) GetAllEntries(ctx context.Context) ([]models.WorkLogEntry, error) {
	return s.workLogRepo.GetAll()
}

func failure(err error) *models.SubmitResponse {
	log.Printf("submission failed: %v", err)
	return &models.SubmitResponse{
		Success: false,
		Message: err.Error(),
	}
}
