// Package client implements the submitting side of the work-log system:
// encoding a selected file for transport, sending a submission to the
// remote store adapter, and mirroring successful submissions locally for
// display.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/chaiyapat/worklog/models"
)

// formContentType is the charset-qualified form content type the adapter
// endpoint expects.
const formContentType = "application/x-www-form-urlencoded;charset=UTF-8"

// Pipeline submits work-log entries to the remote store adapter and
// commits successful submissions to the local mirror. It is a single-slot
// state machine: one submission may be in flight at a time.
type Pipeline struct {
	endpoint   string
	httpClient *http.Client
	mirror     *Mirror
	inFlight   atomic.Bool
}

// NewPipeline creates a pipeline posting to endpoint. A nil httpClient
// falls back to a default client with no timeout; a hung remote store
// leaves the submission waiting until ctx is cancelled.
func NewPipeline(endpoint string, httpClient *http.Client, mirror *Mirror) *Pipeline {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Pipeline{
		endpoint:   endpoint,
		httpClient: httpClient,
		mirror:     mirror,
	}
}

// Mirror returns the local mirror store backing this pipeline.
func (p *Pipeline) Mirror() *Mirror {
	return p.mirror
}

// wireResponse is the strict shape of the adapter's reply. Success is a
// pointer so an absent flag is distinguishable from false.
type wireResponse struct {
	Success *bool  `json:"success"`
	Message string `json:"message"`
	FileURL string `json:"fileUrl"`
}

// Submit runs one submission attempt: validate, stamp, assemble, send,
// interpret, commit. On success the committed entry is returned and is
// already appended to the mirror. On any failure the mirror is untouched
// and the error is one of *ValidationError, *TransportError,
// *RemoteLogicError or ErrSubmissionInFlight; the caller keeps its form
// values for a manual retry. The encoded file, if any, belongs to this
// attempt only and is not retained.
func (p *Pipeline) Submit(ctx context.Context, form models.WorkLogForm, file *models.EncodedFile) (*models.WorkLogEntry, error) {
	if !p.inFlight.CompareAndSwap(false, true) {
		return nil, ErrSubmissionInFlight
	}
	defer p.inFlight.Store(false)

	if problems := form.Validate(); len(problems) > 0 {
		return nil, &ValidationError{Problems: problems}
	}
	normalized := form.Normalized()

	// Stamped when validation passes, not when the user typed
	submitTimestamp := time.Now().UnixMilli()

	resp, err := p.send(ctx, buildPayload(normalized, submitTimestamp, file))
	if err != nil {
		return nil, err
	}

	entry := models.WorkLogEntry{
		Date:            normalized.Date,
		Name:            normalized.Name,
		TimeIn:          normalized.TimeIn,
		TimeOut:         normalized.TimeOut,
		Details:         normalized.Details,
		Location:        normalized.Location,
		SubmitTimestamp: submitTimestamp,
		FileURL:         resp.FileURL,
	}
	if file != nil {
		entry.FileName = file.FileName
	}

	if err := p.mirror.Append(entry); err != nil {
		return nil, fmt.Errorf("submission saved remotely but mirror update failed: %w", err)
	}

	return &entry, nil
}

// buildPayload assembles the flat key-value form body. When no file is
// attached the three file fields are sent as empty strings; the remote
// contract has no other way to express "no file".
func buildPayload(form models.WorkLogForm, submitTimestamp int64, file *models.EncodedFile) url.Values {
	params := url.Values{}
	params.Set(models.FieldDate, form.Date)
	params.Set(models.FieldName, form.Name)
	params.Set(models.FieldTimeIn, form.TimeIn)
	params.Set(models.FieldTimeOut, form.TimeOut)
	params.Set(models.FieldDetails, form.Details)
	params.Set(models.FieldLocation, form.Location)
	params.Set(models.FieldSubmitTimestamp, strconv.FormatInt(submitTimestamp, 10))

	if file != nil {
		params.Set(models.FieldFileBase64, file.Content)
		params.Set(models.FieldFileName, file.FileName)
		params.Set(models.FieldFileMime, file.MimeType)
	} else {
		params.Set(models.FieldFileBase64, "")
		params.Set(models.FieldFileName, "")
		params.Set(models.FieldFileMime, "")
	}

	return params
}

// send performs the single request and interprets the reply. There is no
// retry and no client-side timeout beyond what ctx carries.
func (p *Pipeline) send(ctx context.Context, params url.Values) (*wireResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, strings.NewReader(params.Encode()))
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	req.Header.Set("Content-Type", formContentType)

	httpResp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer httpResp.Body.Close()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, &TransportError{StatusCode: httpResp.StatusCode, Err: err}
	}

	// Parse before checking the status so a failure body's message can be
	// surfaced. Any shape other than a JSON object with a boolean success
	// flag is a transport-level failure.
	var resp wireResponse
	parseErr := json.Unmarshal(body, &resp)

	if httpResp.StatusCode < 200 || httpResp.StatusCode >= 300 {
		message := http.StatusText(httpResp.StatusCode)
		if parseErr == nil && resp.Message != "" {
			message = resp.Message
		}
		return nil, &TransportError{StatusCode: httpResp.StatusCode, Message: message}
	}

	if parseErr != nil || resp.Success == nil {
		return nil, &TransportError{
			StatusCode: httpResp.StatusCode,
			Message:    "malformed response from remote store",
			Err:        parseErr,
		}
	}

	if !*resp.Success {
		return nil, &RemoteLogicError{Message: resp.Message}
	}

	return &resp, nil
}
