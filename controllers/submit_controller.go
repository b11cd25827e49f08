package controllers

import (
	"net/http"

	"github.com/chaiyapat/worklog/models"
	"github.com/chaiyapat/worklog/services"
)

// SubmitController handles work-log submission requests
type SubmitController struct {
	services *services.Services
}

// NewSubmitController creates a new submit controller
func NewSubmitController(services *services.Services) *SubmitController {
	return &SubmitController{
		services: services,
	}
}

// Create handles POST /submit. The body is a URL-encoded form; the answer
// is always a structured {success, message, fileUrl} JSON document, even
// when the submission fails — clients never see a raw error page.
func (c *SubmitController) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeJSON(w, http.StatusOK, &models.SubmitResponse{
			Success: false,
			Message: "failed to parse form: " + err.Error(),
		})
		return
	}

	req := &services.SubmitRequest{
		Form: models.WorkLogForm{
			Date:     r.FormValue(models.FieldDate),
			Name:     r.FormValue(models.FieldName),
			TimeIn:   r.FormValue(models.FieldTimeIn),
			TimeOut:  r.FormValue(models.FieldTimeOut),
			Details:  r.FormValue(models.FieldDetails),
			Location: r.FormValue(models.FieldLocation),
		},
		SubmitTimestamp: r.FormValue(models.FieldSubmitTimestamp),
		FileBase64:      r.FormValue(models.FieldFileBase64),
		FileName:        r.FormValue(models.FieldFileName),
		FileMime:        r.FormValue(models.FieldFileMime),
	}

	resp := c.services.Submission.Submit(r.Context(), req)
	writeJSON(w, http.StatusOK, resp)
}
