package controllers

import (
	"html/template"
	"net/http"

	"github.com/chaiyapat/worklog/client"
	"github.com/chaiyapat/worklog/services"
)

// boardTemplate wraps the rendered entry list in a minimal page.
var boardTemplate = template.Must(template.New("board").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Work Log</title></head>
<body>
<h1>Work Log</h1>
<div id="entries">{{.Entries}}</div>
</body>
</html>
`))

// EntriesController serves the server-side board view of stored entries
type EntriesController struct {
	services *services.Services
}

// NewEntriesController creates a new entries controller
func NewEntriesController(services *services.Services) *EntriesController {
	return &EntriesController{
		services: services,
	}
}

// Index handles GET /. It projects the stored entries through the same
// renderer the client uses for its local mirror.
func (c *EntriesController) Index(w http.ResponseWriter, r *http.Request) {
	entries, err := c.services.Submission.GetAllEntries(r.Context())
	if err != nil {
		http.Error(w, "Failed to load work logs: "+err.Error(), http.StatusInternalServerError)
		return
	}

	rendered, err := client.RenderEntries(entries)
	if err != nil {
		http.Error(w, "Failed to render work logs: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	data := struct {
		Entries template.HTML
	}{
		Entries: template.HTML(rendered), // already escaped by the entry renderer
	}
	if err := boardTemplate.Execute(w, data); err != nil {
		http.Error(w, "Failed to render page: "+err.Error(), http.StatusInternalServerError)
	}
}
