package client

import (
	"html/template"
	"sort"
	"strings"

	"github.com/chaiyapat/worklog/models"
)

// placeholderAvatar is shown when an entry has no stored file to preview.
const placeholderAvatar = `data:image/svg+xml;utf8,<svg xmlns=%22http://www.w3.org/2000/svg%22 width=%2264%22 height=%2264%22><rect width=%2264%22 height=%2264%22 fill=%22%23eef2ff%22/><text x=%222%22 y=%2240%22 font-size=%2212%22 fill=%22%236b7280%22>no image</text></svg>`

var entriesTemplate = template.Must(template.New("entries").Parse(`{{if not .}}<div class="empty">No entries yet</div>{{end}}{{range .}}<div class="entry">
  <div class="thumb"><img src="{{.AvatarURL}}" alt="profile"></div>
  <div class="meta">
    <div class="row1">
      <div class="name">{{.Name}}</div>
      <div class="time">{{.Submitted}}</div>
    </div>
    <div class="details">Date: {{.Date}} · {{.TimeIn}} → {{.TimeOut}}<br>{{.Details}}</div>
    <div class="location">{{.Location}}</div>
    {{if .FileURL}}<div class="file"><a href="{{.FileURL}}" target="_blank">View file</a></div>{{end}}
  </div>
</div>
{{end}}`))

// entryView is one entry prepared for the template
type entryView struct {
	models.WorkLogEntry
	AvatarURL template.URL // may be a data: URL, which the template package would otherwise reject
	Submitted string       // human-readable submission time
}

// RenderEntries projects entries into display markup, most recent
// submission first. It is a pure function of its input: all free-text
// fields are entity-escaped, entries without a stored file get a
// placeholder avatar and no view-file link, and an empty mirror renders a
// single placeholder message.
func RenderEntries(entries []models.WorkLogEntry) (string, error) {
	views := make([]entryView, len(entries))
	for i, e := range entries {
		avatar := placeholderAvatar
		if e.HasFile() {
			avatar = e.FileURL
		}
		views[i] = entryView{
			WorkLogEntry: e,
			AvatarURL:    template.URL(avatar),
			Submitted:    models.FormatDateTime(e.SubmittedAt()),
		}
	}

	// Newest first; submitTimestamp is the sole sort key
	sort.Slice(views, func(i, j int) bool {
		return views[i].SubmitTimestamp > views[j].SubmitTimestamp
	})

	var out strings.Builder
	if err := entriesTemplate.Execute(&out, views); err != nil {
		return "", err
	}
	return out.String(), nil
}
