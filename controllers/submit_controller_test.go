package controllers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chaiyapat/worklog/blobstore"
	"github.com/chaiyapat/worklog/client"
	"github.com/chaiyapat/worklog/database"
	"github.com/chaiyapat/worklog/models"
	"github.com/chaiyapat/worklog/repositories"
	"github.com/chaiyapat/worklog/services"
)

// setupServer wires the full adapter stack (sqlite, disk blob store,
// service, controllers) behind an httptest server.
func setupServer(t *testing.T) *httptest.Server {
	t.Helper()

	dbPath := "test_" + time.Now().Format("20060102150405.000000000") + ".db"
	t.Cleanup(func() {
		database.CloseDB()
		os.Remove(dbPath)
	})
	require.NoError(t, database.InitializeDatabase(dbPath))

	filesDir := t.TempDir()
	files, err := blobstore.NewDiskStore(filesDir, "/files/")
	require.NoError(t, err)

	repos := repositories.NewRepositories(database.GetDB())
	srvs := services.NewServices(repos, files)
	ctrl := NewControllers(srvs)

	r := chi.NewRouter()
	r.Get("/", ctrl.Entries.Index)
	r.Post("/submit", ctrl.Submit.Create)
	r.Handle("/files/*", http.StripPrefix("/files/", http.FileServer(http.Dir(filesDir))))

	server := httptest.NewServer(r)
	t.Cleanup(server.Close)
	return server
}

func postForm(t *testing.T, server *httptest.Server, params url.Values) *models.SubmitResponse {
	t.Helper()

	resp, err := server.Client().Post(
		server.URL+"/submit",
		"application/x-www-form-urlencoded;charset=UTF-8",
		strings.NewReader(params.Encode()),
	)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "application/json")

	var body models.SubmitResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return &body
}

func TestSubmitEndpointWithoutFile(t *testing.T) {
	server := setupServer(t)

	params := url.Values{}
	params.Set("date", "2024-01-01")
	params.Set("name", "Alice")
	params.Set("timeIn", "09:00")
	params.Set("timeOut", "17:00")
	params.Set("details", "")
	params.Set("location", "Office")
	params.Set("submitTimestamp", "1704103200000")
	params.Set("fileBase64", "")
	params.Set("fileName", "")
	params.Set("fileMime", "")

	body := postForm(t, server, params)
	assert.True(t, body.Success)
	assert.Equal(t, "Saved", body.Message)
	assert.Empty(t, body.FileURL)
}

func TestSubmitEndpointReportsDecodeFailureAsStructuredResponse(t *testing.T) {
	server := setupServer(t)

	params := url.Values{}
	params.Set("date", "2024-01-01")
	params.Set("name", "Alice")
	params.Set("timeIn", "09:00")
	params.Set("timeOut", "17:00")
	params.Set("submitTimestamp", "1704103200000")
	params.Set("fileBase64", "%%% not base64 %%%")
	params.Set("fileName", "badge.png")
	params.Set("fileMime", "image/png")

	body := postForm(t, server, params)
	assert.False(t, body.Success)
	assert.Contains(t, body.Message, "decode file")
}

// End-to-end: the real client pipeline against the real adapter stack.
func TestEndToEndSubmission(t *testing.T) {
	server := setupServer(t)

	mirror := client.NewMirror(&client.MemoryStorage{})
	pipeline := client.NewPipeline(server.URL+"/submit", server.Client(), mirror)

	form := models.WorkLogForm{
		Date:     "2024-01-01",
		Name:     "Alice",
		TimeIn:   "09:00",
		TimeOut:  "17:00",
		Details:  "",
		Location: "Office",
	}

	entry, err := pipeline.Submit(context.Background(), form, nil)
	require.NoError(t, err)
	assert.Empty(t, entry.FileURL)

	// Exactly one mirrored entry with the submitted fields
	entries := mirror.Load()
	require.Len(t, entries, 1)
	assert.Equal(t, "Alice", entries[0].Name)
	assert.Equal(t, "Office", entries[0].Location)
	assert.Empty(t, entries[0].FileURL)

	// Renderer shows it first with no view-file link
	rendered, err := client.RenderEntries(entries)
	require.NoError(t, err)
	assert.Contains(t, rendered, "Alice")
	assert.NotContains(t, rendered, "View file")

	// The server board shows the entry too
	resp, err := server.Client().Get(server.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()
	page, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(page), "Alice")
}

func TestEndToEndSubmissionWithFile(t *testing.T) {
	server := setupServer(t)

	mirror := client.NewMirror(&client.MemoryStorage{})
	pipeline := client.NewPipeline(server.URL+"/submit", server.Client(), mirror)

	encoded, err := client.EncodeFile(strings.NewReader("\x89PNG\r\n\x1a\n0000"), "", "badge.png")
	require.NoError(t, err)

	form := models.WorkLogForm{
		Date:    "2024-01-02",
		Name:    "Bob",
		TimeIn:  "10:00",
		TimeOut: "18:00",
	}

	entry, err := pipeline.Submit(context.Background(), form, encoded)
	require.NoError(t, err)
	require.NotEmpty(t, entry.FileURL)
	assert.Equal(t, "badge.png", entry.FileName)

	// The stored file is reachable through the serving route
	resp, err := server.Client().Get(server.URL + entry.FileURL)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "\x89PNG\r\n\x1a\n0000", string(data))
}

func TestEndToEndTransportFailureLeavesMirrorUntouched(t *testing.T) {
	// An unreachable adapter: started then torn down
	server := setupServer(t)
	endpoint := server.URL + "/submit"
	server.Close()

	mirror := client.NewMirror(&client.MemoryStorage{})
	pipeline := client.NewPipeline(endpoint, nil, mirror)

	form := models.WorkLogForm{
		Date:     "2024-01-01",
		Name:     "Alice",
		TimeIn:   "09:00",
		TimeOut:  "17:00",
		Location: "Office",
	}

	entry, err := pipeline.Submit(context.Background(), form, nil)
	assert.Nil(t, entry)

	var transportErr *client.TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.Empty(t, mirror.Load())

	// The caller still holds its form values for a manual retry
	assert.Equal(t, "Alice", form.Name)
}
