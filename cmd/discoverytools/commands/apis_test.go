package commands

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const directoryList = `{
  "kind": "discovery#directoryList",
  "items": [
    {"name": "sheets", "version": "v4", "title": "Google Sheets API", "preferred": true},
    {"name": "drive", "version": "v3", "title": "Google Drive API", "preferred": true}
  ]
}`

type lastRequest struct {
	mu  sync.Mutex
	url *url.URL
}

func (l *lastRequest) URL() *url.URL {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.url
}

func newDirectoryServer(t *testing.T, status int) (*httptest.Server, *lastRequest) {
	t.Helper()
	last := &lastRequest{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		last.mu.Lock()
		last.url = r.URL
		last.mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(directoryList))
	}))
	t.Cleanup(srv.Close)
	return srv, last
}

func TestSetupAPIsFlags(t *testing.T) {
	fs, flags := SetupAPIsFlags()

	require.NoError(t, fs.Parse([]string{"--name", "drive", "--preferred", "--format", "yaml"}))
	assert.Equal(t, "drive", flags.Name)
	assert.True(t, flags.Preferred)
	assert.Equal(t, FormatYAML, flags.Format)
	assert.Empty(t, flags.Endpoint)
}

func TestHandleAPIs_Errors(t *testing.T) {
	err := HandleAPIs([]string{"extra"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "takes no arguments")

	err = HandleAPIs([]string{"--format", "xml"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}

func TestHandleAPIs_Text(t *testing.T) {
	srv, last := newDirectoryServer(t, http.StatusOK)

	out := captureStdout(t, func() {
		require.NoError(t, HandleAPIs([]string{"--endpoint", srv.URL + "/discovery/v1/", "--preferred"}))
	})
	assert.Equal(t, "/discovery/v1/apis", last.URL().Path)
	assert.Equal(t, "true", last.URL().Query().Get("preferred"))
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "Google Drive API")
	assert.Contains(t, out, "sheets")
}

func TestHandleAPIs_JSON(t *testing.T) {
	srv, last := newDirectoryServer(t, http.StatusOK)

	out := captureStdout(t, func() {
		require.NoError(t, HandleAPIs([]string{"--endpoint", srv.URL + "/discovery/v1/", "--name", "drive", "--format", "json"}))
	})
	assert.Equal(t, "drive", last.URL().Query().Get("name"))
	assert.Contains(t, out, `"name": "drive"`)
}

func TestHandleAPIs_ServerError(t *testing.T) {
	srv, _ := newDirectoryServer(t, http.StatusServiceUnavailable)

	err := HandleAPIs([]string{"--endpoint", srv.URL + "/discovery/v1/"})
	require.Error(t, err)
}
