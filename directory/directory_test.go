package directory

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/discoverytools/discoveryerrors"
	"github.com/erraggy/discoverytools/loader"
)

const directoryList = `{
  "kind": "discovery#directoryList",
  "discoveryVersion": "v1",
  "items": [
    {
      "kind": "discovery#directoryItem",
      "id": "sheets:v4",
      "name": "sheets",
      "version": "v4",
      "title": "Google Sheets API",
      "discoveryRestUrl": "https://sheets.googleapis.com/$discovery/rest?version=v4",
      "preferred": true
    },
    {
      "kind": "discovery#directoryItem",
      "id": "drive:v3",
      "name": "drive",
      "version": "v3",
      "title": "Google Drive API",
      "description": "The Google Drive API allows clients to access resources from Google Drive.",
      "preferred": true
    },
    {
      "kind": "discovery#directoryItem",
      "id": "drive:v2",
      "name": "drive",
      "version": "v2",
      "title": "Google Drive API",
      "preferred": false
    }
  ]
}`

type recorded struct {
	path      string
	name      string
	preferred string
	userAgent string
}

func newServer(t *testing.T, status int, body string) (*httptest.Server, *recorded) {
	t.Helper()
	rec := &recorded{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec.path = r.URL.Path
		rec.name = r.URL.Query().Get("name")
		rec.preferred = r.URL.Query().Get("preferred")
		rec.userAgent = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, rec
}

func newClient(t *testing.T, srv *httptest.Server, opts ...Option) *Client {
	t.Helper()
	opts = append([]Option{
		WithEndpoint(srv.URL + "/discovery/v1/"),
		WithHTTPClient(srv.Client()),
	}, opts...)
	c, err := New(context.Background(), opts...)
	require.NoError(t, err)
	return c
}

func TestList(t *testing.T) {
	srv, rec := newServer(t, http.StatusOK, directoryList)
	c := newClient(t, srv)

	entries, err := c.List(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "/discovery/v1/apis", rec.path)
	assert.Empty(t, rec.name)
	assert.Empty(t, rec.preferred)

	require.Len(t, entries, 3)
	assert.Equal(t, Entry{Name: "drive", Version: "v2", Title: "Google Drive API"}, entries[0])
	assert.Equal(t, "v3", entries[1].Version)
	assert.True(t, entries[1].Preferred)
	assert.NotEmpty(t, entries[1].Description)
	assert.Equal(t, "sheets", entries[2].Name)
	assert.Equal(t, "https://sheets.googleapis.com/$discovery/rest?version=v4", entries[2].DiscoveryURL)
	assert.Equal(t, loader.NewIdentity("sheets", "v4"), entries[2].Identity())
}

func TestListFilters(t *testing.T) {
	srv, rec := newServer(t, http.StatusOK, `{"items": []}`)
	c := newClient(t, srv)

	entries, err := c.List(context.Background(), WithName("drive"), PreferredOnly())
	require.NoError(t, err)
	assert.Empty(t, entries)
	assert.Equal(t, "drive", rec.name)
	assert.Equal(t, "true", rec.preferred)
}

func TestListUserAgent(t *testing.T) {
	srv, rec := newServer(t, http.StatusOK, `{}`)
	c := newClient(t, srv, WithUserAgent("directory-test/1.0"))

	_, err := c.List(context.Background())
	require.NoError(t, err)
	assert.Contains(t, rec.userAgent, "directory-test/1.0")
}

func TestListHTTPError(t *testing.T) {
	srv, _ := newServer(t, http.StatusServiceUnavailable, `{"error": {"code": 503, "message": "backend unavailable"}}`)
	c := newClient(t, srv)

	_, err := c.List(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, discoveryerrors.ErrFetch)

	var fetchErr *discoveryerrors.FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, http.StatusServiceUnavailable, fetchErr.StatusCode)
	assert.Equal(t, srv.URL+"/discovery/v1/apis", fetchErr.URL)
}
