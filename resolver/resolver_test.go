package resolver

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/discoverytools/discoveryerrors"
	"github.com/erraggy/discoverytools/internal/testutil"
	"github.com/erraggy/discoverytools/loader"
)

var peopleV1 = loader.NewIdentity("people", "v1")

func newLoader(t *testing.T) (*loader.Loader, *atomic.Int32) {
	t.Helper()
	var calls atomic.Int32
	f := loader.FetcherFunc(func(_ context.Context, url string) (int, []byte, error) {
		calls.Add(1)
		if url != peopleV1.URL(loader.DefaultHost) {
			return http.StatusNotFound, nil, nil
		}
		return http.StatusOK, []byte(testutil.PeopleV1Document), nil
	})
	return loader.New(loader.WithFetcher(f)), &calls
}

func TestResolve(t *testing.T) {
	l, calls := newLoader(t)
	r := New(l, peopleV1)

	schema, err := r.Resolve("discovery://schema/person")
	require.NoError(t, err)
	assert.Equal(t, "person", schema["id"])

	set, err := l.Load(context.Background(), peopleV1)
	require.NoError(t, err)
	schema["marker"] = 1
	assert.Equal(t, 1, set["person"]["marker"], "resolved schemas are the cached definitions")

	_, err = r.Resolve("discovery://schema/location")
	require.NoError(t, err)
	assert.Equal(t, int32(1), calls.Load())
}

func TestResolveNotFound(t *testing.T) {
	l, _ := newLoader(t)
	r := New(l, peopleV1)

	_, err := r.Resolve("discovery://schema/not_found")
	require.Error(t, err)
	assert.ErrorIs(t, err, discoveryerrors.ErrSchemaNotFound)

	var notFound *discoveryerrors.SchemaNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "not_found", notFound.Name)
	assert.Equal(t, "schema for discovery://schema/not_found not found", err.Error())
}

func TestResolveUnnormalizedName(t *testing.T) {
	l, _ := newLoader(t)

	_, err := New(l, peopleV1).Resolve("discovery://schema/Person")
	assert.ErrorIs(t, err, discoveryerrors.ErrSchemaNotFound)
}

func TestResolveInvalidURI(t *testing.T) {
	l, calls := newLoader(t)

	_, err := New(l, peopleV1).Resolve("discovery://schema/%zz")
	require.Error(t, err)
	assert.ErrorIs(t, err, discoveryerrors.ErrSchemaNotFound)
	assert.Equal(t, int32(0), calls.Load())
}

func TestResolveLoadFailure(t *testing.T) {
	l, _ := newLoader(t)

	_, err := New(l, loader.NewIdentity("missing", "v1")).Resolve("discovery://schema/person")
	require.Error(t, err)
	assert.ErrorIs(t, err, discoveryerrors.ErrFetch)
	assert.NotErrorIs(t, err, discoveryerrors.ErrSchemaNotFound)
}

func TestResolveLogs(t *testing.T) {
	l, _ := newLoader(t)
	var buf bytes.Buffer
	logger := loader.NewSlogAdapter(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	_, err := New(l, peopleV1, WithLogger(logger)).Resolve("discovery://schema/location")
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `msg="reading schema"`)
	assert.Contains(t, buf.String(), "schema=location")
	assert.Contains(t, buf.String(), "api=people_v1")
}

func TestResolveUsesContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	f := loader.FetcherFunc(func(ctx context.Context, _ string) (int, []byte, error) {
		return 0, nil, ctx.Err()
	})
	r := New(loader.New(loader.WithFetcher(f)), peopleV1, WithContext(ctx))

	_, err := r.Resolve("discovery://schema/person")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLoadImplementsURLLoader(t *testing.T) {
	l, _ := newLoader(t)
	r := New(l, peopleV1)

	doc, err := r.Load("discovery://schema/people")
	require.NoError(t, err)
	assert.IsType(t, map[string]any{}, doc)

	doc, err = r.Load("discovery://schema/nobody")
	assert.Nil(t, doc)
	assert.ErrorIs(t, err, discoveryerrors.ErrSchemaNotFound)
}

func TestSchemaName(t *testing.T) {
	tests := []struct {
		uri  string
		want string
	}{
		{uri: "discovery://schema/grid_data", want: "grid_data"},
		{uri: "discovery://schema/$root", want: "$root"},
		{uri: "/person", want: "person"},
		{uri: "person", want: "person"},
		{uri: "urn:person", want: "person"},
		{uri: "discovery://schema/person#/properties/name", want: "person"},
	}

	for _, tt := range tests {
		t.Run(tt.uri, func(t *testing.T) {
			got, err := SchemaName(tt.uri)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIdentity(t *testing.T) {
	l, _ := newLoader(t)
	assert.Equal(t, peopleV1, New(l, peopleV1).Identity())
}
