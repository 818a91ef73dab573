package mcpserver

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func testConfig() *serverConfig {
	return &serverConfig{
		Host:      "googleapis.com",
		ListLimit: 100,
		MaxLimit:  1000,
	}
}

func TestPaginate(t *testing.T) {
	items := []int{0, 1, 2, 3, 4}

	tests := []struct {
		name   string
		offset int
		limit  int
		want   []int
	}{
		{name: "default limit returns all when under 100", offset: 0, limit: 0, want: []int{0, 1, 2, 3, 4}},
		{name: "explicit limit", offset: 0, limit: 2, want: []int{0, 1}},
		{name: "offset only", offset: 2, limit: 0, want: []int{2, 3, 4}},
		{name: "offset and limit", offset: 1, limit: 2, want: []int{1, 2}},
		{name: "offset beyond end", offset: 5, limit: 0, want: nil},
		{name: "negative offset", offset: -1, limit: 0, want: nil},
		{name: "overflowing limit", offset: 3, limit: math.MaxInt, want: []int{3, 4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, paginate(testConfig(), items, tt.offset, tt.limit))
		})
	}
}

func TestPaginate_DefaultLimit(t *testing.T) {
	items := make([]int, 250)
	got := paginate(testConfig(), items, 0, 0)
	assert.Len(t, got, 100, "default limit should cap at ListLimit")
}

func TestPaginate_MaxLimitCap(t *testing.T) {
	c := testConfig()
	c.MaxLimit = 10
	got := paginate(c, make([]int, 50), 0, 40)
	assert.Len(t, got, 10, "limit should be capped at MaxLimit")
}

func TestSanitizeError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil error returns empty string", err: nil, want: ""},
		{
			name: "strips absolute path",
			err:  fmt.Errorf("failed to open /home/user/secret/object.json: no such file"),
			want: "failed to open <path>: no such file",
		},
		{
			name: "preserves URLs",
			err:  fmt.Errorf("HTTP error '404' loading schemas from 'https://nope.googleapis.com/$discovery/rest?version=v1'"),
			want: "HTTP error '404' loading schemas from 'https://nope.googleapis.com/$discovery/rest?version=v1'",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sanitizeError(tt.err))
		})
	}
}

func TestGlob(t *testing.T) {
	assert.NoError(t, validateGlobPattern(""))
	assert.NoError(t, validateGlobPattern("grid_data"))
	assert.NoError(t, validateGlobPattern("*_data"))
	assert.Error(t, validateGlobPattern("[grid"))

	assert.True(t, matchGlob("", "grid_data"))
	assert.True(t, matchGlob("*_data", "grid_data"))
	assert.True(t, matchGlob("grid_data", "grid_data"))
	assert.False(t, matchGlob("grid", "grid_data"))
	assert.False(t, matchGlob("row_*", "grid_data"))
}
