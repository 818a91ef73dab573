package walker

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTree() map[string]any {
	return map[string]any{
		"b": map[string]any{
			"items": []any{
				map[string]any{"x": 1.0},
				"leaf",
				[]any{map[string]any{"y": true}},
			},
		},
		"a": map[string]any{"c": "scalar"},
		"n": nil,
	}
}

func TestWalkPreOrder(t *testing.T) {
	var visited []string
	Walk(sampleTree(), func(path Path, node map[string]any) Action {
		visited = append(visited, path.String())
		return Continue
	})

	assert.Equal(t, []string{
		"",
		"/a",
		"/b",
		"/b/items/0",
		"/b/items/2/0",
	}, visited)
}

func TestWalkPathSegments(t *testing.T) {
	var got Path
	Walk(sampleTree(), func(path Path, node map[string]any) Action {
		if _, ok := node["y"]; ok {
			got = path
		}
		return Continue
	})

	require.Equal(t, Path{"b", "items", 2, 0}, got)
	assert.Equal(t, 4, got.Len())
	assert.Equal(t, 0, got.Last())
	_, isKey := got.LastKey()
	assert.False(t, isKey)
}

func TestWalkRootNotAMap(t *testing.T) {
	var count int
	Walk([]any{map[string]any{}, map[string]any{"k": map[string]any{}}}, func(path Path, node map[string]any) Action {
		count++
		return Continue
	})
	assert.Equal(t, 3, count)

	Walk("scalar", func(path Path, node map[string]any) Action {
		t.Fatal("scalars are not visited")
		return Continue
	})
	Walk(nil, nil)
}

func TestWalkObservesRenamedKeys(t *testing.T) {
	root := map[string]any{
		"GridData": map[string]any{"type": "object"},
	}

	var paths []string
	Walk(root, func(path Path, node map[string]any) Action {
		if path.Len() == 0 {
			for k, v := range node {
				delete(node, k)
				node[strings.ToLower(k)] = v
			}
		}
		paths = append(paths, path.String())
		return Continue
	})

	assert.Equal(t, []string{"", "/griddata"}, paths)
	assert.Contains(t, root, "griddata")
}

func TestWalkSkipChildren(t *testing.T) {
	var visited []string
	Walk(sampleTree(), func(path Path, node map[string]any) Action {
		visited = append(visited, path.String())
		if path.String() == "/b" {
			return SkipChildren
		}
		return Continue
	})
	assert.Equal(t, []string{"", "/a", "/b"}, visited)
}

func TestWalkStop(t *testing.T) {
	var visited []string
	Walk(sampleTree(), func(path Path, node map[string]any) Action {
		visited = append(visited, path.String())
		if path.String() == "/b/items/0" {
			return Stop
		}
		return Continue
	})
	assert.Equal(t, []string{"", "/a", "/b", "/b/items/0"}, visited)
}

func TestWalkRetainedPathsAreNotAliased(t *testing.T) {
	root := map[string]any{
		"p": map[string]any{"a": map[string]any{}, "b": map[string]any{}},
	}
	var retained []Path
	Walk(root, func(path Path, node map[string]any) Action {
		retained = append(retained, path)
		return Continue
	})
	require.Len(t, retained, 4)
	assert.Equal(t, Path{"p", "a"}, retained[2])
	assert.Equal(t, Path{"p", "b"}, retained[3])
}

func TestTransformLeavesInputUntouched(t *testing.T) {
	in := sampleTree()
	out := Transform(in, func(path Path, node map[string]any) Action {
		node["visited"] = true
		return Continue
	})

	assert.NotContains(t, in, "visited")
	assert.NotContains(t, in["a"].(map[string]any), "visited")

	outMap, ok := out.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, true, outMap["visited"])
	assert.Equal(t, true, outMap["a"].(map[string]any)["visited"])
}

func TestDeepCopy(t *testing.T) {
	in := sampleTree()
	cp := DeepCopy(in).(map[string]any)
	assert.Equal(t, in, cp)

	cp["b"].(map[string]any)["items"].([]any)[0].(map[string]any)["x"] = 2.0
	assert.Equal(t, 1.0, in["b"].(map[string]any)["items"].([]any)[0].(map[string]any)["x"])

	assert.Equal(t, "s", DeepCopy("s"))
	assert.Nil(t, DeepCopy(nil))
}

func TestPathString(t *testing.T) {
	tests := []struct {
		name string
		path Path
		want string
	}{
		{name: "root", path: nil, want: ""},
		{name: "keys", path: Path{"schemas", "GridData"}, want: "/schemas/GridData"},
		{name: "index", path: Path{"items", 3}, want: "/items/3"},
		{name: "escaped", path: Path{"a/b", "c~d"}, want: "/a~1b/c~0d"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.path.String())
		})
	}
}

func TestPathLast(t *testing.T) {
	var root Path
	assert.Nil(t, root.Last())
	_, ok := root.LastKey()
	assert.False(t, ok)

	key, ok := Path{"x", "properties"}.LastKey()
	assert.True(t, ok)
	assert.Equal(t, "properties", key)
}

func TestActionString(t *testing.T) {
	assert.Equal(t, "Continue", Continue.String())
	assert.Equal(t, "SkipChildren", SkipChildren.String())
	assert.Equal(t, "Stop", Stop.String())
	assert.Equal(t, "Action(7)", Action(7).String())
	assert.True(t, Stop.IsValid())
	assert.False(t, Action(-1).IsValid())
}
