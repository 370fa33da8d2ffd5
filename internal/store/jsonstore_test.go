package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON_CreatesDirsAndIndents(t *testing.T) {
	st := NewJSONStore(t.TempDir())
	rel := filepath.Join("reports", "2016", "keepers.json")

	require.NoError(t, st.WriteJSON(rel, map[string]int{"a": 1}))

	b, err := os.ReadFile(st.Path(rel))
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"a\": 1\n}\n", string(b))

	var back map[string]int
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, 1, back["a"])
}

func TestWriteJSON_Overwrites(t *testing.T) {
	st := NewJSONStore(t.TempDir())
	require.NoError(t, st.WriteJSON("k.json", []int{1, 2, 3}))
	require.NoError(t, st.WriteJSON("k.json", []int{4}))

	b, err := os.ReadFile(st.Path("k.json"))
	require.NoError(t, err)
	assert.Equal(t, "[\n  4\n]\n", string(b))
}
