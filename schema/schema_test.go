package schema

import (
	"encoding/json"
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestEmbeddedSchemasAreValidJSON verifies that all embedded schema files are valid JSON.
// This catches corrupted or malformed schema files at test time rather than runtime.
func TestEmbeddedSchemasAreValidJSON(t *testing.T) {
	t.Parallel()

	entries, err := fs.ReadDir(FS, ".")
	require.NoError(t, err)

	schemaCount := 0
	for _, entry := range entries {
		if !strings.HasSuffix(entry.Name(), ".schema.json") {
			continue
		}
		schemaCount++

		t.Run(entry.Name(), func(t *testing.T) {
			t.Parallel()

			data, err := FS.ReadFile(entry.Name())
			require.NoError(t, err)

			var v interface{}
			require.NoError(t, json.Unmarshal(data, &v), "%s is not valid JSON", entry.Name())

			_, ok := v.(map[string]interface{})
			assert.True(t, ok, "%s root is not an object", entry.Name())
		})
	}

	assert.NotZero(t, schemaCount, "no schema files found in embedded FS")
}
