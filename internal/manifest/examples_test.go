package manifest

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The manifests under examples/ double as documentation; keep them
// loadable and clean.
func TestExampleManifests(t *testing.T) {
	paths, err := filepath.Glob(filepath.Join("..", "..", "examples", "*.yml"))
	require.NoError(t, err)
	require.NotEmpty(t, paths)

	for _, path := range paths {
		t.Run(filepath.Base(path), func(t *testing.T) {
			f, err := LoadFile(path)
			require.NoError(t, err)

			diags := Validate(f)
			assert.False(t, diags.HasErrors(), "%v", diags.Error())

			m, err := f.Build()
			require.NoError(t, err)
			assert.NotEmpty(t, m.Items)
		})
	}
}
