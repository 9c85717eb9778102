package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleManifest = `
module: _core
docstring: Core wrappers.
prefix: wx
imports:
  - _adv
items:
  - kind: define
    name: wxMAJOR_VERSION
    value: "4"
  - kind: class
    name: wxWindow
    bases: [wxEvtHandler]
    members:
      - kind: method
        name: wxWindow
        ctor: true
        args: (parent, id=-1)
      - kind: method
        name: SetSize
        docstring: Set the window size.
        args: (size)
        overloads:
          - args: (w, h)
`

func TestParse(t *testing.T) {
	f, err := Parse([]byte(sampleManifest))
	require.NoError(t, err)

	assert.Equal(t, "_core", f.Module)
	assert.Equal(t, "Core wrappers.", f.Docstring)
	assert.Equal(t, "wx", f.Prefix)
	assert.Equal(t, []string{"_adv"}, f.Imports)
	require.Len(t, f.Items, 2)

	class := f.Items[1]
	assert.Equal(t, KindClass, class.Kind)
	assert.Equal(t, []string{"wxEvtHandler"}, class.Bases)
	require.Len(t, class.Members, 2)
	assert.True(t, class.Members[0].Ctor)
	require.Len(t, class.Members[1].Overloads, 1)
	assert.Equal(t, "(w, h)", class.Members[1].Overloads[0].Args)
}

func TestParse_PackageDefaultsToPrefix(t *testing.T) {
	f, err := Parse([]byte("module: _core\nprefix: wx\n"))
	require.NoError(t, err)
	assert.Equal(t, "wx", f.Package)

	f, err = Parse([]byte("module: _core\nprefix: wx\npackage: wxpy\n"))
	require.NoError(t, err)
	assert.Equal(t, "wxpy", f.Package)
}

func TestParse_InvalidYAML(t *testing.T) {
	_, err := Parse([]byte("module: [unclosed"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse manifest YAML")
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "core.yml")
	require.NoError(t, os.WriteFile(path, []byte(sampleManifest), 0o644))

	f, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "_core", f.Module)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "absent.yml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read manifest")
}

func TestMarshal_RoundTrip(t *testing.T) {
	f, err := Parse([]byte(sampleManifest))
	require.NoError(t, err)

	data, err := Marshal(f)
	require.NoError(t, err)

	again, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, f, again)
}
