package exchange

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Test the JSON mesh codec round trips.
func TestJSONRoundTrip(t *testing.T) {
	data := &MeshData{
		Indices:   []uint32{0, 1, 2},
		Positions: []float32{0, 0, 0, 1, 0, 0, 0, 1, 0},
		Normals:   []float32{0, 0, 1, 0, 0, 1, 0, 0, 1},
	}

	var buffer bytes.Buffer
	assert.NoError(t, WriteJSON(&buffer, data))

	decoded, err := ReadJSON(&buffer)
	assert.NoError(t, err)
	assert.Equal(t, data, decoded)
}

// Test decoding a hand-written document.
func TestReadJSON(t *testing.T) {
	source := `{"indices": [0, 1, 2], "positions": [0, 0, 0, 1, 0, 0, 0, 1, 0]}`

	data, err := ReadJSON(strings.NewReader(source))
	assert.NoError(t, err)
	assert.Equal(t, []uint32{0, 1, 2}, data.Indices)
	assert.Len(t, data.Positions, 9)
	assert.Nil(t, data.Normals)
}

// Test saving and loading dispatch on the extension.
func TestSaveAndLoad(t *testing.T) {
	data := &MeshData{
		Indices:   []uint32{0, 1, 2},
		Positions: []float32{0, 0, 0, 1, 0, 0, 0, 1, 0},
	}

	for _, name := range []string{"mesh.obj", "mesh.json"} {
		path := filepath.Join(t.TempDir(), name)
		assert.NoError(t, Save(path, data))

		loaded, err := Load(path)
		assert.NoError(t, err)
		assert.Equal(t, data.Indices, loaded.Indices)
		assert.Equal(t, data.Positions, loaded.Positions)
	}
}

// Test unsupported and missing extensions fail.
func TestSaveAndLoadErrors(t *testing.T) {
	data := &MeshData{Positions: []float32{0, 0, 0}}

	assert.ErrorIs(t, Save(filepath.Join(t.TempDir(), "mesh.stl"), data), ErrFileTypeNotSupported)
	assert.ErrorIs(t, Save(filepath.Join(t.TempDir(), "mesh"), data), ErrExtensionNotSpecified)

	_, err := Load(filepath.Join(t.TempDir(), "mesh.stl"))
	assert.ErrorIs(t, err, ErrFileTypeNotSupported)

	_, err = Load(filepath.Join(t.TempDir(), "mesh"))
	assert.ErrorIs(t, err, ErrExtensionNotSpecified)
}
