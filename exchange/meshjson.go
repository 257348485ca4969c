package exchange

import (
	"io"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// MeshData is the JSON mesh exchange format: the index and attribute
// tuples crossing the core boundary, verbatim.
type MeshData struct {
	Indices   []uint32  `json:"indices"`
	Positions []float32 `json:"positions"`
	Normals   []float32 `json:"normals,omitempty"`
}

// Read a JSON mesh.
func ReadJSON(reader io.Reader) (*MeshData, error) {
	var data MeshData
	if err := json.NewDecoder(reader).Decode(&data); err != nil {
		return nil, err
	}
	return &data, nil
}

// Write a JSON mesh.
func WriteJSON(writer io.Writer, data *MeshData) error {
	return json.NewEncoder(writer).Encode(data)
}
