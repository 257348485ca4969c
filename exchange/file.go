package exchange

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

var (
	ErrFileTypeNotSupported  = errors.New("file type not supported")
	ErrExtensionNotSpecified = errors.New("extension not specified")
)

// Load index and attribute tuples from a file, dispatching on the
// extension. Supported types are .obj (optionally gzipped) and .json.
func Load(path string) (*MeshData, error) {
	switch extension(path) {
	case "":
		return nil, ErrExtensionNotSpecified
	case ".obj":
		reader, err := ReadOBJFromPath(path)
		if err != nil {
			return nil, err
		}
		return &MeshData{
			Indices:   reader.Indices(),
			Positions: reader.Positions(),
			Normals:   reader.Normals(),
		}, nil
	case ".json":
		file, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer file.Close()
		return ReadJSON(file)
	}

	return nil, ErrFileTypeNotSupported
}

// Save index and attribute tuples to a file, dispatching on the
// extension. Supported types are .obj and .json.
func Save(path string, data *MeshData) error {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" {
		return ErrExtensionNotSpecified
	}
	if ext != ".obj" && ext != ".json" {
		return ErrFileTypeNotSupported
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	if ext == ".obj" {
		return WriteOBJ(file, data.Indices, data.Positions, data.Normals)
	}
	return WriteJSON(file, data)
}

// Get the lowercase extension, looking through a trailing .gz.
func extension(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".gz" {
		ext = strings.ToLower(filepath.Ext(strings.TrimSuffix(path, filepath.Ext(path))))
	}
	return ext
}
