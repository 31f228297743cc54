// Package meshio loads meshes from Babylon JSON scene files.
package meshio

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/1siamBot/softraster/engine/math3d"
	"github.com/1siamBot/softraster/engine/render3d"
)

var (
	// ErrUVCount is returned for a mesh whose uvCount is not 0, 1 or 2.
	ErrUVCount = errors.New("invalid uvCount")
	// ErrFaceIndex is returned for a face that points past the vertex array.
	ErrFaceIndex = errors.New("face index out of range")
)

type babylonFile struct {
	Meshes []babylonMesh `json:"meshes"`
}

type babylonMesh struct {
	Name     string    `json:"name"`
	Vertices []float64 `json:"vertices"`
	Indices  []int     `json:"indices"`
	UVCount  int       `json:"uvCount"`
	Position []float64 `json:"position"`
	Rotation []float64 `json:"rotation"`
}

// vertexStride is the number of floats per vertex: position and normal,
// plus two per texture coordinate set.
func vertexStride(uvCount int) (int, error) {
	switch uvCount {
	case 0:
		return 6, nil
	case 1:
		return 8, nil
	case 2:
		return 10, nil
	}
	return 0, fmt.Errorf("%w: %d", ErrUVCount, uvCount)
}

// DecodeBabylon reads every mesh of a Babylon scene. Only positions and
// triangle indices are kept; normals and texture coordinates are skipped.
func DecodeBabylon(r io.Reader) ([]*render3d.Mesh, error) {
	var f babylonFile
	if err := json.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("decode babylon: %w", err)
	}

	meshes := make([]*render3d.Mesh, 0, len(f.Meshes))
	for i, bm := range f.Meshes {
		m, err := bm.mesh()
		if err != nil {
			return nil, fmt.Errorf("mesh %d %q: %w", i, bm.Name, err)
		}
		meshes = append(meshes, m)
	}
	return meshes, nil
}

func (bm babylonMesh) mesh() (*render3d.Mesh, error) {
	stride, err := vertexStride(bm.UVCount)
	if err != nil {
		return nil, err
	}
	vertexCount := len(bm.Vertices) / stride
	faceCount := len(bm.Indices) / 3

	m := render3d.NewMesh(bm.Name, vertexCount, faceCount)
	for j := range m.Vertices {
		v := bm.Vertices[j*stride:]
		m.Vertices[j] = math3d.V3(v[0], v[1], v[2])
	}
	for j := range m.Faces {
		a, b, c := bm.Indices[j*3], bm.Indices[j*3+1], bm.Indices[j*3+2]
		for _, idx := range [3]int{a, b, c} {
			if idx < 0 || idx >= vertexCount {
				return nil, fmt.Errorf("%w: face %d index %d, %d vertices", ErrFaceIndex, j, idx, vertexCount)
			}
		}
		m.Faces[j] = render3d.Face{A: a, B: b, C: c}
	}

	if m.Position, err = triple("position", bm.Position); err != nil {
		return nil, err
	}
	if m.Rotation, err = triple("rotation", bm.Rotation); err != nil {
		return nil, err
	}
	return m, nil
}

// triple reads an optional three-component vector.
func triple(field string, v []float64) (math3d.Vector3, error) {
	switch len(v) {
	case 0:
		return math3d.Zero3, nil
	case 3:
		return math3d.V3(v[0], v[1], v[2]), nil
	}
	return math3d.Zero3, fmt.Errorf("%s has %d components, want 3", field, len(v))
}

// LoadFile reads and decodes a Babylon file. The context is checked before
// and after the read.
func LoadFile(ctx context.Context, path string) ([]*render3d.Mesh, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load scene: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	meshes, err := DecodeBabylon(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("load scene %s: %w", path, err)
	}
	return meshes, nil
}

// LoadScene assembles a scene: the built-in cube grid when cubeGrid is set,
// then the meshes of file when it is not empty, then extra.
func LoadScene(ctx context.Context, file string, cubeGrid bool, extra ...*render3d.Mesh) ([]*render3d.Mesh, error) {
	var scene []*render3d.Mesh
	if cubeGrid {
		scene = append(scene, render3d.NewCubeGrid()...)
	}
	if file != "" {
		meshes, err := LoadFile(ctx, file)
		if err != nil {
			return nil, err
		}
		scene = append(scene, meshes...)
	}
	return append(scene, extra...), nil
}
