package render3d

import (
	"fmt"

	"github.com/1siamBot/softraster/engine/math3d"
)

// Face is a triangle given by three indices into Mesh.Vertices
type Face struct {
	A, B, C int
}

// Mesh is a fixed-size indexed triangle mesh placed in the world by
// Position and Rotation (radians; Z is yaw, Y is pitch, X is roll).
type Mesh struct {
	Name     string
	Position math3d.Vector3
	Rotation math3d.Vector3
	Vertices []math3d.Vector3
	Faces    []Face
}

// NewMesh allocates a mesh with room for exactly vertexCount vertices and
// faceCount faces.
func NewMesh(name string, vertexCount, faceCount int) *Mesh {
	return &Mesh{
		Name:     name,
		Vertices: make([]math3d.Vector3, vertexCount),
		Faces:    make([]Face, faceCount),
	}
}

// World returns the mesh's object-to-world matrix.
func (m *Mesh) World() *math3d.Matrix {
	rot := math3d.RotationYawPitchRoll(m.Rotation.Z, m.Rotation.Y, m.Rotation.X)
	return rot.Mul(math3d.Translation(m.Position.X, m.Position.Y, m.Position.Z))
}

// NewCube returns the 2x2x2 cube centred on the origin.
func NewCube(name string) *Mesh {
	m := NewMesh(name, 8, 12)

	m.Vertices[0] = math3d.V3(-1, 1, 1)
	m.Vertices[1] = math3d.V3(1, 1, 1)
	m.Vertices[2] = math3d.V3(-1, -1, 1)
	m.Vertices[3] = math3d.V3(1, -1, 1)
	m.Vertices[4] = math3d.V3(-1, 1, -1)
	m.Vertices[5] = math3d.V3(1, 1, -1)
	m.Vertices[6] = math3d.V3(1, -1, -1)
	m.Vertices[7] = math3d.V3(-1, -1, -1)

	copy(m.Faces, []Face{
		{0, 1, 2}, {1, 2, 3}, // front
		{1, 3, 6}, {1, 5, 6}, // right
		{0, 1, 4}, {1, 4, 5}, // top
		{2, 3, 7}, {3, 6, 7}, // bottom
		{0, 2, 7}, {0, 4, 7}, // left
		{4, 5, 6}, {4, 6, 7}, // back
	})
	return m
}

// NewCubeGrid returns four cubes laid out 2x2, three units apart, fifty
// units down +Z.
func NewCubeGrid() []*Mesh {
	meshes := make([]*Mesh, 0, 4)
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			c := NewCube(fmt.Sprintf("Cube%d", i*2+j))
			c.Position = math3d.V3(float64(3*i), float64(3*j), 50)
			meshes = append(meshes, c)
		}
	}
	return meshes
}
