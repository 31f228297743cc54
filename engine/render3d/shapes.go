package render3d

import (
	"math"

	"github.com/1siamBot/softraster/engine/math3d"
)

// --- Primitive generators ---

func (m *Mesh) setQuad(fi, a, b, c, d int) {
	m.Faces[fi] = Face{a, b, c}
	m.Faces[fi+1] = Face{a, c, d}
}

// NewBox returns a w x h x d box centred on the origin.
func NewBox(name string, w, h, d float64) *Mesh {
	m := NewMesh(name, 8, 12)
	hw, hh, hd := w/2, h/2, d/2

	copy(m.Vertices, []math3d.Vector3{
		{X: -hw, Y: -hh, Z: -hd}, {X: hw, Y: -hh, Z: -hd}, {X: hw, Y: hh, Z: -hd}, {X: -hw, Y: hh, Z: -hd},
		{X: -hw, Y: -hh, Z: hd}, {X: hw, Y: -hh, Z: hd}, {X: hw, Y: hh, Z: hd}, {X: -hw, Y: hh, Z: hd},
	})

	quads := [6][4]int{
		{0, 1, 2, 3}, // front
		{5, 4, 7, 6}, // back
		{4, 0, 3, 7}, // left
		{1, 5, 6, 2}, // right
		{3, 2, 6, 7}, // top
		{4, 5, 1, 0}, // bottom
	}
	for i, q := range quads {
		m.setQuad(i*2, q[0], q[1], q[2], q[3])
	}
	return m
}

// NewCylinder returns a Y-aligned capped cylinder. segments is raised to 6.
func NewCylinder(name string, radius, height float64, segments int) *Mesh {
	if segments < 6 {
		segments = 6
	}
	// rings: top at [0,segments), bottom at [segments,2*segments), then the cap centres
	top, bot := 2*segments, 2*segments+1
	m := NewMesh(name, 2*segments+2, 4*segments)
	hh := height / 2

	for i := 0; i < segments; i++ {
		a := float64(i) / float64(segments) * 2 * math.Pi
		x, z := radius*math.Cos(a), radius*math.Sin(a)
		m.Vertices[i] = math3d.V3(x, hh, z)
		m.Vertices[segments+i] = math3d.V3(x, -hh, z)
	}
	m.Vertices[top] = math3d.V3(0, hh, 0)
	m.Vertices[bot] = math3d.V3(0, -hh, 0)

	fi := 0
	for i := 0; i < segments; i++ {
		j := (i + 1) % segments
		m.setQuad(fi, segments+i, segments+j, j, i)
		fi += 2
		m.Faces[fi] = Face{top, i, j}
		m.Faces[fi+1] = Face{bot, segments + j, segments + i}
		fi += 2
	}
	return m
}

// NewCone returns a Y-aligned cone with its tip up. segments is raised to 4.
func NewCone(name string, radius, height float64, segments int) *Mesh {
	if segments < 4 {
		segments = 4
	}
	tip, bot := segments, segments+1
	m := NewMesh(name, segments+2, 2*segments)
	hh := height / 2

	for i := 0; i < segments; i++ {
		a := float64(i) / float64(segments) * 2 * math.Pi
		m.Vertices[i] = math3d.V3(radius*math.Cos(a), -hh, radius*math.Sin(a))
	}
	m.Vertices[tip] = math3d.V3(0, hh, 0)
	m.Vertices[bot] = math3d.V3(0, -hh, 0)

	for i := 0; i < segments; i++ {
		j := (i + 1) % segments
		m.Faces[2*i] = Face{i, j, tip}
		m.Faces[2*i+1] = Face{bot, j, i}
	}
	return m
}
