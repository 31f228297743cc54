package render3d

import "github.com/1siamBot/softraster/engine/math3d"

// Projection is the perspective frustum used for every render pass.
type Projection struct {
	FOV  float64 // vertical, radians
	Near float64
	Far  float64
}

// DefaultProjection matches the demo scene's framing.
var DefaultProjection = Projection{FOV: 0.8, Near: 0.01, Far: 1.0}

// Stats counts what one render pass did.
type Stats struct {
	MeshesDrawn   int
	MeshesSkipped int // behind the camera
	FacesDrawn    int
	FacesCulled   int // no vertex on screen
}

// Renderer draws meshes seen through a camera into a Device.
type Renderer struct {
	Device     *Device
	Projection Projection

	// Wireframe outlines faces with depth-less Bresenham edges instead of
	// filling them.
	Wireframe bool

	projected []math3d.Vector3
}

func NewRenderer(d *Device) *Renderer {
	return &Renderer{Device: d, Projection: DefaultProjection}
}

// ProjectionMatrix returns the perspective matrix for the device's aspect.
func (r *Renderer) ProjectionMatrix() *math3d.Matrix {
	aspect := float64(r.Device.Width()) / float64(r.Device.Height())
	return math3d.PerspectiveFovLH(r.Projection.FOV, aspect, r.Projection.Near, r.Projection.Far)
}

// grayCycle hands out the flat per-face shade: 0.4, 0.5, ... 1.0, then
// back to 0.4.
type grayCycle struct{ step int }

func (g *grayCycle) next() float32 {
	v := 0.4 + 0.1*float32(g.step)
	g.step = (g.step + 1) % 7
	return v
}

// Render transforms and rasterizes meshes in order. A mesh with any vertex
// behind the camera is skipped whole for this pass. Nil meshes are ignored.
func (r *Renderer) Render(cam *Camera, meshes ...*Mesh) Stats {
	var st Stats
	view := cam.View()
	proj := r.ProjectionMatrix()

	for _, mesh := range meshes {
		if mesh == nil {
			continue
		}

		worldView := mesh.World().Mul(view)
		transform := worldView.Mul(proj)

		if !r.projectMesh(mesh, worldView, transform) {
			st.MeshesSkipped++
			continue
		}
		st.MeshesDrawn++

		var shade grayCycle
		for _, f := range mesh.Faces {
			a, b, c := r.projected[f.A], r.projected[f.B], r.projected[f.C]
			col := Gray(shade.next(), 0.5)

			if !r.Device.InBounds(a) && !r.Device.InBounds(b) && !r.Device.InBounds(c) {
				st.FacesCulled++
				continue
			}
			st.FacesDrawn++

			if r.Wireframe {
				r.Device.DrawLine(a.XY(), b.XY(), col)
				r.Device.DrawLine(b.XY(), c.XY(), col)
				r.Device.DrawLine(c.XY(), a.XY(), col)
				continue
			}
			r.Device.DrawTriangle(a, b, c, col)
		}
	}
	return st
}

// projectMesh fills r.projected with the screen position of every vertex,
// indexed like mesh.Vertices. It reports false as soon as a vertex lands
// behind the camera.
func (r *Renderer) projectMesh(mesh *Mesh, worldView, transform *math3d.Matrix) bool {
	r.projected = r.projected[:0]
	for _, v := range mesh.Vertices {
		if math3d.Transform(v, worldView).Z < 0 {
			return false
		}
		r.projected = append(r.projected, r.Device.Project(v, transform))
	}
	return true
}
