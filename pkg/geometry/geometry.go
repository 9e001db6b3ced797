// Package geometry builds the CPU-side meshes the viewer uploads to the GPU.
package geometry

import (
	gomath "math"

	"github.com/Faultbox/meshview/pkg/math"
)

// Vertex is a position/normal pair, tightly packed for interleaved upload.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
}

// VertexStride is the byte size of one Vertex.
const VertexStride = 6 * 4

// Mesh is an indexed triangle list.
type Mesh struct {
	Name     string
	Vertices []Vertex
	Indices  []uint32
}

// Triangles returns the number of triangles in the mesh.
func (m *Mesh) Triangles() int {
	return len(m.Indices) / 3
}

// addQuad appends a flat-shaded quad (two triangles) with corners in
// counter-clockwise order.
func (m *Mesh) addQuad(a, b, c, d, normal math.Vec3) {
	base := uint32(len(m.Vertices))
	n := normal.Array()
	for _, p := range []math.Vec3{a, b, c, d} {
		m.Vertices = append(m.Vertices, Vertex{Position: p.Array(), Normal: n})
	}
	m.Indices = append(m.Indices, base, base+1, base+2, base, base+2, base+3)
}

// addTriangle appends a flat-shaded triangle with a computed face normal.
func (m *Mesh) addTriangle(a, b, c math.Vec3) {
	base := uint32(len(m.Vertices))
	n := b.Sub(a).Cross(c.Sub(a)).Normalize().Array()
	for _, p := range []math.Vec3{a, b, c} {
		m.Vertices = append(m.Vertices, Vertex{Position: p.Array(), Normal: n})
	}
	m.Indices = append(m.Indices, base, base+1, base+2)
}

// Cube creates an axis-aligned cube centered on the origin.
func Cube(size float32) *Mesh {
	h := size / 2
	m := &Mesh{Name: "cube"}

	// +Z, -Z, +X, -X, +Y, -Y
	m.addQuad(math.Vec3{X: -h, Y: -h, Z: h}, math.Vec3{X: h, Y: -h, Z: h}, math.Vec3{X: h, Y: h, Z: h}, math.Vec3{X: -h, Y: h, Z: h}, math.Vec3{Z: 1})
	m.addQuad(math.Vec3{X: h, Y: -h, Z: -h}, math.Vec3{X: -h, Y: -h, Z: -h}, math.Vec3{X: -h, Y: h, Z: -h}, math.Vec3{X: h, Y: h, Z: -h}, math.Vec3{Z: -1})
	m.addQuad(math.Vec3{X: h, Y: -h, Z: h}, math.Vec3{X: h, Y: -h, Z: -h}, math.Vec3{X: h, Y: h, Z: -h}, math.Vec3{X: h, Y: h, Z: h}, math.Vec3{X: 1})
	m.addQuad(math.Vec3{X: -h, Y: -h, Z: -h}, math.Vec3{X: -h, Y: -h, Z: h}, math.Vec3{X: -h, Y: h, Z: h}, math.Vec3{X: -h, Y: h, Z: -h}, math.Vec3{X: -1})
	m.addQuad(math.Vec3{X: -h, Y: h, Z: h}, math.Vec3{X: h, Y: h, Z: h}, math.Vec3{X: h, Y: h, Z: -h}, math.Vec3{X: -h, Y: h, Z: -h}, math.Vec3{Y: 1})
	m.addQuad(math.Vec3{X: -h, Y: -h, Z: -h}, math.Vec3{X: h, Y: -h, Z: -h}, math.Vec3{X: h, Y: -h, Z: h}, math.Vec3{X: -h, Y: -h, Z: h}, math.Vec3{Y: -1})

	return m
}

// Sphere creates a UV sphere. segments is clamped to at least 3 and rings
// to at least 2.
func Sphere(radius float32, segments, rings int) *Mesh {
	segments = max(segments, 3)
	rings = max(rings, 2)
	m := &Mesh{Name: "sphere"}

	for ring := 0; ring <= rings; ring++ {
		phi := float64(ring) * gomath.Pi / float64(rings)
		sinPhi := float32(gomath.Sin(phi))
		cosPhi := float32(gomath.Cos(phi))

		for seg := 0; seg <= segments; seg++ {
			theta := float64(seg) * 2.0 * gomath.Pi / float64(segments)
			normal := math.Vec3{
				X: sinPhi * float32(gomath.Cos(theta)),
				Y: cosPhi,
				Z: sinPhi * float32(gomath.Sin(theta)),
			}
			m.Vertices = append(m.Vertices, Vertex{
				Position: normal.Scale(radius).Array(),
				Normal:   normal.Array(),
			})
		}
	}

	for ring := 0; ring < rings; ring++ {
		for seg := 0; seg < segments; seg++ {
			current := uint32(ring*(segments+1) + seg)
			next := current + uint32(segments+1)
			m.Indices = append(m.Indices, current, next, current+1)
			m.Indices = append(m.Indices, current+1, next, next+1)
		}
	}

	return m
}

// TriforcePiece creates an equilateral triangular prism, point up, centered
// on the origin. side is the triangle edge length, depth the prism thickness.
func TriforcePiece(side, depth float32) *Mesh {
	height := side * float32(gomath.Sqrt(3)) / 2
	hd := depth / 2
	m := &Mesh{Name: "triforce"}

	top := math.Vec3{Y: height * 2 / 3}
	left := math.Vec3{X: -side / 2, Y: -height / 3}
	right := math.Vec3{X: side / 2, Y: -height / 3}
	front := math.Vec3{Z: hd}
	back := math.Vec3{Z: -hd}

	m.addTriangle(left.Add(front), right.Add(front), top.Add(front))
	m.addTriangle(right.Add(back), left.Add(back), top.Add(back))

	edges := [][2]math.Vec3{{left, right}, {right, top}, {top, left}}
	for _, e := range edges {
		a, b := e[0], e[1]
		normal := b.Sub(a).Cross(math.Vec3{Z: 1}).Normalize()
		m.addQuad(a.Add(back), b.Add(back), b.Add(front), a.Add(front), normal)
	}

	return m
}
