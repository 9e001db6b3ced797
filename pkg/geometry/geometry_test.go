package geometry

import (
	"testing"
)

func TestTriangleCounts(t *testing.T) {
	tests := []struct {
		name string
		mesh *Mesh
		want int
	}{
		{"cube", Cube(1), 12},
		{"sphere 16x8", Sphere(1, 16, 8), 16 * 8 * 2},
		{"sphere clamps", Sphere(1, 1, 1), 3 * 2 * 2},
		{"triforce", TriforcePiece(2, 0.5), 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.mesh.Triangles(); got != tt.want {
				t.Errorf("Triangles() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestIndicesInRange(t *testing.T) {
	for _, m := range []*Mesh{Cube(2), Sphere(1, 12, 6), TriforcePiece(1, 1)} {
		for i, idx := range m.Indices {
			if int(idx) >= len(m.Vertices) {
				t.Errorf("%s: index %d = %d out of range (%d vertices)", m.Name, i, idx, len(m.Vertices))
			}
		}
	}
}

func TestCubeBounds(t *testing.T) {
	m := Cube(2)
	for _, v := range m.Vertices {
		for axis, c := range v.Position {
			if c != 1 && c != -1 {
				t.Errorf("vertex axis %d = %f, want +-1", axis, c)
			}
		}
	}
}

func TestSphereNormalsUnitLength(t *testing.T) {
	m := Sphere(3, 8, 4)
	for i, v := range m.Vertices {
		n := v.Normal
		l := n[0]*n[0] + n[1]*n[1] + n[2]*n[2]
		if l < 0.999 || l > 1.001 {
			t.Errorf("vertex %d normal squared length %f, want ~1", i, l)
		}
	}
}

func TestTriforceFrontFacesForward(t *testing.T) {
	m := TriforcePiece(2, 0.5)
	// first triangle is the front cap
	if n := m.Vertices[0].Normal; n[2] < 0.999 {
		t.Errorf("front cap normal = %v, want (0, 0, 1)", n)
	}
	if n := m.Vertices[3].Normal; n[2] > -0.999 {
		t.Errorf("back cap normal = %v, want (0, 0, -1)", n)
	}
}
