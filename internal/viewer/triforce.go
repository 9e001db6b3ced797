package viewer

import "github.com/Faultbox/meshview/pkg/math"

const (
	// triforceStartOffset is how far each piece starts from its destination.
	triforceStartOffset = 15
	// triforceMaxTurns caps the spin of each piece around X and Y.
	triforceMaxTurns = 4
)

// TriforcePiece is one of the three converging triangles.
type TriforcePiece struct {
	Position    math.Vec3
	Destination math.Vec3
	RotationX   float32
	RotationY   float32
}

// Arrived reports whether the piece has stopped moving and spinning.
func (p *TriforcePiece) Arrived() bool {
	return p.Position == p.Destination &&
		p.RotationX >= triforceMaxTurns*360 &&
		p.RotationY >= triforceMaxTurns*360
}

// Model returns the piece's world transform.
func (p *TriforcePiece) Model() math.Mat4 {
	return math.Translate(p.Position.X, p.Position.Y, p.Position.Z).
		Mul(math.RotateY(math.Radians(p.RotationY))).
		Mul(math.RotateX(math.Radians(p.RotationX)))
}

// Triforce animates the three pieces flying into place.
type Triforce struct {
	Pieces [3]TriforcePiece
}

// NewTriforce returns an animation at its starting position.
func NewTriforce() *Triforce {
	t := &Triforce{}
	t.Reset()
	return t
}

// Reset moves every piece back to its starting position.
func (t *Triforce) Reset() {
	const o = triforceStartOffset
	t.Pieces = [3]TriforcePiece{
		{
			Destination: math.Vec3{X: -1.73, Y: -1.5, Z: -10},
			Position:    math.Vec3{X: -1.73 - o, Y: -1.5 - o, Z: -10 - o},
		},
		{
			Destination: math.Vec3{X: 1.73, Y: -1.5, Z: -10},
			Position:    math.Vec3{X: 1.73 + o, Y: -1.5 - o, Z: -10 - o},
		},
		{
			Destination: math.Vec3{X: 0, Y: 1.5, Z: -10},
			Position:    math.Vec3{X: 0, Y: 1.5 + o, Z: -10 - o},
		},
	}
}

// Update advances the animation by dt seconds.
func (t *Triforce) Update(dt, translationSpeed, rotationSpeed float32) {
	step := translationSpeed * dt
	spin := rotationSpeed * dt
	const maxSpin = triforceMaxTurns * 360

	for i := range t.Pieces {
		p := &t.Pieces[i]
		p.Position.X = math.Approach(p.Position.X, p.Destination.X, step)
		p.Position.Y = math.Approach(p.Position.Y, p.Destination.Y, step)
		p.Position.Z = math.Approach(p.Position.Z, p.Destination.Z, step)
		p.RotationX = min(p.RotationX+spin, maxSpin)
		p.RotationY = min(p.RotationY+spin, maxSpin)
	}
}

// Done reports whether every piece has arrived.
func (t *Triforce) Done() bool {
	for i := range t.Pieces {
		if !t.Pieces[i].Arrived() {
			return false
		}
	}
	return true
}
