package viewer

import (
	"fmt"

	"github.com/Faultbox/meshview/pkg/math"
)

// Parameter ranges.
const (
	LightMax        = 100
	ColorMax        = 255
	TransparencyMax = 100

	MinZoom = -60
	MaxZoom = -2
)

// LightParams holds the three light intensities, each in [0, LightMax].
type LightParams struct {
	Ambient  float32
	Diffuse  float32
	Specular float32
}

// Reset restores 50/70/90.
func (p *LightParams) Reset() {
	p.Ambient = 50
	p.Diffuse = 70
	p.Specular = 90
}

// Get returns the intensity of channel c.
func (p *LightParams) Get(c LightChannel) float32 {
	return *p.field(c)
}

// Adjust adds delta to channel c, clamped to [0, LightMax].
func (p *LightParams) Adjust(c LightChannel, delta float32) {
	f := p.field(c)
	*f = math.Clamp(*f+delta, 0, LightMax)
}

func (p *LightParams) field(c LightChannel) *float32 {
	switch c {
	case LightAmbient:
		return &p.Ambient
	case LightDiffuse:
		return &p.Diffuse
	case LightSpecular:
		return &p.Specular
	default:
		panic(fmt.Sprintf("viewer: invalid LightChannel %d", uint8(c)))
	}
}

// MeshParams holds the mesh color and transparency. Colors are add-only
// controls, so they wrap past their maximum instead of sticking at it.
type MeshParams struct {
	Red          float32
	Green        float32
	Blue         float32
	Transparency float32

	// Texture handles assigned by the renderer; Reset leaves them alone.
	CubeImageID   uint8
	SphereImageID uint8
}

// Reset restores opaque-ish red: 255/0/0 at 75% transparency.
func (p *MeshParams) Reset() {
	p.Red = 255
	p.Green = 0
	p.Blue = 0
	p.Transparency = 75
}

// AddRed adds step to the red channel, wrapping within [0, ColorMax].
func (p *MeshParams) AddRed(step float32) { p.Red = math.Wrap(p.Red+step, ColorMax+1) }

// AddGreen adds step to the green channel, wrapping within [0, ColorMax].
func (p *MeshParams) AddGreen(step float32) { p.Green = math.Wrap(p.Green+step, ColorMax+1) }

// AddBlue adds step to the blue channel, wrapping within [0, ColorMax].
func (p *MeshParams) AddBlue(step float32) { p.Blue = math.Wrap(p.Blue+step, ColorMax+1) }

// AddTransparency adds step to transparency, wrapping within [0, TransparencyMax].
func (p *MeshParams) AddTransparency(step float32) {
	p.Transparency = math.Wrap(p.Transparency+step, TransparencyMax+1)
}

// RGBA returns the color normalized to [0,1] for the shader. Alpha is the
// inverse of transparency.
func (p *MeshParams) RGBA() [4]float32 {
	return [4]float32{
		p.Red / ColorMax,
		p.Green / ColorMax,
		p.Blue / ColorMax,
		1 - p.Transparency/TransparencyMax,
	}
}

// Axis names a camera rotation axis.
type Axis uint8

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// CameraParams holds the camera offsets. Rotations are in degrees.
type CameraParams struct {
	XOffset         float32
	YOffset         float32
	ZoomOffset      float32
	XRotationOffset float32
	YRotationOffset float32
	ZRotationOffset float32
}

// Reset places the camera 6 units back at a 45/45/0 orientation.
func (p *CameraParams) Reset() {
	p.XOffset = 0
	p.YOffset = 0
	p.ZoomOffset = -6
	p.XRotationOffset = 45
	p.YRotationOffset = 45
	p.ZRotationOffset = 0
}

// Move translates the camera.
func (p *CameraParams) Move(dx, dy float32) {
	p.XOffset += dx
	p.YOffset += dy
}

// Zoom moves the camera along its view axis, clamped to [MinZoom, MaxZoom].
func (p *CameraParams) Zoom(dz float32) {
	p.ZoomOffset = math.Clamp(p.ZoomOffset+dz, MinZoom, MaxZoom)
}

// Turn rotates around axis by degrees, keeping the angle in [0, 360).
func (p *CameraParams) Turn(axis Axis, degrees float32) {
	switch axis {
	case AxisX:
		p.XRotationOffset = math.Wrap(p.XRotationOffset+degrees, 360)
	case AxisY:
		p.YRotationOffset = math.Wrap(p.YRotationOffset+degrees, 360)
	case AxisZ:
		p.ZRotationOffset = math.Wrap(p.ZRotationOffset+degrees, 360)
	default:
		panic(fmt.Sprintf("viewer: invalid Axis %d", uint8(axis)))
	}
}

// ViewMatrix returns the model-view transform for the current offsets.
func (p *CameraParams) ViewMatrix() math.Mat4 {
	return math.Translate(p.XOffset, p.YOffset, p.ZoomOffset).
		Mul(math.EulerDegrees(p.XRotationOffset, p.YRotationOffset, p.ZRotationOffset))
}
