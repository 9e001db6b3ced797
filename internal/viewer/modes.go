package viewer

import "fmt"

// LightChannel selects which light intensity the light actions adjust.
type LightChannel uint8

const (
	LightAmbient LightChannel = iota
	LightDiffuse
	LightSpecular
	lightChannelCount
)

// Next returns the following channel, wrapping after specular.
func (c LightChannel) Next() LightChannel {
	return (c + 1) % lightChannelCount
}

// Previous returns the preceding channel, wrapping before ambient.
func (c LightChannel) Previous() LightChannel {
	return (c + lightChannelCount - 1) % lightChannelCount
}

func (c LightChannel) String() string {
	switch c {
	case LightAmbient:
		return "ambient"
	case LightDiffuse:
		return "diffuse"
	case LightSpecular:
		return "specular"
	default:
		return fmt.Sprintf("LightChannel(%d)", uint8(c))
	}
}

// AALevel is the multisample anti-aliasing setting.
type AALevel uint8

const (
	AAOff AALevel = iota
	AA2x
	AA4x
	AA8x
	AA16x
	aaLevelCount
)

// Next returns the following level, wrapping from 16x back to off.
func (a AALevel) Next() AALevel {
	return (a + 1) % aaLevelCount
}

// Samples returns the multisample count for the level, 0 when off.
func (a AALevel) Samples() int {
	switch a {
	case AAOff:
		return 0
	case AA2x:
		return 2
	case AA4x:
		return 4
	case AA8x:
		return 8
	case AA16x:
		return 16
	default:
		panic(fmt.Sprintf("viewer: invalid AALevel %d", uint8(a)))
	}
}

func (a AALevel) String() string {
	switch a {
	case AAOff:
		return "off"
	case AA2x, AA4x, AA8x, AA16x:
		return fmt.Sprintf("%dx", a.Samples())
	default:
		return fmt.Sprintf("AALevel(%d)", uint8(a))
	}
}

// MeshMode selects the primitive shown in the standard scene.
type MeshMode uint8

const (
	MeshCube MeshMode = iota
	MeshSphere
)

// Toggle flips between cube and sphere.
func (m MeshMode) Toggle() MeshMode {
	switch m {
	case MeshCube:
		return MeshSphere
	case MeshSphere:
		return MeshCube
	default:
		panic(fmt.Sprintf("viewer: invalid MeshMode %d", uint8(m)))
	}
}

func (m MeshMode) String() string {
	switch m {
	case MeshCube:
		return "cube"
	case MeshSphere:
		return "sphere"
	default:
		return fmt.Sprintf("MeshMode(%d)", uint8(m))
	}
}

// GeometryVersion selects which scene layout the renderer builds.
type GeometryVersion uint8

const (
	// VersionStandard shows a single mesh in the selected MeshMode.
	VersionStandard GeometryVersion = iota + 1
	// VersionTriforce shows the three converging triforce pieces.
	VersionTriforce
)

func (v GeometryVersion) String() string {
	switch v {
	case VersionStandard:
		return "standard"
	case VersionTriforce:
		return "triforce"
	default:
		return fmt.Sprintf("GeometryVersion(%d)", uint8(v))
	}
}
