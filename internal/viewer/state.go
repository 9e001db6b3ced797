package viewer

import (
	"fmt"
	"strings"
)

// ApplicationState is everything the renderer reads each frame.
type ApplicationState struct {
	Running       bool
	ShowInterface bool

	MeshMode        MeshMode
	AA              AALevel
	SelectedLight   LightChannel
	SelectedVersion GeometryVersion

	// Polygons is written by the renderer after it rebuilds the scene.
	Polygons int

	Light  LightParams
	Mesh   MeshParams
	Camera CameraParams

	Frame    *FrameStats
	Keys     *KeyHistory
	Triforce *Triforce
}

// NewApplicationState returns a running state with every parameter at its
// default.
func NewApplicationState() *ApplicationState {
	s := &ApplicationState{
		Running:         true,
		ShowInterface:   true,
		MeshMode:        MeshCube,
		SelectedVersion: VersionStandard,
		Frame:           NewFrameStats(),
		Keys:            NewKeyHistory(),
		Triforce:        NewTriforce(),
	}
	s.Reset()
	return s
}

// Reset restores the tunable appearance: light channel, AA level, key
// history and the three parameter sets. Session fields (running, interface,
// frame stats, polygons, mesh mode, version, triforce) are kept.
func (s *ApplicationState) Reset() {
	s.SelectedLight = LightAmbient
	s.AA = AAOff
	s.Keys.Reset()
	s.Light.Reset()
	s.Mesh.Reset()
	s.Camera.Reset()
}

// Status renders a one-line summary for the window title.
func (s *ApplicationState) Status() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%.0f fps (min %.0f, max %.0f)", s.Frame.Average, s.minFPS(), s.Frame.Max)
	fmt.Fprintf(&b, " | %s %s | %d polys", s.SelectedVersion, s.MeshMode, s.Polygons)
	fmt.Fprintf(&b, " | AA %s", s.AA)
	fmt.Fprintf(&b, " | light %s %.0f", s.SelectedLight, s.Light.Get(s.SelectedLight))
	fmt.Fprintf(&b, " | rgb %.0f/%.0f/%.0f alpha %.0f%%", s.Mesh.Red, s.Mesh.Green, s.Mesh.Blue, s.Mesh.Transparency)
	return b.String()
}

func (s *ApplicationState) minFPS() float64 {
	if s.Frame.Frames == 0 || s.Frame.Max == 0 {
		return 0
	}
	return s.Frame.Min
}
