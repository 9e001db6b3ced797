// Package scene is the OpenGL side of the viewer: it owns GPU meshes, the
// entities that place them and the light, and draws them from the shared
// application state.
package scene

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/meshview/internal/engine/shader"
	"github.com/Faultbox/meshview/internal/viewer"
	"github.com/Faultbox/meshview/pkg/geometry"
	"github.com/Faultbox/meshview/pkg/math"
)

const (
	fovY  = 45
	zNear = 0.1
	zFar  = 100
)

// triforceColor is the fixed gold of the triforce pieces.
var triforceColor = [4]float32{1, 0.84, 0, 1}

// entity places one mesh. piece is the triforce piece index, or -1 for a
// mesh drawn at the origin.
type entity struct {
	mesh  *gpuMesh
	piece int
}

// Scene implements viewer.Scene on top of OpenGL.
type Scene struct {
	program *shader.Program
	log     *zap.Logger

	meshes   []*gpuMesh
	entities []entity
	lightDir math.Vec3
	version  viewer.GeometryVersion
}

var _ viewer.Scene = (*Scene)(nil)

// New compiles the scene shader. A GL context must be current.
func New(log *zap.Logger) (*Scene, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("initializing OpenGL: %w", err)
	}

	program, err := shader.Compile(vertexShader, fragmentShader)
	if err != nil {
		return nil, fmt.Errorf("compiling scene shader: %w", err)
	}

	s := &Scene{
		program: program,
		log:     log.Named("scene"),
	}
	s.log.Info("OpenGL ready", zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))))
	return s, nil
}

// ClearScene releases every mesh and entity.
func (s *Scene) ClearScene() {
	for _, m := range s.meshes {
		m.delete()
	}
	s.meshes = nil
	s.entities = nil
}

// InitMeshes uploads the meshes a version needs.
func (s *Scene) InitMeshes(version viewer.GeometryVersion, mode viewer.MeshMode) {
	s.version = version

	switch version {
	case viewer.VersionStandard:
		switch mode {
		case viewer.MeshCube:
			s.meshes = append(s.meshes, upload(geometry.Cube(2)))
		case viewer.MeshSphere:
			s.meshes = append(s.meshes, upload(geometry.Sphere(1.2, 48, 24)))
		}
	case viewer.VersionTriforce:
		s.meshes = append(s.meshes, upload(geometry.TriforcePiece(3.4, 0.4)))
	default:
		s.log.Warn("unknown geometry version", zap.Stringer("version", version))
	}

	s.log.Debug("meshes uploaded", zap.Int("count", len(s.meshes)))
}

// InitEntities places the uploaded meshes.
func (s *Scene) InitEntities(version viewer.GeometryVersion, mode viewer.MeshMode) {
	if len(s.meshes) == 0 {
		return
	}

	switch version {
	case viewer.VersionStandard:
		s.entities = append(s.entities, entity{mesh: s.meshes[0], piece: -1})
	case viewer.VersionTriforce:
		var t viewer.Triforce
		for i := range t.Pieces {
			s.entities = append(s.entities, entity{mesh: s.meshes[0], piece: i})
		}
	}
}

// InitLights sets the key light direction in view space.
func (s *Scene) InitLights() {
	s.lightDir = math.Vec3{X: 0.4, Y: 0.8, Z: 0.6}.Normalize()
}

// Polygons returns the number of triangles drawn per frame.
func (s *Scene) Polygons() int {
	total := 0
	for _, e := range s.entities {
		total += e.mesh.triangles
	}
	return total
}

// Draw renders app into a width x height viewport.
func (s *Scene) Draw(app *viewer.ApplicationState, width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
	gl.ClearColor(0.08, 0.08, 0.1, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	if app.AA == viewer.AAOff {
		gl.Disable(gl.MULTISAMPLE)
	} else {
		gl.Enable(gl.MULTISAMPLE)
	}

	aspect := float32(width) / float32(max(height, 1))
	projection := math.Perspective(math.Radians(fovY), aspect, zNear, zFar)

	view := app.Camera.ViewMatrix()
	color := app.Mesh.RGBA()
	if s.version == viewer.VersionTriforce {
		// pieces are animated directly in view space
		view = math.Identity()
		color = triforceColor
	}

	s.program.Use()
	gl.UniformMatrix4fv(s.program.Uniform("uProjection"), 1, false, projection.Ptr())
	gl.UniformMatrix4fv(s.program.Uniform("uView"), 1, false, view.Ptr())
	gl.Uniform4f(s.program.Uniform("uColor"), color[0], color[1], color[2], color[3])
	gl.Uniform3f(s.program.Uniform("uLightDir"), s.lightDir.X, s.lightDir.Y, s.lightDir.Z)
	gl.Uniform1f(s.program.Uniform("uAmbient"), app.Light.Ambient/viewer.LightMax)
	gl.Uniform1f(s.program.Uniform("uDiffuse"), app.Light.Diffuse/viewer.LightMax)
	gl.Uniform1f(s.program.Uniform("uSpecular"), app.Light.Specular/viewer.LightMax)

	for _, e := range s.entities {
		model := math.Identity()
		if e.piece >= 0 {
			model = app.Triforce.Pieces[e.piece].Model()
		}
		gl.UniformMatrix4fv(s.program.Uniform("uModel"), 1, false, model.Ptr())
		e.mesh.draw()
	}
}

// Destroy releases all GPU resources.
func (s *Scene) Destroy() {
	s.ClearScene()
	if s.program != nil {
		s.program.Delete()
	}
}
