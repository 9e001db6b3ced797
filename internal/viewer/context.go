// Package viewer holds the shared runtime state of the mesh viewer and the
// per-frame rules that turn user actions into parameter changes.
package viewer

import (
	"go.uber.org/zap"
)

// Scene is the renderer-side owner of meshes, entities and lights.
type Scene interface {
	ClearScene()
	InitMeshes(version GeometryVersion, mode MeshMode)
	InitEntities(version GeometryVersion, mode MeshMode)
	InitLights()
}

// Window is the native display surface.
type Window interface {
	// Now returns seconds elapsed since the window was created.
	Now() float64
	SetTitle(title string)
}

// Controls holds the per-action step sizes.
type Controls struct {
	TranslationSpeed float32 // units per second
	RotationSpeed    float32 // degrees per second
	LightStep        float32
	ColorStep        float32
	TransparencyStep float32
}

// DefaultControls returns the stock step sizes.
func DefaultControls() Controls {
	return Controls{
		TranslationSpeed: 3,
		RotationSpeed:    180,
		LightStep:        1,
		ColorStep:        1,
		TransparencyStep: 1,
	}
}

// SceneContext ties the state to its external collaborators. The Scene and
// Window are borrowed and must outlive the context.
type SceneContext struct {
	App     *ApplicationState
	Actions ActionState

	scene    Scene
	window   Window
	controls Controls
	log      *zap.Logger
}

// NewSceneContext creates a context with fresh state. A nil logger disables
// logging.
func NewSceneContext(scene Scene, window Window, controls Controls, log *zap.Logger) *SceneContext {
	if log == nil {
		log = zap.NewNop()
	}
	return &SceneContext{
		App:      NewApplicationState(),
		scene:    scene,
		window:   window,
		controls: controls,
		log:      log.Named("viewer"),
	}
}

// Window returns the borrowed window.
func (c *SceneContext) Window() Window {
	return c.window
}

// RefreshScene asks the scene to rebuild everything for the current version
// and mesh mode.
func (c *SceneContext) RefreshScene() {
	c.log.Debug("refreshing scene",
		zap.Stringer("version", c.App.SelectedVersion),
		zap.Stringer("mesh", c.App.MeshMode),
	)
	c.scene.ClearScene()
	c.scene.InitMeshes(c.App.SelectedVersion, c.App.MeshMode)
	c.scene.InitEntities(c.App.SelectedVersion, c.App.MeshMode)
	c.scene.InitLights()
}

// Tick samples the window clock into the frame stats.
func (c *SceneContext) Tick() {
	c.App.Frame.Tick(c.window.Now())
}

// Update applies this frame's actions and advances animations. Edge-triggered
// actions are cleared afterwards.
func (c *SceneContext) Update() {
	dt := float32(c.App.Frame.DeltaTime)

	if c.App.Keys.IsSecretCodeMatched() {
		c.unlockTriforce()
	}

	for a := Action(0); a < ActionCount; a++ {
		if c.Actions.Get(a) {
			c.apply(a, dt)
		}
	}
	c.Actions.ClearEdges()

	if c.App.SelectedVersion == VersionTriforce {
		c.App.Triforce.Update(dt, c.controls.TranslationSpeed, c.controls.RotationSpeed)
	}
}

func (c *SceneContext) unlockTriforce() {
	c.log.Info("secret code entered")
	c.App.Keys.Reset()
	c.App.Triforce.Reset()
	c.App.SelectedVersion = VersionTriforce
	c.RefreshScene()
}

func (c *SceneContext) apply(a Action, dt float32) {
	app := c.App
	move := c.controls.TranslationSpeed * dt
	turn := c.controls.RotationSpeed * dt

	switch a {
	case ActionMoveLeft:
		app.Camera.Move(-move, 0)
	case ActionMoveRight:
		app.Camera.Move(move, 0)
	case ActionMoveUp:
		app.Camera.Move(0, move)
	case ActionMoveDown:
		app.Camera.Move(0, -move)
	case ActionZoomIn:
		app.Camera.Zoom(move)
	case ActionZoomOut:
		app.Camera.Zoom(-move)
	case ActionXTurnClockwise:
		app.Camera.Turn(AxisX, turn)
	case ActionXTurnCounterClockwise:
		app.Camera.Turn(AxisX, -turn)
	case ActionYTurnClockwise:
		app.Camera.Turn(AxisY, turn)
	case ActionYTurnCounterClockwise:
		app.Camera.Turn(AxisY, -turn)
	case ActionZTurnClockwise:
		app.Camera.Turn(AxisZ, turn)
	case ActionZTurnCounterClockwise:
		app.Camera.Turn(AxisZ, -turn)
	case ActionSelectNextLight:
		app.SelectedLight = app.SelectedLight.Next()
		c.log.Debug("light selected", zap.Stringer("light", app.SelectedLight))
	case ActionSelectPreviousLight:
		app.SelectedLight = app.SelectedLight.Previous()
		c.log.Debug("light selected", zap.Stringer("light", app.SelectedLight))
	case ActionIncreaseLight:
		app.Light.Adjust(app.SelectedLight, c.controls.LightStep)
	case ActionDecreaseLight:
		app.Light.Adjust(app.SelectedLight, -c.controls.LightStep)
	case ActionAddRed:
		app.Mesh.AddRed(c.controls.ColorStep)
	case ActionAddGreen:
		app.Mesh.AddGreen(c.controls.ColorStep)
	case ActionAddBlue:
		app.Mesh.AddBlue(c.controls.ColorStep)
	case ActionAddTransparency:
		app.Mesh.AddTransparency(c.controls.TransparencyStep)
	case ActionChangeAAValue:
		app.AA = app.AA.Next()
		c.log.Debug("anti-aliasing changed", zap.Stringer("aa", app.AA))
	case ActionShowHelp:
		app.ShowInterface = !app.ShowInterface
	case ActionToggleMeshMode:
		app.MeshMode = app.MeshMode.Toggle()
		app.SelectedVersion = VersionStandard
		c.RefreshScene()
	case ActionResetParams:
		app.Reset()
		c.log.Debug("parameters reset")
	case ActionQuit:
		app.Running = false
	default:
		c.log.Warn("unhandled action", zap.Stringer("action", a))
	}
}
