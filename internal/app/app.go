// Package app runs the viewer main loop.
package app

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/meshview/internal/config"
	"github.com/Faultbox/meshview/internal/engine/input"
	"github.com/Faultbox/meshview/internal/engine/scene"
	"github.com/Faultbox/meshview/internal/engine/window"
	"github.com/Faultbox/meshview/internal/viewer"
	"github.com/Faultbox/meshview/internal/viewer/controls"
)

// titleInterval is how often the status title is refreshed, in seconds.
const titleInterval = 0.25

// App is the main viewer instance.
type App struct {
	cfg      *config.Config
	log      *zap.Logger
	window   *window.Window
	scene    *scene.Scene
	input    *input.Input
	bindings controls.Bindings
	ctx      *viewer.SceneContext

	width, height int
	lastTitle     float64
	lastFPSLog    float64
	interfaceOn   bool
}

// New creates the window, GL scene and shared state.
func New(cfg *config.Config, log *zap.Logger) (*App, error) {
	log.Info("initializing viewer",
		zap.String("title", cfg.Window.Title),
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
	)

	bindings := controls.DefaultBindings()
	if err := bindings.Override(cfg.Controls.Bindings, input.ResolveKey); err != nil {
		return nil, fmt.Errorf("applying key bindings: %w", err)
	}

	a := &App{
		cfg:      cfg,
		log:      log,
		bindings: bindings,
	}

	var err error
	a.window, err = window.New(window.Config{
		Title:       cfg.Window.Title,
		Width:       cfg.Window.Width,
		Height:      cfg.Window.Height,
		Fullscreen:  cfg.Window.Fullscreen,
		VSync:       cfg.Window.VSync,
		MSAASamples: cfg.Window.MSAASamples,
	}, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Scene needs the GL context the window just created
	a.scene, err = scene.New(log)
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to create scene: %w", err)
	}

	a.ctx = viewer.NewSceneContext(a.scene, a.window, cfg.Controls.ViewerControls(), log)
	translator := controls.NewTranslator(bindings, &a.ctx.Actions, a.ctx.App.Keys)
	a.input = input.New(translator)
	a.width, a.height = a.window.GetSize()

	a.ctx.RefreshScene()

	log.Info("viewer initialized successfully")
	return a, nil
}

// Run drives one tick per frame until the viewer stops running.
func (a *App) Run() error {
	state := a.ctx.App
	a.logHelp()
	a.interfaceOn = state.ShowInterface

	a.log.Info("starting main loop")
	for state.Running {
		// 1. Input
		if a.input.Update() {
			state.Running = false
			break
		}
		if resized, w, h := a.input.Resized(); resized {
			a.width, a.height = w, h
			a.log.Debug("window resized", zap.Int("width", w), zap.Int("height", h))
		}

		// 2. Update shared state
		a.ctx.Tick()
		a.ctx.Update()
		state.Polygons = a.scene.Polygons()

		// 3. Render
		a.scene.Draw(state, a.width, a.height)
		a.window.SwapBuffers()

		a.updateInterface()
	}

	a.log.Info("main loop stopped",
		zap.Uint64("frames", state.Frame.Frames),
		zap.Float64("min_fps", state.Frame.Min),
		zap.Float64("max_fps", state.Frame.Max),
	)
	return nil
}

// updateInterface refreshes the title bar and periodic debug output.
func (a *App) updateInterface() {
	state := a.ctx.App
	now := state.Frame.CurrentTime

	if state.ShowInterface != a.interfaceOn {
		a.interfaceOn = state.ShowInterface
		if a.interfaceOn {
			a.logHelp()
		} else {
			a.window.SetTitle(a.cfg.Window.Title)
		}
	}

	if a.interfaceOn && now-a.lastTitle >= titleInterval {
		a.lastTitle = now
		a.window.SetTitle(a.cfg.Window.Title + " | " + state.Status())
	}

	if now-a.lastFPSLog >= 1 {
		a.lastFPSLog = now
		a.log.Debug("fps",
			zap.Float64("avg", state.Frame.Average),
			zap.String("dt", fmt.Sprintf("%.2fms", state.Frame.DeltaTime*1000)),
		)
	}
}

func (a *App) logHelp() {
	a.log.Info("controls:\n" + a.bindings.Describe(input.KeyName))
}

// Close cleans up viewer resources.
func (a *App) Close() {
	a.log.Info("closing viewer")

	if a.scene != nil {
		a.scene.Destroy()
	}
	if a.window != nil {
		a.window.Close()
	}
}
