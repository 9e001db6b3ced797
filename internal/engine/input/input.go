// Package input pumps SDL2 events into the viewer's action translator.
package input

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/meshview/internal/viewer"
	"github.com/Faultbox/meshview/internal/viewer/controls"
)

// Input drains the SDL event queue once per frame.
type Input struct {
	translator *controls.Translator

	resized       bool
	width, height int
}

// New creates an input pump feeding translator.
func New(translator *controls.Translator) *Input {
	return &Input{translator: translator}
}

// Update polls SDL events. Returns true if the window was asked to close.
func (i *Input) Update() bool {
	i.resized = false
	quit := false

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			quit = true

		case *sdl.WindowEvent:
			switch e.Event {
			case sdl.WINDOWEVENT_RESIZED, sdl.WINDOWEVENT_SIZE_CHANGED:
				i.resized = true
				i.width, i.height = int(e.Data1), int(e.Data2)
			case sdl.WINDOWEVENT_FOCUS_LOST:
				// key-up events for held keys will not arrive
				i.translator.ReleaseAll()
			}

		case *sdl.KeyboardEvent:
			key := viewer.Key(e.Keysym.Sym)
			if e.Type == sdl.KEYDOWN {
				i.translator.KeyDown(key, e.Repeat != 0)
			} else if e.Type == sdl.KEYUP {
				i.translator.KeyUp(key)
			}
		}
	}

	return quit
}

// Resized reports whether the window changed size during the last Update,
// and the new size.
func (i *Input) Resized() (bool, int, int) {
	return i.resized, i.width, i.height
}

// ResolveKey looks up an SDL key name such as "Left" or "Keypad +".
func ResolveKey(name string) (viewer.Key, bool) {
	k := sdl.GetKeyFromName(name)
	if k == sdl.K_UNKNOWN {
		return viewer.KeyNone, false
	}
	return viewer.Key(k), true
}

// KeyName returns the SDL display name of a key.
func KeyName(k viewer.Key) string {
	return sdl.GetKeyName(sdl.Keycode(k))
}
