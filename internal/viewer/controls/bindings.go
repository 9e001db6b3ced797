// Package controls maps keyboard keys to viewer actions and turns raw key
// transitions into level- and edge-triggered action flags.
package controls

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Faultbox/meshview/internal/viewer"
)

// scancodeMask marks SDL keycodes that have no printable character.
const scancodeMask = 1 << 30

// Non-printable keys bound by default, in the SDL keycode space.
const (
	KeyBackspace viewer.Key = '\b'
	KeyTab       viewer.Key = '\t'
	KeyEscape    viewer.Key = 27
	KeyBackquote viewer.Key = '`'

	KeyF1       viewer.Key = scancodeMask | 58
	KeyF2       viewer.Key = scancodeMask | 59
	KeyF3       viewer.Key = scancodeMask | 60
	KeyPageUp   viewer.Key = scancodeMask | 75
	KeyRight    viewer.Key = scancodeMask | 79
	KeyLeft     viewer.Key = scancodeMask | 80
	KeyDown     viewer.Key = scancodeMask | 81
	KeyUp       viewer.Key = scancodeMask | 82
	KeyPageDown viewer.Key = scancodeMask | 78
	KeyKPMinus  viewer.Key = scancodeMask | 86
	KeyKPPlus   viewer.Key = scancodeMask | 87
	KeyKP2      viewer.Key = scancodeMask | 90
	KeyKP4      viewer.Key = scancodeMask | 92
	KeyKP6      viewer.Key = scancodeMask | 94
	KeyKP7      viewer.Key = scancodeMask | 95
	KeyKP8      viewer.Key = scancodeMask | 96
	KeyKP9      viewer.Key = scancodeMask | 97
)

// Bindings maps keys to actions. Several keys may share an action.
type Bindings map[viewer.Key]viewer.Action

// DefaultBindings returns the stock key layout.
func DefaultBindings() Bindings {
	return Bindings{
		KeyLeft:      viewer.ActionMoveLeft,
		KeyRight:     viewer.ActionMoveRight,
		KeyUp:        viewer.ActionMoveUp,
		KeyDown:      viewer.ActionMoveDown,
		KeyPageUp:    viewer.ActionZoomIn,
		KeyPageDown:  viewer.ActionZoomOut,
		KeyKP8:       viewer.ActionXTurnClockwise,
		KeyKP2:       viewer.ActionXTurnCounterClockwise,
		KeyKP6:       viewer.ActionYTurnClockwise,
		KeyKP4:       viewer.ActionYTurnCounterClockwise,
		KeyKP9:       viewer.ActionZTurnClockwise,
		KeyKP7:       viewer.ActionZTurnCounterClockwise,
		KeyTab:       viewer.ActionSelectNextLight,
		KeyBackquote: viewer.ActionSelectPreviousLight,
		KeyKPPlus:    viewer.ActionIncreaseLight,
		KeyKPMinus:   viewer.ActionDecreaseLight,
		'r':          viewer.ActionAddRed,
		'g':          viewer.ActionAddGreen,
		'b':          viewer.ActionAddBlue,
		't':          viewer.ActionAddTransparency,
		KeyF2:        viewer.ActionChangeAAValue,
		KeyF1:        viewer.ActionShowHelp,
		KeyF3:        viewer.ActionToggleMeshMode,
		KeyBackspace: viewer.ActionResetParams,
		KeyEscape:    viewer.ActionQuit,
	}
}

// Override rebinds actions by name. resolve turns a key name into a Key and
// reports false for unknown names. Every existing binding of an overridden
// action is dropped first.
func (b Bindings) Override(byAction map[string]string, resolve func(name string) (viewer.Key, bool)) error {
	for actionName, keyName := range byAction {
		action, err := viewer.ParseAction(actionName)
		if err != nil {
			return err
		}
		key, ok := resolve(keyName)
		if !ok {
			return fmt.Errorf("action %s: unknown key %q", actionName, keyName)
		}
		for k, a := range b {
			if a == action {
				delete(b, k)
			}
		}
		b[key] = action
	}
	return nil
}

// Describe lists each action with its keys, one per line, using name to
// render keys.
func (b Bindings) Describe(name func(viewer.Key) string) string {
	keys := make(map[viewer.Action][]string)
	for k, a := range b {
		keys[a] = append(keys[a], name(k))
	}

	var lines []string
	for a := viewer.Action(0); a < viewer.ActionCount; a++ {
		if len(keys[a]) == 0 {
			continue
		}
		sort.Strings(keys[a])
		lines = append(lines, fmt.Sprintf("%-22s %s", a, strings.Join(keys[a], ", ")))
	}
	return strings.Join(lines, "\n")
}
