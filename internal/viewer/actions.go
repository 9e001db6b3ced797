package viewer

import "fmt"

// Action is a discrete user intent.
type Action uint8

const (
	ActionMoveLeft Action = iota
	ActionMoveRight
	ActionMoveUp
	ActionMoveDown
	ActionZoomIn
	ActionZoomOut
	ActionXTurnClockwise
	ActionXTurnCounterClockwise
	ActionYTurnClockwise
	ActionYTurnCounterClockwise
	ActionZTurnClockwise
	ActionZTurnCounterClockwise
	ActionSelectNextLight
	ActionSelectPreviousLight
	ActionIncreaseLight
	ActionDecreaseLight
	ActionAddRed
	ActionAddGreen
	ActionAddBlue
	ActionAddTransparency
	ActionChangeAAValue
	ActionShowHelp
	ActionToggleMeshMode
	ActionResetParams
	ActionQuit

	ActionCount
)

var actionNames = [ActionCount]string{
	ActionMoveLeft:              "move_left",
	ActionMoveRight:             "move_right",
	ActionMoveUp:                "move_up",
	ActionMoveDown:              "move_down",
	ActionZoomIn:                "zoom_in",
	ActionZoomOut:               "zoom_out",
	ActionXTurnClockwise:        "x_turn_cw",
	ActionXTurnCounterClockwise: "x_turn_ccw",
	ActionYTurnClockwise:        "y_turn_cw",
	ActionYTurnCounterClockwise: "y_turn_ccw",
	ActionZTurnClockwise:        "z_turn_cw",
	ActionZTurnCounterClockwise: "z_turn_ccw",
	ActionSelectNextLight:       "select_next_light",
	ActionSelectPreviousLight:   "select_previous_light",
	ActionIncreaseLight:         "increase_light",
	ActionDecreaseLight:         "decrease_light",
	ActionAddRed:                "add_red",
	ActionAddGreen:              "add_green",
	ActionAddBlue:               "add_blue",
	ActionAddTransparency:       "add_transparency",
	ActionChangeAAValue:         "change_aa",
	ActionShowHelp:              "show_help",
	ActionToggleMeshMode:        "toggle_mesh_mode",
	ActionResetParams:           "reset",
	ActionQuit:                  "quit",
}

func (a Action) String() string {
	if a < ActionCount {
		return actionNames[a]
	}
	return fmt.Sprintf("Action(%d)", uint8(a))
}

// ParseAction resolves a config name such as "move_left".
func ParseAction(name string) (Action, error) {
	for a, n := range actionNames {
		if n == name {
			return Action(a), nil
		}
	}
	return 0, fmt.Errorf("unknown action %q", name)
}

// Edge reports whether the action fires once per press rather than every
// frame the key is held.
func (a Action) Edge() bool {
	switch a {
	case ActionSelectNextLight, ActionSelectPreviousLight,
		ActionChangeAAValue, ActionShowHelp,
		ActionToggleMeshMode, ActionResetParams, ActionQuit:
		return true
	default:
		return false
	}
}

// ActionState is the set of actions requested this frame.
type ActionState struct {
	MoveLeft              bool
	MoveRight             bool
	MoveUp                bool
	MoveDown              bool
	ZoomIn                bool
	ZoomOut               bool
	XTurnClockwise        bool
	XTurnCounterClockwise bool
	YTurnClockwise        bool
	YTurnCounterClockwise bool
	ZTurnClockwise        bool
	ZTurnCounterClockwise bool
	SelectNextLight       bool
	SelectPreviousLight   bool
	IncreaseLight         bool
	DecreaseLight         bool
	AddRed                bool
	AddGreen              bool
	AddBlue               bool
	AddTransparency       bool
	ChangeAAValue         bool
	ShowHelp              bool
	ToggleMeshMode        bool
	ResetParams           bool
	Quit                  bool
}

// Get returns the flag for a.
func (s *ActionState) Get(a Action) bool {
	return *s.flag(a)
}

// Set sets the flag for a.
func (s *ActionState) Set(a Action, v bool) {
	*s.flag(a) = v
}

// ClearEdges drops every edge-triggered flag once it has been consumed.
func (s *ActionState) ClearEdges() {
	for a := Action(0); a < ActionCount; a++ {
		if a.Edge() {
			s.Set(a, false)
		}
	}
}

func (s *ActionState) flag(a Action) *bool {
	switch a {
	case ActionMoveLeft:
		return &s.MoveLeft
	case ActionMoveRight:
		return &s.MoveRight
	case ActionMoveUp:
		return &s.MoveUp
	case ActionMoveDown:
		return &s.MoveDown
	case ActionZoomIn:
		return &s.ZoomIn
	case ActionZoomOut:
		return &s.ZoomOut
	case ActionXTurnClockwise:
		return &s.XTurnClockwise
	case ActionXTurnCounterClockwise:
		return &s.XTurnCounterClockwise
	case ActionYTurnClockwise:
		return &s.YTurnClockwise
	case ActionYTurnCounterClockwise:
		return &s.YTurnCounterClockwise
	case ActionZTurnClockwise:
		return &s.ZTurnClockwise
	case ActionZTurnCounterClockwise:
		return &s.ZTurnCounterClockwise
	case ActionSelectNextLight:
		return &s.SelectNextLight
	case ActionSelectPreviousLight:
		return &s.SelectPreviousLight
	case ActionIncreaseLight:
		return &s.IncreaseLight
	case ActionDecreaseLight:
		return &s.DecreaseLight
	case ActionAddRed:
		return &s.AddRed
	case ActionAddGreen:
		return &s.AddGreen
	case ActionAddBlue:
		return &s.AddBlue
	case ActionAddTransparency:
		return &s.AddTransparency
	case ActionChangeAAValue:
		return &s.ChangeAAValue
	case ActionShowHelp:
		return &s.ShowHelp
	case ActionToggleMeshMode:
		return &s.ToggleMeshMode
	case ActionResetParams:
		return &s.ResetParams
	case ActionQuit:
		return &s.Quit
	default:
		panic(fmt.Sprintf("viewer: invalid Action %d", uint8(a)))
	}
}
