package controls

import (
	"github.com/Faultbox/meshview/internal/viewer"
)

// Translator turns key presses and releases into ActionState flags and feeds
// fresh presses into the key history.
type Translator struct {
	bindings Bindings
	held     map[viewer.Key]bool
	actions  *viewer.ActionState
	history  *viewer.KeyHistory
}

// NewTranslator writes into actions and history, both owned by the caller.
func NewTranslator(bindings Bindings, actions *viewer.ActionState, history *viewer.KeyHistory) *Translator {
	return &Translator{
		bindings: bindings,
		held:     make(map[viewer.Key]bool),
		actions:  actions,
		history:  history,
	}
}

// KeyDown handles a press. Auto-repeat presses neither fire edge actions
// nor enter the history.
func (t *Translator) KeyDown(k viewer.Key, repeat bool) {
	if repeat {
		return
	}
	t.history.AddKey(k)
	t.held[k] = true

	action, ok := t.bindings[k]
	if !ok {
		return
	}
	t.actions.Set(action, true)
}

// KeyUp handles a release. A level action stays set while any other key
// bound to it is still held.
func (t *Translator) KeyUp(k viewer.Key) {
	delete(t.held, k)

	action, ok := t.bindings[k]
	if !ok || action.Edge() {
		return
	}
	t.actions.Set(action, t.anyHeld(action))
}

// ReleaseAll drops every held key, e.g. when the window loses focus.
func (t *Translator) ReleaseAll() {
	for k := range t.held {
		t.KeyUp(k)
	}
}

func (t *Translator) anyHeld(action viewer.Action) bool {
	for k := range t.held {
		if a, ok := t.bindings[k]; ok && a == action {
			return true
		}
	}
	return false
}
