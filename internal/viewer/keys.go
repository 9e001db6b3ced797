package viewer

import "github.com/Faultbox/meshview/pkg/ring"

// Key is a keyboard symbol in the SDL keycode space: printable keys use their
// lowercase ASCII value, others carry the scancode with bit 30 set.
type Key int32

// KeyNone marks an empty history slot. It is SDLK_UNKNOWN and never part of
// SecretCode.
const KeyNone Key = 0

// Letter keys used by the secret code.
const (
	KeyA Key = 'a'
	KeyC Key = 'c'
	KeyD Key = 'd'
	KeyE Key = 'e'
	KeyK Key = 'k'
	KeyL Key = 'l'
	KeyS Key = 's'
	KeyU Key = 'u'
	KeyZ Key = 'z'
)

// HistorySize is the number of key presses remembered.
const HistorySize = 10

// SecretCode is the sequence that unlocks the triforce scene.
var SecretCode = [HistorySize]Key{KeyZ, KeyE, KeyL, KeyD, KeyA, KeyS, KeyU, KeyC, KeyK, KeyS}

// KeyHistory remembers the last HistorySize key presses.
type KeyHistory struct {
	keys *ring.Ring[Key]
}

// NewKeyHistory returns an empty history.
func NewKeyHistory() *KeyHistory {
	return &KeyHistory{keys: ring.New(HistorySize, KeyNone)}
}

// AddKey records a key press, overwriting the oldest one once full.
func (h *KeyHistory) AddKey(k Key) {
	h.keys.Push(k)
}

// Reset clears every slot back to KeyNone.
func (h *KeyHistory) Reset() {
	h.keys.Fill(KeyNone)
}

// Keys returns the raw slots in storage order.
func (h *KeyHistory) Keys() []Key {
	return h.keys.Slots()
}

// IsSecretCodeMatched reports whether the slots hold SecretCode under some
// rotation. The write cursor is not consulted.
func (h *KeyHistory) IsSecretCodeMatched() bool {
	return ring.MatchesRotation(h.keys, SecretCode[:])
}
