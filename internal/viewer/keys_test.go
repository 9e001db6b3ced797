package viewer

import (
	"slices"
	"testing"
)

func typeKeys(h *KeyHistory, s string) {
	for _, c := range s {
		h.AddKey(Key(c))
	}
}

func TestKeyHistoryStartsEmpty(t *testing.T) {
	h := NewKeyHistory()

	for i, k := range h.Keys() {
		if k != KeyNone {
			t.Errorf("slot %d = %d, want KeyNone", i, k)
		}
	}
	if h.IsSecretCodeMatched() {
		t.Error("empty history should not match")
	}
}

func TestKeyHistoryOverwritesOldest(t *testing.T) {
	h := NewKeyHistory()
	typeKeys(h, "0123456789ab")

	// "a" and "b" replaced "0" and "1"
	want := []Key{'a', 'b', '2', '3', '4', '5', '6', '7', '8', '9'}
	if got := h.Keys(); !slices.Equal(got, want) {
		t.Errorf("keys = %v, want %v", got, want)
	}
}

func TestSecretCodeScenarios(t *testing.T) {
	tests := []struct {
		name  string
		typed string
		want  bool
	}{
		{"exact at offset 0", "zeldasucks", true},
		{"shifted by one stale key", "?zeldasucks", true},
		{"long prefix", "hello world zeldasucks", true},
		{"last key wrong", "zeldasuckx", false},
		{"too short", "zeldasuck", false},
		{"interrupted", "zeldaxsucks", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewKeyHistory()
			typeKeys(h, tt.typed)
			if got := h.IsSecretCodeMatched(); got != tt.want {
				t.Errorf("IsSecretCodeMatched() after %q = %v, want %v", tt.typed, got, tt.want)
			}
		})
	}
}

func TestSecretCodeEveryRotation(t *testing.T) {
	for shift := 0; shift < HistorySize; shift++ {
		h := NewKeyHistory()
		for i := 0; i < HistorySize; i++ {
			h.AddKey(SecretCode[(i+shift)%HistorySize])
		}
		if !h.IsSecretCodeMatched() {
			t.Errorf("rotation %d should match", shift)
		}

		// alter one symbol of the same rotation
		h.Reset()
		for i := 0; i < HistorySize; i++ {
			k := SecretCode[(i+shift)%HistorySize]
			if i == 4 {
				k = 'x'
			}
			h.AddKey(k)
		}
		if h.IsSecretCodeMatched() {
			t.Errorf("rotation %d with one altered key should not match", shift)
		}
	}
}

func TestKeyHistoryResetIdempotent(t *testing.T) {
	h := NewKeyHistory()
	typeKeys(h, "zeldasucks")

	h.Reset()
	once := h.Keys()
	h.Reset()
	twice := h.Keys()

	if !slices.Equal(once, twice) {
		t.Errorf("second reset changed keys: %v vs %v", once, twice)
	}
	if h.IsSecretCodeMatched() {
		t.Error("reset history should not match")
	}
}

func TestAddKeyAcceptsSentinel(t *testing.T) {
	h := NewKeyHistory()
	typeKeys(h, "zeldasucks")
	h.AddKey(KeyNone)

	if h.IsSecretCodeMatched() {
		t.Error("sentinel overwrote the first z, history should not match")
	}
}
