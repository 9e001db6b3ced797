package viewer

import "testing"

func TestTriforceStartsOffset(t *testing.T) {
	tf := NewTriforce()

	for i, p := range tf.Pieces {
		if p.Position == p.Destination {
			t.Errorf("piece %d starts at its destination", i)
		}
		if p.Position.Z != p.Destination.Z-triforceStartOffset {
			t.Errorf("piece %d z = %f, want %f", i, p.Position.Z, p.Destination.Z-triforceStartOffset)
		}
	}
	if tf.Done() {
		t.Error("fresh animation should not be done")
	}
}

func TestTriforceConverges(t *testing.T) {
	tf := NewTriforce()

	// 3 units/s covers 15 units in 5s; 180 deg/s reaches 4 turns in 8s
	for i := 0; i < 110; i++ {
		tf.Update(0.05, 3, 180)
	}
	if tf.Done() {
		t.Fatal("should not be done after 5.5s, still spinning")
	}
	for i, p := range tf.Pieces {
		if p.Position != p.Destination {
			t.Errorf("piece %d at %v after 5.5s, want %v", i, p.Position, p.Destination)
		}
	}

	for i := 0; i < 100; i++ {
		tf.Update(0.05, 3, 180)
	}
	if !tf.Done() {
		t.Error("should be done after 10s")
	}
	for i, p := range tf.Pieces {
		if p.RotationX != triforceMaxTurns*360 {
			t.Errorf("piece %d rotation %f overshot the cap", i, p.RotationX)
		}
	}
}

func TestTriforceReset(t *testing.T) {
	tf := NewTriforce()
	start := tf.Pieces
	tf.Update(1, 3, 180)
	tf.Reset()

	if tf.Pieces != start {
		t.Errorf("reset pieces = %v, want %v", tf.Pieces, start)
	}
}
