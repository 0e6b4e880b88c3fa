package game

import "testing"

func TestViewportResize(t *testing.T) {
	v := NewViewport(1280, 1080)

	if v.Resize(1280, 1080) {
		t.Error("Resize with the same size should report no change")
	}

	if !v.Resize(800, 600) {
		t.Error("Resize with a new size should report a change")
	}

	w, h := v.Size()
	if w != 800 || h != 600 {
		t.Errorf("Size() = (%v, %v), want (800, 600)", w, h)
	}
}
