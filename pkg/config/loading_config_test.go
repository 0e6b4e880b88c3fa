package config

import "testing"

func TestLoadingBarBounds(t *testing.T) {
	x, y, w, h := LoadingBarBounds(1280, 1080)

	// 1280 × 0.4 = 512，居中 x = (1280-512)/2 = 384
	if x != 384 || w != 512 {
		t.Errorf("x, width = %v, %v, want 384, 512", x, w)
	}
	if y != (1080-LoadingBarHeight)/2 || h != LoadingBarHeight {
		t.Errorf("y, height = %v, %v, want %v, %v", y, h, (1080-LoadingBarHeight)/2, LoadingBarHeight)
	}
}
