package utils

import (
	"image/color"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestColorFromHex(t *testing.T) {
	tests := []struct {
		name     string
		hex      uint32
		expected color.RGBA
	}{
		{"背景色", 0xffd8cc, color.RGBA{0xff, 0xd8, 0xcc, 0xff}},
		{"底栏色", 0x0a1d37, color.RGBA{0x0a, 0x1d, 0x37, 0xff}},
		{"白色", 0xffffff, color.RGBA{0xff, 0xff, 0xff, 0xff}},
		{"黑色", 0x000000, color.RGBA{0, 0, 0, 0xff}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ColorFromHex(tt.hex); got != tt.expected {
				t.Errorf("ColorFromHex(%#06x) = %v, 期望 %v", tt.hex, got, tt.expected)
			}
		})
	}
}

func TestEnsureImage(t *testing.T) {
	img := EnsureImage(nil, 40, 30)
	if img == nil {
		t.Fatal("EnsureImage(nil, 40, 30) 返回 nil")
	}
	if b := img.Bounds(); b.Dx() != 40 || b.Dy() != 30 {
		t.Errorf("尺寸 = %dx%d, 期望 40x30", b.Dx(), b.Dy())
	}

	// 尺寸相同：复用
	if again := EnsureImage(img, 40, 30); again != img {
		t.Error("尺寸不变时应该复用原图")
	}

	// 尺寸变化：重新分配
	resized := EnsureImage(img, 50, 30)
	if resized == img {
		t.Error("尺寸变化时应该返回新图")
	}
	if b := resized.Bounds(); b.Dx() != 50 {
		t.Errorf("新图宽度 = %d, 期望 50", b.Dx())
	}

	if EnsureImage(resized, 0, 30) != nil {
		t.Error("宽度为 0 时应该返回 nil")
	}
	if EnsureImage(ebiten.NewImage(1, 1), 10, -1) != nil {
		t.Error("高度为负时应该返回 nil")
	}
}
