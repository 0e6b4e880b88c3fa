package utils

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// ColorFromHex 把 0xRRGGBB 形式的颜色转换为不透明的 color.RGBA
// 配置文件中的颜色都用这种写法，如 0xffd8cc
func ColorFromHex(hex uint32) color.RGBA {
	return color.RGBA{
		R: uint8(hex >> 16),
		G: uint8(hex >> 8),
		B: uint8(hex),
		A: 0xff,
	}
}

// EnsureImage 返回一张 width×height 的离屏图片
// img 尺寸已经匹配时原样返回（调用方负责 Clear），否则释放旧图并新建
// width 或 height 小于 1 时返回 nil
//
// Usage Example (转轮列的裁剪缓冲):
//
//	s.column = utils.EnsureImage(s.column, w, h)
//	s.column.Clear()
func EnsureImage(img *ebiten.Image, width, height int) *ebiten.Image {
	if width < 1 || height < 1 {
		if img != nil {
			img.Deallocate()
		}
		return nil
	}

	if img != nil {
		b := img.Bounds()
		if b.Dx() == width && b.Dy() == height {
			return img
		}
		img.Deallocate()
	}

	return ebiten.NewImage(width, height)
}
