package components

import "github.com/hajimehoshi/ebiten/v2"

// SpriteComponent 存储实体的视觉表现(当前绘制的图像)
// 换符号时只替换 Image，Scale 保持按 ItemSize 计算的缩放
type SpriteComponent struct {
	Image *ebiten.Image
	Scale float64 // 等比缩放系数，0 视为 1
}
