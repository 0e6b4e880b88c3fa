package systems

import (
	"image/color"

	"github.com/decker502/slotreel/pkg/components"
	"github.com/decker502/slotreel/pkg/ecs"
	"github.com/decker502/slotreel/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// 按钮外观参数
const (
	buttonDisabledAlpha  = 0.4  // 禁用时文字透明度
	buttonHoverScale     = 1.05 // 悬停放大
	buttonPressShrink    = 0.08 // 按下瞬间缩小比例
	buttonShadowOffset   = 2.0
	buttonShadowAlpha    = 180
	buttonUnderlineWidth = 2.0
)

// ButtonRenderSystem 按钮渲染系统
// 负责渲染所有文字按钮实体
//
// 职责：
//   - 渲染按钮文字（在点击区域内居中，带阴影）
//   - 悬停时放大并加下划线，按下时短暂缩小
//   - 禁用时半透明
type ButtonRenderSystem struct {
	entityManager *ecs.EntityManager
}

// NewButtonRenderSystem 创建按钮渲染系统
func NewButtonRenderSystem(em *ecs.EntityManager) *ButtonRenderSystem {
	return &ButtonRenderSystem{
		entityManager: em,
	}
}

// Draw 渲染所有按钮
// 查询所有拥有 ButtonComponent 和 PositionComponent 的实体并渲染
func (s *ButtonRenderSystem) Draw(screen *ebiten.Image) {
	entities := ecs.GetEntitiesWith2[*components.ButtonComponent, *components.PositionComponent](s.entityManager)

	for _, entityID := range entities {
		s.DrawButton(screen, entityID)
	}
}

// DrawButton 渲染单个按钮实体
func (s *ButtonRenderSystem) DrawButton(screen *ebiten.Image, entityID ecs.EntityID) {
	button, ok := ecs.GetComponent[*components.ButtonComponent](s.entityManager, entityID)
	if !ok || button.Text == "" || button.Font == nil {
		return
	}
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, entityID)
	if !ok {
		return
	}
	clickable, ok := ecs.GetComponent[*components.ClickableComponent](s.entityManager, entityID)
	if !ok {
		return
	}

	centerX := pos.X + clickable.Width/2
	centerY := pos.Y + clickable.Height/2
	scale := ButtonScale(button, clickable.IsEnabled)
	alpha := float32(1)
	if !clickable.IsEnabled {
		alpha = buttonDisabledAlpha
	}

	// 1. 阴影
	shadowOp := &text.DrawOptions{}
	shadowOp.LayoutOptions.PrimaryAlign = text.AlignCenter
	shadowOp.LayoutOptions.SecondaryAlign = text.AlignCenter
	shadowOp.GeoM.Scale(scale, scale)
	shadowOp.GeoM.Translate(centerX+buttonShadowOffset, centerY+buttonShadowOffset)
	shadowOp.ColorScale.ScaleWithColor(color.RGBA{0, 0, 0, buttonShadowAlpha})
	shadowOp.ColorScale.ScaleAlpha(alpha)
	text.Draw(screen, button.Text, button.Font, shadowOp)

	// 2. 主文字
	textColor := color.RGBA{
		R: button.TextColor[0],
		G: button.TextColor[1],
		B: button.TextColor[2],
		A: button.TextColor[3],
	}
	op := &text.DrawOptions{}
	op.LayoutOptions.PrimaryAlign = text.AlignCenter   // 水平居中
	op.LayoutOptions.SecondaryAlign = text.AlignCenter // 垂直居中
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(centerX, centerY)
	op.ColorScale.ScaleWithColor(textColor)
	op.ColorScale.ScaleAlpha(alpha)
	text.Draw(screen, button.Text, button.Font, op)

	// 3. 悬停下划线
	if button.Hovered && clickable.IsEnabled {
		w, h := text.Measure(button.Text, button.Font, 0)
		w *= scale
		h *= scale
		strokeLine(screen, centerX-w/2, centerY+h/2+2, centerX+w/2, centerY+h/2+2, buttonUnderlineWidth, textColor)
	}
}

// ButtonScale 返回按钮当前的绘制缩放
// 按下反馈线性衰减，缩小量按二次缓出回弹
func ButtonScale(button *components.ButtonComponent, enabled bool) float64 {
	scale := 1.0
	if enabled && button.Hovered {
		scale = buttonHoverScale
	}
	return scale * (1 - buttonPressShrink*utils.EaseOutQuad(button.PressFeedback))
}
