package systems

import (
	"image/color"

	"github.com/decker502/slotreel/pkg/components"
	"github.com/decker502/slotreel/pkg/config"
	"github.com/decker502/slotreel/pkg/ecs"
	"github.com/decker502/slotreel/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// RenderSystem 管理转轮画面的渲染
//
// 渲染顺序（从底到顶）：背景 → 转轮列 → 底栏
// 按钮由 ButtonRenderSystem 在底栏之上单独绘制。
//
// 转轮列先画到一张离屏图片再贴到屏幕，图片高度就是可见窗口高度，
// 超出窗口的格子自然被裁掉。格子在列内的绘制位置是 Y - 格子高度：
// 第一条格子带位于窗口上方，换符号总是发生在看不见的地方。
type RenderSystem struct {
	entityManager *ecs.EntityManager
	reel          *ReelSystem

	backgroundColor color.RGBA
	footerColor     color.RGBA

	// column 转轮列的离屏缓冲，视口变化时重新分配
	column *ebiten.Image
}

// NewRenderSystem 创建渲染系统
func NewRenderSystem(em *ecs.EntityManager, reel *ReelSystem, cfg *config.SlotConfig) *RenderSystem {
	return &RenderSystem{
		entityManager:   em,
		reel:            reel,
		backgroundColor: utils.ColorFromHex(cfg.ApplicationFillColor),
		footerColor:     utils.ColorFromHex(cfg.FooterFillColor),
	}
}

// Draw 绘制背景、转轮列和底栏
func (s *RenderSystem) Draw(screen *ebiten.Image) {
	screen.Fill(s.backgroundColor)

	bounds := screen.Bounds()
	screenWidth, screenHeight := float64(bounds.Dx()), float64(bounds.Dy())

	s.DrawReel(screen, screenWidth, screenHeight)
	s.DrawFooter(screen, screenWidth, screenHeight)
}

// DrawReel 绘制转轮列
func (s *RenderSystem) DrawReel(screen *ebiten.Image, screenWidth, screenHeight float64) {
	layout := s.reel.Layout()
	x, y, width, height := layout.ColumnBounds(screenWidth, screenHeight)

	s.column = utils.EnsureImage(s.column, int(width), int(height))
	if s.column == nil {
		return
	}
	s.column.Clear()

	slotHeight := layout.VerticalSlotHeight(screenHeight)
	for _, id := range s.reel.Items() {
		s.drawItem(s.column, id, width, slotHeight)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, y)
	screen.DrawImage(s.column, op)
}

// drawItem 在列缓冲中绘制一个格子，贴图在格子内居中
func (s *RenderSystem) drawItem(column *ebiten.Image, id ecs.EntityID, columnWidth, slotHeight float64) {
	item, ok := ecs.GetComponent[*components.ReelItemComponent](s.entityManager, id)
	if !ok {
		return
	}
	sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)
	if !ok || sprite.Image == nil {
		return
	}

	top := item.Y - slotHeight
	windowHeight := float64(column.Bounds().Dy())
	if top+slotHeight <= 0 || top >= windowHeight {
		return
	}

	b := sprite.Image.Bounds()
	drawnWidth := float64(b.Dx()) * sprite.Scale
	drawnHeight := float64(b.Dy()) * sprite.Scale

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(sprite.Scale, sprite.Scale)
	op.GeoM.Translate((columnWidth-drawnWidth)/2, top+(slotHeight-drawnHeight)/2)
	op.Filter = ebiten.FilterLinear
	column.DrawImage(sprite.Image, op)
}

// DrawFooter 绘制底栏
func (s *RenderSystem) DrawFooter(screen *ebiten.Image, screenWidth, screenHeight float64) {
	x, y, width, height := s.reel.Layout().FooterBounds(screenWidth, screenHeight)
	if width <= 0 || height <= 0 {
		return
	}
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(width), float32(height), s.footerColor, false)
}

// strokeLine 画一条直线
func strokeLine(dst *ebiten.Image, x0, y0, x1, y1, width float64, clr color.Color) {
	vector.StrokeLine(dst, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), clr, true)
}
