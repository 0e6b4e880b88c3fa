package systems

import (
	"math"

	"github.com/decker502/slotreel/pkg/components"
	"github.com/decker502/slotreel/pkg/config"
	"github.com/decker502/slotreel/pkg/ecs"
	"github.com/decker502/slotreel/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
)

// ReelSystem 管理转轮状态：固定数量的格子实体及其顺序
//
// 每个格子是一个实体，带 ReelItemComponent（格子下标、符号、Y）和 SpriteComponent（贴图）。
// 格子数量在创建时确定，之后不再增减。
type ReelSystem struct {
	entityManager *ecs.EntityManager
	symbols       *game.SymbolSet
	layout        config.ReelLayout
	viewport      *game.Viewport
	itemSize      float64

	// items 按 Slot 排列的格子实体
	items []ecs.EntityID

	// restOffset 静止时的转轮偏移，范围 [0, len(items))
	restOffset float64
}

// NewReelSystem 创建转轮并生成 itemCount 个格子
// 每个格子的初始符号均匀随机，初始位置为第 i 格的静止坐标
func NewReelSystem(em *ecs.EntityManager, symbols *game.SymbolSet, layout config.ReelLayout, viewport *game.Viewport, itemCount int, itemSize float64) *ReelSystem {
	rs := &ReelSystem{
		entityManager: em,
		symbols:       symbols,
		layout:        layout,
		viewport:      viewport,
		itemSize:      itemSize,
		items:         make([]ecs.EntityID, 0, itemCount),
	}

	screenHeight := rs.screenHeight()
	for i := 0; i < itemCount; i++ {
		symbol := symbols.RandomSymbol()
		texture := symbols.Texture(symbol)

		id := em.CreateEntity()
		ecs.AddComponent(em, id, &components.ReelItemComponent{
			Slot:   i,
			Symbol: symbol,
			Y:      layout.VerticalCoordForSlot(float64(i), screenHeight),
		})
		ecs.AddComponent(em, id, &components.SpriteComponent{
			Image: texture,
			Scale: FitScale(texture, itemSize),
		})

		rs.items = append(rs.items, id)
	}

	return rs
}

// ItemCount 返回格子数量
func (rs *ReelSystem) ItemCount() int {
	return len(rs.items)
}

// Items 返回按 Slot 排列的格子实体（副本）
func (rs *ReelSystem) Items() []ecs.EntityID {
	out := make([]ecs.EntityID, len(rs.items))
	copy(out, rs.items)
	return out
}

// Item 返回第 slot 个格子的组件
func (rs *ReelSystem) Item(slot int) (*components.ReelItemComponent, bool) {
	if slot < 0 || slot >= len(rs.items) {
		return nil, false
	}
	return ecs.GetComponent[*components.ReelItemComponent](rs.entityManager, rs.items[slot])
}

// Layout 返回布局参数
func (rs *ReelSystem) Layout() config.ReelLayout {
	return rs.layout
}

// SlotHeight 返回当前视口下每个格子的高度
func (rs *ReelSystem) SlotHeight() float64 {
	return rs.layout.VerticalSlotHeight(rs.screenHeight())
}

// PositionItems 按转轮偏移重新计算所有格子的 Y
//
// 第 i 个格子的新位置为 VerticalCoordForSlot(wrap(offset+i), 屏幕高度)。
// allowSwap 为 true 时应用换符号规则：格子从底部回绕到顶部入口带
// （新 Y < 格子高度 且 旧 Y > 格子高度）时，均匀随机换一个符号。
//
// 返回本次换符号的格子数。
func (rs *ReelSystem) PositionItems(offset float64, allowSwap bool) int {
	screenHeight := rs.screenHeight()
	slotHeight := rs.layout.VerticalSlotHeight(screenHeight)
	n := len(rs.items)
	swapped := 0

	for i, id := range rs.items {
		item, ok := ecs.GetComponent[*components.ReelItemComponent](rs.entityManager, id)
		if !ok {
			continue
		}

		previousY := item.Y
		item.Y = rs.layout.VerticalCoordForSlot(WrapSlot(offset+float64(i), n), screenHeight)

		// 只检查落点：一帧跨过多个格子时中途的回绕不换符号
		if allowSwap && item.Y < slotHeight && previousY > slotHeight {
			rs.setSymbol(id, item, rs.symbols.RandomSymbol())
			swapped++
		}
	}

	return swapped
}

// Relayout 按静止偏移把所有格子放回静止位置（不换符号）
// 用于空闲状态下视口尺寸变化
func (rs *ReelSystem) Relayout() {
	rs.PositionItems(rs.restOffset, false)
}

// RestOffset 返回静止时的转轮偏移
func (rs *ReelSystem) RestOffset() float64 {
	return rs.restOffset
}

// SetRestOffset 记录旋转停下时的偏移，折回 [0, 格子数)
func (rs *ReelSystem) SetRestOffset(offset float64) {
	rs.restOffset = WrapSlot(math.Round(offset), len(rs.items))
}

// SetSymbol 设置第 slot 个格子的符号并同步贴图
func (rs *ReelSystem) SetSymbol(slot, symbol int) bool {
	if slot < 0 || slot >= len(rs.items) || symbol < 0 || symbol >= rs.symbols.Len() {
		return false
	}
	id := rs.items[slot]
	item, ok := ecs.GetComponent[*components.ReelItemComponent](rs.entityManager, id)
	if !ok {
		return false
	}
	rs.setSymbol(id, item, symbol)
	return true
}

// VisibleSymbols 返回当前处于可见窗口内的符号，按从上到下排列
// 可见窗口为 [格子高度, (可见数+1)×格子高度)，顶部第一条带是隐藏的入口带
func (rs *ReelSystem) VisibleSymbols() []int {
	slotHeight := rs.SlotHeight()
	if slotHeight <= 0 {
		return nil
	}

	type visible struct {
		y      float64
		symbol int
	}
	var found []visible
	for _, id := range rs.items {
		item, ok := ecs.GetComponent[*components.ReelItemComponent](rs.entityManager, id)
		if !ok {
			continue
		}
		top := item.Y - slotHeight
		if top > -slotHeight/2 && top < float64(rs.layout.VisibleItems)*slotHeight-slotHeight/2 {
			found = append(found, visible{y: item.Y, symbol: item.Symbol})
		}
	}

	// 插入排序，格子数很少
	for i := 1; i < len(found); i++ {
		for j := i; j > 0 && found[j].y < found[j-1].y; j-- {
			found[j], found[j-1] = found[j-1], found[j]
		}
	}

	symbols := make([]int, len(found))
	for i, v := range found {
		symbols[i] = v.symbol
	}
	return symbols
}

func (rs *ReelSystem) setSymbol(id ecs.EntityID, item *components.ReelItemComponent, symbol int) {
	item.Symbol = symbol
	if sprite, ok := ecs.GetComponent[*components.SpriteComponent](rs.entityManager, id); ok {
		sprite.Image = rs.symbols.Texture(symbol)
	}
}

func (rs *ReelSystem) screenHeight() float64 {
	if rs.viewport == nil {
		return 0
	}
	return rs.viewport.Height
}

// WrapSlot 将连续的转轮位置折回 [0, n)
// 负数也会正确回绕；n <= 0 时返回 0
func WrapSlot(position float64, n int) float64 {
	if n <= 0 || math.IsNaN(position) || math.IsInf(position, 0) {
		return 0
	}
	size := float64(n)
	wrapped := math.Mod(position, size)
	if wrapped < 0 {
		wrapped += size
	}
	// -1e-17 + n 会舍入成 n
	if wrapped >= size {
		wrapped = 0
	}
	return wrapped
}

// FitScale 返回把贴图等比缩放进 size×size 的系数
func FitScale(img *ebiten.Image, size float64) float64 {
	if img == nil || size <= 0 {
		return 1
	}
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	if w == 0 || h == 0 {
		return 1
	}
	return math.Min(size/float64(w), size/float64(h))
}
