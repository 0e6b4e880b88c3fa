package scenes

import (
	"fmt"
	"log"
	"math/rand/v2"

	"github.com/decker502/slotreel/pkg/components"
	"github.com/decker502/slotreel/pkg/config"
	"github.com/decker502/slotreel/pkg/ecs"
	"github.com/decker502/slotreel/pkg/game"
	"github.com/decker502/slotreel/pkg/systems"
	"github.com/decker502/slotreel/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// 按钮文字四周的点击留白（像素）
const (
	buttonPaddingX = 24.0
	buttonPaddingY = 12.0
)

// ReelScene 转轮主场景
//
// 持有唯一的转轮、旋转控制器和 "START A SPIN" 按钮。
// 每帧顺序：视口变化检查 → 输入（按钮 / 空格 / 回车）→ 旋转推进 → 按钮启用状态。
type ReelScene struct {
	entityManager *ecs.EntityManager
	cfg           *config.SlotConfig
	viewport      *game.Viewport

	reelSystem         *systems.ReelSystem
	spinSystem         *systems.SpinSystem
	renderSystem       *systems.RenderSystem
	buttonSystem       *systems.ButtonSystem
	buttonRenderSystem *systems.ButtonRenderSystem

	buttonEntity ecs.EntityID

	// 上一帧的视口尺寸，用于检测窗口缩放
	lastWidth, lastHeight float64

	// lastResult 最近一次旋转停下时可见的符号
	lastResult []int
}

// ReelSceneDeps 构造 ReelScene 需要的外部依赖
type ReelSceneDeps struct {
	Textures        []*ebiten.Image
	ResourceManager *game.ResourceManager
	Config          *config.SlotConfig
	Viewport        *game.Viewport
	Clock           game.Clock
	AudioManager    *game.AudioManager // 可为 nil
	Rand            *rand.Rand         // 可为 nil
}

// NewReelScene 创建转轮场景
// 依次创建符号集、转轮、旋转控制器、渲染系统和按钮
func NewReelScene(deps ReelSceneDeps) (*ReelScene, error) {
	cfg := deps.Config
	if cfg == nil {
		cfg = config.DefaultSlotConfig()
	}
	clock := deps.Clock
	if clock == nil {
		clock = game.NewTimeProvider()
	}
	viewport := deps.Viewport
	if viewport == nil {
		viewport = game.NewViewport(config.DefaultWindowWidth, config.DefaultWindowHeight)
	}

	symbols, err := game.NewSymbolSet(deps.Textures, deps.Rand)
	if err != nil {
		return nil, fmt.Errorf("failed to create symbol set: %w", err)
	}

	em := ecs.NewEntityManager()
	reel := systems.NewReelSystem(em, symbols, cfg.Layout(), viewport, cfg.NumberOfItems, float64(cfg.ItemSize))

	scene := &ReelScene{
		entityManager:      em,
		cfg:                cfg,
		viewport:           viewport,
		reelSystem:         reel,
		spinSystem:         systems.NewSpinSystem(em, reel, clock, cfg, deps.Rand, deps.AudioManager),
		renderSystem:       systems.NewRenderSystem(em, reel, cfg),
		buttonSystem:       systems.NewButtonSystem(em),
		buttonRenderSystem: systems.NewButtonRenderSystem(em),
		lastWidth:          viewport.Width,
		lastHeight:         viewport.Height,
	}
	scene.spinSystem.SetOnSettled(func(symbols []int) {
		scene.lastResult = symbols
	})

	if err := scene.createButton(deps.ResourceManager); err != nil {
		return nil, err
	}

	log.Printf("[ReelScene] Created reel: %d items, %d symbols, %d visible",
		reel.ItemCount(), symbols.Len(), cfg.VisibleItemsCount)
	return scene, nil
}

// createButton 创建底栏中央的旋转按钮
func (s *ReelScene) createButton(rm *game.ResourceManager) error {
	button := &components.ButtonComponent{
		Text:      config.ButtonText,
		TextColor: rgbaArray(s.cfg.ButtonFillColor),
		OnClick: func() {
			s.TriggerSpin()
		},
	}

	if rm != nil {
		face, err := rm.LoadFont(s.cfg.ButtonFontPath, s.cfg.ButtonFontSize)
		if err != nil {
			return fmt.Errorf("failed to load button font: %w", err)
		}
		button.Font = face
	}

	s.buttonEntity = s.entityManager.CreateEntity()
	ecs.AddComponent(s.entityManager, s.buttonEntity, button)
	ecs.AddComponent(s.entityManager, s.buttonEntity, &components.PositionComponent{})
	ecs.AddComponent(s.entityManager, s.buttonEntity, &components.ClickableComponent{IsEnabled: true})

	s.layoutButton()
	return nil
}

// layoutButton 把按钮放到底栏中央
func (s *ReelScene) layoutButton() {
	button, ok := ecs.GetComponent[*components.ButtonComponent](s.entityManager, s.buttonEntity)
	if !ok {
		return
	}
	pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, s.buttonEntity)
	clickable, _ := ecs.GetComponent[*components.ClickableComponent](s.entityManager, s.buttonEntity)

	w, h := utils.PaddedTextBounds(button.Text, button.Font, buttonPaddingX, buttonPaddingY)
	fx, fy, fw, fh := s.reelSystem.Layout().FooterBounds(s.viewport.Width, s.viewport.Height)

	clickable.Width, clickable.Height = w, h
	pos.X = fx + (fw-w)/2
	pos.Y = fy + (fh-h)/2
}

// Update 读取本帧输入并推进场景
func (s *ReelScene) Update(deltaTime float64) {
	s.Step(utils.GetInputState(), deltaTime)
}

// Step 用给定的输入推进一帧
func (s *ReelScene) Step(input utils.InputState, deltaTime float64) {
	s.handleResize()

	if input.Activate {
		s.TriggerSpin()
	}
	s.buttonSystem.HandlePointer(input, deltaTime)

	s.spinSystem.Update()
	s.buttonSystem.SetEnabled(s.buttonEntity, !s.spinSystem.IsSpinning())
}

// handleResize 视口尺寸变化时重新布局
// 旋转中下一帧会按新尺寸重新定位，空闲时需要主动放回静止位置
func (s *ReelScene) handleResize() {
	if s.viewport.Width == s.lastWidth && s.viewport.Height == s.lastHeight {
		return
	}
	s.lastWidth, s.lastHeight = s.viewport.Width, s.viewport.Height

	if !s.spinSystem.IsSpinning() {
		s.reelSystem.Relayout()
	}
	s.layoutButton()
}

// TriggerSpin 请求开始一次旋转，旋转中的请求被忽略
func (s *ReelScene) TriggerSpin() bool {
	return s.spinSystem.Start()
}

// Draw 渲染转轮和按钮
func (s *ReelScene) Draw(screen *ebiten.Image) {
	s.renderSystem.Draw(screen)
	s.buttonRenderSystem.Draw(screen)
}

// IsSpinning 返回是否正在旋转
func (s *ReelScene) IsSpinning() bool {
	return s.spinSystem.IsSpinning()
}

// IsButtonEnabled 返回旋转按钮当前是否可点击
func (s *ReelScene) IsButtonEnabled() bool {
	clickable, ok := ecs.GetComponent[*components.ClickableComponent](s.entityManager, s.buttonEntity)
	return ok && clickable.IsEnabled
}

// ButtonBounds 返回按钮点击区域
func (s *ReelScene) ButtonBounds() (float64, float64, float64, float64) {
	pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, s.buttonEntity)
	clickable, _ := ecs.GetComponent[*components.ClickableComponent](s.entityManager, s.buttonEntity)
	if pos == nil || clickable == nil {
		return 0, 0, 0, 0
	}
	return pos.X, pos.Y, clickable.Width, clickable.Height
}

// Reel 返回转轮状态
func (s *ReelScene) Reel() *systems.ReelSystem {
	return s.reelSystem
}

// LastResult 返回最近一次旋转停下时可见的符号
func (s *ReelScene) LastResult() []int {
	return s.lastResult
}

func rgbaArray(hex uint32) [4]uint8 {
	c := utils.ColorFromHex(hex)
	return [4]uint8{c.R, c.G, c.B, c.A}
}
