// Package app 提供转轮应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/decker502/slotreel/pkg/config"
	"github.com/decker502/slotreel/pkg/embedded"
	"github.com/decker502/slotreel/pkg/game"
	"github.com/decker502/slotreel/pkg/scenes"
	"github.com/decker502/slotreel/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 配置文件路径，为空时读取 data/slot.yaml（磁盘优先，其次嵌入资源），都没有则使用默认值
	ConfigPath string
	// Mute 禁用音效（覆盖配置文件）
	Mute bool
}

// App 是转轮应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager    *game.SceneManager
	viewport        *game.Viewport
	slotConfig      *config.SlotConfig
	resourceManager *game.ResourceManager
	audioManager    *game.AudioManager
	clock           game.Clock

	// err 转轮场景创建失败时记录，由下一次 Update 返回并结束游戏循环
	err error

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化应用
//
// 启动流程：加载配置 → 创建音频 → 加载场景逐帧加载符号贴图 →
// 加载完成后创建转轮场景并切换过去。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	slotConfig, err := LoadConfig(cfg.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("配置加载失败: %w", err)
	}
	if cfg.Mute {
		slotConfig.SoundEnabled = false
	}

	// 初始化音频上下文
	audioContext := audio.NewContext(game.AudioSampleRate)
	audioManager := game.NewAudioManager(audioContext, slotConfig.SoundEnabled, slotConfig.SoundVolume)
	audioManager.LoadSounds(slotConfig.TickSoundPath, slotConfig.StopSoundPath)
	log.Printf("[App] AudioManager initialized (enabled=%v, volume=%.2f)", slotConfig.SoundEnabled, slotConfig.SoundVolume)

	a := &App{
		sceneManager:    game.NewSceneManager(),
		viewport:        game.NewViewport(config.DefaultWindowWidth, config.DefaultWindowHeight),
		slotConfig:      slotConfig,
		resourceManager: game.NewResourceManager(slotConfig),
		audioManager:    audioManager,
		clock:           game.NewTimeProvider(),
	}
	a.sceneManager.SwitchTo(scenes.NewLoadingScene(a.resourceManager, slotConfig, a.onTexturesReady))

	return a, nil
}

// onTexturesReady 符号贴图加载完成后创建转轮场景并切换过去
// 符号贴图总有占位图兜底，失败通常是字体不可用
func (a *App) onTexturesReady(textures []*ebiten.Image) {
	reelScene, err := scenes.NewReelScene(scenes.ReelSceneDeps{
		Textures:        textures,
		ResourceManager: a.resourceManager,
		Config:          a.slotConfig,
		Viewport:        a.viewport,
		Clock:           a.clock,
		AudioManager:    a.audioManager,
	})
	if err != nil {
		log.Printf("[App] Failed to create reel scene: %v", err)
		a.err = fmt.Errorf("转轮场景创建失败: %w", err)
		return
	}
	a.sceneManager.SwitchTo(reelScene)
}

// LoadConfig 加载配置
// path 非空时只读取该文件；否则尝试 data/slot.yaml（磁盘优先，其次嵌入资源），都没有时使用默认配置
func LoadConfig(path string) (*config.SlotConfig, error) {
	if path != "" {
		log.Printf("[Config] Loading slot config: %s", path)
		return config.LoadSlotConfig(path)
	}

	data, err := embedded.ReadFileLocalFirst(config.DefaultConfigPath)
	if err != nil {
		log.Printf("[Config] %s not found, using defaults", config.DefaultConfigPath)
		return config.DefaultSlotConfig(), nil
	}

	log.Printf("[Config] Loading slot config: %s", config.DefaultConfigPath)
	return config.ParseSlotConfig(data)
}

// Update 更新应用逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	if a.err != nil {
		return a.err
	}

	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.DefaultWindowWidth, config.DefaultWindowHeight)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", config.DefaultWindowWidth, config.DefaultWindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏（移动端没有窗口）
	if !utils.IsMobile() && utils.IsFullscreenToggleJustPressed() {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	deltaTime := 1.0 / float64(ebiten.TPS())
	a.sceneManager.Update(deltaTime)
	return nil
}

// Draw 绘制画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回逻辑屏幕尺寸
// 逻辑尺寸与窗口尺寸一致，转轮布局随窗口大小变化，视口由这里更新
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := LogicalSize(outsideWidth, outsideHeight)
	if a.viewport.Resize(float64(w), float64(h)) {
		log.Printf("[App] Viewport resized to %dx%d", w, h)
	}
	return w, h
}

// LogicalSize 把窗口尺寸转换为逻辑屏幕尺寸
// 窗口尚未创建（0 或负数）时使用默认窗口尺寸
func LogicalSize(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth <= 0 || outsideHeight <= 0 {
		return config.DefaultWindowWidth, config.DefaultWindowHeight
	}
	return outsideWidth, outsideHeight
}
