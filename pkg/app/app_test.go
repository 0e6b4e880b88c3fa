package app

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/decker502/slotreel/pkg/config"
	"github.com/decker502/slotreel/pkg/game"
	"github.com/decker502/slotreel/pkg/scenes"
	"github.com/hajimehoshi/ebiten/v2"
)

func TestLogicalSize(t *testing.T) {
	tests := []struct {
		name         string
		outW, outH   int
		wantW, wantH int
	}{
		{"窗口尺寸", 1280, 1080, 1280, 1080},
		{"缩放后的窗口", 800, 600, 800, 600},
		{"窗口未创建", 0, 0, config.DefaultWindowWidth, config.DefaultWindowHeight},
		{"负数", -1, 600, config.DefaultWindowWidth, config.DefaultWindowHeight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := LogicalSize(tt.outW, tt.outH)
			if w != tt.wantW || h != tt.wantH {
				t.Errorf("LogicalSize(%d, %d) = (%d, %d), want (%d, %d)", tt.outW, tt.outH, w, h, tt.wantW, tt.wantH)
			}
		})
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	// 测试工作目录下没有 data/slot.yaml，也没有初始化嵌入资源
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig(\"\") error = %v", err)
	}
	if cfg.NumberOfTurns != config.NumberOfTurns || cfg.AnimationDuration != config.AnimationDuration {
		t.Errorf("LoadConfig(\"\") = %+v, want defaults", cfg)
	}
}

func TestLoadConfig_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "slot.yaml")
	if err := os.WriteFile(path, []byte("animationDuration: 3s\nrandomExtraTurns: true\n"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.AnimationDuration != 3*time.Second || !cfg.RandomExtraTurns {
		t.Errorf("LoadConfig() = %+v, want overridden duration and random turns", cfg)
	}
}

func TestLoadConfig_Errors(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("LoadConfig(missing) should fail")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("numberOfItems: 0\n"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Error("LoadConfig(invalid) should fail")
	}
}

// newTestApp 不创建音频上下文和加载场景，只准备转轮场景需要的依赖
func newTestApp(cfg *config.SlotConfig) *App {
	return &App{
		sceneManager:    game.NewSceneManager(),
		viewport:        game.NewViewport(config.DefaultWindowWidth, config.DefaultWindowHeight),
		slotConfig:      cfg,
		resourceManager: game.NewResourceManager(cfg),
		clock:           game.NewMockTimeProvider(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)),
	}
}

func testTextures(n int) []*ebiten.Image {
	textures := make([]*ebiten.Image, n)
	for i := range textures {
		textures[i] = ebiten.NewImage(8, 8)
	}
	return textures
}

func TestApp_TexturesReadySwitchesToReelScene(t *testing.T) {
	cfg := config.DefaultSlotConfig()
	a := newTestApp(cfg)

	a.onTexturesReady(testTextures(cfg.AssetCount))

	if a.err != nil {
		t.Fatalf("onTexturesReady() err = %v", a.err)
	}
	if _, ok := a.sceneManager.GetCurrentScene().(*scenes.ReelScene); !ok {
		t.Errorf("current scene = %T, want *scenes.ReelScene", a.sceneManager.GetCurrentScene())
	}
}

// 转轮场景创建失败时 Update 返回错误，游戏循环随之退出
func TestApp_ReelSceneFailureStopsUpdate(t *testing.T) {
	cfg := config.DefaultSlotConfig()
	cfg.ButtonFontPath = filepath.Join(t.TempDir(), "missing.ttf")
	a := newTestApp(cfg)

	a.onTexturesReady(testTextures(cfg.AssetCount))

	if a.sceneManager.GetCurrentScene() != nil {
		t.Errorf("current scene = %T, want none after failure", a.sceneManager.GetCurrentScene())
	}
	err := a.Update()
	if err == nil {
		t.Fatal("Update() should return the reel scene error")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Update() error = %v, want it to wrap os.ErrNotExist", err)
	}
}
