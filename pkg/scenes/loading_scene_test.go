package scenes

import (
	"testing"

	"github.com/decker502/slotreel/pkg/config"
	"github.com/decker502/slotreel/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
)

func TestLoadingScene_LoadsAllTextures(t *testing.T) {
	cfg := config.DefaultSlotConfig()
	cfg.AssetPath = t.TempDir() + "/" // empty dir: every texture is a placeholder
	rm := game.NewResourceManager(cfg)

	calls := 0
	var loaded []*ebiten.Image
	scene := NewLoadingScene(rm, cfg, func(textures []*ebiten.Image) {
		calls++
		loaded = textures
	})

	if scene.Progress() != 0 {
		t.Errorf("initial Progress() = %v, want 0", scene.Progress())
	}

	for i := 0; i < cfg.AssetCount; i++ {
		if scene.IsReady() {
			t.Fatalf("scene ready after %d frames, want %d", i, cfg.AssetCount)
		}
		scene.Update(1.0 / 60)
	}

	if !scene.IsReady() || calls != 1 {
		t.Fatalf("IsReady() = %v, calls = %d, want ready after %d frames", scene.IsReady(), calls, cfg.AssetCount)
	}
	if scene.Progress() != 1 {
		t.Errorf("Progress() = %v, want 1", scene.Progress())
	}
	if len(loaded) != cfg.AssetCount {
		t.Fatalf("loaded %d textures, want %d", len(loaded), cfg.AssetCount)
	}
	for i, tex := range loaded {
		if tex == nil {
			t.Errorf("texture %d is nil", i)
		}
	}

	// Later updates must not call back again
	scene.Update(1.0 / 60)
	if calls != 1 {
		t.Errorf("onReady called %d times, want 1", calls)
	}
}

func TestLoadingScene_Draw(t *testing.T) {
	cfg := config.DefaultSlotConfig()
	cfg.AssetPath = t.TempDir() + "/"
	scene := NewLoadingScene(game.NewResourceManager(cfg), cfg, nil)

	scene.Update(1.0 / 60)
	scene.Draw(ebiten.NewImage(640, 480))
}
