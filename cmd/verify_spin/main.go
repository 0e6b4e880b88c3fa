// verify_spin 转轮旋转验证工具
//
// 两种模式：
//
//	go run ./cmd/verify_spin                  # 窗口模式：每隔几秒自动旋转，左上角显示状态
//	go run ./cmd/verify_spin --headless       # 无窗口：用模拟时钟逐帧推进，打印每帧的偏移和格子位置
//	go run ./cmd/verify_spin --headless --random-turns --fps 30
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"os"
	"strings"
	"time"

	"github.com/decker502/slotreel/pkg/config"
	"github.com/decker502/slotreel/pkg/ecs"
	"github.com/decker502/slotreel/pkg/game"
	"github.com/decker502/slotreel/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

var (
	verbose     = flag.Bool("verbose", false, "显示详细调试信息")
	headless    = flag.Bool("headless", false, "不打开窗口，用模拟时钟打印逐帧数据")
	fps         = flag.Int("fps", 60, "无窗口模式的模拟帧率")
	randomTurns = flag.Bool("random-turns", false, "启用随机额外圈数")
	seed        = flag.Uint64("seed", 1, "随机种子")
	screenH     = flag.Float64("height", config.DefaultWindowHeight, "屏幕高度（像素）")
	autoSpin    = flag.Duration("interval", 3*time.Second, "窗口模式下自动旋转的间隔")
)

func main() {
	flag.Parse()
	if !*verbose {
		log.SetOutput(io.Discard)
	}

	cfg := config.DefaultSlotConfig()
	cfg.RandomExtraTurns = *randomTurns

	if *headless {
		if err := runHeadless(os.Stdout, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "verify_spin: %v\n", err)
			os.Exit(1)
		}
		return
	}

	g, err := newVerifySpinGame(cfg)
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}
	ebiten.SetWindowSize(config.DefaultWindowWidth, config.DefaultWindowHeight)
	ebiten.SetWindowTitle("Verify Spin")
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}

// buildReel 创建转轮和旋转控制器，符号贴图使用生成的占位图
func buildReel(cfg *config.SlotConfig, clock game.Clock, viewport *game.Viewport) (*ecs.EntityManager, *systems.ReelSystem, *systems.SpinSystem, error) {
	rng := rand.New(rand.NewPCG(*seed, *seed))

	textures := make([]*ebiten.Image, cfg.AssetCount)
	for i := range textures {
		textures[i] = game.NewPlaceholderSymbol(i, cfg.ItemSize)
	}
	symbols, err := game.NewSymbolSet(textures, rng)
	if err != nil {
		return nil, nil, nil, err
	}

	em := ecs.NewEntityManager()
	reel := systems.NewReelSystem(em, symbols, cfg.Layout(), viewport, cfg.NumberOfItems, float64(cfg.ItemSize))
	spin := systems.NewSpinSystem(em, reel, clock, cfg, rng, nil)
	return em, reel, spin, nil
}

// runHeadless 用模拟时钟跑完一次旋转并打印逐帧数据
func runHeadless(w io.Writer, cfg *config.SlotConfig) error {
	if *fps <= 0 {
		return fmt.Errorf("fps must be positive, got %d", *fps)
	}

	clock := game.NewMockTimeProvider(time.Unix(0, 0))
	viewport := game.NewViewport(config.DefaultWindowWidth, *screenH)
	_, reel, spin, err := buildReel(cfg, clock, viewport)
	if err != nil {
		return err
	}

	spin.Start()
	session := spin.Session()
	fmt.Fprintf(w, "slotHeight=%v turns=%d duration=%v\n", reel.SlotHeight(), session.TotalTurns, session.Duration)
	fmt.Fprintf(w, "%6s %8s %9s  %s\n", "t(ms)", "progress", "offset", "Y[0..n)")

	frame := time.Second / time.Duration(*fps)
	for spin.IsSpinning() {
		clock.Advance(frame)
		spin.Update()

		elapsed := clock.Now().Sub(time.Unix(0, 0))
		if !spin.IsSpinning() {
			fmt.Fprintf(w, "%6d %8s %9s  idle, visible=%v\n", elapsed.Milliseconds(), "-", "-", reel.VisibleSymbols())
			break
		}

		ys := make([]string, reel.ItemCount())
		for i := range ys {
			item, _ := reel.Item(i)
			ys[i] = fmt.Sprintf("%.0f", item.Y)
		}
		fmt.Fprintf(w, "%6d %8.4f %9.4f  %s\n", elapsed.Milliseconds(), session.Progress, session.Offset, strings.Join(ys, " "))
	}
	return nil
}

// VerifySpinGame 窗口验证：定时自动旋转
type VerifySpinGame struct {
	entityManager *ecs.EntityManager
	reel          *systems.ReelSystem
	spin          *systems.SpinSystem
	render        *systems.RenderSystem
	viewport      *game.Viewport
	clock         *game.TimeProvider
	lastSpin      time.Time
}

func newVerifySpinGame(cfg *config.SlotConfig) (*VerifySpinGame, error) {
	clock := game.NewTimeProvider()
	viewport := game.NewViewport(config.DefaultWindowWidth, config.DefaultWindowHeight)
	em, reel, spin, err := buildReel(cfg, clock, viewport)
	if err != nil {
		return nil, err
	}
	return &VerifySpinGame{
		entityManager: em,
		reel:          reel,
		spin:          spin,
		render:        systems.NewRenderSystem(em, reel, cfg),
		viewport:      viewport,
		clock:         clock,
	}, nil
}

func (g *VerifySpinGame) Update() error {
	if !g.spin.IsSpinning() && g.clock.Now().Sub(g.lastSpin) >= *autoSpin {
		g.spin.Start()
		g.lastSpin = g.clock.Now()
	}
	g.spin.Update()
	return nil
}

func (g *VerifySpinGame) Draw(screen *ebiten.Image) {
	g.render.Draw(screen)

	session := g.spin.Session()
	if session == nil {
		return
	}
	msg := fmt.Sprintf("state=%v\nprogress=%.3f\noffset=%.3f\nspins=%d\nentities=%d",
		session.State, session.Progress, session.Offset, session.SpinCount, g.entityManager.EntityCount())
	ebitenutil.DebugPrint(screen, msg)
}

func (g *VerifySpinGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.viewport.Resize(float64(outsideWidth), float64(outsideHeight)) && !g.spin.IsSpinning() {
		g.reel.Relayout()
	}
	return outsideWidth, outsideHeight
}
