package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/decker502/slotreel/pkg/app"
	"github.com/decker502/slotreel/pkg/config"
	"github.com/decker502/slotreel/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	verbose    = flag.Bool("verbose", false, "显示详细调试信息")
	configPath = flag.String("config", "", "配置文件路径（默认 data/slot.yaml）")
	mute       = flag.Bool("mute", false, "禁用音效")
)

func main() {
	flag.Parse()

	// 初始化嵌入资源（dataFS 在 embed.go 中声明）
	embedded.Init(nil, dataFS)

	slotApp, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		ConfigPath: *configPath,
		Mute:       *mute,
	})
	if err != nil {
		// 非 verbose 模式下 log 被丢弃，致命错误直接写 stderr
		fmt.Fprintf(os.Stderr, "初始化失败: %v\n", err)
		os.Exit(1)
	}

	ebiten.SetWindowSize(config.DefaultWindowWidth, config.DefaultWindowHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(slotApp); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
