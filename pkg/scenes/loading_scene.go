package scenes

import (
	"fmt"
	"image/color"
	"log"

	"github.com/decker502/slotreel/pkg/config"
	"github.com/decker502/slotreel/pkg/game"
	"github.com/decker502/slotreel/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ReadyFunc is called once after every symbol texture has been loaded.
type ReadyFunc func(textures []*ebiten.Image)

// LoadingScene represents the loading screen shown when the app starts.
// It loads the symbol textures a few per frame and displays a progress bar.
// Once every texture is loaded it hands them to the ready continuation,
// which builds the reel scene and switches to it.
type LoadingScene struct {
	resourceManager *game.ResourceManager
	onReady         ReadyFunc

	// Progress tracking
	total    int
	textures []*ebiten.Image
	ready    bool // onReady has been called

	backgroundColor color.RGBA
	barColor        color.RGBA
	textFontFace    *text.GoTextFace
}

// NewLoadingScene creates a new loading scene.
func NewLoadingScene(rm *game.ResourceManager, cfg *config.SlotConfig, onReady ReadyFunc) *LoadingScene {
	scene := &LoadingScene{
		resourceManager: rm,
		onReady:         onReady,
		total:           rm.SymbolCount(),
		textures:        make([]*ebiten.Image, 0, rm.SymbolCount()),
		backgroundColor: utils.ColorFromHex(cfg.FooterFillColor),
		barColor:        utils.ColorFromHex(cfg.ApplicationFillColor),
	}

	face, err := rm.LoadFont(cfg.ButtonFontPath, config.LoadingTextFontSize)
	if err != nil {
		log.Printf("[LoadingScene] Failed to load font: %v", err)
	} else {
		scene.textFontFace = face
	}

	return scene
}

// Update loads the next textures and fires the ready continuation when done.
func (s *LoadingScene) Update(deltaTime float64) {
	if s.ready {
		return
	}

	for i := 0; i < config.LoadingTexturesPerFrame && len(s.textures) < s.total; i++ {
		s.textures = append(s.textures, s.resourceManager.LoadSymbolTexture(len(s.textures)))
	}

	if len(s.textures) >= s.total {
		s.ready = true
		log.Printf("[LoadingScene] Loaded %d symbol textures", len(s.textures))
		if s.onReady != nil {
			s.onReady(s.textures)
		}
	}
}

// Progress returns the loading progress (0.0 - 1.0).
func (s *LoadingScene) Progress() float64 {
	if s.total <= 0 {
		return 1
	}
	return float64(len(s.textures)) / float64(s.total)
}

// IsReady reports whether the ready continuation has been called.
func (s *LoadingScene) IsReady() bool {
	return s.ready
}

// Draw renders the progress bar and the loading message.
func (s *LoadingScene) Draw(screen *ebiten.Image) {
	screen.Fill(s.backgroundColor)

	bounds := screen.Bounds()
	x, y, w, h := config.LoadingBarBounds(float64(bounds.Dx()), float64(bounds.Dy()))

	// Border + fill
	border := float32(config.LoadingBarBorder)
	vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), border, s.barColor, false)
	fillWidth := (w - 2*config.LoadingBarBorder) * s.Progress()
	if fillWidth > 0 {
		vector.DrawFilledRect(screen,
			float32(x+config.LoadingBarBorder), float32(y+config.LoadingBarBorder),
			float32(fillWidth), float32(h-2*config.LoadingBarBorder),
			s.barColor, false)
	}

	if s.textFontFace == nil {
		return
	}
	op := &text.DrawOptions{}
	op.LayoutOptions.PrimaryAlign = text.AlignCenter
	op.GeoM.Translate(x+w/2, y+config.LoadingTextOffsetY)
	op.ColorScale.ScaleWithColor(s.barColor)
	text.Draw(screen, fmt.Sprintf("Loading %d/%d", len(s.textures), s.total), s.textFontFace, op)
}
