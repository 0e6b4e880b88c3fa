package game

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"log"

	"github.com/decker502/slotreel/pkg/config"
	"github.com/decker502/slotreel/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"
)

// ResourceManager is responsible for centralized management of slot resources.
// It provides loading and caching for symbol textures and fonts, ensuring that
// each file is read only once.
//
// Missing symbol textures are not fatal: a generated placeholder is cached under
// the same path so the reel can always be built with AssetCount symbols.
//
// Thread Safety Note:
// This implementation is NOT thread-safe. All loading happens on the Ebitengine
// game goroutine (inside LoadingScene.Update), so no synchronization is needed.
//
// Usage:
//
//	rm := NewResourceManager(cfg)
//	img, err := rm.LoadImage("assets/0.png")
//	if err != nil {
//	    log.Printf("Failed to load image: %v", err)
//	}
type ResourceManager struct {
	cfg           *config.SlotConfig
	imageCache    map[string]*ebiten.Image    // Cache for loaded images: path -> Image
	fontFaceCache map[string]*text.GoTextFace // Cache for text faces: path:size -> Face
}

// NewResourceManager creates a ResourceManager with empty caches.
func NewResourceManager(cfg *config.SlotConfig) *ResourceManager {
	return &ResourceManager{
		cfg:           cfg,
		imageCache:    make(map[string]*ebiten.Image),
		fontFaceCache: make(map[string]*text.GoTextFace),
	}
}

// LoadImage loads an image file from the specified path and caches it for future use.
// If the image has already been loaded, it returns the cached version.
// Files on disk take precedence over embedded resources.
//
// Returns an error if the file cannot be opened or decoded. Does not panic.
func (rm *ResourceManager) LoadImage(path string) (*ebiten.Image, error) {
	if cachedImage, exists := rm.imageCache[path]; exists {
		return cachedImage, nil
	}

	file, err := embedded.OpenLocalFirst(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file %s: %w", path, err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}

	ebitenImg := ebiten.NewImageFromImage(img)
	rm.imageCache[path] = ebitenImg

	return ebitenImg, nil
}

// SymbolCount returns the number of symbol textures the reel expects.
func (rm *ResourceManager) SymbolCount() int {
	return rm.cfg.AssetCount
}

// LoadSymbolTexture loads the texture for symbol n (path built by BuildAssetPath).
// A generated placeholder is returned and cached when the file is missing or broken.
func (rm *ResourceManager) LoadSymbolTexture(n int) *ebiten.Image {
	path := rm.cfg.BuildAssetPath(n)

	img, err := rm.LoadImage(path)
	if err == nil {
		return img
	}

	log.Printf("[ResourceManager] Warning: %v (using placeholder)", err)
	placeholder := NewPlaceholderSymbol(n, rm.cfg.ItemSize)
	rm.imageCache[path] = placeholder
	return placeholder
}

// LoadFont loads a TrueType/OpenType font and creates a text face with the given size.
// An empty path selects the embedded Go Regular font.
func (rm *ResourceManager) LoadFont(path string, size float64) (*text.GoTextFace, error) {
	cacheKey := fmt.Sprintf("%s:%.1f", path, size)
	if cachedFace, exists := rm.fontFaceCache[cacheKey]; exists {
		return cachedFace, nil
	}

	fontData := goregular.TTF
	if path != "" {
		data, err := embedded.ReadFileLocalFirst(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read font file %s: %w", path, err)
		}
		fontData = data
	}

	source, err := text.NewGoTextFaceSource(bytes.NewReader(fontData))
	if err != nil {
		return nil, fmt.Errorf("failed to create font source for %q: %w", path, err)
	}

	goTextFace := &text.GoTextFace{
		Source:    source,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}
	rm.fontFaceCache[cacheKey] = goTextFace

	return goTextFace, nil
}

// placeholderPalette holds the placeholder colors, cycled by symbol index.
var placeholderPalette = []color.RGBA{
	{R: 0xe6, G: 0x39, B: 0x46, A: 0xff}, // red
	{R: 0xf4, G: 0xa2, B: 0x61, A: 0xff}, // orange
	{R: 0xe9, G: 0xc4, B: 0x6a, A: 0xff}, // yellow
	{R: 0x2a, G: 0x9d, B: 0x8f, A: 0xff}, // teal
	{R: 0x26, G: 0x46, B: 0x53, A: 0xff}, // navy
	{R: 0x83, G: 0x38, B: 0xec, A: 0xff}, // purple
	{R: 0x3a, G: 0x86, B: 0xff, A: 0xff}, // blue
}

// NewPlaceholderSymbol generates the placeholder texture for symbol n.
// The color cycles through the palette and the shape (circle, square, 3x3 dots)
// changes with n so that neighbouring symbols stay distinguishable.
func NewPlaceholderSymbol(n, size int) *ebiten.Image {
	if size <= 0 {
		size = config.ItemSize
	}
	if n < 0 {
		n = -n
	}

	img := ebiten.NewImage(size, size)
	clr := placeholderPalette[n%len(placeholderPalette)]
	s := float32(size)

	switch n % 3 {
	case 0:
		vector.DrawFilledCircle(img, s/2, s/2, s*0.42, clr, true)
	case 1:
		vector.DrawFilledRect(img, s*0.12, s*0.12, s*0.76, s*0.76, clr, true)
	default:
		// 3x3 dot grid
		r := s * 0.12
		for row := 0; row < 3; row++ {
			for col := 0; col < 3; col++ {
				cx := s * (0.2 + 0.3*float32(col))
				cy := s * (0.2 + 0.3*float32(row))
				vector.DrawFilledCircle(img, cx, cy, r, clr, true)
			}
		}
	}

	// White center dots; higher indices get more dots so same-colored symbols differ.
	dots := n/len(placeholderPalette) + 1
	for i := 0; i < dots; i++ {
		cx := s/2 + float32(i-dots/2)*s*0.1
		vector.DrawFilledCircle(img, cx, s/2, s*0.04, color.White, true)
	}

	return img
}
