package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// 老虎机默认配置常量
// 所有数值都可以被 data/slot.yaml 覆盖，缺省字段回落到这里的值

// Game Config (玩法配置)
const (
	// NumberOfItems 转轮上的物理精灵数量（与符号种类数无关）
	NumberOfItems = 10

	// AssetCount 符号贴图种类数
	AssetCount = 7

	// VisibleItemsCount 转轮窗口中同时可见的格子数
	VisibleItemsCount = 3
)

// Timings (时间配置)
const (
	// AnimationDuration 一次旋转的基础时长
	AnimationDuration = 1500 * time.Millisecond

	// AdditionalTurnDuration 随机额外圈数时，每多一圈增加的时长
	AdditionalTurnDuration = 500 * time.Millisecond

	// NumberOfTurns 一次旋转经过的格子数（基础圈数）
	NumberOfTurns = 20

	// BounceFactor 回弹缓动的过冲系数 k
	// 公式：1 + (k+1)(t-1)³ + k(t-1)²
	BounceFactor = 0.4
)

// Graphics (图形配置)
const (
	// ApplicationFillColor 背景色 0xffd8cc
	ApplicationFillColor = 0xffd8cc

	// ColumnTopPadding 转轮顶部留白（像素）
	ColumnTopPadding = 50

	// ItemSize 符号精灵缩放后的边长（像素）
	ItemSize = 150

	// ColumnWidthDivisor 转轮宽度 = 屏幕宽度 / ColumnWidthDivisor
	ColumnWidthDivisor = 5
)

// Footer (底栏配置)
const (
	// FooterSize 底栏高度（像素）
	FooterSize = 100

	// FooterFillColor 底栏颜色 0x0a1d37
	FooterFillColor = 0x0a1d37
)

// Spin Button (旋转按钮配置)
const (
	ButtonText      = "START A SPIN"
	ButtonFontSize  = 24.0
	ButtonFillColor = 0xffffff
)

// File Paths (资源路径)
const (
	AssetPath   = "assets/"
	AssetSuffix = ".png"

	// DefaultConfigPath 默认配置文件路径（磁盘优先，其次嵌入资源）
	DefaultConfigPath = "data/slot.yaml"
)

// Window (窗口配置)
const (
	DefaultWindowWidth  = 1280
	DefaultWindowHeight = 1080
	WindowTitle         = "Slot Reel"
)

// SlotConfig 老虎机扁平配置记录
// 对应 data/slot.yaml，所有字段均为可选
type SlotConfig struct {
	NumberOfItems     int `yaml:"numberOfItems"`
	AssetCount        int `yaml:"assetCount"`
	VisibleItemsCount int `yaml:"visibleItemsCount"`

	AnimationDuration      time.Duration `yaml:"animationDuration"`      // 如 "1500ms"
	AdditionalTurnDuration time.Duration `yaml:"additionalTurnDuration"` // 如 "500ms"
	NumberOfTurns          int           `yaml:"numberOfTurns"`
	BounceFactor           float64       `yaml:"bounceFactor"`

	// RandomExtraTurns 启用后每次旋转随机增加 [0, VisibleItemsCount) 圈，并按比例延长时长
	RandomExtraTurns bool `yaml:"randomExtraTurns"`

	ColumnTopPadding int `yaml:"columnTopPadding"`
	ItemSize         int `yaml:"itemSize"`
	FooterSize       int `yaml:"footerSize"`

	ApplicationFillColor uint32 `yaml:"applicationFillColor"`
	FooterFillColor      uint32 `yaml:"footerFillColor"`
	ButtonFillColor      uint32 `yaml:"buttonFillColor"`
	ButtonFontSize       float64 `yaml:"buttonFontSize"`
	ButtonFontPath       string  `yaml:"buttonFontPath"` // 为空时使用内置 Go Regular 字体

	AssetPath   string `yaml:"assetPath"`
	AssetSuffix string `yaml:"assetSuffix"`

	SoundEnabled bool    `yaml:"soundEnabled"`
	SoundVolume  float64 `yaml:"soundVolume"`

	// TickSoundPath / StopSoundPath 可选的音效文件（.wav / .mp3 / .ogg），为空时使用合成音
	TickSoundPath string `yaml:"tickSoundPath"`
	StopSoundPath string `yaml:"stopSoundPath"`
}

// DefaultSlotConfig 返回默认配置
func DefaultSlotConfig() *SlotConfig {
	return &SlotConfig{
		NumberOfItems:          NumberOfItems,
		AssetCount:             AssetCount,
		VisibleItemsCount:      VisibleItemsCount,
		AnimationDuration:      AnimationDuration,
		AdditionalTurnDuration: AdditionalTurnDuration,
		NumberOfTurns:          NumberOfTurns,
		BounceFactor:           BounceFactor,
		RandomExtraTurns:       false,
		ColumnTopPadding:       ColumnTopPadding,
		ItemSize:               ItemSize,
		FooterSize:             FooterSize,
		ApplicationFillColor:   ApplicationFillColor,
		FooterFillColor:        FooterFillColor,
		ButtonFillColor:        ButtonFillColor,
		ButtonFontSize:         ButtonFontSize,
		AssetPath:              AssetPath,
		AssetSuffix:            AssetSuffix,
		SoundEnabled:           true,
		SoundVolume:            0.5,
	}
}

// LoadSlotConfig 从 YAML 文件加载配置
// 文件中缺失的字段使用默认值；path 为空时直接返回默认配置
func LoadSlotConfig(path string) (*SlotConfig, error) {
	cfg := DefaultSlotConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read slot config file %s: %w", path, err)
	}

	return ParseSlotConfig(data)
}

// ParseSlotConfig 解析 YAML 数据并校验
func ParseSlotConfig(data []byte) (*SlotConfig, error) {
	// 先填充默认值，YAML 只覆盖出现的字段
	cfg := DefaultSlotConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse slot config YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid slot config: %w", err)
	}

	return cfg, nil
}

// Validate 校验配置的取值范围
func (c *SlotConfig) Validate() error {
	var errs []error

	if c.NumberOfItems <= 0 {
		errs = append(errs, fmt.Errorf("numberOfItems must be positive, got %d", c.NumberOfItems))
	}
	if c.AssetCount <= 0 {
		errs = append(errs, fmt.Errorf("assetCount must be positive, got %d", c.AssetCount))
	}
	if c.VisibleItemsCount <= 0 {
		errs = append(errs, fmt.Errorf("visibleItemsCount must be positive, got %d", c.VisibleItemsCount))
	}
	if c.VisibleItemsCount > c.NumberOfItems {
		errs = append(errs, fmt.Errorf("visibleItemsCount (%d) must not exceed numberOfItems (%d)", c.VisibleItemsCount, c.NumberOfItems))
	}
	if c.AnimationDuration <= 0 {
		errs = append(errs, fmt.Errorf("animationDuration must be positive, got %v", c.AnimationDuration))
	}
	if c.AdditionalTurnDuration < 0 {
		errs = append(errs, fmt.Errorf("additionalTurnDuration must not be negative, got %v", c.AdditionalTurnDuration))
	}
	if c.NumberOfTurns < 0 {
		errs = append(errs, fmt.Errorf("numberOfTurns must not be negative, got %d", c.NumberOfTurns))
	}
	if c.ItemSize <= 0 {
		errs = append(errs, fmt.Errorf("itemSize must be positive, got %d", c.ItemSize))
	}
	if c.SoundVolume < 0 || c.SoundVolume > 1 {
		errs = append(errs, fmt.Errorf("soundVolume must be within [0, 1], got %v", c.SoundVolume))
	}

	return errors.Join(errs...)
}

// Layout 返回该配置对应的转轮布局参数
func (c *SlotConfig) Layout() ReelLayout {
	return ReelLayout{
		FooterSize:       float64(c.FooterSize),
		ColumnTopPadding: float64(c.ColumnTopPadding),
		VisibleItems:     c.VisibleItemsCount,
	}
}

// BuildAssetPath 返回第 n 个符号贴图的路径
// n 超出符号种类数时取模回绕，如 AssetCount=7 时 10 -> assets/3.png
func (c *SlotConfig) BuildAssetPath(n int) string {
	if c.AssetCount <= 0 {
		return ""
	}
	idx := n % c.AssetCount
	if idx < 0 {
		idx += c.AssetCount
	}
	return fmt.Sprintf("%s%d%s", c.AssetPath, idx, c.AssetSuffix)
}
