package components

import (
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// ButtonComponent 文字按钮组件（ECS 架构）
// 底栏中央的 "START A SPIN" 就是一个 ButtonComponent 实体
//
// 设计原则：
//   - 纯数据组件，不包含任何方法
//   - 文字在按钮矩形内居中显示
//   - 点击区域与启用状态放在 ClickableComponent 中
//   - 点击回调由 ButtonSystem 调用
type ButtonComponent struct {
	// Text 按钮上显示的文字
	Text string
	// Font 文字字体
	Font *text.GoTextFace
	// TextColor 文字颜色（RGBA）
	TextColor [4]uint8 // R, G, B, A

	// Hovered 指针是否悬停在按钮上
	Hovered bool
	// PressFeedback 按下反馈的剩余进度（1 -> 0，用于缩放动画）
	PressFeedback float64

	// OnClick 点击回调
	OnClick func()
}
