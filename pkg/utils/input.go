// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// ActivateKeys 触发旋转的键盘按键
var ActivateKeys = []ebiten.Key{ebiten.KeySpace, ebiten.KeyEnter, ebiten.KeyNumpadEnter}

// InputState 存储当前帧的输入状态
// 用于统一处理鼠标、触摸和键盘输入
type InputState struct {
	// 是否有点击/触摸事件刚刚发生
	JustPressed bool
	// 点击/触摸位置
	X, Y int
	// 是否有活动的触摸
	IsTouching bool
	// 是否刚按下触发键（空格 / 回车）
	Activate bool
}

// GetInputState 获取当前帧的输入状态
// 同时支持鼠标点击和触摸输入，优先检测触摸
func GetInputState() InputState {
	state := InputState{
		Activate: IsActivateKeyJustPressed(),
	}

	// 首先检查触摸输入（移动设备）
	touchIDs := inpututil.AppendJustPressedTouchIDs(nil)
	if len(touchIDs) > 0 {
		state.JustPressed = true
		state.X, state.Y = ebiten.TouchPosition(touchIDs[0])
		state.IsTouching = true
		return state
	}

	// 检查是否有活动的触摸（用于悬停检测）
	allTouchIDs := ebiten.AppendTouchIDs(nil)
	if len(allTouchIDs) > 0 {
		state.X, state.Y = ebiten.TouchPosition(allTouchIDs[0])
		state.IsTouching = true
		return state
	}

	// 其次检查鼠标输入（桌面设备）
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		state.JustPressed = true
	}

	// 鼠标位置同时用于悬停检测
	state.X, state.Y = ebiten.CursorPosition()
	return state
}

// IsActivateKeyJustPressed 检查本帧是否刚按下任一触发键
func IsActivateKeyJustPressed() bool {
	for _, key := range ActivateKeys {
		if inpututil.IsKeyJustPressed(key) {
			return true
		}
	}
	return false
}

// IsFullscreenToggleJustPressed 检查本帧是否刚按下 F11
func IsFullscreenToggleJustPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyF11)
}

// PointInRect 判断点 (px, py) 是否落在矩形内（左上闭、右下开）
func PointInRect(px, py, x, y, width, height float64) bool {
	return px >= x && px < x+width && py >= y && py < y+height
}
