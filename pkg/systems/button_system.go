package systems

import (
	"github.com/decker502/slotreel/pkg/components"
	"github.com/decker502/slotreel/pkg/ecs"
	"github.com/decker502/slotreel/pkg/utils"
)

// pressFeedbackDuration 按下反馈动画时长（秒）
const pressFeedbackDuration = 0.15

// ButtonSystem 按钮交互系统
// 负责处理按钮的指针悬停、点击等交互逻辑
//
// 职责：
//   - 检测指针悬停（更新 ButtonComponent.Hovered）
//   - 检测点击/触摸（触发 OnClick 回调并开始按下反馈）
//   - ClickableComponent.IsEnabled 为 false 时不响应点击
type ButtonSystem struct {
	entityManager *ecs.EntityManager
}

// NewButtonSystem 创建按钮交互系统
func NewButtonSystem(em *ecs.EntityManager) *ButtonSystem {
	return &ButtonSystem{
		entityManager: em,
	}
}

// HandlePointer 根据给定的输入状态更新所有按钮
// 输入由场景每帧读取一次后传入
func (s *ButtonSystem) HandlePointer(input utils.InputState, deltaTime float64) {
	entities := ecs.GetEntitiesWith2[*components.ButtonComponent, *components.PositionComponent](s.entityManager)

	for _, entityID := range entities {
		button, _ := ecs.GetComponent[*components.ButtonComponent](s.entityManager, entityID)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, entityID)
		clickable, ok := ecs.GetComponent[*components.ClickableComponent](s.entityManager, entityID)
		if !ok {
			continue
		}

		if button.PressFeedback > 0 {
			button.PressFeedback -= deltaTime / pressFeedbackDuration
			if button.PressFeedback < 0 {
				button.PressFeedback = 0
			}
		}

		// 禁用状态不响应交互
		if !clickable.IsEnabled {
			button.Hovered = false
			continue
		}

		button.Hovered = utils.PointInRect(float64(input.X), float64(input.Y), pos.X, pos.Y, clickable.Width, clickable.Height)

		if button.Hovered && input.JustPressed {
			button.PressFeedback = 1
			if button.OnClick != nil {
				button.OnClick()
			}
		}
	}
}

// SetEnabled 设置按钮是否可点击
func (s *ButtonSystem) SetEnabled(entityID ecs.EntityID, enabled bool) {
	if clickable, ok := ecs.GetComponent[*components.ClickableComponent](s.entityManager, entityID); ok {
		clickable.IsEnabled = enabled
	}
}
