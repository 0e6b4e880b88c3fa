package systems

import (
	"math"
	"testing"

	"github.com/decker502/slotreel/pkg/components"
	"github.com/decker502/slotreel/pkg/ecs"
	"github.com/decker502/slotreel/pkg/utils"
)

// newTestButton 创建位于 (100, 500)、尺寸 200x50 的按钮
func newTestButton(em *ecs.EntityManager, onClick func()) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.ButtonComponent{
		Text:    "START A SPIN",
		OnClick: onClick,
	})
	ecs.AddComponent(em, id, &components.PositionComponent{X: 100, Y: 500})
	ecs.AddComponent(em, id, &components.ClickableComponent{Width: 200, Height: 50, IsEnabled: true})
	return id
}

func TestButtonSystem_Click(t *testing.T) {
	em := ecs.NewEntityManager()
	clicks := 0
	id := newTestButton(em, func() { clicks++ })
	bs := NewButtonSystem(em)

	tests := []struct {
		name        string
		input       utils.InputState
		wantClicks  int
		wantHovered bool
	}{
		{"按钮外悬停", utils.InputState{X: 10, Y: 10}, 0, false},
		{"按钮内悬停", utils.InputState{X: 150, Y: 520}, 0, true},
		{"按钮外点击", utils.InputState{X: 10, Y: 520, JustPressed: true}, 0, false},
		{"按钮内点击", utils.InputState{X: 150, Y: 520, JustPressed: true}, 1, true},
		{"触摸点击", utils.InputState{X: 299, Y: 549, JustPressed: true, IsTouching: true}, 2, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bs.HandlePointer(tt.input, 1.0/60)

			button, _ := ecs.GetComponent[*components.ButtonComponent](em, id)
			if clicks != tt.wantClicks {
				t.Errorf("clicks = %d, want %d", clicks, tt.wantClicks)
			}
			if button.Hovered != tt.wantHovered {
				t.Errorf("Hovered = %v, want %v", button.Hovered, tt.wantHovered)
			}
		})
	}
}

func TestButtonSystem_Disabled(t *testing.T) {
	em := ecs.NewEntityManager()
	clicks := 0
	id := newTestButton(em, func() { clicks++ })
	bs := NewButtonSystem(em)

	bs.SetEnabled(id, false)
	bs.HandlePointer(utils.InputState{X: 150, Y: 520, JustPressed: true}, 1.0/60)

	if clicks != 0 {
		t.Errorf("disabled button clicked %d times", clicks)
	}
	button, _ := ecs.GetComponent[*components.ButtonComponent](em, id)
	if button.Hovered {
		t.Error("disabled button should not be hovered")
	}

	bs.SetEnabled(id, true)
	bs.HandlePointer(utils.InputState{X: 150, Y: 520, JustPressed: true}, 1.0/60)
	if clicks != 1 {
		t.Errorf("re-enabled button clicks = %d, want 1", clicks)
	}
}

func TestButtonSystem_PressFeedbackDecays(t *testing.T) {
	em := ecs.NewEntityManager()
	id := newTestButton(em, nil)
	bs := NewButtonSystem(em)

	bs.HandlePointer(utils.InputState{X: 150, Y: 520, JustPressed: true}, 0)
	button, _ := ecs.GetComponent[*components.ButtonComponent](em, id)
	if button.PressFeedback != 1 {
		t.Fatalf("PressFeedback = %v, want 1 right after a click", button.PressFeedback)
	}

	// 按下反馈在 pressFeedbackDuration 内衰减到 0
	for i := 0; i < 20; i++ {
		bs.HandlePointer(utils.InputState{X: 150, Y: 520}, 1.0/60)
	}
	if button.PressFeedback != 0 {
		t.Errorf("PressFeedback = %v, want 0 after %v s", button.PressFeedback, 20.0/60)
	}
}

func TestButtonScale(t *testing.T) {
	button := &components.ButtonComponent{}
	if got := ButtonScale(button, true); got != 1 {
		t.Errorf("idle scale = %v, want 1", got)
	}

	button.Hovered = true
	if got := ButtonScale(button, true); got != buttonHoverScale {
		t.Errorf("hover scale = %v, want %v", got, buttonHoverScale)
	}
	if got := ButtonScale(button, false); got != 1 {
		t.Errorf("disabled hover scale = %v, want 1", got)
	}

	button.Hovered = false
	button.PressFeedback = 1
	if got := ButtonScale(button, true); math.Abs(got-(1-buttonPressShrink)) > 1e-9 {
		t.Errorf("pressed scale = %v, want %v", got, 1-buttonPressShrink)
	}

	// 反馈过半时缩小量为 EaseOutQuad(0.5) = 0.75
	button.PressFeedback = 0.5
	want := 1 - buttonPressShrink*0.75
	if got := ButtonScale(button, true); math.Abs(got-want) > 1e-9 {
		t.Errorf("half-decayed scale = %v, want %v", got, want)
	}
}
