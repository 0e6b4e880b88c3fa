package utils

import (
	"math"
	"testing"
)

// TestLinearInterpolation 测试线性插值
func TestLinearInterpolation(t *testing.T) {
	tests := []struct {
		name       string
		start, end float64
		alpha      float64
		expected   float64
	}{
		{"起点", 0, 20, 0, 0},
		{"终点", 0, 20, 1, 20},
		{"中点", 0, 20, 0.5, 10},
		{"0.3 处", 0, 20, 0.3, 6},
		{"非零起点", 5, 15, 0.5, 10},
		{"外推（大于 1）", 0, 20, 1.5, 30},
		{"外推（小于 0）", 0, 20, -0.5, -10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := LinearInterpolation(tt.start, tt.end, tt.alpha)
			if math.Abs(result-tt.expected) > 1e-9 {
				t.Errorf("LinearInterpolation(%v, %v, %v) = %v, 期望 %v", tt.start, tt.end, tt.alpha, result, tt.expected)
			}
		})
	}

	// 端点必须精确，不允许浮点漂移
	t.Run("端点精确", func(t *testing.T) {
		pairs := [][2]float64{{0, 20}, {0.1, 0.7}, {-3.3, 1e9}, {123.456, -789.012}}
		for _, p := range pairs {
			if got := LinearInterpolation(p[0], p[1], 0); got != p[0] {
				t.Errorf("LinearInterpolation(%v, %v, 0) = %v, 期望 %v", p[0], p[1], got, p[0])
			}
			if got := LinearInterpolation(p[0], p[1], 1); got != p[1] {
				t.Errorf("LinearInterpolation(%v, %v, 1) = %v, 期望 %v", p[0], p[1], got, p[1])
			}
		}
	})
}

// TestBounce 测试回弹缓动
func TestBounce(t *testing.T) {
	if got := Bounce(0); got != 0 {
		t.Errorf("Bounce(0) = %v, 期望 0", got)
	}
	if got := Bounce(1); got != 1 {
		t.Errorf("Bounce(1) = %v, 期望 1", got)
	}

	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"中点", 0.5, 0.925},
		{"四分之三", 0.75, 1.003125},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Bounce(tt.input)
			if math.Abs(result-tt.expected) > 1e-9 {
				t.Errorf("Bounce(%v) = %v, 期望 %v", tt.input, result, tt.expected)
			}
		})
	}

	t.Run("过冲区间大于 1", func(t *testing.T) {
		for _, p := range []float64{0.75, 0.8, 0.85, 0.9, 0.95} {
			if got := Bounce(p); got <= 1 {
				t.Errorf("Bounce(%v) = %v 应该大于 1（过冲）", p, got)
			}
		}
	})

	t.Run("峰值位置", func(t *testing.T) {
		peak, peakAt := 0.0, 0.0
		for p := 0.0; p <= 1.0; p += 0.001 {
			if v := Bounce(p); v > peak {
				peak, peakAt = v, p
			}
		}
		if peakAt < 0.7 || peakAt > 0.9 {
			t.Errorf("峰值位置 %v 应该在 [0.7, 0.9] 之间", peakAt)
		}
		if peak > 1.01 {
			t.Errorf("峰值 %v 过冲过大", peak)
		}
	})

	t.Run("负数输入", func(t *testing.T) {
		if got := Bounce(-0.5); got != 0 {
			t.Errorf("Bounce(-0.5) = %v, 期望 0", got)
		}
	})
}

// TestBounceWithFactor 测试不同过冲系数
func TestBounceWithFactor(t *testing.T) {
	// k=0 时退化为三次方缓出 1 + (t-1)³
	for _, p := range []float64{0.1, 0.5, 0.9} {
		want := 1 + math.Pow(p-1, 3)
		if got := BounceWithFactor(p, 0); math.Abs(got-want) > 1e-12 {
			t.Errorf("BounceWithFactor(%v, 0) = %v, 期望 %v", p, got, want)
		}
	}

	// 端点与系数无关
	for _, k := range []float64{0, 0.4, 1, 2} {
		if got := BounceWithFactor(1, k); got != 1 {
			t.Errorf("BounceWithFactor(1, %v) = %v, 期望 1", k, got)
		}
		if got := BounceWithFactor(0, k); got != 0 {
			t.Errorf("BounceWithFactor(0, %v) = %v, 期望 0", k, got)
		}
	}
}

// TestEaseOutQuad 测试二次方缓出函数
func TestEaseOutQuad(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"起点", 0.0, 0.0},
		{"终点", 1.0, 1.0},
		{"中点", 0.5, 0.75},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := EaseOutQuad(tt.input)
			if math.Abs(result-tt.expected) > 0.001 {
				t.Errorf("EaseOutQuad(%v) = %v, 期望 %v", tt.input, result, tt.expected)
			}
		})
	}
}

// TestClamp01 测试进度限制
func TestClamp01(t *testing.T) {
	if Clamp01(-1) != 0 || Clamp01(0.5) != 0.5 || Clamp01(2) != 1 {
		t.Error("Clamp01 should limit values to [0, 1]")
	}
}
