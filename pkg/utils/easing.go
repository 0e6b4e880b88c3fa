package utils

import (
	"math"

	"github.com/decker502/slotreel/pkg/config"
)

// Easing Functions (缓动函数)
//
// 缓动函数用于控制动画的速度曲线。
// 输入为进度值 t，通常由调用方限制在 [0, 1]。
//
// 参考：https://easings.net/

// LinearInterpolation 线性插值
// 公式：(1-alpha)*start + alpha*end
// alpha=0 精确返回 start，alpha=1 精确返回 end；alpha 超出 [0, 1] 时线性外推
func LinearInterpolation(start, end, alpha float64) float64 {
	return (1-alpha)*start + alpha*end
}

// Bounce 回弹缓动（easeOutBack 变体），使用默认过冲系数 config.BounceFactor
// 特点：先冲过终点再回落到 1，给转轮"咔嗒"停住的手感
func Bounce(t float64) float64 {
	return BounceWithFactor(t, config.BounceFactor)
}

// BounceWithFactor 回弹缓动，k 为过冲系数
// 公式：f(t) = 1 + (k+1)(t-1)³ + k(t-1)²
//
// k=0.4 时：f(0.5) = 0.925，f(0.75) = 1.003125，峰值约 1.0048（t≈0.81）
// t<=0 直接返回 0，避免 1-1.4+0.4 的浮点残差
func BounceWithFactor(t, k float64) float64 {
	if t <= 0 {
		return 0
	}
	u := t - 1
	return 1 + (k+1)*u*u*u + k*u*u
}

// EaseOutQuad 二次方缓出
// 特点：开始较快，结束慢
// 公式：f(t) = 1 - (1-t)²
func EaseOutQuad(t float64) float64 {
	return 1 - (1-t)*(1-t)
}

// Clamp01 将进度值限制在 [0, 1]
func Clamp01(t float64) float64 {
	return math.Max(0, math.Min(1, t))
}
