package components

import "time"

// SpinState 转轮旋转状态
type SpinState int

const (
	// SpinStateIdle 空闲，等待下一次触发
	SpinStateIdle SpinState = iota
	// SpinStateSpinning 旋转中，存在一个有效的旋转会话
	SpinStateSpinning
)

// String 返回状态名，用于日志
func (s SpinState) String() string {
	switch s {
	case SpinStateIdle:
		return "Idle"
	case SpinStateSpinning:
		return "Spinning"
	default:
		return "Unknown"
	}
}

// SpinComponent 旋转会话（挂在转轮实体上）
// 同一时刻最多只有一个会话：State 为 Spinning 时 StartTime/Duration/TotalTurns 有效，
// 回到 Idle 后这些字段不再参与计算
type SpinComponent struct {
	// State 当前状态
	State SpinState

	// StartTime 本次旋转的开始时间（墙钟）
	StartTime time.Time

	// Duration 本次旋转总时长（含随机额外圈数带来的延长）
	Duration time.Duration

	// TotalTurns 本次旋转经过的格子数 = 基础圈数 + AdditionalTurns
	TotalTurns int

	// AdditionalTurns 随机额外圈数（未启用随机时为 0）
	AdditionalTurns int

	// BaseOffset 开始时转轮所在的静止偏移，本次旋转从这里接着转
	BaseOffset float64

	// Progress 最近一帧的归一化进度 [0, 1]
	Progress float64

	// Offset 最近一帧的转轮偏移（格子为单位，可为小数，含 BaseOffset）
	Offset float64

	// SpinCount 已开始的旋转次数
	SpinCount int
}
