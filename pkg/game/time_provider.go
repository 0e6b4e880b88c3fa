package game

import (
	"sync"
	"time"
)

// Clock 墙钟时间来源
// 旋转进度由墙钟差值计算而非帧数，帧间隔不固定时动画时长依然准确
type Clock interface {
	Now() time.Time
}

// TimeProvider 使用系统单调时钟
type TimeProvider struct{}

// NewTimeProvider 创建系统时间来源
func NewTimeProvider() *TimeProvider {
	return &TimeProvider{}
}

// Now 返回带单调时钟读数的当前时间
func (p *TimeProvider) Now() time.Time {
	return time.Now()
}

// MockTimeProvider 可控时间来源，用于测试和 cmd/verify_spin
type MockTimeProvider struct {
	mu          sync.RWMutex
	currentTime time.Time
}

// NewMockTimeProvider 创建从 startTime 开始的模拟时钟
func NewMockTimeProvider(startTime time.Time) *MockTimeProvider {
	return &MockTimeProvider{
		currentTime: startTime,
	}
}

// Now 返回当前模拟时间
func (m *MockTimeProvider) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.currentTime
}

// SetTime 设置当前模拟时间
func (m *MockTimeProvider) SetTime(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = t
}

// Advance 将模拟时间向前推进 d
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = m.currentTime.Add(d)
}
