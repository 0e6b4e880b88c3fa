package components

// PositionComponent 屏幕坐标位置（左上角）
type PositionComponent struct {
	X, Y float64
}
