package config

import "math"

// 布局配置
// 本文件定义转轮的纵向布局函数：每个格子的高度、第 n 个格子的 Y 坐标、转轮列的位置
// 所有坐标都是"转轮坐标系"（相对于转轮列左上角），渲染时再加上 ColumnTopPadding

// ReelLayout 转轮布局参数
type ReelLayout struct {
	// FooterSize 底栏高度（像素）
	FooterSize float64

	// ColumnTopPadding 转轮顶部留白（像素）
	ColumnTopPadding float64

	// VisibleItems 可见格子数
	VisibleItems int
}

// DefaultReelLayout 返回默认常量组成的布局
func DefaultReelLayout() ReelLayout {
	return ReelLayout{
		FooterSize:       FooterSize,
		ColumnTopPadding: ColumnTopPadding,
		VisibleItems:     VisibleItemsCount,
	}
}

// VerticalSlotHeight 返回每个可见格子分到的高度
// 计算方式：round((屏幕高度 - 底栏 - 顶部留白) / 可见格子数)
// 例如 1080 高：round((1080-100-50)/3) = 310
//
// 屏幕高度未知（0、负数、NaN）或剩余空间不足时返回 0，不报错
func (l ReelLayout) VerticalSlotHeight(screenHeight float64) float64 {
	if l.VisibleItems <= 0 || math.IsNaN(screenHeight) || screenHeight <= 0 {
		return 0
	}

	available := screenHeight - l.FooterSize - l.ColumnTopPadding
	if available <= 0 {
		return 0
	}

	return math.Round(available / float64(l.VisibleItems))
}

// VerticalCoordForSlot 返回第 slot 个格子的 Y 坐标
// slot 可以是小数：旋转过程中转轮位置是连续值
func (l ReelLayout) VerticalCoordForSlot(slot, screenHeight float64) float64 {
	if math.IsNaN(slot) || math.IsInf(slot, 0) {
		return 0
	}
	return math.Round(slot * l.VerticalSlotHeight(screenHeight))
}

// WindowHeight 返回可见窗口的总高度（可见格子数 × 格子高度）
func (l ReelLayout) WindowHeight(screenHeight float64) float64 {
	return float64(l.VisibleItems) * l.VerticalSlotHeight(screenHeight)
}

// ColumnBounds 返回转轮列在屏幕上的矩形
// 列宽为屏幕宽度的 1/ColumnWidthDivisor，水平居中，顶部位于 ColumnTopPadding
//
// 返回值：x, y, width, height
func (l ReelLayout) ColumnBounds(screenWidth, screenHeight float64) (float64, float64, float64, float64) {
	width := math.Floor(screenWidth / ColumnWidthDivisor)
	x := math.Round((screenWidth - width) / 2)
	return x, l.ColumnTopPadding, width, l.WindowHeight(screenHeight)
}

// FooterBounds 返回底栏在屏幕上的矩形
//
// 返回值：x, y, width, height
func (l ReelLayout) FooterBounds(screenWidth, screenHeight float64) (float64, float64, float64, float64) {
	return 0, screenHeight - l.FooterSize, screenWidth, l.FooterSize
}
