package config

// Loading Scene 配置常量
// 进度条以屏幕中心为基准，尺寸相对屏幕宽度计算

const (
	// LoadingBarWidthRatio 进度条宽度占屏幕宽度的比例
	LoadingBarWidthRatio float64 = 0.4

	// LoadingBarHeight 进度条高度（像素）
	LoadingBarHeight float64 = 16

	// LoadingBarBorder 进度条边框宽度（像素）
	LoadingBarBorder float64 = 2

	// LoadingTextOffsetY 文字提示相对进度条顶部的 Y 偏移
	LoadingTextOffsetY float64 = -28

	// LoadingTextFontSize 加载文字字体大小
	LoadingTextFontSize float64 = 20

	// LoadingTexturesPerFrame 每帧加载的符号贴图数
	LoadingTexturesPerFrame = 1
)

// LoadingBarBounds 返回进度条在屏幕上的矩形（水平、垂直都居中）
//
// 返回值：x, y, width, height
func LoadingBarBounds(screenWidth, screenHeight float64) (float64, float64, float64, float64) {
	width := screenWidth * LoadingBarWidthRatio
	return (screenWidth - width) / 2, (screenHeight - LoadingBarHeight) / 2, width, LoadingBarHeight
}
