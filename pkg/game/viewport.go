package game

// Viewport 记录当前逻辑屏幕尺寸
// 由 App.Layout 每帧写入，转轮布局从这里读取屏幕高度
type Viewport struct {
	Width  float64
	Height float64
}

// NewViewport 创建视口
func NewViewport(width, height float64) *Viewport {
	return &Viewport{Width: width, Height: height}
}

// Resize 更新尺寸，返回尺寸是否发生变化
func (v *Viewport) Resize(width, height float64) bool {
	if v.Width == width && v.Height == height {
		return false
	}
	v.Width = width
	v.Height = height
	return true
}

// Size 返回宽高
func (v *Viewport) Size() (float64, float64) {
	return v.Width, v.Height
}
