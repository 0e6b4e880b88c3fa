package utils

import (
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// MeasureText 测量单行文本的宽高
// font 为 nil 或文本为空时返回 0, 0
func MeasureText(textStr string, font *text.GoTextFace) (float64, float64) {
	if textStr == "" || font == nil {
		return 0, 0
	}
	return text.Measure(textStr, font, 0)
}

// PaddedTextBounds 返回文字加四周留白后的矩形尺寸
// 用于计算文字按钮的点击区域
func PaddedTextBounds(textStr string, font *text.GoTextFace, paddingX, paddingY float64) (float64, float64) {
	w, h := MeasureText(textStr, font)
	if w == 0 && h == 0 {
		return 0, 0
	}
	return w + 2*paddingX, h + 2*paddingY
}
