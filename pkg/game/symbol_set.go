package game

import (
	"errors"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
)

// ErrEmptySymbolSet 符号集为空
var ErrEmptySymbolSet = errors.New("symbol set must contain at least one texture")

// SymbolSet 符号贴图集合
// 加载完成后不可变，大小为 AssetCount
//
// 随机挑选是均匀且有放回的：同一时刻多个可见格子显示相同符号是允许的
type SymbolSet struct {
	textures []*ebiten.Image
	rng      *rand.Rand
}

// NewSymbolSet 创建符号集
//
// 参数：
//   - textures: 符号贴图，下标即符号 ID（会复制一份，调用方之后的修改不影响符号集）
//   - rng: 随机源，为 nil 时使用随机种子
//
// 返回：
//   - error: textures 为空时返回 ErrEmptySymbolSet
func NewSymbolSet(textures []*ebiten.Image, rng *rand.Rand) (*SymbolSet, error) {
	if len(textures) == 0 {
		return nil, ErrEmptySymbolSet
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	copied := make([]*ebiten.Image, len(textures))
	copy(copied, textures)

	return &SymbolSet{
		textures: copied,
		rng:      rng,
	}, nil
}

// Len 返回符号种类数
func (s *SymbolSet) Len() int {
	return len(s.textures)
}

// Texture 返回符号 id 对应的贴图，越界返回 nil
func (s *SymbolSet) Texture(id int) *ebiten.Image {
	if id < 0 || id >= len(s.textures) {
		return nil
	}
	return s.textures[id]
}

// RandomSymbol 均匀随机返回一个符号 ID
func (s *SymbolSet) RandomSymbol() int {
	return s.rng.IntN(len(s.textures))
}
