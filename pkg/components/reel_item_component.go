package components

// ReelItemComponent 转轮上的一个格子
// 身份是 Slot（0..N-1，创建后不变），Symbol 是当前显示的符号在符号集中的下标，
// Y 是转轮坐标系下的纵向偏移（像素）
//
// 只由 SpinSystem 在每帧更新中修改（空闲时视口高度变化会触发一次重新布局）
type ReelItemComponent struct {
	Slot   int     // 格子下标，转轮内稳定不变
	Symbol int     // 符号下标，范围 [0, SymbolSet.Len())
	Y      float64 // 转轮坐标系 Y 坐标
}
