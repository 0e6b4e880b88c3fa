package systems

import (
	"log"
	"math/rand/v2"
	"time"

	"github.com/decker502/slotreel/pkg/components"
	"github.com/decker502/slotreel/pkg/config"
	"github.com/decker502/slotreel/pkg/ecs"
	"github.com/decker502/slotreel/pkg/game"
	"github.com/decker502/slotreel/pkg/utils"
)

// SpinSystem 转轮旋转控制器
//
// 状态机：Idle → Spinning → Idle。
// 整个程序生命周期内只创建一次、每帧调用一次 Update；
// 旋转会话是转轮实体上的 SpinComponent，旋转中再次触发 Start 会被忽略，
// 不会出现两个并行的偏移计算。
type SpinSystem struct {
	entityManager *ecs.EntityManager
	reel          *ReelSystem
	clock         game.Clock
	rng           *rand.Rand
	audioManager  *game.AudioManager

	baseDuration     time.Duration
	turnDuration     time.Duration
	baseTurns        int
	bounceFactor     float64
	randomExtraTurns bool
	maxExtraTurns    int

	reelEntity ecs.EntityID

	// onSettled 旋转自然结束时的回调（可为 nil）
	onSettled func(symbols []int)
}

// NewSpinSystem 创建旋转控制器，并创建挂载 SpinComponent 的转轮实体
//
// 参数：
//   - em: 实体管理器
//   - reel: 转轮状态
//   - clock: 墙钟（测试中使用 MockTimeProvider）
//   - cfg: 配置（时长、圈数、回弹系数、是否随机额外圈数）
//   - rng: 随机源，为 nil 时使用随机种子
//   - am: 音频管理器，可为 nil
func NewSpinSystem(em *ecs.EntityManager, reel *ReelSystem, clock game.Clock, cfg *config.SlotConfig, rng *rand.Rand, am *game.AudioManager) *SpinSystem {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	ss := &SpinSystem{
		entityManager:    em,
		reel:             reel,
		clock:            clock,
		rng:              rng,
		audioManager:     am,
		baseDuration:     cfg.AnimationDuration,
		turnDuration:     cfg.AdditionalTurnDuration,
		baseTurns:        cfg.NumberOfTurns,
		bounceFactor:     cfg.BounceFactor,
		randomExtraTurns: cfg.RandomExtraTurns,
		maxExtraTurns:    cfg.VisibleItemsCount,
	}

	ss.reelEntity = em.CreateEntity()
	ecs.AddComponent(em, ss.reelEntity, &components.SpinComponent{
		State: components.SpinStateIdle,
	})

	return ss
}

// SetOnSettled 设置旋转结束回调，参数为停止时可见的符号（从上到下）
func (ss *SpinSystem) SetOnSettled(fn func(symbols []int)) {
	ss.onSettled = fn
}

// Start 开始一次旋转
// 返回 false 表示已有旋转在进行中，本次触发被忽略
func (ss *SpinSystem) Start() bool {
	spin := ss.session()
	if spin == nil {
		return false
	}

	if spin.State == components.SpinStateSpinning {
		log.Printf("[SpinSystem] 旋转进行中，忽略重复触发")
		return false
	}

	additional := 0
	if ss.randomExtraTurns && ss.maxExtraTurns > 0 {
		additional = ss.rng.IntN(ss.maxExtraTurns)
	}

	spin.State = components.SpinStateSpinning
	spin.StartTime = ss.clock.Now()
	spin.AdditionalTurns = additional
	spin.TotalTurns = ss.baseTurns + additional
	spin.Duration = ss.baseDuration + time.Duration(additional)*ss.turnDuration
	spin.BaseOffset = ss.reel.RestOffset()
	spin.Progress = 0
	spin.Offset = spin.BaseOffset
	spin.SpinCount++

	log.Printf("[SpinSystem] 开始第 %d 次旋转: 圈数=%d (额外 %d), 时长=%v",
		spin.SpinCount, spin.TotalTurns, additional, spin.Duration)
	return true
}

// Update 每帧调用一次
//
// 旋转中：根据墙钟计算进度 → 回弹缓动 → 转轮偏移 → 重新定位所有格子。
// 已过时长的那一帧直接回到 Idle，不再重新定位。Idle 状态下什么也不做。
func (ss *SpinSystem) Update() {
	spin := ss.session()
	if spin == nil || spin.State != components.SpinStateSpinning {
		return
	}

	elapsed := ss.clock.Now().Sub(spin.StartTime)
	if elapsed >= spin.Duration {
		spin.State = components.SpinStateIdle
		// 以最后一帧的偏移作为静止位置，空闲时重新布局不会改变可见符号
		ss.reel.SetRestOffset(spin.Offset)
		ss.settle()
		return
	}

	spin.Progress = utils.Clamp01(float64(elapsed) / float64(spin.Duration))
	eased := utils.BounceWithFactor(spin.Progress, ss.bounceFactor)
	spin.Offset = spin.BaseOffset + utils.LinearInterpolation(0, float64(spin.TotalTurns), eased)

	if swapped := ss.reel.PositionItems(spin.Offset, true); swapped > 0 && ss.audioManager != nil {
		ss.audioManager.PlayTick()
	}
}

// State 返回当前状态
func (ss *SpinSystem) State() components.SpinState {
	if spin := ss.session(); spin != nil {
		return spin.State
	}
	return components.SpinStateIdle
}

// IsSpinning 返回是否正在旋转
func (ss *SpinSystem) IsSpinning() bool {
	return ss.State() == components.SpinStateSpinning
}

// Session 返回旋转会话组件（只读使用）
func (ss *SpinSystem) Session() *components.SpinComponent {
	return ss.session()
}

// ReelEntity 返回挂载 SpinComponent 的转轮实体
func (ss *SpinSystem) ReelEntity() ecs.EntityID {
	return ss.reelEntity
}

func (ss *SpinSystem) session() *components.SpinComponent {
	spin, ok := ecs.GetComponent[*components.SpinComponent](ss.entityManager, ss.reelEntity)
	if !ok {
		return nil
	}
	return spin
}

func (ss *SpinSystem) settle() {
	symbols := ss.reel.VisibleSymbols()
	log.Printf("[SpinSystem] 旋转结束，可见符号: %v", symbols)

	if ss.audioManager != nil {
		ss.audioManager.PlayStop()
	}
	if ss.onSettled != nil {
		ss.onSettled(symbols)
	}
}
