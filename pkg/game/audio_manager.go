package game

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"log"
	"math"
	"path/filepath"
	"strings"
	"time"

	"github.com/decker502/slotreel/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// AudioSampleRate 音频上下文采样率
const AudioSampleRate = 48000

// 合成音效参数
const (
	tickFrequency = 1800.0 // 符号切换时的"咔哒"声频率（Hz）
	tickDuration  = 25 * time.Millisecond
	stopFrequency = 440.0 // 转轮停下时的提示音频率（Hz）
	stopDuration  = 180 * time.Millisecond
)

// AudioManager 音频管理器
// 职责：
//   - 播放转轮音效（符号切换咔哒声、停止提示音）
//   - 应用配置中的音量和开关
//
// 默认音效由 SynthesizeTone 现场合成；LoadSounds 可以用音频文件替换。
// audioContext 为 nil 时所有播放调用直接返回 false（静音模式，用于测试和工具）
type AudioManager struct {
	audioContext *audio.Context
	tickPlayer   *audio.Player
	stopPlayer   *audio.Player
	enabled      bool
	volume       float64
}

// NewAudioManager 创建新的音频管理器
//
// 参数：
//   - ctx: 全局音频上下文，可为 nil
//   - enabled: 是否启用音效
//   - volume: 音量 0.0 ~ 1.0
func NewAudioManager(ctx *audio.Context, enabled bool, volume float64) *AudioManager {
	am := &AudioManager{
		audioContext: ctx,
		enabled:      enabled,
		volume:       clampVolume(volume),
	}

	if ctx != nil {
		am.tickPlayer = ctx.NewPlayerFromBytes(SynthesizeTone(AudioSampleRate, tickFrequency, tickDuration))
		am.stopPlayer = ctx.NewPlayerFromBytes(SynthesizeTone(AudioSampleRate, stopFrequency, stopDuration))
	}

	return am
}

// LoadSounds 用音频文件替换合成音效
// 路径为空的一项保持合成音；加载失败时记录警告并保留合成音
func (am *AudioManager) LoadSounds(tickPath, stopPath string) {
	if am.audioContext == nil {
		return
	}
	if player := am.loadPlayer(tickPath); player != nil {
		am.tickPlayer = player
	}
	if player := am.loadPlayer(stopPath); player != nil {
		am.stopPlayer = player
	}
}

func (am *AudioManager) loadPlayer(path string) *audio.Player {
	if path == "" {
		return nil
	}

	data, err := embedded.ReadFileLocalFirst(path)
	if err != nil {
		log.Printf("[AudioManager] Warning: failed to read sound %s: %v", path, err)
		return nil
	}
	pcm, err := DecodeSound(path, data)
	if err != nil {
		log.Printf("[AudioManager] Warning: %v", err)
		return nil
	}

	log.Printf("[AudioManager] Loaded sound: %s", path)
	return am.audioContext.NewPlayerFromBytes(pcm)
}

// DecodeSound 按扩展名解码音频文件，输出与音频上下文一致的 PCM
// 支持 .wav / .mp3 / .ogg
func DecodeSound(path string, data []byte) ([]byte, error) {
	var (
		stream io.Reader
		err    error
	)

	src := bytes.NewReader(data)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".wav":
		stream, err = wav.DecodeWithSampleRate(AudioSampleRate, src)
	case ".mp3":
		stream, err = mp3.DecodeWithSampleRate(AudioSampleRate, src)
	case ".ogg":
		stream, err = vorbis.DecodeWithSampleRate(AudioSampleRate, src)
	default:
		return nil, fmt.Errorf("unsupported sound format %q: %s", ext, path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode sound %s: %w", path, err)
	}

	pcm, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to read decoded sound %s: %w", path, err)
	}
	return pcm, nil
}

// PlayTick 播放符号切换音效
func (am *AudioManager) PlayTick() bool {
	return am.play(am.tickPlayer)
}

// PlayStop 播放转轮停止音效
func (am *AudioManager) PlayStop() bool {
	return am.play(am.stopPlayer)
}

// SetEnabled 设置音效开关
func (am *AudioManager) SetEnabled(enabled bool) {
	am.enabled = enabled
}

// IsEnabled 返回音效是否启用
func (am *AudioManager) IsEnabled() bool {
	return am.enabled
}

// SetVolume 设置音量，超出 0.0 ~ 1.0 的值会被截断
func (am *AudioManager) SetVolume(volume float64) {
	am.volume = clampVolume(volume)
}

// Volume 返回当前音量
func (am *AudioManager) Volume() float64 {
	return am.volume
}

func (am *AudioManager) play(player *audio.Player) bool {
	if !am.enabled || player == nil {
		return false
	}

	player.SetVolume(am.volume)

	// 从头播放（同一帧多次触发只会重新开始，不会叠加）
	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: failed to rewind player: %v", err)
		return false
	}
	player.Play()
	return true
}

// SynthesizeTone 合成一段带指数衰减包络的正弦波
// 输出格式与 Ebitengine 音频上下文一致：16 位有符号小端、双声道
func SynthesizeTone(sampleRate int, frequency float64, duration time.Duration) []byte {
	if sampleRate <= 0 || duration <= 0 {
		return nil
	}

	samples := int(float64(sampleRate) * duration.Seconds())
	buf := make([]byte, samples*4)
	decay := 5.0 / float64(samples) // 结束时衰减到 e^-5

	for i := 0; i < samples; i++ {
		t := float64(i) / float64(sampleRate)
		envelope := math.Exp(-decay * float64(i))
		v := int16(math.Sin(2*math.Pi*frequency*t) * envelope * math.MaxInt16 * 0.8)

		binary.LittleEndian.PutUint16(buf[i*4:], uint16(v))   // 左声道
		binary.LittleEndian.PutUint16(buf[i*4+2:], uint16(v)) // 右声道
	}

	return buf
}

// clampVolume 将音量值限制在 0.0 ~ 1.0 范围内
func clampVolume(volume float64) float64 {
	if volume < 0.0 {
		return 0.0
	}
	if volume > 1.0 {
		return 1.0
	}
	return volume
}
