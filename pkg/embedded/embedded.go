// Package embedded 提供嵌入资源的统一访问接口
//
// 由于 Go embed 指令只能嵌入当前包目录及其子目录的文件，
// embed.FS 变量必须声明在项目根目录（embed.go）或 mobile/embed.go。
// 本包提供包装函数，让其他包可以访问嵌入的资源。
//
// 桌面端优先读取磁盘上的文件（方便替换符号贴图和配置），
// 磁盘上不存在时再回落到嵌入资源；移动端只有嵌入资源。
package embedded

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ErrNotInitialized 在 Init 之前访问嵌入资源
var ErrNotInitialized = errors.New("embedded package not initialized, call Init() first")

var (
	assetsFS    fs.FS
	dataFS      fs.FS
	initialized bool
)

// Init 设置嵌入资源的文件系统
// assets 或 data 可以为 nil（没有对应的嵌入资源）
func Init(assets, data fs.FS) {
	assetsFS = assets
	dataFS = data
	initialized = true
}

// IsInitialized 返回 embedded 包是否已初始化
func IsInitialized() bool {
	return initialized
}

// selectFS 根据路径前缀选择文件系统，返回标准化后的路径
// 路径必须以 "assets/" 或 "data/" 开头
func selectFS(path string) (fs.FS, string, error) {
	if !initialized {
		return nil, "", ErrNotInitialized
	}

	// 标准化路径分隔符为正斜杠（embed.FS 使用正斜杠）
	path = strings.TrimPrefix(filepath.ToSlash(path), "./")

	var fsys fs.FS
	switch {
	case strings.HasPrefix(path, "assets/"):
		fsys = assetsFS
	case strings.HasPrefix(path, "data/"):
		fsys = dataFS
	default:
		return nil, "", fmt.Errorf("unknown resource path prefix: %s (must start with 'assets/' or 'data/')", path)
	}

	if fsys == nil {
		return nil, "", fmt.Errorf("no embedded files for %s: %w", path, fs.ErrNotExist)
	}
	return fsys, path, nil
}

// Open 打开嵌入的文件
func Open(path string) (fs.File, error) {
	fsys, name, err := selectFS(path)
	if err != nil {
		return nil, err
	}
	return fsys.Open(name)
}

// ReadFile 读取嵌入的文件内容
func ReadFile(path string) ([]byte, error) {
	fsys, name, err := selectFS(path)
	if err != nil {
		return nil, err
	}
	return fs.ReadFile(fsys, name)
}

// Exists 检查文件是否存在于嵌入资源中
func Exists(path string) bool {
	file, err := Open(path)
	if err != nil {
		return false
	}
	file.Close()
	return true
}

// OpenLocalFirst 优先打开磁盘上的文件，不存在时回落到嵌入资源
func OpenLocalFirst(path string) (fs.File, error) {
	file, err := os.Open(path)
	if err == nil {
		return file, nil
	}
	if !initialized {
		return nil, err
	}

	embeddedFile, embeddedErr := Open(path)
	if embeddedErr != nil {
		// 返回磁盘错误，信息更直观
		return nil, err
	}
	return embeddedFile, nil
}

// ReadFileLocalFirst 优先读取磁盘上的文件，不存在时回落到嵌入资源
func ReadFileLocalFirst(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err == nil {
		return data, nil
	}
	if !initialized {
		return nil, err
	}

	embeddedData, embeddedErr := ReadFile(path)
	if embeddedErr != nil {
		return nil, err
	}
	return embeddedData, nil
}

// reset 清除初始化状态（测试用）
func reset() {
	assetsFS = nil
	dataFS = nil
	initialized = false
}
