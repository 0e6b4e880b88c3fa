package embedded

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
)

// newTestFS 创建包含一个配置文件的内存文件系统
func newTestFS() fstest.MapFS {
	return fstest.MapFS{
		"data/slot.yaml": &fstest.MapFile{Data: []byte("numberOfTurns: 30\n")},
	}
}

// TestIsInitialized 测试初始化状态检测
func TestIsInitialized(t *testing.T) {
	reset()
	defer reset()

	if IsInitialized() {
		t.Error("Expected IsInitialized() to return false before Init()")
	}

	Init(nil, newTestFS())

	if !IsInitialized() {
		t.Error("Expected IsInitialized() to return true after Init()")
	}
}

// TestNotInitialized 测试未初始化时访问
func TestNotInitialized(t *testing.T) {
	reset()

	if _, err := Open("data/slot.yaml"); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("Open() error = %v, want ErrNotInitialized", err)
	}
	if _, err := ReadFile("data/slot.yaml"); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("ReadFile() error = %v, want ErrNotInitialized", err)
	}
	if Exists("data/slot.yaml") {
		t.Error("Exists() should be false before Init()")
	}
}

// TestReadFile 测试读取嵌入文件
func TestReadFile(t *testing.T) {
	reset()
	defer reset()
	Init(nil, newTestFS())

	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"正常路径", "data/slot.yaml", false},
		{"./ 前缀", "./data/slot.yaml", false},
		{"不存在", "data/missing.yaml", true},
		{"未知前缀", "config/slot.yaml", true},
		{"assets 未嵌入", "assets/0.png", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := ReadFile(tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ReadFile(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
			if !tt.wantErr && string(data) != "numberOfTurns: 30\n" {
				t.Errorf("ReadFile(%q) = %q", tt.path, data)
			}
		})
	}

	if _, err := Open("assets/0.png"); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Open() on missing assets FS error = %v, want fs.ErrNotExist", err)
	}
}

// TestLocalFirst 测试磁盘优先、嵌入回落
func TestLocalFirst(t *testing.T) {
	reset()
	defer reset()
	Init(nil, newTestFS())

	// 磁盘上存在的文件优先
	dir := t.TempDir()
	localPath := filepath.Join(dir, "slot.yaml")
	if err := os.WriteFile(localPath, []byte("numberOfTurns: 5\n"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	data, err := ReadFileLocalFirst(localPath)
	if err != nil || string(data) != "numberOfTurns: 5\n" {
		t.Errorf("ReadFileLocalFirst(local) = %q, %v", data, err)
	}

	// 磁盘上不存在时回落到嵌入资源（测试工作目录下没有 data/slot.yaml）
	data, err = ReadFileLocalFirst("data/slot.yaml")
	if err != nil || string(data) != "numberOfTurns: 30\n" {
		t.Errorf("ReadFileLocalFirst(embedded) = %q, %v", data, err)
	}

	file, err := OpenLocalFirst("data/slot.yaml")
	if err != nil {
		t.Fatalf("OpenLocalFirst() error = %v", err)
	}
	defer file.Close()
	if b, _ := io.ReadAll(file); string(b) != "numberOfTurns: 30\n" {
		t.Errorf("OpenLocalFirst() content = %q", b)
	}

	// 两边都没有时返回磁盘错误
	if _, err := ReadFileLocalFirst("data/missing.yaml"); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("ReadFileLocalFirst(missing) error = %v, want fs.ErrNotExist", err)
	}
}
