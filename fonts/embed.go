package fonts

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-fonts/latin-modern/lmroman10bold"
	"github.com/go-fonts/latin-modern/lmroman10regular"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/goregular"
)

// builtinFace 为内置字体的一种字重。
type builtinFace struct {
	bold bool
	data []byte
}

// builtins 按家族名称列出随程序一起编译的字体。
var builtins = map[string][]builtinFace{
	"Go":                 {{data: goregular.TTF}, {bold: true, data: gobold.TTF}},
	"Go Mono":            {{data: gomono.TTF}, {bold: true, data: gomonobold.TTF}},
	"Latin Modern Roman": {{data: lmroman10regular.TTF}, {bold: true, data: lmroman10bold.TTF}},
}

// Load 返回内置字体的常规字重字节数据，name 可写为 "embed:Go" 或直接 "Go"（不区分大小写）。
func Load(name string) ([]byte, error) {
	name = strings.TrimPrefix(name, "embed:")
	for family, faces := range builtins {
		if !strings.EqualFold(family, name) {
			continue
		}
		for _, f := range faces {
			if !f.bold {
				return f.data, nil
			}
		}
	}
	return nil, fmt.Errorf("读取内置字体 %s 失败: 不存在", name)
}

// Read 读取字体源：以 "embed:" 开头时取内置字体，否则按文件路径读取，相对路径基于 baseDir。
func Read(src, baseDir string) ([]byte, error) {
	if src == "" {
		return nil, fmt.Errorf("字体 src 不能为空")
	}
	if strings.HasPrefix(src, "embed:") {
		return Load(src)
	}
	path := src
	if baseDir == "" && !filepath.IsAbs(path) {
		return nil, fmt.Errorf("未指定资源目录时不允许直接使用字体路径：%s（请改用 embed:）", src)
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(baseDir, path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("读取字体 %s 失败: %w", src, err)
	}
	return data, nil
}
