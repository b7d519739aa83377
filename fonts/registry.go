package fonts

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/tdewolff/canvas"
)

// DefaultFamily 是找不到请求字体时使用的家族。
const DefaultFamily = "Go"

// Family 是注册表中的一个字体家族。
type Family struct {
	Name string
	*canvas.FontFamily
}

// Registry resolves font names to families. Built-in families are parsed
// once per process and shared; each registry keeps its own installed fonts.
// Safe for concurrent use.
type Registry struct {
	once     sync.Once
	mu       sync.RWMutex
	families map[string]*Family
	def      *Family
}

// NewRegistry returns an empty registry; built-ins load lazily.
func NewRegistry() *Registry {
	return &Registry{}
}

var (
	builtinOnce     sync.Once
	builtinFamilies map[string]*Family
)

// loadBuiltins 每个进程只解析一次内置字体，所有注册表共享这些只读家族。
func loadBuiltins() map[string]*Family {
	builtinOnce.Do(func() {
		families := make(map[string]*Family, len(builtins))
		for name, faces := range builtins {
			family := canvas.NewFontFamily(name)
			for _, f := range faces {
				style := canvas.FontRegular
				if f.bold {
					style = canvas.FontBold
				}
				if err := family.LoadFont(f.data, 0, style); err != nil {
					// 内置字体随程序编译，加载失败只可能是程序错误
					panic(fmt.Sprintf("fonts: 加载内置字体 %s 失败: %v", name, err))
				}
			}
			families[key(name)] = &Family{Name: name, FontFamily: family}
		}
		builtinFamilies = families
	})
	return builtinFamilies
}

// init 为注册表复制一份内置家族的索引；Install 只影响当前注册表。
func (r *Registry) init() {
	r.once.Do(func() {
		shared := loadBuiltins()
		families := make(map[string]*Family, len(shared))
		for k, f := range shared {
			families[k] = f
		}
		r.mu.Lock()
		r.families = families
		r.def = families[key(DefaultFamily)]
		r.mu.Unlock()
	})
}

// TryFind 按名称（不区分大小写）查找字体家族。
func (r *Registry) TryFind(name string) (*Family, bool) {
	r.init()
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.families[key(name)]
	return f, ok
}

// Default returns the default family.
func (r *Registry) Default() *Family {
	r.init()
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.def
}

// Resolve 返回 name 对应的家族；name 为空或不存在时返回默认家族，从不失败。
func (r *Registry) Resolve(name string) *Family {
	if name != "" {
		if f, ok := r.TryFind(name); ok {
			return f
		}
	}
	return r.Default()
}

// Install 以常规字重注册一个额外的字体家族，同名家族会被替换。
func (r *Registry) Install(name string, data []byte) (*Family, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("字体名称不能为空")
	}
	r.init()
	family := canvas.NewFontFamily(name)
	if err := family.LoadFont(data, 0, canvas.FontRegular); err != nil {
		return nil, fmt.Errorf("加载字体 %s 失败: %w", name, err)
	}
	f := &Family{Name: name, FontFamily: family}
	r.mu.Lock()
	r.families[key(name)] = f
	r.mu.Unlock()
	return f, nil
}

// Names lists the registered family names in ascending order.
func (r *Registry) Names() []string {
	r.init()
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.families))
	for _, f := range r.families {
		names = append(names, f.Name)
	}
	sort.Strings(names)
	return names
}

func key(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
