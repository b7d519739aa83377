package dsl

import (
	"math"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/ByLCY/labelsmith/layout"
)

// 模板块中的槽位名称。
var templateSlots = map[string]layout.Slot{
	layout.Line1.String():      layout.Line1,
	layout.Line2.String():      layout.Line2,
	layout.Line3.String():      layout.Line3,
	layout.Line4.String():      layout.Line4,
	layout.Identifier.String(): layout.Identifier,
}

// Stock returns the label stock named by the first stock declaration, or "".
func (f *File) Stock() string {
	for _, b := range f.Blocks {
		if b.Stock != nil {
			return b.Stock.Name()
		}
	}
	return ""
}

// Fonts returns the font declarations in file order.
func (f *File) Fonts() []*FontDecl {
	var out []*FontDecl
	for _, b := range f.Blocks {
		if b.Font != nil {
			out = append(out, b.Font)
		}
	}
	return out
}

// HasTemplate reports whether the file declares a template block.
func (f *File) HasTemplate() bool { return f.template() != nil }

// HasLines reports whether the file declares a lines block.
func (f *File) HasLines() bool {
	for _, b := range f.Blocks {
		if b.Lines != nil {
			return true
		}
	}
	return false
}

func (f *File) template() *TemplateBlock {
	for _, b := range f.Blocks {
		if b.Template != nil {
			return b.Template
		}
	}
	return nil
}

// Template 将 template 块转换为 layout.PartLabelTemplate。
// 文件中没有 template 块时返回 layout.DefaultTemplate()；未声明的槽位内容为空，标签序号为 1。
func (f *File) Template() (layout.PartLabelTemplate, error) {
	tb := f.template()
	if tb == nil {
		return layout.DefaultTemplate(), nil
	}
	for _, b := range f.Blocks {
		if b.Template != nil && b.Template != tb {
			return layout.PartLabelTemplate{}, participle.Errorf(b.Template.Pos, "duplicate template block")
		}
	}

	var slots [layout.SlotCount]layout.LineConfiguration
	var seen [layout.SlotCount]bool
	for i := range slots {
		slots[i].Label = 1
	}
	for _, line := range tb.Lines {
		slot, ok := templateSlots[strings.ToLower(line.Slot)]
		if !ok {
			return layout.PartLabelTemplate{}, participle.Errorf(line.Pos, "unknown slot %q (expected line1..line4 or identifier)", line.Slot)
		}
		if seen[slot] {
			return layout.PartLabelTemplate{}, participle.Errorf(line.Pos, "slot %s declared twice", slot)
		}
		seen[slot] = true
		cfg, err := line.config()
		if err != nil {
			return layout.PartLabelTemplate{}, err
		}
		slots[slot] = cfg
	}
	return layout.PartLabelTemplate{
		Line1:      slots[layout.Line1],
		Line2:      slots[layout.Line2],
		Line3:      slots[layout.Line3],
		Line4:      slots[layout.Line4],
		Identifier: slots[layout.Identifier],
	}, nil
}

// Lines 按出现顺序返回所有 lines 块中的行配置。
func (f *File) Lines() ([]layout.LineConfiguration, error) {
	var out []layout.LineConfiguration
	for _, b := range f.Blocks {
		if b.Lines == nil {
			continue
		}
		for _, line := range b.Lines.Lines {
			if !strings.EqualFold(line.Slot, "line") {
				return nil, participle.Errorf(line.Pos, "unknown statement %q in lines block (expected line)", line.Slot)
			}
			cfg, err := line.config()
			if err != nil {
				return nil, err
			}
			out = append(out, cfg)
		}
	}
	return out, nil
}

// config 将一行声明及其属性转换为 LineConfiguration。
func (l *Line) config() (layout.LineConfiguration, error) {
	cfg := layout.LineConfiguration{Content: string(l.Content), Label: 1}
	for _, attr := range l.Attrs {
		if err := attr.apply(&cfg); err != nil {
			return layout.LineConfiguration{}, err
		}
	}
	return cfg, nil
}

func (a *Attribute) apply(cfg *layout.LineConfiguration) error {
	var err error
	switch strings.ToLower(a.Key) {
	case "label":
		cfg.Label, err = a.integer()
	case "align", "position":
		pos, ok := layout.ParsePosition(a.Value.Text())
		if !ok {
			return participle.Errorf(a.Pos, "invalid alignment %q", a.Value.Text())
		}
		cfg.Position = pos
	case "font":
		if a.Value == nil || a.Value.Text() == "" {
			return participle.Errorf(a.Pos, "font requires a name")
		}
		cfg.FontName = a.Value.Text()
	case "size":
		cfg.FontSize, err = a.number()
	case "rotate":
		cfg.Rotate, err = a.number()
	case "autosize":
		cfg.AutoSize, err = a.flag()
	case "barcode":
		cfg.Barcode, err = a.flag()
	case "upper":
		cfg.UpperCase, err = a.flag()
	case "lower":
		cfg.LowerCase, err = a.flag()
	case "margin":
		cfg.Margin, err = a.margin()
	default:
		return participle.Errorf(a.Pos, "unknown attribute %q", a.Key)
	}
	return err
}

// flag 处理布尔属性：单独出现为 true，也接受 =true/=false。
func (a *Attribute) flag() (bool, error) {
	if a.Value == nil {
		return true, nil
	}
	v, err := strconv.ParseBool(a.Value.Text())
	if err != nil {
		return false, participle.Errorf(a.Pos, "%s expects true or false, got %q", a.Key, a.Value.Text())
	}
	return v, nil
}

func (a *Attribute) number() (float64, error) {
	if a.Value == nil || a.Value.Number == nil {
		return 0, participle.Errorf(a.Pos, "%s expects a number", a.Key)
	}
	return parseNumber(a.Pos, *a.Value.Number)
}

func (a *Attribute) integer() (int, error) {
	v, err := a.number()
	if err != nil {
		return 0, err
	}
	if v != math.Trunc(v) {
		return 0, participle.Errorf(a.Pos, "%s expects an integer, got %g", a.Key, v)
	}
	return int(v), nil
}

// margin 接受单个数字（四边相同）或 (left right top bottom)。
func (a *Attribute) margin() (layout.Margin, error) {
	if a.Value == nil {
		return layout.Margin{}, participle.Errorf(a.Pos, "margin expects a number or (left right top bottom)")
	}
	if a.Value.Number != nil {
		v, err := parseNumber(a.Pos, *a.Value.Number)
		if err != nil {
			return layout.Margin{}, err
		}
		n := int(v)
		return layout.Margin{Left: n, Right: n, Top: n, Bottom: n}, nil
	}
	if len(a.Value.Tuple) != 4 {
		return layout.Margin{}, participle.Errorf(a.Pos, "margin expects 4 values, got %d", len(a.Value.Tuple))
	}
	var vals [4]int
	for i, raw := range a.Value.Tuple {
		v, err := parseNumber(a.Pos, raw)
		if err != nil {
			return layout.Margin{}, err
		}
		vals[i] = int(v)
	}
	return layout.Margin{Left: vals[0], Right: vals[1], Top: vals[2], Bottom: vals[3]}, nil
}

// parseNumber 去掉 pt/px 后缀后解析数字；边距始终为像素，字号始终为 pt。
func parseNumber(pos lexer.Position, raw string) (float64, error) {
	s := strings.TrimSuffix(strings.TrimSuffix(raw, "pt"), "px")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, participle.Errorf(pos, "invalid number %q", raw)
	}
	return v, nil
}
