package layout

import "strings"

// 该文件定义标签渲染的输入模型与几何描述，供模板替换、合并、绘制与调试 JSON 共用。

// Position 表示一行文本在标签上的水平对齐方式。
type Position int

const (
	Left Position = iota
	Center
	Right
)

// String returns the lower-case name used by the template DSL and debug output.
func (p Position) String() string {
	switch p {
	case Center:
		return "center"
	case Right:
		return "right"
	default:
		return "left"
	}
}

// ParsePosition maps "left"/"center"/"right" (any case, also start/middle/end) to a Position.
func ParsePosition(s string) (Position, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left", "start":
		return Left, true
	case "center", "middle":
		return Center, true
	case "right", "end":
		return Right, true
	}
	return Left, false
}

// MarshalText keeps positions readable in debug JSON.
func (p Position) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

// Margin 以像素为单位（300 DPI）。
type Margin struct {
	Left   int `json:"left"`
	Right  int `json:"right"`
	Top    int `json:"top"`
	Bottom int `json:"bottom"`
}

// LineConfiguration 描述一个文本槽位的绘制方式。
type LineConfiguration struct {
	// Content 为模板字符串，可以包含一个 {PropertyName} 占位符。
	Content string `json:"content"`
	// Label 为该行所属的物理标签序号，从 1 开始。
	Label     int      `json:"label"`
	Position  Position `json:"position"`
	Margin    Margin   `json:"margin"`
	FontName  string   `json:"fontName,omitempty"`
	FontSize  float64  `json:"fontSize"` // pt
	AutoSize  bool     `json:"autoSize,omitempty"`
	Rotate    float64  `json:"rotate,omitempty"` // 角度，0 表示不旋转
	Barcode   bool     `json:"barcode,omitempty"`
	UpperCase bool     `json:"upperCase,omitempty"`
	LowerCase bool     `json:"lowerCase,omitempty"`
}

// Slot identifies one of the five semantic text positions of a part label.
type Slot int

const (
	Line1 Slot = iota
	Line2
	Line3
	Line4
	Identifier

	SlotCount = 5
)

func (s Slot) String() string {
	switch s {
	case Line1:
		return "line1"
	case Line2:
		return "line2"
	case Line3:
		return "line3"
	case Line4:
		return "line4"
	case Identifier:
		return "identifier"
	default:
		return "unknown"
	}
}

// MarshalText keeps slots readable in debug JSON.
func (s Slot) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// PartLabelTemplate 按固定顺序保存五个槽位的配置：Line1 → Line4 → Identifier。
type PartLabelTemplate struct {
	Line1      LineConfiguration `json:"line1"`
	Line2      LineConfiguration `json:"line2"`
	Line3      LineConfiguration `json:"line3"`
	Line4      LineConfiguration `json:"line4"`
	Identifier LineConfiguration `json:"identifier"`
}

// Slots returns the slot configurations in drawing order.
func (t PartLabelTemplate) Slots() [SlotCount]LineConfiguration {
	return [SlotCount]LineConfiguration{t.Line1, t.Line2, t.Line3, t.Line4, t.Identifier}
}

// Slot returns the configuration for s.
func (t PartLabelTemplate) Slot(s Slot) LineConfiguration {
	return t.Slots()[s]
}

// ContentMargins 计算模板模式下的内容边距：当 Identifier 有内容且靠左/靠右时，
// 为其预留 25px 的竖排空间。
func (t PartLabelTemplate) ContentMargins() Margin {
	var m Margin
	if t.Identifier.Content == "" {
		return m
	}
	switch t.Identifier.Position {
	case Right:
		m.Right = identifierGutter
	case Left:
		m.Left = identifierGutter
	}
	return m
}

const identifierGutter = 25

// DefaultTemplate mirrors the stock part label: part number, two merged
// description lines, location and a right-hand bin identifier.
func DefaultTemplate() PartLabelTemplate {
	return PartLabelTemplate{
		Line1:      LineConfiguration{Content: "{PartNumber}", Label: 1, Position: Center, FontSize: 16, AutoSize: true, UpperCase: true},
		Line2:      LineConfiguration{Content: "{Description}", Label: 1, Position: Center, FontSize: 8},
		Line3:      LineConfiguration{Content: "{Description}", Label: 1, Position: Center, FontSize: 8},
		Line4:      LineConfiguration{Content: "{Location}", Label: 1, Position: Center, FontSize: 8},
		Identifier: LineConfiguration{Content: "{BinNumber}", Label: 1, Position: Right, FontSize: 8, Rotate: 90},
	}
}

// LabelContent 是模板模式的输入。为 nil 的槽位由模板替换得到。
type LabelContent struct {
	Part       any
	Line1      *string
	Line2      *string
	Line3      *string
	Line4      *string
	Identifier *string
}

// Text returns a pointer to s, for filling LabelContent slots.
func Text(s string) *string { return &s }

func (c LabelContent) literals() [SlotCount]*string {
	return [SlotCount]*string{c.Line1, c.Line2, c.Line3, c.Line4, c.Identifier}
}

// IsEmpty reports whether there is neither part data nor any literal slot.
func (c LabelContent) IsEmpty() bool {
	if c.Part != nil {
		return false
	}
	for _, l := range c.literals() {
		if l != nil {
			return false
		}
	}
	return true
}

// Size 为像素尺寸。
type Size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// LabelProperties 是某种标签纸的物理几何参数，创建后不可变。
type LabelProperties struct {
	LabelName  string `json:"labelName"`
	TopMargin  int    `json:"topMargin"`
	LeftMargin int    `json:"leftMargin"`
	LabelCount int    `json:"labelCount"`
	TotalLines int    `json:"totalLines"`
	// Dimensions 为单张物理标签的像素宽高。
	Dimensions Size `json:"dimensions"`
}

// PaperSize 返回整张光栅图的尺寸：宽度不变，高度为单张高度 × LabelCount。
func (p LabelProperties) PaperSize() Size {
	return Size{Width: p.Dimensions.Width, Height: p.Dimensions.Height * p.LabelCount}
}

// PrinterOptions 控制单次渲染。
type PrinterOptions struct {
	LabelName         string `json:"labelName"`
	ShowDiagnostic    bool   `json:"showDiagnostic"`
	GenerateImageOnly bool   `json:"generateImageOnly"`
}

// Point 为像素坐标。
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Font 描述一个已解析的字体：Family 为注册表中的名称，Size 单位为 pt。
type Font struct {
	Family string  `json:"family"`
	Size   float64 `json:"size"`
}

// Extent 为测量得到的文本像素宽高。
type Extent struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}
