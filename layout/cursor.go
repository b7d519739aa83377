package layout

import "fmt"

// Cursors 保存每张物理标签的起始位置与当前绘制位置，按 1 起始的标签序号访问。
type Cursors struct {
	starts  []Point
	current []Point
}

// SeedCursors 为每张标签 i ∈ [1, LabelCount] 计算起点 (0, TopMargin + H − H/i)，
// H 为整张光栅图高度，使用整数除法。
func SeedCursors(p LabelProperties) *Cursors {
	h := p.PaperSize().Height
	c := &Cursors{
		starts:  make([]Point, p.LabelCount),
		current: make([]Point, p.LabelCount),
	}
	for i := 1; i <= p.LabelCount; i++ {
		y := p.TopMargin + h - h/i
		c.starts[i-1] = Point{X: 0, Y: float64(y)}
	}
	copy(c.current, c.starts)
	return c
}

// CheckLabel 校验标签序号是否在 [1, count] 内。
func CheckLabel(label, count int) error {
	if label < 1 || label > count {
		return fmt.Errorf("%w: label %d not in [1, %d]", ErrLabelIndexOutOfRange, label, count)
	}
	return nil
}

// Len returns the number of physical labels.
func (c *Cursors) Len() int { return len(c.starts) }

// Start 返回标签的初始位置。
func (c *Cursors) Start(label int) (Point, error) {
	if err := CheckLabel(label, len(c.starts)); err != nil {
		return Point{}, err
	}
	return c.starts[label-1], nil
}

// At 返回标签当前的绘制位置。
func (c *Cursors) At(label int) (Point, error) {
	if err := CheckLabel(label, len(c.current)); err != nil {
		return Point{}, err
	}
	return c.current[label-1], nil
}

// Set 更新标签当前的绘制位置，其它标签不受影响。
func (c *Cursors) Set(label int, p Point) error {
	if err := CheckLabel(label, len(c.current)); err != nil {
		return err
	}
	c.current[label-1] = p
	return nil
}

// Starts returns a copy of the seeded start positions, label 1 first.
func (c *Cursors) Starts() []Point {
	return append([]Point(nil), c.starts...)
}

// Validate 校验模板中每个槽位的标签序号。
func (t PartLabelTemplate) Validate(count int) error {
	for i, cfg := range t.Slots() {
		if err := CheckLabel(cfg.Label, count); err != nil {
			return fmt.Errorf("%s: %w", Slot(i), err)
		}
	}
	return nil
}

// ValidateLines 校验逐行模式下每一行的标签序号。
func ValidateLines(lines []LineConfiguration, count int) error {
	for i, cfg := range lines {
		if err := CheckLabel(cfg.Label, count); err != nil {
			return fmt.Errorf("line %d: %w", i+1, err)
		}
	}
	return nil
}
