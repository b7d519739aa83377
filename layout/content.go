package layout

import (
	"errors"
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/ByLCY/labelsmith/binding"
)

// Content 是模板模式下每个槽位解析后的文本快照。
// 值类型，每一步处理都返回新的快照而不是修改原值。
type Content struct {
	Part any                `json:"-"`
	Text [SlotCount]string `json:"text"`
}

// With returns a copy of c with slot s set to text.
func (c Content) With(s Slot, text string) Content {
	c.Text[s] = text
	return c
}

// Slot returns the text for s.
func (c Content) Slot(s Slot) string { return c.Text[s] }

// Substitute 对一行模板做占位符替换，然后按 UpperCase/LowerCase 转换大小写（大写优先）。
func Substitute(data any, cfg LineConfiguration) (string, error) {
	value, err := binding.Replace(cfg.Content, data)
	if err != nil {
		if errors.Is(err, binding.ErrNotFound) {
			return "", fmt.Errorf("%w: %v", ErrMissingProperty, err)
		}
		return "", err
	}
	// Caser 有内部状态，不能跨 goroutine 共享，每次调用单独创建
	switch {
	case cfg.UpperCase:
		value = cases.Upper(language.Und).String(value)
	case cfg.LowerCase:
		value = cases.Lower(language.Und).String(value)
	}
	return value, nil
}

// Resolve 生成模板模式的初始快照：调用方提供的槽位原样保留，其余槽位由模板替换得到。
func Resolve(content LabelContent, t PartLabelTemplate) (Content, error) {
	out := Content{Part: content.Part}
	slots := t.Slots()
	for i, literal := range content.literals() {
		if literal != nil {
			out.Text[i] = *literal
			continue
		}
		text, err := Substitute(content.Part, slots[i])
		if err != nil {
			return Content{}, fmt.Errorf("%s: %w", Slot(i), err)
		}
		out.Text[i] = text
	}
	return out, nil
}
