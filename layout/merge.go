package layout

import "strings"

// FitPrefix 逐个去掉末尾字符，直到 text 在 font 下的宽度不超过 width（px），
// 或者字符串为空。
func FitPrefix(m Measurer, text string, font Font, width float64) string {
	runes := []rune(text)
	for len(runes) > 0 && m.MeasureText(string(runes), font, DPI).Width > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes)
}

// SplitAcross 将一段逻辑文本拆到相邻的两个槽位：先在第一个槽位的字体下截取最长前缀，
// 剩余部分去掉首尾空白后在第二个槽位的字体下截断。超出两行的部分直接丢弃。
func SplitAcross(m Measurer, text string, first, second func(string) Font, width float64) (string, string) {
	full := strings.TrimSpace(text)
	if full == "" {
		return "", ""
	}
	head := FitPrefix(m, full, first(full), width)
	if len(head) >= len(full) {
		return head, ""
	}
	rest := strings.TrimSpace(full[len(head):])
	if rest == "" {
		return head, ""
	}
	return head, FitPrefix(m, rest, second(rest), width)
}

// MergeAdjacent 依次处理 (1,2)、(2,3)、(3,4) 三对槽位：模板 Content 完全相同（且非空）时，
// 视为一个可以溢出到下一行的长字段。顺序不可交换，前一对的结果会影响后一对。
func MergeAdjacent(t PartLabelTemplate, c Content, width float64, m Measurer, fontFor FontFunc) Content {
	slots := t.Slots()
	for n := Line1; n < Line4; n++ {
		a, b := slots[n], slots[n+1]
		if a.Content == "" || a.Content != b.Content {
			continue
		}
		head, tail := SplitAcross(m, c.Text[n],
			func(s string) Font { return fontFor(a, s) },
			func(s string) Font { return fontFor(b, s) },
			width)
		c = c.With(n, head).With(n+1, tail)
	}
	return c
}
