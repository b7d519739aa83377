package layout

import (
	"strings"
	"testing"
)

func TestFitPrefix(t *testing.T) {
	m := &stubMeasurer{}
	font := Font{Family: "stub", Size: 10}
	if got := FitPrefix(m, "abcdefghij", font, 55); got != "abcde" {
		t.Fatalf("expected abcde, got %q", got)
	}
	if got := FitPrefix(m, "abc", font, 100); got != "abc" {
		t.Fatalf("fitting text must be unchanged, got %q", got)
	}
	// 单个字符比可用宽度还宽时，截断到空串并终止。
	if got := FitPrefix(m, "W", font, 5); got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
	if got := FitPrefix(m, "日本語テキスト", font, 30); got != "日本語" {
		t.Fatalf("must cut on rune boundaries, got %q", got)
	}
}

// TestSplitAcrossPrefixProperty 断言：两行拼接（补回被去掉的分隔空白）后是原文本的前缀，
// 且第一行宽度不超过可用宽度。
func TestSplitAcrossPrefixProperty(t *testing.T) {
	m := &stubMeasurer{}
	first := func(string) Font { return Font{Family: "stub", Size: 8} }
	second := func(string) Font { return Font{Family: "stub", Size: 6} }
	texts := []string{
		"",
		"   ",
		"short",
		"  Long description text that spills across two template lines  ",
		"Supercalifragilisticexpialidocious-and-then-some-more-characters",
	}
	for _, width := range []float64{40, 100, 160, 400} {
		for _, text := range texts {
			a, b := SplitAcross(m, text, first, second, width)
			full := strings.TrimSpace(text)
			if !strings.HasPrefix(full, a) {
				t.Fatalf("first line %q is not a prefix of %q", a, full)
			}
			rest := strings.TrimSpace(full[len(a):])
			if !strings.HasPrefix(rest, b) {
				t.Fatalf("second line %q is not a prefix of remainder %q", b, rest)
			}
			if w := m.MeasureText(a, first(a), DPI).Width; w > width {
				t.Fatalf("first line %q measures %g > %g", a, w, width)
			}
			if w := m.MeasureText(b, second(b), DPI).Width; w > width {
				t.Fatalf("second line %q measures %g > %g", b, w, width)
			}
		}
	}
}

func TestSplitAcrossWhitespaceOnly(t *testing.T) {
	m := &stubMeasurer{}
	f := func(string) Font { return Font{Size: 8} }
	a, b := SplitAcross(m, " \t ", f, f, 100)
	if a != "" || b != "" {
		t.Fatalf("expected two empty lines, got %q %q", a, b)
	}
}

func TestMergeAdjacentOnlyIdenticalContent(t *testing.T) {
	m := &stubMeasurer{}
	tmpl := PartLabelTemplate{
		Line1: LineConfiguration{Content: "{PartNumber}"},
		Line2: LineConfiguration{Content: "{Description}"},
		Line3: LineConfiguration{Content: "{Description}"},
		Line4: LineConfiguration{Content: "{Location}"},
	}
	desc := "Long description text for a part"
	c := Content{Text: [SlotCount]string{"LM358", desc, desc, "A1", "B-1"}}

	out := MergeAdjacent(tmpl, c, 100, m, fixedFont(10))
	if out.Slot(Line1) != "LM358" || out.Slot(Line4) != "A1" || out.Slot(Identifier) != "B-1" {
		t.Fatalf("unmerged slots changed: %+v", out.Text)
	}
	if out.Slot(Line2) != "Long descr" {
		t.Fatalf("unexpected line2 %q", out.Slot(Line2))
	}
	if out.Slot(Line3) != "iption tex" {
		t.Fatalf("unexpected line3 %q", out.Slot(Line3))
	}
	// 输入快照不应被修改
	if c.Slot(Line3) != desc {
		t.Fatalf("input snapshot mutated: %q", c.Slot(Line3))
	}
}

func TestMergeAdjacentOrder(t *testing.T) {
	m := &stubMeasurer{}
	same := LineConfiguration{Content: "{Description}"}
	tmpl := PartLabelTemplate{Line1: same, Line2: same, Line3: same, Line4: LineConfiguration{Content: "x"}}
	desc := "abcdefghijklmnopqrstuvwxyz"
	c := Content{Text: [SlotCount]string{desc, desc, desc, "x", ""}}

	out := MergeAdjacent(tmpl, c, 50, m, fixedFont(10))
	// 1↔2 先处理：abcde / fghij；随后 2↔3 时第二行已经放得下，第三行被清空。
	want := [SlotCount]string{"abcde", "fghij", "", "x", ""}
	if out.Text != want {
		t.Fatalf("got %q want %q", out.Text, want)
	}
}

func TestMergeAdjacentSkipsEmptyTemplates(t *testing.T) {
	m := &stubMeasurer{}
	c := Content{Text: [SlotCount]string{"first literal", "second literal", "", "", ""}}
	out := MergeAdjacent(PartLabelTemplate{}, c, 20, m, fixedFont(10))
	if out != c {
		t.Fatalf("empty templates must not merge: %q", out.Text)
	}
}
