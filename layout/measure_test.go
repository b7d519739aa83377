package layout

import "unicode/utf8"

// stubMeasurer 是一个最小实现，仅用于测试：每个字符宽度等于字号（pt 数值），高度等于字号。
type stubMeasurer struct {
	calls int
}

func (s *stubMeasurer) MeasureText(text string, font Font, dpi float64) Extent {
	s.calls++
	if text == "" {
		return Extent{}
	}
	return Extent{Width: float64(utf8.RuneCountInString(text)) * font.Size, Height: font.Size}
}

func fixedFont(size float64) FontFunc {
	return func(cfg LineConfiguration, text string) Font {
		return Font{Family: "stub", Size: size}
	}
}
