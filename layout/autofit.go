package layout

const (
	// AutoFitStep 为每次缩小的字号（pt）。
	AutoFitStep = 0.5
	// MinFontSize 为自动缩放的下限，到达后直接接受，避免无限缩小。
	MinFontSize = 1.0
)

// AutoFit 从 startPt 开始逐步缩小字号，直到 text 的测量宽度不超过 maxWidth（px）。
// 字号只减不增；到达 MinFontSize 时视为合适。字号保持为 pt，由 Measurer 按 DPI 换算为像素后比较。
func AutoFit(m Measurer, family string, startPt float64, text string, maxWidth float64) Font {
	size := startPt
	for size > MinFontSize {
		font := Font{Family: family, Size: size}
		if m.MeasureText(text, font, DPI).Width <= maxWidth {
			return font
		}
		size -= AutoFitStep
	}
	if startPt >= MinFontSize {
		size = MinFontSize
	}
	return Font{Family: family, Size: size}
}
