package canvasrenderer

import (
	"math"
	"strings"

	"github.com/tdewolff/canvas"

	"github.com/ByLCY/labelsmith/barcode"
	"github.com/ByLCY/labelsmith/fonts"
	"github.com/ByLCY/labelsmith/layout"
	"github.com/ByLCY/labelsmith/renderer"
)

const (
	// BarcodeHeight 为条码位图的固定高度（px）。
	BarcodeHeight = 25
	// BarcodeOffset 为条码相对当前游标向下的偏移（px）。
	BarcodeOffset = 12
	// DefaultFontSize is used when a line configuration leaves FontSize unset.
	DefaultFontSize = 8.0
)

// Renderer composes label rasters via github.com/tdewolff/canvas.
type Renderer struct {
	fonts   *fonts.Registry
	barcode barcode.Encoder
}

var _ layout.Measurer = (*Renderer)(nil)

// Options configures the canvas renderer.
type Options struct {
	Fonts   *fonts.Registry // 为空时新建一个注册表
	Barcode barcode.Encoder // 为空时使用 Code128
}

// NewRenderer creates a renderer with its own font registry and a Code128 encoder.
func NewRenderer() *Renderer { return NewRendererWithOptions(Options{}) }

// NewRendererWithOptions creates a renderer with injected collaborators.
func NewRendererWithOptions(opts Options) *Renderer {
	r := &Renderer{fonts: opts.Fonts, barcode: opts.Barcode}
	if r.fonts == nil {
		r.fonts = fonts.NewRegistry()
	}
	if r.barcode == nil {
		r.barcode = barcode.Code128{}
	}
	return r
}

// Fonts returns the registry used to resolve font names.
func (r *Renderer) Fonts() *fonts.Registry { return r.fonts }

// MeasureText 实现 layout.Measurer：宽度为排版后的前进宽度，高度为上升部加下降部，均换算为 dpi 下的像素。
func (r *Renderer) MeasureText(text string, font layout.Font, dpi float64) layout.Extent {
	if text == "" {
		return layout.Extent{}
	}
	face := r.face(font)
	metrics := face.Metrics()
	return layout.Extent{
		Width:  layout.MmToPx(face.TextWidth(text), dpi),
		Height: layout.MmToPx(metrics.Ascent+math.Abs(metrics.Descent), dpi),
	}
}

func (r *Renderer) face(font layout.Font) *canvas.FontFace {
	family := r.fonts.Resolve(font.Family)
	return family.Face(font.Size, canvas.Black, canvas.FontRegular, canvas.FontNormal)
}

// fontFor 解析行配置的字体；AutoSize 时按 maxWidth 自动缩小字号。
func (r *Renderer) fontFor(cfg layout.LineConfiguration, text string, maxWidth float64) layout.Font {
	family := r.fonts.Resolve(cfg.FontName)
	if cfg.FontName != "" && !strings.EqualFold(family.Name, strings.TrimSpace(cfg.FontName)) {
		renderer.Logger().Debug("font not registered, using fallback", "font", cfg.FontName, "fallback", family.Name)
	}
	size := cfg.FontSize
	if size <= 0 {
		size = DefaultFontSize
	}
	if cfg.AutoSize {
		return layout.AutoFit(r, family.Name, size, text, maxWidth)
	}
	return layout.Font{Family: family.Name, Size: size}
}

func (r *Renderer) fontFunc(maxWidth float64) layout.FontFunc {
	return func(cfg layout.LineConfiguration, text string) layout.Font {
		return r.fontFor(cfg, text, maxWidth)
	}
}
