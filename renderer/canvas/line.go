package canvasrenderer

import (
	"fmt"
	"image"
	"math"

	"github.com/tdewolff/canvas"
	xdraw "golang.org/x/image/draw"

	"github.com/ByLCY/labelsmith/layout"
	"github.com/ByLCY/labelsmith/renderer"
)

// drawLine 绘制一行并返回下一行的起始游标 (0, y + 文本高度)。
// 旋转的行在轨迹中记录旋转后的外接框。
// margins 为整张标签的内容边距，cfg.Margin 为该行自身的边距。
func (r *Renderer) drawLine(pg *page, cursor layout.Point, slot, text string, cfg layout.LineConfiguration, margins layout.Margin) (layout.Point, error) {
	width := pg.paper.Dx()
	font := r.fontFor(cfg, text, float64(width))
	bounds := r.MeasureText(text, font, layout.DPI)
	advance := bounds.Height

	x := float64(cfg.Margin.Left)
	y := cursor.Y + float64(cfg.Margin.Top)
	if cfg.Barcode {
		x = 0
		y += BarcodeOffset
		rect := image.Rect(int(x), int(y), width, int(y)+pg.paper.Dy()/pg.props.LabelCount)
		if err := r.placeBarcode(pg, text, rect); err != nil {
			return cursor, err
		}
	} else if cfg.Rotate != 0 {
		// 旋转的行总是从所属标签的顶部开始，按旋转后的外接框对齐
		start, err := pg.cursors.Start(cfg.Label)
		if err != nil {
			return cursor, err
		}
		rb := rotatedBox(bounds.Width, bounds.Height, cfg.Rotate)
		left := x + rotatedLeft(cfg.Position, rb.Dx(), margins, width) + float64(pg.props.LeftMargin)
		top := start.Y + float64(cfg.Margin.Top)
		r.drawText(pg, text, font, left-rb.minX, top-rb.minY, cfg.Rotate)
		x, y = left, top
		bounds = layout.Extent{Width: rb.Dx(), Height: rb.Dy()}
	} else {
		leftMargin := float64(pg.props.LeftMargin)
		// 可用宽度的右边界；与居中计算一样使用整数运算
		right := margins.Left + width - margins.Right
		switch cfg.Position {
		case layout.Right:
			x += float64(right) - bounds.Width + leftMargin
		case layout.Center:
			x += float64(right/2) - bounds.Width/2 + leftMargin
		default:
			x += float64(margins.Left) + leftMargin
		}
		r.drawText(pg, text, font, x, y, 0)
	}

	pg.trace.Placements = append(pg.trace.Placements, layout.Placement{
		Slot:    slot,
		Label:   cfg.Label,
		Text:    text,
		Font:    font,
		X:       x,
		Y:       y,
		Width:   bounds.Width,
		Height:  bounds.Height,
		Rotate:  cfg.Rotate,
		Barcode: cfg.Barcode,
	})
	renderer.Logger().Debug("line drawn", "slot", slot, "label", cfg.Label, "x", x, "y", y, "font", font.Family, "size", font.Size)
	return layout.Point{X: 0, Y: y + advance}, nil
}

// drawText 以 (x, y) 为文本左上角绘制；rotate 非零时绕该点旋转 rotate 度。
func (r *Renderer) drawText(pg *page, text string, font layout.Font, x, y, rotate float64) {
	if text == "" {
		return
	}
	face := r.face(font)
	line := canvas.NewTextLine(face, text, canvas.Left)
	mx, my := layout.PxToMm(x, layout.DPI), layout.PxToMm(y, layout.DPI)
	// 基线位置：行顶部加上字体上升部（mm）
	baseline := my + face.Metrics().Ascent

	if rotate != 0 {
		pg.ctx.Push()
		defer pg.ctx.Pop()
		pg.ctx.RotateAbout(rotate, mx, my)
	}
	pg.ctx.DrawText(mx, baseline, line)
}

// placeBarcode 向编码器请求 rect.Dx() × BarcodeHeight 的条码位图，贴到 (0, rect.Min.Y)，
// 然后重新写入分辨率元数据。空内容不绘制。
func (r *Renderer) placeBarcode(pg *page, payload string, rect image.Rectangle) error {
	if payload == "" {
		return nil
	}
	bitmap, err := r.barcode.Encode(payload, rect.Dx(), BarcodeHeight)
	if err != nil {
		return fmt.Errorf("生成条码失败: %w", err)
	}
	b := bitmap.Bounds()
	dst := image.Rectangle{Max: b.Size()}.Add(image.Pt(0, rect.Min.Y))
	xdraw.Draw(pg.img.RGBA, dst, bitmap, b.Min, xdraw.Over)
	pg.img.SetResolution(layout.DPI, layout.DPI)
	return nil
}

// box 为相对于文本左上角的外接框（px）。
type box struct {
	minX, minY, maxX, maxY float64
}

func (b box) Dx() float64 { return b.maxX - b.minX }
func (b box) Dy() float64 { return b.maxY - b.minY }

// rotatedBox 返回 w × h 的文本框绕左上角顺时针旋转 deg 度（y 轴向下）后的外接框。
func rotatedBox(w, h, deg float64) box {
	sin, cos := math.Sincos(deg * math.Pi / 180)
	b := box{minX: math.Inf(1), minY: math.Inf(1), maxX: math.Inf(-1), maxY: math.Inf(-1)}
	for _, c := range [4][2]float64{{0, 0}, {w, 0}, {0, h}, {w, h}} {
		x := c[0]*cos - c[1]*sin
		y := c[0]*sin + c[1]*cos
		b.minX, b.maxX = math.Min(b.minX, x), math.Max(b.maxX, x)
		b.minY, b.maxY = math.Min(b.minY, y), math.Max(b.maxY, y)
	}
	return b
}

// rotatedLeft 返回旋转后外接框的左边界。靠左/靠右且预留了边栏时，外接框在边栏内居中；
// 否则贴齐纸张边缘。居中时与普通文本一样以 right/2 为中心。
func rotatedLeft(pos layout.Position, w float64, margins layout.Margin, width int) float64 {
	right := margins.Left + width - margins.Right
	switch pos {
	case layout.Right:
		if margins.Right > 0 {
			return float64(right) + float64(margins.Right)/2 - w/2
		}
		return float64(width) - w
	case layout.Center:
		return float64(right/2) - w/2
	default:
		if margins.Left > 0 {
			return float64(margins.Left)/2 - w/2
		}
		return 0
	}
}
