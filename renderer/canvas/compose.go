package canvasrenderer

import (
	"fmt"
	"image"
	"image/color"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/rasterizer"
	xdraw "golang.org/x/image/draw"

	"github.com/ByLCY/labelsmith/layout"
	"github.com/ByLCY/labelsmith/renderer"
)

var debugGray = canvas.Hex("#D3D3D3")

// Label 是一次渲染的结果：光栅图、标签几何参数与绘制轨迹。
type Label struct {
	Image      *renderer.Image
	Properties layout.LabelProperties
	Trace      layout.Trace
}

// page 保存单次渲染调用内的全部可变状态，调用结束即丢弃。
type page struct {
	props   layout.LabelProperties
	paper   image.Rectangle
	img     *renderer.Image
	ctx     *canvas.Context
	cursors *layout.Cursors
	trace   layout.Trace
}

// newPage 分配白底光栅图（宽 × 高·LabelCount），标记 DPI，并为每张标签计算起始游标。
func newPage(props layout.LabelProperties) *page {
	size := props.PaperSize()
	img := renderer.NewImage(size.Width, size.Height, layout.DPI)
	xdraw.Draw(img.RGBA, img.Bounds(), image.White, image.Point{}, xdraw.Src)

	ctx := canvas.NewContext(rasterizer.FromImage(img.RGBA, canvas.DPI(layout.DPI), canvas.DefaultColorSpace))
	ctx.SetCoordSystem(canvas.CartesianIV) // 使坐标与像素保持左上角为原点

	cursors := layout.SeedCursors(props)
	return &page{
		props:   props,
		paper:   image.Rect(0, 0, size.Width, size.Height),
		img:     img,
		ctx:     ctx,
		cursors: cursors,
		trace:   layout.Trace{Properties: props, Starts: cursors.Starts()},
	}
}

// RenderTemplate 按模板渲染结构化内容：替换占位符、合并相邻行，然后按 Line1 → Line4 → Identifier 顺序绘制。
func (r *Renderer) RenderTemplate(content layout.LabelContent, tmpl layout.PartLabelTemplate, opts *layout.PrinterOptions) (*Label, error) {
	if opts == nil {
		return nil, fmt.Errorf("%w: options 不能为空", layout.ErrInvalidArgument)
	}
	if content.IsEmpty() {
		return nil, fmt.Errorf("%w: content 不能为空", layout.ErrInvalidArgument)
	}

	props := layout.ResolveStock(opts.LabelName)
	if err := tmpl.Validate(props.LabelCount); err != nil {
		return nil, err
	}
	resolved, err := layout.Resolve(content, tmpl)
	if err != nil {
		return nil, fmt.Errorf("模板替换失败: %w", err)
	}

	paperWidth := float64(props.Dimensions.Width)
	margins := tmpl.ContentMargins()
	resolved = layout.MergeAdjacent(tmpl, resolved, paperWidth-float64(margins.Left+margins.Right), r, r.fontFunc(paperWidth))

	pg := newPage(props)
	cursor, err := pg.cursors.Start(tmpl.Line1.Label)
	if err != nil {
		return nil, err
	}
	for i, cfg := range tmpl.Slots() {
		slot := layout.Slot(i)
		cursor, err = r.drawLine(pg, cursor, slot.String(), resolved.Slot(slot), cfg, margins)
		if err != nil {
			return nil, fmt.Errorf("绘制 %s 失败: %w", slot, err)
		}
	}
	return r.finish(pg, opts), nil
}

// RenderLines 按调用方给定的顺序绘制逐行配置，每行只推进其所属标签的游标。
func (r *Renderer) RenderLines(lines []layout.LineConfiguration, opts *layout.PrinterOptions) (*Label, error) {
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: lines 不能为空", layout.ErrInvalidArgument)
	}
	if opts == nil {
		return nil, fmt.Errorf("%w: options 不能为空", layout.ErrInvalidArgument)
	}

	props := layout.ResolveStock(opts.LabelName)
	if err := layout.ValidateLines(lines, props.LabelCount); err != nil {
		return nil, err
	}

	pg := newPage(props)
	var margins layout.Margin
	for i, line := range lines {
		cursor, err := pg.cursors.At(line.Label)
		if err != nil {
			return nil, err
		}
		next, err := r.drawLine(pg, cursor, fmt.Sprintf("line%d", i+1), line.Content, line, margins)
		if err != nil {
			return nil, fmt.Errorf("绘制第 %d 行失败: %w", i+1, err)
		}
		if err := pg.cursors.Set(line.Label, next); err != nil {
			return nil, err
		}
	}
	return r.finish(pg, opts), nil
}

func (r *Renderer) finish(pg *page, opts *layout.PrinterOptions) *Label {
	if opts.ShowDiagnostic {
		drawDebug(pg)
	}
	return &Label{Image: pg.img, Properties: pg.props, Trace: pg.trace}
}

// drawDebug 绘制外框与每张标签之间的分隔线，用于调试标签布局。
func drawDebug(pg *page) {
	w, h := pg.paper.Dx(), pg.paper.Dy()
	ctx := pg.ctx

	ctx.SetFillColor(color.RGBA{0, 0, 0, 0})
	ctx.SetStrokeColor(debugGray)
	ctx.SetStrokeWidth(px(1))
	ctx.DrawPath(0, 0, canvas.Rectangle(px(w-1), px(h-1)))

	every := h / pg.props.LabelCount
	ctx.SetStrokeColor(canvas.Black)
	ctx.SetStrokeWidth(px(2))
	for i := 1; i < pg.props.LabelCount; i++ {
		p := &canvas.Path{}
		p.MoveTo(0, 0)
		p.LineTo(px(w), 0)
		ctx.DrawPath(0, px(every*i), p)
	}
}

// px 将像素换算为 canvas 使用的毫米。
func px(v int) float64 { return layout.PxToMm(float64(v), layout.DPI) }
