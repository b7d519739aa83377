// Package printer 将渲染好的标签交给打印输出端（PNG/PDF 文件或自定义后端）。
package printer

import (
	"fmt"

	"github.com/ByLCY/labelsmith/layout"
	"github.com/ByLCY/labelsmith/renderer"
	canvasrenderer "github.com/ByLCY/labelsmith/renderer/canvas"
)

// Sink receives a finished label raster. Send blocks until the label has
// been handed off; retries are the sink's own concern.
type Sink interface {
	Send(img *renderer.Image, props layout.LabelProperties, opts layout.PrinterOptions) error
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(img *renderer.Image, props layout.LabelProperties, opts layout.PrinterOptions) error

// Send calls f.
func (f SinkFunc) Send(img *renderer.Image, props layout.LabelProperties, opts layout.PrinterOptions) error {
	return f(img, props, opts)
}

// Printer 组合渲染器、零件模板与输出端。
type Printer struct {
	renderer *canvasrenderer.Renderer
	sink     Sink
	template layout.PartLabelTemplate
}

// New creates a printer. A nil renderer gets a default one; a nil sink
// makes every call behave as GenerateImageOnly.
func New(r *canvasrenderer.Renderer, sink Sink, tmpl layout.PartLabelTemplate) *Printer {
	if r == nil {
		r = canvasrenderer.NewRenderer()
	}
	return &Printer{renderer: r, sink: sink, template: tmpl}
}

// Template returns the part template used by PrintLabel.
func (p *Printer) Template() layout.PartLabelTemplate { return p.template }

// PrintLabel 按打印机的零件模板渲染 content，GenerateImageOnly 为 false 时交给输出端。
func (p *Printer) PrintLabel(content layout.LabelContent, opts *layout.PrinterOptions) (*canvasrenderer.Label, error) {
	label, err := p.renderer.RenderTemplate(content, p.template, opts)
	if err != nil {
		return nil, err
	}
	return label, p.dispatch(label, opts)
}

// PrintLines 渲染逐行配置，GenerateImageOnly 为 false 时交给输出端。
func (p *Printer) PrintLines(lines []layout.LineConfiguration, opts *layout.PrinterOptions) (*canvasrenderer.Label, error) {
	label, err := p.renderer.RenderLines(lines, opts)
	if err != nil {
		return nil, err
	}
	return label, p.dispatch(label, opts)
}

// dispatch 在渲染成功后调用；出错时仍返回已生成的图像，便于调用方预览。
func (p *Printer) dispatch(label *canvasrenderer.Label, opts *layout.PrinterOptions) error {
	if opts.GenerateImageOnly || p.sink == nil {
		return nil
	}
	renderer.Logger().Info("sending label", "stock", label.Properties.LabelName, "labels", label.Properties.LabelCount,
		"width", label.Image.Bounds().Dx(), "height", label.Image.Bounds().Dy())
	if err := p.sink.Send(label.Image, label.Properties, *opts); err != nil {
		return fmt.Errorf("发送标签 %s 失败: %w", label.Properties.LabelName, err)
	}
	return nil
}
