package printer

import (
	"bytes"
	"encoding/binary"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/ByLCY/labelsmith/layout"
	"github.com/ByLCY/labelsmith/renderer"
	canvasrenderer "github.com/ByLCY/labelsmith/renderer/canvas"
)

type recordingSink struct {
	calls int
	props layout.LabelProperties
	opts  layout.PrinterOptions
	err   error
}

func (s *recordingSink) Send(_ *renderer.Image, props layout.LabelProperties, opts layout.PrinterOptions) error {
	s.calls++
	s.props = props
	s.opts = opts
	return s.err
}

type part struct {
	PartNumber  string
	Description string
	Location    string
	BinNumber   string
}

func sampleContent() layout.LabelContent {
	return layout.LabelContent{Part: part{PartNumber: "ne555", Description: "Timer", Location: "A1", BinNumber: "3"}}
}

func TestPrintLabelDispatchesToSink(t *testing.T) {
	sink := &recordingSink{}
	p := New(nil, sink, layout.DefaultTemplate())
	label, err := p.PrintLabel(sampleContent(), &layout.PrinterOptions{LabelName: "30277"})
	if err != nil {
		t.Fatalf("print: %v", err)
	}
	if label == nil || label.Image == nil {
		t.Fatalf("expected rendered label")
	}
	if sink.calls != 1 {
		t.Fatalf("expected 1 sink call, got %d", sink.calls)
	}
	if sink.props.LabelName != "30277" || sink.opts.LabelName != "30277" {
		t.Fatalf("sink received wrong stock: %+v / %+v", sink.props, sink.opts)
	}
}

func TestGenerateImageOnlySkipsSink(t *testing.T) {
	sink := &recordingSink{}
	p := New(canvasrenderer.NewRenderer(), sink, layout.DefaultTemplate())
	opts := &layout.PrinterOptions{GenerateImageOnly: true}
	if _, err := p.PrintLabel(sampleContent(), opts); err != nil {
		t.Fatalf("print label: %v", err)
	}
	lines := []layout.LineConfiguration{{Content: "x", Label: 1}}
	if _, err := p.PrintLines(lines, opts); err != nil {
		t.Fatalf("print lines: %v", err)
	}
	if sink.calls != 0 {
		t.Fatalf("sink must not be called in preview mode, got %d calls", sink.calls)
	}
}

func TestRenderErrorSkipsSink(t *testing.T) {
	sink := &recordingSink{}
	p := New(nil, sink, layout.DefaultTemplate())
	label, err := p.PrintLines(nil, &layout.PrinterOptions{})
	if !errors.Is(err, layout.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
	if label != nil || sink.calls != 0 {
		t.Fatalf("failed render must not reach the sink")
	}
}

func TestSinkErrorPropagates(t *testing.T) {
	boom := errors.New("printer offline")
	p := New(nil, SinkFunc(func(*renderer.Image, layout.LabelProperties, layout.PrinterOptions) error { return boom }), layout.DefaultTemplate())
	label, err := p.PrintLines([]layout.LineConfiguration{{Content: "x", Label: 1}}, &layout.PrinterOptions{})
	if !errors.Is(err, boom) {
		t.Fatalf("expected sink error, got %v", err)
	}
	if label == nil {
		t.Fatalf("rendered label should still be returned")
	}
}

func TestEncodePNGWritesResolution(t *testing.T) {
	img := renderer.NewImage(10, 4, layout.DPI)
	var buf bytes.Buffer
	if err := EncodePNG(&buf, img); err != nil {
		t.Fatalf("encode: %v", err)
	}
	data := buf.Bytes()
	if !bytes.Equal(data[pngHeaderLen+4:pngHeaderLen+8], []byte("pHYs")) {
		t.Fatalf("pHYs chunk should follow IHDR")
	}
	body := data[pngHeaderLen+8:]
	if got := binary.BigEndian.Uint32(body[0:4]); got != 11811 {
		t.Fatalf("expected 11811 px/m, got %d", got)
	}
	if body[8] != 1 {
		t.Fatalf("expected metre unit, got %d", body[8])
	}
	decoded, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("output must remain a valid PNG: %v", err)
	}
	if decoded.Bounds().Dx() != 10 || decoded.Bounds().Dy() != 4 {
		t.Fatalf("unexpected bounds %v", decoded.Bounds())
	}
}

func TestFileSinks(t *testing.T) {
	dir := t.TempDir()
	p := New(nil, nil, layout.DefaultTemplate())
	label, err := p.PrintLabel(sampleContent(), &layout.PrinterOptions{})
	if err != nil {
		t.Fatalf("print: %v", err)
	}

	pngPath := filepath.Join(dir, "out", "label.png")
	if err := (PNGSink{Path: pngPath}).Send(label.Image, label.Properties, layout.PrinterOptions{}); err != nil {
		t.Fatalf("png sink: %v", err)
	}
	if info, err := os.Stat(pngPath); err != nil || info.Size() == 0 {
		t.Fatalf("png not written: %v", err)
	}

	pdfPath := filepath.Join(dir, "label.pdf")
	if err := (PDFSink{Path: pdfPath}).Send(label.Image, label.Properties, layout.PrinterOptions{}); err != nil {
		t.Fatalf("pdf sink: %v", err)
	}
	data, err := os.ReadFile(pdfPath)
	if err != nil {
		t.Fatalf("read pdf: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Fatalf("expected PDF header, got %q", data[:8])
	}

	if err := (PNGSink{}).Send(label.Image, label.Properties, layout.PrinterOptions{}); !errors.Is(err, layout.ErrInvalidArgument) {
		t.Fatalf("empty path: expected ErrInvalidArgument, got %v", err)
	}
}
