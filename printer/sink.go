package printer

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/pdf"
	xdraw "golang.org/x/image/draw"

	"github.com/ByLCY/labelsmith/layout"
	"github.com/ByLCY/labelsmith/renderer"
)

// PNGSink 将整张光栅图（包含全部物理标签）写入 PNG 文件。
type PNGSink struct {
	Path string
}

// Send implements Sink.
func (s PNGSink) Send(img *renderer.Image, _ layout.LabelProperties, _ layout.PrinterOptions) error {
	return writeFile(s.Path, func(w io.Writer) error { return EncodePNG(w, img) })
}

// PDFSink 将每张物理标签写成一页 PDF，页面尺寸与标签实际尺寸一致。
type PDFSink struct {
	Path string
}

// Send implements Sink.
func (s PDFSink) Send(img *renderer.Image, props layout.LabelProperties, _ layout.PrinterOptions) error {
	return writeFile(s.Path, func(w io.Writer) error { return EncodePDF(w, img, props) })
}

func writeFile(path string, encode func(io.Writer) error) error {
	if path == "" {
		return fmt.Errorf("%w: 输出路径为空", layout.ErrInvalidArgument)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("创建输出目录失败: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("创建输出文件 %s 失败: %w", path, err)
	}
	if err := encode(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// pngHeaderLen 为 PNG 签名加 IHDR 块的字节数；pHYs 块紧随其后写入。
const pngHeaderLen = 8 + 4 + 4 + 13 + 4

// EncodePNG 编码为 PNG，并写入 pHYs 块记录图像的 DPI。
func EncodePNG(w io.Writer, img *renderer.Image) error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img.RGBA); err != nil {
		return fmt.Errorf("编码 PNG 失败: %w", err)
	}
	data := buf.Bytes()
	if len(data) < pngHeaderLen {
		return fmt.Errorf("编码 PNG 失败: 输出过短 (%d bytes)", len(data))
	}
	for _, part := range [][]byte{data[:pngHeaderLen], physChunk(img.HorizontalResolution, img.VerticalResolution), data[pngHeaderLen:]} {
		if _, err := w.Write(part); err != nil {
			return fmt.Errorf("写入 PNG 失败: %w", err)
		}
	}
	return nil
}

func physChunk(xdpi, ydpi float64) []byte {
	chunk := make([]byte, 4+4+9+4)
	binary.BigEndian.PutUint32(chunk[0:], 9)
	copy(chunk[4:], "pHYs")
	binary.BigEndian.PutUint32(chunk[8:], layout.PixelsPerMetre(xdpi))
	binary.BigEndian.PutUint32(chunk[12:], layout.PixelsPerMetre(ydpi))
	chunk[16] = 1 // 单位：米
	binary.BigEndian.PutUint32(chunk[17:], crc32.ChecksumIEEE(chunk[4:17]))
	return chunk
}

// EncodePDF 按 props 将光栅图切分为 LabelCount 页，每页嵌入一张物理标签的位图。
func EncodePDF(w io.Writer, img *renderer.Image, props layout.LabelProperties) error {
	count := props.LabelCount
	if count < 1 {
		count = 1
	}
	bounds := img.Bounds()
	labelHeight := bounds.Dy() / count
	dpi := img.HorizontalResolution
	if dpi <= 0 {
		dpi = layout.DPI
	}
	width := layout.PxToMm(float64(bounds.Dx()), dpi)
	height := layout.PxToMm(float64(labelHeight), dpi)

	writer := pdf.New(w, width, height, nil)
	writer.SetInfo(props.LabelName, "label", "", "", "labelsmith")
	for i := 0; i < count; i++ {
		if i > 0 {
			writer.NewPage(width, height)
		}
		page := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), labelHeight))
		xdraw.Draw(page, page.Bounds(), img.RGBA, image.Pt(bounds.Min.X, bounds.Min.Y+i*labelHeight), xdraw.Src)

		c := canvas.New(width, height)
		ctx := canvas.NewContext(c)
		ctx.DrawImage(0, 0, page, canvas.DPI(dpi))
		c.RenderTo(writer)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("写入 PDF 失败: %w", err)
	}
	return nil
}
