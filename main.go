package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/pterm/pterm"

	"github.com/ByLCY/labelsmith/dsl"
	"github.com/ByLCY/labelsmith/fonts"
	"github.com/ByLCY/labelsmith/layout"
	"github.com/ByLCY/labelsmith/printer"
	"github.com/ByLCY/labelsmith/renderer"
	canvasrenderer "github.com/ByLCY/labelsmith/renderer/canvas"
)

func main() {
	input := flag.String("in", "", "标签描述文件路径（为空时使用默认零件模板）")
	dataJSON := flag.String("data", "", "绑定到模板的 JSON 对象")
	stock := flag.String("label", "", "标签纸型号，覆盖文件中的 stock")
	output := flag.String("out", "output/label.png", "输出路径（.png 或 .pdf）")
	debug := flag.String("debug", "", "绘制轨迹 JSON 输出路径")
	diagnostic := flag.Bool("diagnostic", false, "绘制外框与标签分隔线")
	preview := flag.Bool("preview", false, "只渲染并打印各行位置，不写输出文件")
	verbose := flag.Bool("v", false, "输出调试日志")
	flag.Parse()

	if *verbose {
		renderer.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	var data map[string]any
	if *dataJSON != "" {
		if err := json.Unmarshal([]byte(*dataJSON), &data); err != nil {
			log.Fatalf("解析 data JSON 失败: %v", err)
		}
	}

	opts := &layout.PrinterOptions{LabelName: *stock, ShowDiagnostic: *diagnostic, GenerateImageOnly: *preview}
	label, err := run(*input, *output, *debug, data, opts)
	if err != nil {
		log.Fatalf("生成标签失败: %v", err)
	}
	if *preview {
		printPlacements(label)
		return
	}
	pterm.Success.Printfln("已生成标签 %s（%s，%d×%d px）", *output, label.Properties.LabelName,
		label.Image.Bounds().Dx(), label.Image.Bounds().Dy())
}

// run 串联解析、渲染与输出。
func run(inputPath, outputPath, debugPath string, data map[string]any, opts *layout.PrinterOptions) (*canvasrenderer.Label, error) {
	file, err := load(inputPath)
	if err != nil {
		return nil, err
	}
	if opts.LabelName == "" {
		opts.LabelName = file.Stock()
	}
	tmpl, err := file.Template()
	if err != nil {
		return nil, fmt.Errorf("模板配置无效: %w", err)
	}
	sink, err := sinkFor(outputPath)
	if err != nil {
		return nil, err
	}
	r := canvasrenderer.NewRenderer()
	for _, decl := range file.Fonts() {
		fontData, err := fonts.Read(string(decl.Src), filepath.Dir(inputPath))
		if err != nil {
			return nil, err
		}
		if _, err := r.Fonts().Install(decl.Family(), fontData); err != nil {
			return nil, err
		}
	}
	p := printer.New(r, sink, tmpl)

	var label *canvasrenderer.Label
	if file.HasLines() {
		lines, err := file.Lines()
		if err != nil {
			return nil, fmt.Errorf("行配置无效: %w", err)
		}
		label, err = p.PrintLines(lines, opts)
		if err != nil {
			return nil, err
		}
	} else {
		content := layout.LabelContent{}
		if data != nil {
			content.Part = data
		}
		label, err = p.PrintLabel(content, opts)
		if err != nil {
			return nil, err
		}
	}

	if debugPath != "" {
		if err := writeDebug(&label.Trace, debugPath); err != nil {
			return nil, err
		}
	}
	return label, nil
}

// load 读取标签描述文件；路径为空时返回空文件，即默认模板。
func load(path string) (*dsl.File, error) {
	if path == "" {
		return &dsl.File{}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("无法打开标签文件 %s: %w", path, err)
	}
	defer f.Close()

	file, err := dsl.Parse(path, f)
	if err != nil {
		return nil, fmt.Errorf("解析标签文件失败: %w", err)
	}
	return file, nil
}

func sinkFor(path string) (printer.Sink, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return printer.PNGSink{Path: path}, nil
	case ".pdf":
		return printer.PDFSink{Path: path}, nil
	default:
		return nil, fmt.Errorf("不支持的输出格式 %q（仅支持 .png/.pdf）", filepath.Ext(path))
	}
}

func writeDebug(trace *layout.Trace, debugPath string) error {
	if err := os.MkdirAll(filepath.Dir(debugPath), 0o755); err != nil {
		return fmt.Errorf("创建调试目录失败: %w", err)
	}
	if err := layout.WriteDebugJSON(trace, debugPath); err != nil {
		return fmt.Errorf("输出调试 JSON 失败: %w", err)
	}
	return nil
}

func printPlacements(label *canvasrenderer.Label) {
	pterm.Info.Printfln("%s: %d 张标签，%d×%d px", label.Properties.LabelName, label.Properties.LabelCount,
		label.Image.Bounds().Dx(), label.Image.Bounds().Dy())
	rows := [][]string{{"slot", "label", "text", "font", "x", "y", "w×h"}}
	for _, pl := range label.Trace.Placements {
		text := pl.Text
		if pl.Barcode {
			text = "[barcode] " + text
		}
		rows = append(rows, []string{
			pl.Slot,
			fmt.Sprint(pl.Label),
			text,
			fmt.Sprintf("%s %gpt", pl.Font.Family, pl.Font.Size),
			fmt.Sprintf("%.1f", pl.X),
			fmt.Sprintf("%.1f", pl.Y),
			fmt.Sprintf("%.1f×%.1f", pl.Width, pl.Height),
		})
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(rows).Render(); err != nil {
		log.Printf("输出表格失败: %v", err)
	}
}
