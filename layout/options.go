package layout

// Measurer 负责在给定字体与分辨率下测量单行文本的像素宽高。
// 对相同输入必须返回相同结果。
type Measurer interface {
	MeasureText(text string, font Font, dpi float64) Extent
}

// FontFunc 为某个槽位配置与其文本选择最终字体（包括自动缩放）。
type FontFunc func(cfg LineConfiguration, text string) Font
