package layout

import (
	"encoding/json"
	"os"
)

// Placement 记录一行实际绘制的位置，便于调试或可视化。
type Placement struct {
	Slot    string  `json:"slot"`
	Label   int     `json:"label"`
	Text    string  `json:"text"`
	Font    Font    `json:"font"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
	Rotate  float64 `json:"rotate,omitempty"`
	Barcode bool    `json:"barcode,omitempty"`
}

// Trace 汇总一次渲染的几何参数与每行的位置。
type Trace struct {
	Properties LabelProperties `json:"properties"`
	Starts     []Point         `json:"starts"`
	Placements []Placement     `json:"placements"`
}

// WriteDebugJSON 将渲染轨迹输出为 JSON。
func WriteDebugJSON(tr *Trace, path string) error {
	if tr == nil {
		return nil
	}
	data, err := json.MarshalIndent(tr, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
