package layout

import "sort"

// DefaultStock 是无法识别标签型号时使用的纸张。
const DefaultStock = "30346"

// stocks 以 300 DPI 像素记录每种标签纸的几何参数。
var stocks = map[string]LabelProperties{
	// 9/16" x 3 7/16"
	"30277": {LabelName: "30277", TopMargin: 10, LeftMargin: 0, LabelCount: 2, TotalLines: 2, Dimensions: Size{Width: 900, Height: 180}},
	// 1/2" x 1 7/8"
	"30346": {LabelName: "30346", TopMargin: 0, LeftMargin: 0, LabelCount: 2, TotalLines: 3, Dimensions: Size{Width: 475, Height: 175}},
}

// ResolveStock 返回标签型号对应的几何参数；未知型号回落到 DefaultStock，不视为错误。
func ResolveStock(id string) LabelProperties {
	if p, ok := stocks[id]; ok {
		return p
	}
	return stocks[DefaultStock]
}

// Stocks lists the known stock identifiers in ascending order.
func Stocks() []string {
	ids := make([]string, 0, len(stocks))
	for id := range stocks {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
