package layout

import (
	"math"
	"testing"
)

// TestPtMmRoundTrip 验证 pt↔mm 换算的往返精度（允许极小的浮点误差）。
func TestPtMmRoundTrip(t *testing.T) {
	samples := []float64{0, 0.001, 1, 12, 14.4, 72, 96, 144, 1000}
	for _, pt := range samples {
		mm := pt * PtToMm
		back := mm * MmToPt
		if diff := math.Abs(back - pt); diff > 1e-9 {
			t.Fatalf("pt→mm→pt 往返误差过大: in=%gpt mm=%g back=%g diff=%g", pt, mm, back, diff)
		}
	}
}

// TestPixelConversions 覆盖 300 DPI 下 px/pt/mm 的互相换算。
func TestPixelConversions(t *testing.T) {
	// 72pt = 1in = 300px
	if got := PtToPx(72, DPI); math.Abs(got-300) > 1e-9 {
		t.Fatalf("72pt 转 px 期望 300，实际 %g", got)
	}
	if got := PxToPt(300, DPI); math.Abs(got-72) > 1e-9 {
		t.Fatalf("300px 转 pt 期望 72，实际 %g", got)
	}
	// 300px = 25.4mm
	if got := PxToMm(300, DPI); math.Abs(got-25.4) > 1e-9 {
		t.Fatalf("300px 转 mm 期望 25.4，实际 %g", got)
	}
	for _, px := range []float64{0, 1, 175, 475, 900} {
		if back := MmToPx(PxToMm(px, DPI), DPI); math.Abs(back-px) > 1e-9 {
			t.Fatalf("px→mm→px 往返误差过大: in=%g back=%g", px, back)
		}
	}
}

func TestPixelsPerMetre(t *testing.T) {
	// 300 DPI ≈ 11811 px/m
	if got := PixelsPerMetre(DPI); got != 11811 {
		t.Fatalf("expected 11811 px/m, got %d", got)
	}
}
