package barcode

import (
	"errors"
	"image/color"
	"testing"
)

func TestCode128Size(t *testing.T) {
	img, err := Code128{}.Encode("PART-001", 475, 25)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 475 || b.Dy() != 25 {
		t.Fatalf("unexpected bounds %v", b)
	}

	// 条码应同时包含黑白模块
	var dark, light int
	for x := 0; x < 475; x++ {
		g := color.GrayModel.Convert(img.At(x, 12)).(color.Gray)
		if g.Y < 128 {
			dark++
		} else {
			light++
		}
	}
	if dark == 0 || light == 0 {
		t.Fatalf("expected both bars and spaces, dark=%d light=%d", dark, light)
	}
}

func TestCode128TooNarrow(t *testing.T) {
	_, err := Code128{}.Encode("A-VERY-LONG-PAYLOAD-THAT-NEEDS-MANY-MODULES", 20, 25)
	if !errors.Is(err, ErrEncoding) {
		t.Fatalf("expected ErrEncoding, got %v", err)
	}
}

func TestCode128InvalidSize(t *testing.T) {
	if _, err := (Code128{}).Encode("X", 0, 25); !errors.Is(err, ErrEncoding) {
		t.Fatalf("expected ErrEncoding, got %v", err)
	}
}
