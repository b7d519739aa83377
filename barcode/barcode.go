// Package barcode 将条码内容编码为位图，供标签渲染时贴图。
package barcode

import (
	"errors"
	"fmt"
	"image"

	bc "github.com/boombuler/barcode"
	"github.com/boombuler/barcode/code128"
)

// ErrEncoding 表示内容无法在目标尺寸下编码为条码。
var ErrEncoding = errors.New("barcode encoding failed")

// Encoder renders payload as a barcode bitmap of exactly width × height pixels.
type Encoder interface {
	Encode(payload string, width, height int) (image.Image, error)
}

// Code128 encodes payloads with the Code 128 symbology.
type Code128 struct{}

var _ Encoder = Code128{}

// Encode 编码并缩放到 width × height；模块宽度无法容纳时返回 ErrEncoding。
func (Code128) Encode(payload string, width, height int) (image.Image, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: invalid size %dx%d", ErrEncoding, width, height)
	}
	code, err := code128.Encode(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrEncoding, payload, err)
	}
	scaled, err := bc.Scale(code, width, height)
	if err != nil {
		return nil, fmt.Errorf("%w: %q at %dx%d: %v", ErrEncoding, payload, width, height, err)
	}
	return scaled, nil
}
