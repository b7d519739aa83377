package renderer

import "image"

// Image 是渲染得到的光栅图，附带水平/垂直分辨率（DPI）元数据。
type Image struct {
	*image.RGBA
	HorizontalResolution float64
	VerticalResolution   float64
}

// NewImage allocates a width × height raster tagged with dpi in both directions.
func NewImage(width, height int, dpi float64) *Image {
	img := &Image{RGBA: image.NewRGBA(image.Rect(0, 0, width, height))}
	img.SetResolution(dpi, dpi)
	return img
}

// SetResolution 重新写入分辨率元数据。
func (img *Image) SetResolution(x, y float64) {
	img.HorizontalResolution = x
	img.VerticalResolution = y
}
