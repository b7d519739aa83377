package layout

import "math"

// This file holds the unit conversions between printer pixels, points and millimetres.

// DPI is the fixed rendering resolution every measurement and drawing call uses.
const DPI = 300

// Conversion constants between pt, mm and inches.
const (
	PtPerInch = 72.0
	MmPerInch = 25.4
	PtToMm    = MmPerInch / PtPerInch
	MmToPt    = 1.0 / PtToMm
)

// PtToPx converts a font size in points to device pixels at dpi.
func PtToPx(pt, dpi float64) float64 { return pt * dpi / PtPerInch }

// PxToPt is the inverse of PtToPx.
func PxToPt(px, dpi float64) float64 { return px * PtPerInch / dpi }

// PxToMm converts device pixels at dpi to millimetres.
func PxToMm(px, dpi float64) float64 { return px * MmPerInch / dpi }

// MmToPx converts millimetres to device pixels at dpi.
func MmToPx(mm, dpi float64) float64 { return mm * dpi / MmPerInch }

// PixelsPerMetre returns the resolution in the unit PNG pHYs chunks use.
func PixelsPerMetre(dpi float64) uint32 {
	return uint32(math.Round(dpi / MmPerInch * 1000))
}
