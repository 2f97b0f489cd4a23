package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/boombuler/barcode"

	"github.com/kamikazebr/qrkeys/internal/encoder"
)

// moduleImage exposes a symbol plus its quiet zone as a one-pixel-per-module
// barcode, so barcode.Scale can blow it up.
type moduleImage struct {
	sym    *encoder.Symbol
	border int
}

func (m moduleImage) side() int {
	return m.sym.Size() + 2*m.border
}

func (m moduleImage) ColorModel() color.Model {
	return color.GrayModel
}

func (m moduleImage) Bounds() image.Rectangle {
	return image.Rect(0, 0, m.side(), m.side())
}

func (m moduleImage) At(x, y int) color.Color {
	x -= m.border
	y -= m.border
	size := m.sym.Size()
	if x < 0 || y < 0 || x >= size || y >= size || !m.sym.Dark(x, y) {
		return color.White
	}
	return color.Black
}

func (m moduleImage) Metadata() barcode.Metadata {
	return barcode.Metadata{CodeKind: "QR Code", Dimensions: 2}
}

func (m moduleImage) Content() string {
	return m.sym.Content
}

// rasterImage returns the symbol at opts.BoxSize pixels per module.
func rasterImage(sym *encoder.Symbol, opts Options) (image.Image, error) {
	src := moduleImage{sym: sym, border: opts.Border}
	side := src.side() * opts.BoxSize

	scaled, err := barcode.Scale(src, side, side)
	if err != nil {
		return nil, fmt.Errorf("failed to scale symbol: %w", err)
	}
	return scaled, nil
}

func renderPNG(w io.Writer, sym *encoder.Symbol, opts Options) error {
	img, err := rasterImage(sym, opts)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}
