package testutil

import (
	"image"
	"image/color"
	"testing"

	"github.com/makiuchi-d/gozxing"
	gozxingqr "github.com/makiuchi-d/gozxing/qrcode"
)

// DecodeQR reads the QR Code in img and returns its text.
func DecodeQR(t *testing.T, img image.Image) string {
	t.Helper()

	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		t.Fatalf("Failed to binarize image: %v", err)
	}
	result, err := gozxingqr.NewQRCodeReader().Decode(bmp, nil)
	if err != nil {
		t.Fatalf("Failed to decode QR code: %v", err)
	}
	return result.GetText()
}

// ModulesImage draws a module matrix with a 4-module quiet zone, scale
// pixels per module.
func ModulesImage(modules [][]bool, scale int) image.Image {
	const border = 4
	side := (len(modules) + 2*border) * scale
	img := image.NewGray(image.Rect(0, 0, side, side))
	for y := 0; y < side; y++ {
		for x := 0; x < side; x++ {
			img.SetGray(x, y, color.Gray{Y: 0xff})
		}
	}
	for my, row := range modules {
		for mx, dark := range row {
			if !dark {
				continue
			}
			for dy := 0; dy < scale; dy++ {
				for dx := 0; dx < scale; dx++ {
					img.SetGray((mx+border)*scale+dx, (my+border)*scale+dy, color.Gray{})
				}
			}
		}
	}
	return img
}
