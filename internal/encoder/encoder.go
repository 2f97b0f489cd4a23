// Package encoder turns payload text into QR Code symbols. Symbol encoding
// itself is left to github.com/skip2/go-qrcode and github.com/boombuler/barcode;
// this package only decides which of them runs and in which mode.
package encoder

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	"github.com/boombuler/barcode/qr"
	qrcode "github.com/skip2/go-qrcode"
)

var (
	ErrEmptyPayload    = errors.New("empty payload")
	ErrPayloadTooLarge = errors.New("payload too large for any supported symbol size")
	ErrInvalidOptimize = errors.New("optimize threshold must not be negative")
)

// SegmentationLibrary marks symbols whose segmentation was chosen by the
// encoding library rather than fixed to a single mode.
const SegmentationLibrary = "library"

// Options controls a single Encode call.
type Options struct {
	// Optimize is the chunk-optimization threshold. nil leaves segmentation
	// to the library, 0 forces one segment. N > 0 forces one segment unless
	// data mixes modes with runs of N or more characters, in which case the
	// library segments it.
	Optimize *int
	Level    Level
}

// Symbol is an encoded QR Code. Modules excludes the quiet zone; renderers
// add their own border.
type Symbol struct {
	Content      string
	Modules      [][]bool // [row][col], true is dark
	Version      int
	Level        Level
	Segmentation string
}

// Size is the number of modules per side.
func (s *Symbol) Size() int {
	return len(s.Modules)
}

// Dark reports whether the module at column x, row y is dark.
func (s *Symbol) Dark(x, y int) bool {
	return s.Modules[y][x]
}

// Encode builds a new symbol for data. Every call allocates its own encoding
// state, so nothing carries over between payloads.
func Encode(data string, opts Options) (*Symbol, error) {
	if data == "" {
		return nil, ErrEmptyPayload
	}
	if opts.Optimize == nil {
		return encodeSegmented(data, opts.Level)
	}
	if *opts.Optimize < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidOptimize, *opts.Optimize)
	}

	if mode, ok := SingleMode(data, *opts.Optimize); ok {
		return encodeSingleMode(data, mode, opts.Level)
	}
	return encodeSegmented(data, opts.Level)
}

// encodeSegmented lets go-qrcode split data into mixed-mode segments.
func encodeSegmented(data string, level Level) (*Symbol, error) {
	q, err := qrcode.New(data, level.skip2())
	if err != nil {
		return nil, classify(err, data)
	}
	q.DisableBorder = true

	return &Symbol{
		Content:      data,
		Modules:      q.Bitmap(),
		Version:      q.VersionNumber,
		Level:        level,
		Segmentation: SegmentationLibrary,
	}, nil
}

// encodeSingleMode encodes all of data as one segment in mode.
func encodeSingleMode(data string, mode Mode, level Level) (*Symbol, error) {
	var encoding qr.Encoding
	switch mode {
	case ModeNumeric:
		encoding = qr.Numeric
	case ModeAlphanumeric:
		encoding = qr.AlphaNumeric
	default:
		encoding = qr.Unicode
	}

	bc, err := qr.Encode(data, level.boombuler(), encoding)
	if err != nil {
		return nil, classify(err, data)
	}

	bounds := bc.Bounds()
	size := bounds.Dx()
	modules := make([][]bool, size)
	for y := 0; y < size; y++ {
		modules[y] = make([]bool, size)
		for x := 0; x < size; x++ {
			modules[y][x] = isDark(bc.At(bounds.Min.X+x, bounds.Min.Y+y))
		}
	}

	return &Symbol{
		Content:      data,
		Modules:      modules,
		Version:      (size - 17) / 4,
		Level:        level,
		Segmentation: mode.String(),
	}, nil
}

func isDark(c color.Color) bool {
	r, g, b, _ := c.RGBA()
	return r+g+b < 3*0x8000
}

// classify maps the libraries' capacity errors onto ErrPayloadTooLarge.
func classify(err error, data string) error {
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "too long") || strings.Contains(msg, "much data") {
		return fmt.Errorf("%w (%d bytes)", ErrPayloadTooLarge, len(data))
	}
	return fmt.Errorf("failed to encode payload: %w", err)
}
