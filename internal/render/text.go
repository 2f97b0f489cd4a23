package render

import (
	"io"
	"strings"

	"github.com/kamikazebr/qrkeys/internal/encoder"
)

// renderBlocks draws two module rows per text line with half-block
// characters, dark modules as ink. Border is in modules; BoxSize is ignored.
func renderBlocks(w io.Writer, sym *encoder.Symbol, opts Options) error {
	side := sym.Size() + 2*opts.Border
	dark := func(x, y int) bool {
		x -= opts.Border
		y -= opts.Border
		if x < 0 || y < 0 || x >= sym.Size() || y >= sym.Size() {
			return false
		}
		return sym.Dark(x, y)
	}

	var b strings.Builder
	for y := 0; y < side; y += 2 {
		for x := 0; x < side; x++ {
			top := dark(x, y)
			bottom := y+1 < side && dark(x, y+1)
			switch {
			case top && bottom:
				b.WriteString("█")
			case top:
				b.WriteString("▀")
			case bottom:
				b.WriteString("▄")
			default:
				b.WriteString(" ")
			}
		}
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}
