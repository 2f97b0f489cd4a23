package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/kamikazebr/qrkeys/internal/encoder"
)

const svgNamespace = "http://www.w3.org/2000/svg"

func renderSVGDocument(w io.Writer, sym *encoder.Symbol, opts Options) error {
	if _, err := io.WriteString(w, "<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n"); err != nil {
		return err
	}
	return writeSVG(w, sym, opts, true)
}

func renderSVGFragment(w io.Writer, sym *encoder.Symbol, opts Options) error {
	return writeSVG(w, sym, opts, false)
}

// writeSVG emits an <svg> element in module units. The physical size is
// BoxSize tenths of a millimetre per module. Documents get a white
// background; fragments stay transparent so they can be embedded.
func writeSVG(w io.Writer, sym *encoder.Symbol, opts Options, background bool) error {
	side := sym.Size() + 2*opts.Border
	mm := strconv.FormatFloat(float64(side*opts.BoxSize)/10, 'f', -1, 64)

	var b strings.Builder
	fmt.Fprintf(&b, "<svg xmlns=\"%s\" version=\"1.1\" width=\"%smm\" height=\"%smm\" viewBox=\"0 0 %d %d\">\n",
		svgNamespace, mm, mm, side, side)
	if background {
		b.WriteString("<rect width=\"100%\" height=\"100%\" fill=\"#ffffff\"/>\n")
	}
	fmt.Fprintf(&b, "<path fill=\"#000000\" d=\"%s\"/>\n", modulePath(sym, opts.Border))
	b.WriteString("</svg>\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// modulePath draws each horizontal run of dark modules as one rectangle.
func modulePath(sym *encoder.Symbol, border int) string {
	var d strings.Builder
	size := sym.Size()
	for y := 0; y < size; y++ {
		for x := 0; x < size; {
			if !sym.Dark(x, y) {
				x++
				continue
			}
			start := x
			for x < size && sym.Dark(x, y) {
				x++
			}
			n := x - start
			fmt.Fprintf(&d, "M%d,%dh%dv1h-%dz", start+border, y+border, n, n)
		}
	}
	return d.String()
}
