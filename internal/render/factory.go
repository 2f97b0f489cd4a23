// Package render draws encoded symbols and writes them to disk. Rendering
// strategies live in a fixed registry and are resolved once at startup.
package render

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/kamikazebr/qrkeys/internal/encoder"
)

var (
	ErrInvalidFactory = errors.New("invalid factory specification")
	ErrUnknownFactory = errors.New("unknown factory")
)

// Kind classifies the output of a Factory.
type Kind int

const (
	Raster Kind = iota
	VectorDocument
	VectorFragment
	CustomByIdentifier
)

func (k Kind) String() string {
	switch k {
	case Raster:
		return "raster"
	case VectorDocument:
		return "vector document"
	case VectorFragment:
		return "vector fragment"
	case CustomByIdentifier:
		return "custom"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

const (
	DefaultBoxSize = 10
	DefaultBorder  = 4
)

// Options tunes the geometry shared by every strategy.
type Options struct {
	BoxSize int // pixels (or tenths of a millimetre) per module
	Border  int // quiet zone, in modules
}

// DefaultOptions returns the standard 10px modules with a 4-module border.
func DefaultOptions() Options {
	return Options{BoxSize: DefaultBoxSize, Border: DefaultBorder}
}

// Factory is one rendering strategy.
type Factory struct {
	ID        string
	Kind      Kind
	Extension string
	render    func(w io.Writer, sym *encoder.Symbol, opts Options) error
}

// Render draws sym to w.
func (f *Factory) Render(w io.Writer, sym *encoder.Symbol, opts Options) error {
	return f.render(w, sym, opts)
}

const DefaultFactory = "image.png"

var builtin = []*Factory{
	{ID: "image.png", Kind: Raster, Extension: ".png", render: renderPNG},
	{ID: "svg.document", Kind: VectorDocument, Extension: ".svg", render: renderSVGDocument},
	{ID: "svg.fragment", Kind: VectorFragment, Extension: ".svg", render: renderSVGFragment},
	{ID: "text.blocks", Kind: CustomByIdentifier, Extension: ".txt", render: renderBlocks},
}

var shortcuts = map[string]string{
	"pil":          "image.png",
	"svg":          "svg.document",
	"svg-fragment": "svg.fragment",
}

var factories = func() map[string]*Factory {
	m := make(map[string]*Factory, len(builtin))
	for _, f := range builtin {
		m[f.ID] = f
	}
	return m
}()

// Resolve maps a --factory value to a strategy. An empty name selects the
// default raster strategy. Anything that is not a shortcut must be a
// qualified identifier containing a '.'.
func Resolve(name string) (*Factory, error) {
	if name == "" {
		name = DefaultFactory
	}
	if id, ok := shortcuts[name]; ok {
		name = id
	}
	if !strings.Contains(name, ".") {
		return nil, fmt.Errorf("%w: %q is neither a shortcut (%s) nor a qualified identifier",
			ErrInvalidFactory, name, strings.Join(Shortcuts(), ", "))
	}

	f, ok := factories[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %s)", ErrUnknownFactory, name, strings.Join(Identifiers(), ", "))
	}
	return f, nil
}

// Shortcuts lists the short factory names, sorted.
func Shortcuts() []string {
	names := make([]string, 0, len(shortcuts))
	for name := range shortcuts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Identifiers lists the qualified factory identifiers, sorted.
func Identifiers() []string {
	ids := make([]string, 0, len(factories))
	for id := range factories {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
