package render

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"

	"github.com/kamikazebr/qrkeys/internal/encoder"
	"github.com/kamikazebr/qrkeys/pkg/utils"
)

// OutputName is the file name f produces for a key file.
func OutputName(f *Factory, keyName string) string {
	return keyName + f.Extension
}

// Save renders sym with f and writes it into dir, overwriting any previous
// output for the same key. It returns the written path. Rendering happens in
// memory first so a failed render never leaves a truncated file behind.
func Save(f *Factory, sym *encoder.Symbol, opts Options, dir, keyName string) (string, error) {
	var buf bytes.Buffer
	if err := f.Render(&buf, sym, opts); err != nil {
		return "", fmt.Errorf("failed to render %s: %w", keyName, err)
	}

	path := filepath.Join(dir, OutputName(f, keyName))
	if err := utils.WriteFileWithOwnership(path, buf.Bytes(), 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}

// Print writes the half-block text form of sym to w.
func Print(w io.Writer, sym *encoder.Symbol, opts Options) error {
	return renderBlocks(w, sym, opts)
}
