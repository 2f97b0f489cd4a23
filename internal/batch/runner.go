// Package batch runs the encode loop over a key directory.
package batch

import (
	"fmt"
	"io"
	"time"

	"github.com/kamikazebr/qrkeys/internal/config"
	"github.com/kamikazebr/qrkeys/internal/encoder"
	"github.com/kamikazebr/qrkeys/internal/keys"
	"github.com/kamikazebr/qrkeys/internal/logging"
	"github.com/kamikazebr/qrkeys/internal/payload"
	"github.com/kamikazebr/qrkeys/internal/render"
	"github.com/kamikazebr/qrkeys/internal/ui"
	"github.com/kamikazebr/qrkeys/pkg/utils"
)

// Output describes one written image.
type Output struct {
	Key     string // key file name
	Path    string // written image
	Version int
}

// Result contains the outcome of a run
type Result struct {
	Outputs    []Output
	StartedAt  time.Time
	FinishedAt time.Time
}

// Runner processes every key file in the configured directory, one at a
// time. The first error aborts the run; outputs written before it stay.
type Runner struct {
	cfg *config.Config
	out io.Writer // --print output
	ui  *ui.Printer
}

// NewRunner creates a runner writing progress to out.
func NewRunner(cfg *config.Config, out io.Writer) *Runner {
	return &Runner{cfg: cfg, out: out, ui: ui.New(out)}
}

// Run lists the directory, then builds, encodes, renders and saves each key.
func (r *Runner) Run() (*Result, error) {
	result := &Result{StartedAt: time.Now()}

	entries, err := keys.List(r.cfg.Directory)
	if err != nil {
		return result, err
	}
	logging.Debugf("Found %d key file(s) in %s", len(entries), r.cfg.Directory)

	if len(entries) > 0 {
		if err := utils.MkdirAllWithOwnership(r.cfg.OutputDir, 0755); err != nil {
			return result, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	for _, entry := range entries {
		output, err := r.process(entry)
		if err != nil {
			return result, err
		}
		result.Outputs = append(result.Outputs, *output)
	}

	result.FinishedAt = time.Now()
	return result, nil
}

func (r *Runner) process(entry keys.Entry) (*Output, error) {
	kf, err := keys.Load(entry)
	if err != nil {
		return nil, err
	}

	if info, err := keys.Inspect(kf.Content); err != nil {
		logging.Warnf("%s does not look like a public key, encoding it as is: %v", kf.Name, err)
	} else {
		logging.Debugf("%s: %s %s %s", kf.Name, info.Type, info.Fingerprint, info.Comment)
	}

	data := payload.Build(kf.Content, r.cfg.Connection)

	sym, err := encoder.Encode(data, encoder.Options{
		Optimize: r.cfg.Optimize,
		Level:    r.cfg.Level,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s: %w", kf.Name, err)
	}
	logging.Debugf("%s: version %d, level %s, %s segmentation", kf.Name, sym.Version, sym.Level, sym.Segmentation)

	path, err := render.Save(r.cfg.Factory, sym, r.cfg.Render, r.cfg.OutputDir, kf.Name)
	if err != nil {
		return nil, err
	}

	r.ui.Written(kf.Name, path)
	if r.cfg.Print {
		if err := render.Print(r.out, sym, r.cfg.Render); err != nil {
			return nil, fmt.Errorf("failed to print %s: %w", kf.Name, err)
		}
	}

	return &Output{Key: kf.Name, Path: path, Version: sym.Version}, nil
}
