package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/kamikazebr/qrkeys/internal/batch"
	"github.com/kamikazebr/qrkeys/internal/config"
	"github.com/kamikazebr/qrkeys/internal/logging"
	"github.com/kamikazebr/qrkeys/internal/ui"
	"github.com/kamikazebr/qrkeys/pkg/version"
)

const (
	exitFailure = 1
	exitUsage   = 2
)

// newRootCmd builds the command tree. Tests call it to get a fresh,
// isolated instance.
func newRootCmd(stdout io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "qrkeys [directory]",
		Short: "Encode SSH public keys as QR codes",
		Long: `Encode every *.pub file in a directory (default $HOME/.ssh) as a QR code
and write one image per key into the output directory.

With --server the key is combined with connection details into an
ssh://user@host:port?key=... descriptor instead of being encoded as is.

Examples:
  qrkeys                                  # ~/.ssh/*.pub -> ./<key>.pub.png
  qrkeys --factory svg ~/keys             # vector output
  qrkeys --server alice@example.com -o qr # connection descriptors into ./qr
  qrkeys --print --factory text.blocks    # also show each code in the terminal`,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.MaximumNArgs(1)(cmd, args); err != nil {
				return config.Usage(err)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEncode(cmd, args, stdout)
		},
	}
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return config.Usage(err)
	})
	config.RegisterFlags(rootCmd)

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.NoArgs(cmd, args); err != nil {
				return config.Usage(err)
			}
			return nil
		},
		Run: func(cmd *cobra.Command, args []string) {
			if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
				fmt.Fprintln(stdout, version.GetVersionInfo())
				return
			}
			fmt.Fprintln(stdout, version.GetVersion("qrkeys"))
		},
	}
	versionCmd.Flags().BoolP("verbose", "v", false, "Show detailed build information")
	rootCmd.AddCommand(versionCmd)

	return rootCmd
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the CLI and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	rootCmd := newRootCmd(stdout)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	cmd, err := rootCmd.ExecuteC()
	if err == nil {
		return 0
	}

	ui.New(stderr).Error(err)

	var usageErr *config.UsageError
	if errors.As(err, &usageErr) {
		fmt.Fprintln(stderr)
		fmt.Fprint(stderr, cmd.UsageString())
		return exitUsage
	}
	return exitFailure
}

func runEncode(cmd *cobra.Command, args []string, stdout io.Writer) error {
	cfg, err := config.Load(cmd, args)
	if err != nil {
		return err
	}
	logging.Debugf("Scanning %s with %s (%s) into %s", cfg.Directory, cfg.Factory.ID, cfg.Factory.Kind, cfg.OutputDir)

	result, err := batch.NewRunner(cfg, stdout).Run()
	if err != nil {
		return err
	}

	if len(result.Outputs) == 0 {
		logging.Warnf("No *.pub files found in %s", cfg.Directory)
		return nil
	}
	logging.Infof("Wrote %d QR code(s) in %s", len(result.Outputs), result.FinishedAt.Sub(result.StartedAt).Round(time.Millisecond))
	return nil
}
