package main

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/bjaus/texverts"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type rootOptions struct {
	midrule bool
	noOuter bool
	strict  bool
	verbose bool
}

func (o *rootOptions) rewriteOptions() []texverts.Option {
	var opts []texverts.Option
	if o.midrule {
		opts = append(opts, texverts.WithMidrule())
	}
	if o.noOuter {
		opts = append(opts, texverts.WithoutOuterRules())
	}
	return opts
}

// newLogger logs to errOut only, so stdout carries nothing but the
// transformed text.
func newLogger(errOut io.Writer, verbose bool) *zap.Logger {
	level := zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if verbose {
		level.SetLevel(zapcore.DebugLevel)
	}
	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.TimeKey = ""
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(errOut), level)
	return zap.New(core).Named("texverts")
}

func newRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	o := &rootOptions{}
	var logger *zap.Logger

	cmd := &cobra.Command{
		Use:   "texverts",
		Short: "Add vertical rules to pandoc longtable column directives",
		Long: `texverts reads LaTeX produced by pandoc on stdin and rewrites every
longtable column directive so each column is surrounded by vertical rules:

  \begin{longtable}[c]{@{}ll@{}}  ->  \begin{longtable}[c]{@{}|l|l|@{}}

Everything else is copied through unchanged. If processing fails, a
diagnostic is printed on stderr and the original input is written to stdout.

Example:
  pandoc -s -f markdown -t latex input.md | texverts > output.tex`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger = newLogger(cmd.ErrOrStderr(), o.verbose)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			start := time.Now()
			res, err := texverts.Filter(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr(), o.rewriteOptions()...)
			logger.Debug("filter finished",
				zap.Int("bytes", len(res.Original)),
				zap.Int("directives", len(res.Directives)),
				zap.Bool("fallback", !res.OK()),
				zap.Duration("elapsed", time.Since(start)),
			)
			// A fault has already produced its diagnostic and fallback
			// output; only --strict turns it into a failing exit.
			if errors.Is(err, texverts.ErrProcessing) && !o.strict {
				return nil
			}
			return err
		},
	}
	cmd.SetIn(in)
	cmd.SetOut(out)
	cmd.SetErr(errOut)

	flags := cmd.PersistentFlags()
	flags.BoolVar(&o.noOuter, "no-outer", false, "rule only between columns (r|c|l)")
	flags.BoolVarP(&o.verbose, "verbose", "v", false, "debug logging on stderr")
	cmd.Flags().BoolVar(&o.midrule, "midrule", false, `insert \midrule between \tabularnewline and \begin{minipage}`)
	cmd.Flags().BoolVar(&o.strict, "strict", false, "exit non-zero when the original input had to be emitted")

	cmd.AddCommand(newScanCmd(o, &logger))
	return cmd
}

func newScanCmd(o *rootOptions, logger **zap.Logger) *cobra.Command {
	var format string
	names := make([]string, 0, len(texverts.Formats()))
	for _, f := range texverts.Formats() {
		names = append(names, f.String())
	}

	cmd := &cobra.Command{
		Use:   "scan",
		Short: "List the longtable directives found on stdin",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := texverts.ParseFormat(format)
			if err != nil {
				return err
			}
			data, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return fmt.Errorf("read input: %w", err)
			}
			found := texverts.Find(string(data))
			(*logger).Debug("scan finished", zap.Int("directives", len(found)), zap.Stringer("format", f))
			return texverts.WriteReport(cmd.OutOrStdout(), f, texverts.Report(found, o.rewriteOptions()...))
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", string(texverts.Plain), "report format: "+strings.Join(names, ", "))
	return cmd
}
