// Command eqwav runs a WAV file through the equalizer.
//
// Usage:
//
//	eqwav [flags] input.wav output.wav
//
// The sample rate and channel count follow the input file. Parameters come
// from the config file, EQ_PARAMS_* environment variables or --param.
//
// Examples:
//
//	eqwav in.wav out.wav
//	eqwav --param peak_gain=6 --param peak_freq=2000 in.wav out.wav
//	eqwav --param lowcut_freq=120 --param lowcut_slope=3 in.wav out.wav
//	eqwav --config eq.yaml --log-format json in.wav out.wav
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/pflag"

	"github.com/cwbudde/algo-eq/internal/config"
	"github.com/cwbudde/algo-eq/internal/engine"
	"github.com/cwbudde/algo-eq/internal/logging"
	"github.com/cwbudde/algo-eq/internal/wavio"
)

var errUsage = errors.New("usage: eqwav [flags] input.wav output.wav")

func main() {
	if err := run(os.Args[1:], os.Stderr); err != nil && !errors.Is(err, pflag.ErrHelp) {
		fmt.Fprintln(os.Stderr, "eqwav:", err)
		os.Exit(1)
	}
}

func run(args []string, stderr io.Writer) error {
	fs := pflag.NewFlagSet("eqwav", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	config.BindFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 2 {
		return errUsage
	}

	cfg, err := config.Load(fs)
	if err != nil {
		return err
	}
	logger, err := logging.New(cfg.Log, stderr)
	if err != nil {
		return err
	}

	return processFile(fs.Arg(0), fs.Arg(1), cfg, logger)
}

func processFile(inPath, outPath string, cfg *config.Config, logger *slog.Logger) error {
	start := time.Now()

	in, err := wavio.Open(inPath)
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	logger.Info("input",
		"path", inPath,
		"sample_rate", in.Rate,
		"channels", in.Channels,
		"bit_depth", in.BitDepth)

	eng, err := engine.New(cfg, logger)
	if err != nil {
		return err
	}
	if err := eng.Prepare(cfg, float64(in.Rate), in.Channels); err != nil {
		return err
	}
	defer eng.Processor.Release()

	out, err := wavio.Create(outPath, in.Rate, in.BitDepth, in.Channels)
	if err != nil {
		return err
	}

	stats, err := processStream(in, out, eng.Processor, cfg.BlockSize)
	if cerr := out.Close(); err == nil && cerr != nil {
		err = fmt.Errorf("failed to finalize output: %w", cerr)
	}
	if err != nil {
		return err
	}

	logger.Info("done",
		"path", outPath,
		"frames", stats.frames,
		"peak", stats.peak,
		"elapsed", time.Since(start))
	if stats.peak > 1 {
		logger.Warn("output clipped", "peak", stats.peak)
	}
	return nil
}
