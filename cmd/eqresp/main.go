// Command eqresp prints the magnitude response of the equalizer for a
// parameter set.
//
// Usage:
//
//	eqresp [flags]
//
// Every row lists the response of each stage and of the whole chain. With
// --measure the chain's impulse response is also transformed and the
// measured magnitude is printed alongside.
//
// Examples:
//
//	eqresp
//	eqresp --param peak_gain=12 --param peak_freq=1000 --points 16
//	eqresp --sample-rate 96000 --param highcut_freq=8000 --param highcut_slope=3
//	eqresp --measure --fft-size 32768
package main

import (
	"errors"
	"fmt"
	"io"
	"math/cmplx"
	"os"
	"text/tabwriter"

	"github.com/spf13/pflag"

	"github.com/cwbudde/algo-eq/dsp/core"
	"github.com/cwbudde/algo-eq/eq"
	"github.com/cwbudde/algo-eq/internal/config"
	"github.com/cwbudde/algo-eq/internal/engine"
	"github.com/cwbudde/algo-eq/internal/logging"
	"github.com/cwbudde/algo-eq/measure/freqresp"
)

var errRange = errors.New("eqresp: invalid frequency range")

type options struct {
	points  int
	minFreq float64
	maxFreq float64
	measure bool
	fftSize int
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, "eqresp:", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := pflag.NewFlagSet("eqresp", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	config.BindFlags(fs)

	var opts options
	fs.IntVar(&opts.points, "points", 31, "number of log-spaced frequencies")
	fs.Float64Var(&opts.minFreq, "min-freq", eq.MinFrequency, "lowest frequency in Hz")
	fs.Float64Var(&opts.maxFreq, "max-freq", eq.MaxFrequency, "highest frequency in Hz")
	fs.BoolVar(&opts.measure, "measure", false, "also measure the response from the impulse response")
	fs.IntVar(&opts.fftSize, "fft-size", 16384, "impulse response length for --measure")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: eqresp [flags]\n\n")
		fmt.Fprintf(stderr, "Prints the magnitude response of the equalizer.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  eqresp --param peak_gain=12 --param peak_freq=1000\n")
		fmt.Fprintf(stderr, "  eqresp --measure --fft-size 32768\n")
	}
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(fs)
	if err != nil {
		return err
	}
	logger, err := logging.New(cfg.Log, stderr)
	if err != nil {
		return err
	}

	if opts.points < 2 || !(opts.minFreq > 0) || opts.maxFreq <= opts.minFreq {
		return fmt.Errorf("%w: %d points over [%g, %g]", errRange, opts.points, opts.minFreq, opts.maxFreq)
	}

	eng, err := engine.New(cfg, logger)
	if err != nil {
		return err
	}
	if err := eng.Prepare(cfg, cfg.SampleRate, 1); err != nil {
		return err
	}
	defer eng.Processor.Release()

	chain := eng.Processor.Chain(0)

	var measured *freqresp.Response
	if opts.measure {
		measured, err = freqresp.Measure(chain, opts.fftSize, cfg.SampleRate)
		if err != nil {
			return err
		}
	}

	grid := freqresp.LogGrid(opts.minFreq, opts.maxFreq, opts.points)
	return printResponse(stdout, chain, cfg.SampleRate, grid, measured)
}

func printResponse(w io.Writer, chain *eq.Chain, sampleRate float64, grid []float64, measured *freqresp.Response) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	header := "Freq [Hz]\tLow-Cut [dB]\tPeak [dB]\tHigh-Cut [dB]\tTotal [dB]"
	rule := "---------\t------------\t---------\t-------------\t----------"
	if measured != nil {
		header += "\tMeasured [dB]"
		rule += "\t-------------"
	}
	if _, err := fmt.Fprintln(tw, header); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}
	if _, err := fmt.Fprintln(tw, rule); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}

	for _, f := range grid {
		row := fmt.Sprintf("%.1f\t%.2f\t%.2f\t%.2f\t%.2f",
			f,
			toDB(chain.LowCut().Response(f, sampleRate)),
			toDB(chain.Peak().Response(f, sampleRate)),
			toDB(chain.HighCut().Response(f, sampleRate)),
			chain.MagnitudeDB(f, sampleRate),
		)
		if measured != nil {
			row += fmt.Sprintf("\t%.2f", measured.AtDB(f))
		}
		if _, err := fmt.Fprintln(tw, row); err != nil {
			return fmt.Errorf("failed to write output row: %w", err)
		}
	}
	return tw.Flush()
}

func toDB(h complex128) float64 {
	return core.LinearToDB(cmplx.Abs(h))
}
