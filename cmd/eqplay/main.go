// Command eqplay plays a WAV file through the equalizer on the default
// audio device.
//
// Usage:
//
//	eqplay [flags] input.wav
//
// With --control-addr set, the parameters can be changed while the file
// plays:
//
//	eqplay --control-addr :8080 music.wav
//	curl -X PUT localhost:8080/params/peak_gain -d '{"value": 9}'
//	curl -X PUT localhost:8080/params/lowcut_slope -d '{"display": "48 dB/Oct"}'
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/ebitengine/oto/v3"
	"github.com/spf13/pflag"

	"github.com/cwbudde/algo-eq/internal/config"
	"github.com/cwbudde/algo-eq/internal/control"
	"github.com/cwbudde/algo-eq/internal/engine"
	"github.com/cwbudde/algo-eq/internal/logging"
	"github.com/cwbudde/algo-eq/internal/wavio"
)

var errUsage = errors.New("usage: eqplay [flags] input.wav")

var _ engine.FrameReader = (*wavio.Reader)(nil)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stderr); err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, pflag.ErrHelp) {
		fmt.Fprintln(os.Stderr, "eqplay:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stderr io.Writer) error {
	fs := pflag.NewFlagSet("eqplay", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	config.BindFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
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

	return play(ctx, fs.Arg(0), cfg, logger)
}

func play(ctx context.Context, path string, cfg *config.Config, logger *slog.Logger) error {
	in, err := wavio.Open(path)
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	eng, err := engine.New(cfg, logger)
	if err != nil {
		return err
	}
	if err := eng.Prepare(cfg, float64(in.Rate), in.Channels); err != nil {
		return err
	}
	defer eng.Processor.Release()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if cfg.Control.Addr != "" {
		srv := control.New(eng.Store, logger)
		go func() {
			if err := srv.Run(ctx, cfg.Control.Addr); err != nil {
				logger.Error("control server", "err", err)
			}
		}()
	}

	octx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   in.Rate,
		ChannelCount: in.Channels,
		Format:       oto.FormatSignedInt16LE,
	})
	if err != nil {
		return fmt.Errorf("audio device: %w", err)
	}
	<-ready

	pump := engine.StartPump(ctx, in, eng.Processor, in.Channels, cfg.BlockSize)
	player := octx.NewPlayer(pump.Reader())
	defer func() { _ = player.Close() }()
	// Runs before the deferred Release and Close above.
	defer func() { _ = pump.Stop(context.Canceled) }()

	logger.Info("playing", "path", path, "sample_rate", in.Rate, "channels", in.Channels)
	player.Play()

	tick := time.NewTicker(100 * time.Millisecond)
	defer tick.Stop()
	for player.IsPlaying() {
		select {
		case <-ctx.Done():
			player.Pause()
			return ctx.Err()
		case <-tick.C:
		}
	}

	if err := player.Err(); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	logger.Info("finished", "path", path)
	return nil
}
