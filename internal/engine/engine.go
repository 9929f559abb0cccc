// Package engine assembles a parameter store and an equalizer processor
// from a loaded configuration.
package engine

import (
	"fmt"
	"log/slog"

	"github.com/cwbudde/algo-eq/eq"
	"github.com/cwbudde/algo-eq/internal/config"
	"github.com/cwbudde/algo-eq/param"
)

// Engine couples the parameter store with the processor that reads it.
type Engine struct {
	Store     *param.Store
	Processor *eq.Processor
}

// New builds the EQ parameter layout, applies the configured initial
// values and returns an unprepared processor bound to it.
func New(cfg *config.Config, logger *slog.Logger) (*Engine, error) {
	if logger == nil {
		logger = slog.Default()
	}

	store := param.NewEQLayout()
	if err := cfg.ApplyParams(store); err != nil {
		return nil, fmt.Errorf("engine: %w", err)
	}

	mode, err := cfg.Mode()
	if err != nil {
		return nil, fmt.Errorf("engine: %w", err)
	}

	src, err := eq.SnapshotFromStore(store)
	if err != nil {
		return nil, fmt.Errorf("engine: %w", err)
	}

	proc := eq.NewProcessor(src,
		eq.WithLogger(logger),
		eq.WithChannelMode(mode),
	)
	return &Engine{Store: store, Processor: proc}, nil
}

// Prepare prepares the processor for the given stream, keeping the
// configured block size.
func (e *Engine) Prepare(cfg *config.Config, sampleRate float64, channels int) error {
	return e.Processor.Prepare(sampleRate, cfg.BlockSize, channels)
}
