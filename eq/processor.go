package eq

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/cwbudde/algo-eq/dsp/core"
)

// Lifecycle errors returned by [Processor.Prepare].
var (
	ErrInvalidSampleRate  = errors.New("eq: sample rate must be positive and finite")
	ErrInvalidBlockSize   = errors.New("eq: block size must be positive")
	ErrUnsupportedLayout  = errors.New("eq: only mono and stereo layouts are supported")
	ErrUnknownChannelMode = errors.New("eq: unknown channel mode")
)

// ChannelMode selects how a stereo buffer is filtered.
type ChannelMode int

const (
	// ModeStereo filters each channel through its own chain.
	ModeStereo ChannelMode = iota
	// ModeDualMono filters channel 0 and copies the result to every other channel.
	ModeDualMono
)

func (m ChannelMode) String() string {
	switch m {
	case ModeStereo:
		return "stereo"
	case ModeDualMono:
		return "dual-mono"
	default:
		return fmt.Sprintf("ChannelMode(%d)", int(m))
	}
}

// ParseChannelMode parses "stereo" or "dual-mono".
func ParseChannelMode(s string) (ChannelMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "stereo":
		return ModeStereo, nil
	case "dual-mono", "dualmono", "mono":
		return ModeDualMono, nil
	default:
		return ModeStereo, fmt.Errorf("%w: %q", ErrUnknownChannelMode, s)
	}
}

// SnapshotSource supplies the parameter values for the next block.
// Snapshot is called on the audio thread and must not block or allocate.
type SnapshotSource interface {
	Snapshot() Snapshot
}

// SnapshotFunc adapts a function to [SnapshotSource].
type SnapshotFunc func() Snapshot

// Snapshot calls f.
func (f SnapshotFunc) Snapshot() Snapshot { return f() }

// StaticSource always returns the same snapshot.
type StaticSource Snapshot

// Snapshot returns s.
func (s StaticSource) Snapshot() Snapshot { return Snapshot(s) }

// Option configures a [Processor].
type Option func(*Processor)

// WithLogger sets the logger used by lifecycle calls.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Processor) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithChannelMode sets the channel mode. The default is [ModeStereo].
func WithChannelMode(mode ChannelMode) Option {
	return func(p *Processor) {
		p.mode = mode
	}
}

// Processor is the host-facing entry point. Prepare and Release belong to
// the non-real-time lifecycle; ProcessBlock runs on the audio thread. The
// two groups must not be called concurrently.
type Processor struct {
	src    SnapshotSource
	logger *slog.Logger
	mode   ChannelMode

	sampleRate float64
	maxBlock   int
	chains     []*Chain
	current    ChainCoefficients
	prepared   bool
}

// NewProcessor returns an unprepared processor reading parameters from src.
// A nil src yields the default snapshot.
func NewProcessor(src SnapshotSource, opts ...Option) *Processor {
	if src == nil {
		src = StaticSource(DefaultSnapshot())
	}
	p := &Processor{
		src:    src,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(p)
		}
	}
	return p
}

// Prepare allocates one chain per channel, clears all filter state and
// applies the current parameters. It may be called again to change the
// configuration.
func (p *Processor) Prepare(sampleRate float64, maxBlockSize, numChannels int) error {
	if !(sampleRate > 0) || math.IsInf(sampleRate, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidSampleRate, sampleRate)
	}
	if maxBlockSize <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidBlockSize, maxBlockSize)
	}
	if numChannels != 1 && numChannels != 2 {
		return fmt.Errorf("%w: %d channels", ErrUnsupportedLayout, numChannels)
	}

	chains := make([]*Chain, numChannels)
	for i := range chains {
		chains[i] = NewChain()
	}

	p.sampleRate = sampleRate
	p.maxBlock = maxBlockSize
	p.chains = chains
	p.prepared = true
	p.update()

	p.logger.Info("eq prepared",
		"sample_rate", sampleRate,
		"max_block", maxBlockSize,
		"channels", numChannels,
		"mode", p.mode.String())

	return nil
}

// PrepareConfig is Prepare driven by a [core.ProcessorConfig].
func (p *Processor) PrepareConfig(cfg core.ProcessorConfig) error {
	return p.Prepare(cfg.SampleRate, cfg.BlockSize, cfg.Channels)
}

// Release drops the per-channel chains. ProcessBlock passes audio through
// until the next Prepare.
func (p *Processor) Release() {
	if !p.prepared {
		return
	}
	p.chains = nil
	p.prepared = false
	p.logger.Debug("eq released")
}

// ProcessBlock filters buf in place. buf holds one slice per channel. In
// stereo mode channels beyond the prepared count are left untouched; in
// dual-mono mode every channel receives the filtered channel 0. Blocks longer than
// the prepared maximum are processed in slices with a parameter update per
// slice.
//
// A non-finite output sample resets the chain of its channel and is
// replaced by silence.
func (p *Processor) ProcessBlock(buf [][]float64) {
	if !p.prepared || len(buf) == 0 {
		return
	}

	frames := len(buf[0])
	for _, ch := range buf[1:] {
		if len(ch) < frames {
			frames = len(ch)
		}
	}

	for off := 0; off < frames; off += p.maxBlock {
		end := min(off+p.maxBlock, frames)
		p.update()
		p.render(buf, off, end)
	}
}

// update reads a snapshot and pushes the resulting coefficients into every
// chain before any sample of the block is rendered.
func (p *Processor) update() {
	snap := p.src.Snapshot().Sanitize(p.sampleRate)
	p.current = ComputeChainCoefficients(snap, p.sampleRate)
	for _, c := range p.chains {
		// A sanitized snapshot always yields valid orders.
		_ = c.Update(p.current)
	}
}

func (p *Processor) render(buf [][]float64, off, end int) {
	if p.mode == ModeDualMono {
		seg := buf[0][off:end]
		p.chains[0].ProcessBlock(seg)
		guard(p.chains[0], seg)
		for ch := 1; ch < len(buf); ch++ {
			core.CopyInto(buf[ch][off:end], seg)
		}
		return
	}

	n := min(len(buf), len(p.chains))
	for ch := 0; ch < n; ch++ {
		seg := buf[ch][off:end]
		p.chains[ch].ProcessBlock(seg)
		guard(p.chains[ch], seg)
	}
}

func guard(c *Chain, seg []float64) {
	for i, v := range seg {
		if !core.IsFinite(v) {
			c.Reset()
			seg[i] = 0
		}
	}
}

// Prepared reports whether Prepare has succeeded since the last Release.
func (p *Processor) Prepared() bool { return p.prepared }

// SampleRate returns the prepared sample rate.
func (p *Processor) SampleRate() float64 { return p.sampleRate }

// MaxBlockSize returns the prepared maximum block size.
func (p *Processor) MaxBlockSize() int { return p.maxBlock }

// Channels returns the number of prepared channels.
func (p *Processor) Channels() int { return len(p.chains) }

// Mode returns the channel mode.
func (p *Processor) Mode() ChannelMode { return p.mode }

// Chain returns the chain of channel ch, or nil.
func (p *Processor) Chain(ch int) *Chain {
	if ch < 0 || ch >= len(p.chains) {
		return nil
	}
	return p.chains[ch]
}

// Coefficients returns the coefficients applied by the most recent update.
func (p *Processor) Coefficients() ChainCoefficients { return p.current }

// TailLengthSeconds returns 0; the filters are treated as having no tail.
func (p *Processor) TailLengthSeconds() float64 { return 0 }

// Latency returns the processing latency in samples.
func (p *Processor) Latency() int { return 0 }
