package engine

import (
	"context"
	"encoding/binary"
	"errors"
	"io"

	"github.com/cwbudde/algo-eq/dsp/core"
	"github.com/cwbudde/algo-eq/eq"
)

// FrameReader yields planar blocks of normalized samples.
type FrameReader interface {
	ReadFrames(dst [][]float64) (int, error)
}

// StreamPCM16 pulls blocks from in, filters them through proc and writes
// them to w as interleaved signed 16-bit little-endian PCM. It returns nil
// at the end of the input and ctx.Err() when cancelled.
func StreamPCM16(ctx context.Context, in FrameReader, proc *eq.Processor, channels, blockSize int, w io.Writer) error {
	planar := core.NewChannels(channels, blockSize)
	block := make([][]float64, channels)
	ints := make([]int, blockSize*channels)
	pcm := make([]byte, 2*blockSize*channels)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		n, err := in.ReadFrames(planar)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		for ch := range planar {
			block[ch] = planar[ch][:n]
		}
		proc.ProcessBlock(block)

		count := core.Interleave(ints, block, n, 32768, 32767)
		for i, v := range ints[:count] {
			binary.LittleEndian.PutUint16(pcm[2*i:], uint16(int16(v)))
		}
		if _, err := w.Write(pcm[:2*count]); err != nil {
			return err
		}
	}
}

// Pump runs StreamPCM16 on its own goroutine and exposes the PCM through
// an io.Reader for an audio device to pull from.
type Pump struct {
	reader *io.PipeReader
	done   chan struct{}
	err    error
}

// StartPump starts rendering in through proc. The processor and in belong
// to the pump until Stop returns.
func StartPump(ctx context.Context, in FrameReader, proc *eq.Processor, channels, blockSize int) *Pump {
	pr, pw := io.Pipe()
	p := &Pump{reader: pr, done: make(chan struct{})}
	go func() {
		defer close(p.done)
		p.err = StreamPCM16(ctx, in, proc, channels, blockSize, pw)
		_ = pw.CloseWithError(p.err)
	}()
	return p
}

// Reader returns the PCM stream.
func (p *Pump) Reader() io.Reader { return p.reader }

// Done is closed once the rendering goroutine has exited.
func (p *Pump) Done() <-chan struct{} { return p.done }

// Stop closes the read side with cause, which fails any pending write,
// and waits for the rendering goroutine to exit. It returns the
// goroutine's error. Stop may be called more than once.
func (p *Pump) Stop(cause error) error {
	if cause == nil {
		cause = io.ErrClosedPipe
	}
	_ = p.reader.CloseWithError(cause)
	<-p.done
	return p.err
}
