package main

import (
	"errors"
	"io"
	"math"

	"github.com/cwbudde/algo-eq/dsp/core"
	"github.com/cwbudde/algo-eq/eq"
	"github.com/cwbudde/algo-eq/internal/wavio"
)

// fileStats summarizes one processed file.
type fileStats struct {
	frames int64
	peak   float64
}

// processStream filters every frame of in through proc and writes the
// result to out. proc must already be prepared for the input layout.
func processStream(in *wavio.Reader, out *wavio.Writer, proc *eq.Processor, blockSize int) (*fileStats, error) {
	planar := core.NewChannels(in.Channels, blockSize)
	block := make([][]float64, len(planar))

	stats := &fileStats{}
	for {
		n, err := in.ReadFrames(planar)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		for ch := range planar {
			block[ch] = planar[ch][:n]
		}
		proc.ProcessBlock(block)
		stats.peak = math.Max(stats.peak, peakAbs(block))

		if err := out.WriteFrames(block, n); err != nil {
			return nil, err
		}
		stats.frames += int64(n)
	}
	return stats, nil
}

func peakAbs(buf [][]float64) float64 {
	var peak float64
	for _, ch := range buf {
		for _, v := range ch {
			peak = math.Max(peak, math.Abs(v))
		}
	}
	return peak
}
