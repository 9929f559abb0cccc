// Package wavio opens and creates PCM WAV files for the equalizer hosts and
// converts between their integer samples and planar float buffers.
package wavio

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/cwbudde/algo-eq/dsp/core"
)

// Reader holds an opened and validated input file.
type Reader struct {
	file     *os.File
	decoder  *wav.Decoder
	buf      *audio.IntBuffer
	scale    float64
	Rate     int
	Channels int
	BitDepth int
	Format   *audio.Format
}

// Open opens path and reads its format chunk.
func Open(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		_ = f.Close()
		return nil, fmt.Errorf("invalid WAV file: %s", path)
	}

	format := dec.Format()
	bitDepth := int(dec.BitDepth)
	return &Reader{
		file:     f,
		decoder:  dec,
		scale:    FullScale(bitDepth),
		Rate:     format.SampleRate,
		Channels: format.NumChannels,
		BitDepth: bitDepth,
		Format:   format,
	}, nil
}

// ReadFrames decodes up to len(dst[0]) frames into the planar buffers in
// dst, normalized to [-1, 1). It returns 0 and io.EOF at the end of the
// data.
func (r *Reader) ReadFrames(dst [][]float64) (int, error) {
	if len(dst) != r.Channels {
		return 0, fmt.Errorf("wavio: %d destination channels for %d-channel file", len(dst), r.Channels)
	}
	want := len(dst[0]) * r.Channels
	if r.buf == nil || cap(r.buf.Data) < want {
		r.buf = &audio.IntBuffer{
			Data:           make([]int, want),
			Format:         r.Format,
			SourceBitDepth: r.BitDepth,
		}
	}
	r.buf.Data = r.buf.Data[:want]

	n, err := r.decoder.PCMBuffer(r.buf)
	if err != nil && !errors.Is(err, io.EOF) {
		return 0, fmt.Errorf("failed to read audio data: %w", err)
	}
	if n == 0 {
		return 0, io.EOF
	}
	return core.Deinterleave(dst, r.buf.Data[:n], 1/r.scale), nil
}

// Close closes the input file.
func (r *Reader) Close() error {
	return r.file.Close()
}

// Writer wraps the output file and its encoder.
type Writer struct {
	file     *os.File
	encoder  *wav.Encoder
	buf      *audio.IntBuffer
	scale    float64
	channels int
}

// Create creates path and a PCM encoder writing to it.
func Create(path string, sampleRate, bitDepth, channels int) (*Writer, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return &Writer{
		file:    f,
		encoder: wav.NewEncoder(f, sampleRate, bitDepth, channels, 1),
		buf: &audio.IntBuffer{
			Format:         &audio.Format{SampleRate: sampleRate, NumChannels: channels},
			SourceBitDepth: bitDepth,
		},
		scale:    FullScale(bitDepth),
		channels: channels,
	}, nil
}

// WriteFrames quantizes frames of the planar buffers in src and encodes
// them. Samples outside [-1, 1) are clipped.
func (w *Writer) WriteFrames(src [][]float64, frames int) error {
	want := frames * w.channels
	if cap(w.buf.Data) < want {
		w.buf.Data = make([]int, want)
	}
	w.buf.Data = w.buf.Data[:want]

	n := core.Interleave(w.buf.Data, src, frames, w.scale, w.scale-1)
	w.buf.Data = w.buf.Data[:n]
	if err := w.encoder.Write(w.buf); err != nil {
		return fmt.Errorf("failed to write audio data: %w", err)
	}
	return nil
}

// Close finalizes the header and closes the file.
func (w *Writer) Close() error {
	if err := w.encoder.Close(); err != nil {
		_ = w.file.Close()
		return err
	}
	return w.file.Close()
}

// FullScale returns the magnitude of the most negative sample at bitDepth.
// Unknown depths are treated as 16-bit.
func FullScale(bitDepth int) float64 {
	switch bitDepth {
	case 8:
		return 128
	case 24:
		return 8388608
	case 32:
		return 2147483648
	default:
		return 32768
	}
}
