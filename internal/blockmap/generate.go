package blockmap

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/sansecio/blockmap/internal/chunker"
)

// DefaultBufferSize is the read size used by Generate.
const DefaultBufferSize = 16 * 1024

// GenerateOptions configures Generate.
type GenerateOptions struct {
	Chunker    chunker.Options
	Name       string                           // file name recorded in the blockmap
	BufferSize int                              // defaults to DefaultBufferSize
	Logf       func(format string, args ...any) // optional; called for every chunk
}

// Result is the outcome of Generate.
type Result struct {
	Blockmap *Blockmap
	Stats    chunker.Stats
	Chunks   []chunker.Chunk
}

// Generate reads r until EOF and chunks everything it reads.
func Generate(r io.Reader, opts GenerateOptions) (*Result, error) {
	c, err := chunker.New(opts.Chunker)
	if err != nil {
		return nil, err
	}

	bufSize := opts.BufferSize
	if bufSize <= 0 {
		bufSize = DefaultBufferSize
	}
	buf := make([]byte, bufSize)

	start := time.Now()
	var chunks []chunker.Chunk
	var offset int64
	collect := func() {
		for ch := range c.Chunks() {
			opts.log("chunk %6d at %10d: %6d bytes", len(chunks), offset, ch.Size)
			offset += int64(ch.Size)
			chunks = append(chunks, ch)
		}
	}

	for {
		n, err := r.Read(buf)
		if n > 0 {
			c.Update(buf[:n])
			collect()
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading input: %w", err)
		}
	}
	stats := c.FinalizeReset()
	collect()

	elapsed := time.Since(start)
	rate := float64(stats.Size) / max(elapsed.Seconds(), 0.001) / (1 << 20)
	opts.log("chunked %d bytes into %d chunks (%.0f MiB/sec)", stats.Size, len(chunks), rate)

	return &Result{
		Blockmap: New(opts.Name, chunks),
		Stats:    stats,
		Chunks:   chunks,
	}, nil
}

func (opts GenerateOptions) log(format string, args ...any) {
	if opts.Logf != nil {
		opts.Logf(format, args...)
	}
}
