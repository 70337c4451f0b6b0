package chunker

import (
	"errors"
	"fmt"

	"github.com/sansecio/blockmap/internal/polytable"
)

const (
	DefaultMinChunk = 8 * 1024
	DefaultAvgChunk = 16 * 1024
	DefaultMaxChunk = 32 * 1024
)

var (
	// ErrAvgChunkNotPowerOfTwo is returned when AvgChunk cannot be used as a
	// boundary mask.
	ErrAvgChunkNotPowerOfTwo = errors.New("avg chunk size must be a power of two")

	// ErrInvalidWindowSize is returned when WindowSize is not positive.
	ErrInvalidWindowSize = errors.New("window size must be greater than 0")
)

// Options configures a Chunker. They are fixed once the chunker is built.
type Options struct {
	WindowSize        int  // rolling hash window in bytes
	MinChunk          int  // no content-defined cut before this many bytes
	AvgChunk          int  // expected chunk size, must be a power of two
	MaxChunk          int  // hard cap on chunk size
	DetectZipBoundary bool // cut right after every zip local file header signature
}

// DefaultOptions returns the options used by blockmap files: a 64 byte
// window and 8/16/32 KiB chunks.
func DefaultOptions() Options {
	return Options{
		WindowSize: polytable.DefaultWindowSize,
		MinChunk:   DefaultMinChunk,
		AvgChunk:   DefaultAvgChunk,
		MaxChunk:   DefaultMaxChunk,
	}
}

// Validate checks the options. Only the window size and the power-of-two
// average are enforced; MinChunk <= AvgChunk <= MaxChunk is expected but
// not required.
func (o Options) Validate() error {
	if o.WindowSize <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidWindowSize, o.WindowSize)
	}
	if o.AvgChunk <= 0 || o.AvgChunk&(o.AvgChunk-1) != 0 {
		return fmt.Errorf("%w: got %d", ErrAvgChunkNotPowerOfTwo, o.AvgChunk)
	}
	return nil
}
