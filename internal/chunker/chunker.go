// Package chunker provides content-defined chunking (CDC) for blockmaps.
// A Rabin fingerprint over a sliding window decides chunk boundaries, so that
// an insertion or deletion only changes the chunks around it. Every chunk is
// identified by a BLAKE2b digest of its bytes, and the whole stream by a
// SHA-512 digest.
//
// A Chunker is fed with Update and drained with Next or Chunks. It does no
// I/O and is not safe for concurrent use.
package chunker

import (
	"crypto/sha512"
	"fmt"
	"hash"
	"iter"

	"github.com/sansecio/blockmap/internal/polytable"
	"golang.org/x/crypto/blake2b"
)

// ChunkDigestSize is the length of a chunk digest in bytes.
const ChunkDigestSize = 18

// zip local file header signature
var zipHeader = [4]byte{0x50, 0x4b, 0x03, 0x04}

// shiftBits moves the byte that overflows on the next 8-bit shift into the
// low bits of the register.
var shiftBits = polytable.Degree() - 8 - 1

// Chunk is a finished chunk. Digest covers exactly Size bytes of the stream.
type Chunk struct {
	Size   int
	Digest []byte
}

// Stats describes everything processed since the previous FinalizeReset.
type Stats struct {
	Size   int64
	Digest []byte // SHA-512 of the stream
}

// Chunker splits a byte stream into content-defined chunks.
type Chunker struct {
	table *polytable.Table
	opts  Options
	mask  uint64

	hash         uint64
	window       []byte
	windowOffset int
	chunkSize    int
	zipOffset    int

	chunkDigest hash.Hash
	digest      hash.Hash
	totalSize   int64

	queue []Chunk
	head  int
}

// New returns a Chunker for opts. The reduction table is shared with every
// other chunker using the same window size.
func New(opts Options) (*Chunker, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	table, err := polytable.New(opts.WindowSize)
	if err != nil {
		return nil, err
	}
	chunkDigest, err := blake2b.New(ChunkDigestSize, nil)
	if err != nil {
		return nil, fmt.Errorf("chunk digest: %w", err)
	}
	return &Chunker{
		table:       table,
		opts:        opts,
		mask:        uint64(opts.AvgChunk - 1),
		window:      make([]byte, opts.WindowSize),
		chunkDigest: chunkDigest,
		digest:      sha512.New(),
	}, nil
}

// Options returns the options the chunker was built with.
func (c *Chunker) Options() Options {
	return c.opts
}

// Update feeds the next bytes of the stream. Chunks completed by data are
// queued for Next and Chunks.
func (c *Chunker) Update(data []byte) {
	c.digest.Write(data)
	c.totalSize += int64(len(data))

	start := 0
	for i, b := range data {
		c.chunkSize++

		if c.opts.DetectZipBoundary && c.zipOffset < len(zipHeader) {
			if zipHeader[c.zipOffset] == b {
				c.zipOffset++
			} else {
				c.zipOffset = 0
			}
		}
		seenZipHeader := c.zipOffset == len(zipHeader)

		// A chunk can't end before MinChunk, so only start hashing once the
		// window is about to be full at that point.
		if c.chunkSize+c.opts.WindowSize <= c.opts.MinChunk && !seenZipHeader {
			continue
		}

		c.roll(b)

		if !seenZipHeader &&
			(c.chunkSize < c.opts.MinChunk || c.hash&c.mask != c.mask) &&
			c.chunkSize < c.opts.MaxChunk {
			continue
		}

		c.chunkDigest.Write(data[start : i+1])
		c.push(Chunk{Size: c.chunkSize, Digest: c.chunkDigest.Sum(nil)})
		c.chunkDigest.Reset()
		start = i + 1
		c.reset()
	}

	if start < len(data) {
		c.chunkDigest.Write(data[start:])
	}
}

func (c *Chunker) roll(b byte) {
	dropped := c.window[c.windowOffset]
	shifted := c.hash >> shiftBits

	c.window[c.windowOffset] = b
	c.windowOffset++
	if c.windowOffset == len(c.window) {
		c.windowOffset = 0
	}

	c.hash = c.hash<<8 ^ uint64(b) ^ c.table.Drop[dropped] ^ c.table.Shift[shifted]
}

// FinalizeReset ends the current stream. A non-empty trailing chunk is
// queued regardless of MinChunk. The returned Stats cover all bytes since
// the previous call; afterwards the chunker is ready for a new stream.
// Chunks still queued are kept.
func (c *Chunker) FinalizeReset() Stats {
	size := c.chunkSize
	sum := c.chunkDigest.Sum(nil)
	c.chunkDigest.Reset()

	if size != 0 {
		c.push(Chunk{Size: size, Digest: sum})
	}

	stats := Stats{
		Size:   c.totalSize,
		Digest: c.digest.Sum(nil),
	}
	c.digest.Reset()
	c.totalSize = 0
	c.reset()
	return stats
}

// reset clears the per-chunk state after a cut.
func (c *Chunker) reset() {
	c.hash = 0
	c.chunkSize = 0
	c.zipOffset = 0
	c.windowOffset = 0
	clear(c.window)
}

func (c *Chunker) push(ch Chunk) {
	c.queue = append(c.queue, ch)
}

// Next removes and returns the oldest completed chunk.
func (c *Chunker) Next() (Chunk, bool) {
	if c.head == len(c.queue) {
		c.queue = c.queue[:0]
		c.head = 0
		return Chunk{}, false
	}
	ch := c.queue[c.head]
	c.queue[c.head] = Chunk{}
	c.head++
	return ch, true
}

// Pending returns the number of completed chunks not yet taken.
func (c *Chunker) Pending() int {
	return len(c.queue) - c.head
}

// Chunks drains the completed chunks in stream order. Chunks that are not
// consumed because iteration stopped early stay queued.
func (c *Chunker) Chunks() iter.Seq[Chunk] {
	return func(yield func(Chunk) bool) {
		for {
			ch, ok := c.Next()
			if !ok || !yield(ch) {
				return
			}
		}
	}
}
