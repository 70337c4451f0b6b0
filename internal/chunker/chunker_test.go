package chunker

import (
	"bytes"
	"crypto/sha512"
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/blake2b"
)

func randomBytes(seed int64, n int) []byte {
	buf := make([]byte, n)
	rand.New(rand.NewSource(seed)).Read(buf)
	return buf
}

func newChunker(t testing.TB, opts Options) *Chunker {
	t.Helper()
	c, err := New(opts)
	require.NoError(t, err)
	return c
}

// chunkAll feeds data in pieces of step bytes and returns all chunks.
func chunkAll(t testing.TB, opts Options, data []byte, step int) ([]Chunk, Stats) {
	t.Helper()
	c := newChunker(t, opts)
	for len(data) > 0 {
		n := min(step, len(data))
		c.Update(data[:n])
		data = data[n:]
	}
	stats := c.FinalizeReset()
	return slices.Collect(c.Chunks()), stats
}

func chunkDigest(b []byte) []byte {
	h, _ := blake2b.New(ChunkDigestSize, nil)
	h.Write(b)
	return h.Sum(nil)
}

func TestNewValidatesOptions(t *testing.T) {
	opts := DefaultOptions()
	opts.AvgChunk = 12000
	_, err := New(opts)
	assert.ErrorIs(t, err, ErrAvgChunkNotPowerOfTwo)

	opts.AvgChunk = 0
	_, err = New(opts)
	assert.ErrorIs(t, err, ErrAvgChunkNotPowerOfTwo)

	opts = DefaultOptions()
	opts.WindowSize = 0
	_, err = New(opts)
	assert.ErrorIs(t, err, ErrInvalidWindowSize)

	// min/avg/max ordering is not enforced
	opts = DefaultOptions()
	opts.MinChunk = 64 * 1024
	_, err = New(opts)
	assert.NoError(t, err)
}

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()
	assert.Equal(t, 64, opts.WindowSize)
	assert.Equal(t, 8192, opts.MinChunk)
	assert.Equal(t, 16384, opts.AvgChunk)
	assert.Equal(t, 32768, opts.MaxChunk)
	assert.False(t, opts.DetectZipBoundary)
}

func TestRollingHash(t *testing.T) {
	c := newChunker(t, Options{
		WindowSize: 16,
		MinChunk:   0,
		AvgChunk:   1024 * 1024, // never cut
		MaxChunk:   1024 * 1024,
	})

	for i := range 1024 {
		c.Update([]byte{byte(i)})
	}
	rolling := c.hash

	c.reset()
	for i := 1024 - 16; i < 1024; i++ {
		c.Update([]byte{byte(i)})
	}
	assert.Equal(t, rolling, c.hash, "hash must only depend on the last window")
	assert.Equal(t, uint64(1976718474515856107), rolling)
	assert.Equal(t, 0, c.Pending())
}

func TestRollingHashWindowEquivalence(t *testing.T) {
	opts := Options{WindowSize: 64, MinChunk: 0, AvgChunk: 1 << 30, MaxChunk: 1 << 30}
	data := randomBytes(7, 10_000)

	full := newChunker(t, opts)
	full.Update(data)

	tail := newChunker(t, opts)
	tail.Update(data[len(data)-64:])

	assert.Equal(t, full.hash, tail.hash)
}

func TestHashStaysInField(t *testing.T) {
	c := newChunker(t, Options{WindowSize: 64, MinChunk: 0, AvgChunk: 1 << 30, MaxChunk: 1 << 30})
	for _, b := range randomBytes(3, 50_000) {
		c.Update([]byte{b})
		require.Less(t, c.hash, uint64(1)<<63)
	}
}

func TestChunksRepeatingPattern(t *testing.T) {
	c := newChunker(t, DefaultOptions())

	size := 256 * 1024
	for range size {
		c.Update([]byte{0x33, 0x31, 0x85})
	}

	stats := c.FinalizeReset()
	assert.Equal(t, int64(size*3), stats.Size)
	assert.Equal(t, 24, len(slices.Collect(c.Chunks())))
}

func TestNoEarlyCutAfterSkipping(t *testing.T) {
	c := newChunker(t, DefaultOptions())

	c.Update(bytes.Repeat([]byte{0xff}, 8*1024+8))

	stats := c.FinalizeReset()
	assert.Equal(t, int64(8*1024+8), stats.Size)

	chunks := slices.Collect(c.Chunks())
	require.Len(t, chunks, 1)
	assert.Equal(t, 8*1024+8, chunks[0].Size)
}

func TestChunkCoverageAndBounds(t *testing.T) {
	opts := DefaultOptions()
	data := randomBytes(1, 2*1024*1024+123)

	chunks, stats := chunkAll(t, opts, data, 16384)
	require.Greater(t, len(chunks), 10)

	total := 0
	for i, ch := range chunks {
		total += ch.Size
		if i < len(chunks)-1 {
			assert.GreaterOrEqual(t, ch.Size, opts.MinChunk, "chunk %d too small", i)
			assert.LessOrEqual(t, ch.Size, opts.MaxChunk, "chunk %d too large", i)
		}
	}
	assert.Equal(t, len(data), total)
	assert.Equal(t, int64(len(data)), stats.Size)
}

func TestChunkingIndependentOfUpdateSize(t *testing.T) {
	data := randomBytes(2, 512*1024)
	want, wantStats := chunkAll(t, DefaultOptions(), data, len(data))

	for _, step := range []int{1, 7, 1000, 16384, 65536} {
		got, gotStats := chunkAll(t, DefaultOptions(), data, step)
		assert.Equal(t, want, got, "step %d", step)
		assert.Equal(t, wantStats, gotStats, "step %d", step)
	}
}

func TestDigests(t *testing.T) {
	data := randomBytes(4, 300*1024)
	chunks, stats := chunkAll(t, DefaultOptions(), data, 4096)

	off := 0
	for i, ch := range chunks {
		assert.Len(t, ch.Digest, ChunkDigestSize)
		assert.Equal(t, chunkDigest(data[off:off+ch.Size]), ch.Digest, "chunk %d", i)
		off += ch.Size
	}

	sum := sha512.Sum512(data)
	assert.Equal(t, sum[:], stats.Digest)
}

func TestMaxChunkOnLowEntropy(t *testing.T) {
	opts := DefaultOptions()
	chunks, _ := chunkAll(t, opts, make([]byte, 100_000), 8192)

	for i, ch := range chunks[:len(chunks)-1] {
		assert.Equal(t, opts.MaxChunk, ch.Size, "chunk %d", i)
	}
	assert.Equal(t, 100_000-3*opts.MaxChunk, chunks[len(chunks)-1].Size)
}

func TestZipBoundary(t *testing.T) {
	var data []byte
	data = append(data, bytes.Repeat([]byte{0x01}, 100)...)
	data = append(data, 0x50, 0x4b, 0x03, 0x04)
	data = append(data, bytes.Repeat([]byte{0x02}, 50)...)
	data = append(data, 0x50, 0x4b, 0x03, 0x04)
	data = append(data, randomBytes(5, 40_000)...)

	opts := DefaultOptions()
	opts.DetectZipBoundary = true
	chunks, _ := chunkAll(t, opts, data, 33)

	require.GreaterOrEqual(t, len(chunks), 3)
	assert.Equal(t, 104, chunks[0].Size)
	assert.Equal(t, 54, chunks[1].Size)
	assert.Equal(t, chunkDigest(data[:104]), chunks[0].Digest)
	assert.Equal(t, chunkDigest(data[104:158]), chunks[1].Digest)

	// without detection the signature is ordinary content
	chunks, _ = chunkAll(t, DefaultOptions(), data, 33)
	assert.GreaterOrEqual(t, chunks[0].Size, DefaultMinChunk)
}

func TestZipBoundaryPartialMatch(t *testing.T) {
	opts := DefaultOptions()
	opts.DetectZipBoundary = true

	// a broken signature doesn't cut
	data := []byte{0x50, 0x4b, 0x03, 0x05, 0x50, 0x4b, 0x00}
	chunks, _ := chunkAll(t, opts, data, 1)
	require.Len(t, chunks, 1)
	assert.Equal(t, len(data), chunks[0].Size)
}

func TestZipBoundaryAtStreamStart(t *testing.T) {
	opts := DefaultOptions()
	opts.DetectZipBoundary = true

	data := append([]byte{0x50, 0x4b, 0x03, 0x04}, 0x50, 0x4b, 0x03, 0x04, 0xaa)
	chunks, stats := chunkAll(t, opts, data, 2)
	require.Len(t, chunks, 3)
	assert.Equal(t, []int{4, 4, 1}, []int{chunks[0].Size, chunks[1].Size, chunks[2].Size})
	assert.Equal(t, int64(9), stats.Size)
}

func TestFinalizeResetEmpty(t *testing.T) {
	c := newChunker(t, DefaultOptions())
	stats := c.FinalizeReset()

	sum := sha512.Sum512(nil)
	assert.Equal(t, int64(0), stats.Size)
	assert.Equal(t, sum[:], stats.Digest)
	assert.Equal(t, 0, c.Pending())
}

func TestFinalizeResetReuse(t *testing.T) {
	a := randomBytes(10, 100_000)
	b := randomBytes(11, 70_000)

	c := newChunker(t, DefaultOptions())
	c.Update(a)
	statsA := c.FinalizeReset()
	chunksA := slices.Collect(c.Chunks())

	c.Update(b)
	statsB := c.FinalizeReset()
	chunksB := slices.Collect(c.Chunks())

	wantA, wantStatsA := chunkAll(t, DefaultOptions(), a, len(a))
	wantB, wantStatsB := chunkAll(t, DefaultOptions(), b, len(b))
	assert.Equal(t, wantA, chunksA)
	assert.Equal(t, wantStatsA, statsA)
	assert.Equal(t, wantB, chunksB)
	assert.Equal(t, wantStatsB, statsB)
}

func TestFinalizeKeepsQueuedChunks(t *testing.T) {
	c := newChunker(t, DefaultOptions())
	c.Update(randomBytes(12, 200_000))
	queued := c.Pending()
	require.Greater(t, queued, 0)

	c.FinalizeReset()
	assert.Equal(t, queued+1, c.Pending())
}

func TestChunksDrainAndContinue(t *testing.T) {
	data := randomBytes(6, 400_000)
	want, _ := chunkAll(t, DefaultOptions(), data, len(data))

	c := newChunker(t, DefaultOptions())
	var got []Chunk

	c.Update(data[:200_000])
	got = append(got, slices.Collect(c.Chunks())...)
	assert.Equal(t, 0, c.Pending())
	_, ok := c.Next()
	assert.False(t, ok)

	c.Update(data[200_000:])
	c.FinalizeReset()
	got = append(got, slices.Collect(c.Chunks())...)

	assert.Equal(t, want, got)
}

func TestChunksStopEarly(t *testing.T) {
	c := newChunker(t, DefaultOptions())
	c.Update(randomBytes(8, 300_000))
	c.FinalizeReset()

	total := c.Pending()
	require.Greater(t, total, 2)

	var first Chunk
	for ch := range c.Chunks() {
		first = ch
		break
	}
	assert.Greater(t, first.Size, 0)
	assert.Equal(t, total-1, c.Pending())

	next, ok := c.Next()
	require.True(t, ok)
	assert.NotEqual(t, first.Digest, next.Digest)
}

func TestChunkersShareTable(t *testing.T) {
	a := newChunker(t, DefaultOptions())
	b := newChunker(t, DefaultOptions())
	assert.Same(t, a.table, b.table)
}
