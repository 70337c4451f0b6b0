// Package blockmap renders chunker output as a blockmap document: an ordered
// list of chunk sizes and base64 checksums per file, used to transfer only
// the changed parts of a new file version.
package blockmap

import (
	"encoding/base64"
	"errors"
	"fmt"

	jsoniter "github.com/json-iterator/go"
	"github.com/sansecio/blockmap/internal/chunker"
)

// Version is the blockmap format version written by this package.
const Version = "2"

// DefaultName is the file name recorded when none is given.
const DefaultName = "file"

var (
	ErrUnsupportedVersion = errors.New("unsupported blockmap version")
	ErrChecksumMismatch   = errors.New("checksums and sizes differ in length")
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Blockmap is the document written next to (or appended to) a file.
type Blockmap struct {
	Version string `json:"version"`
	Files   []File `json:"files"`
}

// File lists the chunks of a single file in stream order.
type File struct {
	Name      string   `json:"name"`
	Offset    int64    `json:"offset"`
	Checksums []string `json:"checksums"`
	Sizes     []int    `json:"sizes"`
}

// New returns a single-file blockmap for chunks.
func New(name string, chunks []chunker.Chunk) *Blockmap {
	if name == "" {
		name = DefaultName
	}
	f := File{
		Name:      name,
		Checksums: make([]string, 0, len(chunks)),
		Sizes:     make([]int, 0, len(chunks)),
	}
	for _, c := range chunks {
		f.Checksums = append(f.Checksums, base64.StdEncoding.EncodeToString(c.Digest))
		f.Sizes = append(f.Sizes, c.Size)
	}
	return &Blockmap{Version: Version, Files: []File{f}}
}

// Marshal returns the JSON form of b.
func (b *Blockmap) Marshal() ([]byte, error) {
	return json.Marshal(b)
}

// Unmarshal parses a JSON blockmap.
func Unmarshal(data []byte) (*Blockmap, error) {
	var b Blockmap
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("parsing blockmap: %w", err)
	}
	if b.Version != Version {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedVersion, b.Version)
	}
	for i := range b.Files {
		if len(b.Files[i].Checksums) != len(b.Files[i].Sizes) {
			return nil, fmt.Errorf("file %q: %w", b.Files[i].Name, ErrChecksumMismatch)
		}
	}
	return &b, nil
}

// Chunks decodes the checksums of f back into chunks.
func (f *File) Chunks() ([]chunker.Chunk, error) {
	if len(f.Checksums) != len(f.Sizes) {
		return nil, ErrChecksumMismatch
	}
	chunks := make([]chunker.Chunk, len(f.Sizes))
	for i, s := range f.Checksums {
		digest, err := base64.StdEncoding.DecodeString(s)
		if err != nil {
			return nil, fmt.Errorf("chunk %d: %w", i, err)
		}
		chunks[i] = chunker.Chunk{Size: f.Sizes[i], Digest: digest}
	}
	return chunks, nil
}

// TotalSize returns the sum of all chunk sizes.
func (f *File) TotalSize() int64 {
	var n int64
	for _, s := range f.Sizes {
		n += int64(s)
	}
	return n
}
