package blockmap

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// Compression selects how an encoded blockmap is compressed.
type Compression string

const (
	Gzip    Compression = "gzip"
	Deflate Compression = "deflate" // raw deflate, no header
	Zstd    Compression = "zstd"
)

var ErrUnknownCompression = errors.New("unknown compression")

var zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}

// ParseCompression parses a compression name, case insensitive.
func ParseCompression(s string) (Compression, error) {
	switch c := Compression(strings.ToLower(s)); c {
	case Gzip, Deflate, Zstd:
		return c, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCompression, s)
}

// DetectCompression guesses the compression of data from its magic bytes.
// Raw deflate has no magic and is the fallback.
func DetectCompression(data []byte) Compression {
	switch {
	case len(data) >= 2 && data[0] == 0x1f && data[1] == 0x8b:
		return Gzip
	case bytes.HasPrefix(data, zstdMagic):
		return Zstd
	}
	return Deflate
}

// Encode marshals b and compresses it at the best compression level.
func Encode(b *Blockmap, c Compression) ([]byte, error) {
	doc, err := b.Marshal()
	if err != nil {
		return nil, fmt.Errorf("marshal blockmap: %w", err)
	}

	buf := new(bytes.Buffer)
	var w io.WriteCloser
	switch c {
	case Gzip:
		w, err = gzip.NewWriterLevel(buf, gzip.BestCompression)
	case Deflate:
		w, err = flate.NewWriter(buf, flate.BestCompression)
	case Zstd:
		w, err = zstd.NewWriter(buf, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCompression, c)
	}
	if err != nil {
		return nil, fmt.Errorf("%s writer: %w", c, err)
	}

	if _, err := w.Write(doc); err != nil {
		return nil, fmt.Errorf("%s write: %w", c, err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("%s close: %w", c, err)
	}
	return buf.Bytes(), nil
}

// Decode decompresses and parses an encoded blockmap. An empty c detects the
// compression from data.
func Decode(data []byte, c Compression) (*Blockmap, error) {
	if c == "" {
		c = DetectCompression(data)
	}

	var r io.ReadCloser
	switch c {
	case Gzip:
		zr, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("gzip reader: %w", err)
		}
		r = zr
	case Deflate:
		r = flate.NewReader(bytes.NewReader(data))
	case Zstd:
		zr, err := zstd.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("zstd reader: %w", err)
		}
		r = zr.IOReadCloser()
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCompression, c)
	}
	defer r.Close()

	doc, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%s decompress: %w", c, err)
	}
	return Unmarshal(doc)
}
