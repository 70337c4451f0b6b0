package blockmap

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// footerSize is the little-endian uint32 length written after an appended
// blockmap.
const footerSize = 4

// fileMode is the mode of written blockmaps; they are published next to the
// file they describe.
const fileMode = 0o644

// WriteFile writes an encoded blockmap to path atomically.
func WriteFile(path string, data []byte) error {
	f, err := os.CreateTemp(filepath.Dir(path), ".blockmap_temp")
	if err != nil {
		return err
	}
	defer os.Remove(f.Name())
	defer f.Close()

	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("writing blockmap: %w", err)
	}
	if err := f.Chmod(fileMode); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), path)
}

// AppendFile appends an encoded blockmap plus its length footer to the
// existing file at path.
func AppendFile(path string, data []byte) error {
	if uint64(len(data)) > uint64(^uint32(0)) {
		return fmt.Errorf("blockmap of %d bytes too large to append", len(data))
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND, 0)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("appending blockmap: %w", err)
	}
	if err := binary.Write(f, binary.LittleEndian, uint32(len(data))); err != nil {
		return fmt.Errorf("writing footer: %w", err)
	}
	return f.Close()
}

// ReadFile returns the encoded blockmap stored in path. With appended set,
// the blockmap is located through the footer at the end of the file.
func ReadFile(path string, appended bool) ([]byte, error) {
	if !appended {
		return os.ReadFile(path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, err
	}
	size := fi.Size()
	if size < footerSize {
		return nil, fmt.Errorf("file too small for blockmap footer")
	}

	var n uint32
	if err := binary.Read(io.NewSectionReader(f, size-footerSize, footerSize), binary.LittleEndian, &n); err != nil {
		return nil, fmt.Errorf("reading footer: %w", err)
	}
	if int64(n) > size-footerSize {
		return nil, fmt.Errorf("footer length %d exceeds file size %d, not an appended blockmap?", n, size)
	}

	data := make([]byte, n)
	if _, err := f.ReadAt(data, size-footerSize-int64(n)); err != nil {
		return nil, fmt.Errorf("reading blockmap: %w", err)
	}
	return data, nil
}

// Load reads and decodes the blockmap at path.
func Load(path string, appended bool) (*Blockmap, error) {
	data, err := ReadFile(path, appended)
	if err != nil {
		return nil, err
	}
	return Decode(data, "")
}
