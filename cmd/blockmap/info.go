package main

import (
	"fmt"
	"slices"

	units "github.com/docker/go-units"
	"github.com/sansecio/blockmap/internal/blockmap"
)

type infoArg struct {
	Appended bool `long:"appended" description:"Read a blockmap appended to a file"`
	Path     struct {
		Path string `positional-arg-name:"<blockmap>" description:"Blockmap path or http(s) URL" required:"1"`
	} `positional-args:"yes" required:"true"`
}

var infoCmd infoArg

func init() {
	cli.AddCommand("info", "Show blockmap information", "Show version, chunk count and chunk size distribution of a blockmap", &infoCmd)
}

func (a *infoArg) Execute(_ []string) error {
	applyVerbose()

	b, err := blockmap.Load(blockmapPath(a.Path.Path), a.Appended)
	if err != nil {
		return fmt.Errorf("load %s: %w", a.Path.Path, err)
	}

	fmt.Printf("Blockmap:  %s\n", a.Path.Path)
	fmt.Printf("Version:   %s\n", b.Version)
	for _, f := range b.Files {
		fmt.Println()
		fmt.Printf("File:      %s (offset %d)\n", boldwhite(f.Name), f.Offset)
		fmt.Printf("Size:      %s (%d bytes)\n", units.BytesSize(float64(f.TotalSize())), f.TotalSize())
		fmt.Printf("Chunks:    %d\n", len(f.Sizes))
		if len(f.Sizes) > 0 {
			avg := float64(f.TotalSize()) / float64(len(f.Sizes))
			fmt.Printf("Avg chunk: %s\n", units.BytesSize(avg))
			fmt.Printf("Min chunk: %d bytes\n", slices.Min(f.Sizes))
			fmt.Printf("Max chunk: %d bytes\n", slices.Max(f.Sizes))
		}

		offset := f.Offset
		for i, size := range f.Sizes {
			logVerbose(grey(fmt.Sprintf("  %6d %10d %6d", i, offset, size)), f.Checksums[i])
			offset += int64(size)
		}
	}
	return nil
}
