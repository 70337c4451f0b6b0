package main

import (
	"encoding/base64"
	"fmt"
	"os"

	units "github.com/docker/go-units"
	"github.com/sansecio/blockmap/internal/blockmap"
	"github.com/sansecio/blockmap/internal/chunker"
	cdpath "github.com/sansecio/blockmap/internal/path"
)

type generateArg struct {
	Input       string `short:"i" long:"input" description:"Input binary file" required:"true"`
	Output      string `short:"o" long:"output" description:"Output blockmap file"`
	ZipBoundary bool   `short:"z" long:"zip-boundary" description:"Use zip file boundaries for splitting chunks"`
	Append      bool   `short:"a" long:"append" description:"Append the blockmap and a 4-byte length to the input file"`
	Compression string `short:"c" long:"compression" default:"gzip" choice:"gzip" choice:"deflate" choice:"zstd" description:"Blockmap compression"`
	Name        string `long:"name" default:"file" description:"File name recorded in the blockmap"`
	Window      string `long:"window" default:"64" description:"Rolling hash window size"`
	MinChunk    string `long:"min" default:"8KiB" description:"Minimum chunk size"`
	AvgChunk    string `long:"avg" default:"16KiB" description:"Average chunk size, must be a power of two"`
	MaxChunk    string `long:"max" default:"32KiB" description:"Maximum chunk size"`
}

var generateCmd generateArg

func init() {
	cli.AddCommand("generate", "Generate a blockmap", "Split a file into content-defined chunks and write its blockmap", &generateCmd)
}

func (g *generateArg) Execute(_ []string) error {
	applyVerbose()

	if err := g.validate(); err != nil {
		return err
	}
	opts, err := g.chunkerOptions()
	if err != nil {
		return err
	}
	compression, err := blockmap.ParseCompression(g.Compression)
	if err != nil {
		return err
	}

	f, err := os.Open(g.Input)
	if err != nil {
		return fmt.Errorf("open %s: %w", g.Input, err)
	}
	res, err := blockmap.Generate(f, blockmap.GenerateOptions{
		Chunker: opts,
		Name:    g.Name,
		Logf:    logChunk,
	})
	f.Close()
	if err != nil {
		return fmt.Errorf("%s: %w", g.Input, err)
	}

	data, err := blockmap.Encode(res.Blockmap, compression)
	if err != nil {
		return err
	}

	target := g.Output
	if g.Append {
		target = g.Input
		err = blockmap.AppendFile(g.Input, data)
	} else {
		err = blockmap.WriteFile(g.Output, data)
	}
	if err != nil {
		return fmt.Errorf("write %s: %w", target, err)
	}

	fmt.Println(boldwhite("Wrote blockmap for ", g.Input, " to ", target))
	fmt.Println(" - Size      :", units.BytesSize(float64(res.Stats.Size)), grey(fmt.Sprintf("(%d bytes)", res.Stats.Size)))
	fmt.Println(" - Chunks    :", len(res.Chunks))
	fmt.Println(" - Blockmap  :", units.BytesSize(float64(len(data))), grey(string(compression)))
	logVerbose(" - SHA-512   :", base64.StdEncoding.EncodeToString(res.Stats.Digest))
	logVerbose(" - Options   :", fmt.Sprintf("window=%d min=%d avg=%d max=%d zip=%v",
		opts.WindowSize, opts.MinChunk, opts.AvgChunk, opts.MaxChunk, opts.DetectZipBoundary))
	return nil
}

func (g *generateArg) validate() error {
	if !cdpath.Exists(g.Input) {
		return fmt.Errorf("input %q does not exist", g.Input)
	}
	if !cdpath.IsFile(g.Input) {
		return fmt.Errorf("input %q is not a regular file", g.Input)
	}
	switch {
	case g.Append && g.Output != "":
		return fmt.Errorf("--append writes to the input file; don't combine it with --output")
	case !g.Append && g.Output == "":
		return fmt.Errorf("please provide --output or --append")
	}
	return nil
}

func (g *generateArg) chunkerOptions() (chunker.Options, error) {
	opts := chunker.Options{DetectZipBoundary: g.ZipBoundary}
	for _, s := range []struct {
		flag  string
		value string
		dst   *int
	}{
		{"window", g.Window, &opts.WindowSize},
		{"min", g.MinChunk, &opts.MinChunk},
		{"avg", g.AvgChunk, &opts.AvgChunk},
		{"max", g.MaxChunk, &opts.MaxChunk},
	} {
		n, err := units.RAMInBytes(s.value)
		if err != nil {
			return opts, fmt.Errorf("--%s: %w", s.flag, err)
		}
		*s.dst = int(n)
	}
	if err := opts.Validate(); err != nil {
		return opts, err
	}
	if opts.MinChunk > opts.AvgChunk || opts.AvgChunk > opts.MaxChunk {
		fmt.Println(boldred("warning:"), "expected min <= avg <= max chunk size")
	}
	return opts, nil
}
