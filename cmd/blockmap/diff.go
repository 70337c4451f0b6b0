package main

import (
	"fmt"

	units "github.com/docker/go-units"
	"github.com/sansecio/blockmap/internal/blockmap"
)

type diffArg struct {
	Appended bool `long:"appended" description:"Read blockmaps appended to their files"`
	Path     struct {
		Old string `positional-arg-name:"<old>" description:"Previous blockmap, path or http(s) URL" required:"1"`
		New string `positional-arg-name:"<new>" required:"1"`
	} `positional-args:"yes" required:"true"`
}

var diffCmd diffArg

func init() {
	cli.AddCommand("diff", "Compare two blockmaps", "Show how much of the new version can be reused from the old one", &diffCmd)
}

func (a *diffArg) Execute(_ []string) error {
	applyVerbose()

	older, err := blockmap.Load(blockmapPath(a.Path.Old), a.Appended)
	if err != nil {
		return fmt.Errorf("load %s: %w", a.Path.Old, err)
	}
	newer, err := blockmap.Load(blockmapPath(a.Path.New), a.Appended)
	if err != nil {
		return fmt.Errorf("load %s: %w", a.Path.New, err)
	}

	for _, nf := range newer.Files {
		of := findFile(older, nf.Name)
		if of == nil {
			fmt.Println(boldred("No file"), nf.Name, "in", a.Path.Old)
			continue
		}
		d := blockmap.Compare(of, &nf)
		fmt.Println(boldwhite("Comparing ", nf.Name))
		fmt.Println(" - Chunks to download :", boldred(fmt.Sprintf("%7d", d.DownloadChunks)), grey(units.BytesSize(float64(d.DownloadBytes))))
		fmt.Println(" - Chunks reused      :", green(fmt.Sprintf("%7d", d.ReusedChunks)), grey(units.BytesSize(float64(d.ReusedBytes))))
		fmt.Println(" - Total              :", fmt.Sprintf("%7d", d.TotalChunks), grey(fmt.Sprintf("%8.2f%% reused", d.ReusedPercentage())))
	}
	return nil
}

func findFile(b *blockmap.Blockmap, name string) *blockmap.File {
	for i := range b.Files {
		if b.Files[i].Name == name {
			return &b.Files[i]
		}
	}
	return nil
}
