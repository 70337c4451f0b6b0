package main

import (
	"fmt"

	"github.com/fatih/color"
)

var (
	boldred   = color.New(color.FgHiRed, color.Bold).SprintFunc()
	grey      = color.New(color.FgHiBlack).SprintFunc()
	boldwhite = color.New(color.FgHiWhite).SprintFunc()
	green     = color.New(color.FgGreen).SprintFunc()

	logLevel = 1
)

func logVerbose(a ...any) {
	if logLevel >= 2 {
		fmt.Println(a...)
	}
}

// logChunk is handed to the blockmap package for per-chunk output.
func logChunk(format string, args ...any) {
	if logLevel >= 3 {
		fmt.Println(grey(fmt.Sprintf(format, args...)))
	}
}

// applyVerbose sets logLevel from the global -v flag count.
func applyVerbose() {
	logLevel = 1 + len(globalOpts.Verbose)
}
