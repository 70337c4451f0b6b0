package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	buildversion "github.com/gwillem/go-buildversion"
	"github.com/jessevdk/go-flags"
)

const defaultCmd = "generate"

type globalOpt struct {
	Verbose []bool `short:"v" long:"verbose" description:"Verbose output (-v summary details, -vv every chunk)"`
	Version bool   `long:"version" description:"Print version and exit"` // handled before parsing, see versionRequested
}

var (
	globalOpts      globalOpt
	cli             = flags.NewParser(&globalOpts, flags.Default)
	blockmapVersion = buildversion.String()
)

func main() {
	if versionRequested(os.Args[1:]) {
		fmt.Println("blockmap", blockmapVersion)
		return
	}
	ensureDefaultCommand(cli, defaultCmd)
	cli.SubcommandsOptional = false
	if _, err := cli.Parse(); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		os.Exit(1)
	}
}

// ensureDefaultCommand lets "blockmap -i in -o out" run the generate command.
// Only global flags may precede a command name.
func ensureDefaultCommand(p *flags.Parser, cmd string) {
	if len(os.Args) < 2 {
		return
	}
	for _, arg := range os.Args[1:] {
		if isGlobalFlag(arg) {
			continue
		}
		for _, c := range p.Commands() {
			if c.Name == arg {
				return
			}
		}
		break
	}
	os.Args = append([]string{os.Args[0], cmd}, os.Args[1:]...)
}

// versionRequested reports whether --version is among the leading global
// flags. Parsing would otherwise demand the flags of the default command.
func versionRequested(args []string) bool {
	for _, arg := range args {
		if !isGlobalFlag(arg) {
			return false
		}
		if arg == "--version" {
			return true
		}
	}
	return false
}

func isGlobalFlag(arg string) bool {
	switch arg {
	case "--verbose", "--version":
		return true
	}
	return len(arg) > 1 && arg[0] == '-' && strings.Trim(arg[1:], "v") == ""
}
