package main

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnsureDefaultCommand(t *testing.T) {
	saved := os.Args
	t.Cleanup(func() { os.Args = saved })

	os.Args = []string{"blockmap", "-i", "app.zip", "-o", "app.blockmap"}
	ensureDefaultCommand(cli, defaultCmd)
	assert.Equal(t, []string{"blockmap", "generate", "-i", "app.zip", "-o", "app.blockmap"}, os.Args)

	os.Args = []string{"blockmap", "-v", "info", "app.blockmap"}
	ensureDefaultCommand(cli, defaultCmd)
	assert.Equal(t, []string{"blockmap", "-v", "info", "app.blockmap"}, os.Args)

	os.Args = []string{"blockmap", "-vv", "diff", "old.blockmap", "new.blockmap"}
	ensureDefaultCommand(cli, defaultCmd)
	assert.Equal(t, []string{"blockmap", "-vv", "diff", "old.blockmap", "new.blockmap"}, os.Args)

	// an input file that happens to be named like a command
	os.Args = []string{"blockmap", "-i", "info", "-o", "out.blockmap"}
	ensureDefaultCommand(cli, defaultCmd)
	assert.Equal(t, []string{"blockmap", "generate", "-i", "info", "-o", "out.blockmap"}, os.Args)

	os.Args = []string{"blockmap"}
	ensureDefaultCommand(cli, defaultCmd)
	assert.Equal(t, []string{"blockmap"}, os.Args)
}

func TestVersionRequested(t *testing.T) {
	assert.True(t, versionRequested([]string{"--version"}))
	assert.True(t, versionRequested([]string{"-v", "--version"}))
	assert.True(t, versionRequested([]string{"--verbose", "-vv", "--version"}))
	assert.False(t, versionRequested(nil))
	assert.False(t, versionRequested([]string{"-v"}))
	assert.False(t, versionRequested([]string{"info", "--version"}))
	assert.False(t, versionRequested([]string{"-i", "app.zip", "--version"}))
}

func TestApplyVerbose(t *testing.T) {
	t.Cleanup(func() { globalOpts.Verbose = nil; applyVerbose() })

	globalOpts.Verbose = nil
	applyVerbose()
	assert.Equal(t, 1, logLevel)

	globalOpts.Verbose = []bool{true, true}
	applyVerbose()
	assert.Equal(t, 3, logLevel)
}
