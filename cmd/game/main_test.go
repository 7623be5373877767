package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags_ProfilingIsOptIn(t *testing.T) {
	opts, err := parseFlags(nil)
	require.NoError(t, err)
	assert.Empty(t, opts.PprofAddr)
	assert.Empty(t, opts.ObserveAddr)

	opts, err = parseFlags([]string{"-pprof", "localhost:6060", "-layout", "maps/arena.txt"})
	require.NoError(t, err)
	assert.Equal(t, "localhost:6060", opts.PprofAddr)
	assert.Equal(t, "maps/arena.txt", opts.LayoutPath)
}

func TestParseFlags_RejectsUnknownFlag(t *testing.T) {
	_, err := parseFlags([]string{"-bogus"})
	assert.Error(t, err)
}
