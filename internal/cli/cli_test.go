package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/Code-Hex/chip8vm/internal/config"
	"github.com/retroenv/retrogolib/assert"
)

func TestParseFlags(t *testing.T) {
	cfg, err := ParseFlags([]string{
		"-backend", "term", "-offset", "0x600", "-speed", "20", "-rate", "30",
		"-ticks", "100", "-seed", "7", "-scale", "4", "-fg", "#00FF00", "-debug",
		"game.ch8",
	})
	assert.NoError(t, err)

	want := config.Defaults()
	want.ROM = "game.ch8"
	want.Backend = config.BackendTerminal
	want.LoadOffset = 0x600
	want.InstructionsPerTick = 20
	want.TickRate = 30
	want.MaxTicks = 100
	want.Seed = 7
	want.Scale = 4
	want.Foreground = "#00FF00"
	want.Debug = true
	assert.Equal(t, want, cfg)
}

func TestParseFlags_Defaults(t *testing.T) {
	cfg, err := ParseFlags([]string{"game.ch8"})
	assert.NoError(t, err)
	assert.Equal(t, "game.ch8", cfg.ROM)
	assert.Equal(t, uint16(0x200), cfg.LoadOffset)
	assert.Equal(t, 10, cfg.InstructionsPerTick)
}

func TestParseFlags_Errors(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		wantUsage bool
	}{
		{"no rom", nil, true},
		{"unknown flag", []string{"-nope", "game.ch8"}, true},
		{"flag after rom", []string{"game.ch8", "-debug"}, true},
		{"offset too large", []string{"-offset", "0x10000", "game.ch8"}, false},
		{"invalid backend", []string{"-backend", "sdl", "game.ch8"}, false},
		{"invalid speed", []string{"-speed", "0", "game.ch8"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseFlags(tt.args)
			assert.Error(t, err)

			var usageErr *UsageError
			assert.Equal(t, tt.wantUsage, errors.As(err, &usageErr))
		})
	}
}

func TestUsageError_PrintUsage(t *testing.T) {
	_, err := ParseFlags(nil)
	var usageErr *UsageError
	assert.True(t, errors.As(err, &usageErr))

	var buf bytes.Buffer
	usageErr.PrintUsage(&buf)
	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "usage: chip8vm"))
	assert.True(t, strings.Contains(out, "-speed"))
}
