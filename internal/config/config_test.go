package config

import (
	"image/color"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestDefaults(t *testing.T) {
	cfg := Defaults()
	assert.Equal(t, uint16(0x200), cfg.LoadOffset)
	assert.Equal(t, 10, cfg.InstructionsPerTick)
	assert.Equal(t, 60, cfg.TickRate)
	assert.Equal(t, BackendEbiten, cfg.Backend)

	// defaults are only missing the rom
	assert.Error(t, cfg.Validate())
	cfg.ROM = "test.ch8"
	assert.NoError(t, cfg.Validate())
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(cfg *Config)
	}{
		{"backend", func(cfg *Config) { cfg.Backend = "sdl" }},
		{"load offset", func(cfg *Config) { cfg.LoadOffset = 0xFFF }},
		{"instructions per tick", func(cfg *Config) { cfg.InstructionsPerTick = 0 }},
		{"tick rate", func(cfg *Config) { cfg.TickRate = -1 }},
		{"scale", func(cfg *Config) { cfg.Scale = 0 }},
		{"foreground", func(cfg *Config) { cfg.Foreground = "white" }},
		{"background", func(cfg *Config) { cfg.Background = "#12345" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			cfg.ROM = "test.ch8"
			tt.modify(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("#FF8000")
	assert.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 0xFF, G: 0x80, B: 0x00, A: 0xFF}, c)

	c, err = ParseColor("00ff00")
	assert.NoError(t, err)
	assert.Equal(t, color.RGBA{G: 0xFF, A: 0xFF}, c)

	_, err = ParseColor("#GGGGGG")
	assert.Error(t, err)
}

func TestCreateLogger(t *testing.T) {
	assert.NotNil(t, CreateLogger(true, false))
	assert.NotNil(t, CreateLogger(false, true))
	assert.NotNil(t, CreateLogger(false, false))
}
