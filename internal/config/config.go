// Package config handles application configuration and setup
package config

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/Code-Hex/chip8vm/internal/chip8"
	"github.com/retroenv/retrogolib/log"
)

// Supported display backends.
const (
	BackendEbiten   = "ebiten"
	BackendTerminal = "term"
)

// Config contains all settings of one emulator run.
type Config struct {
	ROM     string
	Backend string

	// LoadOffset is the address the ROM is loaded to and execution starts at.
	LoadOffset uint16
	// InstructionsPerTick is the number of instructions executed per timer tick.
	InstructionsPerTick int
	// TickRate is the number of timer ticks per second.
	TickRate int
	// MaxTicks stops the emulation after the given number of ticks, 0 runs until quit.
	MaxTicks uint64
	// Seed of the random number source, 0 picks a random seed.
	Seed int64

	Scale      int
	Foreground string
	Background string

	Debug bool
	Quiet bool
}

// Defaults returns the default configuration.
func Defaults() Config {
	return Config{
		Backend:             BackendEbiten,
		LoadOffset:          chip8.ProgramStart,
		InstructionsPerTick: 10,
		TickRate:            60,
		Scale:               10,
		Foreground:          "#FFFFFF",
		Background:          "#000000",
	}
}

// Validate checks the configuration for invalid values.
func (c Config) Validate() error {
	if c.ROM == "" {
		return errors.New("no rom file given")
	}
	switch c.Backend {
	case BackendEbiten, BackendTerminal:
	default:
		return fmt.Errorf("unsupported backend '%s'", c.Backend)
	}
	if int(c.LoadOffset) >= chip8.MemorySize-1 {
		return fmt.Errorf("load offset 0x%X is outside of memory", c.LoadOffset)
	}
	if c.InstructionsPerTick < 1 {
		return fmt.Errorf("instructions per tick must be positive, got %d", c.InstructionsPerTick)
	}
	if c.TickRate < 1 {
		return fmt.Errorf("tick rate must be positive, got %d", c.TickRate)
	}
	if c.Scale < 1 {
		return fmt.Errorf("scale must be positive, got %d", c.Scale)
	}
	if _, err := ParseColor(c.Foreground); err != nil {
		return fmt.Errorf("foreground: %w", err)
	}
	if _, err := ParseColor(c.Background); err != nil {
		return fmt.Errorf("background: %w", err)
	}
	return nil
}

// ParseColor parses a color in the #RRGGBB or RRGGBB notation.
func ParseColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid color '%s'", s)
	}
	value, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color '%s': %w", s, err)
	}
	return color.RGBA{
		R: uint8(value >> 16),
		G: uint8(value >> 8),
		B: uint8(value),
		A: 0xFF,
	}, nil
}

// CreateLogger creates a logger with appropriate settings
func CreateLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}
