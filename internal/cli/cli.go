// Package cli handles command line interface logic
package cli

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/Code-Hex/chip8vm/internal/config"
)

// ParseFlags parses the command line arguments, without the program name,
// into a validated configuration.
func ParseFlags(args []string) (config.Config, error) {
	flags := flag.NewFlagSet("chip8vm", flag.ContinueOnError)
	flags.SetOutput(io.Discard)

	cfg := config.Defaults()
	var loadOffset uint
	readOptionFlags(flags, &cfg, &loadOffset)

	if err := flags.Parse(args); err != nil {
		return cfg, &UsageError{flags: flags, msg: err.Error()}
	}
	rest := flags.Args()
	if len(rest) == 0 {
		return cfg, &UsageError{flags: flags}
	}
	if len(rest) > 1 {
		return cfg, &UsageError{
			flags: flags,
			msg:   fmt.Sprintf("unexpected argument %s after the rom file, please pass the rom file as last argument", rest[1]),
		}
	}
	cfg.ROM = rest[0]

	if loadOffset > 0xFFFF {
		return cfg, fmt.Errorf("load offset 0x%X exceeds 16 bits", loadOffset)
	}
	cfg.LoadOffset = uint16(loadOffset)

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func readOptionFlags(flags *flag.FlagSet, cfg *config.Config, loadOffset *uint) {
	flags.StringVar(&cfg.Backend, "backend", cfg.Backend, "display backend: ebiten or term")
	flags.UintVar(loadOffset, "offset", uint(cfg.LoadOffset), "memory address to load the rom to")
	flags.IntVar(&cfg.InstructionsPerTick, "speed", cfg.InstructionsPerTick, "instructions executed per timer tick")
	flags.IntVar(&cfg.TickRate, "rate", cfg.TickRate, "timer ticks per second")
	flags.Uint64Var(&cfg.MaxTicks, "ticks", cfg.MaxTicks, "stop after the given number of ticks, 0 runs until quit")
	flags.Int64Var(&cfg.Seed, "seed", cfg.Seed, "seed of the random number generator, 0 picks a random seed")
	flags.IntVar(&cfg.Scale, "scale", cfg.Scale, "window pixels per display pixel")
	flags.StringVar(&cfg.Foreground, "fg", cfg.Foreground, "color of lit pixels")
	flags.StringVar(&cfg.Background, "bg", cfg.Background, "color of dark pixels")
	flags.BoolVar(&cfg.Debug, "debug", cfg.Debug, "enable debug logging and instruction tracing")
	flags.BoolVar(&cfg.Quiet, "q", cfg.Quiet, "perform operations quietly")
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	if e.msg == "" {
		return "no rom file given"
	}
	return e.msg
}

// ShowUsage prints the usage and flag defaults to stdout.
func (e *UsageError) ShowUsage() {
	e.PrintUsage(os.Stdout)
}

// PrintUsage writes the usage and flag defaults to w.
func (e *UsageError) PrintUsage(w io.Writer) {
	fmt.Fprintf(w, "usage: chip8vm [options] <rom file>\n\n")
	e.flags.SetOutput(w)
	e.flags.PrintDefaults()
	e.flags.SetOutput(io.Discard)
	fmt.Fprintln(w)
}
