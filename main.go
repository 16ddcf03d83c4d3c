// Package main implements a CHIP-8 virtual machine.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/Code-Hex/chip8vm/internal/chip8"
	"github.com/Code-Hex/chip8vm/internal/cli"
	"github.com/Code-Hex/chip8vm/internal/config"
	"github.com/Code-Hex/chip8vm/internal/driver"
	"github.com/Code-Hex/chip8vm/internal/ebitenui"
	"github.com/Code-Hex/chip8vm/internal/termui"
	"github.com/retroenv/retrogolib/app"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	ctx := app.Context()

	cfg, err := cli.ParseFlags(os.Args[1:])
	if err != nil {
		logger := config.CreateLogger(cfg.Debug, cfg.Quiet)
		var usageErr *cli.UsageError
		if errors.As(err, &usageErr) {
			printBanner(logger, cfg)
			usageErr.ShowUsage()
		} else {
			logger.Error("Invalid arguments", log.Err(err))
		}
		os.Exit(1)
	}

	logger := config.CreateLogger(cfg.Debug, cfg.Quiet)
	printBanner(logger, cfg)

	if err := run(ctx, logger, cfg); err != nil {
		if errors.Is(err, context.Canceled) {
			logger.Info("Emulation cancelled")
			return
		}
		logger.Error("Emulation failed", log.Err(err))
		os.Exit(1)
	}
}

func printBanner(logger *log.Logger, cfg config.Config) {
	if cfg.Quiet {
		return
	}
	fmt.Println("[------------------------------]")
	fmt.Println("[ chip8vm - CHIP-8 interpreter ]")
	fmt.Printf("[------------------------------]\n\n")
	logger.Info("Version", log.String("version", buildinfo.Version(version, commit, date)))
}

func run(ctx context.Context, logger *log.Logger, cfg config.Config) error {
	seed := cfg.Seed
	if seed == 0 {
		seed = chip8.NewSeed()
	}
	options := []chip8.Option{
		chip8.WithLoadOffset(cfg.LoadOffset),
		chip8.WithSeed(seed),
	}
	if cfg.Debug {
		options = append(options, chip8.WithTracer(driver.Tracer(logger)))
	}

	vm := chip8.New(options...)
	if err := vm.ReadROMFile(cfg.ROM); err != nil {
		return fmt.Errorf("loading rom: %w", err)
	}
	logger.Info("Loaded ROM",
		log.String("file", cfg.ROM),
		log.Hex("offset", cfg.LoadOffset),
		log.Int("seed", int(seed)),
		log.Int("speed", cfg.InstructionsPerTick))

	switch cfg.Backend {
	case config.BackendTerminal:
		return runTerminal(ctx, logger, cfg, vm)
	default:
		return runWindow(logger, cfg, vm)
	}
}

func runWindow(logger *log.Logger, cfg config.Config, vm *chip8.VM) error {
	window, err := ebitenui.New(cfg)
	if err != nil {
		return err
	}
	d := driver.New(logger, cfg, vm, window, window)
	if err := window.Run(d, cfg.TickRate); err != nil && !errors.Is(err, ebitenui.ErrQuit) {
		return err
	}
	return nil
}

func runTerminal(ctx context.Context, logger *log.Logger, cfg config.Config, vm *chip8.VM) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	terminal := termui.New(logger, os.Stdin, os.Stdout)
	terminal.OnInterrupt(cancel)
	if err := terminal.Start(); err != nil {
		return err
	}

	d := driver.New(logger, cfg, vm, terminal, terminal)
	err := d.Run(ctx)
	if stopErr := terminal.Stop(); stopErr != nil && err == nil {
		err = stopErr
	}
	return err
}
