// Package driver implements the timing loop that drives a VM: a fixed
// number of instructions per tick, one timer decrement and one frame flush.
package driver

import (
	"context"
	"fmt"
	"time"

	"github.com/Code-Hex/chip8vm/internal/chip8"
	"github.com/Code-Hex/chip8vm/internal/config"
	"github.com/retroenv/retrogolib/log"
)

// KeyboardProvider returns the state of the 16 logical keys.
type KeyboardProvider interface {
	Keys() [chip8.KeyCount]bool
}

// Renderer presents the framebuffer.
type Renderer interface {
	Render(display *chip8.Display) error
}

// Driver runs a VM at the configured speed.
type Driver struct {
	vm       *chip8.VM
	keyboard KeyboardProvider
	renderer Renderer
	logger   *log.Logger

	instructionsPerTick int
	tickRate            int
	maxTicks            uint64

	ticks      uint64
	paused     bool
	haltLogged bool
}

// New returns a driver for vm.
func New(logger *log.Logger, cfg config.Config, vm *chip8.VM, keyboard KeyboardProvider, renderer Renderer) *Driver {
	return &Driver{
		vm:                  vm,
		keyboard:            keyboard,
		renderer:            renderer,
		logger:              logger,
		instructionsPerTick: cfg.InstructionsPerTick,
		tickRate:            cfg.TickRate,
		maxTicks:            cfg.MaxTicks,
	}
}

// Tracer returns an instruction tracer that logs every executed instruction
// at debug level.
func Tracer(logger *log.Logger) chip8.Tracer {
	return func(pc uint16, in chip8.Instruction) {
		logger.Debug("Executing instruction",
			log.Hex("pc", pc),
			log.Hex("opcode", in.Word),
			log.String("instruction", in.String()))
	}
}

// VM returns the driven VM.
func (d *Driver) VM() *chip8.VM { return d.vm }

// Ticks returns the number of ticks executed.
func (d *Driver) Ticks() uint64 { return d.ticks }

// Paused reports whether the emulation is paused.
func (d *Driver) Paused() bool { return d.paused }

// TogglePause pauses or resumes the emulation.
func (d *Driver) TogglePause() {
	d.paused = !d.paused
	d.logger.Info("Emulation paused", log.String("paused", fmt.Sprint(d.paused)))
}

// Tick runs one timing tick unless the emulation is paused. Only the
// frame is flushed while paused.
func (d *Driver) Tick() error {
	if d.paused {
		return d.renderer.Render(d.vm.Display())
	}
	return d.Advance()
}

// Advance runs one timing tick, also while paused: it hands the key
// snapshot to the VM, executes the instructions of the tick, decrements
// the timers once and flushes the frame.
// VM faults do not fail the tick, they halt the VM and are logged once.
func (d *Driver) Advance() error {
	d.vm.SetKeys(d.keyboard.Keys())

	for i := 0; i < d.instructionsPerTick && !d.vm.Halted(); i++ {
		if err := d.vm.Step(); err != nil {
			break
		}
	}
	d.vm.TickTimers()
	d.ticks++

	d.reportHalt()
	return d.renderer.Render(d.vm.Display())
}

// Done reports whether the driver reached the configured tick limit.
func (d *Driver) Done() bool {
	return d.maxTicks > 0 && d.ticks >= d.maxTicks
}

// Run ticks at the configured tick rate until the context is canceled,
// the tick limit is reached or the VM halts. It returns the fault that
// halted the VM, nil for a deliberate halt.
func (d *Driver) Run(ctx context.Context) error {
	ticker := time.NewTicker(time.Second / time.Duration(d.tickRate))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}

		if err := d.Tick(); err != nil {
			return fmt.Errorf("rendering frame: %w", err)
		}
		if d.vm.Halted() {
			return d.vm.Err()
		}
		if d.Done() {
			return nil
		}
	}
}

func (d *Driver) reportHalt() {
	if !d.vm.Halted() || d.haltLogged {
		return
	}
	d.haltLogged = true

	if err := d.vm.Err(); err != nil {
		d.logger.Error("Program halted",
			log.String("reason", d.vm.HaltReason().String()),
			log.Int("tick", int(d.ticks)),
			log.Err(err))
		return
	}
	d.logger.Info("Program halted",
		log.String("reason", d.vm.HaltReason().String()),
		log.Hex("pc", d.vm.PC()),
		log.Int("tick", int(d.ticks)))
}
