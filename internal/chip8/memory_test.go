package chip8

import (
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestMemory_ReadWrite(t *testing.T) {
	var m Memory
	assert.NoError(t, m.Write(0xFFF, 0x42))
	v, err := m.Read(0xFFF)
	assert.NoError(t, err)
	assert.Equal(t, byte(0x42), v)

	_, err = m.Read(0x1000)
	assert.True(t, errors.Is(err, ErrOutOfBounds))
	err = m.Write(0xFFFF, 1)
	assert.True(t, errors.Is(err, ErrOutOfBounds))
}

func TestMemory_Slice(t *testing.T) {
	var m Memory
	b, err := m.Slice(0xFFE, 2)
	assert.NoError(t, err)
	assert.Len(t, b, 2)

	_, err = m.Slice(0xFFE, 3)
	assert.True(t, errors.Is(err, ErrOutOfBounds))

	b, err = m.Slice(0x100, 0)
	assert.NoError(t, err)
	assert.Len(t, b, 0)
}

func TestMemory_Load(t *testing.T) {
	var m Memory
	assert.NoError(t, m.Load(0x200, []byte{1, 2, 3}))
	v, _ := m.Read(0x202)
	assert.Equal(t, byte(3), v)

	err := m.Load(0xFFF, []byte{1, 2})
	assert.True(t, errors.Is(err, ErrOutOfBounds))
	v, _ = m.Read(0xFFF)
	assert.Equal(t, byte(0), v)
}

func TestRegisters(t *testing.T) {
	var r Registers
	assert.NoError(t, r.Set(0xE, 0x7F))
	v, err := r.Get(0xE)
	assert.NoError(t, err)
	assert.Equal(t, byte(0x7F), v)

	_, err = r.Get(16)
	assert.True(t, errors.Is(err, ErrOutOfBounds))
	assert.True(t, errors.Is(r.Set(16, 0), ErrOutOfBounds))

	r.SetFlag(true)
	v, _ = r.Get(FlagRegister)
	assert.Equal(t, byte(1), v)
	r.SetFlag(false)
	v, _ = r.Get(FlagRegister)
	assert.Equal(t, byte(0), v)

	r.SetIndex(0xFFFF)
	assert.Equal(t, uint16(0xFFFF), r.Index())
}

func TestStack(t *testing.T) {
	var s Stack
	_, err := s.Pop()
	assert.True(t, errors.Is(err, ErrStackUnderflow))

	for i := uint16(0); i < 20; i++ {
		s.Push(0x200 + i*2)
	}
	assert.Equal(t, 20, s.Depth())

	addr, err := s.Pop()
	assert.NoError(t, err)
	assert.Equal(t, uint16(0x200+19*2), addr)
	assert.Equal(t, 19, s.Depth())
}

func TestTimers(t *testing.T) {
	timers := Timers{Delay: 1, Sound: 3}
	timers.Tick()
	assert.Equal(t, byte(0), timers.Delay)
	assert.Equal(t, byte(2), timers.Sound)
	timers.Tick()
	assert.Equal(t, byte(0), timers.Delay)
	assert.Equal(t, byte(1), timers.Sound)
}

func TestKeypad(t *testing.T) {
	var k Keypad
	_, ok := k.JustPressed()
	assert.False(t, ok)

	var keys [KeyCount]bool
	keys[0xF] = true
	keys[0x3] = true
	k.Update(keys)
	assert.True(t, k.Pressed(0xF))
	assert.True(t, k.Pressed(0x1F))
	assert.False(t, k.Pressed(0x0))

	key, ok := k.JustPressed()
	assert.True(t, ok)
	assert.Equal(t, byte(0x3), key)

	k.Update(keys)
	_, ok = k.JustPressed()
	assert.False(t, ok)
}
