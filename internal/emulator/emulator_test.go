package emulator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ernesto27/gbcore/internal/cartridge"
	"github.com/ernesto27/gbcore/internal/joypad"
)

func newTestEmulator(t *testing.T) *Emulator {
	rom := make([]byte, cartridge.MinROMSize*2)
	cart, err := cartridge.New(rom)
	assert.NoError(t, err)
	e := New(cart)
	e.RealTime = false
	return e
}

func TestNewAppliesPostBootState(t *testing.T) {
	e := newTestEmulator(t)
	assert.Equal(t, uint16(0x0100), e.CPU.PC)
	assert.Equal(t, uint16(0xFFFE), e.CPU.SP)
	assert.True(t, e.CPU.IME)
	assert.Equal(t, uint8(0x91), e.Bus.PPU.LCDC)
}

func TestStepFrameConsumesAtLeastOneFrameOfCycles(t *testing.T) {
	e := newTestEmulator(t)
	// The all-zero ROM decodes as NOP throughout; a harmless instruction
	// stream that still advances the PPU/timer every cycle.
	e.StepFrame()
	assert.GreaterOrEqual(t, e.CPU.Cycles, uint64(CyclesPerFrame))
	assert.GreaterOrEqual(t, uint8(144), e.Bus.PPU.LY, "LY stays within the valid scanline range")
}

func TestStepFrameReportsFrameReadyOncePerVBlankEntry(t *testing.T) {
	e := newTestEmulator(t)
	ready := e.StepFrame()
	assert.True(t, ready, "one call to StepFrame covers a full 70224-cycle frame, so VBlank is always reached")
}

func TestFramebufferReturnsPackedRGB24(t *testing.T) {
	e := newTestEmulator(t)
	buf := e.Framebuffer()
	assert.Len(t, buf, 160*144*3)
}

func TestPressAndReleaseForwardToJoypad(t *testing.T) {
	e := newTestEmulator(t)
	e.Bus.WriteByte(joypad.Addr, 0x20) // select action group (bit 4 low selects actions)
	e.Press(joypad.A)
	assert.Equal(t, uint8(0xEE), e.Bus.ReadByte(joypad.Addr))

	e.Release(joypad.A)
	assert.Equal(t, uint8(0xEF), e.Bus.ReadByte(joypad.Addr))
}

func TestDrainSerialReturnsAndClearsCapturedBytes(t *testing.T) {
	e := newTestEmulator(t)
	e.Bus.WriteByte(0xFF01, 'A')
	e.Bus.WriteByte(0xFF02, 0x81) // start bit set, internal clock

	out := e.DrainSerial()
	assert.Equal(t, []byte{'A'}, out)
	assert.Empty(t, e.DrainSerial(), "second drain is empty once consumed")
}
