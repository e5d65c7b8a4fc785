package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ernesto27/gbcore/internal/cartridge"
	"github.com/ernesto27/gbcore/internal/interrupt"
)

func newTestBus(t *testing.T) *Bus {
	rom := make([]byte, cartridge.MinROMSize*2)
	cart, err := cartridge.New(rom)
	assert.NoError(t, err)
	b := NewBus(cart)
	b.PostBootInit()
	return b
}

func TestWRAMReadWrite(t *testing.T) {
	b := newTestBus(t)
	b.WriteByte(0xC000, 0x42)
	assert.Equal(t, uint8(0x42), b.ReadByte(0xC000))
}

func TestEchoRegionMirrorsWRAM(t *testing.T) {
	b := newTestBus(t)
	b.WriteByte(0xC010, 0x99)
	assert.Equal(t, uint8(0x99), b.ReadByte(0xE010))
}

func TestUnusableRegionReadsFF(t *testing.T) {
	b := newTestBus(t)
	assert.Equal(t, uint8(0xFF), b.ReadByte(0xFEA0))
}

func TestHRAMReadWrite(t *testing.T) {
	b := newTestBus(t)
	b.WriteByte(0xFF90, 0x11)
	assert.Equal(t, uint8(0x11), b.ReadByte(0xFF90))
}

func TestPostBootIODefaults(t *testing.T) {
	b := newTestBus(t)
	assert.Equal(t, uint8(0x91), b.ReadByte(0xFF40), "LCDC post-boot default")
	assert.Equal(t, uint8(0xE1), b.ReadByte(0xFF0F), "IF post-boot default")
}

func TestOAMDMATriggersImmediateCopy(t *testing.T) {
	b := newTestBus(t)
	for i := 0; i < 160; i++ {
		b.WRAM[i] = uint8(i)
	}
	b.WriteByte(0xFF46, 0xC0) // source 0xC000

	for i := 0; i < 160; i++ {
		assert.Equal(t, uint8(i), b.ReadByte(0xFE00+uint16(i)))
	}
}

func TestOAMReadsNotGatedDuringDMABusyWindow(t *testing.T) {
	// spec §4.2: reads during the busy window return the stored value.
	b := newTestBus(t)
	b.WRAM[0] = 0x01
	b.WRAM[0x9F] = 0xA0
	b.WriteByte(0xFF46, 0xC0)

	assert.Equal(t, uint8(0x01), b.ReadByte(0xFE00))
	assert.Equal(t, uint8(0xA0), b.ReadByte(0xFE9F))
}

func TestOAMWritesBlockedDuringDMABusyWindow(t *testing.T) {
	b := newTestBus(t)
	b.WriteByte(0xFF46, 0xC0)
	b.WriteByte(0xFE00, 0x77) // should be suppressed, DMA is active
	assert.NotEqual(t, uint8(0x77), b.ReadByte(0xFE00))
}

func TestBankSwitchAffectsSwitchableWindow(t *testing.T) {
	rom := make([]byte, cartridge.MinROMSize*4)
	for i := 0x4000; i < 0x8000; i++ {
		rom[i] = uint8(1) // bank 1 content
	}
	for i := 0x8000; i < 0xC000; i++ {
		rom[i] = uint8(2) // bank 2 content
	}
	cart, _ := cartridge.New(rom)
	b := NewBus(cart)

	assert.Equal(t, uint8(1), b.ReadByte(0x4000))
	b.WriteByte(0x2000, 0x02)
	assert.Equal(t, uint8(2), b.ReadByte(0x4000))
}

func TestTimerInterruptPropagatesToIF(t *testing.T) {
	b := newTestBus(t)
	b.WriteByte(0xFF06, 0x00) // TMA
	b.WriteByte(0xFF07, 0x05) // enabled, fast clock
	b.WriteByte(0xFF05, 0xFF) // TIMA
	b.WriteByte(0xFF04, 0x00) // reset DIV/counter

	for i := 0; i < 20; i++ {
		b.Tick(1)
	}
	assert.True(t, b.IRQ.GetIF()&interrupt.TimerMask != 0)
}

func TestPendingInterruptAndClearSatisfyCPUInterface(t *testing.T) {
	b := newTestBus(t)
	b.IRQ.SetIE(interrupt.VBlankMask)
	b.IRQ.Request(interrupt.VBlank)

	kind, ok := b.PendingInterrupt()
	assert.True(t, ok)
	assert.Equal(t, uint8(interrupt.VBlank), kind)

	b.ClearInterrupt(kind)
	_, ok = b.PendingInterrupt()
	assert.False(t, ok)
}
