// Package memory implements the Game Boy's 64 KiB address bus: ROM/RAM
// decoding, echo/unusable regions, and dispatch of I/O register reads and
// writes to the PPU, Timer, Serial, Joypad, DMA controller and interrupt
// controller.
//
// The teacher's MMU (internal/memory/mmu.go) was an 11-line bare
// [0x10000]uint8 array; all peripheral wiring happened ad hoc inside
// emulator.go. This Bus generalizes that into the real decode table the
// spec requires, since nothing else in the core owns that responsibility.
package memory

import (
	"fmt"

	"github.com/ernesto27/gbcore/internal/cartridge"
	"github.com/ernesto27/gbcore/internal/dma"
	"github.com/ernesto27/gbcore/internal/interrupt"
	"github.com/ernesto27/gbcore/internal/joypad"
	"github.com/ernesto27/gbcore/internal/ppu"
	"github.com/ernesto27/gbcore/internal/serial"
	"github.com/ernesto27/gbcore/internal/timer"
)

// Address-space region boundaries (spec.md §4.6).
const (
	romFixedStart    = 0x0000
	romFixedEnd      = 0x3FFF
	romSwitchStart   = 0x4000
	romSwitchEnd     = 0x7FFF
	vramStart        = 0x8000
	vramEnd          = 0x9FFF
	cartRAMStart     = 0xA000
	cartRAMEnd       = 0xBFFF
	wramStart        = 0xC000
	wramEnd          = 0xDFFF
	echoStart        = 0xE000
	echoEnd          = 0xFDFF
	oamStart         = 0xFE00
	oamEnd           = 0xFE9F
	unusableStart    = 0xFEA0
	unusableEnd      = 0xFEFF
	ioStart          = 0xFF00
	ioEnd            = 0xFF7F
	hramStart        = 0xFF80
	hramEnd          = 0xFFFE
)

// Bus wires together every addressable component of the DMG.
type Bus struct {
	Cart *cartridge.Cartridge
	Bank *cartridge.BankSelector

	CartRAM [8 * 1024]uint8
	WRAM    [8 * 1024]uint8
	HRAM    [127]uint8

	PPU     *ppu.PPU
	Timer   *timer.Timer
	Serial  *serial.Serial
	Joypad  *joypad.Joypad
	DMA     *dma.Controller
	IRQ     *interrupt.Controller

	Trace fmt.Stringer // unused placeholder kept for symmetry with CPU.Trace; NewBus leaves it nil
}

// NewBus assembles a Bus around an already-parsed cartridge.
func NewBus(cart *cartridge.Cartridge) *Bus {
	return &Bus{
		Cart:   cart,
		Bank:   cartridge.NewBankSelector(cart.ROMData),
		PPU:    ppu.New(),
		Timer:  timer.New(),
		Serial: serial.New(),
		Joypad: joypad.New(),
		DMA:    dma.New(),
		IRQ:    interrupt.New(),
	}
}

// PostBootInit pushes every peripheral to its documented post-boot state
// and applies the post-boot I/O register defaults (spec.md §3 LIFECYCLE),
// suppressing the side effects a normal CPU write would trigger.
func (b *Bus) PostBootInit() {
	b.IRQ.Reset()
	b.Timer.Reset()
	b.Serial.Reset()
	b.Joypad.Reset()
	b.DMA.Reset()
	b.PPU.Reset()
	b.Bank.Reset()

	for _, kv := range postBootIODefaults {
		b.writeIORaw(kv.addr, kv.value)
	}
}

type ioDefault struct {
	addr  uint16
	value uint8
}

// postBootIODefaults are the documented post-boot register contents that a
// real DMG boot ROM leaves behind (spec.md §3), applied directly rather
// than by replaying CPU writes (which would wrongly trigger DMA/serial/
// joypad-select side effects).
var postBootIODefaults = []ioDefault{
	{joypad.Addr, 0xCF},
	{serial.SBAddr, 0x00},
	{serial.SCAddr, 0x7E},
	{timer.TIMAAddr, 0x00},
	{timer.TMAAddr, 0x00},
	{timer.TACAddr, 0xF8},
	{interrupt.IFAddr, 0xE1},
	{ppu.LCDCAddr, 0x91},
	{ppu.STATAddr, 0x85},
	{ppu.SCYAddr, 0x00},
	{ppu.SCXAddr, 0x00},
	{ppu.LYAddr, 0x00},
	{ppu.LYCAddr, 0x00},
	{ppu.BGPAddr, 0xFC},
	{ppu.OBP0Addr, 0xFF},
	{ppu.OBP1Addr, 0xFF},
	{ppu.WYAddr, 0x00},
	{ppu.WXAddr, 0x00},
	{interrupt.IEAddr, 0x00},
}

// writeIORaw writes directly to a register's backing store, bypassing the
// side-effecting dispatch in WriteByte (used only for PostBootInit).
func (b *Bus) writeIORaw(addr uint16, value uint8) {
	switch {
	case joypad.Addr == addr:
		b.Joypad.Write(value)
	case serial.SBAddr == addr:
		b.Serial.WriteSB(value)
	case serial.SCAddr == addr:
		b.Serial.WriteSC(value)
	case timer.IsRegister(addr):
		b.Timer.WriteRegister(addr, value)
	case interrupt.IFAddr == addr:
		b.IRQ.SetIF(value)
	case interrupt.IEAddr == addr:
		b.IRQ.SetIE(value)
	case ppu.IsRegister(addr):
		b.PPU.WriteRegister(addr, value)
	}
}

// Tick advances every cycle-driven peripheral by the given T-cycle count
// and propagates their interrupt latches into the shared IF register. The
// emulator's frame loop calls this once per CPU Step.
func (b *Bus) Tick(tCycles uint8) {
	b.Timer.Tick(tCycles)
	if b.Timer.HasInterrupt() {
		b.IRQ.Request(interrupt.Timer)
		b.Timer.ClearInterrupt()
	}

	b.DMA.Tick(tCycles)

	stat, vblank := b.PPU.Tick(tCycles)
	if vblank {
		b.IRQ.Request(interrupt.VBlank)
	}
	if stat {
		b.IRQ.Request(interrupt.LCDStat)
	}

	if b.Joypad.HasInterrupt() {
		b.IRQ.Request(interrupt.Joypad)
		b.Joypad.ClearInterrupt()
	}
}

// PendingInterrupt and ClearInterrupt satisfy cpu.InterruptSource.
func (b *Bus) PendingInterrupt() (kind uint8, ok bool) { return b.IRQ.Pending() }
func (b *Bus) ClearInterrupt(kind uint8)               { b.IRQ.Clear(kind) }

// ReadByte implements cpu.Bus / dma.MemoryInterface.
func (b *Bus) ReadByte(addr uint16) uint8 {
	switch {
	case addr <= romFixedEnd:
		return b.Bank.ReadFixed(addr)
	case addr <= romSwitchEnd:
		return b.Bank.ReadSwitchable(addr)
	case addr <= vramEnd:
		return b.PPU.ReadVRAM(addr - vramStart)
	case addr <= cartRAMEnd:
		return b.CartRAM[addr-cartRAMStart]
	case addr <= wramEnd:
		return b.WRAM[addr-wramStart]
	case addr <= echoEnd:
		return b.WRAM[addr-echoStart]
	case addr <= oamEnd:
		return b.PPU.ReadOAM(uint8(addr - oamStart))
	case addr <= unusableEnd:
		return 0xFF
	case addr <= ioEnd:
		return b.readIO(addr)
	case addr <= hramEnd:
		return b.HRAM[addr-hramStart]
	case addr == interrupt.IEAddr:
		return b.IRQ.GetIE()
	default:
		return 0xFF
	}
}

// WriteByte implements cpu.Bus.
func (b *Bus) WriteByte(addr uint16, value uint8) {
	switch {
	case addr <= romSwitchEnd:
		b.Bank.WriteControl(addr, value)
	case addr <= vramEnd:
		b.PPU.WriteVRAM(addr-vramStart, value)
	case addr <= cartRAMEnd:
		b.CartRAM[addr-cartRAMStart] = value
	case addr <= wramEnd:
		b.WRAM[addr-wramStart] = value
	case addr <= echoEnd:
		b.WRAM[addr-echoStart] = value
	case addr <= oamEnd:
		if !b.DMA.Active {
			b.PPU.WriteOAM(uint8(addr-oamStart), value)
		}
	case addr <= unusableEnd:
		// writes silently discarded
	case addr <= ioEnd:
		b.writeIO(addr, value)
	case addr <= hramEnd:
		b.HRAM[addr-hramStart] = value
	case addr == interrupt.IEAddr:
		b.IRQ.SetIE(value)
	}
}

// WriteOAMRaw implements dma.MemoryInterface: OAM-DMA writes bypass the
// BlocksOAMWrites gate that a normal CPU write is subject to.
func (b *Bus) WriteOAMRaw(offset uint8, value uint8) {
	b.PPU.WriteOAM(offset, value)
}

func (b *Bus) readIO(addr uint16) uint8 {
	switch {
	case addr == joypad.Addr:
		return b.Joypad.Read()
	case addr == serial.SBAddr:
		return b.Serial.ReadSB()
	case addr == serial.SCAddr:
		return b.Serial.ReadSC()
	case timer.IsRegister(addr):
		return b.Timer.ReadRegister(addr)
	case addr == interrupt.IFAddr:
		return b.IRQ.GetIF()
	case ppu.IsRegister(addr):
		return b.PPU.ReadRegister(addr)
	default:
		return 0xFF
	}
}

func (b *Bus) writeIO(addr uint16, value uint8) {
	switch {
	case addr == joypad.Addr:
		b.Joypad.Write(value)
	case addr == serial.SBAddr:
		b.Serial.WriteSB(value)
	case addr == serial.SCAddr:
		b.Serial.WriteSC(value)
	case timer.IsRegister(addr):
		b.Timer.WriteRegister(addr, value)
	case addr == interrupt.IFAddr:
		b.IRQ.SetIF(value)
	case addr == dma.Register:
		b.DMA.Start(value, b)
	case ppu.IsRegister(addr):
		b.PPU.WriteRegister(addr, value)
	}
}
