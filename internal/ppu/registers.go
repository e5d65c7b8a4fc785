package ppu

// LCD register addresses, as memory-mapped at 0xFF40-0xFF4B.
const (
	LCDCAddr uint16 = 0xFF40
	STATAddr uint16 = 0xFF41
	SCYAddr  uint16 = 0xFF42
	SCXAddr  uint16 = 0xFF43
	LYAddr   uint16 = 0xFF44
	LYCAddr  uint16 = 0xFF45
	BGPAddr  uint16 = 0xFF47
	OBP0Addr uint16 = 0xFF48
	OBP1Addr uint16 = 0xFF49
	WYAddr   uint16 = 0xFF4A
	WXAddr   uint16 = 0xFF4B
)

// IsRegister reports whether addr falls within the PPU's register block.
func IsRegister(addr uint16) bool {
	switch addr {
	case LCDCAddr, STATAddr, SCYAddr, SCXAddr, LYAddr, LYCAddr, BGPAddr, OBP0Addr, OBP1Addr, WYAddr, WXAddr:
		return true
	default:
		return false
	}
}

// ReadRegister reads one of the PPU's memory-mapped registers.
func (p *PPU) ReadRegister(addr uint16) uint8 {
	switch addr {
	case LCDCAddr:
		return p.LCDC
	case STATAddr:
		return p.STAT | 0x80 // bit 7 always reads 1
	case SCYAddr:
		return p.SCY
	case SCXAddr:
		return p.SCX
	case LYAddr:
		return p.LY
	case LYCAddr:
		return p.LYC
	case BGPAddr:
		return p.BGP
	case OBP0Addr:
		return p.OBP0
	case OBP1Addr:
		return p.OBP1
	case WYAddr:
		return p.WY
	case WXAddr:
		return p.WX
	default:
		return 0xFF
	}
}

// WriteRegister writes one of the PPU's memory-mapped registers. LY is
// read-only and ignores writes; STAT only exposes its interrupt-enable
// bits 3-6 to the CPU, the mode and LYC-flag bits being PPU-owned.
func (p *PPU) WriteRegister(addr uint16, value uint8) {
	switch addr {
	case LCDCAddr:
		p.LCDC = value
	case STATAddr:
		p.STAT = p.STAT&0x07 | value&0x78
	case SCYAddr:
		p.SCY = value
	case SCXAddr:
		p.SCX = value
	case LYAddr:
		// read-only
	case LYCAddr:
		p.LYC = value
	case BGPAddr:
		p.BGP = value
	case OBP0Addr:
		p.OBP0 = value
	case OBP1Addr:
		p.OBP1 = value
	case WYAddr:
		p.WY = value
	case WXAddr:
		p.WX = value
	}
}

// ReadVRAM/WriteVRAM/ReadOAM/WriteOAM give the bus raw access to video
// memory. OAM-DMA lockout is the bus's and DMA controller's
// responsibility; the Mode-3 VRAM write lockout is checked here since the
// PPU already owns Mode.

func (p *PPU) ReadVRAM(offset uint16) uint8 { return p.VRAM[offset] }

// WriteVRAM ignores the write while the PPU is in Drawing (mode 3), when
// the real hardware's pixel pipeline has exclusive access to VRAM.
func (p *PPU) WriteVRAM(offset uint16, v uint8) {
	if p.Mode == ModeDrawing {
		return
	}
	p.VRAM[offset] = v
}

func (p *PPU) ReadOAM(offset uint8) uint8     { return p.OAM[offset] }
func (p *PPU) WriteOAM(offset uint8, v uint8) { p.OAM[offset] = v }
