// Package ppu implements the Game Boy Picture Processing Unit: a
// scanline-granularity state machine over OAM Scan / Drawing / H-Blank /
// V-Blank, background/window/sprite compositing, and the LCD register
// file.
//
// The teacher's PPU (internal/ppu/ppu.go) read tile data through a
// VRAMInterface pointing at a separate Tile/TileMap/TilePatternTable
// object graph living in the MMU. This core instead has the PPU own its
// VRAM and OAM as flat byte arrays directly, since nothing else needs to
// address them independently — collapsing that indirection per the
// design note in DESIGN.md.
package ppu

// Display and timing constants (values match the teacher's ppu.go exactly).
const (
	ScreenWidth  = 160
	ScreenHeight = 144

	TotalScanlines    = 154
	CyclesPerScanline = 456
	CyclesPerFrame    = TotalScanlines * CyclesPerScanline

	OAMScanCycles = 80
	DrawingCycles = 172
	HBlankCycles  = CyclesPerScanline - OAMScanCycles - DrawingCycles // 204

	ColorWhite     = 0
	ColorLightGray = 1
	ColorDarkGray  = 2
	ColorBlack     = 3
)

// Mode is the PPU's current rendering phase.
type Mode uint8

const (
	ModeHBlank  Mode = 0
	ModeVBlank  Mode = 1
	ModeOAMScan Mode = 2
	ModeDrawing Mode = 3
)

func (m Mode) String() string {
	switch m {
	case ModeHBlank:
		return "H-Blank"
	case ModeVBlank:
		return "V-Blank"
	case ModeOAMScan:
		return "OAM Scan"
	case ModeDrawing:
		return "Drawing"
	default:
		return "Unknown"
	}
}

// PPU holds the full LCD state: registers, VRAM/OAM, the mode timer, and
// the rendered framebuffer.
type PPU struct {
	VRAM [0x2000]uint8
	OAM  [160]uint8

	LCDC, STAT           uint8
	SCY, SCX             uint8
	LY, LYC              uint8
	BGP, OBP0, OBP1      uint8
	WY, WX               uint8

	Mode       Mode
	cycles     uint16
	windowLine uint8 // internal window line counter, separate from LY

	lcdWasEnabled bool

	// Framebuffer holds palette-applied color indices (0-3), [row][col].
	Framebuffer [ScreenHeight][ScreenWidth]uint8
	// bgColorIndex holds the pre-palette background color index per pixel
	// of the scanline just drawn, needed for sprite BG-priority checks.
	bgColorIndex [ScreenWidth]uint8

	FrameReady bool
}

// New creates a PPU in its documented post-boot state.
func New() *PPU {
	p := &PPU{}
	p.Reset()
	return p
}

// Reset returns the PPU to the documented DMG post-boot state.
func (p *PPU) Reset() {
	p.LCDC = 0x91
	p.STAT = 0x85
	p.SCY, p.SCX = 0, 0
	p.LY, p.LYC = 0, 0
	p.BGP = 0xFC
	p.OBP0, p.OBP1 = 0xFF, 0xFF
	p.WY, p.WX = 0, 0
	p.Mode = ModeOAMScan
	p.cycles = 0
	p.windowLine = 0
	p.lcdWasEnabled = true
	p.FrameReady = false
	for y := range p.Framebuffer {
		for x := range p.Framebuffer[y] {
			p.Framebuffer[y][x] = ColorWhite
		}
	}
}

func (p *PPU) lcdEnabled() bool { return p.LCDC&0x80 != 0 }

// Tick advances the PPU by tCycles T-cycles, driving the mode state
// machine and rendering a scanline's worth of pixels at the Drawing→
// H-Blank transition. It returns (statInterrupt, vblankInterrupt): whether
// a STAT condition fired and whether the VBlank interrupt should latch.
func (p *PPU) Tick(tCycles uint8) (statInterrupt bool, vblankInterrupt bool) {
	if !p.lcdEnabled() {
		if p.lcdWasEnabled {
			p.LY = 0
			p.cycles = 0
			p.windowLine = 0
			p.Mode = ModeHBlank
			p.updateSTATMode()
		}
		p.lcdWasEnabled = false
		return false, false
	}
	if !p.lcdWasEnabled {
		// LCD just turned on: restart at the top of the frame.
		p.LY = 0
		p.cycles = 0
		p.windowLine = 0
		p.Mode = ModeOAMScan
		p.updateSTATMode()
	}
	p.lcdWasEnabled = true

	p.cycles += uint16(tCycles)

	switch p.Mode {
	case ModeOAMScan:
		if p.cycles >= OAMScanCycles {
			p.cycles -= OAMScanCycles
			p.Mode = ModeDrawing
			statInterrupt = p.updateSTATMode()
		}
	case ModeDrawing:
		if p.cycles >= DrawingCycles {
			p.cycles -= DrawingCycles
			p.renderScanline()
			p.Mode = ModeHBlank
			statInterrupt = p.updateSTATMode()
		}
	case ModeHBlank:
		if p.cycles >= HBlankCycles {
			p.cycles -= HBlankCycles
			p.LY++
			if p.LY == ScreenHeight {
				p.Mode = ModeVBlank
				vblankInterrupt = true
				p.FrameReady = true
			} else {
				p.Mode = ModeOAMScan
			}
			statInterrupt = p.updateSTATMode() || statInterrupt
			statInterrupt = p.updateLYC() || statInterrupt
		}
	case ModeVBlank:
		if p.cycles >= CyclesPerScanline {
			p.cycles -= CyclesPerScanline
			p.LY++
			if p.LY > TotalScanlines-1 {
				p.LY = 0
				p.windowLine = 0
				p.Mode = ModeOAMScan
			}
			statInterrupt = p.updateSTATMode() || statInterrupt
			statInterrupt = p.updateLYC() || statInterrupt
		}
	}

	return statInterrupt, vblankInterrupt
}

// updateSTATMode writes the mode bits into STAT and reports whether the
// newly entered mode's interrupt source is enabled.
func (p *PPU) updateSTATMode() bool {
	p.STAT = p.STAT&0xFC | uint8(p.Mode)
	switch p.Mode {
	case ModeHBlank:
		return p.STAT&0x08 != 0
	case ModeVBlank:
		return p.STAT&0x10 != 0
	case ModeOAMScan:
		return p.STAT&0x20 != 0
	default:
		return false
	}
}

// updateLYC refreshes the LYC=LY coincidence flag and reports whether its
// interrupt source is enabled and freshly matching.
func (p *PPU) updateLYC() bool {
	match := p.LY == p.LYC
	if match {
		p.STAT |= 0x04
	} else {
		p.STAT &^= 0x04
	}
	return match && p.STAT&0x40 != 0
}
