package ppu

// This file composites one scanline (background, window, then sprites)
// directly from the flat VRAM/OAM arrays. The teacher split the same
// three passes across background.go/window.go/sprite.go built on a
// Tile/TileMap object graph; the passes are kept separate here too, just
// reading tile bytes straight out of VRAM instead of through that graph.

const (
	lcdcBGWindowEnable = 0x01
	lcdcSpriteEnable   = 0x02
	lcdcSpriteSize     = 0x04
	lcdcBGTileMap      = 0x08
	lcdcTileData       = 0x10
	lcdcWindowEnable   = 0x20
	lcdcWindowTileMap  = 0x40
)

func (p *PPU) renderScanline() {
	line := p.LY
	if line >= ScreenHeight {
		return
	}

	bgPalette := DecodePalette(p.BGP)

	if p.LCDC&lcdcBGWindowEnable != 0 {
		p.renderBackgroundLine(line, bgPalette)
	} else {
		for x := 0; x < ScreenWidth; x++ {
			p.Framebuffer[line][x] = ColorWhite
			p.bgColorIndex[x] = 0
		}
	}

	windowDrawnThisLine := false
	if p.LCDC&lcdcWindowEnable != 0 && p.LCDC&lcdcBGWindowEnable != 0 && line >= p.WY && p.WX <= 166 {
		p.renderWindowLine(line, bgPalette)
		windowDrawnThisLine = true
	}
	if windowDrawnThisLine {
		p.windowLine++
	}

	if p.LCDC&lcdcSpriteEnable != 0 {
		p.renderSpritesLine(line)
	}
}

func (p *PPU) tileDataAddr(tileID uint8) uint16 {
	if p.LCDC&lcdcTileData != 0 {
		return 0x8000 + uint16(tileID)*16
	}
	return uint16(int32(0x9000) + int32(int8(tileID))*16)
}

// tileRowColors returns the 8 raw (pre-palette) color indices for one row
// of an 8x8 tile, stored at VRAM-relative base address for the given
// in-tile row (0-7).
func (p *PPU) tileRowColors(base uint16, row uint8) [8]uint8 {
	lo := p.VRAM[base+uint16(row)*2-0x8000]
	hi := p.VRAM[base+uint16(row)*2+1-0x8000]
	var colors [8]uint8
	for bit := 0; bit < 8; bit++ {
		shift := 7 - bit
		lowBit := (lo >> shift) & 1
		highBit := (hi >> shift) & 1
		colors[bit] = highBit<<1 | lowBit
	}
	return colors
}

func (p *PPU) renderBackgroundLine(line uint8, palette [4]uint8) {
	mapBase := uint16(0x9800)
	if p.LCDC&lcdcBGTileMap != 0 {
		mapBase = 0x9C00
	}

	scrolledY := line + p.SCY
	tileRow := scrolledY / 8
	inTileY := scrolledY % 8

	for x := 0; x < ScreenWidth; x++ {
		scrolledX := uint8(x) + p.SCX
		tileCol := scrolledX / 8
		inTileX := scrolledX % 8

		mapAddr := mapBase + uint16(tileRow)*32 + uint16(tileCol)
		tileID := p.VRAM[mapAddr-0x8000]
		tileAddr := p.tileDataAddr(tileID)
		colors := p.tileRowColors(tileAddr, inTileY)

		raw := colors[inTileX]
		p.bgColorIndex[x] = raw
		p.Framebuffer[line][x] = ApplyPalette(raw, palette)
	}
}

func (p *PPU) renderWindowLine(line uint8, palette [4]uint8) {
	mapBase := uint16(0x9800)
	if p.LCDC&lcdcWindowTileMap != 0 {
		mapBase = 0x9C00
	}

	tileRow := p.windowLine / 8
	inTileY := p.windowLine % 8
	windowStartX := int(p.WX) - 7

	for x := 0; x < ScreenWidth; x++ {
		screenX := x - windowStartX
		if screenX < 0 {
			continue
		}
		tileCol := uint8(screenX) / 8
		inTileX := uint8(screenX) % 8

		mapAddr := mapBase + uint16(tileRow)*32 + uint16(tileCol)
		tileID := p.VRAM[mapAddr-0x8000]
		tileAddr := p.tileDataAddr(tileID)
		colors := p.tileRowColors(tileAddr, inTileY)

		raw := colors[inTileX]
		p.bgColorIndex[x] = raw
		p.Framebuffer[line][x] = ApplyPalette(raw, palette)
	}
}

// oamSprite is a parsed view of one 4-byte OAM entry.
type oamSprite struct {
	y, x, tileID, flags uint8
}

const (
	spriteFlagPriority = 0x80 // 1 = behind BG colors 1-3
	spriteFlagFlipY    = 0x40
	spriteFlagFlipX    = 0x20
	spriteFlagPalette  = 0x10
)

func (p *PPU) renderSpritesLine(line uint8) {
	height := uint8(8)
	if p.LCDC&lcdcSpriteSize != 0 {
		height = 16
	}

	var visible []oamSprite
	for i := 0; i < 40 && len(visible) < 10; i++ {
		base := i * 4
		y := p.OAM[base]
		screenY := int(y) - 16
		if int(line) < screenY || int(line) >= screenY+int(height) {
			continue
		}
		visible = append(visible, oamSprite{
			y:      y,
			x:      p.OAM[base+1],
			tileID: p.OAM[base+2],
			flags:  p.OAM[base+3],
		})
	}

	// Sprites earlier in OAM order win overlap: paint in OAM order (the
	// selection loop above already preserves it) and never overwrite a
	// pixel an earlier sprite already painted non-transparently.
	var covered [ScreenWidth]bool
	for _, s := range visible {
		p.drawSprite(s, line, height, &covered)
	}
}

func (p *PPU) drawSprite(s oamSprite, line uint8, height uint8, covered *[ScreenWidth]bool) {
	screenY := int(s.y) - 16
	screenX := int(s.x) - 8
	row := uint8(int(line) - screenY)
	flipY := s.flags&spriteFlagFlipY != 0
	flipX := s.flags&spriteFlagFlipX != 0
	behindBG := s.flags&spriteFlagPriority != 0

	tileID := s.tileID
	if height == 16 {
		tileID &^= 0x01
	}

	spriteRow := row
	if flipY {
		spriteRow = height - 1 - row
	}

	tileOffset := uint16(0)
	if spriteRow >= 8 {
		tileOffset = 1
		spriteRow -= 8
	}
	tileAddr := 0x8000 + uint16(tileID+uint8(tileOffset))*16
	colors := p.tileRowColors(tileAddr, spriteRow)

	palette := DecodePalette(p.OBP0)
	if s.flags&spriteFlagPalette != 0 {
		palette = DecodePalette(p.OBP1)
	}

	for col := 0; col < 8; col++ {
		x := screenX + col
		if x < 0 || x >= ScreenWidth {
			continue
		}
		if covered[x] {
			continue // an earlier (higher OAM-priority) sprite already painted here
		}
		srcCol := col
		if flipX {
			srcCol = 7 - col
		}
		raw := colors[srcCol]
		if raw == 0 {
			continue // sprite color 0 is always transparent
		}
		covered[x] = true
		if behindBG && p.bgColorIndex[x] != 0 {
			continue
		}
		p.Framebuffer[line][x] = ApplyPalette(raw, palette)
	}
}
