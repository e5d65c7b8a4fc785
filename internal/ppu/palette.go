package ppu

// RGB is a display color with 8-bit channels.
type RGB struct{ R, G, B uint8 }

// GameBoyPalette reproduces the DMG LCD's characteristic greenish tint.
var GameBoyPalette = [4]RGB{
	{155, 188, 15},
	{139, 172, 15},
	{48, 98, 48},
	{15, 56, 15},
}

// GrayscalePalette is a neutral alternative for modern displays.
var GrayscalePalette = [4]RGB{
	{255, 255, 255},
	{170, 170, 170},
	{85, 85, 85},
	{0, 0, 0},
}

// DecodePalette expands a palette register (BGP/OBP0/OBP1) into its four
// 2-bit shade mappings, indexed by raw tile color 0-3.
func DecodePalette(value uint8) [4]uint8 {
	return [4]uint8{
		value & 0x03,
		(value >> 2) & 0x03,
		(value >> 4) & 0x03,
		(value >> 6) & 0x03,
	}
}

// ApplyPalette maps a raw tile color index through a decoded palette.
func ApplyPalette(rawColor uint8, palette [4]uint8) uint8 {
	if rawColor > 3 {
		rawColor = 3
	}
	return palette[rawColor]
}

// RGBFor converts a final (post-palette) color index to a display color.
func RGBFor(colorIndex uint8, useGameBoyColors bool) RGB {
	if colorIndex > 3 {
		colorIndex = 3
	}
	if useGameBoyColors {
		return GameBoyPalette[colorIndex]
	}
	return GrayscalePalette[colorIndex]
}

// RenderRGB converts the full framebuffer of palette-applied color indices
// into a packed RGB24 buffer (row-major, 3 bytes per pixel), the format
// internal/display hands to SDL2's streaming texture.
func (p *PPU) RenderRGB(useGameBoyColors bool) []byte {
	out := make([]byte, ScreenWidth*ScreenHeight*3)
	i := 0
	for y := 0; y < ScreenHeight; y++ {
		for x := 0; x < ScreenWidth; x++ {
			rgb := RGBFor(p.Framebuffer[y][x], useGameBoyColors)
			out[i] = rgb.R
			out[i+1] = rgb.G
			out[i+2] = rgb.B
			i += 3
		}
	}
	return out
}
