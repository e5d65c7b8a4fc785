package cartridge

// BankSelector implements the one bank-switching scheme this core honors:
// a write to 0x2000-0x3FFF stores a 5-bit ROM bank number (0 remapped to
// 1), selecting which 16 KiB window is visible at 0x4000-0x7FFF. All other
// MBC registers (RAM enable, RAM banking, mode select) are accepted and
// ignored — spec.md explicitly excludes advanced cartridge controllers.
type BankSelector struct {
	rom  []byte
	bank uint8
}

// NewBankSelector creates a selector over the given ROM image, starting on
// bank 1 (bank 0 is always mapped at 0x0000-0x3FFF).
func NewBankSelector(rom []byte) *BankSelector {
	return &BankSelector{rom: rom, bank: 1}
}

// ReadFixed reads from the fixed bank-0 window (0x0000-0x3FFF).
func (b *BankSelector) ReadFixed(addr uint16) uint8 {
	if int(addr) < len(b.rom) {
		return b.rom[addr]
	}
	return 0xFF
}

// ReadSwitchable reads from the switchable window (0x4000-0x7FFF) using the
// currently selected bank.
func (b *BankSelector) ReadSwitchable(addr uint16) uint8 {
	offset := int(b.bank)*0x4000 + int(addr-0x4000)
	if offset < len(b.rom) {
		return b.rom[offset]
	}
	return 0xFF
}

// WriteControl handles a CPU write into the 0x0000-0x7FFF MBC register
// space. Only the bank-select window (0x2000-0x3FFF) has an effect.
func (b *BankSelector) WriteControl(addr uint16, value uint8) {
	if addr >= 0x2000 && addr <= 0x3FFF {
		bank := value & 0x1F
		if bank == 0 {
			bank = 1
		}
		b.bank = bank
	}
}

// CurrentBank returns the selected ROM bank number.
func (b *BankSelector) CurrentBank() uint8 { return b.bank }

// Reset returns the selector to bank 1.
func (b *BankSelector) Reset() { b.bank = 1 }
