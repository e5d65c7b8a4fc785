package cartridge

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func makeBankedROM(banks int) []byte {
	rom := make([]byte, banks*0x4000)
	for b := 0; b < banks; b++ {
		for i := 0; i < 0x4000; i++ {
			rom[b*0x4000+i] = uint8(b)
		}
	}
	return rom
}

func TestBankZeroRemapsToOne(t *testing.T) {
	b := NewBankSelector(makeBankedROM(4))
	b.WriteControl(0x2000, 0x00)
	assert.Equal(t, uint8(1), b.CurrentBank())
}

func TestBankSelectMasksToFiveBits(t *testing.T) {
	b := NewBankSelector(makeBankedROM(4))
	b.WriteControl(0x2000, 0xE2) // upper three bits are dropped
	assert.Equal(t, uint8(2), b.CurrentBank())
	assert.Equal(t, uint8(2), b.ReadSwitchable(0x4000))
}

func TestFixedWindowAlwaysReadsBankZero(t *testing.T) {
	b := NewBankSelector(makeBankedROM(4))
	b.WriteControl(0x2000, 0x03)
	assert.Equal(t, uint8(0), b.ReadFixed(0x0000))
}

func TestWriteOutsideControlWindowIsIgnored(t *testing.T) {
	b := NewBankSelector(makeBankedROM(4))
	b.WriteControl(0x0000, 0x02)
	assert.Equal(t, uint8(1), b.CurrentBank())
}
