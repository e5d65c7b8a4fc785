package interrupt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewControllerStartsClear(t *testing.T) {
	c := New()
	assert.Equal(t, uint8(0), c.GetIE())
	assert.Equal(t, uint8(0xE0), c.GetIF(), "unused IF bits read as 1")
}

func TestSetIEMasksToValidBits(t *testing.T) {
	c := New()
	c.SetIE(0xFF)
	assert.Equal(t, ValidMask, c.GetIE())
}

func TestRequestAndClear(t *testing.T) {
	c := New()
	c.Request(Timer)
	assert.True(t, c.IF&TimerMask != 0)
	c.Clear(Timer)
	assert.False(t, c.IF&TimerMask != 0)
}

func TestPendingRespectsPriorityOrder(t *testing.T) {
	c := New()
	c.SetIE(ValidMask)
	c.Request(Joypad)
	c.Request(VBlank)
	c.Request(Timer)

	kind, ok := c.Pending()
	assert.True(t, ok)
	assert.Equal(t, uint8(VBlank), kind, "VBlank has the highest priority")
}

func TestPendingRequiresBothIEAndIF(t *testing.T) {
	c := New()
	c.Request(Timer) // IF set, IE not
	_, ok := c.Pending()
	assert.False(t, ok)

	c.SetIE(TimerMask)
	kind, ok := c.Pending()
	assert.True(t, ok)
	assert.Equal(t, uint8(Timer), kind)
}

func TestVectorAddresses(t *testing.T) {
	assert.Equal(t, uint16(0x0040), Vector(VBlank))
	assert.Equal(t, uint16(0x0060), Vector(Joypad))
}

func TestReset(t *testing.T) {
	c := New()
	c.SetIE(0xFF)
	c.Request(VBlank)
	c.Reset()
	assert.Equal(t, uint8(0), c.IE)
	assert.Equal(t, uint8(0), c.IF)
}
