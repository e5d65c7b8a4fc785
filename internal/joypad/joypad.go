// Package joypad implements the Game Boy's button matrix and its
// memory-mapped P1 register (0xFF00).
//
// P1 multiplexes eight buttons onto four bits: writing to bits 4-5 selects
// the direction group or the button group (active low), and the selected
// group's pressed buttons then appear in bits 0-3 (pressed = 0).
package joypad

// Button identifies one of the eight physical buttons.
type Button int

const (
	Right Button = iota
	Left
	Up
	Down
	A
	B
	Select
	Start
)

// P1 register bit layout. Per spec.md §8 scenario 4 (write 0x20 selects the
// button group and 0x10 selects the direction group), bit 4 is the
// action/button group select and bit 5 is the direction group select —
// both active low, as worked out from the literal read-back values 0xEE
// and 0xDF in that scenario.
const (
	bitRightA   = 0x01 // bit 0
	bitLeftB    = 0x02 // bit 1
	bitUpSel    = 0x04 // bit 2
	bitDownSt   = 0x08 // bit 3
	bitActions  = 0x10 // bit 4: button group select (active low)
	bitDirs     = 0x20 // bit 5: direction group select (active low)
	unusedBits  = 0xC0 // bits 6-7 always read 1
)

// Addr is the memory address of the P1 register.
const Addr uint16 = 0xFF00

// Joypad holds button state and the group-select latches written by the CPU.
type Joypad struct {
	pressed [8]bool // indexed by Button

	selectDirections bool // bit 5 written low: direction group selected
	selectActions    bool // bit 4 written low: action group selected

	interruptPending bool
}

// New creates a joypad with both groups deselected and no buttons pressed.
func New() *Joypad {
	return &Joypad{}
}

// Press marks a button as pressed, raising the joypad interrupt if that
// button's group is currently selected and it was previously released.
func (j *Joypad) Press(b Button) {
	wasPressed := j.pressed[b]
	j.pressed[b] = true
	if !wasPressed && j.groupSelected(b) {
		j.interruptPending = true
	}
}

// Release marks a button as released.
func (j *Joypad) Release(b Button) {
	j.pressed[b] = false
}

func (j *Joypad) groupSelected(b Button) bool {
	if b == Right || b == Left || b == Up || b == Down {
		return j.selectDirections
	}
	return j.selectActions
}

// Read returns the current P1 register value.
func (j *Joypad) Read() uint8 {
	result := uint8(0xFF)
	if j.selectDirections {
		result &^= bitDirs
		if j.pressed[Right] {
			result &^= bitRightA
		}
		if j.pressed[Left] {
			result &^= bitLeftB
		}
		if j.pressed[Up] {
			result &^= bitUpSel
		}
		if j.pressed[Down] {
			result &^= bitDownSt
		}
	}
	if j.selectActions {
		result &^= bitActions
		if j.pressed[A] {
			result &^= bitRightA
		}
		if j.pressed[B] {
			result &^= bitLeftB
		}
		if j.pressed[Select] {
			result &^= bitUpSel
		}
		if j.pressed[Start] {
			result &^= bitDownSt
		}
	}
	return result | unusedBits
}

// Write updates the group-select latches from bits 4-5 of the written value
// (active low: a 0 bit selects that group). Bits 0-3 and 6-7 are ignored.
func (j *Joypad) Write(value uint8) {
	j.selectActions = value&bitActions == 0
	j.selectDirections = value&bitDirs == 0
}

// HasInterrupt reports whether the joypad interrupt latch is set.
func (j *Joypad) HasInterrupt() bool { return j.interruptPending }

// ClearInterrupt clears the joypad interrupt latch.
func (j *Joypad) ClearInterrupt() { j.interruptPending = false }

// Reset returns the joypad to its power-on state.
func (j *Joypad) Reset() {
	j.pressed = [8]bool{}
	j.selectDirections = false
	j.selectActions = false
	j.interruptPending = false
}
