package cpu

import "github.com/ernesto27/gbcore/internal/interrupt"

const interruptServiceCycles = 20

// Step executes exactly one instruction (or services one interrupt, or
// idles one HALT tick) and returns the number of T-cycles consumed.
//
// An EI executed on the previous Step sets IME only once this Step has
// finished, so the instruction after EI always runs before any interrupt.
// Within the Step, a HALT'd CPU checks for a wake condition, then a
// pending+enabled interrupt is serviced in preference to fetching the next
// opcode.
func (c *CPU) Step(bus Bus, irq InterruptSource) uint8 {
	if c.eiPending {
		// A DI (or an interrupt dispatch) during this Step clears eiPending
		// and so cancels the enable.
		defer func() {
			if c.eiPending {
				c.eiPending = false
				c.IME = true
			}
		}()
	}

	if c.halted {
		if _, pending := irq.PendingInterrupt(); pending {
			c.halted = false
		} else {
			c.Cycles += 4
			return 4
		}
	}

	if c.IME {
		if kind, ok := irq.PendingInterrupt(); ok {
			cycles := c.serviceInterrupt(bus, irq, kind)
			c.Cycles += uint64(cycles)
			return cycles
		}
	}

	pc := c.PC
	opcode := bus.ReadByte(pc)
	if c.haltBug {
		c.haltBug = false // re-fetch the same byte next Step; PC does not advance
	} else {
		c.PC++
	}

	if opcode == 0x76 {
		_, pendingNow := irq.PendingInterrupt()
		if !c.IME && pendingNow {
			// HALT bug: IME is off and an interrupt is already latched, so
			// the CPU never actually halts, but fails to advance PC once.
			c.haltBug = true
		} else {
			c.halted = true
		}
		c.Cycles += 4
		return 4
	}

	fn := table[opcode]
	var cycles uint8
	if fn == nil {
		c.trace("cpu: invalid opcode 0x%02X at 0x%04X, treating as NOP\n", opcode, pc)
		cycles = 4
	} else {
		cycles = fn(c, bus)
	}

	if opcode == 0xFB {
		c.eiPending = true
	}

	c.Cycles += uint64(cycles)
	return cycles
}

func (c *CPU) serviceInterrupt(bus Bus, irq InterruptSource, kind uint8) uint8 {
	c.IME = false
	c.eiPending = false
	irq.ClearInterrupt(kind)
	push16(c, bus, c.PC)
	c.PC = interrupt.Vector(kind)
	return interruptServiceCycles
}
