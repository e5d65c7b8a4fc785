package cpu

// conditions implements the four branch conditions encoded in bits 3-4 of
// the JR/JP/CALL/RET opcode families, in hardware order: NZ, Z, NC, C.
var conditions = [4]func(c *CPU) bool{
	func(c *CPU) bool { return !c.GetFlag(FlagZ) },
	func(c *CPU) bool { return c.GetFlag(FlagZ) },
	func(c *CPU) bool { return !c.GetFlag(FlagC) },
	func(c *CPU) bool { return c.GetFlag(FlagC) },
}

// buildMainTable fills the 256-entry primary opcode table. Instruction
// families that repeat across all eight r8 or four r16 operands (LD r,r';
// ALU A,r; INC/DEC r; LD r,n; LD rp,nn; INC/DEC rp; ADD HL,rp; PUSH/POP;
// RST) are generated by looping operandOrder/operand16Order instead of
// writing one method per register, per spec.md §9.
func buildMainTable() {
	// 0x40-0x7F: LD r,r' (0x76 is HALT; Step intercepts it before the table).
	for dst := 0; dst < 8; dst++ {
		for src := 0; src < 8; src++ {
			opcode := 0x40 + dst*8 + src
			d, s := operandOrder[dst], operandOrder[src]
			cycles := uint8(4)
			if dst == operandHL || src == operandHL {
				cycles = 8
			}
			table[opcode] = func(c *CPU, bus Bus) uint8 {
				d.set(c, bus, s.get(c, bus))
				return cycles
			}
		}
	}
	// 0x76 (HALT) is special-cased in Step, which needs the interrupt
	// source to detect the HALT-bug condition; no table entry is used.

	// 0x80-0xBF: ALU A,r (ADD ADC SUB SBC AND XOR OR CP), 8 operands each.
	aluOps := [8]func(c *CPU, v uint8){
		func(c *CPU, v uint8) { c.add8(v, false) },
		func(c *CPU, v uint8) { c.add8(v, c.GetFlag(FlagC)) },
		func(c *CPU, v uint8) { c.sub8(v, false) },
		func(c *CPU, v uint8) { c.sub8(v, c.GetFlag(FlagC)) },
		func(c *CPU, v uint8) { c.and8(v) },
		func(c *CPU, v uint8) { c.xor8(v) },
		func(c *CPU, v uint8) { c.or8(v) },
		func(c *CPU, v uint8) { c.cp8(v) },
	}
	for row := 0; row < 8; row++ {
		for src := 0; src < 8; src++ {
			opcode := 0x80 + row*8 + src
			op := aluOps[row]
			s := operandOrder[src]
			cycles := uint8(4)
			if src == operandHL {
				cycles = 8
			}
			table[opcode] = func(c *CPU, bus Bus) uint8 {
				op(c, s.get(c, bus))
				return cycles
			}
		}
	}

	// INC r / DEC r: base 0x04/0x05, stride 8, register order B,C,D,E,H,L,(HL),A.
	for i := 0; i < 8; i++ {
		op := operandOrder[i]
		incCycles, decCycles := uint8(4), uint8(4)
		if i == operandHL {
			incCycles, decCycles = 12, 12
		}
		table[0x04+i*8] = func(c *CPU, bus Bus) uint8 {
			op.set(c, bus, c.inc8(op.get(c, bus)))
			return incCycles
		}
		table[0x05+i*8] = func(c *CPU, bus Bus) uint8 {
			op.set(c, bus, c.dec8(op.get(c, bus)))
			return decCycles
		}
	}

	// LD r,n8: base 0x06, stride 8.
	for i := 0; i < 8; i++ {
		op := operandOrder[i]
		cycles := uint8(8)
		if i == operandHL {
			cycles = 12
		}
		table[0x06+i*8] = func(c *CPU, bus Bus) uint8 {
			op.set(c, bus, fetch8(c, bus))
			return cycles
		}
	}

	// 16-bit register-pair families.
	for i := 0; i < 4; i++ {
		rp := operand16Order[i]
		table[0x01+i*0x10] = func(c *CPU, bus Bus) uint8 {
			rp.set(c, fetch16(c, bus))
			return 12
		}
		table[0x03+i*0x10] = func(c *CPU, bus Bus) uint8 {
			rp.set(c, rp.get(c)+1)
			return 8
		}
		table[0x0B+i*0x10] = func(c *CPU, bus Bus) uint8 {
			rp.set(c, rp.get(c)-1)
			return 8
		}
		table[0x09+i*0x10] = func(c *CPU, bus Bus) uint8 {
			c.addHL(rp.get(c))
			return 8
		}
	}

	// PUSH/POP use the rp2 encoding (AF instead of SP).
	for i := 0; i < 4; i++ {
		rp := operand16Stack[i]
		table[0xC5+i*0x10] = func(c *CPU, bus Bus) uint8 {
			push16(c, bus, rp.get(c))
			return 16
		}
		table[0xC1+i*0x10] = func(c *CPU, bus Bus) uint8 {
			rp.set(c, pop16(c, bus))
			return 12
		}
	}

	// RST n: 8 fixed vectors.
	for i := 0; i < 8; i++ {
		vector := uint16(i * 8)
		table[0xC7+i*8] = func(c *CPU, bus Bus) uint8 {
			push16(c, bus, c.PC)
			c.PC = vector
			return 16
		}
	}

	// JR cc,e8 (conditional) and JR e8 (unconditional).
	table[0x18] = func(c *CPU, bus Bus) uint8 {
		offset := int8(fetch8(c, bus))
		c.PC = uint16(int32(c.PC) + int32(offset))
		return 12
	}
	for i := 0; i < 4; i++ {
		cond := conditions[i]
		table[0x20+i*8] = func(c *CPU, bus Bus) uint8 {
			offset := int8(fetch8(c, bus))
			if cond(c) {
				c.PC = uint16(int32(c.PC) + int32(offset))
				return 12
			}
			return 8
		}
	}

	// JP nn / JP cc,nn / JP (HL).
	table[0xC3] = func(c *CPU, bus Bus) uint8 {
		c.PC = fetch16(c, bus)
		return 16
	}
	table[0xE9] = func(c *CPU, bus Bus) uint8 {
		c.PC = c.HL()
		return 4
	}
	for i := 0; i < 4; i++ {
		cond := conditions[i]
		opcode := 0xC2 + i*8
		table[opcode] = func(c *CPU, bus Bus) uint8 {
			target := fetch16(c, bus)
			if cond(c) {
				c.PC = target
				return 16
			}
			return 12
		}
	}

	// CALL nn / CALL cc,nn.
	table[0xCD] = func(c *CPU, bus Bus) uint8 {
		target := fetch16(c, bus)
		push16(c, bus, c.PC)
		c.PC = target
		return 24
	}
	for i := 0; i < 4; i++ {
		cond := conditions[i]
		opcode := 0xC4 + i*8
		table[opcode] = func(c *CPU, bus Bus) uint8 {
			target := fetch16(c, bus)
			if cond(c) {
				push16(c, bus, c.PC)
				c.PC = target
				return 24
			}
			return 12
		}
	}

	// RET / RET cc / RETI.
	table[0xC9] = func(c *CPU, bus Bus) uint8 {
		c.PC = pop16(c, bus)
		return 16
	}
	table[0xD9] = func(c *CPU, bus Bus) uint8 {
		c.PC = pop16(c, bus)
		c.IME = true
		return 16
	}
	for i := 0; i < 4; i++ {
		cond := conditions[i]
		opcode := 0xC0 + i*8
		table[opcode] = func(c *CPU, bus Bus) uint8 {
			if cond(c) {
				c.PC = pop16(c, bus)
				return 20
			}
			return 8
		}
	}

	// Rotates on A: unlike the CB-prefixed forms these always clear Z.
	table[0x07] = func(c *CPU, bus Bus) uint8 {
		c.A = c.rlc(c.A)
		c.SetFlag(FlagZ, false)
		return 4
	}
	table[0x0F] = func(c *CPU, bus Bus) uint8 {
		c.A = c.rrc(c.A)
		c.SetFlag(FlagZ, false)
		return 4
	}
	table[0x17] = func(c *CPU, bus Bus) uint8 {
		c.A = c.rl(c.A)
		c.SetFlag(FlagZ, false)
		return 4
	}
	table[0x1F] = func(c *CPU, bus Bus) uint8 {
		c.A = c.rr(c.A)
		c.SetFlag(FlagZ, false)
		return 4
	}

	// Misc single-byte instructions.
	table[0x00] = func(c *CPU, bus Bus) uint8 { return 4 }
	table[0x10] = func(c *CPU, bus Bus) uint8 { fetch8(c, bus); return 4 } // STOP has a padding byte
	table[0x27] = func(c *CPU, bus Bus) uint8 { c.daa(); return 4 }
	table[0x2F] = func(c *CPU, bus Bus) uint8 { c.cpl(); return 4 }
	table[0x37] = func(c *CPU, bus Bus) uint8 { c.scf(); return 4 }
	table[0x3F] = func(c *CPU, bus Bus) uint8 { c.ccf(); return 4 }
	table[0xF3] = func(c *CPU, bus Bus) uint8 { c.IME = false; c.eiPending = false; return 4 }
	table[0xFB] = func(c *CPU, bus Bus) uint8 { c.eiPending = true; return 4 }
	table[0xCB] = func(c *CPU, bus Bus) uint8 {
		cbOpcode := fetch8(c, bus)
		return cbTable[cbOpcode](c, bus)
	}

	// Immediate ALU forms: ADD/ADC/SUB/SBC/AND/XOR/OR/CP A,n8.
	immAluOps := [8]func(c *CPU, v uint8){
		func(c *CPU, v uint8) { c.add8(v, false) },
		func(c *CPU, v uint8) { c.add8(v, c.GetFlag(FlagC)) },
		func(c *CPU, v uint8) { c.sub8(v, false) },
		func(c *CPU, v uint8) { c.sub8(v, c.GetFlag(FlagC)) },
		func(c *CPU, v uint8) { c.and8(v) },
		func(c *CPU, v uint8) { c.xor8(v) },
		func(c *CPU, v uint8) { c.or8(v) },
		func(c *CPU, v uint8) { c.cp8(v) },
	}
	immOpcodes := [8]uint8{0xC6, 0xCE, 0xD6, 0xDE, 0xE6, 0xEE, 0xF6, 0xFE}
	for i := 0; i < 8; i++ {
		op := immAluOps[i]
		table[immOpcodes[i]] = func(c *CPU, bus Bus) uint8 {
			op(c, fetch8(c, bus))
			return 8
		}
	}

	// Stack-pointer and 16-bit-immediate memory forms.
	table[0x08] = func(c *CPU, bus Bus) uint8 { // LD (nn),SP
		addr := fetch16(c, bus)
		bus.WriteByte(addr, uint8(c.SP))
		bus.WriteByte(addr+1, uint8(c.SP>>8))
		return 20
	}
	table[0xF9] = func(c *CPU, bus Bus) uint8 { // LD SP,HL
		c.SP = c.HL()
		return 8
	}
	table[0xE8] = func(c *CPU, bus Bus) uint8 { // ADD SP,e8
		c.SP = c.addSPSigned(int8(fetch8(c, bus)))
		return 16
	}
	table[0xF8] = func(c *CPU, bus Bus) uint8 { // LD HL,SP+e8
		c.SetHL(c.addSPSigned(int8(fetch8(c, bus))))
		return 12
	}

	// High-page and indirect accumulator loads.
	table[0xE0] = func(c *CPU, bus Bus) uint8 { // LDH (n),A
		bus.WriteByte(0xFF00+uint16(fetch8(c, bus)), c.A)
		return 12
	}
	table[0xF0] = func(c *CPU, bus Bus) uint8 { // LDH A,(n)
		c.A = bus.ReadByte(0xFF00 + uint16(fetch8(c, bus)))
		return 12
	}
	table[0xE2] = func(c *CPU, bus Bus) uint8 { // LD (C),A
		bus.WriteByte(0xFF00+uint16(c.C), c.A)
		return 8
	}
	table[0xF2] = func(c *CPU, bus Bus) uint8 { // LD A,(C)
		c.A = bus.ReadByte(0xFF00 + uint16(c.C))
		return 8
	}
	table[0xEA] = func(c *CPU, bus Bus) uint8 { // LD (nn),A
		bus.WriteByte(fetch16(c, bus), c.A)
		return 16
	}
	table[0xFA] = func(c *CPU, bus Bus) uint8 { // LD A,(nn)
		c.A = bus.ReadByte(fetch16(c, bus))
		return 16
	}
	table[0x02] = func(c *CPU, bus Bus) uint8 { bus.WriteByte(c.BC(), c.A); return 8 }
	table[0x0A] = func(c *CPU, bus Bus) uint8 { c.A = bus.ReadByte(c.BC()); return 8 }
	table[0x12] = func(c *CPU, bus Bus) uint8 { bus.WriteByte(c.DE(), c.A); return 8 }
	table[0x1A] = func(c *CPU, bus Bus) uint8 { c.A = bus.ReadByte(c.DE()); return 8 }
	table[0x22] = func(c *CPU, bus Bus) uint8 { // LD (HL+),A
		bus.WriteByte(c.HL(), c.A)
		c.SetHL(c.HL() + 1)
		return 8
	}
	table[0x2A] = func(c *CPU, bus Bus) uint8 { // LD A,(HL+)
		c.A = bus.ReadByte(c.HL())
		c.SetHL(c.HL() + 1)
		return 8
	}
	table[0x32] = func(c *CPU, bus Bus) uint8 { // LD (HL-),A
		bus.WriteByte(c.HL(), c.A)
		c.SetHL(c.HL() - 1)
		return 8
	}
	table[0x3A] = func(c *CPU, bus Bus) uint8 { // LD A,(HL-)
		c.A = bus.ReadByte(c.HL())
		c.SetHL(c.HL() - 1)
		return 8
	}

	// Invalid opcodes: no DMG encoding. Step treats a nil table entry as
	// recoverable: it traces a diagnostic and runs it as a one-byte NOP.
	for _, invalid := range []uint8{0xD3, 0xDB, 0xDD, 0xE3, 0xE4, 0xEB, 0xEC, 0xED, 0xF4, 0xFC, 0xFD} {
		table[invalid] = nil
	}
}
