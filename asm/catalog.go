package asm

// Opcode identifies a machine instruction.
type Opcode int

//go:generate go tool stringer -linecomment -type=Opcode
const (
	OP_MOV = Opcode(0)  // mov
	OP_CMP = Opcode(1)  // cmp
	OP_ADD = Opcode(2)  // add
	OP_SUB = Opcode(3)  // sub
	OP_NOT = Opcode(4)  // not
	OP_CLR = Opcode(5)  // clr
	OP_LEA = Opcode(6)  // lea
	OP_INC = Opcode(7)  // inc
	OP_DEC = Opcode(8)  // dec
	OP_JMP = Opcode(9)  // jmp
	OP_BNE = Opcode(10) // bne
	OP_RED = Opcode(11) // red
	OP_PRN = Opcode(12) // prn
	OP_JSR = Opcode(13) // jsr
	OP_RTS = Opcode(14) // rts
	OP_HLT = Opcode(15) // hlt
)

// OperandType classifies how an operand addresses its value. The constants
// are the type tag values of the leading instruction word.
type OperandType int

//go:generate go tool stringer -linecomment -type=OperandType
const (
	Immediate = OperandType(0) // immediate
	Direct    = OperandType(1) // direct
	Matrix    = OperandType(2) // matrix
	Register  = OperandType(3) // register
)

// TypeMask is a set of permitted operand types for one instruction slot.
type TypeMask int

// Has reports whether the mask permits the given operand type.
func (mask TypeMask) Has(t OperandType) bool {
	return mask&(1<<t) != 0
}

func types(ts ...OperandType) (mask TypeMask) {
	for _, t := range ts {
		mask |= 1 << t
	}
	return
}

// Slot legality masks.
var (
	maskNone   = TypeMask(0)
	maskAny    = types(Immediate, Direct, Matrix, Register)
	maskStore  = types(Direct, Matrix, Register)
	maskDirect = types(Direct)
	maskJump   = types(Direct, Register)
)

// Instruction is one catalog entry: a mnemonic, its opcode, and the legal
// operand types per slot.
type Instruction struct {
	Name     string
	Op       Opcode
	Operands int
	Src      TypeMask
	Dest     TypeMask
}

// catalog is the instruction set, in opcode order. A single-operand
// instruction uses the destination slot.
var catalog = []Instruction{
	{"mov", OP_MOV, 2, maskStore, maskStore},
	{"cmp", OP_CMP, 2, maskAny, maskAny},
	{"add", OP_ADD, 2, maskStore, maskStore},
	{"sub", OP_SUB, 2, maskStore, maskStore},
	{"not", OP_NOT, 1, maskNone, maskStore},
	{"clr", OP_CLR, 1, maskNone, maskStore},
	{"lea", OP_LEA, 2, maskDirect, maskStore},
	{"inc", OP_INC, 1, maskNone, maskStore},
	{"dec", OP_DEC, 1, maskNone, maskStore},
	{"jmp", OP_JMP, 1, maskNone, maskJump},
	{"bne", OP_BNE, 1, maskNone, maskJump},
	{"red", OP_RED, 1, maskNone, maskStore},
	{"prn", OP_PRN, 1, maskNone, maskAny},
	{"jsr", OP_JSR, 1, maskNone, maskJump},
	{"rts", OP_RTS, 0, maskNone, maskNone},
	{"hlt", OP_HLT, 0, maskNone, maskNone},
}

var mnemonics = func() map[string]*Instruction {
	m := make(map[string]*Instruction, len(catalog))
	for n := range catalog {
		m[catalog[n].Name] = &catalog[n]
	}
	return m
}()

// Lookup finds the catalog entry for a mnemonic.
func Lookup(name string) (inst *Instruction, ok bool) {
	inst, ok = mnemonics[name]
	return
}

// Directive names.
const (
	dirData   = ".data"
	dirString = ".string"
	dirMat    = ".mat"
	dirEntry  = ".entry"
	dirExtern = ".extern"
)

var directives = map[string]bool{
	dirData:   true,
	dirString: true,
	dirMat:    true,
	dirEntry:  true,
	dirExtern: true,
}

// NumRegisters is the machine's general register count, r0 through r7.
const NumRegisters = 8

// registerOf returns the ordinal of a register name.
func registerOf(token string) (reg int, ok bool) {
	if len(token) != 2 || token[0] != 'r' {
		return
	}
	if token[1] < '0' || token[1] >= '0'+NumRegisters {
		return
	}

	return int(token[1] - '0'), true
}

// reservedWord reports whether name collides with the language vocabulary.
func reservedWord(name string) bool {
	if _, ok := mnemonics[name]; ok {
		return true
	}
	if _, ok := registerOf(name); ok {
		return true
	}
	if directives[name] {
		return true
	}

	switch name {
	case "mcro", "macr", "mcroend", "endmacr":
		return true
	}

	return false
}
