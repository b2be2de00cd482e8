package disassemble

import (
	"strings"
	"testing"

	"github.com/mchacon/go6502core/memory"
	"github.com/stretchr/testify/assert"
)

func TestStepImmediate(t *testing.T) {
	bank := memory.NewFlatBank()
	bank.Write(0x0600, 0xA9) // LDA #$42
	bank.Write(0x0601, 0x42)

	text, n := Step(0x0600, bank)
	assert.Equal(t, 2, n)
	assert.Contains(t, text, "LDA")
	assert.Contains(t, text, "#$42")
}

func TestStepAbsoluteByteOrder(t *testing.T) {
	bank := memory.NewFlatBank()
	bank.Write(0x0600, 0x4C) // JMP $1234
	bank.Write(0x0601, 0x34)
	bank.Write(0x0602, 0x12)

	text, n := Step(0x0600, bank)
	assert.Equal(t, 3, n)
	assert.Contains(t, text, "JMP")
	assert.Contains(t, text, "$1234")
}

func TestStepImpliedHasNoOperand(t *testing.T) {
	bank := memory.NewFlatBank()
	bank.Write(0x0600, 0xEA) // NOP
	text, n := Step(0x0600, bank)
	assert.Equal(t, 1, n)
	assert.True(t, strings.HasSuffix(strings.TrimSpace(text), "NOP"))
}

func TestStepRelativeShowsComputedTarget(t *testing.T) {
	bank := memory.NewFlatBank()
	bank.Write(0x0600, 0xF0) // BEQ +2
	bank.Write(0x0601, 0x02)

	text, n := Step(0x0600, bank)
	assert.Equal(t, 2, n)
	assert.Contains(t, text, "0604")
}

func TestStepUnknownOpcodeFallsBackToByteDirective(t *testing.T) {
	bank := memory.NewFlatBank()
	bank.Write(0x0600, 0x02) // undocumented
	text, n := Step(0x0600, bank)
	assert.Equal(t, 1, n)
	assert.Contains(t, text, ".byte")
}

func TestStepDoesNotFollowControlFlow(t *testing.T) {
	bank := memory.NewFlatBank()
	bank.Write(0x0600, 0x4C) // JMP $0610
	bank.Write(0x0601, 0x10)
	bank.Write(0x0602, 0x06)
	bank.Write(0x0603, 0xA9) // LDA #$00 (operand left zero), printed as-is, not resolved

	_, n := Step(0x0600, bank)
	text2, _ := Step(0x0600+uint16(n), bank)
	assert.Contains(t, text2, "LDA")
}
