// Package debugger is a single-step terminal UI over a cpu.Chip, built with
// bubbletea and lipgloss. It never advances the chip on its own: every
// instruction executes because the user pressed a key.
package debugger

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"

	"github.com/mchacon/go6502core/cpu"
	"github.com/mchacon/go6502core/disassemble"
)

var registerStyle = lipgloss.NewStyle().Bold(true)

type model struct {
	chip   *cpu.Chip
	prevPC uint16
	err    error
	halted bool
}

// New builds the initial model for a chip that has already been loaded and
// reset by the caller.
func New(chip *cpu.Chip) model {
	return model{chip: chip}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch keyMsg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case " ", "s":
		if m.halted {
			return m, nil
		}
		m.prevPC = m.chip.PC
		done, err := m.chip.Step()
		if err != nil {
			m.err = err
			m.halted = true
		}
		if done {
			m.halted = true
		}
	}
	return m, nil
}

func (m model) renderPage(start uint16) string {
	s := fmt.Sprintf("%04X | ", start)
	for i := 0; i < 16; i++ {
		addr := start + uint16(i)
		b := m.chip.MemRead(addr)
		if addr == m.chip.PC {
			s += fmt.Sprintf("[%02X]", b)
		} else {
			s += fmt.Sprintf(" %02X ", b)
		}
	}
	return s
}

func (m model) pageTable() string {
	header := "addr | "
	for i := 0; i < 16; i++ {
		header += fmt.Sprintf(" %01X  ", i)
	}
	lines := []string{header}
	base := m.chip.PC &^ 0x000F
	for row := -2; row <= 2; row++ {
		start := base + uint16(row*16)
		lines = append(lines, m.renderPage(start))
	}
	return strings.Join(lines, "\n")
}

func (m model) status() string {
	flagLabels := "N V U B D I Z C"
	var bits strings.Builder
	for _, mask := range []uint8{cpu.FlagN, cpu.FlagV, cpu.FlagU, cpu.FlagB, cpu.FlagD, cpu.FlagI, cpu.FlagZ, cpu.FlagC} {
		if m.chip.P&mask != 0 {
			bits.WriteString("1 ")
		} else {
			bits.WriteString("0 ")
		}
	}
	text, _ := disassemble.Step(m.chip.PC, m.chip.Bank())
	status := fmt.Sprintf(
		"PC: %04X (was %04X)\nA: %02X  X: %02X  Y: %02X  S: %02X\n%s\n%s\n\nnext: %s",
		m.chip.PC, m.prevPC, m.chip.A, m.chip.X, m.chip.Y, m.chip.S,
		flagLabels, bits.String(), text,
	)
	if m.halted {
		status += "\n\nhalted"
		if m.err != nil {
			status += fmt.Sprintf(": %v", m.err)
		}
	}
	return registerStyle.Render(status)
}

func (m model) View() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, m.pageTable(), "   ", m.status()),
		"",
		"space/s: step   q: quit",
		"",
		spew.Sdump(m.chip),
	)
}

// Run starts the interactive TUI for chip, blocking until the user quits.
func Run(chip *cpu.Chip) error {
	_, err := tea.NewProgram(New(chip)).Run()
	return err
}
