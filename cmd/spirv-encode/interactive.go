package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gpukit/spvpack/pack"
	"github.com/gpukit/spvpack/spirv"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	statStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	droppedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

// pageSize is how many instruction rows the listing window shows.
const pageSize = 20

type row struct {
	text      string
	opcode    string
	droppable bool
}

type inspectorModel struct {
	err      error
	filename string
	opts     pack.Options
	header   spirv.Header
	rows     []row
	visible  []row
	filter   textinput.Model
	offset   int

	inputBytes      int
	transposedBytes int
	flatBytes       int
	instructions    int
	words           int
}

type loadedMsg struct {
	err             error
	header          spirv.Header
	rows            []row
	inputBytes      int
	transposedBytes int
	flatBytes       int
	instructions    int
	words           int
}

func newInspectorModel(filename string, opts pack.Options) *inspectorModel {
	ti := textinput.New()
	ti.Placeholder = "filter by opcode name"
	ti.Prompt = "/ "
	ti.Width = 40
	return &inspectorModel{
		filename: filename,
		opts:     opts,
		filter:   ti,
	}
}

func (m *inspectorModel) Init() tea.Cmd {
	return m.loadModule
}

func (m *inspectorModel) loadModule() tea.Msg {
	data, err := os.ReadFile(m.filename)
	if err != nil {
		return loadedMsg{err: err}
	}

	header, err := spirv.Validate(m.filename, data)
	if err != nil {
		return loadedMsg{err: err}
	}

	var rows []row
	err = spirv.Walk(data, false, func(ins spirv.Instruction) error {
		var b strings.Builder
		fmt.Fprintf(&b, "0x%06X  %-20s", ins.Offset, ins.Opcode)
		for i := 0; i < ins.OperandCount(); i++ {
			fmt.Fprintf(&b, " %#x", ins.Operand(i))
		}
		rows = append(rows, row{
			text:      b.String(),
			opcode:    ins.Opcode.String(),
			droppable: ins.Opcode.Droppable(),
		})
		return nil
	})
	if err != nil {
		return loadedMsg{err: err}
	}

	instructions, words, err := spirv.Count(data, m.opts.RemoveUnused)
	if err != nil {
		return loadedMsg{err: err}
	}

	transposed, err := pack.Encode(m.filename, data, pack.Options{
		Shuffle: true, RemoveUnused: m.opts.RemoveUnused,
	})
	if err != nil {
		return loadedMsg{err: err}
	}
	flat, err := pack.Encode(m.filename, data, pack.Options{
		RemoveUnused: m.opts.RemoveUnused,
	})
	if err != nil {
		return loadedMsg{err: err}
	}

	return loadedMsg{
		header:          header,
		rows:            rows,
		inputBytes:      len(data),
		transposedBytes: len(transposed),
		flatBytes:       len(flat),
		instructions:    instructions,
		words:           words,
	}
}

func (m *inspectorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			if !m.filter.Focused() || msg.String() == "ctrl+c" {
				return m, tea.Quit
			}

		case "up", "k":
			if !m.filter.Focused() && m.offset > 0 {
				m.offset--
			}

		case "down", "j":
			if !m.filter.Focused() && m.offset < len(m.visible)-pageSize {
				m.offset++
			}

		case "/":
			if !m.filter.Focused() {
				m.filter.Focus()
				return m, nil
			}

		case "esc", "enter":
			m.filter.Blur()
			return m, nil
		}

	case loadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.header = msg.header
		m.rows = msg.rows
		m.inputBytes = msg.inputBytes
		m.transposedBytes = msg.transposedBytes
		m.flatBytes = msg.flatBytes
		m.instructions = msg.instructions
		m.words = msg.words
		m.applyFilter()
	}

	if m.filter.Focused() {
		var cmd tea.Cmd
		m.filter, cmd = m.filter.Update(msg)
		m.applyFilter()
		return m, cmd
	}
	return m, nil
}

func (m *inspectorModel) applyFilter() {
	needle := strings.ToLower(m.filter.Value())
	if needle == "" {
		m.visible = m.rows
	} else {
		m.visible = nil
		for _, r := range m.rows {
			if strings.Contains(strings.ToLower(r.opcode), needle) {
				m.visible = append(m.visible, r)
			}
		}
	}
	m.offset = 0
}

func (m *inspectorModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("spirv-encode inspector"))
	b.WriteString("  " + m.filename + "\n\n")

	if m.err != nil {
		b.WriteString(errorStyle.Render(m.err.Error()) + "\n")
		b.WriteString(helpStyle.Render("q to quit") + "\n")
		return b.String()
	}
	if m.rows == nil {
		b.WriteString("loading...\n")
		return b.String()
	}

	b.WriteString(statStyle.Render(fmt.Sprintf(
		"SPIR-V %d.%d  bound %d  generator 0x%08X",
		m.header.VersionMajor(), m.header.VersionMinor(),
		m.header.Bound, m.header.Generator,
	)) + "\n")
	b.WriteString(statStyle.Render(fmt.Sprintf(
		"%d bytes in  |  %d instructions, %d words retained  |  transposed %d B, flat %d B",
		m.inputBytes, m.instructions, m.words, m.transposedBytes, m.flatBytes,
	)) + "\n\n")

	b.WriteString(m.filter.View() + "\n\n")

	end := m.offset + pageSize
	if end > len(m.visible) {
		end = len(m.visible)
	}
	for _, r := range m.visible[m.offset:end] {
		if r.droppable {
			b.WriteString(droppedStyle.Render(r.text+"  (droppable)") + "\n")
		} else {
			b.WriteString(r.text + "\n")
		}
	}
	if len(m.visible) > pageSize {
		b.WriteString(helpStyle.Render(fmt.Sprintf(
			"\n%d-%d of %d", m.offset+1, end, len(m.visible))) + "\n")
	}

	b.WriteString(helpStyle.Render("\n↑/↓ scroll · / filter · q quit") + "\n")
	return b.String()
}

func runInteractive(filename string, opts pack.Options) error {
	p := tea.NewProgram(newInspectorModel(filename, opts))
	_, err := p.Run()
	return err
}
