package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/poscode/pkg/perm"
)

// walk styles
var (
	walkLabelStyle = lipgloss.NewStyle().Foreground(colorGray).Width(12)
	walkDigitStyle = lipgloss.NewStyle().Foreground(colorWhite)
	walkHotStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	walkDimStyle   = lipgloss.NewStyle().Foreground(colorDim)
)

// walkCommand creates the interactive code space browser.
func (c *CLI) walkCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "walk <n>",
		Short: "Browse the code space of size n interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseSize(args[0], perm.MaxIndexSize)
			if err != nil {
				return err
			}
			_, err = tea.NewProgram(NewWalkModel(n), tea.WithContext(cmd.Context())).Run()
			return err
		},
	}
}

// =============================================================================
// WalkModel - Interactive mixed-radix counter
// =============================================================================

// WalkModel is the bubbletea model that steps through codes in index order
// and shows the classical permutation, its inverse view and the lookups of
// the selected position.
type WalkModel struct {
	N      int
	Index  int
	Cursor int // selected position for lookups
	total  int
	code   perm.Code
	d      perm.Permutation
}

// NewWalkModel creates a walk model positioned at the zero code.
func NewWalkModel(n int) WalkModel {
	m := WalkModel{N: n, total: perm.Factorial(n)}
	m.seek(0)
	return m
}

// Code returns the code currently shown.
func (m WalkModel) Code() perm.Code { return m.code }

// Permutation returns the classical permutation of the current code.
func (m WalkModel) Permutation() perm.Permutation { return m.d }

func (m *WalkModel) seek(idx int) {
	switch {
	case idx < 0:
		idx = m.total - 1
	case idx >= m.total:
		idx = 0
	}
	m.Index = idx
	m.code, _ = perm.CodeFromIndex(idx, m.N)
	m.d = make(perm.Permutation, m.N)
	perm.UnrankClassical(m.code, m.d)
}

func (m WalkModel) Init() tea.Cmd {
	return nil
}

func (m WalkModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "down", "j", " ":
			m.seek(m.Index + 1)
		case "up", "k":
			m.seek(m.Index - 1)
		case "pgdown", "J":
			m.seek(m.Index + m.N)
		case "pgup", "K":
			m.seek(m.Index - m.N)
		case "home", "g":
			m.seek(0)
		case "end", "G":
			m.seek(m.total - 1)
		case "right", "l":
			if m.Cursor < m.N-1 {
				m.Cursor++
			}
		case "left", "h":
			if m.Cursor > 0 {
				m.Cursor--
			}
		}
	}
	return m, nil
}

func (m WalkModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(fmt.Sprintf("Code space n=%d", m.N)))
	b.WriteString("\n")
	b.WriteString(walkDimStyle.Render("↑/↓ step  pgup/pgdn jump  ←/→ position  q quit"))
	b.WriteString("\n\n")

	b.WriteString(walkLabelStyle.Render("index") + " " + walkDigitStyle.Render(fmt.Sprintf("%d / %d", m.Index, m.total)) + "\n")
	b.WriteString(walkLabelStyle.Render("code") + " " + m.row(m.code) + "\n")
	b.WriteString(walkLabelStyle.Render("permutation") + " " + m.row(m.d) + "\n")
	b.WriteString(walkLabelStyle.Render("inverse") + " " + m.row(perm.Invert(m.d)) + "\n")

	if m.N > 0 {
		v, _ := perm.ValueAt(m.code, m.Cursor)
		p, _ := perm.PositionOf(m.code, m.Cursor)
		b.WriteString("\n")
		b.WriteString(walkDimStyle.Render(fmt.Sprintf("  value-at(%d) = %d   position-of(%d) = %d", m.Cursor, v, m.Cursor, p)))
	}
	b.WriteString("\n")
	return b.String()
}

// row renders digits with the cursor position highlighted.
func (m WalkModel) row(v []int) string {
	parts := make([]string, len(v))
	for i, x := range v {
		s := fmt.Sprintf("%2d", x)
		if i == m.Cursor {
			parts[i] = walkHotStyle.Render(s)
		} else {
			parts[i] = walkDigitStyle.Render(s)
		}
	}
	return strings.Join(parts, " ")
}
