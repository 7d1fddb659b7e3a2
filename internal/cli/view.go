package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/treegraft/treegraft/pkg/forest"
	"github.com/treegraft/treegraft/pkg/newick"
)

// Tree browser styles
var (
	viewSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	viewLeafStyle     = lipgloss.NewStyle().Foreground(colorWhite)
	viewNodeStyle     = lipgloss.NewStyle().Foreground(colorGreen)
	viewDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// viewCommand creates the view command for browsing a tree interactively.
func (c *CLI) viewCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "view <file>",
		Short: "Browse a tree interactively in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := readTreeFile(args[0], format)
			if err != nil {
				return err
			}
			if t.Empty() {
				printInfo("Tree is empty")
				return nil
			}
			m := newTreeModel(t)
			_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
			return err
		},
	}

	cmd.Flags().StringVar(&format, "from", "", "input format: newick, json (default: by extension)")

	return cmd
}

// viewRow is one visible line of the tree browser.
type viewRow struct {
	id      forest.NodeID
	depth   int
	leaf    bool
	hasKids bool
}

// TreeModel is the bubbletea model for the interactive tree browser.
// Collapsed subtrees are skipped during the traversal that rebuilds the
// visible rows.
type TreeModel struct {
	tree      *forest.Tree[newick.Label]
	collapsed map[forest.NodeID]bool
	rows      []viewRow
	cursor    int
	offset    int
	height    int
}

// newTreeModel creates a browser model with every subtree expanded.
func newTreeModel(t *forest.Tree[newick.Label]) TreeModel {
	m := TreeModel{
		tree:      t,
		collapsed: make(map[forest.NodeID]bool),
		height:    20,
	}
	m.rebuild()
	return m
}

// rebuild regenerates the visible rows from a fresh traversal.
func (m *TreeModel) rebuild() {
	m.rows = m.rows[:0]
	w := m.tree.Walk()
	for w.Next() {
		if w.Phase() != forest.Enter {
			continue
		}
		v := w.Node()
		m.rows = append(m.rows, viewRow{
			id:      v,
			depth:   w.Depth(),
			leaf:    m.tree.IsLeaf(v),
			hasKids: m.tree.Children(v, w.Parent()).Len() > 0,
		})
		if m.collapsed[v] {
			w.Skip()
		}
	}
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
}

func (m TreeModel) Init() tea.Cmd {
	return nil
}

func (m TreeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
				if m.cursor < m.offset {
					m.offset = m.cursor
				}
			}
		case "down", "j":
			if m.cursor < len(m.rows)-1 {
				m.cursor++
				if m.cursor >= m.offset+m.height {
					m.offset = m.cursor - m.height + 1
				}
			}
		case "enter", " ":
			row := m.rows[m.cursor]
			if row.hasKids {
				m.collapsed[row.id] = !m.collapsed[row.id]
				m.rebuild()
			}
		}
	case tea.WindowSizeMsg:
		m.height = msg.Height - 5
		if m.height < 5 {
			m.height = 5
		}
	}
	return m, nil
}

func (m TreeModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Tree Browser"))
	b.WriteString("\n")
	b.WriteString(viewDimStyle.Render("↑/↓ navigate  ⏎ fold/unfold  q quit"))
	b.WriteString("\n\n")

	end := m.offset + m.height
	if end > len(m.rows) {
		end = len(m.rows)
	}

	for i := m.offset; i < end; i++ {
		row := m.rows[i]

		cursor := "  "
		if i == m.cursor {
			cursor = "▸ "
		}

		marker := "· "
		if row.hasKids {
			if m.collapsed[row.id] {
				marker = "+ "
			} else {
				marker = "- "
			}
		}

		label := m.tree.Value(row.id).Name
		if label == "" {
			label = fmt.Sprintf("#%d", row.id)
		}

		style := viewLeafStyle
		if !row.leaf {
			style = viewNodeStyle
		}
		if i == m.cursor {
			style = viewSelectedStyle
		}

		b.WriteString(cursor)
		b.WriteString(strings.Repeat("  ", row.depth))
		b.WriteString(viewDimStyle.Render(marker))
		b.WriteString(style.Render(label))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(viewDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.cursor+1, len(m.rows))))

	return b.String()
}
