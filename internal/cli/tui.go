package cli

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// pickItem is one selectable row in the picker.
type pickItem struct {
	ID      string
	Detail  string
	Heading string // non-empty starts a new section above this item
}

// PickModel is the bubbletea model for multi-selecting registry entries.
type PickModel struct {
	Title    string
	Items    []pickItem
	Checked  map[int]bool
	Cursor   int
	Height   int
	Offset   int
	Done     bool // enter was pressed
	Canceled bool // q / esc / ctrl+c
}

// NewPickModel creates a picker over the given items with nothing checked.
func NewPickModel(title string, items []pickItem) PickModel {
	return PickModel{
		Title:   title,
		Items:   items,
		Checked: make(map[int]bool),
		Height:  15,
	}
}

func (m PickModel) Init() tea.Cmd {
	return nil
}

func (m PickModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.Canceled = true
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Items)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case " ":
			m.Checked[m.Cursor] = !m.Checked[m.Cursor]
		case "enter":
			m.Done = true
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 6
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m PickModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(m.Title))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  space toggle  ⏎ confirm  q quit"))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > len(m.Items) {
		end = len(m.Items)
	}

	for i := m.Offset; i < end; i++ {
		item := m.Items[i]
		if item.Heading != "" {
			b.WriteString(StyleHighlight.Render(item.Heading))
			b.WriteString("\n")
		}

		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		check := "[ ]"
		if m.Checked[i] {
			check = "[" + iconSuccess + "]"
		}

		style := listNormalStyle
		if i == m.Cursor {
			style = listSelectedStyle
		}
		line := cursor + check + " " + item.ID
		if item.Detail != "" {
			line += " " + listDimStyle.Render(item.Detail)
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}

	return b.String()
}

// Selected returns the checked item ids split by section kind: the items
// before the first tool heading are file types.
func (m PickModel) Selected() (fileTypes, tools []string) {
	inTools := false
	for i, item := range m.Items {
		if item.Heading == headingTools {
			inTools = true
		}
		if !m.Checked[i] {
			continue
		}
		if inTools {
			tools = append(tools, item.ID)
		} else {
			fileTypes = append(fileTypes, item.ID)
		}
	}
	return fileTypes, tools
}

const (
	headingFileTypes = "File types"
	headingTools     = "Tools"
)
