// Copyright (c) Mondoo, Inc.
// SPDX-License-Identifier: BUSL-1.1

// Package tui provides an interactive terminal front end for a
// datatable.View. All state changes happen inside Update on the bubbletea
// event loop.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/ansi"
	"github.com/rs/zerolog/log"
	"go.mondoo.com/datatable"
	"go.mondoo.com/datatable/cli/components"
)

// screen lines of the interactive elements
const (
	toolbarLine  = 0
	headerLine   = 3
	firstRowLine = 5
)

const (
	columnGap    = 2
	clearLabel   = "Clear"
	exportLabel  = "[export csv]"
	maxCellWidth = 40
)

type focus byte

const (
	focusTable focus = iota
	focusSearch
)

type Model struct {
	view   *datatable.View
	search textinput.Model
	help   help.Model
	keys   keyMap
	cells  components.DataTable
	styles styles

	focus  focus
	cursor int
	offset int
	width  int
	height int
}

// New creates the interactive model for v. The search box is initialized
// with the current search text of the view.
func New(v *datatable.View) Model {
	search := textinput.New()
	search.Prompt = "Search: "
	search.Placeholder = "type to filter"
	search.SetValue(v.Search())

	cursor := 0
	for i, col := range v.Columns() {
		if col == v.OrderBy() {
			cursor = i
		}
	}

	return Model{
		view:   v,
		search: search,
		help:   help.New(),
		keys:   defaultKeyMap(),
		cells:  components.NewDataTable(components.WithMaxCellWidth(maxCellWidth)),
		styles: defaultStyles(),
		cursor: cursor,
	}
}

// Run starts the interactive table and blocks until the user quits or ctx
// is cancelled
func Run(ctx context.Context, v *datatable.View) error {
	p := tea.NewProgram(New(v),
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()
	return err
}

// DataView returns the view the model operates on
func (m Model) DataView() *datatable.View {
	return m.view
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.clampOffset()
		return m, nil

	case tea.MouseMsg:
		return m.updateMouse(msg)

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQuit) {
			return m, tea.Quit
		}
		if m.focus == focusSearch {
			return m.updateSearch(msg)
		}
		return m.updateTable(msg)
	}

	if m.focus == focusSearch {
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlL:
		m.clearSearch()
		return m, nil
	case key.Matches(msg, m.keys.Leave):
		m.blurSearch()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() != m.view.Search() {
		m.view.SetSearch(m.search.Value())
		m.offset = 0
		log.Debug().Str("search", m.view.Search()).Msg("filter rows")
	}
	return m, cmd
}

func (m Model) updateTable(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	columns := m.view.Columns()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Search):
		return m, m.focusSearch()
	case key.Matches(msg, m.keys.Clear):
		m.clearSearch()
	case key.Matches(msg, m.keys.Left):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Right):
		if m.cursor < len(columns)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Sort):
		m.sort(m.cursor)
	case key.Matches(msg, m.keys.Column):
		idx := int(msg.Runes[0] - '1')
		if idx < len(columns) {
			m.sort(idx)
		}
	case key.Matches(msg, m.keys.Up):
		m.offset--
	case key.Matches(msg, m.keys.Down):
		m.offset++
	case key.Matches(msg, m.keys.PageUp):
		m.offset -= m.pageSize()
	case key.Matches(msg, m.keys.PageDown):
		m.offset += m.pageSize()
	}

	m.clampOffset()
	return m, nil
}

func (m Model) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.MouseWheelUp:
		m.offset--
		m.clampOffset()
		return m, nil
	case tea.MouseWheelDown:
		m.offset++
		m.clampOffset()
		return m, nil
	case tea.MouseLeft:
	default:
		return m, nil
	}

	switch msg.Y {
	case headerLine:
		if idx := m.columnAt(msg.X); idx >= 0 {
			m.blurSearch()
			m.sort(idx)
		}
	case toolbarLine:
		searchEnd := ansi.PrintableRuneWidth(m.search.View())
		clearStart, clearEnd := m.clearButton()
		switch {
		case msg.X < searchEnd:
			return m, m.focusSearch()
		case msg.X >= clearStart && msg.X < clearEnd:
			m.clearSearch()
		}
	}
	return m, nil
}

// sort handles a click on the header of the column at idx
func (m *Model) sort(idx int) {
	col := m.view.Columns()[idx]
	if err := m.view.Sort(col); err != nil {
		log.Error().Err(err).Msg("could not sort table")
		return
	}
	m.cursor = idx
	m.offset = 0
	log.Debug().Str("column", col).Str("order", m.view.Order().String()).Msg("sort rows")
}

func (m *Model) clearSearch() {
	m.search.Reset()
	m.view.ClearSearch()
	m.offset = 0
	log.Debug().Msg("clear search")
}

func (m *Model) focusSearch() tea.Cmd {
	m.focus = focusSearch
	return m.search.Focus()
}

func (m *Model) blurSearch() {
	m.focus = focusTable
	m.search.Blur()
}

// clearButton returns the screen columns of the clear action
func (m Model) clearButton() (int, int) {
	start := ansi.PrintableRuneWidth(m.search.View()) + columnGap
	return start, start + len(clearLabel)
}

// columnAt maps a screen column on the header line to a table column,
// -1 if x is between or after the columns
func (m Model) columnAt(x int) int {
	start := 0
	for i, w := range m.columnWidths() {
		if x >= start && x < start+w {
			return i
		}
		start += w + columnGap
	}
	return -1
}

// columnWidths are computed over all rows so that filtering does not
// move the headers
func (m Model) columnWidths() []int {
	headers := m.view.Headers()
	widths := make([]int, len(headers))
	for i := range headers {
		// reserve space for the sort indicator on every column
		widths[i] = ansi.PrintableRuneWidth(headers[i].Label) + 2
	}

	columns := m.view.Columns()
	rows := m.view.AllRows()
	for i := range rows {
		for j, col := range columns {
			if w := ansi.PrintableRuneWidth(m.cells.Cell(col, rows[i][col])); w > widths[j] {
				widths[j] = w
			}
		}
	}
	return widths
}

// pageSize is the number of rows that fit on screen, 0 if unknown
func (m Model) pageSize() int {
	if m.height == 0 {
		return 0
	}
	// leave room for the help line
	size := m.height - firstRowLine - 2
	if size < 1 {
		size = 1
	}
	return size
}

func (m *Model) clampOffset() {
	size := m.pageSize()
	last := len(m.view.Rows()) - size
	if size == 0 || last < 0 {
		last = 0
	}
	if m.offset > last {
		m.offset = last
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

func (m Model) View() string {
	b := strings.Builder{}

	// toolbar
	b.WriteString(m.search.View())
	b.WriteString(strings.Repeat(" ", columnGap))
	b.WriteString(m.styles.clear.Render(clearLabel))
	b.WriteString(strings.Repeat(" ", columnGap))
	b.WriteString(m.styles.disabled.Render(exportLabel))
	b.WriteString("\n")

	rows := m.view.Rows()
	status := fmt.Sprintf("%d of %d rows, %s by %s", len(rows), m.view.Len(),
		m.view.Order().Label(), datatable.SplitCamelCase(m.view.OrderBy()))
	b.WriteString(m.styles.status.Render(status))
	b.WriteString("\n\n")

	widths := m.columnWidths()
	headers := m.view.Headers()
	cells := make([]string, len(headers))
	for i := range headers {
		style := m.styles.header
		if headers[i].Active {
			style = m.styles.activeHeader
		}
		if i == m.cursor && m.focus == focusTable {
			style = style.Copy().Underline(true)
		}
		cells[i] = pad(style.Render(components.HeaderLabel(headers[i])), widths[i])
	}
	b.WriteString(strings.TrimRight(strings.Join(cells, strings.Repeat(" ", columnGap)), " "))
	b.WriteString("\n")

	sep := make([]string, len(widths))
	for i, w := range widths {
		sep[i] = strings.Repeat("─", w)
	}
	b.WriteString(m.styles.disabled.Render(strings.Join(sep, strings.Repeat(" ", columnGap))))
	b.WriteString("\n")

	visible := rows[min(m.offset, len(rows)):]
	if size := m.pageSize(); size > 0 && len(visible) > size {
		visible = visible[:size]
	}

	columns := m.view.Columns()
	for i := range visible {
		for j, col := range columns {
			cells[j] = pad(m.cells.Cell(col, visible[i][col]), widths[j])
		}
		b.WriteString(strings.TrimRight(strings.Join(cells, strings.Repeat(" ", columnGap)), " "))
		b.WriteString("\n")
	}
	if len(rows) == 0 {
		b.WriteString(m.styles.disabled.Render("no matching rows"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.ShortHelpView(m.keys.ShortHelp()))
	return b.String()
}

func pad(s string, width int) string {
	w := ansi.PrintableRuneWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

type styles struct {
	header       lipgloss.Style
	activeHeader lipgloss.Style
	status       lipgloss.Style
	clear        lipgloss.Style
	disabled     lipgloss.Style
}

func defaultStyles() styles {
	return styles{
		header:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#8494A9")),
		activeHeader: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#A177FF")),
		status:       lipgloss.NewStyle().Foreground(lipgloss.Color("#8494A9")),
		clear:        lipgloss.NewStyle().Foreground(lipgloss.Color("#556274")).Underline(true),
		disabled:     lipgloss.NewStyle().Faint(true),
	}
}
