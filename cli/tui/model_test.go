// Copyright (c) Mondoo, Inc.
// SPDX-License-Identifier: BUSL-1.1

package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mondoo.com/datatable"
)

func exampleModel(t *testing.T) Model {
	v, err := datatable.New([]string{"Name", "Severity"}, []datatable.Row{
		{"Name": datatable.String("A"), "Severity": datatable.String("Low")},
		{"Name": datatable.String("B"), "Severity": datatable.String("Critical")},
	})
	require.NoError(t, err)
	return New(v)
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	res, cmd := m.Update(msg)
	updated, ok := res.(Model)
	require.True(t, ok)
	return updated, cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func click(x int, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Type: tea.MouseLeft}
}

func screenLine(m Model, line int) string {
	return strings.Split(m.View(), "\n")[line]
}

func displayed(m Model) []string {
	rows := m.DataView().Rows()
	res := make([]string, len(rows))
	for i := range rows {
		res[i] = rows[i]["Name"].String() + "/" + rows[i]["Severity"].String()
	}
	return res
}

func TestModelScenario(t *testing.T) {
	m := exampleModel(t)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})

	assert.Contains(t, screenLine(m, headerLine), "Name ▲")
	assert.Equal(t, []string{"A/Low", "B/Critical"}, displayed(m))
	assert.Contains(t, screenLine(m, firstRowLine), "A")
	assert.Contains(t, screenLine(m, firstRowLine+1), "B")

	// click on the severity header
	widths := m.columnWidths()
	m, _ = update(t, m, click(widths[0]+columnGap+1, headerLine))
	assert.Equal(t, "Severity", m.DataView().OrderBy())
	assert.Equal(t, datatable.Ascending, m.DataView().Order())
	assert.Equal(t, []string{"B/Critical", "A/Low"}, displayed(m))
	assert.Contains(t, screenLine(m, headerLine), "Severity ▲")
	assert.NotContains(t, screenLine(m, headerLine), "Name ▲")
	assert.Contains(t, screenLine(m, firstRowLine), "Critical")

	// type into the search box
	m, _ = update(t, m, runes("/"))
	m, _ = update(t, m, runes("critical"))
	assert.Equal(t, "critical", m.DataView().Search())
	assert.Equal(t, []string{"B/Critical"}, displayed(m))
	assert.Contains(t, screenLine(m, 1), "1 of 2 rows")
	assert.NotContains(t, m.View(), "Low")

	// the clear action restores all rows in the current order
	start, _ := m.clearButton()
	m, _ = update(t, m, click(start, toolbarLine))
	assert.Equal(t, "", m.DataView().Search())
	assert.Equal(t, "", m.search.Value())
	assert.Equal(t, []string{"B/Critical", "A/Low"}, displayed(m))
}

func TestModelHeaderClicks(t *testing.T) {
	m := exampleModel(t)
	widths := m.columnWidths()

	// first column is sorted ascending, clicking it flips the order
	m, _ = update(t, m, click(0, headerLine))
	assert.Equal(t, datatable.Descending, m.DataView().Order())
	assert.Contains(t, screenLine(m, headerLine), "Name ▼")
	assert.Equal(t, []string{"B/Critical", "A/Low"}, displayed(m))

	m, _ = update(t, m, click(widths[0]-1, headerLine))
	assert.Equal(t, datatable.Ascending, m.DataView().Order())

	// clicks in the gap between columns or on other lines are ignored
	m, _ = update(t, m, click(widths[0], headerLine))
	m, _ = update(t, m, click(widths[0]+columnGap+1, firstRowLine))
	assert.Equal(t, "Name", m.DataView().OrderBy())
	assert.Equal(t, datatable.Ascending, m.DataView().Order())

	// right button does not sort
	m, _ = update(t, m, tea.MouseMsg{X: 0, Y: headerLine, Type: tea.MouseRight})
	assert.Equal(t, datatable.Ascending, m.DataView().Order())
}

func TestModelKeyboard(t *testing.T) {
	m := exampleModel(t)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 1, m.cursor)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 1, m.cursor)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, "Severity", m.DataView().OrderBy())
	assert.Equal(t, datatable.Ascending, m.DataView().Order())

	m, _ = update(t, m, runes("s"))
	assert.Equal(t, datatable.Descending, m.DataView().Order())

	m, _ = update(t, m, runes("1"))
	assert.Equal(t, "Name", m.DataView().OrderBy())
	assert.Equal(t, datatable.Ascending, m.DataView().Order())
	assert.Equal(t, 0, m.cursor)

	// unknown column numbers are ignored
	m, _ = update(t, m, runes("9"))
	assert.Equal(t, "Name", m.DataView().OrderBy())

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, 0, m.cursor)
}

func TestModelSearchFocus(t *testing.T) {
	m := exampleModel(t)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, focusSearch, m.focus)

	// keys that control the table are text while searching
	m, _ = update(t, m, runes("q"))
	assert.Equal(t, "q", m.DataView().Search())
	assert.Equal(t, focusSearch, m.focus)
	m, _ = update(t, m, runes("x"))
	assert.Equal(t, "qx", m.DataView().Search())
	assert.Empty(t, displayed(m))
	assert.Contains(t, m.View(), "no matching rows")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlL})
	assert.Equal(t, "", m.DataView().Search())
	assert.Equal(t, focusSearch, m.focus)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, focusTable, m.focus)

	// back on the table, x clears and q quits
	m.DataView().SetSearch("low")
	m, _ = update(t, m, runes("x"))
	assert.Equal(t, "", m.DataView().Search())

	_, cmd := update(t, m, runes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestModelSearchClick(t *testing.T) {
	m := exampleModel(t)
	m, _ = update(t, m, click(1, toolbarLine))
	assert.Equal(t, focusSearch, m.focus)

	// clicking a header leaves the search box
	m, _ = update(t, m, click(0, headerLine))
	assert.Equal(t, focusTable, m.focus)
}

func TestModelInitialState(t *testing.T) {
	v, err := datatable.New([]string{"Name", "Severity"}, []datatable.Row{
		{"Name": datatable.String("A"), "Severity": datatable.String("Low")},
	})
	require.NoError(t, err)
	require.NoError(t, v.SortBy("Severity", datatable.Descending))
	v.SetSearch("lo")

	m := New(v)
	assert.Equal(t, 1, m.cursor)
	assert.Equal(t, "lo", m.search.Value())
	assert.Nil(t, m.Init())
}

func TestModelScrolling(t *testing.T) {
	rows := make([]datatable.Row, 30)
	for i := range rows {
		rows[i] = datatable.Row{"Name": datatable.Number(float64(i))}
	}
	v, err := datatable.New([]string{"Name"}, rows)
	require.NoError(t, err)

	m := New(v)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 40, Height: 12})
	size := m.pageSize()
	assert.Equal(t, 5, size)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, m.offset)
	assert.Equal(t, "1", strings.TrimSpace(screenLine(m, firstRowLine)))

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyPgDown})
	assert.Equal(t, 6, m.offset)

	for i := 0; i < 10; i++ {
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyPgDown})
	}
	assert.Equal(t, 25, m.offset)
	assert.Equal(t, "29", strings.TrimSpace(screenLine(m, firstRowLine+size-1)))

	m, _ = update(t, m, tea.MouseMsg{Type: tea.MouseWheelUp})
	assert.Equal(t, 24, m.offset)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyPgUp})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyPgUp})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyPgUp})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyPgUp})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyPgUp})
	assert.Equal(t, 0, m.offset)
}
