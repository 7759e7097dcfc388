// Copyright (c) Mondoo, Inc.
// SPDX-License-Identifier: BUSL-1.1

package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderHTMLTable(t *testing.T) {
	v := loadExampleView(t)
	renderer := NewHTMLTable()
	renderer.Action = "/findings"

	output, err := renderer.Render(v)
	require.NoError(t, err)

	// toolbar
	assert.Contains(t, output, `<input type="search" name="q" value="" placeholder="Search" aria-label="Search">`)
	assert.Contains(t, output, `<a class="datatable-clear" href="/findings?order=asc&amp;sort=Name">Clear</a>`)
	assert.Contains(t, output, `<img src="assets/exportcsv.svg" width="18" height="18" alt="export csv">`)

	// headers: the active one flips, the others sort ascending
	assert.Contains(t, output, `<th aria-sort="ascending"><a href="/findings?order=desc&amp;sort=Name">Name ▲<span class="visually-hidden">sorted ascending</span></a></th>`)
	assert.Contains(t, output, `<th aria-sort="none"><a href="/findings?order=asc&amp;sort=Severity">Severity</a></th>`)
	assert.Contains(t, output, `<th aria-sort="none"><a href="/findings?order=asc&amp;sort=packageType">package Type</a></th>`)

	// cells with icons
	assert.Contains(t, output, `<td><img src="assets/severityIcons/critical.png" height="22" alt="Critical"><span>Critical</span></td>`)
	assert.Contains(t, output, `<td><span>A</span></td>`)
	// icons are only resolved for the Type column
	assert.Contains(t, output, `<td><span>npm</span></td>`)
	assertOrder(t, output, "<span>A</span>", "<span>B</span>")
}

func TestRenderHTMLTableState(t *testing.T) {
	v := loadExampleView(t)
	require.NoError(t, v.Sort("Severity"))
	require.NoError(t, v.Sort("Severity"))
	v.SetSearch("<crit>")

	renderer := NewHTMLTable()
	renderer.AssetPrefix = "/static/"
	output, err := renderer.Render(v)
	require.NoError(t, err)

	assert.Contains(t, output, `value="&lt;crit&gt;"`)
	assert.Contains(t, output, `<input type="hidden" name="sort" value="Severity">`)
	assert.Contains(t, output, `<input type="hidden" name="order" value="desc">`)
	assert.Contains(t, output, `<th aria-sort="descending"><a href="?order=asc&amp;q=%3Ccrit%3E&amp;sort=Severity">Severity ▼<span class="visually-hidden">sorted descending</span></a></th>`)
	assert.Contains(t, output, `<a class="datatable-clear" href="?order=desc&amp;sort=Severity">Clear</a>`)
	assert.Contains(t, output, `src="/static/assets/exportcsv.svg"`)
	assert.NotContains(t, output, "<td>")
}

func TestRenderHTMLTableIcons(t *testing.T) {
	v := loadExampleView(t)
	require.NoError(t, v.Sort("Name"))

	renderer := NewHTMLTable()
	output, err := renderer.Render(v)
	require.NoError(t, err)
	assertOrder(t, output, "<span>B</span>", "<span>A</span>")
	assert.Contains(t, output, `<img src="assets/severityIcons/low.png" height="22" alt="Low">`)
}
