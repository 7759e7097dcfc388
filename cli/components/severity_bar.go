// Copyright (c) Mondoo, Inc.
// SPDX-License-Identifier: BUSL-1.1

package components

import (
	"fmt"
	"strings"

	"github.com/muesli/termenv"
	"go.mondoo.com/cnquery/v9/cli/theme/colors"
	"go.mondoo.com/cnquery/v9/providers-sdk/v1/upstream/mvd/cvss"
	"go.mondoo.com/datatable"
)

const defaultBarWidth = 40

// severities in the order they are stacked
var barSeverities = []cvss.Severity{cvss.Critical, cvss.High, cvss.Medium, cvss.Low, cvss.Unknown}

var barLabels = map[cvss.Severity]string{
	cvss.Critical: "critical",
	cvss.High:     "high",
	cvss.Medium:   "medium",
	cvss.Low:      "low",
	cvss.Unknown:  "unknown",
}

type SeverityBarOption func(*SeverityBar)

func WithBarWidth(w int) SeverityBarOption {
	return func(s *SeverityBar) {
		s.Width = w
	}
}

func NewSeverityBar(opts ...SeverityBarOption) SeverityBar {
	entryChar := []rune{'█'}

	// fallback for no-color mode
	if colors.Profile == termenv.Ascii {
		entryChar = []rune{'█', '░', '▓', '░'}
	}

	s := SeverityBar{
		Width:     defaultBarWidth,
		EntryChar: entryChar,
		indicator: NewCvssIndicator(),
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// SeverityBar summarizes how the displayed rows of a view spread across
// severities as a stacked bar, e.g.
//
//	████████▓▓▓▓░░░░░░░░ critical: 2, high: 1, low: 2
type SeverityBar struct {
	Width int
	// alternating characters for the stacked entries
	EntryChar []rune
	indicator CvssIndicator
}

// Count returns the number of displayed rows per severity. Values of the
// severity column without an icon are counted as unknown.
func (s SeverityBar) Count(v *datatable.View) map[cvss.Severity]int {
	res := map[cvss.Severity]int{}
	if !v.HasColumn(datatable.SeverityColumn) {
		return res
	}

	for _, row := range v.Rows() {
		icon, ok := datatable.ResolveIcon(datatable.SeverityColumn, row[datatable.SeverityColumn])
		if !ok {
			res[cvss.Unknown]++
			continue
		}
		res[iconSeverity(icon)]++
	}
	return res
}

// Render returns the bar with its legend, empty if there is nothing to
// summarize
func (s SeverityBar) Render(v *datatable.View) string {
	counts := s.Count(v)

	total := 0
	for _, n := range counts {
		total += n
	}
	if total == 0 || s.Width <= 0 {
		return ""
	}

	fractions := make([]float64, len(barSeverities))
	legend := []string{}
	for i, severity := range barSeverities {
		n := counts[severity]
		fractions[i] = float64(n) / float64(total)
		if n > 0 {
			legend = append(legend, fmt.Sprintf("%s: %d", barLabels[severity], n))
		}
	}

	b := strings.Builder{}
	for i, size := range barSizes(s.Width, fractions) {
		if size == 0 {
			continue
		}
		char := string(s.EntryChar[i%len(s.EntryChar)])
		b.WriteString(termenv.String(strings.Repeat(char, size)).Foreground(s.indicator.rating(barSeverities[i])).String())
	}
	b.WriteString(" ")
	b.WriteString(strings.Join(legend, ", "))
	return b.String()
}

// barSizes splits width by fractions, rounding down first and handing the
// remaining cells to the largest remainders
func barSizes(width int, fractions []float64) []int {
	sizes := make([]int, len(fractions))
	diff := make([]float64, len(fractions))

	used := 0
	for i := range fractions {
		w := fractions[i] * float64(width)
		sizes[i] = int(w)
		diff[i] = w - float64(sizes[i])
		used += sizes[i]
	}

	for left := width - used; left > 0; left-- {
		maxIdx := -1
		maxDiff := float64(0)
		for j := range diff {
			if diff[j] > maxDiff {
				maxDiff = diff[j]
				maxIdx = j
			}
		}
		if maxIdx < 0 {
			break
		}
		diff[maxIdx] = 0
		sizes[maxIdx]++
	}
	return sizes
}
