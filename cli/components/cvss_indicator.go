// Copyright (c) Mondoo, Inc.
// SPDX-License-Identifier: BUSL-1.1

package components

import (
	"github.com/muesli/termenv"
	"go.mondoo.com/cnquery/v9/cli/theme/colors"
	"go.mondoo.com/cnquery/v9/providers-sdk/v1/upstream/mvd/cvss"
	"go.mondoo.com/datatable"
)

func NewCvssIndicator() CvssIndicator {
	theme := colors.DefaultColorTheme

	cvssRatingColorMapping := map[cvss.Severity]termenv.Color{
		cvss.None:     theme.Good,
		cvss.Low:      theme.Low,
		cvss.Medium:   theme.Medium,
		cvss.High:     theme.High,
		cvss.Critical: theme.Critical,
		cvss.Unknown:  theme.Unknown,
	}

	return CvssIndicator{
		indicatorChar:          '■',
		cvssRatingColorMapping: cvssRatingColorMapping,
	}
}

type CvssIndicator struct {
	indicatorChar rune

	// colors for cvss ratings
	cvssRatingColorMapping map[cvss.Severity]termenv.Color
}

func (ci CvssIndicator) Render(severity cvss.Severity) string {
	return termenv.String(string(ci.indicatorChar)).Foreground(ci.rating(severity)).String()
}

// RenderIcon renders a cell icon for the terminal. Severity icons become
// the colored indicator, all other icons use their glyph.
func (ci CvssIndicator) RenderIcon(icon datatable.Icon) string {
	if icon.Kind != datatable.SeverityIcon {
		return termenv.String(icon.Glyph).Foreground(colors.DefaultColorTheme.Secondary).String()
	}
	return ci.Render(iconSeverity(icon))
}

func (ci CvssIndicator) rating(r cvss.Severity) termenv.Color {
	c, ok := ci.cvssRatingColorMapping[r]
	if ok {
		return c
	}
	return ci.cvssRatingColorMapping[cvss.Unknown]
}

func iconSeverity(icon datatable.Icon) cvss.Severity {
	switch icon.Name {
	case "critical":
		return cvss.Critical
	case "high":
		return cvss.High
	case "medium":
		return cvss.Medium
	case "low":
		return cvss.Low
	}
	return cvss.Unknown
}
