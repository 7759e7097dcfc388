// Copyright (c) Mondoo, Inc.
// SPDX-License-Identifier: BUSL-1.1

package datatable

import "strings"

const (
	SeverityColumn = "Severity"
	TypeColumn     = "Type"
)

type IconKind byte

const (
	SeverityIcon IconKind = iota + 1
	PackageTypeIcon
)

// Icon references a visual asset for a cell. The assets themselves are
// shipped by the front end, icons only carry their location.
type Icon struct {
	Name  string
	Kind  IconKind
	Asset string
	Glyph string
}

func severity(name string) Icon {
	return Icon{
		Name:  name,
		Kind:  SeverityIcon,
		Asset: "assets/severityIcons/" + name + ".png",
		Glyph: "■",
	}
}

func packageType(name string) Icon {
	return Icon{
		Name:  name,
		Kind:  PackageTypeIcon,
		Asset: "assets/techIcons/" + name + ".png",
		Glyph: "⬢",
	}
}

// severity labels are matched case-sensitive
var severityIcons = map[string]Icon{
	"Critical": severity("critical"),
	"High":     severity("high"),
	"Medium":   severity("medium"),
	"Low":      severity("low"),
}

// package types are matched on their lowercase form
var packageTypeIcons = map[string]Icon{
	"maven":    packageType("maven"),
	"docker":   packageType("docker"),
	"rpm":      packageType("rpm"),
	"generic":  packageType("generic"),
	"npm":      packageType("npm"),
	"python":   packageType("python"),
	"composer": packageType("composer"),
	"go":       packageType("go"),
	"alpine":   packageType("alpine"),
	"debian":   packageType("debian"),
}

// ResolveIcon returns the icon for a cell, if its column carries icons and
// the value is a known one.
func ResolveIcon(column string, value Value) (Icon, bool) {
	var icon Icon
	var ok bool
	switch column {
	case SeverityColumn:
		icon, ok = severityIcons[value.String()]
	case TypeColumn:
		icon, ok = packageTypeIcons[strings.ToLower(value.String())]
	}
	return icon, ok
}
