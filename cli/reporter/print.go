// Copyright (c) Mondoo, Inc.
// SPDX-License-Identifier: BUSL-1.1

package reporter

import (
	"sort"
	"strings"
)

type Format byte

const (
	Table Format = iota + 1
	HTML
	YAML
	JSON
)

// Formats that are supported by the reporter
var Formats = map[string]Format{
	"table": Table,
	"":      Table,
	"html":  HTML,
	"yaml":  YAML,
	"yml":   YAML,
	"json":  JSON,
}

func AllFormats() string {
	var res []string
	for k := range Formats {
		if k != "" && // default if nothing is provided, ignore
			k != "yml" { // don't show both yaml and yml
			res = append(res, k)
		}
	}
	sort.Strings(res)
	return strings.Join(res, ", ")
}
