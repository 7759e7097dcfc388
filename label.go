// Copyright (c) Mondoo, Inc.
// SPDX-License-Identifier: BUSL-1.1

package datatable

import "strings"

// SplitCamelCase turns a joined column name like "packageType" into the
// header label "package Type".
func SplitCamelCase(name string) string {
	b := strings.Builder{}
	b.Grow(len(name) + 4)
	for i := 0; i < len(name); i++ {
		c := name[i]
		b.WriteByte(c)
		if isLower(c) && i+1 < len(name) && isUpper(name[i+1]) {
			b.WriteByte(' ')
		}
	}
	return b.String()
}

func isLower(c byte) bool { return c >= 'a' && c <= 'z' }

func isUpper(c byte) bool { return c >= 'A' && c <= 'Z' }
