// Copyright (c) Mondoo, Inc.
// SPDX-License-Identifier: BUSL-1.1

package datatable

import "strings"

// Matches reports whether any of the row's columns contains search,
// ignoring case. An empty search matches every row.
func Matches(row Row, columns []string, search string) bool {
	if search == "" {
		return true
	}
	needle := strings.ToLower(search)
	for _, col := range columns {
		if strings.Contains(strings.ToLower(row[col].String()), needle) {
			return true
		}
	}
	return false
}

// Filter returns the rows matching search, keeping their order
func Filter(rows []Row, columns []string, search string) []Row {
	res := make([]Row, 0, len(rows))
	for i := range rows {
		if Matches(rows[i], columns, search) {
			res = append(res, rows[i])
		}
	}
	return res
}
