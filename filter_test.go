// Copyright (c) Mondoo, Inc.
// SPDX-License-Identifier: BUSL-1.1

package datatable

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilter(t *testing.T) {
	columns := []string{"Name", "Severity", "Score"}
	rows := []Row{
		{"Name": String("openssl"), "Severity": String("Critical"), "Score": Number(9.8), "Hidden": String("zlib")},
		{"Name": String("zlib"), "Severity": String("Low"), "Score": Number(3.1)},
		{"Name": String("OpenLDAP"), "Severity": String("High"), "Score": Number(7.5)},
	}

	tests := []struct {
		search string
		want   []string
	}{
		{"", []string{"openssl", "zlib", "OpenLDAP"}},
		{"open", []string{"openssl", "OpenLDAP"}},
		{"OPEN", []string{"openssl", "OpenLDAP"}},
		{"critical", []string{"openssl"}},
		{"9.8", []string{"openssl"}},
		{".", []string{"openssl", "zlib", "OpenLDAP"}},
		// only declared columns are searched
		{"zlib", []string{"zlib"}},
		{"nothing", []string{}},
	}

	for i := range tests {
		cur := tests[i]
		t.Run(cur.search, func(t *testing.T) {
			res := Filter(rows, columns, cur.search)
			assert.Equal(t, cur.want, names(res))

			// the result is exactly the set of matching rows
			for _, row := range rows {
				match := false
				for _, col := range columns {
					if strings.Contains(strings.ToLower(row[col].String()), strings.ToLower(cur.search)) {
						match = true
					}
				}
				assert.Equal(t, match, Matches(row, columns, cur.search))
			}
		})
	}
}
