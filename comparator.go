// Copyright (c) Mondoo, Inc.
// SPDX-License-Identifier: BUSL-1.1

package datatable

import (
	"strings"

	"github.com/cockroachdb/errors"
)

type Order string

const (
	Ascending  Order = "asc"
	Descending Order = "desc"
)

// Orders that are accepted by ParseOrder
var Orders = map[string]Order{
	"":           Ascending,
	"asc":        Ascending,
	"ascending":  Ascending,
	"desc":       Descending,
	"descending": Descending,
}

func ParseOrder(s string) (Order, error) {
	o, ok := Orders[strings.ToLower(s)]
	if !ok {
		return "", errors.Wrapf(ErrUnknownSortOrder, "'%s', available: asc, desc", s)
	}
	return o, nil
}

func (o Order) String() string {
	return string(o)
}

// Label is the accessible text announcing the sort state
func (o Order) Label() string {
	if o == Descending {
		return "sorted descending"
	}
	return "sorted ascending"
}

// Indicator is the directional arrow shown next to the active header
func (o Order) Indicator() string {
	if o == Descending {
		return "▼"
	}
	return "▲"
}

func descendingComparator(a Row, b Row, column string) int {
	av, bv := a[column], b[column]
	if bv.Compare(av) < 0 {
		return -1
	}
	if bv.Compare(av) > 0 {
		return 1
	}
	return 0
}

// Comparator returns a comparison function over the given column for use
// with a stable sort. Ascending order is the negated descending comparison.
func Comparator(order Order, column string) func(a Row, b Row) int {
	if order == Descending {
		return func(a Row, b Row) int {
			return descendingComparator(a, b, column)
		}
	}
	return func(a Row, b Row) int {
		return -descendingComparator(a, b, column)
	}
}
