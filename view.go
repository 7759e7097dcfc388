// Copyright (c) Mondoo, Inc.
// SPDX-License-Identifier: BUSL-1.1

package datatable

import (
	"slices"

	"github.com/cockroachdb/errors"
	"github.com/hashicorp/go-multierror"
)

// View holds the rows of a table together with its transient UI state:
// the sort column and direction and the search text. All displayed data is
// derived from the immutable input rows on every call to Rows.
//
// A View is owned by a single UI loop and is not safe for concurrent use.
type View struct {
	columns []string
	rows    []Row

	order   Order
	orderBy string
	search  string
}

// Header describes one column header as it should be rendered
type Header struct {
	Name  string
	Label string
	// Active is set for the column the view is sorted by
	Active    bool
	Direction Order
	// NextOrder is the direction a click on this header sorts by
	NextOrder Order
}

// SortLabel is the accessible text for the header, empty if inactive
func (h Header) SortLabel() string {
	if !h.Active {
		return ""
	}
	return h.Direction.Label()
}

// New creates a view over the given columns and rows. Every row must
// provide a value for every column and each column must hold values of a
// single kind. The view starts sorted ascending by the first column.
func New(columns []string, rows []Row) (*View, error) {
	if len(columns) == 0 {
		return nil, ErrNoColumns
	}

	seen := make(map[string]struct{}, len(columns))
	for _, col := range columns {
		if _, ok := seen[col]; ok {
			return nil, errors.Wrapf(ErrDuplicateColumn, "column %q", col)
		}
		seen[col] = struct{}{}
	}

	if err := validateRows(columns, rows); err != nil {
		return nil, err
	}

	return &View{
		columns: slices.Clone(columns),
		rows:    slices.Clone(rows),
		order:   Ascending,
		orderBy: columns[0],
	}, nil
}

func validateRows(columns []string, rows []Row) error {
	var err error
	kinds := make(map[string]Kind, len(columns))
	mixed := map[string]bool{}

	for i := range rows {
		row := rows[i]
		for _, col := range columns {
			v, ok := row[col]
			if !ok || !v.IsValid() {
				err = multierror.Append(err, errors.Wrapf(ErrMissingColumn, "row %d, column %q", i, col))
				continue
			}

			k, ok := kinds[col]
			if !ok {
				kinds[col] = v.Kind()
				continue
			}
			if k != v.Kind() && !mixed[col] {
				mixed[col] = true
				err = multierror.Append(err, errors.Wrapf(ErrMixedColumnKinds, "row %d, column %q has a %s, expected %s", i, col, v.Kind(), k))
			}
		}
	}
	return err
}

func (v *View) Columns() []string {
	return slices.Clone(v.columns)
}

func (v *View) HasColumn(column string) bool {
	return slices.Contains(v.columns, column)
}

// AllRows returns all rows in input order, unsorted and unfiltered
func (v *View) AllRows() []Row {
	return slices.Clone(v.rows)
}

// Len is the number of rows before filtering
func (v *View) Len() int {
	return len(v.rows)
}

func (v *View) Order() Order {
	return v.order
}

func (v *View) OrderBy() string {
	return v.orderBy
}

func (v *View) Search() string {
	return v.search
}

// NextOrder is the direction that sorting by column would switch to
func (v *View) NextOrder(column string) Order {
	if v.orderBy == column && v.order == Ascending {
		return Descending
	}
	return Ascending
}

// Sort handles a click on the header of column: sorting by the active
// column flips from ascending to descending, every other click sorts
// ascending.
func (v *View) Sort(column string) error {
	if !v.HasColumn(column) {
		return errors.Wrapf(ErrUnknownColumn, "cannot sort by %q", column)
	}
	v.order = v.NextOrder(column)
	v.orderBy = column
	return nil
}

// SortBy sets the sort state directly, e.g. from a restored URL or flags
func (v *View) SortBy(column string, order Order) error {
	if !v.HasColumn(column) {
		return errors.Wrapf(ErrUnknownColumn, "cannot sort by %q", column)
	}
	if order != Ascending && order != Descending {
		return errors.Wrapf(ErrUnknownSortOrder, "'%s'", order)
	}
	v.order = order
	v.orderBy = column
	return nil
}

func (v *View) SetSearch(search string) {
	v.search = search
}

func (v *View) ClearSearch() {
	v.search = ""
}

func (v *View) Headers() []Header {
	res := make([]Header, len(v.columns))
	for i, col := range v.columns {
		h := Header{
			Name:      col,
			Label:     SplitCamelCase(col),
			NextOrder: v.NextOrder(col),
		}
		if col == v.orderBy {
			h.Active = true
			h.Direction = v.order
		}
		res[i] = h
	}
	return res
}

// Rows returns the rows to display: a copy of all rows, sorted by the
// current comparator and filtered by the search text.
func (v *View) Rows() []Row {
	rows := slices.Clone(v.rows)
	slices.SortStableFunc(rows, Comparator(v.order, v.orderBy))
	return Filter(rows, v.columns, v.search)
}
