// Copyright (c) Mondoo, Inc.
// SPDX-License-Identifier: BUSL-1.1

package datatable

import "github.com/cockroachdb/errors"

var (
	ErrNoColumns        = errors.New("table requires at least one column")
	ErrDuplicateColumn  = errors.New("duplicate column")
	ErrUnknownColumn    = errors.New("unknown column")
	ErrMissingColumn    = errors.New("row missing required column")
	ErrMixedColumnKinds = errors.New("column mixes strings and numbers")
	ErrUnknownSortOrder = errors.New("unknown sort order")
)
