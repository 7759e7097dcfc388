// Copyright (c) Mondoo, Inc.
// SPDX-License-Identifier: BUSL-1.1

// Package web serves a dataset as an HTML table. Every request builds a
// fresh view, its sort and search state is carried in the query string.
package web

import (
	"bytes"
	"html/template"
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog/log"
	"go.mondoo.com/datatable"
	"go.mondoo.com/datatable/cli/components"
	"go.mondoo.com/datatable/internal/dataset"
)

var page = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <title>{{.Title}}</title>
</head>
<body>
  <h1 id="tableTitle">{{.Title}}</h1>
{{.Table}}
</body>
</html>
`))

type Handler struct {
	Title   string
	dataset *dataset.Dataset
	table   components.HTMLTable
}

func NewHandler(d *dataset.Dataset, title string, assetPrefix string) *Handler {
	table := components.NewHTMLTable()
	table.AssetPrefix = assetPrefix
	return &Handler{
		Title:   title,
		dataset: d,
		table:   table,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	v, err := h.dataset.View()
	if err != nil {
		log.Error().Err(err).Msg("could not create table view")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if err := applyQuery(v, r); err != nil {
		log.Debug().Err(err).Str("query", r.URL.RawQuery).Msg("rejected table state")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	table := h.table
	table.Action = r.URL.Path
	fragment, err := table.Render(v)
	if err != nil {
		log.Error().Err(err).Msg("could not render table")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	b := bytes.Buffer{}
	err = page.Execute(&b, struct {
		Title string
		Table template.HTML
	}{
		Title: h.Title,
		Table: template.HTML(fragment),
	})
	if err != nil {
		log.Error().Err(err).Msg("could not render page")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodGet {
		w.Write(b.Bytes()) //nolint: errcheck
	}
}

// applyQuery restores sort and search state from the request. Missing
// parameters keep the defaults of the view.
func applyQuery(v *datatable.View, r *http.Request) error {
	q := r.URL.Query()

	column := q.Get(components.QuerySort)
	if column == "" {
		column = v.OrderBy()
	}
	order, err := datatable.ParseOrder(q.Get(components.QueryOrder))
	if err != nil {
		return err
	}
	if err := v.SortBy(column, order); err != nil {
		return errors.Wrap(err, "invalid sort parameter")
	}

	v.SetSearch(q.Get(components.QuerySearch))
	return nil
}
