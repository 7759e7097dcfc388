// Copyright (c) Mondoo, Inc.
// SPDX-License-Identifier: BUSL-1.1

package reporter

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"go.mondoo.com/datatable"
)

type localFileHandler struct {
	fs       afero.Fs
	file     string
	reporter *Reporter
}

// we reuse the Reporter's Print method by simply pointing the writer
// towards a file instead of stdout
func (h *localFileHandler) WriteView(ctx context.Context, v *datatable.View) error {
	trimmedFile := strings.TrimPrefix(h.file, "file://")
	f, err := h.fs.Create(trimmedFile)
	if err != nil {
		return err
	}
	defer f.Close() //nolint: errcheck

	err = h.reporter.Print(v, f)
	if err != nil {
		return err
	}
	log.Info().Str("file", trimmedFile).Msg("wrote table to file")
	return nil
}
