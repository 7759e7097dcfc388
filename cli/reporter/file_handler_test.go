// Copyright (c) Mondoo, Inc.
// SPDX-License-Identifier: BUSL-1.1

package reporter

import (
	"context"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileHandler(t *testing.T) {
	v := exampleView(t)

	t.Run("with no prefix", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		config := HandlerConfig{Format: "table", OutputTarget: "/tmp/findings.txt"}
		handler, err := NewOutputHandlerFs(fs, config)
		require.NoError(t, err)
		err = handler.WriteView(context.Background(), v)
		require.NoError(t, err)

		data, err := afero.ReadFile(fs, "/tmp/findings.txt")
		require.NoError(t, err)
		strData := string(data)
		assert.Contains(t, strData, "Name ▲")
		assert.Contains(t, strData, "Critical")
	})

	t.Run("with file:// prefix", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		config := HandlerConfig{Format: "html", OutputTarget: "file:///tmp/findings.html"}
		handler, err := NewOutputHandlerFs(fs, config)
		require.NoError(t, err)
		err = handler.WriteView(context.Background(), v)
		require.NoError(t, err)

		data, err := afero.ReadFile(fs, "/tmp/findings.html")
		require.NoError(t, err)
		assert.Contains(t, string(data), `<table aria-labelledby="tableTitle">`)
	})
}

func TestNewOutputHandler(t *testing.T) {
	handler, err := NewOutputHandler(HandlerConfig{Format: "json"})
	require.NoError(t, err)
	r, ok := handler.(*Reporter)
	require.True(t, ok)
	assert.Equal(t, JSON, r.Format)

	handler, err = NewOutputHandler(HandlerConfig{Format: "yaml", OutputTarget: "report.yaml"})
	require.NoError(t, err)
	_, ok = handler.(*localFileHandler)
	assert.True(t, ok)

	_, err = NewOutputHandler(HandlerConfig{Format: "junit"})
	assert.Error(t, err)

	assert.Equal(t, CLI, determineOutputType(""))
	assert.Equal(t, CLI, determineOutputType("-"))
	assert.Equal(t, LOCAL_FILE, determineOutputType("./out.html"))
}
