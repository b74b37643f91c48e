package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportWritesFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "equipment.csv")

	rootCmd.SetArgs([]string{"export", "equipment", "--out", out})
	rootCmd.SetErr(&bytes.Buffer{})
	require.NoError(t, rootCmd.Execute())

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimPrefix(string(data), "\uFEFF"), "\n")
	assert.Len(t, lines, 13) // header + 12 seeded units
}

func TestExportRejectsUnknownReport(t *testing.T) {
	rootCmd.SetArgs([]string{"export", "invoices"})
	rootCmd.SetErr(&bytes.Buffer{})
	assert.Error(t, rootCmd.Execute())
}
