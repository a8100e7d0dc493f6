package cmd_fasta_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rskv-p/kvtrie/cmd/cmd_fasta"
	"github.com/rskv-p/kvtrie/config"
)

const records = `>sp|P01|first protein
MKV
LLA
>sp|P02|second protein
GGS
`

func write(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	data := write(t, dir, "seq.fasta", records)

	cfg := config.Default()
	cfg.DeleteFile = write(t, dir, "d.txt", "P02\nP99\n")
	cfg.QueryFile = write(t, dir, "q.txt", "P01\nP02\n")

	var out bytes.Buffer
	require.NoError(t, cmd_fasta.Run(cfg, []string{data}, &out, zerolog.Nop()))

	got := out.String()
	assert.Contains(t, got, "Associative array loaded\n")
	assert.Contains(t, got, "DELETE: successfully deleted record with key 'P02'\n")
	assert.Contains(t, got, "DELETE: key 'P99' produced no value\n")
	assert.Contains(t, got, "LOOKUP: key 'P01' produced record:\n"+
		"FASTA Record:\n"+
		"ID   [P01]\n"+
		"DESC [sp|P01|first protein]\n"+
		"SEQ  [MKVLLA]\n")
	assert.Contains(t, got, "LOOKUP: key 'P02' produced no value\n")
	assert.Contains(t, got, "Associative array contains 1 entries\n")
}

func TestRunBadRecord(t *testing.T) {
	dir := t.TempDir()
	data := write(t, dir, "bad.fasta", ">no id bars\nACGT\n")

	var out bytes.Buffer
	err := cmd_fasta.Run(config.Default(), []string{data}, &out, zerolog.Nop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed loading from file")
}

func TestRunMissingFile(t *testing.T) {
	var out bytes.Buffer
	err := cmd_fasta.Run(config.Default(), []string{filepath.Join(t.TempDir(), "none.fasta")}, &out, zerolog.Nop())
	assert.Error(t, err)
}
