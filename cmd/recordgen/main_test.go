package main

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pkg.jsn.cam/recordgen/pkg/recordgen"
)

func TestExportCommand(t *testing.T) {
	out := filepath.Join(t.TempDir(), "people.csv")
	rootCmd.SetArgs([]string{"export", "--region", "by", "--errors", "1.5", "--seed", "3", "--pages", "3", "--concurrency", "2", "--out", out})

	require.NoError(t, rootCmd.Execute())

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 1+3*recordgen.PageSize)
	assert.Equal(t, "60", rows[len(rows)-1][0])
}

func TestExportCommandRejectsBadSeed(t *testing.T) {
	out := filepath.Join(t.TempDir(), "bad.csv")
	rootCmd.SetArgs([]string{"export", "--seed", "abc", "--pages", "1", "--out", out})

	err := rootCmd.Execute()
	assert.ErrorIs(t, err, recordgen.ErrInvalidSeed)

	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr), "failed export must not leave %s behind", out)
	entries, err := os.ReadDir(filepath.Dir(out))
	require.NoError(t, err)
	assert.Empty(t, entries, "no temp files left behind")
}

func TestExportCommandReplacesExistingFileOnlyOnSuccess(t *testing.T) {
	out := filepath.Join(t.TempDir(), "keep.csv")
	require.NoError(t, os.WriteFile(out, []byte("previous\n"), 0o644))

	rootCmd.SetArgs([]string{"export", "--seed", "x1", "--pages", "1", "--out", out})
	require.Error(t, rootCmd.Execute())

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "previous\n", string(data))
}

func TestLocalRegions(t *testing.T) {
	regions := localRegions()
	require.Len(t, regions, len(recordgen.Regions))
	assert.Equal(t, "en", regions[0].Code)
}
