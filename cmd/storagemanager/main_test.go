package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "input.txt")
	output := filepath.Join(dir, "output.txt")
	dataDir := filepath.Join(dir, "data")

	require.Nil(t, os.WriteFile(input, []byte(`create type T 2 a b
create type S 1 x
create record T 2 20
create record T 1 10
search record T 2
list record T
list type
`), 0644))

	assert.Nil(t, run([]string{"-dir", dataDir, input, output}))

	out, err := os.ReadFile(output)
	assert.Nil(t, err)
	assert.Equal(t, "2 20\n1 10\n2 20\nS\nT\n", string(out))

	// state survives between runs
	require.Nil(t, os.WriteFile(input, []byte("delete type T\nlist type\n"), 0644))
	assert.Nil(t, run([]string{"-dir", dataDir, input, output}))
	out, err = os.ReadFile(output)
	assert.Nil(t, err)
	assert.Equal(t, "S\n", string(out))

	_, err = os.Stat(filepath.Join(dataDir, "T0"))
	assert.True(t, os.IsNotExist(err))
}

func TestRun_Errors(t *testing.T) {
	dir := t.TempDir()

	assert.NotNil(t, run([]string{"-dir", dir}))
	assert.NotNil(t, run([]string{"-dir", dir, filepath.Join(dir, "missing"), filepath.Join(dir, "out")}))
}
