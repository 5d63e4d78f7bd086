package model

import (
	"bytes"
	"errors"
	"io"
	"path/filepath"
	"testing"

	"github.com/fatih-iver/Storage-Manager/fio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestPageFile(t *testing.T, pageSize int64) *PageFile {
	path := filepath.Join(t.TempDir(), "pages")
	ioManager, err := fio.NewFileIO(path)
	require.Nil(t, err)
	pf := OpenPageFile(path, pageSize, ioManager)
	t.Cleanup(func() {
		_ = pf.Close()
	})
	return pf
}

func TestPageFile_ReadPageEmpty(t *testing.T) {
	pf := openTestPageFile(t, 4)

	_, err := pf.ReadPage(0)
	assert.Equal(t, io.EOF, err)
}

func TestPageFile_WriteReadPage(t *testing.T) {
	pf := openTestPageFile(t, 4)

	assert.Nil(t, pf.WritePage(0, []byte("aaaa")))
	assert.Nil(t, pf.WritePage(1, []byte("bbbb")))

	data, err := pf.ReadPage(1)
	assert.Nil(t, err)
	assert.Equal(t, []byte("bbbb"), data)

	// rewrite the first page in place
	assert.Nil(t, pf.WritePage(0, []byte("cccc")))
	data, err = pf.ReadPage(0)
	assert.Nil(t, err)
	assert.Equal(t, []byte("cccc"), data)

	_, err = pf.ReadPage(2)
	assert.Equal(t, io.EOF, err)

	size, err := pf.IoManager.Size()
	assert.Nil(t, err)
	assert.Equal(t, int64(8), size)
}

func TestPageFile_WriteWrongSize(t *testing.T) {
	pf := openTestPageFile(t, 4)

	assert.NotNil(t, pf.WritePage(0, []byte("abc")))
}

func TestPageFile_ShortPage(t *testing.T) {
	pf := openTestPageFile(t, 4)

	_, err := pf.IoManager.Write(bytes.Repeat([]byte{1}, 6), 0)
	require.Nil(t, err)

	_, err = pf.ReadPage(0)
	assert.Nil(t, err)
	_, err = pf.ReadPage(1)
	assert.True(t, errors.Is(err, ErrDataFileCorrupted))
}

func TestPageFile_Sync(t *testing.T) {
	pf := openTestPageFile(t, 4)

	assert.Nil(t, pf.WritePage(0, []byte("aaaa")))
	assert.Nil(t, pf.Sync())
}
