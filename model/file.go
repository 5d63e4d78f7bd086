package model

import (
	"fmt"
	"io"

	"github.com/fatih-iver/Storage-Manager/fio"
)

// PageFile addresses a file as a sequence of fixed size pages.
type PageFile struct {
	Path      string
	PageSize  int64
	IoManager fio.IOManager
}

func OpenPageFile(path string, pageSize int64, ioManager fio.IOManager) *PageFile {
	return &PageFile{
		Path:      path,
		PageSize:  pageSize,
		IoManager: ioManager,
	}
}

// ReadPage returns the raw page at index, io.EOF once index is past the end of the file.
func (pf *PageFile) ReadPage(index int64) ([]byte, error) {
	fileSize, err := pf.IoManager.Size()
	if err != nil {
		return nil, err
	}

	offset := index * pf.PageSize
	if offset >= fileSize {
		return nil, io.EOF
	}
	if offset+pf.PageSize > fileSize {
		return nil, fmt.Errorf("%w: %s has a short page at %d", ErrDataFileCorrupted, pf.Path, index)
	}

	buf := make([]byte, pf.PageSize)
	if _, err = pf.IoManager.Read(buf, offset); err != nil {
		return nil, err
	}
	return buf, nil
}

// WritePage rewrites the page at index in place.
func (pf *PageFile) WritePage(index int64, data []byte) error {
	if int64(len(data)) != pf.PageSize {
		return fmt.Errorf("page of %d bytes does not fit page size %d", len(data), pf.PageSize)
	}
	_, err := pf.IoManager.Write(data, index*pf.PageSize)
	return err
}

func (pf *PageFile) Sync() error {
	return pf.IoManager.Sync()
}

func (pf *PageFile) Close() error {
	return pf.IoManager.Close()
}
