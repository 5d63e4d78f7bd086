// Package catalog manages the type pages of the catalog file.
package catalog

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/fatih-iver/Storage-Manager/codec"
	"github.com/fatih-iver/Storage-Manager/fio"
	"github.com/fatih-iver/Storage-Manager/model"
	"github.com/fatih-iver/Storage-Manager/ordered"
)

// RecordFiles owns the record files that live and die with a type.
type RecordFiles interface {
	// InitFiles makes the first, empty record file of a type
	InitFiles(typeName string) error
	// DropFiles removes every record file of a type
	DropFiles(typeName string) error
}

// Store reads the catalog from disk on every call, nothing is cached between calls.
type Store struct {
	path             string
	codec            codec.Codec
	ioManagerCreator fio.IOManagerCreator
	files            RecordFiles
	logger           *log.Logger
}

func NewStore(path string, cd codec.Codec, creator fio.IOManagerCreator, files RecordFiles, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Store{
		path:             path,
		codec:            cd,
		ioManagerCreator: creator,
		files:            files,
		logger:           logger,
	}
}

func (s *Store) Path() string {
	return s.path
}

func (s *Store) open() (*model.PageFile, error) {
	ioManager, err := s.ioManagerCreator(s.path)
	if err != nil {
		return nil, fmt.Errorf("open catalog %s: %w", s.path, err)
	}
	return model.OpenPageFile(s.path, model.TypePageSize, ioManager), nil
}

// readPage return io.EOF once index is past the last page
func (s *Store) readPage(pf *model.PageFile, index int64) (*model.TypePage, error) {
	data, err := pf.ReadPage(index)
	if err != nil {
		return nil, err
	}
	page := model.NewTypePage()
	if err = s.codec.UnmarshalTypePage(data, page); err != nil {
		return nil, fmt.Errorf("catalog page %d: %w", index, err)
	}
	return page, nil
}

func (s *Store) writePage(pf *model.PageFile, index int64, page *model.TypePage) error {
	data, err := s.codec.MarshalTypePage(page)
	if err != nil {
		return err
	}
	if err = pf.WritePage(index, data); err != nil {
		return fmt.Errorf("write catalog page %d: %w", index, err)
	}
	return nil
}

// scan visits pages from the start of the file until fn stops it or the file ends.
func (s *Store) scan(pf *model.PageFile, fn func(index int64, page *model.TypePage) (bool, error)) error {
	for index := int64(0); ; index++ {
		page, err := s.readPage(pf, index)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		stop, err := fn(index, page)
		if err != nil || stop {
			return err
		}
	}
}

// GetType return the descriptor of name, nil when the type does not exist.
func (s *Store) GetType(name string) (*model.TypeDescriptor, error) {
	pf, err := s.open()
	if err != nil {
		return nil, err
	}
	defer pf.Close()

	var found *model.TypeDescriptor
	err = s.scan(pf, func(_ int64, page *model.TypePage) (bool, error) {
		found = page.Search(name)
		return found != nil, nil
	})
	return found, err
}

func (s *Store) SearchType(name string) (bool, error) {
	td, err := s.GetType(name)
	return td != nil, err
}

// AddType stores td in the first page with a free slot, appending a page when all are full,
// then creates the first record file of the type.
func (s *Store) AddType(td *model.TypeDescriptor) error {
	exist, err := s.SearchType(td.Name)
	if err != nil {
		return err
	}
	if exist {
		return fmt.Errorf("%w: %s", model.ErrDuplicateType, td.Name)
	}

	pf, err := s.open()
	if err != nil {
		return err
	}
	defer pf.Close()

	for index := int64(0); ; index++ {
		page, err := s.readPage(pf, index)
		if errors.Is(err, io.EOF) {
			page, err = model.NewTypePage(), nil
		}
		if err != nil {
			return err
		}

		if !page.Add(td) {
			continue
		}
		if err = s.writePage(pf, index, page); err != nil {
			return err
		}
		break
	}

	return s.files.InitFiles(td.Name)
}

// DeleteType removes name from its page and drops its record files.
// Deleting an unknown type only drops stray record files.
func (s *Store) DeleteType(name string) error {
	pf, err := s.open()
	if err != nil {
		return err
	}
	defer pf.Close()

	err = s.scan(pf, func(index int64, page *model.TypePage) (bool, error) {
		if !page.Delete(name) {
			return false, nil
		}
		return true, s.writePage(pf, index, page)
	})
	if err != nil {
		return err
	}

	if err = s.files.DropFiles(name); err != nil {
		return err
	}
	s.logger.Printf("type %s deleted", name)
	return nil
}

// ListTypes return every type name in lexicographic order.
func (s *Store) ListTypes() ([]string, error) {
	pf, err := s.open()
	if err != nil {
		return nil, err
	}
	defer pf.Close()

	names := ordered.NewNames(0)
	err = s.scan(pf, func(_ int64, page *model.TypePage) (bool, error) {
		for _, td := range page.Types {
			names.Put(td.Name)
		}
		return false, nil
	})
	if err != nil {
		return nil, err
	}
	return names.Values(), nil
}
