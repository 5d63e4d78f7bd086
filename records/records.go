// Package records manages the record pages of every type. The records of a type
// live in a set of overflow files numbered from 0, each holding at most
// MaxPagesPerFile record pages.
package records

import (
	"errors"
	"fmt"
	"io"
	"log"
	"path/filepath"

	"github.com/fatih-iver/Storage-Manager/codec"
	"github.com/fatih-iver/Storage-Manager/fio"
	"github.com/fatih-iver/Storage-Manager/model"
	"github.com/fatih-iver/Storage-Manager/ordered"
)

const DefaultMaxPagesPerFile = 1000

// FileNamer return the file name of one overflow file of a type
type FileNamer func(typeName string, fileIndex int) string

func DefaultFileNamer(typeName string, fileIndex int) string {
	return fmt.Sprintf("%s%d", typeName, fileIndex)
}

type Config struct {
	Dir              string
	FileNamer        FileNamer
	Codec            codec.Codec
	IOManagerCreator fio.IOManagerCreator
	// MaxPagesPerFile bounds every page scan of one file and so the pages a file can hold
	MaxPagesPerFile int
	Logger          *log.Logger
}

// Store reads record pages from disk on every call, nothing is cached between calls.
type Store struct {
	cfg Config
}

func NewStore(cfg Config) *Store {
	if cfg.FileNamer == nil {
		cfg.FileNamer = DefaultFileNamer
	}
	if cfg.Codec == nil {
		cfg.Codec = codec.NewCodecImpl()
	}
	if cfg.IOManagerCreator == nil {
		cfg.IOManagerCreator = fio.DefaultIOManagerCreator
	}
	if cfg.MaxPagesPerFile <= 0 {
		cfg.MaxPagesPerFile = DefaultMaxPagesPerFile
	}
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard, "", 0)
	}
	return &Store{cfg: cfg}
}

func (s *Store) FilePath(typeName string, fileIndex int) string {
	return filepath.Join(s.cfg.Dir, s.cfg.FileNamer(typeName, fileIndex))
}

// InitFiles makes the empty file 0 of a type.
func (s *Store) InitFiles(typeName string) error {
	return fio.Touch(s.FilePath(typeName, 0))
}

// DropFiles removes the files of a type from index 0 up to the first missing index.
func (s *Store) DropFiles(typeName string) error {
	fileIndex := 0
	for ; ; fileIndex++ {
		path := s.FilePath(typeName, fileIndex)
		exist, err := fio.Exists(path)
		if err != nil {
			return err
		}
		if !exist {
			break
		}
		if err = fio.Remove(path); err != nil {
			return err
		}
	}
	if fileIndex > 0 {
		s.cfg.Logger.Printf("dropped %d record files of type %s", fileIndex, typeName)
	}
	return nil
}

// FileCount return how many consecutive overflow files a type has.
func (s *Store) FileCount(typeName string) (int, error) {
	fileIndex := 0
	for ; ; fileIndex++ {
		exist, err := fio.Exists(s.FilePath(typeName, fileIndex))
		if err != nil {
			return 0, err
		}
		if !exist {
			return fileIndex, nil
		}
	}
}

func (s *Store) withFile(path string, fn func(pf *model.PageFile) error) error {
	ioManager, err := s.cfg.IOManagerCreator(path)
	if err != nil {
		return fmt.Errorf("open record file %s: %w", path, err)
	}
	pf := model.OpenPageFile(path, model.RecordPageSize, ioManager)
	defer pf.Close()
	return fn(pf)
}

// eachFile visits the files of a type in index order until fn stops it or an index is missing.
func (s *Store) eachFile(typeName string, fn func(fileIndex int, pf *model.PageFile) (bool, error)) (int, error) {
	for fileIndex := 0; ; fileIndex++ {
		path := s.FilePath(typeName, fileIndex)
		exist, err := fio.Exists(path)
		if err != nil {
			return fileIndex, err
		}
		if !exist {
			return fileIndex, nil
		}

		var stop bool
		err = s.withFile(path, func(pf *model.PageFile) error {
			var err error
			stop, err = fn(fileIndex, pf)
			return err
		})
		if err != nil || stop {
			return fileIndex, err
		}
	}
}

func (s *Store) readPage(pf *model.PageFile, index int64) (*model.RecordPage, error) {
	data, err := pf.ReadPage(index)
	if err != nil {
		return nil, err
	}
	page := model.NewRecordPage()
	if err = s.cfg.Codec.UnmarshalRecordPage(data, page); err != nil {
		return nil, fmt.Errorf("%s page %d: %w", pf.Path, index, err)
	}
	return page, nil
}

func (s *Store) writePage(pf *model.PageFile, index int64, page *model.RecordPage) error {
	data, err := s.cfg.Codec.MarshalRecordPage(page)
	if err != nil {
		return err
	}
	if err = pf.WritePage(index, data); err != nil {
		return fmt.Errorf("write %s page %d: %w", pf.Path, index, err)
	}
	return nil
}

// scanPages visits at most MaxPagesPerFile pages of one file, stopping early at the end of the file.
func (s *Store) scanPages(pf *model.PageFile, fn func(index int64, page *model.RecordPage) (bool, error)) (bool, error) {
	for index := int64(0); index < int64(s.cfg.MaxPagesPerFile); index++ {
		page, err := s.readPage(pf, index)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return false, nil
			}
			return false, err
		}
		stop, err := fn(index, page)
		if err != nil || stop {
			return stop, err
		}
	}
	return false, nil
}

// rewrite finds the page holding key and lets change modify it before the page is written back.
func (s *Store) rewrite(typeName string, key int64, change func(page *model.RecordPage)) (bool, error) {
	var found bool
	_, err := s.eachFile(typeName, func(_ int, pf *model.PageFile) (bool, error) {
		return s.scanPages(pf, func(index int64, page *model.RecordPage) (bool, error) {
			if page.Search(key) == nil {
				return false, nil
			}
			found = true
			change(page)
			return true, s.writePage(pf, index, page)
		})
	})
	return found, err
}

// Search return the field values of the record with key, found is false when no record has it.
func (s *Store) Search(typeName string, key int64) (values []int64, found bool, err error) {
	_, err = s.eachFile(typeName, func(_ int, pf *model.PageFile) (bool, error) {
		return s.scanPages(pf, func(_ int64, page *model.RecordPage) (bool, error) {
			if record := page.Search(key); record != nil {
				values, found = record.FieldValues, true
				return true, nil
			}
			return false, nil
		})
	})
	if err != nil {
		return nil, false, err
	}
	return values, found, nil
}

// Create stores a record keyed by fieldValues[0], replacing any record with that key.
// The record goes to the first page with a free slot; when every file is full a new file is added.
func (s *Store) Create(typeName string, fieldValues []int64) error {
	record, err := model.NewRecord(fieldValues)
	if err != nil {
		return err
	}

	exist, err := fio.Exists(s.FilePath(typeName, 0))
	if err != nil {
		return err
	}
	if !exist {
		return fmt.Errorf("%w: %s", model.ErrTypeNotFound, typeName)
	}

	if err = s.Delete(typeName, record.Key); err != nil {
		return err
	}

	var added bool
	fileCount, err := s.eachFile(typeName, func(_ int, pf *model.PageFile) (bool, error) {
		for index := int64(0); index < int64(s.cfg.MaxPagesPerFile); index++ {
			page, err := s.readPage(pf, index)
			if errors.Is(err, io.EOF) {
				page, err = model.NewRecordPage(), nil
			}
			if err != nil {
				return false, err
			}
			if page.Add(record) {
				added = true
				return true, s.writePage(pf, index, page)
			}
		}
		return false, nil
	})
	if err != nil || added {
		return err
	}

	// every file is full, overflow into the next one
	path := s.FilePath(typeName, fileCount)
	err = s.withFile(path, func(pf *model.PageFile) error {
		page := model.NewRecordPage()
		page.Add(record)
		return s.writePage(pf, 0, page)
	})
	if err != nil {
		return err
	}
	s.cfg.Logger.Printf("type %s overflowed into %s", typeName, path)
	return nil
}

// Update replaces the values of the record with key, the key itself never changes.
// Updating a missing key does nothing.
func (s *Store) Update(typeName string, key int64, fieldValues []int64) error {
	record, err := model.NewRecord(fieldValues)
	if err != nil {
		return err
	}
	if record.Key != key {
		return fmt.Errorf("%w: key %d, first value %d", model.ErrKeyMismatch, key, record.Key)
	}

	_, err = s.rewrite(typeName, key, func(page *model.RecordPage) {
		page.Delete(key)
		page.Add(record)
	})
	return err
}

// Delete removes the record with key, deleting a missing key does nothing.
func (s *Store) Delete(typeName string, key int64) error {
	_, err := s.rewrite(typeName, key, func(page *model.RecordPage) {
		page.Delete(key)
	})
	return err
}

// List return the field values of every record of a type ascending by key.
func (s *Store) List(typeName string) ([][]int64, error) {
	records := ordered.NewRecords(0)
	_, err := s.eachFile(typeName, func(_ int, pf *model.PageFile) (bool, error) {
		return s.scanPages(pf, func(_ int64, page *model.RecordPage) (bool, error) {
			for _, record := range page.Records {
				records.Put(record)
			}
			return false, nil
		})
	})
	if err != nil {
		return nil, err
	}
	return records.Values(), nil
}
