package storagemanager

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih-iver/Storage-Manager/catalog"
	"github.com/fatih-iver/Storage-Manager/fio"
	"github.com/fatih-iver/Storage-Manager/model"
	"github.com/fatih-iver/Storage-Manager/records"
)

// DB is a flat file database living in one directory: a catalog file of types
// and, per type, a set of record files. Only one DB may use a directory at a time.
type DB struct {
	flock   fio.FileLocker
	catalog *catalog.Store
	records *records.Store

	options options
}

func Open(dirPath string, opts ...Option) (*DB, error) {
	options := defaultOptions(dirPath)
	for _, opt := range opts {
		opt(&options)
	}
	if options.maxPagesPerFile <= 0 {
		options.maxPagesPerFile = records.DefaultMaxPagesPerFile
	}

	if err := os.MkdirAll(options.dirPath, os.ModePerm); err != nil {
		return nil, err
	}

	flock := fio.NewFlock(options.dirPath)
	locked, err := flock.TryLock()
	if err != nil {
		return nil, err
	}
	if !locked {
		return nil, ErrDirIsUsing
	}

	catalogPath := filepath.Join(options.dirPath, options.catalogFileName)
	if err = fio.Touch(catalogPath); err != nil {
		_ = flock.Unlock()
		return nil, err
	}

	recordStore := records.NewStore(records.Config{
		Dir:              options.dirPath,
		FileNamer:        options.fileNamer,
		Codec:            options.codec,
		IOManagerCreator: options.ioManagerCreator,
		MaxPagesPerFile:  options.maxPagesPerFile,
		Logger:           options.logger,
	})

	return &DB{
		flock:   flock,
		catalog: catalog.NewStore(catalogPath, options.codec, options.ioManagerCreator, recordStore, options.logger),
		records: recordStore,
		options: options,
	}, nil
}

// Close release the directory lock
func (db *DB) Close() error {
	if db.flock == nil {
		return nil
	}
	err := db.flock.Unlock()
	db.flock = nil
	return err
}

func (db *DB) checkOpen() error {
	if db.flock == nil {
		return ErrDBClosed
	}
	return nil
}

// CreateType adds a type to the catalog and creates its first record file.
func (db *DB) CreateType(name string, fieldNames []string) error {
	if err := db.checkOpen(); err != nil {
		return err
	}
	td, err := model.NewTypeDescriptor(name, fieldNames)
	if err != nil {
		return fmt.Errorf("create type %q: %w", name, err)
	}
	return db.catalog.AddType(td)
}

// DeleteType removes a type and every record file of it, unknown types are ignored.
func (db *DB) DeleteType(name string) error {
	if err := db.checkOpen(); err != nil {
		return err
	}
	if model.ValidateTypeName(name) != nil {
		return nil
	}
	return db.catalog.DeleteType(name)
}

func (db *DB) HasType(name string) (bool, error) {
	if err := db.checkOpen(); err != nil {
		return false, err
	}
	return db.catalog.SearchType(name)
}

// GetType return the descriptor of a type, nil if it does not exist
func (db *DB) GetType(name string) (*model.TypeDescriptor, error) {
	if err := db.checkOpen(); err != nil {
		return nil, err
	}
	return db.catalog.GetType(name)
}

// ListTypes return the names of all types sorted lexicographically
func (db *DB) ListTypes() ([]string, error) {
	if err := db.checkOpen(); err != nil {
		return nil, err
	}
	return db.catalog.ListTypes()
}

// CreateRecord stores fieldValues keyed by its first value, replacing a record with the same key.
func (db *DB) CreateRecord(typeName string, fieldValues []int64) error {
	if err := db.checkOpen(); err != nil {
		return err
	}
	if model.ValidateTypeName(typeName) != nil {
		return fmt.Errorf("%w: %q", ErrTypeNotFound, typeName)
	}
	return db.records.Create(typeName, fieldValues)
}

func (db *DB) UpdateRecord(typeName string, key int64, fieldValues []int64) error {
	if err := db.checkOpen(); err != nil {
		return err
	}
	if model.ValidateTypeName(typeName) != nil {
		return nil
	}
	return db.records.Update(typeName, key, fieldValues)
}

func (db *DB) DeleteRecord(typeName string, key int64) error {
	if err := db.checkOpen(); err != nil {
		return err
	}
	if model.ValidateTypeName(typeName) != nil {
		return nil
	}
	return db.records.Delete(typeName, key)
}

// SearchRecord return the field values of the record with key, found is false if there is none
func (db *DB) SearchRecord(typeName string, key int64) (values []int64, found bool, err error) {
	if err = db.checkOpen(); err != nil {
		return nil, false, err
	}
	if model.ValidateTypeName(typeName) != nil {
		return nil, false, nil
	}
	return db.records.Search(typeName, key)
}

// ListRecords return the field values of every record of a type sorted by key
func (db *DB) ListRecords(typeName string) ([][]int64, error) {
	if err := db.checkOpen(); err != nil {
		return nil, err
	}
	if model.ValidateTypeName(typeName) != nil {
		return nil, nil
	}
	return db.records.List(typeName)
}

// RecordFileCount return how many overflow files a type currently spans
func (db *DB) RecordFileCount(typeName string) (int, error) {
	if err := db.checkOpen(); err != nil {
		return 0, err
	}
	if model.ValidateTypeName(typeName) != nil {
		return 0, nil
	}
	return db.records.FileCount(typeName)
}
