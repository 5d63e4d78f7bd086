package storagemanager

import (
	"fmt"

	"github.com/fatih-iver/Storage-Manager/model"
)

var (
	ErrDuplicateType = model.ErrDuplicateType
	ErrTypeNotFound  = model.ErrTypeNotFound
	ErrSchemaTooWide = model.ErrSchemaTooWide
	ErrFieldTooLong  = model.ErrFieldTooLong
	ErrInvalidName   = model.ErrInvalidName

	ErrRecordTooWide = model.ErrRecordTooWide
	ErrEmptyRecord   = model.ErrEmptyRecord
	ErrKeyMismatch   = model.ErrKeyMismatch

	ErrDataFileCorrupted = model.ErrDataFileCorrupted

	ErrDirIsUsing = addPrefix("direction is using")
	ErrDBClosed   = addPrefix("db is closed")
)

func addPrefix(errStr string) error {
	return fmt.Errorf("storage manager err: %s", errStr)
}
