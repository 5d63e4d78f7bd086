package model

import "fmt"

var (
	ErrSchemaTooWide = addPrefix("too many field names in type")
	ErrFieldTooLong  = addPrefix("name is longer than the word size")
	ErrInvalidName   = addPrefix("name is empty or not printable ascii")
	ErrRecordTooWide = addPrefix("too many field values in record")
	ErrEmptyRecord   = addPrefix("record has no key")

	ErrDataFileCorrupted = addPrefix("data file may be corrupted")
)

func addPrefix(errStr string) error {
	return fmt.Errorf("storage manager err: %s", errStr)
}

var (
	ErrDuplicateType = addPrefix("type already exists")
	ErrTypeNotFound  = addPrefix("type does not exist")
	ErrKeyMismatch   = addPrefix("first field value must equal the record key")
)
