package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewTypeDescriptor(t *testing.T) {
	td, err := NewTypeDescriptor("person", []string{"id", "age"})
	assert.Nil(t, err)
	assert.Equal(t, "person", td.Name)
	assert.Equal(t, 2, td.FieldNumber())

	td, err = NewTypeDescriptor("empty", nil)
	assert.Nil(t, err)
	assert.Equal(t, 0, td.FieldNumber())
}

func TestNewTypeDescriptor_Validation(t *testing.T) {
	_, err := NewTypeDescriptor("wide", strings.Split("a b c d e f g h i j k", " "))
	assert.Equal(t, ErrSchemaTooWide, err)

	_, err = NewTypeDescriptor("toolongname", nil)
	assert.Equal(t, ErrFieldTooLong, err)

	_, err = NewTypeDescriptor("t", []string{"ok", "fieldtoolong"})
	assert.Equal(t, ErrFieldTooLong, err)

	_, err = NewTypeDescriptor("", nil)
	assert.Equal(t, ErrInvalidName, err)

	_, err = NewTypeDescriptor("t", []string{"a\x00"})
	assert.Equal(t, ErrInvalidName, err)

	_, err = NewTypeDescriptor("tÿ", nil)
	assert.Equal(t, ErrInvalidName, err)

	_, err = NewTypeDescriptor("a/b", nil)
	assert.Equal(t, ErrInvalidName, err)

	_, err = NewTypeDescriptor("..", nil)
	assert.Equal(t, ErrInvalidName, err)

	// field names never reach a file name
	_, err = NewTypeDescriptor("t", []string{"a/b"})
	assert.Nil(t, err)

	_, err = NewTypeDescriptor("exactly8", strings.Split("a b c d e f g h i j", " "))
	assert.Nil(t, err)
}

func TestNewRecord(t *testing.T) {
	values := []int64{5, 10}
	r, err := NewRecord(values)
	assert.Nil(t, err)
	assert.Equal(t, int64(5), r.Key)
	assert.True(t, r.IsValid)
	assert.Equal(t, 2, r.FieldNumber())

	// the record owns its values
	values[1] = 11
	assert.Equal(t, []int64{5, 10}, r.FieldValues)

	_, err = NewRecord(nil)
	assert.Equal(t, ErrEmptyRecord, err)

	_, err = NewRecord(make([]int64, MaxFieldNumber+1))
	assert.Equal(t, ErrRecordTooWide, err)

	_, err = NewRecord(make([]int64, MaxFieldNumber))
	assert.Nil(t, err)
}

func TestLayoutSizes(t *testing.T) {
	assert.Equal(t, 96, TypeSize)
	assert.Equal(t, 2888, TypePageSize)
	assert.Equal(t, 104, RecordSize)
	assert.Equal(t, 3128, RecordPageSize)
}
