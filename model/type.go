package model

import "strings"

// TypeDescriptor is one catalog entry: a type name and its ordered field names.
type TypeDescriptor struct {
	Name       string
	FieldNames []string
}

// NewTypeDescriptor validates name and fields against the fixed word layout.
func NewTypeDescriptor(name string, fieldNames []string) (*TypeDescriptor, error) {
	if len(fieldNames) > MaxFieldNumber {
		return nil, ErrSchemaTooWide
	}
	if err := ValidateTypeName(name); err != nil {
		return nil, err
	}
	fields := make([]string, len(fieldNames))
	for i, f := range fieldNames {
		if err := ValidateWord(f); err != nil {
			return nil, err
		}
		fields[i] = f
	}
	return &TypeDescriptor{
		Name:       name,
		FieldNames: fields,
	}, nil
}

func (td *TypeDescriptor) FieldNumber() int {
	return len(td.FieldNames)
}

// ValidateWord reports whether s can be stored as one fixed width word
// and read back unchanged.
func ValidateWord(s string) error {
	if len(s) == 0 {
		return ErrInvalidName
	}
	if len(s) > MaxWordLength {
		return ErrFieldTooLong
	}
	for i := 0; i < len(s); i++ {
		if s[i] <= ' ' || s[i] > '~' {
			return ErrInvalidName
		}
	}
	return nil
}

// ValidateTypeName also rejects names that cannot prefix a record file name.
func ValidateTypeName(name string) error {
	if err := ValidateWord(name); err != nil {
		return err
	}
	if strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return ErrInvalidName
	}
	return nil
}
