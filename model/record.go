package model

// Record is one tuple of a type. FieldValues[0] is the key.
type Record struct {
	Key         int64
	FieldValues []int64
	IsValid     bool
}

func NewRecord(fieldValues []int64) (*Record, error) {
	if len(fieldValues) == 0 {
		return nil, ErrEmptyRecord
	}
	if len(fieldValues) > MaxFieldNumber {
		return nil, ErrRecordTooWide
	}
	values := make([]int64, len(fieldValues))
	copy(values, fieldValues)
	return &Record{
		Key:         values[0],
		FieldValues: values,
		IsValid:     true,
	}, nil
}

func (r *Record) FieldNumber() int {
	return len(r.FieldValues)
}
