package model

/*
on-disk layout, every integer is a big endian int64:

	type:        field_number(8) | type_name(8) | field_name(8) * 10         = 96 bytes
	type page:   count(8) | type * 30                                       = 2888 bytes
	record:      is_valid(1) | pad(7) | key(8) | field_number(8) | value(8) * 10 = 104 bytes
	record page: count(8) | record * 30                                     = 3128 bytes
*/
const (
	MaxWordLength  = 8
	MaxFieldNumber = 10
	MaxPageEntries = 30

	IntSize    = 8
	BoolSize   = 1
	recordPad  = 7
	countSize  = IntSize
	typeWords  = MaxFieldNumber + 1
	recordInts = MaxFieldNumber + 2

	TypeSize       = IntSize + typeWords*MaxWordLength
	TypePageSize   = countSize + MaxPageEntries*TypeSize
	RecordSize     = BoolSize + recordPad + recordInts*IntSize
	RecordPageSize = countSize + MaxPageEntries*RecordSize
)

// EmptyTypeName fills unused type slots of a page.
const EmptyTypeName = "NONE"
