package codec

import (
	"fmt"

	"github.com/fatih-iver/Storage-Manager/model"
)

type CodecImpl struct {
	emptyType   []byte
	emptyRecord []byte
}

var _ Codec = (*CodecImpl)(nil)

/*
default codec, every slot has the same width whatever its content:
	- type: field_number | type_name | field_name * 10, names are zero padded words
	- record: is_valid | pad | key | field_number | field_value * 10, values are zero padded
	- page: count | slot * 30, unused slots hold the empty type "NONE" or an invalid record [0]
*/
func NewCodecImpl() *CodecImpl {
	cl := &CodecImpl{}
	cl.emptyType, _ = cl.MarshalType(&model.TypeDescriptor{Name: model.EmptyTypeName})
	cl.emptyRecord, _ = cl.MarshalRecord(&model.Record{FieldValues: []int64{0}})
	return cl
}

func (cl *CodecImpl) MarshalType(td *model.TypeDescriptor) ([]byte, error) {
	data := make([]byte, model.TypeSize)
	if err := cl.putType(data, td); err != nil {
		return nil, err
	}
	return data, nil
}

func (cl *CodecImpl) putType(data []byte, td *model.TypeDescriptor) error {
	if td.FieldNumber() > model.MaxFieldNumber {
		return model.ErrSchemaTooWide
	}

	putInt(data, int64(td.FieldNumber()))
	idx := model.IntSize
	if err := putWord(data[idx:], td.Name); err != nil {
		return err
	}
	idx += model.MaxWordLength

	for i := 0; i < model.MaxFieldNumber; i++ {
		var name string
		if i < td.FieldNumber() {
			name = td.FieldNames[i]
		}
		if err := putWord(data[idx:], name); err != nil {
			return err
		}
		idx += model.MaxWordLength
	}
	return nil
}

func (cl *CodecImpl) UnmarshalType(data []byte, td *model.TypeDescriptor) error {
	if len(data) < model.TypeSize {
		return fmt.Errorf("%w: type needs %d bytes, got %d", model.ErrDataFileCorrupted, model.TypeSize, len(data))
	}

	fieldNumber := getInt(data)
	if fieldNumber < 0 || fieldNumber > model.MaxFieldNumber {
		return fmt.Errorf("%w: type field number %d", model.ErrDataFileCorrupted, fieldNumber)
	}

	idx := model.IntSize
	td.Name = getWord(data[idx:])
	idx += model.MaxWordLength

	// padding words after the last field are ignored
	td.FieldNames = make([]string, fieldNumber)
	for i := range td.FieldNames {
		td.FieldNames[i] = getWord(data[idx:])
		idx += model.MaxWordLength
	}
	return nil
}

func (cl *CodecImpl) MarshalRecord(record *model.Record) ([]byte, error) {
	data := make([]byte, model.RecordSize)
	if err := cl.putRecord(data, record); err != nil {
		return nil, err
	}
	return data, nil
}

func (cl *CodecImpl) putRecord(data []byte, record *model.Record) error {
	if record.FieldNumber() > model.MaxFieldNumber {
		return model.ErrRecordTooWide
	}

	putBool(data, record.IsValid)
	idx := model.BoolSize
	for ; idx < recordKeyOffset; idx++ {
		data[idx] = 0
	}

	putInt(data[idx:], record.Key)
	idx += model.IntSize
	putInt(data[idx:], int64(record.FieldNumber()))
	idx += model.IntSize

	for i := 0; i < model.MaxFieldNumber; i++ {
		var v int64
		if i < record.FieldNumber() {
			v = record.FieldValues[i]
		}
		putInt(data[idx:], v)
		idx += model.IntSize
	}
	return nil
}

// the key is aligned to a full word after the validity flag
const recordKeyOffset = model.IntSize

func (cl *CodecImpl) UnmarshalRecord(data []byte, record *model.Record) error {
	if len(data) < model.RecordSize {
		return fmt.Errorf("%w: record needs %d bytes, got %d", model.ErrDataFileCorrupted, model.RecordSize, len(data))
	}

	isValid := getBool(data)
	idx := recordKeyOffset
	key := getInt(data[idx:])
	idx += model.IntSize
	fieldNumber := getInt(data[idx:])
	idx += model.IntSize

	if fieldNumber < 0 || fieldNumber > model.MaxFieldNumber {
		if isValid {
			return fmt.Errorf("%w: record field number %d", model.ErrDataFileCorrupted, fieldNumber)
		}
		fieldNumber = 0
	}

	values := make([]int64, fieldNumber)
	for i := range values {
		values[i] = getInt(data[idx:])
		idx += model.IntSize
	}

	if isValid && (len(values) == 0 || values[0] != key) {
		return fmt.Errorf("%w: record key %d does not lead its values", model.ErrDataFileCorrupted, key)
	}

	record.IsValid = isValid
	record.Key = key
	record.FieldValues = values
	return nil
}

func (cl *CodecImpl) MarshalTypePage(page *model.TypePage) ([]byte, error) {
	if page.Len() > model.MaxPageEntries {
		return nil, fmt.Errorf("type page holds %d types, capacity is %d", page.Len(), model.MaxPageEntries)
	}

	data := make([]byte, model.TypePageSize)
	putInt(data, int64(page.Len()))
	idx := model.IntSize
	for i := 0; i < model.MaxPageEntries; i++ {
		slot := data[idx : idx+model.TypeSize]
		if i < page.Len() {
			if err := cl.putType(slot, page.Types[i]); err != nil {
				return nil, err
			}
		} else {
			copy(slot, cl.emptyType)
		}
		idx += model.TypeSize
	}
	return data, nil
}

func (cl *CodecImpl) UnmarshalTypePage(data []byte, page *model.TypePage) error {
	count, err := pageCount(data, model.TypePageSize)
	if err != nil {
		return err
	}

	page.Types = make([]*model.TypeDescriptor, 0, model.MaxPageEntries)
	idx := model.IntSize
	for i := 0; i < count; i++ {
		td := new(model.TypeDescriptor)
		if err = cl.UnmarshalType(data[idx:idx+model.TypeSize], td); err != nil {
			return err
		}
		page.Types = append(page.Types, td)
		idx += model.TypeSize
	}
	return nil
}

func (cl *CodecImpl) MarshalRecordPage(page *model.RecordPage) ([]byte, error) {
	if page.Len() > model.MaxPageEntries {
		return nil, fmt.Errorf("record page holds %d records, capacity is %d", page.Len(), model.MaxPageEntries)
	}

	data := make([]byte, model.RecordPageSize)
	putInt(data, int64(page.Len()))
	idx := model.IntSize
	for i := 0; i < model.MaxPageEntries; i++ {
		slot := data[idx : idx+model.RecordSize]
		if i < page.Len() {
			if err := cl.putRecord(slot, page.Records[i]); err != nil {
				return nil, err
			}
		} else {
			copy(slot, cl.emptyRecord)
		}
		idx += model.RecordSize
	}
	return data, nil
}

// UnmarshalRecordPage keeps the live records among the first count slots.
func (cl *CodecImpl) UnmarshalRecordPage(data []byte, page *model.RecordPage) error {
	count, err := pageCount(data, model.RecordPageSize)
	if err != nil {
		return err
	}

	page.Records = make([]*model.Record, 0, model.MaxPageEntries)
	idx := model.IntSize
	for i := 0; i < count; i++ {
		record := new(model.Record)
		if err = cl.UnmarshalRecord(data[idx:idx+model.RecordSize], record); err != nil {
			return err
		}
		if record.IsValid {
			page.Records = append(page.Records, record)
		}
		idx += model.RecordSize
	}
	return nil
}

func pageCount(data []byte, pageSize int) (int, error) {
	if len(data) != pageSize {
		return 0, fmt.Errorf("%w: page needs %d bytes, got %d", model.ErrDataFileCorrupted, pageSize, len(data))
	}
	count := getInt(data)
	if count < 0 || count > model.MaxPageEntries {
		return 0, fmt.Errorf("%w: page count %d", model.ErrDataFileCorrupted, count)
	}
	return int(count), nil
}
