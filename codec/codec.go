package codec

import "github.com/fatih-iver/Storage-Manager/model"

type Codec interface {
	// MarshalType return the fixed size type data
	MarshalType(*model.TypeDescriptor) ([]byte, error)

	UnmarshalType([]byte, *model.TypeDescriptor) error

	// MarshalRecord return the fixed size record data
	MarshalRecord(*model.Record) ([]byte, error)

	UnmarshalRecord([]byte, *model.Record) error

	MarshalTypePage(*model.TypePage) ([]byte, error)

	UnmarshalTypePage([]byte, *model.TypePage) error

	MarshalRecordPage(*model.RecordPage) ([]byte, error)

	UnmarshalRecordPage([]byte, *model.RecordPage) error
}
