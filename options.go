package storagemanager

import (
	"io"
	"log"

	"github.com/fatih-iver/Storage-Manager/codec"
	"github.com/fatih-iver/Storage-Manager/fio"
	"github.com/fatih-iver/Storage-Manager/records"
)

const DefaultCatalogFileName = "sys.cat"

type options struct {
	dirPath         string
	catalogFileName string
	fileNamer       records.FileNamer
	maxPagesPerFile int

	ioManagerCreator fio.IOManagerCreator
	codec            codec.Codec
	logger           *log.Logger
}

type Option func(*options)

func defaultOptions(dirPath string) options {
	return options{
		dirPath:          dirPath,
		catalogFileName:  DefaultCatalogFileName,
		fileNamer:        records.DefaultFileNamer,
		maxPagesPerFile:  records.DefaultMaxPagesPerFile,
		ioManagerCreator: fio.DefaultIOManagerCreator,
		codec:            codec.NewCodecImpl(),
		logger:           log.New(io.Discard, "", 0),
	}
}

func WithIOManagerCreator(fn fio.IOManagerCreator) Option {
	return func(o *options) {
		o.ioManagerCreator = fn
	}
}

func WithDirPath(dirPath string) Option {
	return func(o *options) {
		o.dirPath = dirPath
	}
}

// WithCatalogFileName set the catalog file name inside the data directory
func WithCatalogFileName(name string) Option {
	return func(o *options) {
		o.catalogFileName = name
	}
}

// WithRecordFileNamer set how the overflow files of a type are named
func WithRecordFileNamer(fn records.FileNamer) Option {
	return func(o *options) {
		o.fileNamer = fn
	}
}

// WithMaxPagesPerFile bounds the pages scanned in, and so stored in, one record file.
func WithMaxPagesPerFile(n int) Option {
	return func(o *options) {
		o.maxPagesPerFile = n
	}
}

func WithCodec(codec codec.Codec) Option {
	return func(o *options) {
		o.codec = codec
	}
}

func WithLogger(logger *log.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}
