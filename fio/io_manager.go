package fio

// IOManager can be custom in options
type IOManager interface {
	// Read fills the buffer from the given offset
	Read([]byte, int64) (int, error)
	// Write overwrites the file at the given offset
	Write([]byte, int64) (int, error)
	Size() (int64, error)
	Sync() error
	Close() error
}

// IOManagerCreator opens the IOManager of one file, the file is created when missing
type IOManagerCreator func(path string) (IOManager, error)

func DefaultIOManagerCreator(path string) (IOManager, error) {
	return NewFileIO(path)
}
