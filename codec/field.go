package codec

import (
	"bytes"
	"encoding/binary"

	"github.com/fatih-iver/Storage-Manager/model"
)

// putWord writes s right padded with zeros into exactly one word.
func putWord(buf []byte, s string) error {
	if len(s) > model.MaxWordLength {
		return model.ErrFieldTooLong
	}
	n := copy(buf[:model.MaxWordLength], s)
	for ; n < model.MaxWordLength; n++ {
		buf[n] = 0
	}
	return nil
}

func getWord(buf []byte) string {
	word := buf[:model.MaxWordLength]
	if i := bytes.IndexByte(word, 0); i >= 0 {
		word = word[:i]
	}
	return string(word)
}

func putInt(buf []byte, v int64) {
	binary.BigEndian.PutUint64(buf[:model.IntSize], uint64(v))
}

func getInt(buf []byte) int64 {
	return int64(binary.BigEndian.Uint64(buf[:model.IntSize]))
}

func putBool(buf []byte, v bool) {
	buf[0] = 0
	if v {
		buf[0] = 1
	}
}

func getBool(buf []byte) bool {
	return buf[0] != 0
}
