package lbytes

import (
	"bytes"
	"encoding/binary"
	"io"
)

func NewBytesReader(bs []byte) *Reader {
	return &Reader{
		Reader: *bytes.NewReader(bs),
	}
}

// ReadBytes reads exactly n bytes; a short read is an error, so a truncated
// file can never yield a partially filled structure.
func (b *Reader) ReadBytes(n int) ([]byte, error) {
	bs := make([]byte, n)
	if n == 0 {
		return bs, nil
	}
	if _, err := io.ReadFull(&b.Reader, bs); err != nil {
		return nil, err
	}
	return bs, nil
}

func (b *Reader) ReadUint16() (uint16, error) {
	bs, err := b.ReadBytes(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(bs), nil
}

func (b *Reader) ReadUint32() (uint32, error) {
	bs, err := b.ReadBytes(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(bs), nil
}

func (b *Reader) ReadInt32() (int32, error) {
	result, err := b.ReadUint32()
	if err != nil {
		return 0, err
	}
	return int32(result), nil
}
