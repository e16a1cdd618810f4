package lbytes

import (
	"encoding/binary"
)

func EncodeUint16(value uint16) []byte {
	bs := make([]byte, 2)
	binary.LittleEndian.PutUint16(bs, value)
	return bs
}

func EncodeUint32(value uint32) []byte {
	bs := make([]byte, 4)
	binary.LittleEndian.PutUint32(bs, value)
	return bs
}

func EncodeInt32(value int32) []byte {
	return EncodeUint32(uint32(value))
}
