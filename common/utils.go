package common

import (
	"encoding/binary"
	"net/url"
)

func IsValidURL(input string) bool {
	_, err := url.ParseRequestURI(input)

	return err == nil
}

func Uint64ToBytes(value uint64) []byte {
	bytes := make([]byte, 8)
	binary.BigEndian.PutUint64(bytes, value)

	return bytes
}

func BytesToUint64(bytes []byte) uint64 {
	if len(bytes) != 8 {
		return 0
	}

	return binary.BigEndian.Uint64(bytes)
}
