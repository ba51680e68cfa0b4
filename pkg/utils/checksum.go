package utils

import (
	"crypto/sha1"
	"encoding/hex"
)

func BytesSHA1(data []byte) string {
	h := sha1.New()
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}
