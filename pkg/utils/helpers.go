package utils

import (
	"crypto/rand"
	"encoding/hex"
	"strconv"
	"time"
)

// RandomHex generates a random hexadecimal string from n bytes of entropy
func RandomHex(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

// NewID returns an opaque identifier made of the current time in base-36
// millis plus a random suffix. Collision-resistant within a process, not
// cryptographic.
func NewID() string {
	return strconv.FormatInt(time.Now().UnixMilli(), 36) + RandomHex(4)
}
