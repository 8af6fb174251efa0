// Package daily derives a per-day seed so that every solve started on the
// same date opens with the same word.
package daily

import (
	"encoding/binary"
	"time"

	"golang.org/x/crypto/blake2b"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// Seed returns a deterministic seed for the date using a blake2b-256 MAC
// keyed with salt. Salts longer than 64 bytes are rejected by blake2b, in
// which case the salt is hashed first.
func Seed(date time.Time, salt string) int64 {
	key := []byte(salt)
	if len(key) > blake2b.Size {
		sum := blake2b.Sum512(key)
		key = sum[:]
	}
	h, err := blake2b.New256(key)
	if err != nil {
		// only reachable with an oversized key, handled above
		panic(err)
	}
	h.Write([]byte(DateKey(date)))
	sum := h.Sum(nil)
	// take the first 8 bytes, clearing the sign bit
	return int64(binary.BigEndian.Uint64(sum[:8]) >> 1)
}
