package utils

import (
	"crypto/rand"
	"fmt"
)

const codeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// NewAttendeeCode returns a 6-character check-in code shown on the dashboard
// header. Ambiguous characters (0/O, 1/I) are excluded.
func NewAttendeeCode() string {
	buf := make([]byte, 6)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand never fails on supported platforms
		panic(err)
	}
	for i, b := range buf {
		buf[i] = codeAlphabet[int(b)%len(codeAlphabet)]
	}
	return string(buf)
}

// NewAttendeeNumber formats a sequential badge number, e.g. QT-0042.
func NewAttendeeNumber(seq int64) string {
	return fmt.Sprintf("QT-%04d", seq)
}
