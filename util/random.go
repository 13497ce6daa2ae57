package util

import (
	"math/rand/v2"
	"strings"
)

const alphabet = "abcdefghijklmnopqrstuvwxyz"

// RandomInt returns a random int64 in [min, max].
func RandomInt(min, max int64) int64 {
	return min + rand.Int64N(max-min+1)
}

// RandomString returns a random lowercase string of length n.
func RandomString(n int) string {
	var sb strings.Builder

	for range n {
		c := alphabet[rand.IntN(len(alphabet))]
		sb.WriteByte(c)
	}

	return sb.String()
}
