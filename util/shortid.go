package util

import (
	"crypto/rand"
	"math/big"
)

// ShortIDPrefix is what participants are told to expect when the organizer
// reads the code out loud.
const ShortIDPrefix = "nomi"

const shortIDLength = 6

// Lowercase letters and digits minus the confusable ones (l/1, o/0), since
// these codes get shared verbally and retyped from memory.
const shortIDAlphabet = "abcdefghijkmnpqrstuvwxyz23456789"

// NewShortID produces a share code like "nomi7kq2xw". Uniqueness is not
// guaranteed here; the events table's UNIQUE constraint catches collisions
// and the caller regenerates.
func NewShortID() string {
	max := big.NewInt(int64(len(shortIDAlphabet)))
	code := make([]byte, shortIDLength)
	for i := range code {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand only fails when the OS entropy source is broken;
			// nothing sensible to do but stop.
			panic("shortid: crypto/rand unavailable: " + err.Error())
		}
		code[i] = shortIDAlphabet[n.Int64()]
	}
	return ShortIDPrefix + string(code)
}
