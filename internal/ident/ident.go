// Package ident turns positive integers into identifiers.
package ident

// NameOf returns the bijective base-26 numeral for n, the same scheme
// spreadsheets use for column names: 1 is "a", 26 is "z", 27 is "aa".
// Every positive n maps to a distinct, non-empty lowercase name. NameOf(0)
// is the empty string.
func NameOf(n uint64) string {
	// 14 letters cover the full uint64 range
	var buf [14]byte
	pos := len(buf)
	for n > 0 {
		n--
		pos--
		buf[pos] = byte('a' + n%26)
		n /= 26
	}
	return string(buf[pos:])
}
