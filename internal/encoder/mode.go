package encoder

import "fmt"

// Mode is a QR data encoding mode.
type Mode int

const (
	ModeNumeric Mode = iota
	ModeAlphanumeric
	ModeByte
)

func (m Mode) String() string {
	switch m {
	case ModeNumeric:
		return "numeric"
	case ModeAlphanumeric:
		return "alphanumeric"
	case ModeByte:
		return "byte"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

func isNumeric(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlphanumeric(c byte) bool {
	if isNumeric(c) || (c >= 'A' && c <= 'Z') {
		return true
	}
	switch c {
	case ' ', '$', '%', '*', '+', '-', '.', '/', ':':
		return true
	}
	return false
}

func all(s string, pred func(byte) bool) bool {
	for i := 0; i < len(s); i++ {
		if !pred(s[i]) {
			return false
		}
	}
	return true
}

// longestRun returns the length of the longest run of bytes in s
// satisfying pred. Multi-byte UTF-8 sequences never satisfy it.
func longestRun(s string, pred func(byte) bool) int {
	longest, n := 0, 0
	for i := 0; i < len(s); i++ {
		if !pred(s[i]) {
			n = 0
			continue
		}
		n++
		if n > longest {
			longest = n
		}
	}
	return longest
}

// BestMode returns the most compact mode able to hold all of s.
func BestMode(s string) Mode {
	switch {
	case all(s, isNumeric):
		return ModeNumeric
	case all(s, isAlphanumeric):
		return ModeAlphanumeric
	default:
		return ModeByte
	}
}

// SingleMode reports whether data should be encoded as one segment for the
// given chunk threshold, and in which mode. It is true when the threshold is
// 0, when data is no longer than the threshold, when data is entirely in one
// compact mode, or when it holds no alphanumeric run (digits included) of at
// least threshold characters. Otherwise data mixes modes and the caller
// leaves segmentation to the library.
func SingleMode(data string, threshold int) (Mode, bool) {
	mode := BestMode(data)
	if threshold <= 0 || len(data) <= threshold || mode != ModeByte {
		return mode, true
	}
	if longestRun(data, isAlphanumeric) < threshold {
		return ModeByte, true
	}
	return ModeByte, false
}
