// Package textutil provides the bounded text helpers used by the SCM output
// parsers and the version record codec.
package textutil

import (
	"bytes"
	"io"
)

// MaxHexDigits is the number of hex digits ParseHex folds into its value.
// The digit count has to fit into three bits of the packed revision.
const MaxHexDigits = 7

// CopyBounded copies src into dst, truncating it and always leaving room
// for a terminating zero byte. It returns the number of bytes copied.
func CopyBounded(dst []byte, src string) int {
	if len(dst) == 0 {
		return 0
	}
	n := len(src)
	if n > len(dst)-1 {
		n = len(dst) - 1
	}
	copy(dst, src[:n])
	dst[n] = 0
	return n
}

// Truncate returns s cut down to what CopyBounded would keep in a buffer of
// the given capacity.
func Truncate(s string, capacity int) string {
	if capacity <= 0 {
		return ""
	}
	if len(s) > capacity-1 {
		return s[:capacity-1]
	}
	return s
}

// Index returns the index of the first occurrence of needle in hay, or -1.
// An empty needle matches at 0.
//
// Candidates are filtered with a rolling xor over a needle-sized window so
// that only windows with a matching checksum are compared byte-wise.
func Index(hay, needle []byte) int {
	if len(needle) == 0 {
		return 0
	}
	start := bytes.IndexByte(hay, needle[0])
	if start < 0 || len(hay)-start < len(needle) {
		return -1
	}

	var hsum, nsum byte
	for i := range needle {
		hsum ^= hay[start+i]
		nsum ^= needle[i]
	}
	for pos := start; ; pos++ {
		if hsum == nsum && bytes.Equal(hay[pos:pos+len(needle)], needle) {
			return pos
		}
		next := pos + len(needle)
		if next >= len(hay) {
			return -1
		}
		hsum ^= hay[pos] ^ hay[next]
	}
}

// IndexString is Index for strings.
func IndexString(hay, needle string) int {
	return Index([]byte(hay), []byte(needle))
}

func hexValue(c byte) (uint32, bool) {
	switch {
	case c >= '0' && c <= '9':
		return uint32(c - '0'), true
	case c >= 'a' && c <= 'f':
		return uint32(c-'a') + 10, true
	case c >= 'A' && c <= 'F':
		return uint32(c-'A') + 10, true
	}
	return 0, false
}

// ParseHex reads the leading hex digits of s. At most MaxHexDigits digits
// contribute to value and width; any further hex digits are skipped. The
// unparsed remainder is returned as rest. ParseHex never fails: a string
// without hex digits yields zero value and width.
func ParseHex(s string) (value uint32, width int, rest string) {
	i := 0
	for ; i < len(s) && width < MaxHexDigits; i++ {
		d, ok := hexValue(s[i])
		if !ok {
			return value, width, s[i:]
		}
		value = value<<4 | d
		width++
	}
	for ; i < len(s); i++ {
		if _, ok := hexValue(s[i]); !ok {
			break
		}
	}
	return value, width, s[i:]
}

// PackHex folds a value and its digit count into one integer: the value in
// the upper bits, the digit count in the low three bits.
func PackHex(value uint32, width int) uint32 {
	return value<<4 | uint32(width&0x07)
}

// UnpackHex is the inverse of PackHex.
func UnpackHex(packed uint32) (value uint32, width int) {
	return packed >> 4, int(packed & 0x07)
}

// ParseUint reads the leading decimal digits of s and returns their value
// and the number of digits consumed. Overflow wraps; callers only feed
// short counters.
func ParseUint(s string) (uint32, int) {
	var v uint32
	i := 0
	for ; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		v = v*10 + uint32(s[i]-'0')
	}
	return v, i
}

// TailLine reads r to the end and returns its last non-empty line without
// the line terminator. At most window bytes are held at any time, so a line
// longer than the window loses its leading part.
func TailLine(r io.Reader, window int) ([]byte, error) {
	if window <= 0 {
		window = 4096
	}
	buf := make([]byte, window)
	fill := 0
	var last []byte

	for {
		n, err := r.Read(buf[fill:])
		fill += n
		if fill == len(buf) {
			// keep only the partial line after the last newline
			cut := bytes.LastIndexByte(buf[:fill], '\n')
			if line := lastLine(buf[:fill]); line != nil {
				last = append(last[:0], line...)
			}
			if cut >= 0 {
				fill = copy(buf, buf[cut+1:fill])
			} else {
				fill = 0
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
	}
	if line := lastLine(buf[:fill]); line != nil {
		return line, nil
	}
	return last, nil
}

// lastLine returns the last complete or trailing non-empty line in b.
func lastLine(b []byte) []byte {
	b = bytes.TrimRight(b, "\r\n")
	if len(b) == 0 {
		return nil
	}
	if i := bytes.LastIndexByte(b, '\n'); i >= 0 {
		b = b[i+1:]
	}
	return bytes.TrimRight(b, "\r")
}
