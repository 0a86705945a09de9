// Package conv formats integers into caller-supplied buffers. It backs the
// String methods of the peripheral types, which must not pull in fmt on
// the target.
package conv

const digits = "0123456789ABCDEF"

// Utoa writes n in base 10 at the end of buf and returns the written tail.
// A uint64 needs at most 20 bytes; a short buf keeps the low digits.
func Utoa(buf []byte, n uint64) []byte {
	i := len(buf)
	for i > 0 {
		i--
		buf[i] = digits[n%10]
		n /= 10
		if n == 0 {
			break
		}
	}
	return buf[i:]
}

// Itoa is Utoa with a leading '-' for negative n.
func Itoa(buf []byte, n int64) []byte {
	if n >= 0 {
		return Utoa(buf, uint64(n))
	}
	if len(buf) == 0 {
		return buf
	}
	s := Utoa(buf[1:], uint64(-n))
	i := len(buf) - len(s) - 1
	buf[i] = '-'
	return buf[i:]
}

// Hex writes the low width nibbles of n as zero-padded uppercase hex, with
// no prefix. It returns an empty slice if buf is shorter than width.
func Hex(buf []byte, n uint64, width int) []byte {
	if len(buf) < width {
		return buf[:0]
	}
	i := len(buf)
	for ; width > 0; width-- {
		i--
		buf[i] = digits[n&0xF]
		n >>= 4
	}
	return buf[i:]
}
