package digest

import "fmt"

// The store's base-32 encoding differs from RFC 4648: the alphabet omits
// e, o, t and u to avoid accidental words, there is no padding, and the
// bytes are consumed starting from the least significant bit with the
// resulting characters emitted in reverse. Nothing in the multiformats
// base libraries implements this ordering, so it is done by hand here.

const base32Alphabet = "0123456789abcdfghijklmnpqrsvwxyz"

var base32Reverse [256]int8

func init() {
	for i := range base32Reverse {
		base32Reverse[i] = -1
	}
	for i := 0; i < len(base32Alphabet); i++ {
		base32Reverse[base32Alphabet[i]] = int8(i)
	}
}

// base32Len returns the encoded length for n raw bytes.
func base32Len(n int) int {
	return (n*8-1)/5 + 1
}

func base32Encode(raw []byte) string {
	out := make([]byte, 0, base32Len(len(raw)))
	for n := base32Len(len(raw)) - 1; n >= 0; n-- {
		b := n * 5
		i := b / 8
		j := b % 8
		c := raw[i] >> j
		if i+1 < len(raw) {
			c |= raw[i+1] << (8 - j)
		}
		out = append(out, base32Alphabet[c&0x1f])
	}
	return string(out)
}

func base32Decode(s string, size int) ([]byte, error) {
	raw := make([]byte, size)
	for p := 0; p < len(s); p++ {
		digit := base32Reverse[s[p]]
		if digit < 0 {
			return nil, fmt.Errorf("digest: invalid base-32 digest '%s': bad character '%c'", s, s[p])
		}
		n := len(s) - 1 - p
		b := n * 5
		i := b / 8
		j := b % 8
		raw[i] |= byte(digit) << j
		if j > 3 {
			rest := byte(digit) >> (8 - j)
			if i+1 < size {
				raw[i+1] |= rest
			} else if rest != 0 {
				return nil, fmt.Errorf("digest: invalid base-32 digest '%s'", s)
			}
		}
	}
	return raw, nil
}
