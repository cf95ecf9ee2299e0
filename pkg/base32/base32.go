package base32

import "errors"

// Alphabet is the RFC 4648 base32 alphabet.
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ234567"

// ErrInvalidSymbol is returned by Decode for input outside the alphabet.
var ErrInvalidSymbol = errors.New("base32.invalid_symbol")

var decodeMap = func() [256]int8 {
	var m [256]int8
	for i := range m {
		m[i] = -1
	}
	for i := range len(Alphabet) {
		m[Alphabet[i]] = int8(i)
	}
	return m
}()

// Encode returns the unpadded base32 form of b.
// Bits are consumed most-significant first; a trailing partial group is
// left-aligned and zero-filled.
func Encode(b []byte) string {
	if len(b) == 0 {
		return ""
	}

	out := make([]byte, 0, (len(b)*8+4)/5)

	var acc uint32
	bits := 0
	for _, c := range b {
		acc = acc<<8 | uint32(c)
		bits += 8
		for bits >= 5 {
			bits -= 5
			out = append(out, Alphabet[(acc>>bits)&31])
		}
		acc &= 1<<bits - 1
	}

	if bits > 0 {
		out = append(out, Alphabet[(acc<<(5-bits))&31])
	}

	return string(out)
}

// Decode reverses Encode. Trailing padding is tolerated, lower-case is not.
// Leftover bits that do not make up a full byte are discarded.
func Decode(s string) ([]byte, error) {
	for len(s) > 0 && s[len(s)-1] == '=' {
		s = s[:len(s)-1]
	}

	out := make([]byte, 0, len(s)*5/8)

	var acc uint32
	bits := 0
	for i := range len(s) {
		v := decodeMap[s[i]]
		if v < 0 {
			return nil, ErrInvalidSymbol
		}
		acc = acc<<5 | uint32(v)
		bits += 5
		if bits >= 8 {
			bits -= 8
			out = append(out, byte(acc>>bits))
		}
		acc &= 1<<bits - 1
	}

	return out, nil
}
