package lzstring

import (
	"fmt"
	"strings"
)

const (
	base64Alphabet       = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"
	uriComponentAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+-"

	invalidIndex = 0xFF
)

// Encoding renders the compressed bitstream through a 64-character alphabet,
// 6 bits per character.
type Encoding struct {
	alphabet  string
	decodeMap [256]byte
	padding   bool
	spaceAs   byte
}

// Base64 is the standard alphabet with "=" padding.
var Base64 = NewEncoding(base64Alphabet, true)

// URIComponent uses an alphabet that needs no escaping in URLs. Spaces are
// decoded as "+".
var URIComponent = NewEncoding(uriComponentAlphabet, false).withSpaceAs('+')

// NewEncoding returns an Encoding for the given 64-character alphabet.
// It panics if the alphabet is not 64 distinct ASCII characters.
func NewEncoding(alphabet string, padding bool) *Encoding {
	if len(alphabet) != 64 {
		panic("lzstring: encoding alphabet is not 64 bytes long")
	}
	e := &Encoding{alphabet: alphabet, padding: padding}
	for i := range e.decodeMap {
		e.decodeMap[i] = invalidIndex
	}
	for i := 0; i < len(alphabet); i++ {
		c := alphabet[i]
		if c >= 0x80 || c == '=' || e.decodeMap[c] != invalidIndex {
			panic("lzstring: invalid encoding alphabet")
		}
		e.decodeMap[c] = byte(i)
	}
	return e
}

func (e *Encoding) withSpaceAs(c byte) *Encoding {
	e.spaceAs = c
	return e
}

// Compress compresses s and renders it through the alphabet.
func (e *Encoding) Compress(s string) string {
	vals := compress(toUnits(s), 6)
	if vals == nil {
		return ""
	}

	var b strings.Builder
	b.Grow(len(vals) + 3)
	for _, v := range vals {
		b.WriteByte(e.alphabet[v])
	}
	if e.padding {
		if rem := len(vals) % 4; rem != 0 {
			b.WriteString("==="[:4-rem])
		}
	}
	return b.String()
}

// Decompress restores a string produced by Compress. The empty string
// decompresses to the empty string.
func (e *Encoding) Decompress(s string) (string, error) {
	if s == "" {
		return "", nil
	}

	if e.padding {
		s = strings.TrimRight(s, "=")
	}

	vals := make([]uint16, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == ' ' && e.spaceAs != 0 {
			c = e.spaceAs
		}
		v := e.decodeMap[c]
		if v == invalidIndex {
			return "", fmt.Errorf("%w: %q at offset %d", ErrInvalidCharacter, s[i], i)
		}
		vals[i] = uint16(v)
	}

	units, err := decompress(vals, 6)
	if err != nil {
		return "", err
	}
	return fromUnits(units), nil
}

// DecompressOptional is Decompress for a payload that may be absent: nil in
// gives nil out with no error, keeping "no payload" distinct from "empty".
func (e *Encoding) DecompressOptional(s *string) (*string, error) {
	if s == nil {
		return nil, nil
	}
	out, err := e.Decompress(*s)
	if err != nil {
		return nil, err
	}
	return &out, nil
}
