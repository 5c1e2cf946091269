package lzstring

import (
	"fmt"
	"unicode/utf16"
)

// decompress rebuilds the dictionary from a bitstream of bitsPerChar-bit values.
func decompress(vals []uint16, bitsPerChar int) ([]uint16, error) {
	if len(vals) == 0 {
		return nil, nil
	}

	br := newBitReader(vals, bitsPerChar)
	width := newCodeWidth()

	// Codes below firstCode are reserved and never looked up.
	dict := make([][]uint16, firstCode, 64)

	readLiteral := func(code int) ([]uint16, error) {
		n := 8
		if code == codeLiteral16 {
			n = 16
		}
		v, err := br.readBits(n)
		if err != nil {
			return nil, err
		}
		return []uint16{uint16(v)}, nil
	}

	code, err := br.readBits(width.bits)
	if err != nil {
		return nil, err
	}
	switch code {
	case codeLiteral8, codeLiteral16:
	case codeEnd:
		return nil, nil
	default:
		return nil, fmt.Errorf("%w: stream starts with code %d", ErrCorrupt, code)
	}
	w, err := readLiteral(code)
	if err != nil {
		return nil, err
	}
	dict = append(dict, w)
	out := append(make([]uint16, 0, len(vals)*2), w...)

	// The compressor has already ticked twice for the first literal.
	width.tick()
	width.tick()

	for {
		code, err := br.readBits(width.bits)
		if err != nil {
			return nil, err
		}

		switch code {
		case codeEnd:
			return out, nil
		case codeLiteral8, codeLiteral16:
			lit, err := readLiteral(code)
			if err != nil {
				return nil, err
			}
			dict = append(dict, lit)
			code = len(dict) - 1
			width.tick()
		}

		var entry []uint16
		switch {
		case code < len(dict):
			entry = dict[code]
		case code == len(dict):
			entry = extend(w, w[0])
		default:
			return nil, fmt.Errorf("%w: code %d with %d dictionary entries", ErrCorrupt, code, len(dict))
		}

		out = append(out, entry...)
		dict = append(dict, extend(w, entry[0]))
		width.tick()
		w = entry
	}
}

func extend(w []uint16, u uint16) []uint16 {
	e := make([]uint16, len(w)+1)
	copy(e, w)
	e[len(w)] = u
	return e
}

// Decompress restores a string compressed with Compress.
func Decompress(data []uint16) (string, error) {
	units, err := decompress(data, 16)
	if err != nil {
		return "", err
	}
	return fromUnits(units), nil
}

// DecompressFromBase64 restores a string compressed with CompressToBase64.
// The empty string decompresses to the empty string.
func DecompressFromBase64(s string) (string, error) {
	return Base64.Decompress(s)
}

// DecompressFromEncodedURIComponent restores a string compressed with
// CompressToEncodedURIComponent. Spaces are read as "+", since form decoding
// commonly turns one into the other.
func DecompressFromEncodedURIComponent(s string) (string, error) {
	return URIComponent.Decompress(s)
}

// DecompressFromUTF16 restores a string compressed with CompressToUTF16.
func DecompressFromUTF16(s string) (string, error) {
	if s == "" {
		return "", nil
	}
	runes := []rune(s)
	// trailing space terminator
	if runes[len(runes)-1] == ' ' {
		runes = runes[:len(runes)-1]
	}
	vals := make([]uint16, 0, len(runes))
	for i, r := range runes {
		if r < 32 || r >= 32+1<<15 {
			return "", fmt.Errorf("%w: %q at offset %d", ErrInvalidCharacter, r, i)
		}
		vals = append(vals, uint16(r-32))
	}
	units, err := decompress(vals, 15)
	if err != nil {
		return "", err
	}
	return fromUnits(units), nil
}

// DecompressFromBytes restores a string compressed with CompressToBytes.
func DecompressFromBytes(b []byte) (string, error) {
	if len(b)%2 != 0 {
		return "", fmt.Errorf("%w: odd byte length %d", ErrTruncated, len(b))
	}
	vals := make([]uint16, len(b)/2)
	for i := range vals {
		vals[i] = uint16(b[2*i])<<8 | uint16(b[2*i+1])
	}
	return Decompress(vals)
}

func fromUnits(units []uint16) string {
	if len(units) == 0 {
		return ""
	}
	return string(utf16.Decode(units))
}
