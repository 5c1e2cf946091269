package lzstring

import "unicode/utf16"

// phrase identifies a dictionary entry by its prefix code and final unit.
type phrase struct {
	prefix int
	unit   uint16
}

// compress runs the LZ-string dictionary coder over units and returns the
// bitstream grouped into values of bitsPerChar bits.
func compress(units []uint16, bitsPerChar int) []uint16 {
	if len(units) == 0 {
		return nil
	}

	var (
		singles = make(map[uint16]int)
		pending = make(map[uint16]struct{})
		phrases = make(map[phrase]int)
		bw      = newBitWriter(bitsPerChar, len(units)*16/bitsPerChar/2+1)
		width   = newCodeWidth()
		next    = firstCode

		// current match: its code, and its unit when it is a single unit
		wCode   = -1
		wUnit   uint16
		wSingle bool
	)

	emit := func() {
		if _, ok := pending[wUnit]; wSingle && ok {
			if wUnit < 256 {
				bw.writeBits(codeLiteral8, width.bits)
				bw.writeBits(int(wUnit), 8)
			} else {
				bw.writeBits(codeLiteral16, width.bits)
				bw.writeBits(int(wUnit), 16)
			}
			width.tick()
			delete(pending, wUnit)
		} else {
			bw.writeBits(wCode, width.bits)
		}
		width.tick()
	}

	for _, c := range units {
		if _, ok := singles[c]; !ok {
			singles[c] = next
			next++
			pending[c] = struct{}{}
		}

		if wCode < 0 {
			wCode, wUnit, wSingle = singles[c], c, true
			continue
		}

		key := phrase{prefix: wCode, unit: c}
		if code, ok := phrases[key]; ok {
			wCode, wSingle = code, false
			continue
		}

		emit()
		phrases[key] = next
		next++
		wCode, wUnit, wSingle = singles[c], c, true
	}

	emit()
	bw.writeBits(codeEnd, width.bits)
	return bw.flush()
}

// Compress compresses s into raw 16-bit values.
// The empty string compresses to an empty slice.
func Compress(s string) []uint16 {
	return compress(toUnits(s), 16)
}

// CompressToBase64 compresses s and renders it with the standard Base64
// alphabet, padded with "=" to a multiple of four characters.
func CompressToBase64(s string) string {
	return Base64.Compress(s)
}

// CompressToEncodedURIComponent compresses s into a string that can be used
// in a URL query or fragment without further escaping.
func CompressToEncodedURIComponent(s string) string {
	return URIComponent.Compress(s)
}

// CompressToUTF16 compresses s into a string of valid UTF-16 code units,
// suitable for storages that only accept well-formed text.
func CompressToUTF16(s string) string {
	vals := compress(toUnits(s), 15)
	if vals == nil {
		return ""
	}
	runes := make([]rune, 0, len(vals)+1)
	for _, v := range vals {
		runes = append(runes, rune(v)+32)
	}
	runes = append(runes, ' ')
	return string(runes)
}

// CompressToBytes compresses s into big-endian byte pairs.
func CompressToBytes(s string) []byte {
	vals := Compress(s)
	if vals == nil {
		return nil
	}
	out := make([]byte, 0, len(vals)*2)
	for _, v := range vals {
		out = append(out, byte(v>>8), byte(v))
	}
	return out
}

func toUnits(s string) []uint16 {
	if s == "" {
		return nil
	}
	return utf16.Encode([]rune(s))
}
