package lzstring

// bitWriter packs bits MSB-first into values of bitsPerChar bits.
type bitWriter struct {
	bitsPerChar int
	val         uint16
	pos         int
	out         []uint16
}

func newBitWriter(bitsPerChar, sizeHint int) *bitWriter {
	return &bitWriter{
		bitsPerChar: bitsPerChar,
		out:         make([]uint16, 0, sizeHint),
	}
}

func (w *bitWriter) writeBit(b uint16) {
	w.val = w.val<<1 | b
	if w.pos == w.bitsPerChar-1 {
		w.out = append(w.out, w.val)
		w.pos = 0
		w.val = 0
		return
	}
	w.pos++
}

// writeBits writes the n low bits of v, least significant bit first.
func (w *bitWriter) writeBits(v, n int) {
	for range n {
		w.writeBit(uint16(v & 1))
		v >>= 1
	}
}

// flush pads the pending value with zero bits. Like the JavaScript library it always
// emits a final value, even when the stream is already aligned.
func (w *bitWriter) flush() []uint16 {
	for {
		w.val <<= 1
		if w.pos == w.bitsPerChar-1 {
			w.out = append(w.out, w.val)
			break
		}
		w.pos++
	}
	return w.out
}

// bitReader is the inverse of bitWriter.
type bitReader struct {
	vals  []uint16
	reset uint16
	idx   int
	val   uint16
	mask  uint16
}

func newBitReader(vals []uint16, bitsPerChar int) *bitReader {
	return &bitReader{vals: vals, reset: 1 << (bitsPerChar - 1)}
}

// readBits reads n bits, least significant bit first.
func (r *bitReader) readBits(n int) (int, error) {
	bits := 0
	for i := range n {
		if r.mask == 0 {
			if r.idx >= len(r.vals) {
				return 0, ErrTruncated
			}
			r.val = r.vals[r.idx]
			r.idx++
			r.mask = r.reset
		}
		if r.val&r.mask != 0 {
			bits |= 1 << i
		}
		r.mask >>= 1
	}
	return bits, nil
}
