package lzstring

// Reserved codes at the start of every dictionary.
const (
	codeLiteral8  = 0
	codeLiteral16 = 1
	codeEnd       = 2

	firstCode = 3
)

// codeWidth tracks how many bits a dictionary code occupies. Both sides of the
// codec advance it once per dictionary entry they create, so the widths agree
// without being transmitted.
type codeWidth struct {
	bits      int
	enlargeIn int
}

func newCodeWidth() codeWidth {
	return codeWidth{bits: 2, enlargeIn: 2}
}

// tick records one new dictionary entry and widens the code once the current
// width is exhausted.
func (w *codeWidth) tick() {
	w.enlargeIn--
	if w.enlargeIn == 0 {
		w.enlargeIn = 1 << w.bits
		w.bits++
	}
}
