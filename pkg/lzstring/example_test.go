package lzstring_test

import (
	"fmt"

	"github.com/dmitrymomot/qrgames/pkg/lzstring"
)

func ExampleCompressToBase64() {
	packed := lzstring.CompressToBase64("abcabcabcabc")
	fmt.Println(packed)

	s, err := lzstring.DecompressFromBase64(packed)
	if err != nil {
		panic(err)
	}
	fmt.Println(s)
	// Output:
	// IYIwxqHpQ===
	// abcabcabcabc
}

func ExampleEncoding_DecompressOptional() {
	out, err := lzstring.Base64.DecompressOptional(nil)
	fmt.Println(out == nil, err)
	// Output: true <nil>
}
