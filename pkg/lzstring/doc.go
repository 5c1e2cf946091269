// Package lzstring implements the LZ-string compression scheme.
//
// LZ-string is an LZW-family codec designed for text: it compresses a string of
// UTF-16 code units into a bitstream that can be rendered through printable
// alphabets, which makes it a good fit for embedding documents in HTML, URLs and
// QR codes. The output of this package is bit-compatible with the JavaScript
// LZ-string library, so a browser can decompress what Go compressed.
//
// # Basic Usage
//
//	packed := lzstring.CompressToBase64(html)
//
//	html, err := lzstring.DecompressFromBase64(packed)
//	if err != nil {
//		return err
//	}
//
// URL-safe output:
//
//	q := lzstring.CompressToEncodedURIComponent(state)
//	state, err := lzstring.DecompressFromEncodedURIComponent(q)
//
// # Encodings
//
// Every rendering groups the compressed bitstream into fixed-size values:
//
//   - Base64: 6 bits per character, alphabet A-Z a-z 0-9 + /, padded with "="
//   - URIComponent: 6 bits per character, alphabet A-Z a-z 0-9 + -, no padding
//   - UTF16: 15 bits per code unit, offset by 32, terminated by a space
//   - Bytes: 16 bits per value, big-endian
//   - Compress/Decompress: raw 16-bit values
//
// # Unicode
//
// Input strings are converted to UTF-16 before compression, as JavaScript strings
// are. Code points above U+FFFF are encoded as surrogate
// pairs and joined again on decompression. Invalid UTF-8 in the input is replaced
// by U+FFFD.
//
// # Absent Input
//
// An empty string decompresses to an empty string. Use DecompressOptional on an
// Encoding to keep "no payload" (nil) distinct from "empty payload" (""):
//
//	out, err := lzstring.Base64.DecompressOptional(nil) // out == nil, err == nil
//
// # Errors
//
// Decompression never returns a partial result. Input with characters outside
// the alphabet fails with ErrInvalidCharacter, a stream that ends before its end
// marker fails with ErrTruncated, and codes that do not resolve under the current
// dictionary fail with ErrCorrupt.
//
// # Concurrency
//
// All functions are pure. Each call owns its own dictionary, so the package is
// safe for concurrent use without synchronization.
package lzstring
