// Package qrcode renders text as PNG QR codes.
//
// The version (symbol size) is selected automatically as the smallest one that
// fits the content at the requested error correction level. By default codes are
// generated with the Low level, 10 pixels per module and the standard 4-module
// quiet zone, which keeps long payloads such as data URLs scannable.
//
// # Usage
//
// Generate a PNG:
//
//	code, err := qrcode.Generate("https://example.com")
//	if err != nil {
//		log.Fatal(err)
//	}
//	err = os.WriteFile("qrcode.png", code.PNG, 0644)
//
// The most reliable variant:
//
//	code, err := qrcode.Generate(url, qrcode.WithLevel(qrcode.Highest))
//	fmt.Println("version", code.Version)
//
// Generate a base64 data URI for HTML:
//
//	src, err := qrcode.GenerateBase64Image("https://example.com", qrcode.WithSize(256))
//	fmt.Printf(`<img src="%s" alt="QR Code">`, src)
//
// # Error Correction Levels
//
//   - Low (L): recovers ~7% of the symbol, largest capacity
//   - Medium (M): ~15%
//   - High (Q): ~25%
//   - Highest (H): ~30%, smallest capacity
//
// Level letters are parsed with ParseLevel.
//
// # Capacity
//
// A version 40 symbol holds at most 2953 bytes at level L and 1273 bytes at
// level H. Longer content fails with ErrContentTooLong.
package qrcode
