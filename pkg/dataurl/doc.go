// Package dataurl encodes documents as base64 "data:" URLs and decodes them back.
//
// A data URL carries a whole file inline: "data:text/html;base64,PGgxPi4uLjwvaDE+".
// Pages encoded this way open directly from a link, a bookmark or a scanned QR
// code without any hosting.
//
// # Usage
//
//	url := dataurl.EncodeHTML("<h1>Lights Out</h1>")
//
//	html, err := dataurl.DecodeHTML(url)
//	if err != nil {
//		return err
//	}
//
// Arbitrary media types:
//
//	url := dataurl.Encode("image/png", pngBytes)
//
//	d, err := dataurl.Decode(url)
//	if err != nil {
//		return err
//	}
//	fmt.Println(d.MediaType, len(d.Data))
//
// Only the base64 form is supported. Percent-encoded payloads are rejected with
// ErrUnsupportedEncoding.
package dataurl
