package dataurl

import (
	"encoding/base64"
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	scheme        = "data:"
	base64Param   = ";base64"
	MediaTypeHTML = "text/html"
	MediaTypePNG  = "image/png"
)

// DataURL is a decoded data URL.
type DataURL struct {
	MediaType string
	Data      []byte
}

// Encode builds a base64 data URL for data.
func Encode(mediaType string, data []byte) string {
	var b strings.Builder
	b.Grow(len(scheme) + len(mediaType) + len(base64Param) + 1 + base64.StdEncoding.EncodedLen(len(data)))
	b.WriteString(scheme)
	b.WriteString(mediaType)
	b.WriteString(base64Param)
	b.WriteByte(',')
	b.WriteString(base64.StdEncoding.EncodeToString(data))
	return b.String()
}

// EncodeHTML builds a text/html data URL from an HTML document.
func EncodeHTML(html string) string {
	return Encode(MediaTypeHTML, []byte(html))
}

// Decode parses a base64 data URL. Surrounding whitespace is ignored.
func Decode(url string) (*DataURL, error) {
	url = strings.TrimSpace(url)
	if len(url) < len(scheme) || !strings.EqualFold(url[:len(scheme)], scheme) {
		return nil, ErrNotDataURL
	}

	header, payload, ok := strings.Cut(url[len(scheme):], ",")
	if !ok {
		return nil, fmt.Errorf("%w: missing comma", ErrNotDataURL)
	}

	mediaType, isBase64 := strings.CutSuffix(header, base64Param)
	if !isBase64 {
		return nil, ErrUnsupportedEncoding
	}
	// parameters such as charset are kept out of the media type
	mediaType, _, _ = strings.Cut(mediaType, ";")

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}

	return &DataURL{MediaType: strings.ToLower(mediaType), Data: data}, nil
}

// DecodeHTML decodes a text/html data URL into the HTML document it carries.
func DecodeHTML(url string) (string, error) {
	d, err := Decode(url)
	if err != nil {
		return "", err
	}
	if d.MediaType != MediaTypeHTML {
		return "", fmt.Errorf("%w: %q", ErrUnexpectedMediaType, d.MediaType)
	}
	if !utf8.Valid(d.Data) {
		return "", fmt.Errorf("%w: html is not valid UTF-8", ErrInvalidPayload)
	}
	return string(d.Data), nil
}

// IsHTML reports whether url looks like a base64 text/html data URL without
// decoding its payload.
func IsHTML(url string) bool {
	return strings.HasPrefix(strings.TrimSpace(url), scheme+MediaTypeHTML+base64Param+",")
}
