package loader

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/dmitrymomot/qrgames/pkg/dataurl"
	"github.com/dmitrymomot/qrgames/pkg/lzstring"
)

const DefaultTitle = "Loading..."

// The page is kept on one line: every byte counts once it is base64 encoded
// into a data URL and packed into a QR code.
var pageTemplate = template.Must(template.New("loader").Parse(
	`<!DOCTYPE html><html><head><meta charset="utf-8"><title>{{html .Title}}</title>` +
		`<meta name="viewport" content="width=device-width,initial-scale=1"></head><body><script>` +
		`{{.Decompressor}}document.write(L("{{.Payload}}"));document.close()` +
		`</script></body></html>`,
))

type options struct {
	title string
}

// Option configures Build.
type Option func(*options)

// WithTitle sets the title shown while the page decompresses itself.
func WithTitle(title string) Option {
	return func(o *options) {
		o.title = title
	}
}

// Page is a self-decompressing HTML page.
type Page struct {
	// HTML is the loader page source.
	HTML string
	// Payload is the compressed document embedded in the page.
	Payload string
	// DataURL is HTML as a text/html data URL.
	DataURL string
}

// Build compresses html and wraps it in a loader page that restores and
// renders it with document.write when opened.
func Build(html string, opts ...Option) (*Page, error) {
	if strings.TrimSpace(html) == "" {
		return nil, ErrEmptyDocument
	}

	o := options{title: DefaultTitle}
	for _, opt := range opts {
		opt(&o)
	}

	payload := lzstring.CompressToBase64(html)

	var b strings.Builder
	err := pageTemplate.Execute(&b, struct {
		Title        string
		Decompressor string
		Payload      string
	}{o.title, decompressor, payload})
	if err != nil {
		return nil, fmt.Errorf("loader: render page: %w", err)
	}

	page := b.String()
	return &Page{
		HTML:    page,
		Payload: payload,
		DataURL: dataurl.EncodeHTML(page),
	}, nil
}

// Report compares a plain data URL of a document with its loader page.
// Lengths count the base64 part of each data URL.
type Report struct {
	OriginalLength int
	LoaderLength   int
}

// Compare measures page against the plain data URL encoding of original.
func Compare(original string, page *Page) Report {
	return Report{
		OriginalLength: payloadLength(dataurl.EncodeHTML(original)),
		LoaderLength:   payloadLength(page.DataURL),
	}
}

// Reduction is the number of characters saved. Negative when the loader is larger.
func (r Report) Reduction() int {
	return r.OriginalLength - r.LoaderLength
}

// Percent is Reduction relative to the original length.
func (r Report) Percent() float64 {
	if r.OriginalLength == 0 {
		return 0
	}
	return float64(r.Reduction()) / float64(r.OriginalLength) * 100
}

// Smaller reports whether the loader beats the plain encoding.
func (r Report) Smaller() bool {
	return r.LoaderLength < r.OriginalLength
}

func payloadLength(url string) int {
	_, payload, _ := strings.Cut(url, ",")
	return len(payload)
}
