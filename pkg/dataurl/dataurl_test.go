package dataurl_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/qrgames/pkg/dataurl"
)

func TestEncodeHTML(t *testing.T) {
	t.Parallel()
	url := dataurl.EncodeHTML("<h1>Hi</h1>")
	assert.Equal(t, "data:text/html;base64,PGgxPkhpPC9oMT4=", url)
	assert.True(t, dataurl.IsHTML(url))
}

func TestDecodeHTML(t *testing.T) {
	t.Parallel()
	t.Run("round trip with unicode", func(t *testing.T) {
		t.Parallel()
		html := "<p>héllo ☃ 😀</p>"
		got, err := dataurl.DecodeHTML(dataurl.EncodeHTML(html))
		require.NoError(t, err)
		assert.Equal(t, html, got)
	})

	t.Run("trims surrounding whitespace", func(t *testing.T) {
		t.Parallel()
		got, err := dataurl.DecodeHTML("  data:text/html;base64,PGgxPkhpPC9oMT4=\n")
		require.NoError(t, err)
		assert.Equal(t, "<h1>Hi</h1>", got)
	})

	t.Run("rejects other media types", func(t *testing.T) {
		t.Parallel()
		_, err := dataurl.DecodeHTML(dataurl.Encode("text/plain", []byte("x")))
		assert.ErrorIs(t, err, dataurl.ErrUnexpectedMediaType)
	})

	t.Run("rejects invalid utf-8", func(t *testing.T) {
		t.Parallel()
		got, err := dataurl.DecodeHTML(dataurl.Encode(dataurl.MediaTypeHTML, []byte{'<', 'p', '>', 0xff, 0xfe}))
		require.ErrorIs(t, err, dataurl.ErrInvalidPayload)
		assert.Empty(t, got)

		// the same bytes are fine as a generic payload
		d, err := dataurl.Decode(dataurl.Encode(dataurl.MediaTypeHTML, []byte{0xff, 0xfe}))
		require.NoError(t, err)
		assert.Equal(t, []byte{0xff, 0xfe}, d.Data)
	})
}

func TestDecode(t *testing.T) {
	t.Parallel()
	t.Run("charset parameter", func(t *testing.T) {
		t.Parallel()
		d, err := dataurl.Decode("data:Text/HTML;charset=utf-8;base64,PGI+")
		require.NoError(t, err)
		assert.Equal(t, "text/html", d.MediaType)
		assert.Equal(t, []byte("<b>"), d.Data)
	})

	for name, tc := range map[string]struct {
		url string
		err error
	}{
		"plain url":       {"https://example.com", dataurl.ErrNotDataURL},
		"empty":           {"", dataurl.ErrNotDataURL},
		"missing comma":   {"data:text/html;base64", dataurl.ErrNotDataURL},
		"percent encoded": {"data:text/html,%3Ch1%3E", dataurl.ErrUnsupportedEncoding},
		"bad payload":     {"data:text/html;base64,@@@", dataurl.ErrInvalidPayload},
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			d, err := dataurl.Decode(tc.url)
			require.ErrorIs(t, err, tc.err)
			assert.Nil(t, d)
		})
	}
}

func TestIsHTML(t *testing.T) {
	t.Parallel()
	assert.False(t, dataurl.IsHTML("data:image/png;base64,AAAA"))
	assert.False(t, dataurl.IsHTML("hello"))
}
