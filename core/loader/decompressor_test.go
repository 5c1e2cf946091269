package loader_test

import (
	"os/exec"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/qrgames/core/loader"
	"github.com/dmitrymomot/qrgames/pkg/lzstring"
)

// runDecompressor evaluates the embedded L() with node and returns L(payload).
func runDecompressor(t *testing.T, payload string) (string, error) {
	t.Helper()
	node, err := exec.LookPath("node")
	if err != nil {
		t.Skip("node is not installed")
	}

	script := loader.Decompressor + `;process.stdout.write(L(require("fs").readFileSync(0,"utf8")))`
	cmd := exec.CommandContext(t.Context(), node, "-e", script)
	cmd.Stdin = strings.NewReader(payload)
	out, err := cmd.Output()
	return string(out), err
}

func TestDecompressorKnownPayloads(t *testing.T) {
	t.Parallel()
	// Produced by the JavaScript LZ-string library.
	cases := map[string]string{
		"IZA=":                 "a",
		"IY1o":                 "aaaaaaaaaa",
		"IYIwxqHpQ===":         "abcabcabcabc",
		"BYUwNmD2AEDukCcwBMg=": "hello world",
		"rwbgA9o=":             "😀",
	}
	for payload, want := range cases {
		t.Run(want, func(t *testing.T) {
			t.Parallel()
			got, err := runDecompressor(t, payload)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestDecompressorMatchesGoCompressor(t *testing.T) {
	t.Parallel()
	var cjk strings.Builder
	for r := rune(0x4E00); r < 0x4E00+500; r++ {
		cjk.WriteRune(r)
	}

	for name, input := range map[string]string{
		"game":           game,
		"latin1 and bmp": "héllo wörld ☃",
		"astral runes":   "😀😀😀a😀🎮",
		"cjk":            cjk.String(),
		"long repeat":    strings.Repeat("<td class=cell>0</td>", 300),
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := runDecompressor(t, lzstring.CompressToBase64(input))
			require.NoError(t, err)
			assert.Equal(t, input, got)
		})
	}
}

func TestDecompressorRejectsTruncatedPayload(t *testing.T) {
	t.Parallel()
	payload := strings.TrimRight(lzstring.CompressToBase64(game), "=")
	_, err := runDecompressor(t, payload[:len(payload)/2])
	assert.Error(t, err)
}
