package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/qrgames/pkg/dataurl"
	"github.com/dmitrymomot/qrgames/pkg/lzstring"
)

type result struct {
	code   int
	stdout string
	stderr string
}

func runCLI(t *testing.T, stdin string, args ...string) result {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), args, strings.NewReader(stdin), &stdout, &stderr)
	return result{code: code, stdout: stdout.String(), stderr: stderr.String()}
}

func TestRunUsage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		code int
	}{
		{"no arguments", nil, exitUsage},
		{"unknown command", []string{"bogus"}, exitUsage},
		{"encode missing output", []string{"encode", "in.html"}, exitUsage},
		{"qr without projects", []string{"qr"}, exitUsage},
		{"qr bad level", []string{"qr", "-level", "Z", "game"}, exitUsage},
		{"unknown flag", []string{"compress", "-zip"}, exitUsage},
		{"too many files", []string{"decompress", "a", "b"}, exitUsage},
		{"help", []string{"help"}, exitOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			res := runCLI(t, "", tt.args...)
			assert.Equal(t, tt.code, res.code, res.stderr)
		})
	}
}

func TestRunVersion(t *testing.T) {
	t.Parallel()
	res := runCLI(t, "", "version")
	assert.Equal(t, exitOK, res.code)
	assert.Equal(t, "qrgames "+version+"\n", res.stdout)
}

func TestRunCompress(t *testing.T) {
	t.Parallel()

	res := runCLI(t, "hello world", "compress")
	require.Equal(t, exitOK, res.code, res.stderr)
	assert.Equal(t, "BYUwNmD2AEDukCcwBMg=\n", res.stdout)

	res = runCLI(t, res.stdout, "decompress")
	require.Equal(t, exitOK, res.code, res.stderr)
	assert.Equal(t, "hello world", res.stdout)

	res = runCLI(t, "hello world", "compress", "-uri")
	require.Equal(t, exitOK, res.code, res.stderr)
	restored, err := lzstring.DecompressFromEncodedURIComponent(strings.TrimSpace(res.stdout))
	require.NoError(t, err)
	assert.Equal(t, "hello world", restored)

	res = runCLI(t, "not*base64", "decompress")
	assert.Equal(t, exitFailure, res.code)
	assert.Contains(t, res.stderr, "command failed")
}

func TestRunCompressFile(t *testing.T) {
	t.Parallel()
	file := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(file, []byte("aaaaaaaaaa"), 0o644))

	res := runCLI(t, "", "compress", file)
	require.Equal(t, exitOK, res.code, res.stderr)
	assert.Equal(t, "IY1o\n", res.stdout)

	res = runCLI(t, "", "compress", filepath.Join(t.TempDir(), "missing.txt"))
	assert.Equal(t, exitFailure, res.code)
}

func TestRunPipeline(t *testing.T) {
	t.Parallel()
	root := t.TempDir()
	game := "<!DOCTYPE html><html><body><h1>Lights Out</h1></body></html>"
	require.NoError(t, os.MkdirAll(filepath.Join(root, "lights_out", "url"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "lights_out", "index.html"), []byte(game), 0o644))

	res := runCLI(t, "", "encode", "-root", root, "lights_out/index.html", "lights_out/url/url.txt")
	require.Equal(t, exitOK, res.code, res.stderr)

	url, err := os.ReadFile(filepath.Join(root, "lights_out", "url", "url.txt"))
	require.NoError(t, err)
	assert.Equal(t, dataurl.EncodeHTML(game), string(url))

	res = runCLI(t, "", "decode", "-root", root, "lights_out/url/url.txt", "restored.html")
	require.Equal(t, exitOK, res.code, res.stderr)
	restored, err := os.ReadFile(filepath.Join(root, "restored.html"))
	require.NoError(t, err)
	assert.Equal(t, game, string(restored))

	res = runCLI(t, "", "compile", "-root", root, "lights_out/index.html", "loader.txt")
	require.Equal(t, exitOK, res.code, res.stderr)
	assert.Contains(t, res.stdout, "loader page:")
	assert.FileExists(t, filepath.Join(root, "loader.txt"))

	res = runCLI(t, "", "qr", "-root", root, "-level", "M", "lights_out")
	require.Equal(t, exitOK, res.code, res.stderr)
	assert.FileExists(t, filepath.Join(root, "lights_out", "img", "qr_code.png"))

	res = runCLI(t, "", "qr-pair", "-root", root, "lights_out")
	assert.Equal(t, exitFailure, res.code)
	assert.Contains(t, res.stderr, "url_github.txt")
}
