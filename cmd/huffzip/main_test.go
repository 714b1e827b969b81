package main

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chronos-tachyon/huffzip"
)

func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.ErrWriter = &out
	err := app.Run(append([]string{"huffzip", "--verbosity", "0"}, args...))
	return out.String(), err
}

func TestEncodeDecode(t *testing.T) {
	dir := t.TempDir()
	var (
		orig   = filepath.Join(dir, "input.txt")
		packed = filepath.Join(dir, "input.huff")
		back   = filepath.Join(dir, "output.txt")
	)
	content := []byte(strings.Repeat("she sells sea shells by the sea shore\n", 50))
	require.NoError(t, os.WriteFile(orig, content, 0o644))

	_, err := runApp(t, "encode", "-i", orig, "-o", packed)
	require.NoError(t, err)
	_, err = runApp(t, "decode", "--input", packed, "--output", back)
	require.NoError(t, err)

	got, err := os.ReadFile(back)
	require.NoError(t, err)
	assert.Equal(t, content, got)

	compressed, err := os.ReadFile(packed)
	require.NoError(t, err)
	assert.Less(t, len(compressed), len(content))
}

func TestEncode_Empty(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "empty")
	out := filepath.Join(dir, "empty.huff")
	require.NoError(t, os.WriteFile(in, nil, 0o644))

	_, err := runApp(t, "encode", "-i", in, "-o", out)
	require.NoError(t, err)

	_, err = os.Stat(out)
	assert.True(t, errors.Is(err, fs.ErrNotExist), "expected no output file, got %v", err)
}

func TestEncode_MissingInput(t *testing.T) {
	dir := t.TempDir()
	_, err := runApp(t, "encode", "-i", filepath.Join(dir, "missing"), "-o", filepath.Join(dir, "out"))
	assert.True(t, errors.Is(err, fs.ErrNotExist), "expected not-exist error, got %v", err)
}

func TestDecode_Corrupt(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "bad.huff")
	out := filepath.Join(dir, "bad.txt")
	require.NoError(t, os.WriteFile(in, []byte("too short"), 0o644))

	_, err := runApp(t, "decode", "-i", in, "-o", out)
	assert.ErrorIs(t, err, huffzip.ErrCorruptContainer)

	// No partial output, and no leftover temporary file.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestInspect(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "aaab.huff")
	packed, err := huffzip.Compress([]byte("aaab"))
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(in, packed, 0o644))

	out, err := runApp(t, "inspect", "-i", in)
	require.NoError(t, err)
	assert.Equal(t, strings.Join([]string{
		"Original length: 4 bytes\n",
		"Tree length:     19 bits\n",
		"Data length:     4 bits\n",
		"Padding:         1 bits\n",
		"Leaves:          2\n",
		"Decoder{\n",
		"\tMinSize() = 1\n",
		"\tMaxSize() = 1\n",
		"\tDecode(\"0\") = 0x62\n",
		"\tDecode(\"1\") = 0x61\n",
		"}\n",
	}, ""), out)
}

func TestWriteFileAtomic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0o644))
	require.NoError(t, writeFileAtomic(path, []byte("new")))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new", string(got))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
