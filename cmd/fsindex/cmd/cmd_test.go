package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCommand executes the CLI with the given args, capturing output.
// Package-level flag state is reset so tests stay independent.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	configPath = ""
	buckets = 0
	exclude = nil
	debugMode = false

	root := NewRootCmd()
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func sampleTree(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), make([]byte, 5), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.txt"), make([]byte, 10), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))
	return dir
}

func TestRootShowsHelp(t *testing.T) {
	out, err := runCommand(t)
	require.NoError(t, err)
	assert.Contains(t, out, "fsindex")
	assert.Contains(t, out, "Available Commands")
}

func TestIndexCommand(t *testing.T) {
	dir := sampleTree(t)
	out, err := runCommand(t, "index", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "directories: 1")
	assert.Contains(t, out, "files:       2")
	assert.Contains(t, out, "load factor:")
}

func TestIndexCommandBucketsFlag(t *testing.T) {
	dir := sampleTree(t)
	out, err := runCommand(t, "index", dir, "--buckets", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "buckets:     3")
}

func TestSearchByName(t *testing.T) {
	dir := sampleTree(t)

	out, err := runCommand(t, "search", "a.txt", "--root", dir)
	require.NoError(t, err)
	assert.Contains(t, out, filepath.Join(dir, "a.txt"))
	assert.Contains(t, out, "5 bytes")

	out, err = runCommand(t, "search", "missing.txt", "--root", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "no matches")
}

func TestSearchDirectories(t *testing.T) {
	dir := sampleTree(t)

	out, err := runCommand(t, "search", "sub", "--dir", "--root", dir)
	require.NoError(t, err)
	assert.Contains(t, out, filepath.Join(dir, "sub"))
	assert.Contains(t, out, "(directory)")

	// Directories never match a file search.
	out, err = runCommand(t, "search", "sub", "--root", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "no matches")
}

func TestSearchByPath(t *testing.T) {
	dir := sampleTree(t)
	target := filepath.Join(dir, "b.txt")

	out, err := runCommand(t, "search", target, "--path", "--root", dir)
	require.NoError(t, err)
	assert.Contains(t, out, target)
	assert.Contains(t, out, "10 bytes")

	out, err = runCommand(t, "search", filepath.Join(dir, "nope"), "--path", "--root", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "not found")
}

func TestShowTable(t *testing.T) {
	dir := sampleTree(t)
	out, err := runCommand(t, "show", "table", dir)
	require.NoError(t, err)
	assert.Contains(t, out, filepath.Join(dir, "sub"))
	assert.Contains(t, out, "load factor:")
}

func TestShowTree(t *testing.T) {
	dir := sampleTree(t)
	out, err := runCommand(t, "show", "tree", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "a.txt")
	assert.Contains(t, out, "b.txt")
	assert.Contains(t, out, "(no files)") // the empty sub directory
}

func TestRmRequiresIndexedFile(t *testing.T) {
	dir := sampleTree(t)

	_, err := runCommand(t, "rm", filepath.Join(dir, "nope.txt"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not indexed")

	target := filepath.Join(dir, "a.txt")
	out, err := runCommand(t, "rm", target)
	require.NoError(t, err)
	assert.Contains(t, out, "removed")
	_, statErr := os.Stat(target)
	assert.True(t, os.IsNotExist(statErr))
}

func TestRmDirectory(t *testing.T) {
	dir := sampleTree(t)
	target := filepath.Join(dir, "sub")

	out, err := runCommand(t, "rm", target, "--dir", "--root", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "removed directory")
	_, statErr := os.Stat(target)
	assert.True(t, os.IsNotExist(statErr))
}

func TestTouchAndMkdir(t *testing.T) {
	dir := t.TempDir()

	_, err := runCommand(t, "touch", filepath.Join(dir, "new.txt"))
	require.NoError(t, err)
	info, err := os.Stat(filepath.Join(dir, "new.txt"))
	require.NoError(t, err)
	assert.Equal(t, int64(0), info.Size())

	_, err = runCommand(t, "mkdir", filepath.Join(dir, "newdir"))
	require.NoError(t, err)
	info, err = os.Stat(filepath.Join(dir, "newdir"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestCatAndWrite(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "f.txt")
	require.NoError(t, os.WriteFile(target, []byte("hello\n"), 0o644))

	out, err := runCommand(t, "cat", target)
	require.NoError(t, err)
	assert.Equal(t, "hello\n", out)

	// write replaces the contents from stdin, gated on the index hit.
	configPath, buckets, exclude, debugMode = "", 0, nil, false
	root := NewRootCmd()
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetIn(strings.NewReader("replaced"))
	root.SetArgs([]string{"write", target})
	require.NoError(t, root.Execute())
	assert.Contains(t, buf.String(), "wrote 8 bytes")

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "replaced", string(data))
}

func TestVersionCommand(t *testing.T) {
	out, err := runCommand(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "fsindex")

	out, err = runCommand(t, "version", "--json")
	require.NoError(t, err)
	assert.Contains(t, out, `"version"`)
	assert.Contains(t, out, `"go_version"`)
}
