package output

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFile_Stdout(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteFile(&buf, StdoutPath, []byte("digraph {}\n")))
	require.NoError(t, WriteFile(&buf, "", []byte("x")))
	assert.Equal(t, "digraph {}\nx", buf.String())
}

func TestWriteFile_CreatesParents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "out.dot")
	require.NoError(t, WriteFile(io.Discard, path, []byte("digraph {}\n")))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "digraph {}\n", string(got))
}

func TestWriteFile_Error(t *testing.T) {
	dir := t.TempDir()
	err := WriteFile(io.Discard, dir, []byte("x")) // a directory cannot be overwritten
	require.Error(t, err)
	assert.Contains(t, err.Error(), "output: write")
}

func TestWriteSplit(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "cfg")
	docs := []Document{
		{Name: "main(%5)", ID: 5, Data: []byte("a")},
		{Name: "%9", ID: 9, Data: []byte("b")},
		{Name: "main(%5)", ID: 12, Data: []byte("c")},
	}
	paths, err := WriteSplit(dir, docs)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "main_5.dot"),
		filepath.Join(dir, "9.dot"),
		filepath.Join(dir, "main_5_12.dot"),
	}, paths)

	for i, p := range paths {
		got, err := os.ReadFile(p)
		require.NoError(t, err)
		assert.Equal(t, docs[i].Data, got)
	}
}

func TestWriteSplit_FailureLeavesNoPartialOutput(t *testing.T) {
	dir := t.TempDir()
	// A non-empty directory where second.dot belongs makes its rename fail
	// after first.dot is already in place.
	blocker := filepath.Join(dir, "second.dot")
	require.NoError(t, os.Mkdir(blocker, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(blocker, "keep"), nil, 0644))

	docs := []Document{
		{Name: "first", ID: 1, Data: []byte("a")},
		{Name: "second", ID: 2, Data: []byte("b")},
	}
	paths, err := WriteSplit(dir, docs)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "second.dot")
	assert.Nil(t, paths)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "second.dot", entries[0].Name())
}

func TestWriteSplit_LeavesNoStagingDir(t *testing.T) {
	dir := t.TempDir()
	_, err := WriteSplit(dir, []Document{{Name: "main", ID: 1, Data: []byte("a")}})
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "main.dot", entries[0].Name())
}

func TestFileName(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"main", "main"},
		{"main(%5)", "main_5"},
		{"%7", "7"},
		{"a/b c", "a_b_c"},
		{"..", "fn"},
		{"", "fn"},
		{"vs_main.entry", "vs_main.entry"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FileName(tt.in), "FileName(%q)", tt.in)
	}
}
