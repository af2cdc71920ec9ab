package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spirvcfg/internal/render"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
	assert.Equal(t, render.Mono, c.RenderOptions().Theme)
	assert.False(t, c.RenderOptions().Prune)
}

func TestLoad_PartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultPath)
	data := "prune: true\ntheme:\n  header_color: \"#eeeeee\"\n  font_size: 10\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.True(t, c.Prune)
	assert.Equal(t, "#eeeeee", c.Theme.HeaderColor)
	assert.Equal(t, 10.0, c.Theme.FontSize)
	assert.Equal(t, "monospace", c.Theme.FontName)
	assert.Equal(t, "dashed", c.Theme.MergeStyle)
}

func TestLoad_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultPath)
	require.NoError(t, os.WriteFile(path, nil, 0644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
}

func TestLoad_Malformed(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"syntax", "theme: [unclosed\n"},
		{"unknown field", "colour: red\n"},
		{"wrong type", "prune: maybe\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), DefaultPath)
			require.NoError(t, os.WriteFile(path, []byte(tt.data), 0644))
			_, err := Load(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "config: decode")
		})
	}
}

func TestWriteLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultPath)
	want := Default()
	want.Prune = true
	want.Theme.MergeStyle = "dotted"

	require.NoError(t, Write(path, want))
	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestWrite_BadPath(t *testing.T) {
	err := Write(filepath.Join(t.TempDir(), "missing", "dir", DefaultPath), Default())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config: create")
}
