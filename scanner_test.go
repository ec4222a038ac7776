package blockcss

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsConfigFile(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{".blockcss.yaml", true},
		{"blocks/.blockcss.yml", true},
		{"blocks/row.yaml", false},
		{"blockcss.yaml", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, isConfigFile(tt.path))
		})
	}
}

func TestShouldSkipFile_ConfigFile(t *testing.T) {
	assert.True(t, shouldSkipFile(filepath.Join(t.TempDir(), ".blockcss.yaml")))
	assert.False(t, shouldSkipFile(filepath.Join(t.TempDir(), "row.yaml")))
}

func TestExpandGlobPatterns(t *testing.T) {
	dir := t.TempDir()
	writeDoc(t, filepath.Join(dir, "a.yaml"), "")
	writeDoc(t, filepath.Join(dir, "nested", "b.yaml"), "")
	writeDoc(t, filepath.Join(dir, "nested", "c.yml"), "")
	writeDoc(t, filepath.Join(dir, "notes.txt"), "")

	t.Run("deduplicates across patterns", func(t *testing.T) {
		files, stats, err := expandGlobPatterns(dir, []string{"**/*.yaml", "*.yaml"})
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{
			filepath.Join(dir, "a.yaml"),
			filepath.Join(dir, "nested", "b.yaml"),
		}, files)
		assert.Equal(t, 2, stats.FilesDiscovered)
		assert.Equal(t, 2, stats.FilesScanned)
	})

	t.Run("patterns keep their order", func(t *testing.T) {
		files, _, err := expandGlobPatterns(dir, []string{"nested/*.yml", "*.yaml"})
		require.NoError(t, err)
		assert.Equal(t, []string{
			filepath.Join(dir, "nested", "c.yml"),
			filepath.Join(dir, "a.yaml"),
		}, files)
	})

	t.Run("directories are ignored", func(t *testing.T) {
		files, _, err := expandGlobPatterns(dir, []string{"*"})
		require.NoError(t, err)
		assert.NotContains(t, files, filepath.Join(dir, "nested"))
	})

	t.Run("bad pattern", func(t *testing.T) {
		_, _, err := expandGlobPatterns(dir, []string{"[a-"})
		require.Error(t, err)
	})
}

func TestOutputName(t *testing.T) {
	assert.Equal(t, "row.css", outputName("blocks/row.yaml"))
	assert.Equal(t, "row.css", outputName("/abs/row.yml"))
	assert.Equal(t, "a.b.css", outputName("a.b.yaml"))
}
