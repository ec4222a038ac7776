package blockcss

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
)

// ScanStats tracks document discovery statistics
type ScanStats struct {
	FilesDiscovered int // Total files found by glob patterns
	FilesScanned    int // Files kept after filtering
	FilesSkipped    int // Files skipped as config files or gitignored
}

var (
	gitIgnoreCache *ignore.GitIgnore
	gitIgnoreOnce  sync.Once
)

// loadGitIgnore loads the .gitignore file once (thread-safe)
// Gracefully degrades if .gitignore doesn't exist
func loadGitIgnore() *ignore.GitIgnore {
	gitIgnoreOnce.Do(func() {
		gi, err := ignore.CompileIgnoreFile(".gitignore")
		if err != nil {
			gitIgnoreCache = nil
			return
		}
		gitIgnoreCache = gi
	})
	return gitIgnoreCache
}

// isConfigFile reports whether path is a blockcss config file, which may
// share an include pattern with documents.
func isConfigFile(path string) bool {
	base := filepath.Base(path)
	return base == ".blockcss.yaml" || base == ".blockcss.yml"
}

// shouldSkipFile determines if a matched file is excluded from rendering.
// Gitignore rules only apply to relative paths inside the project.
func shouldSkipFile(path string) bool {
	if isConfigFile(path) {
		return true
	}
	if !filepath.IsAbs(path) {
		gi := loadGitIgnore()
		if gi != nil && gi.MatchesPath(path) {
			return true
		}
	}
	return false
}

// expandGlobPatterns expands include patterns under sourceDir into a
// deduplicated list of files, in pattern order.
func expandGlobPatterns(sourceDir string, patterns []string) ([]string, ScanStats, error) {
	var files []string
	seen := make(map[string]bool)
	stats := ScanStats{}

	for _, pattern := range patterns {
		fullPattern := pattern
		if sourceDir != "" && !filepath.IsAbs(pattern) {
			fullPattern = filepath.Join(sourceDir, pattern)
		}

		// Use doublestar for ** glob support
		matches, err := doublestar.FilepathGlob(fullPattern)
		if err != nil {
			return nil, stats, fmt.Errorf("glob pattern %q: %w", pattern, err)
		}

		for _, match := range matches {
			if seen[match] {
				continue
			}
			info, err := os.Stat(match)
			if err != nil || info.IsDir() {
				continue
			}
			seen[match] = true
			stats.FilesDiscovered++

			if shouldSkipFile(match) {
				stats.FilesSkipped++
				continue
			}
			files = append(files, match)
			stats.FilesScanned++
		}
	}

	return files, stats, nil
}

// outputName maps a document path to its stylesheet file name.
func outputName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base)) + ".css"
}
