package blockcss

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/yacobolo/blockcss/internal/document"
)

// Config holds renderer configuration
type Config struct {
	SourceDir   string      // "blocks"
	OutputDir   string      // "dist/css"
	Includes    []string    // ["**/*.yaml"]
	Tokens      *Tokens     // nil = DefaultTokens()
	Breakpoints Breakpoints // zero = DefaultBreakpoints()
	Logger      *zap.Logger // nil = no logging
	DryRun      bool        // Render without writing files
}

// RenderResult contains render stats
type RenderResult struct {
	FilesScanned int
	FilesSkipped int
	FilesWritten int
	Stats        RenderStats
	Outputs      map[string]string // document path -> rendered CSS
	Warnings     []string
}

// Render is the batch entry point: it renders every document matched by
// config.Includes and writes one stylesheet per document.
func Render(config Config) (*RenderResult, error) {
	log := config.Logger
	if log == nil {
		log = zap.NewNop()
	}
	log = log.Named("render")

	if config.Breakpoints == (Breakpoints{}) {
		config.Breakpoints = DefaultBreakpoints()
	}
	if err := config.Breakpoints.Validate(); err != nil {
		return nil, err
	}
	if config.Tokens == nil {
		config.Tokens = DefaultTokens()
	}

	// 1. Find documents
	files, scan, err := expandGlobPatterns(config.SourceDir, config.Includes)
	if err != nil {
		return nil, fmt.Errorf("scan failed: %w", err)
	}
	result := &RenderResult{
		FilesScanned: scan.FilesScanned,
		FilesSkipped: scan.FilesSkipped,
		Outputs:      make(map[string]string, len(files)),
	}
	log.Debug("found documents", zap.Int("files", len(files)), zap.Int("skipped", scan.FilesSkipped))

	if !config.DryRun && len(files) > 0 {
		if err := os.MkdirAll(config.OutputDir, 0o755); err != nil {
			return nil, fmt.Errorf("create output dir: %w", err)
		}
	}

	renderer := DocumentRenderer{Tokens: config.Tokens, Breakpoints: config.Breakpoints, Logger: log}

	// 2. Render each document; a broken document is a warning, not a failure
	var writeErr error
	targets := make(map[string]string, len(files))
	for _, file := range files {
		doc, err := document.ParseFile(file)
		if err != nil {
			result.Warnings = append(result.Warnings, fmt.Sprintf("Failed to parse %s: %v", file, err))
			continue
		}

		out, stats := renderer.Render(doc)
		result.Stats.Add(stats)
		css := out.String()
		result.Outputs[file] = css
		log.Debug("rendered document",
			zap.String("file", file),
			zap.Int("rules", stats.Rules),
			zap.Int("declarations", stats.Emitted))

		if config.DryRun {
			continue
		}
		// 3. Write stylesheet
		target := filepath.Join(config.OutputDir, outputName(file))
		if prev, dup := targets[target]; dup {
			result.Warnings = append(result.Warnings, fmt.Sprintf("%s and %s both render to %s - later one wins", prev, file, target))
		}
		targets[target] = file
		if err := os.WriteFile(target, []byte(css), 0o644); err != nil {
			writeErr = multierr.Append(writeErr, fmt.Errorf("write %s: %w", target, err))
			continue
		}
		result.FilesWritten++
	}

	if writeErr != nil {
		return result, fmt.Errorf("write failed: %w", writeErr)
	}
	return result, nil
}
