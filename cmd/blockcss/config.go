package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/yacobolo/blockcss"
)

var k = koanf.New(".")

// defaultIncludes is used when neither flags nor config name documents.
var defaultIncludes = []string{"**/*.yaml", "**/*.yml"}

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = ".blockcss.yaml"
	}

	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// 3. CLI flags (highest precedence). Unchanged flags are skipped so their
	// defaults do not shadow file and env values.
	flags := cmd.Flags()
	provider := posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
		if !f.Changed {
			return "", nil
		}
		return f.Name, posflag.FlagVal(flags, f)
	})
	if err := k.Load(provider, nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

// loadConfigFromPath loads configuration from a file and environment variables.
// This is separated from loadConfig to allow testing without a cobra command.
func loadConfigFromPath(configPath string) error {
	// 1. Config file (lowest precedence among providers)
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	// 2. Environment variables (BLOCKCSS_* prefix)
	if err := k.Load(env.Provider("BLOCKCSS_", ".", func(s string) string {
		// BLOCKCSS_RENDER_SOURCE -> render.source
		// BLOCKCSS_LINT_STRICT -> lint.strict
		// BLOCKCSS_BREAKPOINTS_TABLET -> breakpoints.tablet
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "BLOCKCSS_")),
			"_", ".",
		)
	}), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// buildRenderConfig constructs the library's Config struct from koanf state.
func buildRenderConfig() (blockcss.Config, error) {
	tokens, breakpoints, err := buildDesignConfig()
	if err != nil {
		return blockcss.Config{}, err
	}

	config := blockcss.Config{
		SourceDir:   getStringWithFallback("source", "render.source", "blocks"),
		OutputDir:   getStringWithFallback("output-dir", "render.output-dir", "dist/css"),
		DryRun:      getBoolWithFallback("dry-run", "render.dry-run", false),
		Tokens:      tokens,
		Breakpoints: breakpoints,
	}

	// Handle includes: check flag key first, then config key
	if includes := k.Strings("include"); len(includes) > 0 {
		config.Includes = includes
	} else if includes := k.Strings("render.include"); len(includes) > 0 {
		config.Includes = includes
	} else {
		config.Includes = defaultIncludes
	}

	return config, nil
}

// buildLintConfig constructs the library's LintConfig struct from koanf state.
func buildLintConfig() (blockcss.LintConfig, error) {
	tokens, breakpoints, err := buildDesignConfig()
	if err != nil {
		return blockcss.LintConfig{}, err
	}

	// Handle paths: check flag key first, then lint config, then render includes
	var scanPaths []string
	if paths := k.Strings("paths"); len(paths) > 0 {
		scanPaths = paths
	} else if paths := k.Strings("lint.paths"); len(paths) > 0 {
		scanPaths = paths
	} else if paths := k.Strings("render.include"); len(paths) > 0 {
		scanPaths = paths
	} else {
		scanPaths = defaultIncludes
	}

	return blockcss.LintConfig{
		SourceDir:          getStringWithFallback("source", "render.source", "blocks"),
		ScanPaths:          scanPaths,
		Tokens:             tokens,
		Breakpoints:        breakpoints,
		Strict:             getBoolWithFallback("strict", "lint.strict", false),
		MaxIssuesPerLinter: getIntWithFallback("max-issues-per-linter", "lint.max-issues-per-linter", 0),
		MaxSameIssues:      getIntWithFallback("max-same-issues", "lint.max-same-issues", 0),
		PrintIssuedLines:   getBoolWithFallback("print-lines", "lint.print-lines", true),
		PrintLinterName:    getBoolWithFallback("print-linter-name", "lint.print-linter-name", true),
		UseColors:          getBoolWithFallback("color", "color", false),
	}, nil
}

// buildDesignConfig reads the token overrides and breakpoints. Configured
// tokens are merged over the stock scales.
func buildDesignConfig() (*blockcss.Tokens, blockcss.Breakpoints, error) {
	var override blockcss.TokenTables
	if err := k.Unmarshal("tokens", &override); err != nil {
		return nil, blockcss.Breakpoints{}, fmt.Errorf("reading tokens: %w", err)
	}
	tokens, err := blockcss.NewTokens(blockcss.DefaultTokenTables().Merge(override))
	if err != nil {
		return nil, blockcss.Breakpoints{}, err
	}

	defaults := blockcss.DefaultBreakpoints()
	breakpoints := blockcss.Breakpoints{
		Tablet: getStringWithFallback("breakpoints.tablet", "breakpoints.tablet", defaults.Tablet),
		Mobile: getStringWithFallback("breakpoints.mobile", "breakpoints.mobile", defaults.Mobile),
	}
	return tokens, breakpoints, nil
}

// getStringWithFallback checks the flag key first, then the config file key, then returns the default.
func getStringWithFallback(flagKey, configKey, defaultVal string) string {
	if v := k.String(flagKey); v != "" {
		return v
	}
	if v := k.String(configKey); v != "" {
		return v
	}
	return defaultVal
}

// getBoolWithFallback checks the flag key first, then the config file key, then returns the default.
func getBoolWithFallback(flagKey, configKey string, defaultVal bool) bool {
	if k.Exists(flagKey) {
		return k.Bool(flagKey)
	}
	if k.Exists(configKey) {
		return k.Bool(configKey)
	}
	return defaultVal
}

// getIntWithFallback checks the flag key first, then the config file key, then returns the default.
func getIntWithFallback(flagKey, configKey string, defaultVal int) int {
	if k.Exists(flagKey) {
		return k.Int(flagKey)
	}
	if k.Exists(configKey) {
		return k.Int(configKey)
	}
	return defaultVal
}
