package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .blockcss.yaml config file",
	Long:  `Create a .blockcss.yaml configuration file in the current directory with sensible defaults.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")
		path, _ := cmd.Flags().GetString("config")
		if path == "" {
			path = ".blockcss.yaml"
		}

		if _, err := os.Stat(path); err == nil && !force {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}

		if err := os.WriteFile(path, []byte(defaultConfig), 0o644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Printf("Created %s\n", path)
		return nil
	},
}

const defaultConfig = `# blockcss configuration

# Shared settings
verbose: false
log-level: warn

# Media conditions for the tablet and mobile tiers
breakpoints:
  tablet: "(max-width: 1024px)"
  mobile: "(max-width: 767px)"

# Design tokens, merged over the stock scales
tokens:
  spacing: {}
  font-sizes: {}
  gaps: {}

# Render settings
render:
  source: blocks
  output-dir: dist/css
  include:
    - "**/*.yaml"
    - "**/*.yml"

# Linting settings
lint:
  strict: false
  output-format: issues    # issues | summary | full | json | markdown
  max-issues-per-linter: 0 # 0 = unlimited
  max-same-issues: 0       # 0 = unlimited
  print-lines: true
  print-linter-name: true
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
