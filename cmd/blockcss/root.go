package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "blockcss",
	Short: "Render block style documents into minified CSS",
	Long: `Turn YAML block style documents into minified stylesheets.
Responsive values cascade from mobile to tablet to desktop, design tokens
resolve to CSS custom properties, and each non-desktop tier becomes an
@media block.`,
	// Default behavior: run render when no subcommand is given.
	// We must call loadConfig here because PreRunE of renderCmd
	// is not triggered when delegating via rootCmd.RunE.
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := loadConfig(cmd); err != nil {
			return err
		}
		return runRender(renderCmd, nil)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags (inherited by all subcommands)
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging (same as --log-level debug)")
	rootCmd.PersistentFlags().Bool("quiet", false, "Suppress all output (exit code only)")
	rootCmd.PersistentFlags().Bool("color", false, "Force color output")
	rootCmd.PersistentFlags().String("log-level", "warn", "Log level: debug|info|warn|error")
	rootCmd.PersistentFlags().String("config", ".blockcss.yaml", "Config file path")

	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(lintCmd)
	rootCmd.AddCommand(tokensCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}
