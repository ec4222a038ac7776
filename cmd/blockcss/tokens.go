package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/yacobolo/blockcss"
	"github.com/yacobolo/blockcss/internal/report"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens [spacing|font-sizes|gaps]",
	Short: "Print the design-token tables",
	Long: `Print the spacing, font-size and gap scales after config overrides are
merged over the stock tables. Pass a table name to print only that table.`,
	ValidArgs: []string{"spacing", "font-sizes", "gaps"},
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(_ *cobra.Command, args []string) error {
		tokens, _, err := buildDesignConfig()
		if err != nil {
			return err
		}
		only := ""
		if len(args) == 1 {
			only = args[0]
		}
		printTokenTables(os.Stdout, tokens.Tables(), only, report.ShouldUseColors(getBoolWithFallback("color", "color", false)))
		return nil
	},
}

// printTokenTables writes one table per scale; only limits output to one scale.
func printTokenTables(w io.Writer, tables blockcss.TokenTables, only string, useColors bool) {
	scales := []struct {
		name  string
		table map[string]string
	}{
		{"spacing", tables.Spacing},
		{"font-sizes", tables.FontSizes},
		{"gaps", tables.Gaps},
	}

	for _, scale := range scales {
		if only != "" && only != scale.name {
			continue
		}
		fmt.Fprintln(w, report.RenderStyle(report.StyleCyan, scale.name, useColors))

		t := table.New().
			Border(lipgloss.NormalBorder()).
			Headers("NAME", "VALUE").
			StyleFunc(func(row, col int) lipgloss.Style {
				cell := lipgloss.NewStyle().Padding(0, 1)
				if !useColors {
					return cell
				}
				if row == table.HeaderRow {
					return cell.Bold(true)
				}
				if col == 1 {
					return cell.Foreground(report.StyleGray.GetForeground())
				}
				return cell
			})
		for _, name := range blockcss.SortedNames(scale.table) {
			t.Row(name, scale.table[name])
		}
		fmt.Fprintln(w, t.Render())
		fmt.Fprintln(w)
	}
}
