package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

// prefixesCommand creates the prefixes command.
func (c *CLI) prefixesCommand() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "prefixes",
		Short: "List metric prefixes and their exponents",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := c.Engine()
			if err != nil {
				return err
			}

			rows := [][]string{}
			for _, sym := range e.Prefixes().Symbols() {
				exp, _ := e.Prefixes().Exponent(sym)
				if !all && exp%3 != 0 {
					continue
				}
				name := sym
				if name == "" {
					name = "(identity)"
				}
				rows = append(rows, []string{name, fmt.Sprintf("10^%d", exp)})
			}

			t := table.New().
				Border(lipgloss.RoundedBorder()).
				BorderStyle(styleTableBorder).
				Headers("Symbol", "Factor").
				Rows(rows...).
				StyleFunc(func(row, col int) lipgloss.Style {
					if row == -1 {
						return styleTableHeader
					}
					if col == 0 {
						return StyleValue
					}
					return StyleDim
				})

			fmt.Println(t.Render())
			printDetail("%d prefixes", len(rows))
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "include tenths prefixes and compound forms")
	return cmd
}
