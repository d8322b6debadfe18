package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

// unitsCommand creates the units command.
func (c *CLI) unitsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "units",
		Short: "List registered units and their dimensions",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := c.Engine()
			if err != nil {
				return err
			}

			rows := [][]string{}
			for _, sym := range e.Units().Symbols() {
				vec, _ := e.Units().Lookup(sym)
				prio, _ := e.Units().Priority(sym)
				rows = append(rows, []string{sym, vec.String(), fmt.Sprintf("%d", prio)})
			}

			t := table.New().
				Border(lipgloss.RoundedBorder()).
				BorderStyle(styleTableBorder).
				Headers("Symbol", "Dimensions", "Priority").
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
			printDetail("%d units", len(rows))
			return nil
		},
	}

	cmd.AddCommand(c.unitsShowCommand())
	return cmd
}

// unitsShowCommand creates the "units show" subcommand for a single symbol.
func (c *CLI) unitsShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <symbol>",
		Short: "Show a unit's dimensions and canonical name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := c.Engine()
			if err != nil {
				return err
			}

			vec, err := e.Units().ParseExpr(args[0])
			if err != nil {
				return err
			}
			printInfo("%s", StyleValue.Render(args[0]))
			printDetail("dimensions  %s", vec)
			printDetail("canonical   %s", e.Units().Name(vec))
			return nil
		},
	}
}
