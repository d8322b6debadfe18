package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/unitkit/unitkit/pkg/prefix"
)

// convertOpts holds the command-line flags for the convert command.
type convertOpts struct {
	pretty    bool // format with the best prefix instead of a raw target
	precision int  // decimal digits for --pretty rounding
	tenths    bool // allow tenths-granularity prefixes (h, da, d, c)
}

func (o *convertOpts) granularity() prefix.Granularity {
	if o.tenths {
		return prefix.Tenths
	}
	return prefix.Thousands
}

// convertCommand creates the convert command.
//
// Examples:
//
//	unitkit convert 2500 m km
//	unitkit convert 1 J eV
//	unitkit convert 10 m/s km/h
//	unitkit convert 0.00032 m --pretty
func (c *CLI) convertCommand() *cobra.Command {
	opts := convertOpts{precision: 4}

	cmd := &cobra.Command{
		Use:   "convert <value> <unit> [target-unit]",
		Short: "Convert a quantity between prefixes and units",
		Long: `Convert a quantity to a different metric prefix or named unit.

With a target unit the value is converted through the prefix table or the
conversion-factor table. Without one (or with --pretty) the value is
rescaled to its most readable prefix and printed with its unit name.`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := c.Engine()
			if err != nil {
				return err
			}
			q, err := parseQuantity(e, args[0], args[1])
			if err != nil {
				return err
			}

			if len(args) == 3 {
				out, err := e.To(q, args[2])
				if err != nil {
					return err
				}
				if opts.pretty {
					printResult(args[0]+" "+args[1], e.Pretty(out, opts.precision, opts.granularity()))
					return nil
				}
				printResult(args[0]+" "+args[1], formatQuantity(e, out))
				return nil
			}

			fmt.Println(StyleNumber.Render(e.Pretty(q, opts.precision, opts.granularity())))
			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.pretty, "pretty", false, "rescale the result to its best prefix")
	cmd.Flags().IntVar(&opts.precision, "precision", opts.precision, "decimal digits for pretty output")
	cmd.Flags().BoolVar(&opts.tenths, "tenths", false, "allow tenths prefixes (h, da, d, c) in pretty output")

	return cmd
}
