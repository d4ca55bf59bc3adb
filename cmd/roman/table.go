package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/numerals/romankit/pkg/roman"
)

type tableRow struct {
	Number  int    `json:"number" yaml:"number"`
	Numeral string `json:"numeral" yaml:"numeral"`
}

func newTableCmd(a *app) *cobra.Command {
	var (
		format   string
		additive bool
	)

	cmd := &cobra.Command{
		Use:   "table [FROM [TO]]",
		Short: "Print a conversion table",
		Long: "Print every integer in [FROM, TO] next to its numeral.\n" +
			"FROM defaults to 1 and TO to the configured upper bound.",
		Example: "  roman table 1 20\n  roman table 1990 2000 --format yaml",
		Args:    cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, to := roman.MinValue, a.codec.UpperBound()
			var err error
			if len(args) > 0 {
				if from, err = strconv.Atoi(args[0]); err != nil {
					return fmt.Errorf("FROM %q is not an integer", args[0])
				}
				to = from
			}
			if len(args) > 1 {
				if to, err = strconv.Atoi(args[1]); err != nil {
					return fmt.Errorf("TO %q is not an integer", args[1])
				}
			}
			if from > to {
				return fmt.Errorf("FROM %d is greater than TO %d", from, to)
			}

			notation := roman.Subtractive
			if additive {
				notation = roman.Additive
			}
			rows := make([]tableRow, 0, to-from+1)
			for n := from; n <= to; n++ {
				s, err := a.codec.Encode(n, notation)
				if err != nil {
					return err
				}
				rows = append(rows, tableRow{Number: n, Numeral: s})
			}
			return writeTable(cmd.OutOrStdout(), format, rows)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format: text, json or yaml")
	cmd.Flags().BoolVar(&additive, "additive", false, "use additive notation")
	return cmd
}

func writeTable(w io.Writer, format string, rows []tableRow) error {
	switch format {
	case "text":
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		for _, r := range rows {
			fmt.Fprintf(tw, "%d\t%s\n", r.Number, r.Numeral)
		}
		return tw.Flush()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rows); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q: must be text, json or yaml", format)
	}
}
