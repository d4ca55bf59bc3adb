package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/numerals/romankit/pkg/roman"
)

func newEncodeCmd(a *app) *cobra.Command {
	var additive bool

	cmd := &cobra.Command{
		Use:     "encode NUMBER...",
		Short:   "Print the Roman numeral for each integer",
		Example: "  roman encode 1994\n  roman encode --additive 4 9 14",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			notation := roman.Subtractive
			if additive {
				notation = roman.Additive
			}
			for _, arg := range args {
				n, err := strconv.Atoi(arg)
				if err != nil {
					return fmt.Errorf("%q is not an integer", arg)
				}
				s, err := a.codec.Encode(n, notation)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), s)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&additive, "additive", false, "use additive notation (IIII instead of IV)")
	return cmd
}

func newDecodeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "decode NUMERAL...",
		Short:   "Print the integer for each Roman numeral",
		Example: "  roman decode MCMXCIV\n  roman decode xiv xl",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				n, err := a.codec.Decode(arg)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), n)
			}
			return nil
		},
	}
}
