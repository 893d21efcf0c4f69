package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/donisio/powerseries/pseries"
)

var namedSeries = map[string]func() *pseries.Series{
	"exp":     pseries.Exp,
	"sin":     pseries.Sin,
	"cos":     pseries.Cos,
	"tan":     pseries.Tan,
	"sec":     pseries.Sec,
	"arcsin":  pseries.ArcSin,
	"arctan":  pseries.ArcTan,
	"sinh":    pseries.Sinh,
	"cosh":    pseries.Cosh,
	"tanh":    pseries.Tanh,
	"sech":    pseries.Sech,
	"arcsinh": pseries.ArcSinh,
	"arctanh": pseries.ArcTanh,
	"one":     pseries.One,
	"x":       pseries.X,
	"harmonic": pseries.Harmonic,
}

func showCmd() *cobra.Command {
	var terms int

	cmd := &cobra.Command{
		Use:   "show <series>",
		Short: "Print the leading coefficients of a named series",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctor, ok := namedSeries[args[0]]
			if !ok {
				return fmt.Errorf("unknown series %q (try one of: %s)", args[0], availableNames())
			}
			for i, c := range ctor().FirstK(terms) {
				fmt.Printf("  [%d] %s\n", i, c.RatString())
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&terms, "terms", "n", 10, "number of leading coefficients to print")
	return cmd
}

func availableNames() string {
	names := make([]string, 0, len(namedSeries))
	for name := range namedSeries {
		names = append(names, name)
	}
	return fmt.Sprint(names)
}
