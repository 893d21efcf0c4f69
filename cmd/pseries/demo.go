package main

import (
	"fmt"
	"math/big"

	"github.com/spf13/cobra"

	"github.com/donisio/powerseries/pseries"
	"github.com/donisio/powerseries/pseries/eval"
)

func demoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Evaluate e^x at x=1 in fixed and adaptive modes",
		RunE: func(cmd *cobra.Command, args []string) error {
			exp := pseries.Exp()
			x := big.NewRat(1, 1)

			fixed, err := eval.Evaluate(exp, x, eval.Fixed(6))
			if err != nil {
				return err
			}
			fmt.Printf("evaluate(exp, 1, fixed(6))    = %s\n", fixed.RatString())

			adaptive, err := eval.Evaluate(exp, x, eval.WithEpsilon(big.NewRat(1, 10000)))
			if err != nil {
				return err
			}
			fmt.Printf("evaluate(exp, 1, adaptive)     = %s\n", adaptive.RatString())

			return nil
		},
	}
	return cmd
}
