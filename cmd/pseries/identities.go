package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/donisio/powerseries/pseries"
)

type identityCheck struct {
	name string
	ok   func() bool
}

func identitiesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "identities",
		Short: "Check a handful of the library's algebraic identities",
		RunE: func(cmd *cobra.Command, args []string) error {
			checks := []identityCheck{
				{"sin^2 + cos^2 = ONE", func() bool {
					sin, cos := pseries.Sin(), pseries.Cos()
					lhs := sin.Mul(sin).Add(cos.Mul(cos))
					return pseries.Equal(lhs, pseries.One(), 0)
				}},
				{"1 + tan^2 = sec^2", func() bool {
					tan, sec := pseries.Tan(), pseries.Sec()
					lhs := pseries.One().Add(tan.Mul(tan))
					rhs := sec.Mul(sec)
					return pseries.Equal(lhs, rhs, 0)
				}},
				{"cosh^2 - sinh^2 = ONE", func() bool {
					sinh, cosh := pseries.Sinh(), pseries.Cosh()
					lhs := cosh.Mul(cosh).Sub(sinh.Mul(sinh))
					return pseries.Equal(lhs, pseries.One(), 0)
				}},
				{"1 - tanh^2 = sech^2", func() bool {
					tanh, sech := pseries.Tanh(), pseries.Sech()
					lhs := pseries.One().Sub(tanh.Mul(tanh))
					rhs := sech.Mul(sech)
					return pseries.Equal(lhs, rhs, 0)
				}},
				{"Inv(X) = X", func() bool {
					inv, err := pseries.X().Inverse()
					if err != nil {
						return false
					}
					return pseries.Equal(inv, pseries.X(), 0)
				}},
				{"E(ZERO) = ONE", func() bool {
					e, err := pseries.Empty().Exponential()
					if err != nil {
						return false
					}
					return pseries.Equal(e, pseries.One(), 0)
				}},
			}

			failures := 0
			for _, c := range checks {
				status := "PASS"
				if !c.ok() {
					status = "FAIL"
					failures++
				}
				fmt.Printf("  [%s] %s\n", status, c.name)
			}
			if failures > 0 {
				return fmt.Errorf("%d identity check(s) failed", failures)
			}
			return nil
		},
	}
	return cmd
}
