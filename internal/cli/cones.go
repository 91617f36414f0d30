// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/conedual/cone"
)

func (a *app) newConesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "cones",
		Short: "List the cone kinds that can be dualized and their duals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			reg := cone.NewRegistry()
			kind := a.paint(color.Bold)
			for _, k := range reg.Kinds() {
				d, err := reg.DualSet(sampleSet(k))
				if err != nil {
					return err
				}
				kind.Fprintf(w, "%-34s", k)
				fmt.Fprintf(w, " -> %s\n", d.Kind)
			}
			return nil
		},
	}
}

// sampleSet is a valid instance of a built-in kind.
func sampleSet(k cone.Kind) cone.Set {
	switch k {
	case cone.GreaterThan, cone.LessThan, cone.EqualTo:
		return cone.Set{Kind: k, Dim: 1}
	case cone.PSDTriangle:
		return cone.NewPSDTriangle(2)
	case cone.PowerCone, cone.DualPowerCone:
		return cone.Set{Kind: k, Dim: 3, Exponent: 0.5}
	default:
		return cone.Set{Kind: k, Dim: 3}
	}
}
