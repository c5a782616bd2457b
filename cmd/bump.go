/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"

	"github.com/notargets/gocst/Foil"
	"github.com/notargets/gocst/InputParameters"
	"github.com/spf13/cobra"
)

// BumpCmd represents the bump command
var BumpCmd = &cobra.Command{
	Use:   "bump",
	Short: "Add a bump to a deck section and refit its CST coefficients",
	Long: `
Builds the named closed section of the input deck, adds a Gaussian or
Hicks-Henne bump scaled by the maximum thickness, refits the CST coefficients
and writes the modified deck.

gocst bump -I deck.yaml --section root --xc 0.6 --height 0.05 --span 0.2 -o out.yaml`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var (
			ip                *InputParameters.InputParametersFoil
			deckFile, outFile string
			name              string
			bi                InputParameters.BumpInput
			bs                Foil.BumpSpec
		)
		deckFile, _ = cmd.Flags().GetString("inputDeck")
		outFile, _ = cmd.Flags().GetString("output")
		name, _ = cmd.Flags().GetString("section")
		bi.XC, _ = cmd.Flags().GetFloat64("xc")
		bi.H, _ = cmd.Flags().GetFloat64("height")
		bi.S, _ = cmd.Flags().GetFloat64("span")
		bi.Side, _ = cmd.Flags().GetString("side")
		bi.Kind, _ = cmd.Flags().GetString("kind")
		keep, _ := cmd.Flags().GetBool("keepThickness")
		if ip, err = loadDeck(deckFile); err != nil {
			return
		}
		if bs, err = bi.BumpSpec(); err != nil {
			return
		}
		if err = runBump(ip, name, bs, keep); err != nil {
			return
		}
		ip.Print()
		if len(outFile) != 0 {
			err = writeYAML(outFile, ip)
		}
		return
	},
}

// runBump replaces the named section of the deck by its bumped and refitted
// version. Refinements and deck bumps are folded into the new coefficients.
func runBump(ip *InputParameters.InputParametersFoil, name string, bs Foil.BumpSpec, keepTMax bool) (err error) {
	ind := -1
	for i, s := range ip.Sections {
		if s.Name == name {
			ind = i
		}
	}
	if ind < 0 {
		return fmt.Errorf("%w: no section named %q", InputParameters.ErrInvalidDeck, name)
	}
	var (
		sec Foil.Section
		sg  Foil.SectionGeometry
		bf  Foil.BumpedFoil
	)
	if sec, err = ip.Sections[ind].Section(); err != nil {
		return
	}
	cs, ok := sec.(Foil.ClosedSection)
	if !ok {
		return fmt.Errorf("%w: bumps need a closed section, %s is %s",
			InputParameters.ErrInvalidDeck, name, sec.Kind())
	}
	if sg, err = cs.Build(ip.NPoints); err != nil {
		return
	}
	af := sg.Unit
	if bf, err = Foil.FoilBumpModify(af.X, af.YU, af.YL, bs, ip.NCST, keepTMax); err != nil {
		return
	}
	out := Foil.NewClosedSection(cs.Name, cs.Placement, bf.CSTU, bf.CSTL).WithTail(cs.Tail)
	ip.Sections[ind] = InputParameters.NewSectionInput(out)
	_, t0 := Foil.MaxThickness(bf.YU, bf.YL)
	fmt.Printf("%s: %s bump at x = %g, t/c %8.5f -> %8.5f\n", name, bs.Kind.Resolve(bs.XC), bs.XC, af.T0, t0)
	return
}

func init() {
	rootCmd.AddCommand(BumpCmd)
	BumpCmd.Flags().StringP("inputDeck", "I", "", "YAML input deck describing the sections")
	BumpCmd.Flags().StringP("output", "o", "", "YAML input deck to write")
	BumpCmd.Flags().StringP("section", "s", "", "name of the closed section to modify")
	BumpCmd.Flags().Float64("xc", 0.5, "bump centre as a fraction of the chord")
	BumpCmd.Flags().Float64("height", 0.05, "bump height relative to the maximum thickness")
	BumpCmd.Flags().Float64("span", 0.2, "bump width as a fraction of the chord")
	BumpCmd.Flags().String("side", "upper", "surface to modify, upper or lower")
	BumpCmd.Flags().String("kind", "auto", "bump kind: auto, gaussian or hicks-henne")
	BumpCmd.Flags().Bool("keepThickness", true, "rescale the other surface to keep the maximum thickness")
}
