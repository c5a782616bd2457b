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
	"github.com/notargets/gocst/readfiles"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// FitCmd represents the fit command
var FitCmd = &cobra.Command{
	Use:   "fit",
	Short: "Fit CST coefficients to sampled section points",
	Long: `
Reads a point file and fits CST coefficients. Consecutive zones are taken as
the upper and lower surface of one section, with --open every zone is a single
curve. Twist, chord and trailing edge thickness are taken out of the points
and the result is written as an input deck.

gocst fit -F points.dat --ncst 7 -o deck.yaml`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var (
			zones           []readfiles.Zone
			ptFile, outFile string
			open            bool
			ip              InputParameters.InputParametersFoil
		)
		ptFile, _ = cmd.Flags().GetString("pointFile")
		outFile, _ = cmd.Flags().GetString("output")
		open, _ = cmd.Flags().GetBool("open")
		if len(ptFile) == 0 {
			return fmt.Errorf("must supply a point file (-F, --pointFile) of \"x y\" rows, zones separated by blank lines")
		}
		if zones, err = readfiles.ReadPointsFile(ptFile); err != nil {
			return
		}
		if ip, err = runFit(zones, open, viper.GetInt("ncst"), viper.GetInt("parallel")); err != nil {
			return
		}
		ip.Title = ptFile
		ip.NPoints = viper.GetInt("points")
		ip.Print()
		if len(outFile) != 0 {
			err = writeYAML(outFile, ip)
		}
		return
	},
}

func fitJobs(zones []readfiles.Zone, open bool, nCST int) (jobs []Foil.FitJob, err error) {
	name := func(z readfiles.Zone, i int) string {
		if z.Name != "" {
			return z.Name
		}
		return fmt.Sprintf("section-%d", i)
	}
	if open {
		for i, z := range zones {
			jobs = append(jobs, Foil.FitJob{Name: name(z, i), XU: z.X, YU: z.Y, NCST: nCST})
		}
		return
	}
	if len(zones)%2 != 0 {
		err = fmt.Errorf("%w: %d zones, closed sections need upper and lower zone pairs",
			readfiles.ErrNoData, len(zones))
		return
	}
	for i := 0; i < len(zones); i += 2 {
		up, lo := zones[i], zones[i+1]
		jobs = append(jobs, Foil.FitJob{Name: name(up, i/2),
			XU: up.X, YU: up.Y, XL: lo.X, YL: lo.Y, NCST: nCST})
	}
	return
}

// runFit fits every zone or zone pair and returns the fitted sections as a
// deck. Jobs that fail are reported and left out.
func runFit(zones []readfiles.Zone, open bool, nCST, parallel int) (ip InputParameters.InputParametersFoil, err error) {
	var jobs []Foil.FitJob
	if jobs, err = fitJobs(zones, open, nCST); err != nil {
		return
	}
	ip.NCST = nCST
	failed := 0
	for _, res := range Foil.FitBatch(jobs, parallel) {
		if res.Err != nil {
			fmt.Printf("%-12s error: %s\n", res.Name, res.Err)
			failed++
			continue
		}
		fmt.Printf("%-12s chord = %8.5f, twist = %8.4f, tail = %8.5f, t/c = %8.5f\n",
			res.Name, res.Chord, res.Twist, res.Tail, res.Thick)
		ip.Sections = append(ip.Sections, InputParameters.NewSectionInput(res.Section()))
	}
	if failed == len(jobs) {
		err = fmt.Errorf("all %d fits failed", failed)
	}
	return
}

func init() {
	rootCmd.AddCommand(FitCmd)
	FitCmd.Flags().StringP("pointFile", "F", "", "point file with the sampled sections")
	FitCmd.Flags().StringP("output", "o", "", "YAML input deck to write")
	FitCmd.Flags().Bool("open", false, "fit every zone as a single open curve")
}
