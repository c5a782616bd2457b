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
	"os"

	"github.com/notargets/gocst/Foil"
	"github.com/notargets/gocst/InputParameters"
	"github.com/notargets/gocst/readfiles"
	"github.com/spf13/cobra"
)

// FoilCmd represents the foil command
var FoilCmd = &cobra.Command{
	Use:   "foil",
	Short: "Build and check every section of an input deck",
	Long: `
Builds every section of the input deck, applies refinements and bumps, runs
the validity rules on closed sections and writes a YAML summary.

gocst foil -I deck.yaml -o summary.yaml -c points.dat`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var (
			ip                        *InputParameters.InputParametersFoil
			deckFile, outFile, ptFile string
		)
		deckFile, _ = cmd.Flags().GetString("inputDeck")
		outFile, _ = cmd.Flags().GetString("output")
		ptFile, _ = cmd.Flags().GetString("coordinates")
		if ip, err = loadDeck(deckFile); err != nil {
			return
		}
		ip.Print()
		results, bs, err := runFoil(ip, 1)
		if err != nil {
			return
		}
		bs.Print()
		if len(outFile) != 0 {
			if err = writeYAML(outFile, bs); err != nil {
				return
			}
		}
		if len(ptFile) != 0 {
			var f *os.File
			if f, err = os.Create(ptFile); err != nil {
				return
			}
			defer f.Close()
			if err = readfiles.WritePoints(f, unitZones(results)...); err != nil {
				return
			}
		}
		if bs.Failed != 0 {
			err = fmt.Errorf("%d of %d sections failed to build", bs.Failed, len(bs.Sections))
		}
		return
	},
}

func runFoil(ip *InputParameters.InputParametersFoil, parallel int) (results []Foil.BuildResult, bs BuildSummary, err error) {
	var sections []Foil.Section
	if sections, err = ip.FoilSections(); err != nil {
		return
	}
	results = Foil.BuildBatch(sections, ip.NPoints, ip.NegThicknessTolerance, parallel)
	bs = summarize(ip.Title, results)
	return
}

func init() {
	rootCmd.AddCommand(FoilCmd)
	FoilCmd.Flags().StringP("inputDeck", "I", "", "YAML input deck describing the sections")
	FoilCmd.Flags().StringP("output", "o", "", "YAML file for the build summary")
	FoilCmd.Flags().StringP("coordinates", "c", "", "point file for the unit chord coordinates")
}
