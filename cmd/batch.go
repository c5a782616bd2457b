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
	"time"

	"github.com/notargets/gocst/InputParameters"
	"github.com/notargets/gocst/utils"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"
)

// BatchCmd represents the batch command
var BatchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Build and check the sections of an input deck in parallel",
	Long: `
Builds and checks the sections of the input deck on parallel goroutines,
optionally repeating the build and profiling it.

gocst batch -I deck.yaml --parallel 8 --profile cpu`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var (
			ip       *InputParameters.InputParametersFoil
			deckFile string
		)
		deckFile, _ = cmd.Flags().GetString("inputDeck")
		prof, _ := cmd.Flags().GetString("profile")
		repeat, _ := cmd.Flags().GetInt("repeat")
		if ip, err = loadDeck(deckFile); err != nil {
			return
		}
		switch prof {
		case "":
		case "cpu":
			defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
		case "mem":
			defer profile.Start(profile.MemProfile, profile.ProfilePath(".")).Stop()
		default:
			return fmt.Errorf("unknown profile %q, want cpu or mem", prof)
		}
		if repeat < 1 {
			repeat = 1
		}
		var bs BuildSummary
		start := time.Now()
		for i := 0; i < repeat; i++ {
			if _, bs, err = runFoil(ip, ip.Parallel); err != nil {
				return
			}
		}
		elapsed := time.Since(start)
		bs.Print()
		n := repeat * len(bs.Sections)
		fmt.Printf("Built %d sections in %v (%v per section)\n", n, elapsed, elapsed/time.Duration(n))
		fmt.Println(utils.GetMemUsage())
		if bs.Failed != 0 {
			err = fmt.Errorf("%d of %d sections failed to build", bs.Failed, len(bs.Sections))
		}
		return
	},
}

func init() {
	rootCmd.AddCommand(BatchCmd)
	BatchCmd.Flags().StringP("inputDeck", "I", "", "YAML input deck describing the sections")
	BatchCmd.Flags().String("profile", "", "write a cpu or mem profile to the current directory")
	BatchCmd.Flags().Int("repeat", 1, "number of times to build the deck")
}
