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

	"github.com/ghodss/yaml"
	"github.com/notargets/gocst/Foil"
	"github.com/notargets/gocst/geometry2D"
	"github.com/notargets/gocst/InputParameters"
	"github.com/notargets/gocst/readfiles"
	"github.com/spf13/viper"
)

const exampleDeck = `
########################################
Title: "Test Wing"
NPoints: 101
NCST: 7
Sections:
  - Name: root
    CSTU: [0.1186, 0.1189, 0.1557, 0.1367, 0.2093, 0.1483, 0.1936]
    CSTL: [-0.1155, -0.1342, -0.1091, -0.2532, -0.0122, -0.1185, 0.0641]
    Tail: 0.004
    Thickness: 0.12 # optional
    Bumps:
      - {XC: 0.6, H: 0.05, S: 0.2, Side: upper}
  - Name: tip
    CSTU: [0.1186, 0.1189, 0.1557, 0.1367, 0.2093, 0.1483, 0.1936]
    CSTL: [-0.1155, -0.1342, -0.1091, -0.2532, -0.0122, -0.1185, 0.0641]
    XLE: 1.5
    ZLE: 5.
    Chord: 0.4
    Twist: -3.
########################################
`

// loadDeck reads and validates an input deck. Run options missing from the
// deck come from the flags and config.
func loadDeck(fileName string) (ip *InputParameters.InputParametersFoil, err error) {
	if len(fileName) == 0 {
		err = fmt.Errorf("must supply an input deck (-I, --inputDeck), example deck:%s", exampleDeck)
		return
	}
	var data []byte
	if data, err = os.ReadFile(fileName); err != nil {
		return
	}
	ip = &InputParameters.InputParametersFoil{}
	if err = ip.Parse(data); err != nil {
		err = fmt.Errorf("%s: %w", fileName, err)
		return
	}
	ip.SetDefaults(viper.GetInt("points"), viper.GetInt("ncst"), viper.GetInt("parallel"))
	if err = ip.Validate(); err != nil {
		err = fmt.Errorf("%s: %w", fileName, err)
	}
	return
}

func writeYAML(fileName string, v interface{}) (err error) {
	var data []byte
	if data, err = yaml.Marshal(v); err != nil {
		return
	}
	return os.WriteFile(fileName, data, 0644)
}

// SectionSummary is the per section output of the foil and batch commands.
type SectionSummary struct {
	Name     string     `json:"Name"`
	Kind     string     `json:"Kind"`
	Valid    bool       `json:"Valid"`
	Validity string     `json:"Validity,omitempty"`
	T0       float64    `json:"MaxThickness"`
	RLE      float64    `json:"LeadingEdgeRadius,omitempty"`
	TEAngle  float64    `json:"TrailingEdgeAngle,omitempty"`
	Min      [3]float64 `json:"Min"`
	Max      [3]float64 `json:"Max"`
	Error    string     `json:"Error,omitempty"`
}

type BuildSummary struct {
	Title    string           `json:"Title"`
	Sections []SectionSummary `json:"Sections"`
	Invalid  int              `json:"Invalid"`
	Failed   int              `json:"Failed"`
	Min      [3]float64       `json:"Min"`
	Max      [3]float64       `json:"Max"`
	Centroid [3]float64       `json:"Centroid"`
}

func summarize(title string, results []Foil.BuildResult) (bs BuildSummary) {
	bs.Title = title
	var box *geometry2D.BoundingBox
	for _, res := range results {
		ss := SectionSummary{Name: res.Name, Kind: res.Kind.String()}
		if res.Err != nil {
			ss.Error = res.Err.Error()
			bs.Failed++
			bs.Sections = append(bs.Sections, ss)
			continue
		}
		af := res.Geometry.Unit
		ss.T0, ss.RLE, ss.TEAngle = af.T0, af.RLE, af.TEAngle
		ss.Valid = !res.Checked || res.Report.Valid()
		if res.Checked {
			ss.Validity = res.Report.String()
		}
		if !ss.Valid {
			bs.Invalid++
		}
		bb := res.Geometry.BoundingBox()
		ss.Min, ss.Max = bb.XMin, bb.XMax
		box = box.Union(bb)
		bs.Sections = append(bs.Sections, ss)
	}
	if box != nil {
		bs.Min, bs.Max = box.XMin, box.XMax
		bs.Centroid = box.Centroid()
	}
	return
}

func (bs BuildSummary) Print() {
	fmt.Printf("\"%s\": %d sections, %d invalid, %d failed\n", bs.Title, len(bs.Sections), bs.Invalid, bs.Failed)
	for _, ss := range bs.Sections {
		if ss.Error != "" {
			fmt.Printf("%-12s %-6s error: %s\n", ss.Name, ss.Kind, ss.Error)
			continue
		}
		fmt.Printf("%-12s %-6s t/c = %8.5f, rLE = %8.5f, %s\n", ss.Name, ss.Kind, ss.T0, ss.RLE, ss.Validity)
	}
	fmt.Printf("Extent: [%g, %g, %g] to [%g, %g, %g]\n",
		bs.Min[0], bs.Min[1], bs.Min[2], bs.Max[0], bs.Max[1], bs.Max[2])
	fmt.Printf("Center: [%g, %g, %g]\n", bs.Centroid[0], bs.Centroid[1], bs.Centroid[2])
}

// unitZones returns the unit chord curves of the built sections, named
// after the section and surface.
func unitZones(results []Foil.BuildResult) (zones []readfiles.Zone) {
	for _, res := range results {
		if res.Err != nil {
			continue
		}
		af := res.Geometry.Unit
		zones = append(zones, readfiles.Zone{Name: res.Name + "-upper", X: af.X, Y: af.YU})
		if af.YL != nil {
			zones = append(zones, readfiles.Zone{Name: res.Name + "-lower", X: af.X, Y: af.YL})
		}
	}
	return
}
