package InputParameters

import (
	"errors"
	"testing"

	"github.com/notargets/gocst/Foil"
	"github.com/notargets/gocst/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var deck = []byte(`
Title: Wing
NPoints: 101
NCST: 7
NegThicknessTolerance: 0.
Parallel: 2
Sections:
  - Name: root
    CSTU: [0.1186, 0.1189, 0.1557, 0.1367, 0.2093, 0.1483, 0.1936]
    CSTL: [-0.1155, -0.1342, -0.1091, -0.2532, -0.0122, -0.1185, 0.0641]
    Tail: 0.004
    Thickness: 0.11
    Bumps:
      - XC: 0.5
        H: 0.05
        S: 0.2
        Side: lower
        Kind: gaussian
  - Name: tip
    CSTU: [0.1186, 0.1189, 0.1557, 0.1367, 0.2093, 0.1483, 0.1936]
    CSTL: [-0.1155, -0.1342, -0.1091, -0.2532, -0.0122, -0.1185, 0.0641]
    ZLE: 5.
    XLE: 1.2
    Chord: 0.4
    Twist: -3
  - Name: pod
    Kind: open
    CST: [0.1, 0.2, 0.1]
    CSTFlip: [0.02]
`)

func TestParse(t *testing.T) {
	var ip InputParametersFoil
	require.NoError(t, ip.Parse(deck))
	assert.Equal(t, "Wing", ip.Title)
	assert.Equal(t, 101, ip.NPoints)
	assert.Equal(t, 2, ip.Parallel)
	require.Len(t, ip.Sections, 3)
	{ // Optional fields
		require.NotNil(t, ip.Sections[0].Thickness)
		assert.Equal(t, 0.11, *ip.Sections[0].Thickness)
		assert.Nil(t, ip.Sections[1].Thickness)
		assert.Equal(t, 1., ip.Sections[0].chord())
		assert.Equal(t, 0.4, ip.Sections[1].chord())
	}
	require.NoError(t, ip.Validate())
	ip.Print()

	sections, err := ip.FoilSections()
	require.NoError(t, err)
	require.Len(t, sections, 3)
	root, ok := sections[0].(Foil.ClosedSection)
	require.True(t, ok)
	assert.Equal(t, types.Some(0.11), root.Thickness)
	assert.Equal(t, 0.004, root.Tail)
	require.Len(t, root.Bumps, 1)
	assert.Equal(t, Foil.BumpSpec{XC: 0.5, H: 0.05, S: 0.2, Side: types.Lower, Kind: Foil.BumpGaussian}, root.Bumps[0])
	assert.Equal(t, 5., sections[1].Location().ZLE)
	assert.Equal(t, -3., sections[1].Location().Twist)
	pod, ok := sections[2].(Foil.OpenSection)
	require.True(t, ok)
	assert.Equal(t, []float64{0.02}, pod.CSTFlip)
	assert.Equal(t, Foil.OpenKind, pod.Kind())
}

func TestSetDefaults(t *testing.T) {
	ip := InputParametersFoil{NCST: 9}
	ip.SetDefaults(201, 7, 4)
	assert.Equal(t, 201, ip.NPoints)
	assert.Equal(t, 9, ip.NCST)
	assert.Equal(t, 4, ip.Parallel)
}

func TestValidate(t *testing.T) {
	parse := func(edit func(ip *InputParametersFoil)) *InputParametersFoil {
		var ip InputParametersFoil
		require.NoError(t, ip.Parse(deck))
		edit(&ip)
		return &ip
	}
	bad := []func(ip *InputParametersFoil){
		func(ip *InputParametersFoil) { ip.NPoints = 2 },
		func(ip *InputParametersFoil) { ip.Sections = nil },
		func(ip *InputParametersFoil) { ip.Sections[1].Name = "root" },
		func(ip *InputParametersFoil) { ip.Sections[1].Name = "" },
		func(ip *InputParametersFoil) { ip.Sections[0].CSTL = nil },
		func(ip *InputParametersFoil) { ip.Sections[2].CST = nil },
		func(ip *InputParametersFoil) { ip.Sections[2].Kind = "spline" },
		func(ip *InputParametersFoil) { ip.Sections[0].Bumps[0].Side = "middle" },
		func(ip *InputParametersFoil) { ip.Sections[0].Bumps[0].Kind = "box" },
		func(ip *InputParametersFoil) { ip.Sections[0].Bumps[0].S = 0 },
		func(ip *InputParametersFoil) { ip.Sections[2].Bumps = ip.Sections[0].Bumps },
		func(ip *InputParametersFoil) { c := -1.; ip.Sections[1].Chord = &c },
	}
	for i, edit := range bad {
		err := parse(edit).Validate()
		assert.Truef(t, errors.Is(err, ErrInvalidDeck), "case %d: %v", i, err)
	}
	{ // Malformed YAML
		var ip InputParametersFoil
		assert.Error(t, ip.Parse([]byte("Sections: [")))
	}
}

func TestNewSectionInput(t *testing.T) {
	var ip InputParametersFoil
	require.NoError(t, ip.Parse(deck))
	sections, err := ip.FoilSections()
	require.NoError(t, err)
	for _, sec := range sections {
		back, err := NewSectionInput(sec).Section()
		require.NoError(t, err)
		assert.Equal(t, sec, back)
	}
	{ // Written decks parse back to the same sections
		out := InputParametersFoil{Title: "out", NPoints: 101}
		for _, sec := range sections {
			out.Sections = append(out.Sections, NewSectionInput(sec))
		}
		data, err := out.Marshal()
		require.NoError(t, err)
		var in InputParametersFoil
		require.NoError(t, in.Parse(data))
		again, err := in.FoilSections()
		require.NoError(t, err)
		assert.Equal(t, sections, again)
	}
}
