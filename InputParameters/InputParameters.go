package InputParameters

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ghodss/yaml"
	"github.com/notargets/gocst/Foil"
	"github.com/notargets/gocst/geometry2D"
	"github.com/notargets/gocst/types"
)

var ErrInvalidDeck = errors.New("invalid input deck")

// Parameters obtained from the YAML input file. ghodss/yaml converts the
// YAML to JSON first, so the field tags are json tags.
type InputParametersFoil struct {
	Title                 string         `json:"Title"`
	NPoints               int            `json:"NPoints"`
	NCST                  int            `json:"NCST"`
	NegThicknessTolerance float64        `json:"NegThicknessTolerance"`
	Parallel              int            `json:"Parallel"`
	Sections              []SectionInput `json:"Sections"`
}

type SectionInput struct {
	Name string `json:"Name"`
	Kind string `json:"Kind"` // closed (default) or open
	// Closed sections
	CSTU    []float64 `json:"CSTU"`
	CSTL    []float64 `json:"CSTL"`
	Tail    float64   `json:"Tail"`
	RefineU []float64 `json:"RefineU"`
	RefineL []float64 `json:"RefineL"`
	// Open sections
	CST     []float64 `json:"CST"`
	Refine  []float64 `json:"Refine"`
	CSTFlip []float64 `json:"CSTFlip"`

	Thickness *float64    `json:"Thickness"` // absent keeps the CST thickness
	XLE       float64     `json:"XLE"`
	YLE       float64     `json:"YLE"`
	ZLE       float64     `json:"ZLE"`
	Chord     *float64    `json:"Chord"` // absent is unit chord
	Twist     float64     `json:"Twist"`
	Bumps     []BumpInput `json:"Bumps"`
}

type BumpInput struct {
	XC   float64 `json:"XC"`
	H    float64 `json:"H"` // relative to the maximum thickness
	S    float64 `json:"S"`
	Side string  `json:"Side"`
	Kind string  `json:"Kind"` // auto, gaussian or hicks-henne
}

func (ip *InputParametersFoil) Parse(data []byte) error {
	return yaml.Unmarshal(data, ip)
}

func (ip *InputParametersFoil) Marshal() ([]byte, error) {
	return yaml.Marshal(ip)
}

// SetDefaults fills zero run options with the given values, typically the
// CLI flags.
func (ip *InputParametersFoil) SetDefaults(nPoints, nCST, parallel int) {
	if ip.NPoints == 0 {
		ip.NPoints = nPoints
	}
	if ip.NCST == 0 {
		ip.NCST = nCST
	}
	if ip.Parallel == 0 {
		ip.Parallel = parallel
	}
}

func (ip *InputParametersFoil) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	fmt.Printf("[%d]\t\t\t\t= Number of Points\n", ip.NPoints)
	fmt.Printf("[%d]\t\t\t\t= Number of CST coefficients\n", ip.NCST)
	fmt.Printf("%8.5f\t\t= Negative Thickness Tolerance\n", ip.NegThicknessTolerance)
	fmt.Printf("[%d]\t\t\t\t= Parallel Degree\n", ip.Parallel)
	for _, s := range ip.Sections {
		kind := s.Kind
		if kind == "" {
			kind = "closed"
		}
		fmt.Printf("Section[%s] %s at (%g, %g, %g), chord %g, twist %g, %d bumps\n",
			s.Name, kind, s.XLE, s.YLE, s.ZLE, s.chord(), s.Twist, len(s.Bumps))
	}
}

// Validate checks the deck before any geometry is built.
func (ip *InputParametersFoil) Validate() (err error) {
	if ip.NPoints < 3 {
		return fmt.Errorf("%w: NPoints must be at least 3, have %d", ErrInvalidDeck, ip.NPoints)
	}
	if len(ip.Sections) == 0 {
		return fmt.Errorf("%w: no sections", ErrInvalidDeck)
	}
	names := make(map[string]bool)
	for i, s := range ip.Sections {
		if s.Name == "" {
			return fmt.Errorf("%w: section %d has no name", ErrInvalidDeck, i)
		}
		if names[s.Name] {
			return fmt.Errorf("%w: duplicate section name %s", ErrInvalidDeck, s.Name)
		}
		names[s.Name] = true
		if _, err = s.Section(); err != nil {
			return
		}
	}
	return
}

func (s SectionInput) chord() float64 {
	if s.Chord == nil {
		return 1
	}
	return *s.Chord
}

func (s SectionInput) placement() geometry2D.Placement {
	return geometry2D.Placement{XLE: s.XLE, YLE: s.YLE, ZLE: s.ZLE, Chord: s.chord(), Twist: s.Twist}
}

// Section converts the deck entry into a closed or open Foil section.
func (s SectionInput) Section() (sec Foil.Section, err error) {
	if s.chord() <= 0 {
		err = fmt.Errorf("%w: section %s has chord %g", ErrInvalidDeck, s.Name, s.chord())
		return
	}
	thick := types.FromPointer(s.Thickness)
	switch strings.ToLower(s.Kind) {
	case "", "closed":
		if len(s.CSTU) == 0 || len(s.CSTL) == 0 {
			err = fmt.Errorf("%w: closed section %s needs CSTU and CSTL", ErrInvalidDeck, s.Name)
			return
		}
		var bumps []Foil.BumpSpec
		if bumps, err = s.bumpSpecs(); err != nil {
			return
		}
		sec = Foil.NewClosedSection(s.Name, s.placement(), s.CSTU, s.CSTL).
			WithTail(s.Tail).
			WithThickness(thick).
			WithRefine(s.RefineU, s.RefineL).
			WithBumps(bumps...)
	case "open":
		if len(s.CST) == 0 {
			err = fmt.Errorf("%w: open section %s needs CST", ErrInvalidDeck, s.Name)
			return
		}
		if len(s.Bumps) != 0 {
			err = fmt.Errorf("%w: bumps need a closed section, %s is open", ErrInvalidDeck, s.Name)
			return
		}
		sec = Foil.NewOpenSection(s.Name, s.placement(), s.CST).
			WithThickness(thick).
			WithRefine(s.Refine, s.CSTFlip)
	default:
		err = fmt.Errorf("%w: section %s has unknown kind %q", ErrInvalidDeck, s.Name, s.Kind)
	}
	return
}

func (s SectionInput) bumpSpecs() (bs []Foil.BumpSpec, err error) {
	for i, b := range s.Bumps {
		var spec Foil.BumpSpec
		if spec, err = b.BumpSpec(); err != nil {
			err = fmt.Errorf("section %s bump %d: %w", s.Name, i, err)
			return
		}
		bs = append(bs, spec)
	}
	return
}

func (b BumpInput) BumpSpec() (bs Foil.BumpSpec, err error) {
	bs = Foil.BumpSpec{XC: b.XC, H: b.H, S: b.S}
	side := b.Side
	if side == "" {
		side = "upper"
	}
	if bs.Side, err = types.NewSide(side); err != nil {
		err = fmt.Errorf("%w: %v", ErrInvalidDeck, err)
		return
	}
	if bs.Kind, err = Foil.NewBumpKind(b.Kind); err != nil {
		err = fmt.Errorf("%w: %v", ErrInvalidDeck, err)
		return
	}
	if b.S <= 0 {
		err = fmt.Errorf("%w: bump span must be positive, have %g", ErrInvalidDeck, b.S)
	}
	return
}

// FoilSections converts every deck entry, stopping at the first invalid one.
func (ip *InputParametersFoil) FoilSections() (sections []Foil.Section, err error) {
	for _, s := range ip.Sections {
		var sec Foil.Section
		if sec, err = s.Section(); err != nil {
			return
		}
		sections = append(sections, sec)
	}
	return
}

// NewSectionInput is the inverse of SectionInput.Section, used to write
// fitted or modified sections back out as a deck.
func NewSectionInput(sec Foil.Section) (si SectionInput) {
	p := sec.Location()
	chord := p.Chord
	si = SectionInput{
		Name:  sec.SectionName(),
		Kind:  sec.Kind().String(),
		XLE:   p.XLE,
		YLE:   p.YLE,
		ZLE:   p.ZLE,
		Chord: &chord,
		Twist: p.Twist,
	}
	var thick types.Optional[float64]
	switch s := sec.(type) {
	case Foil.ClosedSection:
		si.CSTU, si.CSTL, si.Tail = s.CSTU, s.CSTL, s.Tail
		si.RefineU, si.RefineL = s.RefineU, s.RefineL
		for _, b := range s.Bumps {
			si.Bumps = append(si.Bumps, BumpInput{
				XC: b.XC, H: b.H, S: b.S, Side: b.Side.String(), Kind: b.Kind.String()})
		}
		thick = s.Thickness
	case Foil.OpenSection:
		si.CST, si.Refine, si.CSTFlip = s.CST, s.Refine, s.CSTFlip
		thick = s.Thickness
	}
	if t, ok := thick.Get(); ok {
		si.Thickness = &t
	}
	return
}
