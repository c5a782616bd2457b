package types

import (
	"fmt"
	"strings"
)

// Side selects one surface of a closed section.
type Side uint8

const (
	Upper Side = iota
	Lower
)

func (s Side) String() string {
	switch s {
	case Upper:
		return "upper"
	case Lower:
		return "lower"
	}
	return fmt.Sprintf("Side(%d)", uint8(s))
}

// Opposite returns the other surface.
func (s Side) Opposite() Side {
	if s == Upper {
		return Lower
	}
	return Upper
}

func NewSide(label string) (s Side, err error) {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "u", "upper":
		return Upper, nil
	case "l", "lower":
		return Lower, nil
	}
	err = fmt.Errorf("unknown surface side %q, want upper or lower", label)
	return
}
