package fitfont

import (
	"fmt"

	"golang.org/x/text/cases"
)

// Weight is the stroke weight the renderer should select for the text.
type Weight int

// Supported weights, thinnest first.
const (
	WeightUltraLight Weight = iota - 3
	WeightThin
	WeightLight
	WeightRegular // zero value
	WeightMedium
	WeightSemibold
	WeightBold
	WeightHeavy
	WeightBlack
)

var weightNames = map[Weight]string{
	WeightUltraLight: "ultraLight",
	WeightThin:       "thin",
	WeightLight:      "light",
	WeightRegular:    "regular",
	WeightMedium:     "medium",
	WeightSemibold:   "semibold",
	WeightBold:       "bold",
	WeightHeavy:      "heavy",
	WeightBlack:      "black",
}

// Design is the font family design the renderer should select.
type Design int

// Supported designs.
const (
	DesignDefault Design = iota
	DesignSerif
	DesignRounded
	DesignMonospaced
)

var designNames = map[Design]string{
	DesignDefault:    "default",
	DesignSerif:      "serif",
	DesignRounded:    "rounded",
	DesignMonospaced: "monospaced",
}

func (w Weight) String() string {
	if name, found := weightNames[w]; found {
		return name
	}
	return fmt.Sprintf("Weight(%d)", int(w))
}

// Valid reports whether w is one of the declared weights.
func (w Weight) Valid() bool {
	_, found := weightNames[w]
	return found
}

// MarshalText implements encoding.TextMarshaler.
func (w Weight) MarshalText() ([]byte, error) {
	if !w.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownWeight, int(w))
	}
	return []byte(w.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (w *Weight) UnmarshalText(text []byte) error {
	parsed, err := ParseWeight(string(text))
	if err != nil {
		return err
	}
	*w = parsed
	return nil
}

// ParseWeight returns the weight with the given name. Names are matched
// case-insensitively.
func ParseWeight(name string) (Weight, error) {
	folder := cases.Fold()
	folded := folder.String(name)
	for w, n := range weightNames {
		if folder.String(n) == folded {
			return w, nil
		}
	}
	return WeightRegular, fmt.Errorf("%w: %q", ErrUnknownWeight, name)
}

func (d Design) String() string {
	if name, found := designNames[d]; found {
		return name
	}
	return fmt.Sprintf("Design(%d)", int(d))
}

// Valid reports whether d is one of the declared designs.
func (d Design) Valid() bool {
	_, found := designNames[d]
	return found
}

// MarshalText implements encoding.TextMarshaler.
func (d Design) MarshalText() ([]byte, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownDesign, int(d))
	}
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Design) UnmarshalText(text []byte) error {
	parsed, err := ParseDesign(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// ParseDesign returns the design with the given name.
func ParseDesign(name string) (Design, error) {
	folder := cases.Fold()
	folded := folder.String(name)
	for d, n := range designNames {
		if folder.String(n) == folded {
			return d, nil
		}
	}
	return DesignDefault, fmt.Errorf("%w: %q", ErrUnknownDesign, name)
}
