// Package fitfont computes the font size that fits a text element to its
// parent container.
//
// The font size is the container's smaller dimension scaled by a
// percentage and capped by an optional maximum. Everything else in the
// configuration (line limit, minimum scale factor, weight, design) is
// handed to the renderer unchanged, together with a directive to centre
// the text in the container.
//
//	cfg := fitfont.MustNew(fitfont.WithLineLimit(1), fitfont.WithMaxFontSize(35))
//	d := fitfont.Calculate(fitfont.Size{Width: 200, Height: 100}, cfg)
//	// d.FontSize == 35
package fitfont

import "math"

// Size is the measured size of a container.
type Size struct {
	Width  float64 `json:"width" yaml:"w"`
	Height float64 `json:"height" yaml:"h"`
}

// Point is a location in a container's local frame.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Directives are what the renderer applies to the text node.
type Directives struct {
	FontSize           float64 `json:"fontSize"`
	LineLimit          int     `json:"lineLimit,omitempty"` // 0 means unlimited
	MinimumScaleFactor float64 `json:"minimumScaleFactor"`
	Weight             Weight  `json:"fontWeight"`
	Design             Design  `json:"fontDesign"`
	// Position is the centre of the container, where the text is placed.
	Position Point `json:"position"`
}

// MinFontSize is the smallest size the renderer may shrink to.
func (d Directives) MinFontSize() float64 {
	return d.FontSize * d.MinimumScaleFactor
}

// Calculate returns the directives for text inside a container of the
// given size. It is pure and never fails; an empty container yields a
// font size of 0.
func Calculate(container Size, cfg Config) Directives {
	width := math.Max(container.Width, 0)
	height := math.Max(container.Height, 0)

	fontSize := math.Min(width, height) * cfg.percentage
	if cfg.hasMaxFontSize {
		fontSize = math.Min(fontSize, cfg.maxFontSize)
	}

	d := Directives{
		FontSize:           fontSize,
		MinimumScaleFactor: cfg.minimumScaleFactor,
		Weight:             cfg.weight,
		Design:             cfg.design,
		Position:           Point{X: width / 2, Y: height / 2},
	}
	if cfg.hasLineLimit {
		d.LineLimit = cfg.lineLimit
	}
	return d
}
