package common

import (
	"fmt"

	"github.com/ankurkotwal/fitfont/fitfont"
)

// MaxCanvasSize is the largest card width or height, in pixels
const MaxCanvasSize = 8192

// Rect is a frame on the card, in pixels
type Rect struct {
	X float64 `yaml:"x" json:"x"`
	Y float64 `yaml:"y" json:"y"`
	W float64 `yaml:"w" json:"w"` // Width
	H float64 `yaml:"h" json:"h"` // Height
}

// Size returns the width and height of the frame
func (r Rect) Size() fitfont.Size {
	return fitfont.Size{Width: r.W, Height: r.H}
}

// Card is a canvas with text boxes to fit text into
type Card struct {
	Width      int    `yaml:"Width"`
	Height     int    `yaml:"Height"`
	Background string `yaml:"Background"`
	Format     string `yaml:"Format"`
	Boxes      []Box  `yaml:"Boxes"`
}

// FitOptions are the optional fit font settings, as read from yaml or json
type FitOptions struct {
	LineLimit          *int            `yaml:"LineLimit" json:"lineLimit"`
	MaxFontSize        *float64        `yaml:"MaxFontSize" json:"maxFontSize"`
	FontWeight         *fitfont.Weight `yaml:"FontWeight" json:"fontWeight"`
	FontDesign         *fitfont.Design `yaml:"FontDesign" json:"fontDesign"`
	MinimumScaleFactor *float64        `yaml:"MinimumScaleFactor" json:"minimumScaleFactor"`
	Percentage         *float64        `yaml:"Percentage" json:"percentage"`
}

// Box is some text fitted into a frame on the card
type Box struct {
	Text             string `yaml:"Text"`
	Frame            Rect   `yaml:"Frame"`
	TextColour       string `yaml:"TextColour"`
	BackgroundColour string `yaml:"BackgroundColour"`
	FitOptions       `yaml:",inline"`
}

// FitConfig builds the fit font config. Unset options take the defaults.
func (o FitOptions) FitConfig() (fitfont.Config, error) {
	var opts []fitfont.Option
	if o.LineLimit != nil {
		opts = append(opts, fitfont.WithLineLimit(*o.LineLimit))
	}
	if o.MaxFontSize != nil {
		opts = append(opts, fitfont.WithMaxFontSize(*o.MaxFontSize))
	}
	if o.FontWeight != nil {
		opts = append(opts, fitfont.WithWeight(*o.FontWeight))
	}
	if o.FontDesign != nil {
		opts = append(opts, fitfont.WithDesign(*o.FontDesign))
	}
	if o.MinimumScaleFactor != nil {
		opts = append(opts, fitfont.WithMinimumScaleFactor(*o.MinimumScaleFactor))
	}
	if o.Percentage != nil {
		opts = append(opts, fitfont.WithPercentage(*o.Percentage))
	}
	return fitfont.New(opts...)
}

// LoadCard loads a card from a yaml file
func LoadCard(filename string, config *Config) (*Card, error) {
	var card Card
	if err := LoadYaml(filename, &card); err != nil {
		return nil, fmt.Errorf("card %s: %w", filename, err)
	}
	if err := card.Prepare(config); err != nil {
		return nil, fmt.Errorf("card %s: %w", filename, err)
	}
	return &card, nil
}

// ParseCard parses a card from yaml data
func ParseCard(data []byte, config *Config) (*Card, error) {
	var card Card
	if err := ParseYaml(data, &card); err != nil {
		return nil, err
	}
	if err := card.Prepare(config); err != nil {
		return nil, err
	}
	return &card, nil
}

// Prepare fills in defaults from the config and validates the card
func (c *Card) Prepare(config *Config) error {
	if len(c.Background) == 0 {
		c.Background = config.BackgroundColour
	}
	if len(c.Format) == 0 {
		c.Format = config.Format
	}
	if !ValidFormat(c.Format) {
		return fmt.Errorf("unknown image format %q", c.Format)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid card size %dx%d", c.Width, c.Height)
	}
	if c.Width > MaxCanvasSize || c.Height > MaxCanvasSize {
		return fmt.Errorf("card size %dx%d exceeds %d", c.Width, c.Height,
			MaxCanvasSize)
	}
	for idx := range c.Boxes {
		box := &c.Boxes[idx]
		if len(box.TextColour) == 0 {
			box.TextColour = config.TextColour
		}
		if box.Frame.W < 0 || box.Frame.H < 0 {
			return fmt.Errorf("box %d: negative frame size %vx%v", idx,
				box.Frame.W, box.Frame.H)
		}
		if _, err := box.FitConfig(); err != nil {
			return fmt.Errorf("box %d: %w", idx, err)
		}
	}
	return nil
}
