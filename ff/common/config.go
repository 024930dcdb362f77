package common

import "fmt"

// Config contains all the configuration data for the app
type Config struct {
	AppName       string `yaml:"AppName"`
	Version       string `yaml:"Version"`
	DebugOutput   bool   `yaml:"DebugOutput"`
	VerboseOutput bool   `yaml:"VerboseOutput"`

	FontsDir string    `yaml:"FontsDir"`
	Fonts    FontFiles `yaml:"Fonts"`

	Format     string `yaml:"Format"`
	JpgQuality int    `yaml:"JpgQuality"`

	TextColour       string `yaml:"TextColour"`
	BackgroundColour string `yaml:"BackgroundColour"`
}

// FontFiles maps a font design name to weight names to font file names
// relative to FontsDir, e.g. serif -> bold -> NotoSerif-Bold.ttf
type FontFiles map[string]map[string]string

// Image formats supported for output
const (
	FormatPNG = "png"
	FormatJPG = "jpg"
)

// LoadConfig loads the app configuration and fills in defaults
func LoadConfig(filename string) (*Config, error) {
	var config Config
	if err := LoadYaml(filename, &config); err != nil {
		return nil, fmt.Errorf("config %s: %w", filename, err)
	}
	config.applyDefaults()
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", filename, err)
	}
	return &config, nil
}

// DefaultConfig returns a configuration that only uses built-in fonts
func DefaultConfig() *Config {
	config := &Config{AppName: "FitFont"}
	config.applyDefaults()
	return config
}

func (c *Config) applyDefaults() {
	if len(c.Format) == 0 {
		c.Format = FormatPNG
	}
	if c.JpgQuality == 0 {
		c.JpgQuality = 90
	}
	if len(c.TextColour) == 0 {
		c.TextColour = "#000000"
	}
	if len(c.BackgroundColour) == 0 {
		c.BackgroundColour = "#FFFFFF"
	}
}

// Validate checks values that can't be defaulted
func (c *Config) Validate() error {
	if !ValidFormat(c.Format) {
		return fmt.Errorf("unknown image format %q", c.Format)
	}
	if c.JpgQuality < 1 || c.JpgQuality > 100 {
		return fmt.Errorf("JpgQuality %d not in [1, 100]", c.JpgQuality)
	}
	for design, weights := range c.Fonts {
		for weight := range weights {
			if _, err := parseFontKey(design, weight); err != nil {
				return err
			}
		}
	}
	return nil
}

// ValidFormat returns true for supported image formats
func ValidFormat(format string) bool {
	return format == FormatPNG || format == FormatJPG
}
