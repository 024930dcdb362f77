package common

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/ankurkotwal/fitfont/fitfont"
)

type fontKey struct {
	design fitfont.Design
	weight fitfont.Weight
}

func parseFontKey(design string, weight string) (fontKey, error) {
	d, err := fitfont.ParseDesign(design)
	if err != nil {
		return fontKey{}, fmt.Errorf("Fonts: %w", err)
	}
	w, err := fitfont.ParseWeight(weight)
	if err != nil {
		return fontKey{}, fmt.Errorf("Fonts.%s: %w", design, err)
	}
	return fontKey{design: d, weight: w}, nil
}

// FontBook resolves a font weight and design to a TrueType font. Fonts
// listed in the config take precedence over the built-in Go fonts.
type FontBook struct {
	dir   string
	files map[fontKey]string
}

// NewFontBook creates a FontBook from the Fonts section of the config
func NewFontBook(config *Config) (*FontBook, error) {
	book := &FontBook{dir: config.FontsDir, files: make(map[fontKey]string)}
	for design, weights := range config.Fonts {
		for weight, file := range weights {
			key, err := parseFontKey(design, weight)
			if err != nil {
				return nil, err
			}
			book.files[key] = file
		}
	}
	return book, nil
}

// Font returns the font and a name identifying it
func (b *FontBook) Font(weight fitfont.Weight, design fitfont.Design) (*truetype.Font, string, error) {
	if file, found := b.files[fontKey{design: design, weight: weight}]; found {
		path := filepath.Join(b.dir, file)
		f, err := loadFontFile(path)
		return f, path, err
	}
	name, data := builtinFont(weight, design)
	f, err := parseFont(name, data)
	return f, name, err
}

// Go fonts have no serif or rounded design; those use the sans faces.
func builtinFont(weight fitfont.Weight, design fitfont.Design) (string, []byte) {
	heavy := weight >= fitfont.WeightSemibold
	if design == fitfont.DesignMonospaced {
		if heavy {
			return "gomonobold", gomonobold.TTF
		}
		return "gomono", gomono.TTF
	}
	switch {
	case heavy:
		return "gobold", gobold.TTF
	case weight == fitfont.WeightMedium:
		return "gomedium", gomedium.TTF
	default:
		return "goregular", goregular.TTF
	}
}

var fontCache sync.Map

// loadFontFile loads a font into memory and returns it.
func loadFontFile(path string) (*truetype.Font, error) {
	if v, found := fontCache.Load(path); found {
		return v.(*truetype.Font), nil
	}
	fontBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("font %s: %w", path, err)
	}
	return parseFont(path, fontBytes)
}

func parseFont(name string, data []byte) (*truetype.Font, error) {
	if v, found := fontCache.Load(name); found {
		return v.(*truetype.Font), nil
	}
	f, err := truetype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("font %s: %w", name, err)
	}
	v, _ := fontCache.LoadOrStore(name, f)
	return v.(*truetype.Font), nil
}

// FaceCache hands out font faces by size. font.Face is not thread safe so
// each goroutine that draws needs its own FaceCache.
type FaceCache struct {
	book  *FontBook
	faces map[faceKey]font.Face
}

type faceKey struct {
	name string
	size int // 1/64th of a point
}

// NewFaceCache creates a face cache over the font book
func NewFaceCache(book *FontBook) *FaceCache {
	return &FaceCache{book: book, faces: make(map[faceKey]font.Face)}
}

// LoadFace returns the face for the given style and size
func (c *FaceCache) LoadFace(weight fitfont.Weight, design fitfont.Design,
	size float64) (font.Face, error) {
	f, name, err := c.book.Font(weight, design)
	if err != nil {
		return nil, err
	}
	key := faceKey{name: name, size: int(math.Round(size * 64))}
	if face, found := c.faces[key]; found {
		return face, nil
	}
	face := truetype.NewFace(f, &truetype.Options{
		Size: float64(key.size) / 64,
	})
	c.faces[key] = face
	return face, nil
}
