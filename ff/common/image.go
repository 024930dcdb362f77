package common

import (
	"bytes"
	"fmt"
	"io"
	"sync"
	"sync/atomic"

	"github.com/fogleman/gg"
	"github.com/pixiv/go-libjpeg/jpeg"

	"github.com/ankurkotwal/fitfont/fitfont"
)

// BoxResult reports how a box's text was fitted
type BoxResult struct {
	Directives fitfont.Directives
	Layout     TextLayout
}

// RenderCard draws every box of the card and returns the encoded image
func RenderCard(card *Card, book *FontBook, config *Config, log *Logger) (bytes.Buffer, []BoxResult, error) {
	var imgBytes bytes.Buffer
	dc, results := drawCard(card, book, log)
	if err := EncodeImage(&imgBytes, dc, card.Format, config.JpgQuality); err != nil {
		return imgBytes, results, err
	}
	return imgBytes, results, nil
}

func drawCard(card *Card, book *FontBook, log *Logger) (*gg.Context, []BoxResult) {
	// font.Face is not thread safe, use a local cache for this card
	faces := NewFaceCache(book)
	dc := gg.NewContext(card.Width, card.Height)
	dc.SetHexColor(card.Background)
	dc.Clear()

	results := make([]BoxResult, len(card.Boxes))
	for idx, box := range card.Boxes {
		if box.Frame.X >= float64(card.Width) || box.Frame.Y >= float64(card.Height) {
			log.Err("Box %d outside bounds. Frame %v card %dx%d", idx, box.Frame,
				card.Width, card.Height)
			continue
		}
		cfg, err := box.FitConfig()
		if err != nil {
			log.Err("Box %d: %v", idx, err)
			continue
		}
		if len(box.BackgroundColour) != 0 {
			dc.SetHexColor(box.BackgroundColour)
			dc.DrawRectangle(box.Frame.X, box.Frame.Y, box.Frame.W, box.Frame.H)
			dc.Fill()
		}
		d := fitfont.Calculate(box.Frame.Size(), cfg)
		layout, err := DrawFitText(dc, faces, box.Frame, box.Text, d, box.TextColour)
		if err != nil {
			log.Err("Box %d: %v", idx, err)
			continue
		}
		if layout.Truncated {
			log.Msg("Box %d: text truncated at %.2fpt", idx, layout.FontSize)
		}
		results[idx] = BoxResult{Directives: d, Layout: layout}
	}
	return dc, results
}

// RenderCards renders the cards concurrently. Output order matches input
// order. Returns the images and the total number of bytes.
func RenderCards(cards []*Card, book *FontBook, config *Config, log *Logger) ([]bytes.Buffer, int) {
	files := make([]bytes.Buffer, len(cards))
	var totalBytes int64

	var wg sync.WaitGroup
	for idx, card := range cards {
		wg.Add(1)
		go func(idx int, card *Card) {
			defer wg.Done()
			imgBytes, _, err := RenderCard(card, book, config, log)
			if err != nil {
				log.Err("Card %d: %v", idx, err)
				return
			}
			files[idx] = imgBytes
			atomic.AddInt64(&totalBytes, int64(imgBytes.Len()))
		}(idx, card)
	}
	wg.Wait()
	return files, int(totalBytes)
}

// EncodeImage writes the drawing to w in the given format
func EncodeImage(w io.Writer, dc *gg.Context, format string, jpgQuality int) error {
	switch format {
	case FormatPNG:
		if err := dc.EncodePNG(w); err != nil {
			return fmt.Errorf("png encode failed: %w", err)
		}
	case FormatJPG:
		if err := jpeg.Encode(w, dc.Image(), &jpeg.EncoderOptions{Quality: jpgQuality}); err != nil {
			return fmt.Errorf("jpeg encode failed: %w", err)
		}
	default:
		return fmt.Errorf("unknown image format %q", format)
	}
	return nil
}

// ContentType returns the mime type for the image format
func ContentType(format string) string {
	if format == FormatJPG {
		return "image/jpeg"
	}
	return "image/png"
}
