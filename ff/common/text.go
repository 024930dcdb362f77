package common

import (
	"math"
	"strings"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/text/unicode/norm"

	"github.com/ankurkotwal/fitfont/fitfont"
)

const (
	// Below this size nothing is drawn
	minDrawableSize = 0.5
	// Shrinking stops once the search interval is this small
	sizeTolerance = 0.25
	ellipsis      = "…"
)

// TextLayout is text fitted into a frame, ready to be drawn
type TextLayout struct {
	FontSize   float64
	LineHeight float64
	Lines      []string
	Truncated  bool // lines were dropped or shortened to fit
	face       font.Face
}

// Empty returns true if there is nothing to draw
func (l TextLayout) Empty() bool {
	return len(l.Lines) == 0
}

// LayoutFitText fits text into frame following the directives. The
// directive's font size is used if the text fits; otherwise the largest
// size down to FontSize*MinimumScaleFactor that fits is used. If the text
// doesn't fit even at the smallest size it is truncated to the line limit
// (or the frame height) with an ellipsis. The font face is left set on dc.
func LayoutFitText(dc *gg.Context, faces *FaceCache, frame Rect, text string,
	d fitfont.Directives) (TextLayout, error) {
	text = strings.TrimSpace(norm.NFC.String(text))
	if d.FontSize < minDrawableSize || len(text) == 0 {
		return TextLayout{}, nil
	}

	maxSize := d.FontSize
	minSize := math.Min(math.Max(d.MinFontSize(), minDrawableSize), maxSize)

	layout, fits, err := tryLayout(dc, faces, frame, text, d, maxSize)
	if err != nil || fits {
		return layout, err
	}
	smallest, fits, err := tryLayout(dc, faces, frame, text, d, minSize)
	if err != nil {
		return smallest, err
	}
	if !fits {
		return truncateLayout(dc, frame, smallest, d.LineLimit), nil
	}

	// Binary search between a size that fits and one that doesn't
	best := smallest
	low, high := minSize, maxSize
	for high-low > sizeTolerance {
		mid := (low + high) / 2
		candidate, fits, err := tryLayout(dc, faces, frame, text, d, mid)
		if err != nil {
			return candidate, err
		}
		if fits {
			best = candidate
			low = mid
		} else {
			high = mid
		}
	}
	dc.SetFontFace(best.face)
	return best, nil
}

// DrawFitText lays out text and draws it centred on the directive's
// position within frame
func DrawFitText(dc *gg.Context, faces *FaceCache, frame Rect, text string,
	d fitfont.Directives, textColour string) (TextLayout, error) {
	layout, err := LayoutFitText(dc, faces, frame, text, d)
	if err != nil || layout.Empty() {
		return layout, err
	}
	dc.SetFontFace(layout.face)
	dc.SetHexColor(textColour)
	cx := frame.X + d.Position.X
	cy := frame.Y + d.Position.Y
	top := cy - float64(len(layout.Lines))*layout.LineHeight/2
	for idx, line := range layout.Lines {
		y := top + (float64(idx)+0.5)*layout.LineHeight
		dc.DrawStringAnchored(line, cx, y, 0.5, 0.5)
	}
	return layout, nil
}

func tryLayout(dc *gg.Context, faces *FaceCache, frame Rect, text string,
	d fitfont.Directives, size float64) (TextLayout, bool, error) {
	face, err := faces.LoadFace(d.Weight, d.Design, size)
	if err != nil {
		return TextLayout{}, false, err
	}
	dc.SetFontFace(face)
	layout := TextLayout{
		FontSize:   size,
		LineHeight: float64(face.Metrics().Height) / 64,
		Lines:      dc.WordWrap(text, frame.W),
		face:       face,
	}

	fits := float64(len(layout.Lines))*layout.LineHeight <= frame.H
	if d.LineLimit > 0 && len(layout.Lines) > d.LineLimit {
		fits = false
	}
	for _, line := range layout.Lines {
		if w, _ := dc.MeasureString(line); w > frame.W {
			fits = false
			break
		}
	}
	return layout, fits, nil
}

// Drops lines beyond the line limit or the frame height and ellipsises
// the lines that are cut. Assumes the layout's face is set on dc.
func truncateLayout(dc *gg.Context, frame Rect, layout TextLayout,
	lineLimit int) TextLayout {
	keep := len(layout.Lines)
	if lineLimit > 0 && keep > lineLimit {
		keep = lineLimit
	}
	if byHeight := int(frame.H / layout.LineHeight); keep > byHeight {
		keep = byHeight
	}
	if keep < 1 {
		keep = 1
	}

	dropped := keep < len(layout.Lines)
	lines := make([]string, keep)
	copy(lines, layout.Lines[:keep])
	if dropped {
		lines[keep-1] = ellipsise(dc, lines[keep-1]+ellipsis, frame.W)
	}
	for idx, line := range lines {
		if w, _ := dc.MeasureString(line); w > frame.W {
			lines[idx] = ellipsise(dc, line, frame.W)
		}
	}
	layout.Lines = lines
	layout.Truncated = true
	return layout
}

// ellipsise shortens text until it plus an ellipsis fits width
func ellipsise(dc *gg.Context, text string, width float64) string {
	if w, _ := dc.MeasureString(text); w <= width {
		return text
	}
	runes := []rune(strings.TrimSuffix(text, ellipsis))
	for n := len(runes); n > 0; n-- {
		candidate := strings.TrimRight(string(runes[:n]), " ") + ellipsis
		if w, _ := dc.MeasureString(candidate); w <= width {
			return candidate
		}
	}
	if w, _ := dc.MeasureString(ellipsis); w <= width {
		return ellipsis
	}
	return ""
}
