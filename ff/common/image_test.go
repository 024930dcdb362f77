package common

import (
	"bytes"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"testing"

	"github.com/fogleman/gg"
)

func newTestBook(t *testing.T) *FontBook {
	book, err := NewFontBook(DefaultConfig())
	if err != nil {
		t.Fatalf("NewFontBook failed: %v", err)
	}
	return book
}

func TestRenderCard(t *testing.T) {
	card, err := ParseCard([]byte(testCard), DefaultConfig())
	if err != nil {
		t.Fatalf("ParseCard failed: %v", err)
	}
	log := NewLog()
	imgBytes, results, err := RenderCard(card, newTestBook(t), DefaultConfig(), log)
	if err != nil {
		t.Fatalf("RenderCard failed: %v", err)
	}
	img, format, err := image.Decode(bytes.NewReader(imgBytes.Bytes()))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if format != "png" {
		t.Errorf("Expected png, got %s", format)
	}
	if img.Bounds().Dx() != 400 || img.Bounds().Dy() != 200 {
		t.Errorf("Unexpected bounds %v", img.Bounds())
	}
	if len(results) != 2 {
		t.Fatalf("Expected 2 results, got %d", len(results))
	}
	if results[0].Directives.FontSize != 100 {
		t.Errorf("Box 0 FontSize = %v, want 100", results[0].Directives.FontSize)
	}
	if results[1].Directives.FontSize != 35 {
		t.Errorf("Box 1 FontSize = %v, want 35", results[1].Directives.FontSize)
	}
	if results[1].Layout.FontSize > 35 || results[1].Layout.FontSize < 17.5 {
		t.Errorf("Box 1 rendered at %v, want within [17.5, 35]", results[1].Layout.FontSize)
	}
	if errs := log.Errors(); len(errs) != 0 {
		t.Errorf("Unexpected errors %v", errs)
	}
}

func TestRenderCard_OutOfBounds(t *testing.T) {
	card := &Card{Width: 100, Height: 100, Background: "#FFFFFF", Format: FormatPNG,
		Boxes: []Box{{Text: "Off", Frame: Rect{X: 150, Y: 0, W: 10, H: 10}, TextColour: "#000000"}}}
	log := NewLog()
	if _, _, err := RenderCard(card, newTestBook(t), DefaultConfig(), log); err != nil {
		t.Fatalf("RenderCard failed: %v", err)
	}
	if len(log.Errors()) != 1 {
		t.Errorf("Expected an out of bounds error, got %v", log.Errors())
	}
}

func TestRenderCards(t *testing.T) {
	var cards []*Card
	for _, width := range []int{120, 80, 200, 40} {
		cards = append(cards, &Card{Width: width, Height: 50, Background: "#FFFFFF",
			Format: FormatPNG, Boxes: []Box{{Text: "Hi",
				Frame: Rect{W: float64(width), H: 50}, TextColour: "#000000"}}})
	}
	cards[2].Format = FormatJPG

	files, numBytes := RenderCards(cards, newTestBook(t), DefaultConfig(), NewLog())
	if len(files) != len(cards) {
		t.Fatalf("Expected %d files, got %d", len(cards), len(files))
	}
	total := 0
	for idx, file := range files {
		total += file.Len()
		img, _, err := image.Decode(bytes.NewReader(file.Bytes()))
		if err != nil {
			t.Fatalf("Decode %d failed: %v", idx, err)
		}
		if img.Bounds().Dx() != cards[idx].Width {
			t.Errorf("File %d has width %d, want %d", idx, img.Bounds().Dx(), cards[idx].Width)
		}
	}
	if total != numBytes {
		t.Errorf("numBytes = %d, want %d", numBytes, total)
	}
}

func TestEncodeImage(t *testing.T) {
	dc := gg.NewContext(10, 10)
	var buf bytes.Buffer
	if err := EncodeImage(&buf, dc, FormatJPG, 80); err != nil {
		t.Fatalf("jpg encode failed: %v", err)
	}
	if _, format, err := image.Decode(&buf); err != nil || format != "jpeg" {
		t.Errorf("Expected jpeg, got %s %v", format, err)
	}
	if err := EncodeImage(&buf, dc, "gif", 80); err == nil {
		t.Error("Expected error for unknown format")
	}
	if ContentType(FormatJPG) != "image/jpeg" || ContentType(FormatPNG) != "image/png" {
		t.Error("Unexpected content types")
	}
}
