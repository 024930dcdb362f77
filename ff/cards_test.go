package ff

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ankurkotwal/fitfont/ff/common"
)

const testCard = `
Width: 120
Height: 60
Boxes:
  - Text: "Hallo"
    Frame: { x: 0, y: 0, w: 120, h: 60 }
`

func TestFilenames(t *testing.T) {
	var f Filenames
	if f.String() != "" {
		t.Error("String() should be empty")
	}
	f.Set("a.yaml")
	f.Set("b.yaml")
	if len(f) != 2 || f.String() != "a.yaml,b.yaml" {
		t.Errorf("Set failed: %v", f)
	}
}

func TestGetFilesFromDir(t *testing.T) {
	tmpDir := t.TempDir()
	os.WriteFile(filepath.Join(tmpDir, "card1.yaml"), []byte("c1"), 0644)
	os.WriteFile(filepath.Join(tmpDir, "card2.yml"), []byte("c2"), 0644)
	os.WriteFile(filepath.Join(tmpDir, "notes.txt"), []byte("c3"), 0644)
	os.Mkdir(filepath.Join(tmpDir, "subdir.yaml"), 0755)

	files, err := GetFilesFromDir(tmpDir)
	if err != nil {
		t.Fatalf("GetFilesFromDir failed: %v", err)
	}
	if len(*files) != 2 {
		t.Errorf("Expected 2 files, got %v", *files)
	}

	if _, err := GetFilesFromDir("/non/existent/path"); err == nil {
		t.Error("Expected error for non-existent path")
	}
}

func TestOutputFilename(t *testing.T) {
	got := OutputFilename("cards/example.yaml", "out", "png")
	if got != filepath.Join("out", "example.png") {
		t.Errorf("OutputFilename = %s", got)
	}
}

func TestRenderCardFiles(t *testing.T) {
	tmpDir := t.TempDir()
	good := filepath.Join(tmpDir, "good.yaml")
	bad := filepath.Join(tmpDir, "bad.yaml")
	os.WriteFile(good, []byte(testCard), 0644)
	os.WriteFile(bad, []byte("Width: 0"), 0644)

	log := common.NewLog()
	n, err := RenderCardFiles(Filenames{good, bad}, tmpDir, common.DefaultConfig(), log)
	if err != nil {
		t.Fatalf("RenderCardFiles failed: %v", err)
	}
	if n != 1 {
		t.Errorf("Expected 1 image, got %d", n)
	}
	if _, err := os.Stat(filepath.Join(tmpDir, "good.png")); err != nil {
		t.Errorf("Expected good.png: %v", err)
	}
	if len(log.Errors()) != 1 {
		t.Errorf("Expected 1 error for the bad card, got %v", log.Errors())
	}
}

func TestRenderExampleCard(t *testing.T) {
	config, err := common.LoadConfig("../config/config.yaml")
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	log := common.NewLog()
	n, err := RenderCardFiles(Filenames{"../cards/example.yaml"}, t.TempDir(), config, log)
	if err != nil || n != 1 {
		t.Errorf("RenderCardFiles = %d, %v; errors %v", n, err, log.Errors())
	}
}

func TestWatchCards_StopsWhenNotRead(t *testing.T) {
	tmpDir := t.TempDir()
	card := filepath.Join(tmpDir, "card.yaml")
	os.WriteFile(card, []byte(testCard), 0644)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		// Nobody reads rendered, the watcher must still honour ctx
		done <- WatchCards(ctx, Filenames{card}, tmpDir, common.DefaultConfig(),
			common.NewLog(), make(chan string))
	}()

	time.Sleep(200 * time.Millisecond)
	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("WatchCards returned %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("WatchCards blocked on an unread channel")
	}
}

func TestWatchCards(t *testing.T) {
	tmpDir := t.TempDir()
	card := filepath.Join(tmpDir, "card.yaml")
	os.WriteFile(card, []byte(testCard), 0644)
	out := filepath.Join(tmpDir, "card.png")

	ctx, cancel := context.WithCancel(context.Background())
	rendered := make(chan string, 4)
	done := make(chan error, 1)
	go func() {
		done <- WatchCards(ctx, Filenames{card}, tmpDir, common.DefaultConfig(),
			common.NewLog(), rendered)
	}()

	waitRendered := func(what string) {
		select {
		case <-rendered:
		case <-time.After(5 * time.Second):
			t.Fatalf("Timed out waiting for %s render", what)
		}
	}
	waitRendered("initial")
	first, err := os.Stat(out)
	if err != nil {
		t.Fatalf("Expected output after initial render: %v", err)
	}

	// A bigger card gives a bigger image
	os.WriteFile(card, []byte(`
Width: 400
Height: 300
Boxes:
  - Text: "Hallo Welt, wieder"
    Frame: { x: 0, y: 0, w: 400, h: 300 }
`), 0644)
	waitRendered("updated")
	second, err := os.Stat(out)
	if err != nil {
		t.Fatalf("Expected output after update: %v", err)
	}
	if second.Size() == first.Size() {
		t.Error("Expected output to change after the card changed")
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("WatchCards returned %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("WatchCards did not stop")
	}
}
