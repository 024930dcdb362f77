package ff

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"

	"github.com/ankurkotwal/fitfont/ff/common"
)

// Filenames are used for storing a list of CLI values
type Filenames []string

func (i *Filenames) String() string {
	return strings.Join(*i, ",")
}

// Set adds to the ArrayFlag
func (i *Filenames) Set(value string) error {
	*i = append(*i, value)
	return nil
}

// GetFilesFromDir returns a list of yaml file names from a directory
func GetFilesFromDir(path string) (*Filenames, error) {
	files, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}

	cardFiles := make(Filenames, 0, len(files))
	for _, f := range files {
		ext := filepath.Ext(f.Name())
		if !f.IsDir() && (ext == ".yaml" || ext == ".yml") {
			cardFiles = append(cardFiles, filepath.Join(path, f.Name()))
		}
	}
	return &cardFiles, nil
}

// OutputFilename returns where the image for a card file is written
func OutputFilename(cardFile string, outDir string, format string) string {
	base := strings.TrimSuffix(filepath.Base(cardFile), filepath.Ext(cardFile))
	return filepath.Join(outDir, fmt.Sprintf("%s.%s", base, format))
}

// RenderCardFiles loads the cards and writes one image per card into
// outDir. Cards that fail to load are logged and skipped. Returns the
// number of images written.
func RenderCardFiles(cardFiles Filenames, outDir string, config *common.Config,
	log *common.Logger) (int, error) {
	book, err := common.NewFontBook(config)
	if err != nil {
		return 0, err
	}
	var cards []*common.Card
	var names []string
	for _, filename := range cardFiles {
		card, err := common.LoadCard(filename, config)
		if err != nil {
			log.Err("%v", err)
			continue
		}
		cards = append(cards, card)
		names = append(names, OutputFilename(filename, outDir, card.Format))
	}

	files, numBytes := common.RenderCards(cards, book, config, log)
	written := 0
	for idx, file := range files {
		if file.Len() == 0 {
			continue
		}
		if err := os.WriteFile(names[idx], file.Bytes(), 0644); err != nil {
			log.Err("Error writing %s. %v", names[idx], err)
			continue
		}
		written++
	}
	if config.VerboseOutput {
		log.Msg("Wrote %d images (%d bytes) to %s", written, numBytes, outDir)
	}
	return written, nil
}

// WatchCards renders the cards, then renders a card again whenever its
// file changes. Returns when ctx is done.
func WatchCards(ctx context.Context, cardFiles Filenames, outDir string,
	config *common.Config, log *common.Logger, rendered chan<- string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	defer watcher.Close()

	// Watch directories, editors often replace files rather than write them
	watched := make(map[string]string)
	for _, filename := range cardFiles {
		abs, err := filepath.Abs(filename)
		if err != nil {
			return fmt.Errorf("watch %s: %w", filename, err)
		}
		watched[abs] = filename
		if err := watcher.Add(filepath.Dir(abs)); err != nil {
			return fmt.Errorf("watch %s: %w", filename, err)
		}
	}

	render := func(filename string) {
		if n, err := RenderCardFiles(Filenames{filename}, outDir, config, log); err != nil {
			log.Err("%v", err)
		} else if n == 1 && rendered != nil {
			select {
			case rendered <- filename:
			case <-ctx.Done():
			}
		}
	}
	for _, filename := range cardFiles {
		render(filename)
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			filename, found := watched[event.Name]
			if !found || !(event.Has(fsnotify.Write) || event.Has(fsnotify.Create)) {
				continue
			}
			log.Msg("%s changed, rendering", filename)
			render(filename)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Err("watch: %v", err)
		}
	}
}
