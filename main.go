package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/ankurkotwal/fitfont/ff"
	"github.com/ankurkotwal/fitfont/ff/common"
)

type cliArgs struct {
	configFile string
	debugMode  bool
	cardFiles  ff.Filenames
	outDir     string
	watch      bool
}

func main() {
	args := parseCliArgs()
	config, err := common.LoadConfig(args.configFile)
	if err != nil {
		log.Fatal(err)
	}
	if args.debugMode {
		config.DebugOutput = true
		log.Print(common.YamlObjectAsString(config, "Config"))
	}

	if len(args.cardFiles) == 0 {
		router, port := ff.GetServer(args.debugMode, config)
		if err := router.Run(port); err != nil {
			log.Fatal(err)
		}
		return
	}

	logger := common.NewLog()
	if args.watch {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := ff.WatchCards(ctx, args.cardFiles, args.outDir, config, logger, nil); err != nil {
			log.Fatal(err)
		}
		return
	}
	if _, err := ff.RenderCardFiles(args.cardFiles, args.outDir, config, logger); err != nil {
		log.Fatal(err)
	}
	if len(logger.Errors()) > 0 {
		os.Exit(1)
	}
}

func parseCliArgs() cliArgs {
	var args cliArgs
	flag.Usage = func() {
		fmt.Printf("Usage: %s [-card file]...\n\n", filepath.Base(os.Args[0]))
		fmt.Printf("Serves the fit font API unless card files are given.\n")
		flag.PrintDefaults()
	}
	flag.StringVar(&args.configFile, "c", "config/config.yaml", "Config file to load.")
	flag.BoolVar(&args.debugMode, "d", false, "Enable debug mode & deploy pprof handlers.")
	flag.Var(&args.cardFiles, "card", "Card file to render. May be repeated.")
	var cardsDir string
	flag.StringVar(&cardsDir, "cards", "", "Directory of card files to render.")
	flag.StringVar(&args.outDir, "o", ".", "Directory to write rendered cards to.")
	flag.BoolVar(&args.watch, "watch", false, "Render cards again whenever they change.")
	flag.Parse()

	if len(cardsDir) > 0 {
		files, err := ff.GetFilesFromDir(cardsDir)
		if err != nil {
			log.Fatalf("Error loading cards from %s: %v", cardsDir, err)
		}
		args.cardFiles = append(args.cardFiles, *files...)
	}
	return args
}
