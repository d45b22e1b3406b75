package main

import (
	"flag"
	"fmt"
	"os"

	"cardstack/internal/config"
	"cardstack/internal/importer"
	"cardstack/internal/service"
	"cardstack/internal/storage"

	"go.uber.org/zap"
)

func main() {
	filePath := flag.String("file", "", "path to the deck file (.xlsx, .csv, .yaml)")
	sheet := flag.String("sheet", "", "sheet to import from a workbook (default: first sheet)")
	noHeader := flag.Bool("no-header", false, "import the first row of tabular files")
	replace := flag.Bool("replace", false, "replace the stored deck instead of appending")
	flag.Parse()

	if *filePath == "" {
		fmt.Fprintln(os.Stderr, "Usage: cardimport -file <deck.xlsx|deck.csv|deck.yaml> [-replace]")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	importConfig := importer.DefaultImportConfig(*filePath)
	importConfig.SheetName = *sheet
	importConfig.SkipHeader = !*noHeader

	result, err := importer.ReadCards(importConfig)
	if err != nil {
		logger.Fatal("Failed to read deck", zap.String("file", *filePath), zap.Error(err))
	}
	for _, msg := range result.Errors {
		logger.Warn("Skipped entry", zap.String("reason", msg))
	}
	if len(result.Cards) == 0 {
		logger.Fatal("No cards found", zap.String("file", *filePath))
	}

	store, err := storage.Open(cfg, logger)
	if err != nil {
		logger.Fatal("Failed to open store", zap.Error(err))
	}
	defer store.Close()

	editor := service.NewEditService(store.KV, logger)
	size, err := editor.Import(result.Cards, *replace)
	if err != nil {
		logger.Fatal("Failed to import cards", zap.Error(err))
	}

	fmt.Printf("Imported %d cards (%d skipped), deck now has %d cards\n", len(result.Cards), result.Skipped, size)
}
