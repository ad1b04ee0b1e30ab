package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/avolkov/nurikabe/internal/puzzle"
	"github.com/avolkov/nurikabe/internal/storage"
)

var importCmd = &cobra.Command{
	Use:   "import <file...>",
	Short: "Add puzzle files to the library",
	Long: `Validate and store puzzle files in the library database.

Examples:
  nurikabe import my-puzzle.yaml
  nurikabe import puzzles/*.yaml`,
	Args: cobra.MinimumNArgs(1),
	Run:  runImport,
}

func runImport(cmd *cobra.Command, args []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "nurikabe"})

	store, err := storage.Open(cfg.DB)
	if err != nil {
		logger.Error("could not open library", "error", err)
		os.Exit(1)
	}
	defer store.Close()

	failed := 0
	for _, path := range args {
		def, err := puzzle.Load(path)
		if err != nil {
			logger.Error("skipping", "file", path, "error", err)
			failed++
			continue
		}
		if def.Name == "" {
			base := filepath.Base(path)
			def.Name = base[:len(base)-len(filepath.Ext(base))]
		}
		id, err := store.Save(def, path)
		if err != nil {
			logger.Error("skipping", "file", path, "error", err)
			failed++
			continue
		}
		logger.Info("imported", "file", path, "id", id, "size", fmt.Sprintf("%dx%d", def.Rows, def.Cols))
	}

	if failed > 0 {
		os.Exit(1)
	}
}
