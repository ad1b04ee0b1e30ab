package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/avolkov/nurikabe/internal/puzzle"
	"github.com/avolkov/nurikabe/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List built-in and stored puzzles",
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "nurikabe"})

	fmt.Println("Built-in puzzles:")
	for _, name := range puzzle.SampleNames() {
		def, err := puzzle.Sample(name)
		if err != nil {
			continue
		}
		fmt.Printf("  %-16s %dx%d, %d clues\n", name, def.Rows, def.Cols, len(def.Clues))
	}
	fmt.Println()

	store, err := storage.Open(cfg.DB)
	if err != nil {
		logger.Warn("could not open library", "error", err)
		return
	}
	defer store.Close()

	entries, err := store.List()
	if err != nil {
		logger.Error("could not list library", "error", err)
		os.Exit(1)
	}

	if len(entries) == 0 {
		fmt.Println("Library is empty. Add puzzles with 'nurikabe import'.")
		return
	}

	fmt.Println("Library:")
	fmt.Printf("  %-4s  %-16s  %-7s  %-5s  %s\n", "ID", "Name", "Size", "Clues", "Added")
	fmt.Printf("  %-4s  %-16s  %-7s  %-5s  %s\n", "--", "----", "----", "-----", "-----")
	for _, e := range entries {
		size := fmt.Sprintf("%dx%d", e.Rows, e.Cols)
		fmt.Printf("  %-4d  %-16s  %-7s  %-5d  %s\n", e.ID, e.Name, size, e.Clues, e.CreatedAt.Format("2006-01-02 15:04"))
	}
}
