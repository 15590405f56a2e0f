package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/may-ank-dot/MatchingEngine/internal/config"
	"github.com/may-ank-dot/MatchingEngine/internal/extraction"
	"github.com/may-ank-dot/MatchingEngine/internal/skills"
)

var extractCmd = &cobra.Command{
	Use:   "extract <file>",
	Short: "Print the skill tokens recognized in a document",
	Args:  cobra.ExactArgs(1),
	RunE:  runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)
}

func runExtract(_ *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}

	catalog, err := skills.NewCatalog(cfg.ExtraPatterns...)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}
	text, err := extraction.FromBytes(args[0], data)
	if err != nil {
		return err
	}

	for _, token := range catalog.Extract(text).Sorted() {
		fmt.Println(token)
	}
	return nil
}
