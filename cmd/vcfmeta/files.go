package main

import (
	"os"

	"github.com/spf13/cobra"

	"vcfmeta/internal/catalog"
	"vcfmeta/internal/output"
)

func newFilesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "files",
		Short: "List indexed files",
		Long:  "List every file in the catalog with its fingerprint and sample names.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFiles()
		},
	}
}

func runFiles() error {
	store, err := catalog.Open(catalogPath())
	if err != nil {
		return err
	}
	defer store.Close()

	rows, err := store.Files()
	if err != nil {
		return err
	}
	return output.WriteFileRows(os.Stdout, rows)
}
