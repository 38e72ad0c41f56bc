package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"vcfmeta/internal/catalog"
)

func newIndexCmd() *cobra.Command {
	var (
		workers int
		force   bool
	)

	cmd := &cobra.Command{
		Use:   "index <file.vcf ...>",
		Short: "Index VCF headers into the catalog",
		Long: "Parse the headers of the given VCF files and upsert their metadata into\n" +
			"the catalog database. Files whose size and modification time are unchanged\n" +
			"since the last run are skipped unless --force is given.",
		Example: `  vcfmeta index cohort/sample1.vcf cohort/sample2.vcf
  vcfmeta index --force --workers 8 *.vcf`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runIndex(cmd, args, workers, force)
		},
	}

	cmd.Flags().IntVar(&workers, "workers", 0, "Parallel scan workers (default: number of CPUs)")
	cmd.Flags().BoolVar(&force, "force", false, "Re-index files even when fingerprints are unchanged")

	return cmd
}

func runIndex(cmd *cobra.Command, paths []string, workers int, force bool) error {
	logger := newLogger()
	defer logger.Sync()

	store, err := catalog.Open(catalogPath())
	if err != nil {
		return err
	}
	defer store.Close()

	n, err := store.IndexFiles(cmd.Context(), paths, workers, force, logger)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Indexed %d of %d files\n", n, len(paths))
	return nil
}
