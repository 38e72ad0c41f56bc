package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"vcfmeta/internal/catalog"
	"vcfmeta/internal/header"
	"vcfmeta/internal/output"
)

func newQueryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "query <kind> <id>",
		Short: "Look up a header record across indexed files",
		Long: "Search the catalog for a declaration by kind (INFO, FILTER, ALT, FORMAT,\n" +
			"contig, or generic) and ID, printing one row per file that declares it.",
		Example: `  vcfmeta query INFO DP
  vcfmeta query contig chr1
  vcfmeta query generic fileformat`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(args[0], args[1])
		},
	}
}

func runQuery(kind, id string) error {
	store, err := catalog.Open(catalogPath())
	if err != nil {
		return err
	}
	defer store.Close()

	if kind == "generic" {
		rows, err := store.LookupGeneric(id)
		if err != nil {
			return err
		}
		if len(rows) == 0 {
			return fmt.Errorf("no generic metadata with key %q in the catalog", id)
		}
		return output.WriteGenericRows(os.Stdout, rows)
	}

	switch kind {
	case header.TagInfo, header.TagFilter, header.TagAlt, header.TagFormat, header.TagContig:
	default:
		return fmt.Errorf("unknown record kind %q (want INFO, FILTER, ALT, FORMAT, contig, or generic)", kind)
	}

	rows, err := store.LookupRecord(kind, id)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return fmt.Errorf("no %s record with ID %q in the catalog", kind, id)
	}
	return output.WriteRecordRows(os.Stdout, rows)
}
