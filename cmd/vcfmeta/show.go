package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"vcfmeta/internal/output"
	"vcfmeta/internal/vcf"
)

func newShowCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "show <file.vcf>",
		Short: "Parse a VCF header and print its metadata",
		Long:  "Parse the metadata section of a VCF file and print the declarations it contains.",
		Example: `  vcfmeta show input.vcf
  vcfmeta show --format raw input.vcf
  cat input.vcf | vcfmeta show -`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(args[0], format)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "tab", "Output format: tab, raw")

	return cmd
}

func runShow(path, format string) error {
	logger := newLogger()
	defer logger.Sync()

	f, err := vcf.Open(path, vcf.WithLogger(logger))
	if err != nil {
		return err
	}
	defer f.Close()

	switch format {
	case "tab":
		w := output.NewTabWriter(os.Stdout)
		if err := w.WriteHeader(); err != nil {
			return err
		}
		if err := w.WriteMeta(f.Meta()); err != nil {
			return err
		}
		return w.Flush()
	case "raw":
		return output.WriteRawHeader(os.Stdout, f.HeaderLines())
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
