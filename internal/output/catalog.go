package output

import (
	"bufio"
	"io"
	"strconv"
	"strings"
	"time"

	"vcfmeta/internal/catalog"
)

var recordColumns = []string{"#Path", "Kind", "ID", "Number", "Type", "Description", "Extra"}

// WriteRecordRows writes catalog lookup results in tab-delimited format.
func WriteRecordRows(w io.Writer, rows []catalog.RecordRow) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(strings.Join(recordColumns, "\t") + "\n"); err != nil {
		return err
	}
	for _, r := range rows {
		values := []string{
			r.Path,
			r.Kind,
			r.ID,
			orAbsent(r.Number),
			orAbsent(r.Type),
			orAbsent(r.Description),
			recordExtra(r),
		}
		if _, err := bw.WriteString(strings.Join(values, "\t") + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

var genericColumns = []string{"#Path", "Key", "Value"}

// WriteGenericRows writes generic metadata lookup results in tab-delimited format.
func WriteGenericRows(w io.Writer, rows []catalog.GenericRow) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(strings.Join(genericColumns, "\t") + "\n"); err != nil {
		return err
	}
	for _, r := range rows {
		values := []string{r.Path, r.Key, orAbsent(r.Value)}
		if _, err := bw.WriteString(strings.Join(values, "\t") + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

var fileColumns = []string{"#Path", "Size", "ModTime", "FileFormat", "Samples", "IndexedAt"}

// WriteFileRows writes the indexed file listing in tab-delimited format.
func WriteFileRows(w io.Writer, rows []catalog.FileRow) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(strings.Join(fileColumns, "\t") + "\n"); err != nil {
		return err
	}
	for _, f := range rows {
		samples := absent
		if len(f.Samples) > 0 {
			samples = strings.Join(f.Samples, ",")
		}
		values := []string{
			f.Path,
			strconv.FormatInt(f.Size, 10),
			f.ModTime.Format(time.RFC3339),
			orAbsent(f.FileFormat),
			samples,
			f.IndexedAt.Format(time.RFC3339),
		}
		if _, err := bw.WriteString(strings.Join(values, "\t") + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// recordExtra renders the columns that only apply to some record kinds.
func recordExtra(r catalog.RecordRow) string {
	var parts []string
	if r.Source != "" {
		parts = append(parts, "Source="+r.Source)
	}
	if r.Version != "" {
		parts = append(parts, "Version="+r.Version)
	}
	if r.Length >= 0 {
		parts = append(parts, "length="+strconv.FormatInt(r.Length, 10))
	}
	if len(parts) == 0 {
		return absent
	}
	return strings.Join(parts, ",")
}

func orAbsent(s string) string {
	if s == "" {
		return absent
	}
	return s
}
