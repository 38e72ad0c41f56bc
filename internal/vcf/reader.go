// Package vcf splits a VCF stream at its header boundary: metadata lines are
// parsed into a header.Store, the #CHROM column line is captured when
// present, and the data rows are handed off untouched.
package vcf

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"

	"vcfmeta/internal/header"
)

// ParseError wraps a header parsing failure with its line number.
type ParseError struct {
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("vcf parse error at line %d: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// File is a VCF input split at the header boundary.
type File struct {
	meta        *header.Store
	columnLine  string
	sampleNames []string
	body        io.Reader
	file        *os.File
	lineNumber  int
}

// Option configures parsing before any line is consumed.
type Option func(*File)

// WithLogger routes header quality warnings (duplicate IDs, reserved-type
// mismatches) to logger while the header is parsed.
func WithLogger(logger *zap.Logger) Option {
	return func(f *File) {
		f.meta.SetLogger(logger)
	}
}

// Open opens a plain-text VCF file and parses its header section. "-" reads
// from stdin. Compressed inputs are the caller's concern: decompress the
// stream yourself and use NewFile.
func Open(path string, opts ...Option) (*File, error) {
	if path == "-" {
		return NewFile(os.Stdin, opts...)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open vcf file: %w", err)
	}

	file, err := NewFile(f, opts...)
	if err != nil {
		f.Close()
		return nil, err
	}
	file.file = f
	return file, nil
}

// NewFile parses the header section from r. On return the metadata store is
// populated and Body is positioned at the first byte after the header (and
// after the column line, when the file has one).
func NewFile(r io.Reader, opts ...Option) (*File, error) {
	f := &File{meta: header.NewStore()}
	for _, opt := range opts {
		opt(f)
	}
	reader := bufio.NewReader(r)

	for {
		line, err := reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, fmt.Errorf("read header: %w", err)
		}
		atEOF := err == io.EOF
		if atEOF && line == "" {
			break
		}

		trimmed := strings.TrimRight(line, "\r\n")
		outcome, err := f.meta.Ingest(trimmed)
		if err != nil {
			return nil, &ParseError{Line: f.lineNumber + 1, Err: err}
		}
		if outcome == header.LineHeaderEnded {
			if strings.HasPrefix(trimmed, "#") {
				f.lineNumber++
				f.columnLine = trimmed
				// Sample names follow the FORMAT column.
				fields := strings.Split(trimmed, "\t")
				if len(fields) > 9 {
					f.sampleNames = fields[9:]
				}
				f.body = reader
			} else {
				// The first data row is not consumed; stitch it back in
				// front of the remaining stream, bytes unchanged.
				f.body = io.MultiReader(strings.NewReader(line), reader)
			}
			return f, nil
		}

		f.lineNumber++
		if atEOF {
			break
		}
	}

	// Input ended inside the header section.
	f.meta.Finalize()
	f.body = strings.NewReader("")
	return f, nil
}

// Meta returns the parsed header metadata.
func (f *File) Meta() *header.Store {
	return f.meta
}

// ColumnLine returns the #CHROM column line, or "" when the file has none.
func (f *File) ColumnLine() string {
	return f.columnLine
}

// SampleNames returns the sample columns after FORMAT, nil when absent.
func (f *File) SampleNames() []string {
	return f.sampleNames
}

// HeaderLines returns the metadata lines plus the column line in file order,
// ready for verbatim re-emission.
func (f *File) HeaderLines() []string {
	lines := f.meta.RawLines()
	if f.columnLine == "" {
		return lines
	}
	out := make([]string, 0, len(lines)+1)
	out = append(out, lines...)
	return append(out, f.columnLine)
}

// Body returns the data rows exactly as they appear in the input.
func (f *File) Body() io.Reader {
	return f.body
}

// LineNumber returns the number of header lines consumed.
func (f *File) LineNumber() int {
	return f.lineNumber
}

// Close closes the underlying file when the input came from Open.
func (f *File) Close() error {
	if f.file != nil {
		return f.file.Close()
	}
	return nil
}
