package output

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vcfmeta/internal/catalog"
	"vcfmeta/internal/header"
)

func TestWriteRecordRows(t *testing.T) {
	rows := []catalog.RecordRow{
		{
			Path: "/data/a.vcf", Kind: header.TagInfo, ID: "DP",
			Number: "1", Type: "Integer", Description: "Total Depth",
			Source: "caller", Version: "1.0", Length: -1,
		},
		{
			Path: "/data/b.vcf", Kind: header.TagContig, ID: "chr1",
			Length: 248956422,
		},
		{
			Path: "/data/b.vcf", Kind: header.TagContig, ID: "chrM",
			Length: -1,
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteRecordRows(&buf, rows))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "#Path\tKind\tID\tNumber\tType\tDescription\tExtra", lines[0])
	assert.Equal(t, "/data/a.vcf\tINFO\tDP\t1\tInteger\tTotal Depth\tSource=caller,Version=1.0", lines[1])
	assert.Equal(t, "/data/b.vcf\tcontig\tchr1\t-\t-\t-\tlength=248956422", lines[2])
	assert.Equal(t, "/data/b.vcf\tcontig\tchrM\t-\t-\t-\t-", lines[3])
}

func TestWriteGenericRows(t *testing.T) {
	rows := []catalog.GenericRow{
		{Path: "/data/a.vcf", Key: "fileformat", Value: "VCFv4.2"},
		{Path: "/data/b.vcf", Key: "fileformat", Value: "VCFv4.3"},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteGenericRows(&buf, rows))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "/data/a.vcf\tfileformat\tVCFv4.2", lines[1])
}

func TestWriteFileRows(t *testing.T) {
	mod := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	indexed := time.Date(2024, 3, 2, 9, 30, 0, 0, time.UTC)
	rows := []catalog.FileRow{
		{
			Path: "/data/a.vcf", Size: 4096, ModTime: mod,
			FileFormat: "VCFv4.2", Samples: []string{"NA12878", "NA12891"},
			IndexedAt: indexed,
		},
		{Path: "/data/empty.vcf", ModTime: mod, IndexedAt: indexed},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteFileRows(&buf, rows))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t,
		"/data/a.vcf\t4096\t2024-03-01T12:00:00Z\tVCFv4.2\tNA12878,NA12891\t2024-03-02T09:30:00Z",
		lines[1])
	assert.Equal(t,
		"/data/empty.vcf\t0\t2024-03-01T12:00:00Z\t-\t-\t2024-03-02T09:30:00Z",
		lines[2])
}
