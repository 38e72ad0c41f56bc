package output

import (
	"bufio"
	"io"
)

// WriteRawHeader re-emits header lines verbatim, one per line.
func WriteRawHeader(w io.Writer, lines []string) error {
	bw := bufio.NewWriter(w)
	for _, line := range lines {
		if _, err := bw.WriteString(line + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}
