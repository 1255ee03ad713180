package export

import (
	"bufio"
	"io"
	"strings"
)

const (
	utf8BOM      = "\uFEFF"
	csvDelimiter = ';'
)

// WriteCSV writes header and rows as a spreadsheet-friendly CSV: UTF-8 BOM, ';'
// delimiter, CRLF line endings and every field quoted with inner quotes doubled.
func WriteCSV(w io.Writer, header []string, rows [][]string) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(utf8BOM); err != nil {
		return err
	}
	if err := writeRecord(bw, header); err != nil {
		return err
	}
	for _, row := range rows {
		if err := writeRecord(bw, row); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func writeRecord(w *bufio.Writer, fields []string) error {
	for i, f := range fields {
		if i > 0 {
			if err := w.WriteByte(csvDelimiter); err != nil {
				return err
			}
		}
		if _, err := w.WriteString(`"` + strings.ReplaceAll(f, `"`, `""`) + `"`); err != nil {
			return err
		}
	}
	_, err := w.WriteString("\r\n")
	return err
}
