package export

import (
	"fmt"
	"io"
	"strings"

	"requisicoes/internal/domain/entities"
)

type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// ParseFormat defaults to CSV when s is empty.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case "", FormatCSV:
		return FormatCSV, nil
	case FormatXLSX:
		return FormatXLSX, nil
	}
	return "", fmt.Errorf("unsupported export format %q", s)
}

func (f Format) ContentType() string {
	if f == FormatXLSX {
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "text/csv; charset=utf-8"
}

func (f Format) Filename() string {
	return "requisicoes." + string(f)
}

// Exporter renders requisitions with the display labels of its catalog.
type Exporter struct {
	catalog entities.StatusCatalog
}

func NewExporter(catalog entities.StatusCatalog) *Exporter {
	return &Exporter{catalog: catalog}
}

func (e *Exporter) Write(w io.Writer, format Format, items []entities.Requisition) error {
	rows := Rows(items, e.catalog)
	switch format {
	case FormatXLSX:
		return WriteXLSX(w, Header, rows)
	default:
		return WriteCSV(w, Header, rows)
	}
}
