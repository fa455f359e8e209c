// Package export renders records as downloadable CSV or XLSX tables.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

var Formats = []string{string(FormatCSV), string(FormatXLSX)}

// ParseFormat defaults to CSV when s is blank.
func ParseFormat(s string) (Format, bool) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatCSV, true
	case FormatCSV, FormatXLSX:
		return f, true
	}
	return "", false
}

func (f Format) ContentType() string {
	if f == FormatXLSX {
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "text/csv; charset=utf-8"
}

// FileName builds a download name such as stocks-20240603T101500Z.csv.
func (f Format) FileName(base string, at time.Time) string {
	return fmt.Sprintf("%s-%s.%s", base, at.UTC().Format("20060102T150405Z"), f)
}

// Column is one exported field of T. Value may return nil for an empty cell.
type Column[T any] struct {
	Header string
	Value  func(T) any
}

func Write[T any](w io.Writer, format Format, sheet string, columns []Column[T], rows []T) error {
	switch format {
	case FormatXLSX:
		return WriteXLSX(w, sheet, columns, rows)
	case FormatCSV:
		return WriteCSV(w, columns, rows)
	}
	return fmt.Errorf("unsupported export format %q", format)
}

func WriteCSV[T any](w io.Writer, columns []Column[T], rows []T) error {
	csvWriter := csv.NewWriter(w)

	record := make([]string, len(columns))
	for i, c := range columns {
		record[i] = c.Header
	}
	if err := csvWriter.Write(record); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for n, row := range rows {
		for i, c := range columns {
			record[i] = formatValue(c.Value(row))
		}
		if err := csvWriter.Write(record); err != nil {
			return fmt.Errorf("write row %d: %w", n+1, err)
		}
	}

	csvWriter.Flush()
	if err := csvWriter.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

func WriteXLSX[T any](w io.Writer, sheet string, columns []Column[T], rows []T) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if sheet == "" {
		sheet = "Sheet1"
	}
	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return fmt.Errorf("name sheet: %w", err)
	}

	sw, err := f.NewStreamWriter(sheet)
	if err != nil {
		return fmt.Errorf("open sheet writer: %w", err)
	}

	header := make([]interface{}, len(columns))
	for i, c := range columns {
		header[i] = c.Header
	}
	if err := sw.SetRow("A1", header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for n, row := range rows {
		values := make([]interface{}, len(columns))
		for i, c := range columns {
			values[i] = cellValue(c.Value(row))
		}
		cell, err := excelize.CoordinatesToCellName(1, n+2)
		if err != nil {
			return err
		}
		if err := sw.SetRow(cell, values); err != nil {
			return fmt.Errorf("write row %d: %w", n+1, err)
		}
	}

	if err := sw.Flush(); err != nil {
		return fmt.Errorf("flush sheet: %w", err)
	}
	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write xlsx: %w", err)
	}
	return nil
}

// cellValue unwraps pointers so spreadsheets get real numbers.
func cellValue(value any) interface{} {
	switch v := value.(type) {
	case *float64:
		if v == nil {
			return nil
		}
		return *v
	case *int64:
		if v == nil {
			return nil
		}
		return *v
	case fmt.Stringer:
		return v.String()
	}
	return value
}

func formatValue(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case *float64:
		if v == nil {
			return ""
		}
		return strconv.FormatFloat(*v, 'f', -1, 64)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case *int64:
		if v == nil {
			return ""
		}
		return strconv.FormatInt(*v, 10)
	case bool:
		return strconv.FormatBool(v)
	case fmt.Stringer:
		return v.String()
	}
	return fmt.Sprintf("%v", value)
}
