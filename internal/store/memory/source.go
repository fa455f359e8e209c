package memory

import (
	"bufio"
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

var byteOrderMark = []byte{0xEF, 0xBB, 0xBF}

// Source produces the full content of a dataset.
type Source[T any] interface {
	Name() string
	Load(ctx context.Context) ([]T, error)
}

// File locates the bytes of a dataset. An empty Path falls back to
// Embedded. A missing Optional file reads as an empty dataset; a missing
// required one is a NotFoundError.
type File struct {
	Path     string
	Optional bool
	Embedded []byte
	// Format overrides the format implied by the file extension.
	Format string
}

func (f File) Name() string {
	if f.Path == "" {
		return "embedded"
	}
	return f.Path
}

func (f File) format() string {
	if f.Format != "" {
		return strings.ToLower(f.Format)
	}
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(f.Path)), ".")
}

// read returns nil without error when an optional file is missing.
func (f File) read() ([]byte, error) {
	if f.Path == "" {
		return f.Embedded, nil
	}

	data, err := os.ReadFile(f.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			if f.Optional {
				return nil, nil
			}
			return nil, NotFoundError{Path: f.Path}
		}
		return nil, LoadError{Source: f.Path, Err: err}
	}
	return data, nil
}

// Row is one data row of a table addressed by lower cased header name.
type Row struct {
	header map[string]int
	cells  []string
}

// String returns the trimmed value of the first present column of names.
func (r Row) String(names ...string) string {
	for _, name := range names {
		if i, ok := r.header[name]; ok && i < len(r.cells) {
			return strings.TrimSpace(r.cells[i])
		}
	}
	return ""
}

func (r Row) Float(names ...string) *float64 {
	return parseFloat(r.String(names...))
}

func (r Row) Int(names ...string) *int64 {
	return parseInt(r.String(names...))
}

// TableSource reads CSV or XLSX data. Required lists column names that must
// be present in the header; Decode turns a row into a record and may skip it
// by returning false.
type TableSource[T any] struct {
	File     File
	Required [][]string
	Decode   func(Row) (T, bool)
}

func (s TableSource[T]) Name() string { return s.File.Name() }

func (s TableSource[T]) Load(ctx context.Context) ([]T, error) {
	data, err := s.File.read()
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return []T{}, nil
	}

	var records [][]string
	switch format := s.File.format(); format {
	case "", "csv":
		records, err = readCSV(data)
	case "xlsx":
		records, err = readExcel(data)
	default:
		err = fmt.Errorf("unsupported table format %q", format)
	}
	if err != nil {
		return nil, LoadError{Source: s.Name(), Err: err}
	}

	rows, err := s.rows(records)
	if err != nil {
		return nil, LoadError{Source: s.Name(), Err: err}
	}

	out := make([]T, 0, len(rows))
	for _, row := range rows {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if rec, ok := s.Decode(row); ok {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (s TableSource[T]) rows(records [][]string) ([]Row, error) {
	var (
		header map[string]int
		rows   []Row
	)
	for _, rec := range records {
		if isEmptyRow(rec) {
			continue
		}
		if header == nil {
			header = make(map[string]int, len(rec))
			for i, name := range rec {
				name = strings.ToLower(strings.TrimSpace(name))
				if _, dup := header[name]; !dup {
					header[name] = i
				}
			}
			continue
		}
		rows = append(rows, Row{header: header, cells: rec})
	}

	if header == nil {
		return nil, errors.New("no header row found")
	}
	for _, alternatives := range s.Required {
		if !hasAny(header, alternatives) {
			return nil, fmt.Errorf("missing column %q", strings.Join(alternatives, "|"))
		}
	}
	return rows, nil
}

func readCSV(data []byte) ([][]string, error) {
	reader := bufio.NewReader(bytes.NewReader(data))
	if prefix, err := reader.Peek(len(byteOrderMark)); err == nil && bytes.Equal(prefix, byteOrderMark) {
		_, _ = reader.Discard(len(byteOrderMark))
	}

	csvReader := csv.NewReader(reader)
	csvReader.TrimLeadingSpace = true
	csvReader.FieldsPerRecord = -1

	records, err := csvReader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	return records, nil
}

func readExcel(data []byte) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("open xlsx: %w", err)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("xlsx has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read xlsx rows: %w", err)
	}
	return rows, nil
}

func isEmptyRow(rec []string) bool {
	for _, cell := range rec {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

func hasAny(header map[string]int, names []string) bool {
	for _, n := range names {
		if _, ok := header[n]; ok {
			return true
		}
	}
	return false
}

// JSONSource decodes a JSON document with Decode.
type JSONSource[T any] struct {
	File   File
	Decode func([]byte) ([]T, error)
}

func (s JSONSource[T]) Name() string { return s.File.Name() }

func (s JSONSource[T]) Load(_ context.Context) ([]T, error) {
	data, err := s.File.read()
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return []T{}, nil
	}

	out, err := s.Decode(data)
	if err != nil {
		return nil, LoadError{Source: s.Name(), Err: err}
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}
