// Package export writes table projections to Excel workbooks.
package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/five82/talentdesk/internal/views"
)

const maxSheetName = 31

// Sheet is one worksheet of plain string cells.
type Sheet struct {
	Name    string
	Headers []string
	Widths  []int
	Rows    [][]string
}

// FromProjection builds a sheet holding the visible rows of a view.
func FromProjection(name string, p views.Projection) Sheet {
	s := Sheet{
		Name:    name,
		Headers: make([]string, 0, len(p.Headers)),
		Widths:  make([]int, 0, len(p.Headers)),
		Rows:    make([][]string, 0, len(p.Rows)),
	}
	for _, h := range p.Headers {
		s.Headers = append(s.Headers, h.Title)
		s.Widths = append(s.Widths, h.Width)
	}
	for _, r := range p.Rows {
		s.Rows = append(s.Rows, r.Cells)
	}
	return s
}

// FileName returns the default export file name for a resource.
func FileName(resource string, now time.Time) string {
	return fmt.Sprintf("%s-%s.xlsx", resource, now.Format("20060102-150405"))
}

// Write encodes sheets as an xlsx workbook.
func Write(w io.Writer, sheets ...Sheet) error {
	if len(sheets) == 0 {
		return fmt.Errorf("no sheets to export")
	}
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	header, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"DDE4EE"}},
	})
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}

	defaultSheet := f.GetSheetName(0)
	for i, s := range sheets {
		name := sheetName(s.Name, i)
		if i == 0 {
			if err := f.SetSheetName(defaultSheet, name); err != nil {
				return fmt.Errorf("rename sheet: %w", err)
			}
		} else if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("add sheet %q: %w", name, err)
		}
		if err := writeSheet(f, name, s, header); err != nil {
			return err
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

// SaveFile writes sheets to path, creating the directory when needed.
func SaveFile(path string, sheets ...Sheet) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create export dir: %w", err)
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}
	if err := Write(file, sheets...); err != nil {
		_ = file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("close export file: %w", err)
	}
	return nil
}

func writeSheet(f *excelize.File, name string, s Sheet, headerStyle int) error {
	sw, err := f.NewStreamWriter(name)
	if err != nil {
		return fmt.Errorf("open sheet %q: %w", name, err)
	}

	for i, width := range s.Widths {
		if width <= 0 {
			continue
		}
		if err := sw.SetColWidth(i+1, i+1, float64(width)+2); err != nil {
			return fmt.Errorf("set column width: %w", err)
		}
	}

	if err := sw.SetRow("A1", toRow(s.Headers), excelize.RowOpts{StyleID: headerStyle}); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, row := range s.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := sw.SetRow(cell, toRow(row)); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}
	if err := sw.Flush(); err != nil {
		return fmt.Errorf("flush sheet %q: %w", name, err)
	}
	return nil
}

func toRow(cells []string) []any {
	out := make([]any, len(cells))
	for i, c := range cells {
		out[i] = c
	}
	return out
}

func sheetName(name string, idx int) string {
	clean := strings.Map(func(r rune) rune {
		switch r {
		case ':', '\\', '/', '?', '*', '[', ']':
			return '-'
		}
		return r
	}, strings.TrimSpace(name))
	if clean == "" {
		clean = fmt.Sprintf("Sheet%d", idx+1)
	}
	if runes := []rune(clean); len(runes) > maxSheetName {
		clean = string(runes[:maxSheetName])
	}
	return clean
}
