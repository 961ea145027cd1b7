// Package export writes an inventory listing to spreadsheet formats.
package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"iter"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Supported formats.
const (
	FormatXLSX = "xlsx"
	FormatCSV  = "csv"
)

// SheetName is the worksheet that holds the listing in xlsx output.
const SheetName = "Inventory"

// Column headers, matching the item table in the terminal UI.
var header = []string{"Item Name", "Quantity"}

// ErrUnknownFormat is returned for formats other than xlsx and csv.
var ErrUnknownFormat = errors.New("unknown export format")

// FormatFromPath guesses the format from the file extension.
func FormatFromPath(path string) string {
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
}

// WriteFile exports items to path, creating or truncating it.
func WriteFile(path, format string, items iter.Seq2[string, int]) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return Write(f, format, items)
}

// Write exports items to w in the given format.
func Write(w io.Writer, format string, items iter.Seq2[string, int]) error {
	switch format {
	case FormatXLSX:
		return writeXLSX(w, items)
	case FormatCSV:
		return writeCSV(w, items)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

func writeCSV(w io.Writer, items iter.Seq2[string, int]) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	for name, qty := range items {
		if err := cw.Write([]string{name, strconv.Itoa(qty)}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func writeXLSX(w io.Writer, items iter.Seq2[string, int]) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return fmt.Errorf("name sheet: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	if err := f.SetCellStyle(SheetName, "A1", "B1", bold); err != nil {
		return fmt.Errorf("style header: %w", err)
	}
	if err := f.SetColWidth(SheetName, "A", "A", 32); err != nil {
		return fmt.Errorf("size columns: %w", err)
	}

	row := 2
	for name, qty := range items {
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(SheetName, cell, &[]any{name, qty}); err != nil {
			return fmt.Errorf("write row %d: %w", row, err)
		}
		row++
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
