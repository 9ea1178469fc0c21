// Package spreadsheet handles .xlsx parsing and writing at the I/O boundary.
// It deals only with the structural shape of workbooks; content mapping and
// validation live in the intake domain package.
package spreadsheet

import (
	"fmt"
	"io"
	"strings"

	"zoning/internal/domain/intake"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

// ErrMalformedWorkbook reports a structurally unreadable upload: not a
// workbook at all, no sheets, or no header row. It is distinct from content
// validation failures so callers can report the two differently.
var ErrMalformedWorkbook = errors.New("malformed workbook")

// Parse reads the first sheet of an .xlsx/.xls workbook into raw rows keyed
// by the header row. Cells beyond the header width are dropped; rows shorter
// than the header leave the remaining columns absent so the intake defaults
// apply.
func Parse(r io.Reader) ([]intake.RawRow, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, errors.Wrap(ErrMalformedWorkbook, err.Error())
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.Wrap(ErrMalformedWorkbook, "workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, errors.Wrap(ErrMalformedWorkbook, err.Error())
	}
	if len(rows) == 0 {
		return nil, errors.Wrap(ErrMalformedWorkbook, "first sheet has no header row")
	}

	header := rows[0]
	parsed := make([]intake.RawRow, 0, len(rows)-1)
	for _, cells := range rows[1:] {
		// Blank separator rows are not data; only rows with content reach
		// validation.
		if blankRow(cells) {
			continue
		}

		row := make(intake.RawRow, len(header))
		for i, name := range header {
			if i < len(cells) {
				row[name] = cells[i]
			}
		}
		parsed = append(parsed, row)
	}

	return parsed, nil
}

func blankRow(cells []string) bool {
	for _, cell := range cells {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}

	return true
}

// Write renders a single-sheet workbook with the given header and rows.
func Write(w io.Writer, sheetName string, header []string, rows [][]string) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return errors.Wrap(err, "failed to create worksheet")
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	for i, name := range header {
		cell := fmt.Sprintf("%s1", columnName(i))
		if err := f.SetCellValue(sheetName, cell, name); err != nil {
			return errors.Wrap(err, "failed to write header cell")
		}
	}

	for rowIdx, row := range rows {
		for colIdx, value := range row {
			cell := fmt.Sprintf("%s%d", columnName(colIdx), rowIdx+2)
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				return errors.Wrap(err, "failed to write cell")
			}
		}
	}

	if err := f.Write(w); err != nil {
		return errors.Wrap(err, "failed to write workbook")
	}

	return nil
}

// columnName converts a zero-based column index to its A1-notation letters.
func columnName(idx int) string {
	name, _ := excelize.ColumnNumberToName(idx + 1)

	return name
}
