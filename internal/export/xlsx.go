package export

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
)

// XLSX builds a workbook with one sheet: a header row followed by one row
// per record. Dates keep their native cell type so spreadsheet apps can
// reformat them; invalid dates degrade to the literal string.
func XLSX(rows []Record, sheet string) (*excelize.File, error) {
	f := excelize.NewFile()
	if sheet == "" {
		sheet = "Sheet1"
	}
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, fmt.Errorf("new sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if sheet != "Sheet1" {
		if err := f.DeleteSheet("Sheet1"); err != nil {
			return nil, fmt.Errorf("delete default sheet: %w", err)
		}
	}

	headers := Headers(rows)
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, fmt.Errorf("set header %q: %w", h, err)
		}
	}
	for ri, r := range rows {
		for ci, h := range headers {
			cell, err := excelize.CoordinatesToCellName(ci+1, ri+2)
			if err != nil {
				return nil, err
			}
			v, _ := r.get(h)
			if t, ok := v.(time.Time); ok && t.IsZero() {
				v = "Invalid Date"
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, fmt.Errorf("set cell %s: %w", cell, err)
			}
		}
	}
	return f, nil
}
