package writer

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// SheetName is the worksheet holding the problem rows.
const SheetName = "problem"

// XLSXWriter writes the row set as an Excel workbook with a single
// "problem" sheet, header row included.
type XLSXWriter struct{}

// Name returns the name of the writer.
func (w *XLSXWriter) Name() string {
	return "XLSX Writer"
}

// Write stores the rows at path as an .xlsx workbook.
func (w *XLSXWriter) Write(path string, rows []Row) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(SheetName)
	if err != nil {
		return fmt.Errorf("creating sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("dropping default sheet: %w", err)
	}

	for col, name := range Header {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(SheetName, cell, name); err != nil {
			return err
		}
	}

	for i, row := range rows {
		values := []any{row.Service, row.Location, row.Point}
		if row.OpeningCost != nil {
			values = append(values, *row.OpeningCost)
		} else {
			values = append(values, nil)
		}
		if row.EquipCost != nil {
			values = append(values, *row.EquipCost)
		} else {
			values = append(values, nil)
		}
		for col, v := range values {
			if v == nil {
				continue // blank cell past the side-table length
			}
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(SheetName, cell, v); err != nil {
				return err
			}
		}
	}

	return f.SaveAs(path)
}
