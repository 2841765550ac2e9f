package writer

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"strconv"
)

// CSVWriter writes the row set as comma-separated values with a header
// row. Cost cells past their side-table length are left empty.
type CSVWriter struct{}

// Name returns the name of the writer.
func (w *CSVWriter) Name() string {
	return "CSV Writer"
}

// Write stores the rows at path as a .csv file.
func (w *CSVWriter) Write(path string, rows []Row) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if err := cw.Write(Header); err != nil {
		return err
	}
	for _, row := range rows {
		record := []string{
			strconv.Itoa(row.Service),
			strconv.Itoa(row.Location),
			strconv.Itoa(row.Point),
			optInt(row.OpeningCost),
			optInt(row.EquipCost),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func optInt(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

// JSONWriter writes the row set as an indented JSON array.
type JSONWriter struct{}

// Name returns the name of the writer.
func (w *JSONWriter) Name() string {
	return "JSON Writer"
}

// Write stores the rows at path as a .json file.
func (w *JSONWriter) Write(path string, rows []Row) error {
	data, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0644)
}
