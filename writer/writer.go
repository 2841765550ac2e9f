// Package writer turns a generated instance into the tabular problem
// file consumed downstream. The layout is fixed: one row per
// (location, demand point) edge, sorted ascending by
// (service, location, point), with the opening-cost and equip-cost
// columns filled only for the first locations / services rows. The cost
// columns are concatenated side-tables, not per-row joins; solvers read
// them positionally, so the layout is preserved as is.
package writer

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jcnauta/mscflp-gen/models"
)

// Header is the column order of the problem file.
var Header = []string{"service", "location", "point", "opening_cost", "equip_cost"}

// Row is one output row. The cost fields are nil past the end of their
// side-table.
type Row struct {
	Service     int  `json:"service"`
	Location    int  `json:"location"`
	Point       int  `json:"point"`
	OpeningCost *int `json:"opening_cost,omitempty"`
	EquipCost   *int `json:"equip_cost,omitempty"`
}

// FileWriter writes a row set to a file in one concrete format.
type FileWriter interface {
	// Write stores the rows at path.
	Write(path string, rows []Row) error

	// Name returns the name of the writer.
	Name() string
}

// GetWriter returns the writer matching the file extension of path.
func GetWriter(path string) (FileWriter, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return &XLSXWriter{}, nil
	case ".csv":
		return &CSVWriter{}, nil
	case ".json":
		return &JSONWriter{}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", filepath.Ext(path))
	}
}

// Write stores the instance's row set at path, picking the format from
// the file extension.
func Write(ins *models.Instance, path string) error {
	w, err := GetWriter(path)
	if err != nil {
		return err
	}
	if err := w.Write(path, Rows(ins)); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// Rows builds the sorted row set of an instance and attaches the cost
// side-tables. After repair every location and demand point has at least
// one edge, so the row count always covers both side-tables.
func Rows(ins *models.Instance) []Row {
	records := make([]models.ServiceRecord, len(ins.Records))
	copy(records, ins.Records)
	sort.Slice(records, func(i, j int) bool { return records[i].Less(records[j]) })

	rows := make([]Row, len(records))
	for i, r := range records {
		rows[i] = Row{Service: r.Service, Location: r.Location, Point: r.Point}
		if i < len(ins.Costs.Opening) {
			v := ins.Costs.Opening[i]
			rows[i].OpeningCost = &v
		}
		if i < len(ins.Costs.Equip) {
			v := ins.Costs.Equip[i]
			rows[i].EquipCost = &v
		}
	}
	return rows
}
