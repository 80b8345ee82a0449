package verify

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strconv"

	"github.com/Rana718/seedgen/internal/model"
	"github.com/Rana718/seedgen/internal/types"
)

type Violation struct {
	Table   string
	Row     int // 1-based data row, 0 for the whole table
	Message string
}

func (v Violation) String() string {
	if v.Row == 0 {
		return fmt.Sprintf("%s: %s", v.Table, v.Message)
	}
	return fmt.Sprintf("%s row %d: %s", v.Table, v.Row, v.Message)
}

type Report struct {
	Variant    string
	Rows       map[string]int
	Violations []Violation
}

func (r *Report) OK() bool {
	return len(r.Violations) == 0
}

func (r *Report) add(table string, row int, format string, args ...any) {
	r.Violations = append(r.Violations, Violation{Table: table, Row: row, Message: fmt.Sprintf(format, args...)})
}

// frame is a table in its delimited form, which is what both generated tables
// and files read back from disk reduce to.
type frame struct {
	schema types.SchemaTable
	rows   [][]string
	index  map[string]int
}

func (f *frame) value(row []string, column string) string {
	return row[f.index[column]]
}

func newFrame(schema types.SchemaTable, rows [][]string) *frame {
	index := make(map[string]int, len(schema.Columns))
	for i, col := range schema.Columns {
		index[col.Name] = i
	}
	return &frame{schema: schema, rows: rows, index: index}
}

// Tables checks generated tables before they are written anywhere.
func Tables(variant model.Variant, tables []*types.Table) *Report {
	frames := make(map[string]*frame, len(tables))
	for _, table := range tables {
		rows := make([][]string, len(table.Rows))
		for i, row := range table.Rows {
			record := make([]string, len(row))
			for j, value := range row {
				record[j] = types.FormatValue(value)
			}
			rows[i] = record
		}
		frames[table.Name()] = newFrame(table.Schema, rows)
	}

	report := &Report{Variant: variant.Name, Rows: make(map[string]int)}
	check(report, variant, frames)
	return report
}

// Directory reads <table>.csv for every table of the variant from dir and
// checks the dataset's referential and temporal integrity.
func Directory(dir string, variant model.Variant) (*Report, error) {
	report := &Report{Variant: variant.Name, Rows: make(map[string]int)}
	frames := make(map[string]*frame, len(variant.Tables))

	for _, schema := range variant.Tables {
		header, rows, err := readCSV(filepath.Join(dir, schema.FileName()))
		if err != nil {
			return nil, err
		}
		if !slices.Equal(header, schema.ColumnNames()) {
			report.add(schema.Name, 0, "header %v does not match %v", header, schema.ColumnNames())
			continue
		}
		frames[schema.Name] = newFrame(schema, rows)
	}

	check(report, variant, frames)
	return report, nil
}

func readCSV(path string) ([]string, [][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil, fmt.Errorf("%s is empty", path)
		}
		return nil, nil, fmt.Errorf("failed to read header of %s: %w", path, err)
	}

	var rows [][]string
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		rows = append(rows, record)
	}
	return header, rows, nil
}

func check(report *Report, variant model.Variant, frames map[string]*frame) {
	for _, schema := range variant.Tables {
		f, ok := frames[schema.Name]
		if !ok {
			continue
		}
		report.Rows[schema.Name] = len(f.rows)
		checkKeys(report, f)
		checkForeignKeys(report, f, frames)
	}
	for _, order := range variant.TimeOrders {
		checkTimeOrder(report, order, frames)
	}
	if variant.Name == model.VariantRental {
		checkRentalReviews(report, frames)
	}
}

// checkKeys requires primary keys 1..n in row order, non-empty required
// columns and distinct values in unique columns.
func checkKeys(report *Report, f *frame) {
	pk := f.schema.PrimaryKey()
	seen := make(map[string]map[string]int)
	for _, col := range f.schema.Columns {
		if col.IsUnique {
			seen[col.Name] = make(map[string]int)
		}
	}

	for i, row := range f.rows {
		if pk != "" && f.value(row, pk) != strconv.Itoa(i+1) {
			report.add(f.schema.Name, i+1, "%s is %q, want %d", pk, f.value(row, pk), i+1)
		}
		for _, col := range f.schema.Columns {
			v := f.value(row, col.Name)
			if v == "" && !col.Nullable && col.Kind != types.KindText {
				report.add(f.schema.Name, i+1, "%s is empty", col.Name)
			}
			if values, ok := seen[col.Name]; ok {
				if first, dup := values[v]; dup {
					report.add(f.schema.Name, i+1, "%s %q duplicates row %d", col.Name, v, first)
				} else {
					values[v] = i + 1
				}
			}
		}
	}
}

func checkForeignKeys(report *Report, f *frame, frames map[string]*frame) {
	for _, col := range f.schema.Columns {
		if !col.IsForeignKey() {
			continue
		}
		parent, ok := frames[col.ForeignKeyTable]
		if !ok {
			continue
		}
		keys := keySet(parent, col.ForeignKeyColumn)
		for i, row := range f.rows {
			v := f.value(row, col.Name)
			if v == "" && col.Nullable {
				continue
			}
			if _, ok := keys[v]; !ok {
				report.add(f.schema.Name, i+1, "%s %q has no match in %s.%s", col.Name, v, col.ForeignKeyTable, col.ForeignKeyColumn)
			}
		}
	}
}

func keySet(f *frame, column string) map[string][]string {
	keys := make(map[string][]string, len(f.rows))
	for _, row := range f.rows {
		keys[f.value(row, column)] = row
	}
	return keys
}

func checkTimeOrder(report *Report, order model.TimeOrder, frames map[string]*frame) {
	child, ok := frames[order.Child]
	if !ok {
		return
	}
	parent, ok := frames[order.Parent]
	if !ok {
		return
	}

	var parentKey string
	for _, col := range child.schema.Columns {
		if col.Name == order.ForeignKey {
			parentKey = col.ForeignKeyColumn
		}
	}
	parents := keySet(parent, parentKey)

	for i, row := range child.rows {
		parentRow, ok := parents[child.value(row, order.ForeignKey)]
		if !ok {
			continue // reported by checkForeignKeys
		}
		childTime, err := types.ParseTime(child.value(row, order.ChildTime))
		if err != nil {
			report.add(order.Child, i+1, "%s: %v", order.ChildTime, err)
			continue
		}
		parentTime, err := types.ParseTime(parent.value(parentRow, order.ParentTime))
		if err != nil {
			report.add(order.Parent, 0, "%s: %v", order.ParentTime, err)
			continue
		}
		if childTime.Before(parentTime) {
			report.add(order.Child, i+1, "%s %s precedes %s.%s %s",
				order.ChildTime, child.value(row, order.ChildTime),
				order.Parent, order.ParentTime, parent.value(parentRow, order.ParentTime))
		}
	}
}

// checkRentalReviews requires every review to belong to a completed rental
// and to be written by that rental's renter.
func checkRentalReviews(report *Report, frames map[string]*frame) {
	reviews, ok := frames["reviews"]
	if !ok {
		return
	}
	rentals, ok := frames["rentals"]
	if !ok {
		return
	}
	byID := keySet(rentals, "rental_id")
	for i, row := range reviews.rows {
		rental, ok := byID[reviews.value(row, "rental_id")]
		if !ok {
			continue
		}
		if status := rentals.value(rental, "status"); status != model.RentalCompleted {
			report.add("reviews", i+1, "reviews rental %s with status %s", rentals.value(rental, "rental_id"), status)
		}
		if reviews.value(row, "reviewer_id") != rentals.value(rental, "renter_id") {
			report.add("reviews", i+1, "reviewer %s did not rent %s", reviews.value(row, "reviewer_id"), rentals.value(rental, "rental_id"))
		}
	}
}
