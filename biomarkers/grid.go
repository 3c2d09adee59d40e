/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package biomarkers

import (
	"sort"
	"strconv"
	"strings"
)

// Grid is a rectangular block of raw spreadsheet cells, rows by columns,
// 0-indexed. Cells may be strings, numbers or nil; rows may be ragged.
type Grid [][]any

// Fixed column roles of the bloodwork sheet. The sheet is positional, not
// header-named: column 0 holds category or biomarker names, column 1 the
// optimal-range expression, and results sit at every odd column from 3
// with a spacer column between them.
const (
	providerRowIndex  = 1
	dateRowIndex      = 2
	firstDataRowIndex = 3

	nameColumn        = 0
	rangeColumn       = 1
	firstValueColumn  = 3
	valueColumnStride = 2
	maxValueColumn    = 200
)

// CategoryNames is the closed set of recognized category header strings.
// A data row whose first cell matches one of these opens a new category;
// everything else under an open category is a biomarker row.
var CategoryNames = []string{
	"Metabolic Health",
	"Heart Health",
	"Thyroid Health",
	"Liver",
	"Kidney",
	"Blood Counts",
	"Vitamins & Minerals",
	"Inflammation",
	"Hormones",
	"Electrolytes",
}

// valueColumn is a registered (provider, date) results column.
type valueColumn struct {
	index    int
	provider string
	date     string
}

// ParseGrid scans the raw grid into the category -> biomarker ->
// measurement hierarchy. Malformed rows and cells are skipped, never
// fatal: rows before the first category header are discarded, rows with a
// blank name are treated as separators, and a results column without a
// parseable date is dropped from the schema together with anything under
// it. The transform is a pure function of the grid.
func ParseGrid(rows Grid) []Category {
	if len(rows) <= dateRowIndex {
		return nil
	}

	columns := registerValueColumns(rows[providerRowIndex], rows[dateRowIndex])

	var categories []Category
	var current *Category

	for _, row := range rows[firstDataRowIndex:] {
		name := stringCell(cellAt(row, nameColumn))
		if name == "" {
			continue
		}

		if isCategoryName(name) {
			categories = append(categories, Category{ID: Slug(name), Name: name})
			current = &categories[len(categories)-1]
			continue
		}

		if current == nil {
			continue
		}

		rangeExpr := stringCell(cellAt(row, rangeColumn))
		biomarker := Biomarker{
			ID:           Slug(name),
			Name:         name,
			OptimalRange: rangeExpr,
		}

		for _, column := range columns {
			value := NumericCell(cellAt(row, column.index))
			if value == nil {
				continue
			}
			biomarker.Measurements = append(biomarker.Measurements, Measurement{
				Date:         column.date,
				Value:        value,
				Provider:     column.provider,
				OptimalRange: rangeExpr,
			})
		}

		sort.SliceStable(biomarker.Measurements, func(i, j int) bool {
			return biomarker.Measurements[i].Date < biomarker.Measurements[j].Date
		})

		current.Biomarkers = append(current.Biomarkers, biomarker)
	}

	return categories
}

// registerValueColumns pairs each results column with its provider and
// date from the two header rows. Provider may be blank; the date decides
// whether the column exists at all.
func registerValueColumns(providerRow, dateRow []any) []valueColumn {
	var columns []valueColumn
	for index := firstValueColumn; index < maxValueColumn; index += valueColumnStride {
		date, ok := ExcelSerialToDate(cellAt(dateRow, index))
		if !ok {
			continue
		}
		columns = append(columns, valueColumn{
			index:    index,
			provider: stringCell(cellAt(providerRow, index)),
			date:     date,
		})
	}
	return columns
}

func isCategoryName(name string) bool {
	for _, candidate := range CategoryNames {
		if name == candidate {
			return true
		}
	}
	return false
}

// cellAt reads a cell defensively from a possibly short row.
func cellAt(row []any, index int) any {
	if index < 0 || index >= len(row) {
		return nil
	}
	return row[index]
}

// stringCell renders a raw cell as a trimmed string.
func stringCell(cell any) string {
	switch v := cell.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	default:
		return ""
	}
}
