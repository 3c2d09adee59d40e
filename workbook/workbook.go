/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */

// Package workbook reads the lab bloodwork spreadsheet into the raw cell
// grid consumed by the biomarkers package. It is an I/O boundary only: no
// interpretation of cells happens here beyond telling numbers from text.
package workbook

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/humaidq/vitalboard/biomarkers"
	"github.com/humaidq/vitalboard/logging"
)

var logger = logging.Logger(logging.SourceIngest)

// ErrSourceUnavailable reports that the workbook could not be read at
// all: missing file, unreadable archive, no sheets. Callers fall back to
// the next data source; a partial grid is never returned.
var ErrSourceUnavailable = errors.New("workbook source unavailable")

// ReadGrid opens the workbook at path and returns its first sheet as a
// raw grid. Numeric-looking cells are returned as float64 so date serials
// and results survive; everything else stays a string.
func ReadGrid(path string) (biomarkers.Grid, error) {
	file, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}

	defer func() {
		if err := file.Close(); err != nil {
			logger.Warn("Failed to close workbook", "path", path, "error", err)
		}
	}()

	sheets := file.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: workbook has no sheets", ErrSourceUnavailable)
	}

	rows, err := file.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}

	grid := make(biomarkers.Grid, len(rows))
	for i, row := range rows {
		cells := make([]any, len(row))
		for j, cell := range row {
			cells[j] = typedCell(cell)
		}
		grid[i] = cells
	}

	return grid, nil
}

// typedCell promotes numeric-looking raw cell text to float64. Range
// expressions like "70-99" fail the parse and stay strings.
func typedCell(cell string) any {
	if cell == "" {
		return ""
	}
	if value, err := strconv.ParseFloat(cell, 64); err == nil {
		return value
	}
	return cell
}
