/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package biomarkers

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// Days between the spreadsheet serial epoch (Dec 30 1899) and the Unix
// epoch, and seconds per serial day.
const (
	excelEpochOffsetDays = 25569
	secondsPerDay        = 86400
)

// NumericCell converts a raw grid cell into a numeric value. Absent cells,
// empty strings, the case-insensitive "X" sentinel, unparseable strings
// and NaN all become nil. This is the single boundary where spreadsheet
// sentinels turn into absence; nothing downstream sees them.
func NumericCell(cell any) *float64 {
	switch v := cell.(type) {
	case nil:
		return nil
	case float64:
		if math.IsNaN(v) {
			return nil
		}
		value := v
		return &value
	case float32:
		return NumericCell(float64(v))
	case int:
		value := float64(v)
		return &value
	case int64:
		value := float64(v)
		return &value
	case string:
		s := strings.TrimSpace(v)
		if s == "" || strings.EqualFold(s, "x") {
			return nil
		}
		s = strings.ReplaceAll(s, ",", "")
		value, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsNaN(value) {
			return nil
		}
		return &value
	default:
		return nil
	}
}

// ExcelSerialToDate converts a spreadsheet date serial into a calendar
// date string ("2006-01-02", UTC). Only numeric serials >= 1 are
// accepted; anything else reports false.
func ExcelSerialToDate(cell any) (string, bool) {
	var serial float64
	switch v := cell.(type) {
	case float64:
		serial = v
	case float32:
		serial = float64(v)
	case int:
		serial = float64(v)
	case int64:
		serial = float64(v)
	default:
		return "", false
	}

	if math.IsNaN(serial) || serial < 1 {
		return "", false
	}

	unix := (serial - excelEpochOffsetDays) * secondsPerDay
	return time.Unix(int64(unix), 0).UTC().Format("2006-01-02"), true
}
