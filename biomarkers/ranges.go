/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package biomarkers

import (
	"math"
	"strconv"
	"strings"
)

// RangeMode describes how a parsed optimal-range expression is compared
// against a value.
type RangeMode int

// Range comparison modes.
const (
	RangeBounded RangeMode = iota
	RangeLessThan
	RangeGreaterThan
	RangePoint
)

// RangeSpec is the numeric form of an optimal-range expression. It is
// derived on demand; the expression string stays the ground truth. For
// RangeGreaterThan, Max holds double the threshold as a chart-bounds
// convenience and must not be used for classification.
type RangeSpec struct {
	Min  float64
	Max  float64
	Mode RangeMode
}

// ParseRange parses an optimal-range expression into a RangeSpec. It
// recognizes, in order: "min-max", "min<>max", "<threshold", ">threshold"
// and a bare number. Commas are thousands separators and are stripped.
// Empty strings and the "X"/"nan" sentinels, as well as anything
// unparseable, yield nil. First match wins; the precedence mirrors the
// provider export formats and downstream classification depends on it.
func ParseRange(expr string) *RangeSpec {
	s := strings.TrimSpace(expr)
	if s == "" {
		return nil
	}
	switch strings.ToLower(s) {
	case "x", "nan":
		return nil
	}

	s = strings.ReplaceAll(s, ",", "")

	// "min-max"; the delimiter must not be a leading sign.
	if i := strings.Index(s, "-"); i > 0 {
		min, minErr := parseRangeNumber(s[:i])
		max, maxErr := parseRangeNumber(s[i+1:])
		if minErr == nil && maxErr == nil {
			return &RangeSpec{Min: min, Max: max, Mode: RangeBounded}
		}
	}

	// "min<>max", an alternate delimiter seen in some provider exports.
	if i := strings.Index(s, "<>"); i >= 0 {
		min, minErr := parseRangeNumber(s[:i])
		max, maxErr := parseRangeNumber(s[i+2:])
		if minErr == nil && maxErr == nil {
			return &RangeSpec{Min: min, Max: max, Mode: RangeBounded}
		}
	}

	// "<threshold"
	if rest, ok := strings.CutPrefix(s, "<"); ok {
		if threshold, err := parseRangeNumber(rest); err == nil {
			return &RangeSpec{Min: 0, Max: threshold, Mode: RangeLessThan}
		}
	}

	// ">threshold"; the doubled max only serves chart bounds.
	if rest, ok := strings.CutPrefix(s, ">"); ok {
		if threshold, err := parseRangeNumber(rest); err == nil {
			return &RangeSpec{Min: threshold, Max: threshold * 2, Mode: RangeGreaterThan}
		}
	}

	// A bare number is a point target.
	if value, err := parseRangeNumber(s); err == nil {
		return &RangeSpec{Min: value, Max: value, Mode: RangePoint}
	}

	return nil
}

func parseRangeNumber(s string) (float64, error) {
	value, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(value) {
		return 0, strconv.ErrSyntax
	}
	return value, nil
}
