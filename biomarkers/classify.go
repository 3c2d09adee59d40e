/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package biomarkers

import "math"

// IsInRange classifies a value against an optimal-range expression.
// It returns nil when the value is absent or NaN, or when the range
// expression does not parse: such measurements are indeterminate, never
// in or out of range. Bounds are inclusive. For greater-than ranges the
// un-doubled threshold (Min) is compared, never the display Max.
func IsInRange(value *float64, rangeExpr string) *bool {
	if value == nil || math.IsNaN(*value) {
		return nil
	}

	spec := ParseRange(rangeExpr)
	if spec == nil {
		return nil
	}

	v := *value
	var in bool
	switch spec.Mode {
	case RangeLessThan:
		in = v <= spec.Max
	case RangeGreaterThan:
		in = v >= spec.Min
	default:
		in = v >= spec.Min && v <= spec.Max
	}

	return &in
}

// measurementRange picks the range a measurement is judged against: its
// own stored range, falling back to the biomarker's current range when
// the measurement's is unset.
func measurementRange(m Measurement, b Biomarker) string {
	if m.OptimalRange != "" {
		return m.OptimalRange
	}
	return b.OptimalRange
}
