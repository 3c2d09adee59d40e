/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package biomarkers

import "sort"

// Stats is the per-category rollup over each biomarker's latest
// measurement. Total counts every biomarker, with or without data.
type Stats struct {
	Total      int
	InRange    int
	OutOfRange int
	NoData     int
}

// Status is the traffic-light summary of a category.
type Status string

// Category status values.
const (
	StatusGreen  Status = "green"
	StatusYellow Status = "yellow"
	StatusRed    Status = "red"
)

// Rollup is the dashboard-wide tally over every biomarker's latest
// measurement, with percentages for the summary bar.
type Rollup struct {
	Total             int
	Optimal           int
	OutOfRange        int
	OptimalPercent    float64
	OutOfRangePercent float64
}

// BiomarkerRow is a biomarker prepared for tabular display with its
// latest measurement and classification.
type BiomarkerRow struct {
	Biomarker
	Latest  *Measurement
	InRange *bool
}

// ChartPoint is one plottable measurement; absent values never reach a
// chart.
type ChartPoint struct {
	Date    string  `json:"date"`
	Value   float64 `json:"value"`
	InRange *bool   `json:"inRange"`
}

// LatestMeasurement returns the measurement with the maximum date. Ties
// keep the first-encountered entry so the result is deterministic. The
// second return is false for an empty history.
func LatestMeasurement(b Biomarker) (Measurement, bool) {
	if len(b.Measurements) == 0 {
		return Measurement{}, false
	}
	latest := b.Measurements[0]
	for _, m := range b.Measurements[1:] {
		if m.Date > latest.Date {
			latest = m
		}
	}
	return latest, true
}

// CategoryStats tallies each biomarker's latest measurement. A biomarker
// without measurements, with an absent latest value, or with an
// unparseable range counts as no-data.
func CategoryStats(c Category) Stats {
	stats := Stats{Total: len(c.Biomarkers)}
	for _, b := range c.Biomarkers {
		latest, ok := LatestMeasurement(b)
		if !ok || latest.Value == nil {
			stats.NoData++
			continue
		}
		switch in := IsInRange(latest.Value, measurementRange(latest, b)); {
		case in == nil:
			stats.NoData++
		case *in:
			stats.InRange++
		default:
			stats.OutOfRange++
		}
	}
	return stats
}

// CategoryStatus maps rollup stats onto the three-tier traffic light:
// green only when everything is in range, red when more than half is out
// of range, yellow otherwise.
func CategoryStatus(s Stats) Status {
	if s.OutOfRange == 0 && s.InRange == s.Total {
		return StatusGreen
	}
	if float64(s.OutOfRange) > float64(s.Total)/2 {
		return StatusRed
	}
	return StatusYellow
}

// DashboardRollup scans every category's every biomarker's latest
// measurement into a single triple for the summary percentage bar.
func DashboardRollup(store Store) Rollup {
	var rollup Rollup
	for _, c := range store.Categories {
		stats := CategoryStats(c)
		rollup.Total += stats.Total
		rollup.Optimal += stats.InRange
		rollup.OutOfRange += stats.OutOfRange
	}
	if rollup.Total > 0 {
		rollup.OptimalPercent = float64(rollup.Optimal) / float64(rollup.Total) * 100
		rollup.OutOfRangePercent = float64(rollup.OutOfRange) / float64(rollup.Total) * 100
	}
	return rollup
}

// SortBiomarkersForDisplay orders a category's biomarkers for the table:
// out-of-range rows first, everything else after, alphabetical by name
// within each bucket.
func SortBiomarkersForDisplay(c Category) []BiomarkerRow {
	rows := make([]BiomarkerRow, 0, len(c.Biomarkers))
	for _, b := range c.Biomarkers {
		row := BiomarkerRow{Biomarker: b}
		if latest, ok := LatestMeasurement(b); ok {
			m := latest
			row.Latest = &m
			row.InRange = IsInRange(m.Value, measurementRange(m, b))
		}
		rows = append(rows, row)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		iOut := rows[i].InRange != nil && !*rows[i].InRange
		jOut := rows[j].InRange != nil && !*rows[j].InRange
		if iOut != jOut {
			return iOut
		}
		return rows[i].Name < rows[j].Name
	})

	return rows
}

// ChartSeries converts a biomarker's history into plottable points,
// ascending by date, dropping absent values entirely.
func ChartSeries(b Biomarker) []ChartPoint {
	points := make([]ChartPoint, 0, len(b.Measurements))
	for _, m := range b.Measurements {
		if m.Value == nil {
			continue
		}
		points = append(points, ChartPoint{
			Date:    m.Date,
			Value:   *m.Value,
			InRange: IsInRange(m.Value, measurementRange(m, b)),
		})
	}
	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Date < points[j].Date
	})
	return points
}
