/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */

// Package metrics models the unified daily health metrics produced by the
// wearable/CGM consolidation job: one record per calendar day merging
// Whoop recovery and sleep, Garmin activity and weight, and Lingo CGM
// glucose aggregates. The dashboard reads this file; it never talks to
// the provider APIs directly.
package metrics

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
)

// ErrSourceUnavailable reports that the unified metrics file could not
// be read. Callers render the no-data state instead of failing.
var ErrSourceUnavailable = errors.New("unified metrics unavailable")

// WhoopDay holds one day's recovery, HRV and sleep figures.
type WhoopDay struct {
	RecoveryScore    *float64 `json:"recoveryScore,omitempty"`
	HRVMs            *float64 `json:"hrvMs,omitempty"`
	RestingHeartRate *float64 `json:"restingHeartRate,omitempty"`
	SleepHours       *float64 `json:"sleepHours,omitempty"`
	SleepPerformance *float64 `json:"sleepPerformance,omitempty"`
	Strain           *float64 `json:"strain,omitempty"`
}

// GarminDay holds one day's activity and body composition figures.
type GarminDay struct {
	Steps    *float64 `json:"steps,omitempty"`
	Calories *float64 `json:"calories,omitempty"`
	Weight   *float64 `json:"weight,omitempty"`
	BodyFat  *float64 `json:"bodyFat,omitempty"`
}

// GlucoseDay holds one day's CGM aggregates.
type GlucoseDay struct {
	Average            *float64 `json:"average,omitempty"`
	Min                *float64 `json:"min,omitempty"`
	Max                *float64 `json:"max,omitempty"`
	Readings           int      `json:"readings,omitempty"`
	TimeInRangePercent *float64 `json:"timeInRangePercent,omitempty"`
}

// DayRecord is one merged day across all providers. Sections a provider
// did not report stay zero-valued.
type DayRecord struct {
	Date    string     `json:"date"`
	Whoop   WhoopDay   `json:"whoop"`
	Garmin  GarminDay  `json:"garmin"`
	Glucose GlucoseDay `json:"glucose"`
}

// Unified is the consolidated metrics document.
type Unified struct {
	GeneratedAt string      `json:"generatedAt,omitempty"`
	DailyData   []DayRecord `json:"dailyData"`
}

// Metric identifies one plottable daily series.
type Metric string

// Supported daily metric series.
const (
	MetricRecovery    Metric = "recovery"
	MetricHRV         Metric = "hrv"
	MetricRestingHR   Metric = "resting_hr"
	MetricSleepHours  Metric = "sleep_hours"
	MetricStrain      Metric = "strain"
	MetricSteps       Metric = "steps"
	MetricWeight      Metric = "weight"
	MetricGlucoseAvg  Metric = "glucose_avg"
	MetricTimeInRange Metric = "time_in_range"
)

// Point is one dated metric value.
type Point struct {
	Date  string
	Value float64
}

// LoadUnified reads the consolidated metrics document from path. A
// missing or malformed file reports ErrSourceUnavailable.
func LoadUnified(path string) (*Unified, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}

	var unified Unified
	if err := json.Unmarshal(raw, &unified); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}

	sort.SliceStable(unified.DailyData, func(i, j int) bool {
		return unified.DailyData[i].Date < unified.DailyData[j].Date
	})

	return &unified, nil
}

// value extracts the metric's value from a day record, if present.
func (m Metric) value(day DayRecord) *float64 {
	switch m {
	case MetricRecovery:
		return day.Whoop.RecoveryScore
	case MetricHRV:
		return day.Whoop.HRVMs
	case MetricRestingHR:
		return day.Whoop.RestingHeartRate
	case MetricSleepHours:
		return day.Whoop.SleepHours
	case MetricStrain:
		return day.Whoop.Strain
	case MetricSteps:
		return day.Garmin.Steps
	case MetricWeight:
		return day.Garmin.Weight
	case MetricGlucoseAvg:
		return day.Glucose.Average
	case MetricTimeInRange:
		return day.Glucose.TimeInRangePercent
	default:
		return nil
	}
}

// SeriesFor returns the metric's dated values ascending by date. Days
// without the metric are skipped; charts never plot absent values.
func SeriesFor(records []DayRecord, metric Metric) []Point {
	points := make([]Point, 0, len(records))
	for _, day := range records {
		if value := metric.value(day); value != nil {
			points = append(points, Point{Date: day.Date, Value: *value})
		}
	}
	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Date < points[j].Date
	})
	return points
}

// Latest returns the most recent day on which the metric was reported.
func Latest(records []DayRecord, metric Metric) (Point, bool) {
	var latest Point
	found := false
	for _, day := range records {
		value := metric.value(day)
		if value == nil {
			continue
		}
		if !found || day.Date > latest.Date {
			latest = Point{Date: day.Date, Value: *value}
			found = true
		}
	}
	return latest, found
}
