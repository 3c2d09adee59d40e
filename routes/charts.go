/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"bytes"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/humaidq/vitalboard/biomarkers"
	"github.com/humaidq/vitalboard/metrics"
)

// biomarkerChart renders a biomarker's measurement history as a line
// chart with the optimal range drawn as dashed mark lines.
func biomarkerChart(b biomarkers.Biomarker) (string, error) {
	points := biomarkers.ChartSeries(b)
	if len(points) == 0 {
		return "", nil
	}

	xAxis := make([]string, 0, len(points))
	yData := make([]opts.LineData, 0, len(points))
	dataMin := points[0].Value
	dataMax := points[0].Value

	for _, point := range points {
		xAxis = append(xAxis, formatChartDate(point.Date))
		yData = append(yData, opts.LineData{Value: point.Value})

		if point.Value < dataMin {
			dataMin = point.Value
		}
		if point.Value > dataMax {
			dataMax = point.Value
		}
	}

	spec := biomarkers.ParseRange(b.OptimalRange)

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: b.Name,
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show: opts.Bool(true),
		}),
		charts.WithLegendOpts(opts.Legend{
			Show: opts.Bool(false),
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: b.Unit,
			Min:  chartAxisMin(spec, dataMin),
			Max:  chartAxisMax(spec, dataMax),
		}),
	)

	seriesOpts := []charts.SeriesOpts{
		charts.WithLineChartOpts(opts.LineChart{
			Smooth:     opts.Bool(true),
			ShowSymbol: opts.Bool(true),
		}),
	}

	if markLines := rangeMarkLines(spec); len(markLines) > 0 {
		seriesOpts = append(seriesOpts, func(s *charts.SingleSeries) {
			s.MarkLines = &opts.MarkLines{
				Data: markLines,
				MarkLineStyle: opts.MarkLineStyle{
					Symbol: []string{"none", "none"},
					LineStyle: &opts.LineStyle{
						Color: "rgba(128, 128, 128, 0.6)",
						Type:  "dashed",
						Width: 1.5,
					},
				},
			}
		})
	}

	line.SetXAxis(xAxis).
		AddSeries(b.Name, yData).
		SetSeriesOptions(seriesOpts...)

	var buf bytes.Buffer
	if err := line.Render(&buf); err != nil {
		return "", err
	}

	return buf.String(), nil
}

// rangeMarkLines maps a parsed range onto horizontal chart lines. A
// greater-than range draws only its lower bound; the doubled Max exists
// for axis scaling, not as a line.
func rangeMarkLines(spec *biomarkers.RangeSpec) []interface{} {
	if spec == nil {
		return nil
	}

	switch spec.Mode {
	case biomarkers.RangeLessThan:
		return []interface{}{
			opts.MarkLineNameYAxisItem{Name: "Upper limit", YAxis: spec.Max},
		}
	case biomarkers.RangeGreaterThan:
		return []interface{}{
			opts.MarkLineNameYAxisItem{Name: "Lower limit", YAxis: spec.Min},
		}
	case biomarkers.RangePoint:
		return []interface{}{
			opts.MarkLineNameYAxisItem{Name: "Target", YAxis: spec.Max},
		}
	default:
		return []interface{}{
			opts.MarkLineNameYAxisItem{Name: "Optimal min", YAxis: spec.Min},
			opts.MarkLineNameYAxisItem{Name: "Optimal max", YAxis: spec.Max},
		}
	}
}

// chartAxisMin pads the y-axis so the optimal range is always visible.
func chartAxisMin(spec *biomarkers.RangeSpec, dataMin float64) interface{} {
	if spec == nil {
		return nil
	}

	min := spec.Min
	if dataMin < min {
		min = dataMin
	}

	padding := (spec.Max - spec.Min) * 0.1
	if padding <= 0 {
		padding = min * 0.1
	}

	return min - padding
}

func chartAxisMax(spec *biomarkers.RangeSpec, dataMax float64) interface{} {
	if spec == nil {
		return nil
	}

	max := spec.Max
	if dataMax > max {
		max = dataMax
	}

	padding := (spec.Max - spec.Min) * 0.1
	if padding <= 0 {
		padding = max * 0.1
	}

	return max + padding
}

// metricChart renders one daily metric series as a line chart.
func metricChart(title, unit string, points []metrics.Point) (string, error) {
	if len(points) == 0 {
		return "", nil
	}

	xAxis := make([]string, 0, len(points))
	yData := make([]opts.LineData, 0, len(points))
	for _, point := range points {
		xAxis = append(xAxis, formatChartDate(point.Date))
		yData = append(yData, opts.LineData{Value: point.Value})
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: title,
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show: opts.Bool(true),
		}),
		charts.WithLegendOpts(opts.Legend{
			Show: opts.Bool(false),
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: unit,
		}),
	)

	line.SetXAxis(xAxis).
		AddSeries(title, yData).
		SetSeriesOptions(
			charts.WithLineChartOpts(opts.LineChart{
				Smooth:     opts.Bool(true),
				ShowSymbol: opts.Bool(false),
			}),
		)

	var buf bytes.Buffer
	if err := line.Render(&buf); err != nil {
		return "", err
	}

	return buf.String(), nil
}

// formatChartDate renders an ISO date for axis labels. Unparseable
// dates pass through untouched.
func formatChartDate(date string) string {
	parsed, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return parsed.Format("Jan 2, 2006")
}
