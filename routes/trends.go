/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	htmltemplate "html/template"
	"net/http"

	"github.com/flamego/flamego"
	"github.com/flamego/template"

	"github.com/humaidq/vitalboard/metrics"
)

// trendSpecs lists the daily metric charts on the trends page in
// display order.
var trendSpecs = []struct {
	metric metrics.Metric
	title  string
	unit   string
}{
	{metric: metrics.MetricRecovery, title: "Recovery Score", unit: "%"},
	{metric: metrics.MetricHRV, title: "Heart Rate Variability", unit: "ms"},
	{metric: metrics.MetricRestingHR, title: "Resting Heart Rate", unit: "bpm"},
	{metric: metrics.MetricSleepHours, title: "Sleep Duration", unit: "h"},
	{metric: metrics.MetricStrain, title: "Strain", unit: ""},
	{metric: metrics.MetricSteps, title: "Steps", unit: ""},
	{metric: metrics.MetricWeight, title: "Weight", unit: "kg"},
	{metric: metrics.MetricGlucoseAvg, title: "Average Glucose", unit: "mg/dL"},
	{metric: metrics.MetricTimeInRange, title: "Glucose Time in Range", unit: "%"},
}

// Trends renders line charts for each available daily metric series.
func Trends(c flamego.Context, t template.Template, data template.Data) {
	records := loadMetrics()
	if len(records) == 0 {
		data["NoData"] = true
		data["PageTitle"] = "Trends"
		t.HTML(http.StatusOK, "trends")
		return
	}

	var chartsHTML []htmltemplate.HTML
	for _, spec := range trendSpecs {
		points := metrics.SeriesFor(records, spec.metric)
		if len(points) == 0 {
			continue
		}

		chart, err := metricChart(spec.title, spec.unit, points)
		if err != nil {
			logger.Error("Failed to render metric chart", "metric", spec.metric, "error", err)
			continue
		}
		chartsHTML = append(chartsHTML, htmltemplate.HTML(chart))
	}

	data["Charts"] = chartsHTML
	data["PageTitle"] = "Trends"

	t.HTML(http.StatusOK, "trends")
}
