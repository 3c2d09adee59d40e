/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"fmt"
	"net/http"

	"github.com/flamego/flamego"
	"github.com/flamego/template"

	"github.com/humaidq/vitalboard/biomarkers"
	"github.com/humaidq/vitalboard/metrics"
)

// CategoryCard is one category tile on the dashboard.
type CategoryCard struct {
	ID     string
	Name   string
	Stats  biomarkers.Stats
	Status biomarkers.Status
}

// MetricCard is one daily metric tile on the dashboard.
type MetricCard struct {
	Label string
	Value string
	Date  string
}

// Home renders the dashboard: category tiles, the overall rollup bar
// and the latest daily metrics.
func Home(c flamego.Context, t template.Template, data template.Data) {
	store, source := loadStore(c.Request().Context())

	cards := make([]CategoryCard, 0, len(store.Categories))
	for _, category := range store.Categories {
		stats := biomarkers.CategoryStats(category)
		cards = append(cards, CategoryCard{
			ID:     category.ID,
			Name:   category.Name,
			Stats:  stats,
			Status: biomarkers.CategoryStatus(stats),
		})
	}

	data["Categories"] = cards
	data["Rollup"] = biomarkers.DashboardRollup(store)
	data["Source"] = source
	if !store.LastUpdated.IsZero() {
		data["LastUpdated"] = store.LastUpdated.Format("Jan 2, 2006")
	}

	if records := loadMetrics(); len(records) > 0 {
		data["MetricCards"] = buildMetricCards(records)
	}

	data["IsHome"] = true
	t.HTML(http.StatusOK, "home")
}

func buildMetricCards(records []metrics.DayRecord) []MetricCard {
	specs := []struct {
		metric metrics.Metric
		label  string
		format string
	}{
		{metric: metrics.MetricRecovery, label: "Recovery", format: "%.0f%%"},
		{metric: metrics.MetricSleepHours, label: "Sleep", format: "%.1f h"},
		{metric: metrics.MetricSteps, label: "Steps", format: "%.0f"},
		{metric: metrics.MetricWeight, label: "Weight", format: "%.1f kg"},
		{metric: metrics.MetricGlucoseAvg, label: "Avg Glucose", format: "%.0f mg/dL"},
	}

	cards := make([]MetricCard, 0, len(specs))
	for _, spec := range specs {
		latest, ok := metrics.Latest(records, spec.metric)
		if !ok {
			continue
		}
		cards = append(cards, MetricCard{
			Label: spec.label,
			Value: fmt.Sprintf(spec.format, latest.Value),
			Date:  formatChartDate(latest.Date),
		})
	}

	return cards
}
