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

	"github.com/humaidq/vitalboard/biomarkers"
)

// CategoryPage renders one category's biomarker table, out-of-range
// rows first.
func CategoryPage(c flamego.Context, t template.Template, data template.Data) {
	store, _ := loadStore(c.Request().Context())

	category, ok := store.FindCategory(c.Param("id"))
	if !ok {
		data["Error"] = "Category not found"
		t.HTML(http.StatusNotFound, "category")
		return
	}

	stats := biomarkers.CategoryStats(category)

	data["Category"] = category
	data["Stats"] = stats
	data["Status"] = biomarkers.CategoryStatus(stats)
	data["Rows"] = biomarkers.SortBiomarkersForDisplay(category)
	data["PageTitle"] = category.Name

	t.HTML(http.StatusOK, "category")
}

// BiomarkerPage renders a biomarker's history chart and measurement
// table.
func BiomarkerPage(c flamego.Context, t template.Template, data template.Data) {
	store, _ := loadStore(c.Request().Context())

	category, biomarker, ok := store.FindBiomarker(c.Param("id"))
	if !ok {
		data["Error"] = "Biomarker not found"
		t.HTML(http.StatusNotFound, "biomarker")
		return
	}

	chart, err := biomarkerChart(biomarker)
	if err != nil {
		logger.Error("Failed to render biomarker chart", "biomarker", biomarker.ID, "error", err)
	} else if chart != "" {
		data["Chart"] = htmltemplate.HTML(chart)
	}

	rows := make([]measurementRow, 0, len(biomarker.Measurements))
	for i := len(biomarker.Measurements) - 1; i >= 0; i-- {
		m := biomarker.Measurements[i]
		rows = append(rows, measurementRow{
			Measurement: m,
			InRange:     biomarkers.IsInRange(m.Value, rangeForDisplay(m, biomarker)),
		})
	}

	data["Category"] = category
	data["Biomarker"] = biomarker
	data["Measurements"] = rows
	data["PageTitle"] = biomarker.Name

	t.HTML(http.StatusOK, "biomarker")
}

type measurementRow struct {
	biomarkers.Measurement
	InRange *bool
}

// rangeForDisplay prefers the range recorded with the measurement over
// the biomarker's current one.
func rangeForDisplay(m biomarkers.Measurement, b biomarkers.Biomarker) string {
	if m.OptimalRange != "" {
		return m.OptimalRange
	}
	return b.OptimalRange
}
