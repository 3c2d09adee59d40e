/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/flamego/flamego"
	"github.com/flamego/session"
	"github.com/flamego/template"

	"github.com/humaidq/vitalboard/biomarkers"
	"github.com/humaidq/vitalboard/db"
)

// NewPanelForm renders the manual lab panel entry form with every known
// biomarker grouped by category.
func NewPanelForm(c flamego.Context, t template.Template, data template.Data) {
	store, _ := loadStore(c.Request().Context())

	data["Categories"] = store.Categories
	data["Today"] = time.Now().UTC().Format("2006-01-02")
	data["PageTitle"] = "New Lab Panel"

	t.HTML(http.StatusOK, "panel_new")
}

// CreatePanel applies a manually entered lab panel to the store and
// saves the result as a new snapshot.
func CreatePanel(c flamego.Context, s session.Session) {
	if err := c.Request().ParseForm(); err != nil {
		SetErrorFlash(s, "Invalid form submission")
		c.Redirect("/panels/new", http.StatusSeeOther)
		return
	}

	ctx := c.Request().Context()
	store, _ := loadStore(ctx)

	panel, err := parsePanelForm(c.Request().Form, store)
	if err != nil {
		SetErrorFlash(s, panelFormErrorMessage(err))
		c.Redirect("/panels/new", http.StatusSeeOther)
		return
	}

	next := biomarkers.AddMeasurement(store, panel)

	if _, err := db.SaveBiomarkerSnapshot(ctx, next); err != nil {
		logger.Error("Failed to save biomarker snapshot", "error", err)
		SetErrorFlash(s, "Failed to save the lab panel")
		c.Redirect("/panels/new", http.StatusSeeOther)
		return
	}

	if _, err := db.RecordLabPanel(ctx, panel); err != nil {
		// The snapshot is already durable; losing the audit row is
		// logged but not surfaced.
		logger.Warn("Failed to record lab panel audit row", "error", err)
	}

	SetSuccessFlash(s, "Lab panel recorded")
	c.Redirect("/", http.StatusSeeOther)
}

// parsePanelForm extracts a lab panel from form values. Result fields
// are named result_<biomarker-id>; blank fields mean "not reported" and
// produce no entry, while the literal "X" records an explicit no-data
// result.
func parsePanelForm(form url.Values, store biomarkers.Store) (biomarkers.LabPanel, error) {
	var panel biomarkers.LabPanel

	date := strings.TrimSpace(form.Get("date"))
	if date == "" {
		return panel, errMissingDate
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return panel, errInvalidDate
	}

	provider := strings.TrimSpace(form.Get("provider"))
	if provider == "" {
		return panel, errMissingProvider
	}

	panel.Date = date
	panel.Provider = provider

	for _, category := range store.Categories {
		for _, biomarker := range category.Biomarkers {
			raw := strings.TrimSpace(form.Get("result_" + biomarker.ID))
			if raw == "" {
				continue
			}

			if strings.EqualFold(raw, "x") {
				panel.Results = append(panel.Results, biomarkers.PanelResult{BiomarkerID: biomarker.ID})
				continue
			}

			value, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", ""), 64)
			if err != nil {
				return biomarkers.LabPanel{}, errInvalidResultValue
			}
			panel.Results = append(panel.Results, biomarkers.PanelResult{BiomarkerID: biomarker.ID, Value: &value})
		}
	}

	if len(panel.Results) == 0 {
		return biomarkers.LabPanel{}, errNoPanelResults
	}

	return panel, nil
}

func panelFormErrorMessage(err error) string {
	switch err {
	case errMissingDate:
		return "Panel date is required"
	case errInvalidDate:
		return "Panel date must be YYYY-MM-DD"
	case errMissingProvider:
		return "Provider is required"
	case errNoPanelResults:
		return "Enter at least one result"
	case errInvalidResultValue:
		return "Results must be numbers (or X for no data)"
	default:
		return "Invalid panel submission"
	}
}
