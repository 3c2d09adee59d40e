/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */

// Package biomarkers holds the lab bloodwork model: parsing of the
// semi-structured spreadsheet grid, optimal-range expressions, in-range
// classification and the category/dashboard rollups. Everything here is a
// pure transformation over in-memory data; I/O stays at the callers.
package biomarkers

import (
	"strings"
	"time"
)

// Measurement is a single dated lab result. Value is nil when the source
// cell held no usable number; such measurements are never classified.
// OptimalRange is stored per measurement because the range in the source
// spreadsheet can change between lab panels.
type Measurement struct {
	Date         string   `json:"date"`
	Value        *float64 `json:"value"`
	Provider     string   `json:"provider"`
	OptimalRange string   `json:"optimalRange"`
}

// Biomarker is a named lab test with its measurement history. Measurement
// order is not guaranteed; consumers sort by date where it matters.
type Biomarker struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Unit         string        `json:"unit,omitempty"`
	OptimalRange string        `json:"optimalRange"`
	Measurements []Measurement `json:"measurements"`
}

// Category groups biomarkers in spreadsheet encounter order.
type Category struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	Biomarkers []Biomarker `json:"biomarkers"`
}

// Store is the root aggregate and the unit of persistence. It is replaced
// wholesale on mutation; holders of a previous value stay consistent.
type Store struct {
	Categories  []Category `json:"categories"`
	LastUpdated time.Time  `json:"lastUpdated"`
}

// PanelResult is one biomarker's value in a manually entered lab panel.
// A nil Value records an explicit "no data this round" entry, distinct
// from the biomarker not being reported at all.
type PanelResult struct {
	BiomarkerID string   `json:"biomarkerId"`
	Value       *float64 `json:"value"`
}

// LabPanel is an incremental set of dated results from one provider.
type LabPanel struct {
	Date     string        `json:"date"`
	Provider string        `json:"provider"`
	Results  []PanelResult `json:"results"`
}

// Slug derives a stable identifier from a display name: lowercase,
// hyphenated, alphanumeric only.
func Slug(name string) string {
	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// Clone returns a deep copy of the measurement, including the value.
func (m Measurement) Clone() Measurement {
	out := m
	if m.Value != nil {
		v := *m.Value
		out.Value = &v
	}
	return out
}

// Clone returns a deep copy of the biomarker and its measurements.
func (b Biomarker) Clone() Biomarker {
	out := b
	if b.Measurements != nil {
		out.Measurements = make([]Measurement, len(b.Measurements))
		for i, m := range b.Measurements {
			out.Measurements[i] = m.Clone()
		}
	}
	return out
}

// Clone returns a deep copy of the category.
func (c Category) Clone() Category {
	out := c
	if c.Biomarkers != nil {
		out.Biomarkers = make([]Biomarker, len(c.Biomarkers))
		for i, b := range c.Biomarkers {
			out.Biomarkers[i] = b.Clone()
		}
	}
	return out
}

// Clone returns a deep copy of the whole store.
func (s Store) Clone() Store {
	out := s
	if s.Categories != nil {
		out.Categories = make([]Category, len(s.Categories))
		for i, c := range s.Categories {
			out.Categories[i] = c.Clone()
		}
	}
	return out
}

// FindBiomarker returns the biomarker with the given id, if present.
func (s Store) FindBiomarker(id string) (Category, Biomarker, bool) {
	for _, c := range s.Categories {
		for _, b := range c.Biomarkers {
			if b.ID == id {
				return c, b, true
			}
		}
	}
	return Category{}, Biomarker{}, false
}

// FindCategory returns the category with the given id, if present.
func (s Store) FindCategory(id string) (Category, bool) {
	for _, c := range s.Categories {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}

// AddMeasurement appends one dated measurement to every biomarker whose id
// appears in the panel's results and returns the resulting store snapshot.
// The input store is never modified. Ids the store does not know are
// ignored; a panel is an evolving partial payload, not a schema.
func AddMeasurement(store Store, panel LabPanel) Store {
	next := store.Clone()

	values := make(map[string]*float64, len(panel.Results))
	for _, r := range panel.Results {
		values[r.BiomarkerID] = r.Value
	}

	for ci := range next.Categories {
		biomarkers := next.Categories[ci].Biomarkers
		for bi := range biomarkers {
			value, ok := values[biomarkers[bi].ID]
			if !ok {
				continue
			}
			m := Measurement{
				Date:         panel.Date,
				Provider:     panel.Provider,
				OptimalRange: biomarkers[bi].OptimalRange,
			}
			if value != nil {
				v := *value
				m.Value = &v
			}
			biomarkers[bi].Measurements = append(biomarkers[bi].Measurements, m)
		}
	}

	next.LastUpdated = time.Now().UTC()

	return next
}
