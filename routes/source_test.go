// SPDX-FileCopyrightText: 2025 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package routes

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/humaidq/vitalboard/biomarkers"
)

func TestSampleStoreDecodes(t *testing.T) {
	var store biomarkers.Store
	if err := json.Unmarshal(sampleStoreJSON, &store); err != nil {
		t.Fatalf("embedded sample store does not decode: %v", err)
	}

	if len(store.Categories) == 0 {
		t.Fatalf("sample store has no categories")
	}

	for _, category := range store.Categories {
		if category.ID == "" || category.Name == "" {
			t.Fatalf("sample category missing identity: %+v", category)
		}
		for _, biomarker := range category.Biomarkers {
			if biomarker.ID != biomarkers.Slug(biomarker.Name) {
				t.Fatalf("sample biomarker id %q does not match slug of %q", biomarker.ID, biomarker.Name)
			}
		}
	}
}

// With no workbook configured and no database pool, the chain lands on
// the embedded sample.
func TestLoadStoreFallsBackToSample(t *testing.T) {
	previous := cfg
	Configure(Config{})
	defer Configure(previous)

	store, source := loadStore(context.Background())
	if source != SourceSample {
		t.Fatalf("expected sample source, got %q", source)
	}
	if len(store.Categories) == 0 {
		t.Fatalf("expected sample categories")
	}
}

func TestLoadStoreMissingWorkbookFallsThrough(t *testing.T) {
	previous := cfg
	Configure(Config{WorkbookPath: "/nonexistent/bloodwork.xlsx"})
	defer Configure(previous)

	_, source := loadStore(context.Background())
	if source != SourceSample {
		t.Fatalf("expected fall-through to sample, got %q", source)
	}
}

func TestLoadMetricsUnconfigured(t *testing.T) {
	previous := cfg
	Configure(Config{})
	defer Configure(previous)

	if records := loadMetrics(); records != nil {
		t.Fatalf("expected nil records without a metrics path, got %d", len(records))
	}
}
