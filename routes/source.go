/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"os"

	"github.com/humaidq/vitalboard/biomarkers"
	"github.com/humaidq/vitalboard/db"
	"github.com/humaidq/vitalboard/metrics"
	"github.com/humaidq/vitalboard/workbook"
)

// Config carries the file paths the handlers read data from.
type Config struct {
	// WorkbookPath is the bloodwork spreadsheet. Empty disables the
	// workbook source.
	WorkbookPath string

	// MetricsPath is the unified daily metrics JSON. Empty disables
	// the daily metrics cards and trend pages.
	MetricsPath string
}

var cfg Config

// Configure sets the data source paths for all handlers.
func Configure(c Config) {
	cfg = c
}

// Data source names reported on the dashboard.
const (
	SourceWorkbook = "workbook"
	SourceSnapshot = "snapshot"
	SourceSample   = "sample"
)

//go:embed sample_biomarkers.json
var sampleStoreJSON []byte

// loadStore returns the biomarker store from the first available
// source: the workbook, then the latest saved snapshot, then the
// embedded sample data.
func loadStore(ctx context.Context) (biomarkers.Store, string) {
	if cfg.WorkbookPath != "" {
		store, err := loadWorkbookStore(cfg.WorkbookPath)
		if err == nil {
			return store, SourceWorkbook
		}
		logger.Warn("Workbook source unavailable", "path", cfg.WorkbookPath, "error", err)
	}

	store, err := db.GetLatestBiomarkerSnapshot(ctx)
	if err == nil {
		return store, SourceSnapshot
	}
	if !errors.Is(err, db.ErrNoSnapshot) && !errors.Is(err, db.ErrDatabaseConnectionNotInitialized) {
		logger.Warn("Snapshot source unavailable", "error", err)
	}

	return sampleStore(), SourceSample
}

func loadWorkbookStore(path string) (biomarkers.Store, error) {
	var store biomarkers.Store

	grid, err := workbook.ReadGrid(path)
	if err != nil {
		return store, err
	}

	categories := biomarkers.ParseGrid(grid)
	if len(categories) == 0 {
		return store, workbook.ErrSourceUnavailable
	}

	store.Categories = categories
	if info, err := os.Stat(path); err == nil {
		store.LastUpdated = info.ModTime().UTC()
	}

	return store, nil
}

// sampleStore decodes the embedded demo store. The embedded document is
// validated by tests, so a decode failure yields an empty store rather
// than a panic.
func sampleStore() biomarkers.Store {
	var store biomarkers.Store
	if err := json.Unmarshal(sampleStoreJSON, &store); err != nil {
		logger.Error("Failed to decode embedded sample store", "error", err)
	}
	return store
}

// loadMetrics returns the unified daily metrics, or nil when the source
// is not configured or unavailable.
func loadMetrics() []metrics.DayRecord {
	if cfg.MetricsPath == "" {
		return nil
	}

	unified, err := metrics.LoadUnified(cfg.MetricsPath)
	if err != nil {
		logger.Warn("Daily metrics unavailable", "path", cfg.MetricsPath, "error", err)
		return nil
	}

	return unified.DailyData
}
