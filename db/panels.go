/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package db

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/humaidq/vitalboard/biomarkers"
)

// LabPanelRecord is one manually entered panel as stored.
type LabPanelRecord struct {
	ID        uuid.UUID `db:"id"`
	PanelDate string    `db:"panel_date"`
	Provider  string    `db:"provider"`
	Results   []biomarkers.PanelResult
	CreatedAt time.Time `db:"created_at"`
}

// RecordLabPanel stores a manually entered lab panel for audit and
// returns its ID. The panel date must already be validated.
func RecordLabPanel(ctx context.Context, panel biomarkers.LabPanel) (uuid.UUID, error) {
	if pool == nil {
		return uuid.Nil, ErrDatabaseConnectionNotInitialized
	}

	raw, err := json.Marshal(panel.Results)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal panel results: %w", err)
	}

	var id uuid.UUID

	query := `
		INSERT INTO lab_panels (panel_date, provider, results)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	if err := pool.QueryRow(ctx, query, panel.Date, panel.Provider, raw).Scan(&id); err != nil {
		return uuid.Nil, fmt.Errorf("failed to record lab panel: %w", err)
	}

	logger.Info("Recorded lab panel", "id", id, "date", panel.Date, "provider", panel.Provider, "results", len(panel.Results))

	return id, nil
}

// ListLabPanels returns stored panels, newest panel date first.
func ListLabPanels(ctx context.Context) ([]LabPanelRecord, error) {
	if pool == nil {
		return nil, ErrDatabaseConnectionNotInitialized
	}

	query := `
		SELECT id, to_char(panel_date, 'YYYY-MM-DD'), provider, results, created_at
		FROM lab_panels
		ORDER BY panel_date DESC, created_at DESC
	`

	rows, err := pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list lab panels: %w", err)
	}
	defer rows.Close()

	var panels []LabPanelRecord
	for rows.Next() {
		var record LabPanelRecord
		var raw []byte
		if err := rows.Scan(&record.ID, &record.PanelDate, &record.Provider, &raw, &record.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan lab panel: %w", err)
		}
		if err := json.Unmarshal(raw, &record.Results); err != nil {
			return nil, fmt.Errorf("failed to unmarshal panel results: %w", err)
		}
		panels = append(panels, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating lab panels: %w", err)
	}

	return panels, nil
}
