/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/humaidq/vitalboard/biomarkers"
)

// SnapshotInfo identifies one saved biomarker store snapshot.
type SnapshotInfo struct {
	ID        uuid.UUID `db:"id"`
	CreatedAt time.Time `db:"created_at"`
}

// SaveBiomarkerSnapshot stores the full biomarker store as a new
// snapshot row and returns its ID.
func SaveBiomarkerSnapshot(ctx context.Context, store biomarkers.Store) (uuid.UUID, error) {
	if pool == nil {
		return uuid.Nil, ErrDatabaseConnectionNotInitialized
	}

	raw, err := json.Marshal(store)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal biomarker store: %w", err)
	}

	var id uuid.UUID

	query := `
		INSERT INTO biomarker_snapshots (snapshot)
		VALUES ($1)
		RETURNING id
	`

	if err := pool.QueryRow(ctx, query, raw).Scan(&id); err != nil {
		return uuid.Nil, fmt.Errorf("failed to save biomarker snapshot: %w", err)
	}

	logger.Info("Saved biomarker snapshot", "id", id, "categories", len(store.Categories))

	return id, nil
}

// GetLatestBiomarkerSnapshot returns the most recently saved biomarker
// store. ErrNoSnapshot is returned when none has been saved yet.
func GetLatestBiomarkerSnapshot(ctx context.Context) (biomarkers.Store, error) {
	var store biomarkers.Store

	if pool == nil {
		return store, ErrDatabaseConnectionNotInitialized
	}

	var raw []byte

	query := `
		SELECT snapshot
		FROM biomarker_snapshots
		ORDER BY created_at DESC
		LIMIT 1
	`

	err := pool.QueryRow(ctx, query).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return store, ErrNoSnapshot
		}
		return store, fmt.Errorf("failed to get biomarker snapshot: %w", err)
	}

	if err := json.Unmarshal(raw, &store); err != nil {
		return store, fmt.Errorf("failed to unmarshal biomarker snapshot: %w", err)
	}

	return store, nil
}

// ListBiomarkerSnapshots returns snapshot metadata, newest first.
func ListBiomarkerSnapshots(ctx context.Context, limit int) ([]SnapshotInfo, error) {
	if pool == nil {
		return nil, ErrDatabaseConnectionNotInitialized
	}

	query := `
		SELECT id, created_at
		FROM biomarker_snapshots
		ORDER BY created_at DESC
		LIMIT $1
	`

	rows, err := pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list biomarker snapshots: %w", err)
	}
	defer rows.Close()

	var snapshots []SnapshotInfo
	for rows.Next() {
		var info SnapshotInfo
		if err := rows.Scan(&info.ID, &info.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan snapshot info: %w", err)
		}
		snapshots = append(snapshots, info)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating snapshots: %w", err)
	}

	return snapshots, nil
}
