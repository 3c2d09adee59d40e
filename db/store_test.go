// SPDX-FileCopyrightText: 2025 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package db

import (
	"context"
	"errors"
	"testing"

	"github.com/humaidq/vitalboard/biomarkers"
)

// Operations against an uninitialized pool fail with the sentinel, not
// a panic.
func TestNilPoolGuards(t *testing.T) {
	if pool != nil {
		t.Skip("pool initialized; guard tests require no database")
	}

	ctx := context.Background()

	if _, err := SaveBiomarkerSnapshot(ctx, biomarkers.Store{}); !errors.Is(err, ErrDatabaseConnectionNotInitialized) {
		t.Fatalf("SaveBiomarkerSnapshot: expected guard error, got %v", err)
	}
	if _, err := GetLatestBiomarkerSnapshot(ctx); !errors.Is(err, ErrDatabaseConnectionNotInitialized) {
		t.Fatalf("GetLatestBiomarkerSnapshot: expected guard error, got %v", err)
	}
	if _, err := ListBiomarkerSnapshots(ctx, 10); !errors.Is(err, ErrDatabaseConnectionNotInitialized) {
		t.Fatalf("ListBiomarkerSnapshots: expected guard error, got %v", err)
	}
	if _, err := RecordLabPanel(ctx, biomarkers.LabPanel{}); !errors.Is(err, ErrDatabaseConnectionNotInitialized) {
		t.Fatalf("RecordLabPanel: expected guard error, got %v", err)
	}
	if _, err := ListLabPanels(ctx); !errors.Is(err, ErrDatabaseConnectionNotInitialized) {
		t.Fatalf("ListLabPanels: expected guard error, got %v", err)
	}
	if err := SyncSchema(); !errors.Is(err, ErrDatabaseConnectionNotInitialized) {
		t.Fatalf("SyncSchema: expected guard error, got %v", err)
	}
}

func TestInitRequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	if err := Init(context.Background()); !errors.Is(err, ErrDatabaseURLEnvVarNotSet) {
		t.Fatalf("expected ErrDatabaseURLEnvVarNotSet, got %v", err)
	}
}

func TestInitInvalidDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://")

	if err := Init(context.Background()); err == nil {
		t.Fatalf("expected error for invalid database url")
	}
}
