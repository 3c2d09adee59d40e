/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/humaidq/vitalboard/biomarkers"
	"github.com/humaidq/vitalboard/db"
	"github.com/humaidq/vitalboard/workbook"
)

var CmdImport = &cli.Command{
	Name:  "import",
	Usage: "Import the bloodwork spreadsheet and save it as a snapshot",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "workbook",
			Sources: cli.EnvVars("VITALBOARD_WORKBOOK"),
			Usage:   "path to the bloodwork spreadsheet (.xlsx)",
		},
		&cli.StringFlag{
			Name:    "database-url",
			Sources: cli.EnvVars("DATABASE_URL"),
			Usage:   "PostgreSQL connection string; omit for a dry run",
		},
	},
	Action: runImport,
}

func runImport(ctx context.Context, cmd *cli.Command) error {
	path := cmd.String("workbook")
	if path == "" {
		return errWorkbookPathRequired
	}

	grid, err := workbook.ReadGrid(path)
	if err != nil {
		return fmt.Errorf("failed to read workbook: %w", err)
	}

	categories := biomarkers.ParseGrid(grid)
	store := biomarkers.Store{
		Categories:  categories,
		LastUpdated: time.Now().UTC(),
	}

	measurements := 0
	for _, category := range categories {
		for _, biomarker := range category.Biomarkers {
			measurements += len(biomarker.Measurements)
		}
	}

	ingestLogger.Info("Parsed workbook",
		"path", path,
		"categories", len(categories),
		"measurements", measurements,
	)

	databaseURL := cmd.String("database-url")
	if databaseURL == "" {
		ingestLogger.Info("No database configured; dry run complete")
		return nil
	}

	os.Setenv("DATABASE_URL", databaseURL)

	if err := db.Init(ctx); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	if err := db.SyncSchema(); err != nil {
		return fmt.Errorf("failed to sync schema: %w", err)
	}

	id, err := db.SaveBiomarkerSnapshot(ctx, store)
	if err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}

	ingestLogger.Info("Imported workbook snapshot", "id", id)

	return nil
}
