/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package db

import "errors"

var (
	// ErrDatabaseConnectionNotInitialized is returned when an operation
	// runs before Init or after Close.
	ErrDatabaseConnectionNotInitialized = errors.New("database connection not initialized")

	// ErrDatabaseURLEnvVarNotSet is returned when DATABASE_URL is empty.
	ErrDatabaseURLEnvVarNotSet = errors.New("DATABASE_URL environment variable not set")

	// ErrDatabaseNameNotSpecified is returned when the connection URL
	// names no database to bootstrap.
	ErrDatabaseNameNotSpecified = errors.New("database name not specified in connection URL")

	// ErrNoSnapshot is returned when no biomarker snapshot has been saved.
	ErrNoSnapshot = errors.New("no biomarker snapshot stored")
)
