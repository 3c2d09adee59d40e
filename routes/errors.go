/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import "errors"

var (
	errMissingDate        = errors.New("missing date")
	errInvalidDate        = errors.New("invalid date")
	errMissingProvider    = errors.New("missing provider")
	errNoPanelResults     = errors.New("no panel results")
	errInvalidResultValue = errors.New("invalid result value")
)
