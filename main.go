/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package main

import (
	"context"
	"log"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/humaidq/vitalboard/cmd"
	"github.com/humaidq/vitalboard/logging"
)

func main() {
	logging.Init()

	app := &cli.Command{
		Name:  "vitalboard",
		Usage: "Vitalboard - Personal Health Dashboard",
		Commands: []*cli.Command{
			cmd.CmdStart,
			cmd.CmdMigrate,
			cmd.CmdImport,
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
