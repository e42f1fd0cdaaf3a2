// Copyright © 2026 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT
package command

import (
	"context"
	"sort"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/staranto/filecache/internal/cacheutil"
	"github.com/staranto/filecache/internal/config"
	"github.com/staranto/filecache/internal/meta"
)

func InitApp(ctx context.Context, args []string) (*cli.Command, error) {
	// The arg[1] immediately following the binary (arg[0]) is the subcommand
	// and also represents the namespace key to be used when retrieving config
	// values. arg[1] could be -h/--help, so ignore it if it appears to be a
	// flag.
	var ns string
	if len(args) > 1 && !strings.HasPrefix(args[1], "-") {
		ns = args[1]
	}

	cfg, _ := config.Load(ns)
	base, _ := cacheutil.BaseDir()
	meta := meta.Meta{
		Args:    args,
		Config:  cfg,
		Context: ctx,
		BaseDir: base,
	}

	app := &cli.Command{
		Name:  "filecache",
		Usage: "inspect and manage filesystem memo caches",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "version",
				Aliases:     []string{"v"},
				Usage:       "filecache version info",
				HideDefault: true,
			},
		},
	}

	app.Commands = append(app.Commands,
		CompletionCommandBuilder(app, meta),
		DirCommandBuilder(app, meta),
		FlushCommandBuilder(app, meta),
		InvalidateCommandBuilder(app, meta),
		LsCommandBuilder(app, meta),
		ShowCommandBuilder(app, meta),
	)

	// Make sure flags are sorted for the --help text.
	for _, cmd := range app.Commands {
		sort.Slice(cmd.Flags, func(i, j int) bool {
			return cmd.Flags[i].Names()[0] < cmd.Flags[j].Names()[0]
		})
	}

	return app, nil
}
