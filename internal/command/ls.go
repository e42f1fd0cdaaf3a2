// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"time"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/staranto/filecache/internal/cacheutil"
	"github.com/staranto/filecache/internal/filters"
	"github.com/staranto/filecache/internal/meta"
	"github.com/staranto/filecache/internal/output"
)

// LsCommandAction lists the entries of a namespace along with any temp files
// a crashed writer left behind. Nothing on disk is changed.
func LsCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	dir, err := NamespaceDir(cmd)
	if err != nil {
		return err
	}

	attrs, err := BuildAttrs(cmd, "kind", "key", "size", "age")
	if err != nil {
		return err
	}
	log.Debugf("attrs: %v", attrs)

	entries, err := cacheutil.List(dir)
	if err != nil {
		return err
	}

	rows := output.EntryRows(entries, time.Now())
	rows = filters.FilterDataset(rows, attrs, cmd.String("filter"))
	return output.Spit(cmd.Root().Writer, rows, attrs, SpitOptions(cmd))
}

func LsCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return (&CommandBuilder{
		Name:      "ls",
		Usage:     "list the entries of a namespace",
		UsageText: `filecache ls [options] <subPath>`,
		Args:      []string{"subPath"},
		Flags:     NewListFlags("ls", meta.Config.Source),
		Action:    LsCommandAction,
		Meta:      meta,
	}).Build()
}
