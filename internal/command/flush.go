// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/staranto/filecache"
	"github.com/staranto/filecache/internal/meta"
)

// FlushCommandAction empties a namespace, leaving its directory in place.
func FlushCommandAction(ctx context.Context, cmd *cli.Command) error {
	dir, err := NamespaceDir(cmd)
	if err != nil {
		return err
	}
	return filecache.NewAt(dir, filecache.Bytes()).Flush()
}

func FlushCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return (&CommandBuilder{
		Name:      "flush",
		Usage:     "remove every entry of a namespace",
		UsageText: `filecache flush <subPath>`,
		Args:      []string{"subPath"},
		Action:    FlushCommandAction,
		Meta:      meta,
	}).Build()
}
