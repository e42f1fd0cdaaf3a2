// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/staranto/filecache"
	"github.com/staranto/filecache/internal/meta"
)

// InvalidateCommandAction deletes a namespace directory outright.
func InvalidateCommandAction(ctx context.Context, cmd *cli.Command) error {
	ok, err := filecache.Invalidate(cmd.Args().First())
	if !ok {
		return ErrNoCacheDir
	}
	return err
}

func InvalidateCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return (&CommandBuilder{
		Name:      "invalidate",
		Usage:     "delete a namespace and everything in it",
		UsageText: `filecache invalidate <subPath>`,
		Args:      []string{"subPath"},
		Action:    InvalidateCommandAction,
		Meta:      meta,
	}).Build()
}
