// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/staranto/filecache/internal/meta"
)

// DirCommandAction prints the directory a handle for <subPath> would own.
func DirCommandAction(ctx context.Context, cmd *cli.Command) error {
	dir, err := NamespaceDir(cmd)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.Root().Writer, dir)
	return err
}

func DirCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return (&CommandBuilder{
		Name:      "dir",
		Usage:     "print a namespace's cache directory",
		UsageText: `filecache dir <subPath>`,
		Args:      []string{"subPath"},
		Action:    DirCommandAction,
		Meta:      meta,
	}).Build()
}
