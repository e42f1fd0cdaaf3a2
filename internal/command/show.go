// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/apex/log"
	"github.com/tidwall/gjson"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/staranto/filecache"
	"github.com/staranto/filecache/internal/meta"
)

// ShowCommandAction writes the raw bytes of one entry, or the result of a
// gjson query against it.
func ShowCommandAction(ctx context.Context, cmd *cli.Command) error {
	dir, err := NamespaceDir(cmd)
	if err != nil {
		return err
	}
	key := cmd.Args().Get(1)

	data, found, err := filecache.NewAt(dir, filecache.Bytes()).Get(key)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("no entry %q in %s", key, dir)
	}

	if q := cmd.String("query"); q != "" {
		if !gjson.ValidBytes(data) {
			return fmt.Errorf("entry %q is not JSON", key)
		}
		result := gjson.GetBytes(data, q)
		if !result.Exists() {
			return fmt.Errorf("query %q matched nothing in %q", q, key)
		}
		log.Debugf("query %q: %v", q, result.Type)
		data = []byte(result.String() + "\n")
	}

	w := cmd.Root().Writer
	if !cmd.Bool("force") && !utf8.Valid(data) && isTerminal(w) {
		return fmt.Errorf("entry %q is binary; use --force to write it to a terminal", key)
	}

	_, err = w.Write(data)
	return err
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func ShowCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return (&CommandBuilder{
		Name:      "show",
		Usage:     "print one entry",
		UsageText: `filecache show [options] <subPath> <key>`,
		Args:      []string{"subPath", "key"},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "query",
				Aliases: []string{"q"},
				Usage:   "gjson path to extract from a JSON entry",
			},
			&cli.BoolFlag{
				Name:        "force",
				Aliases:     []string{"f"},
				Usage:       "write binary content to a terminal",
				HideDefault: true,
			},
		},
		Action: ShowCommandAction,
		Meta:   meta,
	}).Build()
}
