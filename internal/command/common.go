// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/staranto/filecache/internal/attrs"
	"github.com/staranto/filecache/internal/cacheutil"
	"github.com/staranto/filecache/internal/config"
	"github.com/staranto/filecache/internal/meta"
	"github.com/staranto/filecache/internal/output"
)

// ErrNoCacheDir is returned when the platform has no cache root and
// FILECACHE_DIR is unset.
var ErrNoCacheDir = errors.New("no platform cache directory; set FILECACHE_DIR")

// BuildAttrs constructs an AttrList with defaults and optional extras from
// --attrs, then applies the global transform spec.
func BuildAttrs(cmd *cli.Command, defaults ...string) (al attrs.AttrList, err error) {
	for _, d := range defaults {
		if err = al.Set(d); err != nil {
			return nil, err
		}
	}
	if extras := cmd.String("attrs"); extras != "" {
		if err = al.Set(extras); err != nil {
			return nil, err
		}
	}
	err = al.SetGlobalTransformSpec()
	return
}

// SpitOptions collects the listing flags into output.Options.
func SpitOptions(cmd *cli.Command) output.Options {
	return output.Options{
		Format: cmd.String("output"),
		Sort:   cmd.String("sort"),
		Titles: cmd.Bool("titles"),
		Color:  cmd.Bool("color"),
	}
}

// GetMeta returns the meta.Meta stored in the command's Metadata. If missing
// or of an unexpected type, it returns the zero value.
func GetMeta(cmd *cli.Command) meta.Meta {
	if cmd == nil || cmd.Metadata == nil {
		return meta.Meta{}
	}
	if m, ok := cmd.Metadata["meta"].(meta.Meta); ok {
		return m
	}
	return meta.Meta{}
}

// NamespaceDir resolves the <subPath> argument against the platform root.
func NamespaceDir(cmd *cli.Command) (string, error) {
	m := GetMeta(cmd)
	if m.BaseDir == "" {
		return "", ErrNoCacheDir
	}
	dir, err := cacheutil.NamespaceDir(m.BaseDir, cmd.Args().First())
	if err != nil {
		return "", err
	}
	log.Debugf("namespace dir: %s", dir)
	return dir, nil
}

// ExpandArgSets splices a configured argument set in right after the
// subcommand. An @name argument selects <command>.name from the config and is
// removed; without one, <command>.defaults is used when present. Each set
// item may hold several space-separated args.
func ExpandArgSets(args []string) []string {
	if len(args) < 2 || strings.HasPrefix(args[1], "-") {
		return args
	}
	for _, a := range args {
		if a == "--help" || a == "-h" {
			return append(args[:2:2], "--help")
		}
	}

	set := "defaults"
	rest := make([]string, 0, len(args)-2)
	for _, a := range args[2:] {
		if strings.HasPrefix(a, "@") && set == "defaults" && len(a) > 1 {
			set = a[1:]
			continue
		}
		rest = append(rest, a)
	}

	setArgs, _ := config.GetStringSlice(args[1] + "." + set)

	expanded := append([]string{}, args[:2]...)
	for _, arg := range setArgs {
		expanded = append(expanded, strings.Fields(arg)...)
	}
	expanded = append(expanded, rest...)

	log.Debugf("set=%s, args=%v", set, expanded)
	return expanded
}

// CommandBuilder constructs a cli.Command for the cache subcommands using a
// consistent pattern: metadata wiring, an exact positional arg count and
// optional flags.
type CommandBuilder struct {
	Name      string
	Usage     string
	UsageText string
	Args      []string
	Flags     []cli.Flag
	Action    func(context.Context, *cli.Command) error
	Meta      meta.Meta
}

// Build returns a configured cli.Command from the builder.
func (cb *CommandBuilder) Build() *cli.Command {
	return &cli.Command{
		Name:      cb.Name,
		Usage:     cb.Usage,
		UsageText: cb.UsageText,
		Metadata: map[string]any{
			"meta": cb.Meta,
		},
		Flags: cb.Flags,
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			return ctx, ArgsValidator(c, cb.Args...)
		},
		Action: cb.Action,
	}
}

// ArgsValidator checks that exactly the named positional args were given.
func ArgsValidator(c *cli.Command, names ...string) error {
	if got := c.Args().Len(); got != len(names) {
		want := make([]string, len(names))
		for i, n := range names {
			want[i] = "<" + n + ">"
		}
		return fmt.Errorf("%s: expected %d argument(s) %s, got %d",
			c.Name, len(names), strings.Join(want, " "), got)
	}
	return nil
}
