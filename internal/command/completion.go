// Copyright © 2026 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package command

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/staranto/filecache/internal/meta"
)

const bashCompletionScript = `# bash completion for filecache
# Fallback if bash-completion is not installed
if ! declare -F _get_comp_words_by_ref >/dev/null 2>&1; then
  _get_comp_words_by_ref() {
    cur=${COMP_WORDS[COMP_CWORD]}
    prev=${COMP_WORDS[COMP_CWORD-1]}
  }
fi

_filecache_namespaces()
{
    local root
    # Ask the binary so the platform cache dir matches what it writes to.
    root=$("${COMP_WORDS[0]}" dir _ 2>/dev/null) || return 0
    root=${root%/*}
    [[ -d $root ]] || return 0
    COMPREPLY=( $(cd "$root" && compgen -o dirnames -- "$cur") )
}

_filecache()
{
    local cur prev cmd
    COMPREPLY=()
    _get_comp_words_by_ref -n : cur prev

    if [[ ${COMP_CWORD} -eq 1 ]]; then
        COMPREPLY=( $(compgen -W "dir flush invalidate ls show completion --help --version" -- "$cur") )
        return 0
    fi

    cmd=${COMP_WORDS[1]}
    local list="--attrs -a --color -c --filter -f --output -o --sort -s --titles -t"

    case "$cmd" in
        ls)
            local opts="$list"
            ;;
        show)
            local opts="--query -q --force -f"
            ;;
        dir|flush|invalidate)
            local opts=""
            ;;
        completion)
            COMPREPLY=( $(compgen -W "bash zsh" -- "$cur") )
            return 0
            ;;
        *)
            return 0
            ;;
    esac

    if [[ "$prev" == "--output" || "$prev" == "-o" ]]; then
        COMPREPLY=( $(compgen -W "text json yaml" -- "$cur") )
        return 0
    fi

    if [[ "$cur" == -* ]]; then
        COMPREPLY=( $(compgen -W "$opts" -- "$cur") )
        return 0
    fi

    _filecache_namespaces
    return 0
}

complete -F _filecache filecache
`

const zshCompletionScript = `#compdef filecache

_filecache() {
  local -a cmds
  cmds=(
    'dir:print a namespace directory'
    'flush:remove every entry of a namespace'
    'invalidate:delete a namespace'
    'ls:list the entries of a namespace'
    'show:print one entry'
    'completion:generate shell completion script'
  )

  local -a list
  list=(
  '(-a --attrs)'{-a,--attrs}'[attributes to include]:attrs'
  '(-c --color)'{-c,--color}'[enable colored text]'
  '(-f --filter)'{-f,--filter}'[filters to apply]:filters'
  '(-o --output)'{-o,--output}'[output format]:format:(text json yaml)'
  '(-s --sort)'{-s,--sort}'[sort attributes]:attrs'
  '(-t --titles)'{-t,--titles}'[show titles]'
  )

  if (( CURRENT == 2 )); then
    _describe -t commands 'filecache commands' cmds
    return
  fi

  local curcontext="$curcontext" state line
  case $words[2] in
    ls)
      _arguments -C $list '1:subPath'
      ;;
    show)
      _arguments -C \
        '(-q --query)'{-q,--query}'[gjson path]:path' \
        '(-f --force)'{-f,--force}'[write binary to a terminal]' \
        '1:subPath' '2:key'
      ;;
    dir|flush|invalidate)
      _arguments '1:subPath'
      ;;
    completion)
      _arguments '1: :((bash zsh))'
      ;;
  esac
}

# If this file is sourced directly (not autoloaded via fpath), ensure compsys is initialized and register the completion
if ! typeset -f compdef >/dev/null 2>&1; then
  autoload -Uz compinit && compinit -i
fi
compdef _filecache filecache
`

func CompletionCommandAction(ctx context.Context, cmd *cli.Command) error {
	w := cmd.Root().Writer
	shell := cmd.Args().First()
	switch shell {
	case "bash":
		fmt.Fprint(w, bashCompletionScript)
	case "zsh":
		fmt.Fprint(w, zshCompletionScript)
	default:
		// Try to detect from SHELL or print help
		sh := os.Getenv("SHELL")
		if strings.HasSuffix(sh, "zsh") {
			fmt.Fprint(w, zshCompletionScript)
		} else if strings.HasSuffix(sh, "bash") {
			fmt.Fprint(w, bashCompletionScript)
		} else {
			return errors.New("usage: filecache completion [bash|zsh]")
		}
	}
	return nil
}

func CompletionCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "completion",
		Usage:     "generate shell completion script",
		UsageText: "filecache completion [bash|zsh]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Action: CompletionCommandAction,
	}
}
