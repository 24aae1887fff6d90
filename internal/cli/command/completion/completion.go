package completion

import (
	"context"
	"fmt"

	cfg "github.com/Tomas-vilte/MateChangelog/internal/config"
	"github.com/Tomas-vilte/MateChangelog/internal/i18n"
	"github.com/urfave/cli/v3"
)

const bashCompletionScript = `#! /bin/bash

_mate_changelog_bash_autocomplete() {
  if [[ "${COMP_WORDS[0]}" != "source" ]]; then
    local cur opts
    COMPREPLY=()
    cur="${COMP_WORDS[COMP_CWORD]}"
    local cmd_context=("${COMP_WORDS[@]:0:$COMP_CWORD}")
    opts=$( "${cmd_context[@]}" --generate-shell-completion )
    COMPREPLY=( $(compgen -W "${opts}" -- ${cur}) )
    return 0
  fi
}

complete -o bashdefault -o default -o nospace -F _mate_changelog_bash_autocomplete mate-changelog
`

const zshCompletionScript = `#compdef mate-changelog

_mate_changelog() {
  local -a opts
  local cmd_context=("${(@)words[1,$CURRENT-1]}")
  opts=("${(@f)$("${cmd_context[@]}" --generate-shell-completion)}")
  _describe 'values' opts
}

compdef _mate_changelog mate-changelog
`

type CompletionCommandFactory struct{}

func NewCompletionCommandFactory() *CompletionCommandFactory {
	return &CompletionCommandFactory{}
}

func (f *CompletionCommandFactory) CreateCommand(t *i18n.Translations, _ *cfg.Config) *cli.Command {
	return &cli.Command{
		Name:  "completion",
		Usage: t.GetMessage("completion.usage", 0, nil),
		Commands: []*cli.Command{
			{
				Name:   "bash",
				Usage:  t.GetMessage("completion.bash_usage", 0, nil),
				Action: printScript(bashCompletionScript),
			},
			{
				Name:   "zsh",
				Usage:  t.GetMessage("completion.zsh_usage", 0, nil),
				Action: printScript(zshCompletionScript),
			},
		},
	}
}

func printScript(script string) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		_, err := fmt.Fprint(cmd.Root().Writer, script)
		return err
	}
}
