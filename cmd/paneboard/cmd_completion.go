package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/sadopc/paneboard/internal/ui/theme"
)

func completionCmd() {
	fs := flag.NewFlagSet("completion", flag.ExitOnError)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: paneboard completion <bash|zsh|fish>\n\n")
		fmt.Fprintf(os.Stderr, "Generate shell completion scripts.\n\n")
		fmt.Fprintf(os.Stderr, "Examples:\n")
		fmt.Fprintf(os.Stderr, "  # Bash\n")
		fmt.Fprintf(os.Stderr, "  paneboard completion bash > /usr/local/etc/bash_completion.d/paneboard\n")
		fmt.Fprintf(os.Stderr, "  # Zsh\n")
		fmt.Fprintf(os.Stderr, "  paneboard completion zsh > \"${fpath[1]}/_paneboard\"\n")
		fmt.Fprintf(os.Stderr, "  # Fish\n")
		fmt.Fprintf(os.Stderr, "  paneboard completion fish > ~/.config/fish/completions/paneboard.fish\n")
	}

	if err := fs.Parse(os.Args[2:]); err != nil {
		os.Exit(1)
	}

	if fs.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "Error: shell name is required (bash, zsh, or fish)\n\n")
		fs.Usage()
		os.Exit(1)
	}

	shell := fs.Arg(0)
	switch shell {
	case "bash":
		fmt.Print(generateBashCompletion())
	case "zsh":
		fmt.Print(generateZshCompletion())
	case "fish":
		fmt.Print(generateFishCompletion())
	default:
		fmt.Fprintf(os.Stderr, "Error: unsupported shell %q (use bash, zsh, or fish)\n", shell)
		os.Exit(1)
	}
}

func themeList() string {
	return strings.Join(theme.Names(), " ")
}

func generateBashCompletion() string {
	return `# bash completion for paneboard                          -*- shell-script -*-

_paneboard() {
    local cur prev words cword
    _init_completion || return

    local commands="init validate fmt layout history completion version help"

    local tui_flags="--board --theme --log-file --no-mouse --version"
    local init_flags="--name --output --template --list"
    local fmt_flags="-w -d --check"
    local layout_flags="--width --height --page"
    local history_flags="--db --limit --panel --clear"
    local themes="` + themeList() + `"
    local shells="bash zsh fish"

    case "${prev}" in
        --theme)
            COMPREPLY=($(compgen -W "${themes}" -- "${cur}"))
            return
            ;;
        --board|--log-file|--db|--output)
            _filedir
            return
            ;;
        --width|--height|--page|--limit|--panel|--name|--template)
            return
            ;;
    esac

    if [[ ${cword} -eq 1 ]]; then
        if [[ "${cur}" == -* ]]; then
            COMPREPLY=($(compgen -W "${tui_flags}" -- "${cur}"))
        else
            COMPREPLY=($(compgen -W "${commands}" -- "${cur}"))
        fi
        return
    fi

    local command="${words[1]}"
    case "${command}" in
        init)
            COMPREPLY=($(compgen -W "${init_flags}" -- "${cur}"))
            ;;
        validate)
            _filedir '@(yaml|yml)'
            ;;
        fmt)
            if [[ "${cur}" == -* ]]; then
                COMPREPLY=($(compgen -W "${fmt_flags}" -- "${cur}"))
            else
                _filedir '@(yaml|yml)'
            fi
            ;;
        layout)
            if [[ "${cur}" == -* ]]; then
                COMPREPLY=($(compgen -W "${layout_flags}" -- "${cur}"))
            else
                _filedir '@(yaml|yml)'
            fi
            ;;
        history)
            COMPREPLY=($(compgen -W "${history_flags}" -- "${cur}"))
            ;;
        completion)
            COMPREPLY=($(compgen -W "${shells}" -- "${cur}"))
            ;;
        -*)
            COMPREPLY=($(compgen -W "${tui_flags}" -- "${cur}"))
            ;;
    esac
}

complete -F _paneboard paneboard
`
}

func generateZshCompletion() string {
	return `#compdef paneboard

_paneboard() {
    local -a commands
    commands=(
        'init:Create a new board file'
        'validate:Validate board YAML files'
        'fmt:Format and normalize board YAML files'
        'layout:Print the column layout of a board'
        'history:List recent panel resizes'
        'completion:Generate shell completion scripts'
        'version:Print version information'
        'help:Show help message'
    )

    _arguments -C \
        '--board[Path to a board YAML file]:file:_files -g "*.y(a|)ml"' \
        '--theme[Theme name]:theme:(` + themeList() + `)' \
        '--log-file[Log file path]:file:_files' \
        '--no-mouse[Disable mouse support]' \
        '--version[Print version and exit]' \
        '1: :->command' \
        '*:: :->args'

    case $state in
        command)
            _describe -t commands 'paneboard command' commands
            ;;
        args)
            case $words[1] in
                init)
                    _arguments \
                        '--name[Board name]:name:' \
                        '--output[Output file path]:file:_files' \
                        '--template[Page layout]:layout:' \
                        '--list[List page layouts]'
                    ;;
                validate)
                    _files -g '*.y(a|)ml'
                    ;;
                fmt)
                    _arguments \
                        '-w[Write result to file]' \
                        '-d[Print a diff of the changes]' \
                        '--check[Check if files are formatted]' \
                        '*:file:_files -g "*.y(a|)ml"'
                    ;;
                layout)
                    _arguments \
                        '--width[Terminal width in columns]:columns:' \
                        '--height[Terminal height in rows]:rows:' \
                        '--page[Only print the named page]:page:' \
                        '1:file:_files -g "*.y(a|)ml"'
                    ;;
                history)
                    _arguments \
                        '--db[Path to the history database]:file:_files' \
                        '--limit[Maximum number of entries]:count:' \
                        '--panel[Only show this panel ID]:id:' \
                        '--clear[Delete all recorded resizes]'
                    ;;
                completion)
                    _values 'shell' bash zsh fish
                    ;;
            esac
            ;;
    esac
}

_paneboard "$@"
`
}

func generateFishCompletion() string {
	return `# fish completion for paneboard

set -l commands init validate fmt layout history completion version help

complete -c paneboard -f
complete -c paneboard -n "not __fish_seen_subcommand_from $commands" -a init -d 'Create a new board file'
complete -c paneboard -n "not __fish_seen_subcommand_from $commands" -a validate -d 'Validate board YAML files'
complete -c paneboard -n "not __fish_seen_subcommand_from $commands" -a fmt -d 'Format board YAML files'
complete -c paneboard -n "not __fish_seen_subcommand_from $commands" -a layout -d 'Print the column layout of a board'
complete -c paneboard -n "not __fish_seen_subcommand_from $commands" -a history -d 'List recent panel resizes'
complete -c paneboard -n "not __fish_seen_subcommand_from $commands" -a completion -d 'Generate shell completion scripts'
complete -c paneboard -n "not __fish_seen_subcommand_from $commands" -a version -d 'Print version information'
complete -c paneboard -n "not __fish_seen_subcommand_from $commands" -a help -d 'Show help message'

complete -c paneboard -n "not __fish_seen_subcommand_from $commands" -l board -r -F -d 'Path to a board YAML file'
complete -c paneboard -n "not __fish_seen_subcommand_from $commands" -l theme -x -a '` + themeList() + `' -d 'Theme name'
complete -c paneboard -n "not __fish_seen_subcommand_from $commands" -l log-file -r -F -d 'Log file path'
complete -c paneboard -n "not __fish_seen_subcommand_from $commands" -l no-mouse -d 'Disable mouse support'
complete -c paneboard -n "not __fish_seen_subcommand_from $commands" -l version -d 'Print version and exit'

complete -c paneboard -n "__fish_seen_subcommand_from init" -l name -x -d 'Board name'
complete -c paneboard -n "__fish_seen_subcommand_from init" -l output -r -F -d 'Output file path'
complete -c paneboard -n "__fish_seen_subcommand_from init" -l template -x -d 'Page layout'
complete -c paneboard -n "__fish_seen_subcommand_from init" -l list -d 'List page layouts'
complete -c paneboard -n "__fish_seen_subcommand_from validate" -F
complete -c paneboard -n "__fish_seen_subcommand_from fmt" -s w -d 'Write result to file'
complete -c paneboard -n "__fish_seen_subcommand_from fmt" -s d -d 'Print a diff of the changes'
complete -c paneboard -n "__fish_seen_subcommand_from fmt" -l check -d 'Check if files are formatted'
complete -c paneboard -n "__fish_seen_subcommand_from fmt" -F
complete -c paneboard -n "__fish_seen_subcommand_from layout" -l width -x -d 'Terminal width in columns'
complete -c paneboard -n "__fish_seen_subcommand_from layout" -l height -x -d 'Terminal height in rows'
complete -c paneboard -n "__fish_seen_subcommand_from layout" -l page -x -d 'Only print the named page'
complete -c paneboard -n "__fish_seen_subcommand_from layout" -F
complete -c paneboard -n "__fish_seen_subcommand_from history" -l db -r -F -d 'Path to the history database'
complete -c paneboard -n "__fish_seen_subcommand_from history" -l limit -x -d 'Maximum number of entries'
complete -c paneboard -n "__fish_seen_subcommand_from history" -l panel -x -d 'Only show this panel ID'
complete -c paneboard -n "__fish_seen_subcommand_from history" -l clear -d 'Delete all recorded resizes'
complete -c paneboard -n "__fish_seen_subcommand_from completion" -a 'bash zsh fish'
`
}
