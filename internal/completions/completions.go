package completions

import (
	"fmt"
	"strings"
)

// Bash generates bash completion script
func Bash() string {
	return `# qcheck bash completion script
# Add to ~/.bashrc: eval "$(qcheck completions bash)"

_qcheck_completions() {
    local cur prev commands
    COMPREPLY=()
    cur="${COMP_WORDS[COMP_CWORD]}"
    prev="${COMP_WORDS[COMP_CWORD-1]}"

    commands="search compare open config completions debug help version"

    case "${prev}" in
        qcheck)
            COMPREPLY=( $(compgen -W "${commands}" -- "${cur}") )
            return 0
            ;;
        search|compare)
            # Complete with directories
            COMPREPLY=( $(compgen -d -- "${cur}") )
            return 0
            ;;
        open)
            COMPREPLY=( $(compgen -f -- "${cur}") )
            return 0
            ;;
        --ext)
            COMPREPLY=( $(compgen -W "sas log txt pdf lst all" -- "${cur}") )
            return 0
            ;;
        --status)
            COMPREPLY=( $(compgen -W "all passed failed" -- "${cur}") )
            return 0
            ;;
        --output)
            COMPREPLY=( $(compgen -W "yaml json" -- "${cur}") )
            return 0
            ;;
        completions)
            COMPREPLY=( $(compgen -W "bash zsh fish" -- "${cur}") )
            return 0
            ;;
        *)
            ;;
    esac

    case "${cur}" in
        -*)
            COMPREPLY=( $(compgen -W "--ext --status --output --pick --recursive" -- "${cur}") )
            return 0
            ;;
    esac

    COMPREPLY=( $(compgen -W "${commands}" -- "${cur}") )
}

complete -F _qcheck_completions qcheck
`
}

// Zsh generates zsh completion script
func Zsh() string {
	return `#compdef qcheck
# qcheck zsh completion script
# Add to ~/.zshrc: eval "$(qcheck completions zsh)"

_qcheck() {
    local -a commands

    commands=(
        'search:Search text in SAS, LOG, TXT files'
        'compare:Check PROC COMPARE results'
        'open:Open a file in the external editor'
        'config:Show effective configuration'
        'completions:Generate shell completions'
        'debug:Show debug information'
        'help:Show help'
        'version:Show version'
    )

    _arguments -C \
        '1: :->command' \
        '*: :->args'

    case $state in
        command)
            _describe -t commands 'qcheck commands' commands
            ;;
        args)
            case $words[2] in
                search|compare)
                    _files -/
                    _values 'flags' \
                        '--ext[extension filter]' \
                        '--status[status filter]' \
                        '--output[yaml or json output]' \
                        '--pick[interactive picker]' \
                        '--recursive[descend into subfolders]'
                    ;;
                open)
                    _files
                    ;;
                completions)
                    _values 'shells' 'bash' 'zsh' 'fish'
                    ;;
            esac
            ;;
    esac
}

_qcheck "$@"
`
}

// Fish generates fish completion script
func Fish() string {
	return `# qcheck fish completion script
# Add to ~/.config/fish/completions/qcheck.fish

# Disable file completion by default
complete -c qcheck -f

# Commands
complete -c qcheck -n "__fish_use_subcommand" -a "search" -d "Search text in SAS, LOG, TXT files"
complete -c qcheck -n "__fish_use_subcommand" -a "compare" -d "Check PROC COMPARE results"
complete -c qcheck -n "__fish_use_subcommand" -a "open" -d "Open a file in the external editor"
complete -c qcheck -n "__fish_use_subcommand" -a "config" -d "Show effective configuration"
complete -c qcheck -n "__fish_use_subcommand" -a "completions" -d "Generate shell completions"
complete -c qcheck -n "__fish_use_subcommand" -a "debug" -d "Show debug information"
complete -c qcheck -n "__fish_use_subcommand" -a "help" -d "Show help"
complete -c qcheck -n "__fish_use_subcommand" -a "version" -d "Show version"

# Directory completion for scan commands
complete -c qcheck -n "__fish_seen_subcommand_from search compare" -a "(__fish_complete_directories)"

# File completion for open
complete -c qcheck -n "__fish_seen_subcommand_from open" -F

# Flags
complete -c qcheck -n "__fish_seen_subcommand_from search compare" -l ext -d "Extension filter" -a "sas log txt pdf lst all"
complete -c qcheck -n "__fish_seen_subcommand_from compare" -l status -d "Status filter" -a "all passed failed"
complete -c qcheck -n "__fish_seen_subcommand_from search compare" -l output -d "Output format" -a "yaml json"
complete -c qcheck -n "__fish_seen_subcommand_from search compare" -l pick -d "Interactive picker"
complete -c qcheck -n "__fish_seen_subcommand_from search compare" -l recursive -d "Descend into subfolders"

# Shell completion for completions command
complete -c qcheck -n "__fish_seen_subcommand_from completions" -a "bash zsh fish" -d "Shell"
`
}

// Generate returns the completion script for the given shell
func Generate(shell string) (string, error) {
	switch strings.ToLower(shell) {
	case "bash":
		return Bash(), nil
	case "zsh":
		return Zsh(), nil
	case "fish":
		return Fish(), nil
	default:
		return "", fmt.Errorf("unsupported shell: %s (supported: bash, zsh, fish)", shell)
	}
}
