package signal

import (
	"fmt"
	"io"
	"sort"
	"strings"

	shellquote "github.com/kballard/go-shellquote"

	"github.com/firefly-engineering/scaffold/internal/project"
)

const (
	NavigatePrefix = "NAVIGATE_TO:"
	ActivatePrefix = "ACTIVATE_VENV:"
)

// DefaultFunctionName is the name of the generated shell function.
const DefaultFunctionName = "proj"

// Lines returns the marker lines for nav. A cancelled navigation has none.
func Lines(nav project.Navigation) []string {
	if nav.Kind == project.Cancelled || nav.Path == "" {
		return nil
	}

	lines := []string{NavigatePrefix + nav.Path}
	if nav.Activate != "" {
		lines = append(lines, ActivatePrefix+nav.Activate)
	}
	return lines
}

// Write writes the marker lines for nav to w, one per line.
func Write(w io.Writer, nav project.Navigation) error {
	for _, line := range Lines(nav) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

var templates = map[string]string{
	"bash": posixTemplate,
	"zsh":  posixTemplate,
	"fish": fishTemplate,
}

// Shells returns the supported shells in sorted order.
func Shells() []string {
	shells := make([]string, 0, len(templates))
	for name := range templates {
		shells = append(shells, name)
	}
	sort.Strings(shells)
	return shells
}

// WrapperScript returns the shell function that runs binary's navigate
// command (pick when called without arguments) and acts on its markers. An empty funcName uses
// DefaultFunctionName.
func WrapperScript(shell, binary, funcName string) (string, error) {
	tmpl, ok := templates[shell]
	if !ok {
		return "", fmt.Errorf("unsupported shell %q (supported: %s)", shell, strings.Join(Shells(), ", "))
	}
	if funcName == "" {
		funcName = DefaultFunctionName
	}
	if strings.ContainsAny(funcName, " \t\n'\"$`;|&<>(){}") {
		return "", fmt.Errorf("invalid function name %q", funcName)
	}

	r := strings.NewReplacer(
		"{{func}}", funcName,
		"{{binary}}", shellquote.Join(binary),
		"{{navigate}}", NavigatePrefix,
		"{{activate}}", ActivatePrefix,
	)
	return r.Replace(tmpl), nil
}

const posixTemplate = `# scaffold shell integration
# Add to your shell rc file: eval "$(scaffold shell-init <shell>)"
{{func}}() {
    local output line code
    if [ $# -eq 0 ]; then
        output="$(command {{binary}} pick)"
        code=$?
    else
        output="$(command {{binary}} navigate "$1")"
        code=$?
    fi
    while IFS= read -r line; do
        case "$line" in
            {{navigate}}*) cd -- "${line#{{navigate}}}" || return ;;
            {{activate}}*) source "${line#{{activate}}}" ;;
        esac
    done <<< "$output"
    return $code
}
`

const fishTemplate = `# scaffold shell integration
# Add to your config.fish: scaffold shell-init fish | source
function {{func}}
    set -l output
    set -l code 0
    if test (count $argv) -eq 0
        set output (command {{binary}} pick)
        set code $status
    else
        set output (command {{binary}} navigate $argv[1])
        set code $status
    end
    for line in $output
        switch $line
            case '{{navigate}}*'
                cd (string replace -- '{{navigate}}' '' $line); or return
            case '{{activate}}*'
                source (string replace -- '{{activate}}' '' $line).fish
        end
    end
    return $code
end
`
