package shell

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/kballard/go-shellquote"
)

// Supported lists the shells HookSnippet can render.
var Supported = []string{"bash", "zsh"}

// Detect returns the shell name from a $SHELL value.
func Detect(shellPath string) string {
	if strings.TrimSpace(shellPath) == "" {
		return ""
	}
	return filepath.Base(shellPath)
}

// HookSnippet returns a shell function named awsp that runs binary and
// sources statePath when it succeeds. The state file is removed first so a
// cancelled prompt leaves the environment untouched. It returns an empty
// string for unsupported shells. binary and statePath are shell-quoted.
func HookSnippet(shellType, binary, statePath string) string {
	switch shellType {
	case "bash", "zsh":
		return fmt.Sprintf(`# awsp shell integration (%s)
awsp() {
  rm -f %[3]s
  command %[2]s "$@" && [ -f %[3]s ] && . %[3]s
}
`, shellType, shellquote.Join(binary), shellquote.Join(statePath))
	default:
		return ""
	}
}
