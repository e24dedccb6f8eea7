package core

import (
	"os"
	"os/exec"
	"path/filepath"
)

// BinaryName is the command name the shell integration calls.
const BinaryName = "awsp"

var (
	lookPathHook   = exec.LookPath
	executableHook = os.Executable
)

// HookBinary returns the command the shell integration should run. The
// bare name is used when it resolves on PATH, otherwise the absolute path
// of the running executable.
func HookBinary() string {
	if _, err := lookPathHook(BinaryName); err == nil {
		return BinaryName
	}

	self, err := executableHook()
	if err != nil || !isExecutable(self) {
		return BinaryName
	}

	if resolved, err := filepath.EvalSymlinks(self); err == nil {
		return resolved
	}
	return self
}

func isExecutable(path string) bool {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return false
	}

	return info.Mode()&0111 != 0
}
