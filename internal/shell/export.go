// Package shell renders the statements a parent shell sources to switch
// AWS profiles.
package shell

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/kballard/go-shellquote"
)

// ProfileVar is the environment variable managed by awsp.
const ProfileVar = "AWS_PROFILE"

// ErrUnsafeName is returned for profile names that cannot be written as a
// single shell line.
var ErrUnsafeName = errors.New("profile name spans multiple lines")

// plainName matches values that need no quoting in a POSIX shell.
var plainName = regexp.MustCompile(`^[A-Za-z0-9._/@+:=-]+$`)

// Statement returns the single shell line for value. The none value and
// the empty string unset the variable. Names outside the plain character
// set are shell-quoted.
func Statement(value, noneValue string) (string, error) {
	if value == "" || value == noneValue {
		return "unset " + ProfileVar, nil
	}

	if strings.ContainsAny(value, "\r\n") {
		return "", fmt.Errorf("%w: %q", ErrUnsafeName, value)
	}

	if plainName.MatchString(value) {
		return fmt.Sprintf("export %s=%s", ProfileVar, value), nil
	}
	return fmt.Sprintf("export %s=%s", ProfileVar, shellquote.Join(value)), nil
}

// WriteState overwrites path with the statement for value followed by a
// newline. Nothing is written when value has no valid statement.
func WriteState(path, value, noneValue string) error {
	if path == "" {
		return errors.New("state file path is empty")
	}

	statement, err := Statement(value, noneValue)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}

	if err := os.WriteFile(path, []byte(statement+"\n"), 0o600); err != nil {
		return fmt.Errorf("write state file: %w", err)
	}

	return nil
}
