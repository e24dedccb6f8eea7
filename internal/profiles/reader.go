// Package profiles reads the AWS shared credentials and config files and
// extracts the profile names they declare.
package profiles

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

var (
	// ErrNoConfigFound is returned when neither source file has any content.
	ErrNoConfigFound = errors.New("did not find AWS config or credentials")

	// ErrNoProfilesFound is returned when the sources contain no profile sections.
	ErrNoProfilesFound = errors.New("could not find any AWS profile configuration")
)

// Sources holds the locations of the AWS shared files.
type Sources struct {
	CredentialsPath string
	ConfigPath      string
}

// ReadFileAsString returns the content of path, or an empty string when the
// file does not exist or cannot be read.
func ReadFileAsString(path string) string {
	if strings.TrimSpace(path) == "" {
		return ""
	}

	// #nosec G304 -- path comes from the AWS shared file locations
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}

	return string(data)
}

// MergeSources joins credentials and config text into one blob.
func MergeSources(credentials, config string) string {
	return credentials + "\n" + config
}

// Load reads both sources and returns the extracted profile names.
// A blob that is blank after merging is reported as ErrNoConfigFound.
func Load(src Sources) ([]string, error) {
	merged := MergeSources(ReadFileAsString(src.CredentialsPath), ReadFileAsString(src.ConfigPath))
	if strings.TrimSpace(merged) == "" {
		return nil, fmt.Errorf("%w (%s, %s)", ErrNoConfigFound, src.CredentialsPath, src.ConfigPath)
	}

	names := Extract(merged)
	if len(names) == 0 {
		return nil, fmt.Errorf("%w (%s, %s)", ErrNoProfilesFound, src.CredentialsPath, src.ConfigPath)
	}

	return names, nil
}
