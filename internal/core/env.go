package core

import "os"

// Env holds the environment variables awsp reads.
type Env struct {
	Home            string
	Profile         string
	ConfigFile      string
	CredentialsFile string
	Shell           string

	lookup func(string) (string, bool)
}

// EnvFromOS reads Env from the process environment.
func EnvFromOS() Env {
	return EnvFrom(os.LookupEnv)
}

// EnvFrom reads Env through lookup.
func EnvFrom(lookup func(string) (string, bool)) Env {
	get := func(key string) string {
		value, _ := lookup(key)
		return value
	}

	return Env{
		lookup:          lookup,
		Home:            get("HOME"),
		Profile:         get("AWS_PROFILE"),
		ConfigFile:      get("AWS_CONFIG_FILE"),
		CredentialsFile: get("AWS_SHARED_CREDENTIALS_FILE"),
		Shell:           get("SHELL"),
	}
}

// RequireHome returns ErrMissingHome when HOME is unset or empty.
func (e Env) RequireHome() error {
	if e.Home == "" {
		return ErrMissingHome
	}
	return nil
}

// Getenv returns the value of key from the environment Env was read from.
// HOME always resolves to Home.
func (e Env) Getenv(key string) string {
	if key == "HOME" {
		return e.Home
	}
	if e.lookup == nil {
		return ""
	}
	value, _ := e.lookup(key)
	return value
}
