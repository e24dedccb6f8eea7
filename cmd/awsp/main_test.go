package main

import (
	"testing"
)

func TestRunVersion(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	if code := run([]string{"version"}); code != 0 {
		t.Fatalf("expected exit code 0, got %d", code)
	}
}

func TestRunMissingConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("AWS_CONFIG_FILE", "")
	t.Setenv("AWS_SHARED_CREDENTIALS_FILE", "")

	if code := run([]string{"list"}); code == 0 {
		t.Fatal("expected non-zero exit code without aws configuration")
	}
}

func TestRunMissingHome(t *testing.T) {
	t.Setenv("HOME", "")

	if code := run([]string{"list"}); code == 0 {
		t.Fatal("expected non-zero exit code without HOME")
	}
}

func TestRunVersionWithoutHome(t *testing.T) {
	t.Setenv("HOME", "")

	if code := run([]string{"version"}); code != 0 {
		t.Fatalf("expected exit code 0 without HOME, got %d", code)
	}
}
