package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"holocron/internal/lookup"
)

func TestCacheShowEmpty(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"cache", "--show"}, env.configPath)
	if err != nil {
		t.Fatalf("cache --show: %v", err)
	}
	if out != "Cache is empty.\n" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestCacheShowListsEntries(t *testing.T) {
	env := setupCLITestEnv(t)
	if _, _, err := runCLI(t, []string{"search", "luke"}, env.configPath); err != nil {
		t.Fatalf("search: %v", err)
	}

	out, _, err := runCLI(t, []string{"cache", "--show"}, env.configPath)
	if err != nil {
		t.Fatalf("cache --show: %v", err)
	}
	requireContains(t, out, "Name: Luke Skywalker\nTime of search: ")
	requireContains(t, out, "Result:\n  Height: 172\n  Mass: 77\n  Birth Year: 19BBY\n----------------\n")
}

func TestCacheCleanThenShow(t *testing.T) {
	env := setupCLITestEnv(t)
	if _, _, err := runCLI(t, []string{"search", "Luke Skywalker"}, env.configPath); err != nil {
		t.Fatalf("search: %v", err)
	}

	out, _, err := runCLI(t, []string{"cache", "--clean"}, env.configPath)
	if err != nil {
		t.Fatalf("cache --clean: %v", err)
	}
	if out != "removed cache\n" {
		t.Fatalf("unexpected clean output %q", out)
	}
	if _, err := os.Stat(env.cachePath); !os.IsNotExist(err) {
		t.Fatalf("expected cache file removed, stat err=%v", err)
	}

	out, _, err = runCLI(t, []string{"cache", "--show"}, env.configPath)
	if err != nil {
		t.Fatalf("cache --show: %v", err)
	}
	if out != "Cache is empty.\n" {
		t.Fatalf("unexpected show output %q", out)
	}
}

func TestCacheCleanWithoutFileIsSilent(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"cache", "--clean"}, env.configPath)
	if err != nil {
		t.Fatalf("cache --clean: %v", err)
	}
	if out != "" {
		t.Fatalf("expected no output, got %q", out)
	}
}

func TestCacheCleanTakesPrecedenceOverShow(t *testing.T) {
	env := setupCLITestEnv(t)
	if _, _, err := runCLI(t, []string{"search", "Luke Skywalker"}, env.configPath); err != nil {
		t.Fatalf("search: %v", err)
	}

	out, _, err := runCLI(t, []string{"cache", "--clean", "--show"}, env.configPath)
	if err != nil {
		t.Fatalf("cache --clean --show: %v", err)
	}
	if out != "removed cache\n" {
		t.Fatalf("expected only the clean message, got %q", out)
	}
}

func TestCacheWithoutFlagsIsNoop(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"cache"}, env.configPath)
	if err != nil {
		t.Fatalf("cache: %v", err)
	}
	if out != "" {
		t.Fatalf("expected no output, got %q", out)
	}
}

func TestCacheWithoutFlagsSkipsConfig(t *testing.T) {
	env := setupCLITestEnv(t)
	if err := os.WriteFile(env.configPath, []byte("[cache\nbackend = "), 0o644); err != nil {
		t.Fatalf("write malformed config: %v", err)
	}

	out, _, err := runCLI(t, []string{"cache"}, env.configPath)
	if err != nil {
		t.Fatalf("cache: %v", err)
	}
	if out != "" {
		t.Fatalf("expected no output, got %q", out)
	}
	if _, err := os.Stat(filepath.Dir(env.cachePath)); !os.IsNotExist(err) {
		t.Fatalf("expected cache directory left uncreated, stat err=%v", err)
	}

	if _, _, err := runCLI(t, []string{"cache", "--show"}, env.configPath); err == nil {
		t.Fatal("expected malformed config to fail once work is requested")
	}
}

func TestCacheShowTable(t *testing.T) {
	env := setupCLITestEnv(t)
	if _, _, err := runCLI(t, []string{"search", "luke"}, env.configPath); err != nil {
		t.Fatalf("search: %v", err)
	}

	out, _, err := runCLI(t, []string{"cache", "--show", "--table"}, env.configPath)
	if err != nil {
		t.Fatalf("cache --show --table: %v", err)
	}
	for _, want := range []string{"SEARCH", "BIRTH YEAR", "luke", "Luke Skywalker", "172", "19BBY"} {
		requireContains(t, out, want)
	}
	if !strings.Contains(out, "╭") {
		t.Fatalf("expected rounded table border, got:\n%s", out)
	}
}

func TestCacheShowTableEmpty(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"cache", "--show", "--table"}, env.configPath)
	if err != nil {
		t.Fatalf("cache --show --table: %v", err)
	}
	if out != lookup.EmptyCacheMessage+"\n" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestCacheCorruptFileFails(t *testing.T) {
	env := setupCLITestEnv(t)
	if err := os.MkdirAll(filepath.Dir(env.cachePath), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(env.cachePath, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write corrupt cache: %v", err)
	}

	if _, _, err := runCLI(t, []string{"cache", "--show"}, env.configPath); err == nil {
		t.Fatal("expected corrupt cache to fail")
	}
}
