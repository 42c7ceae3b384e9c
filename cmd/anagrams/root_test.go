package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runCLI(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	cmd := newRootCommand()
	var out, errBuf bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errBuf)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errBuf.String(), err
}

func writeWordlist(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "words.txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunGroupsFixture(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	words := writeWordlist(t, "listen silent enlist banana")

	stdout, _, err := runCLI(t, "-w", words)
	if err != nil {
		t.Fatalf("command failed: %v", err)
	}
	want := "banana\nlisten, silent, enlist\n"
	if stdout != want {
		t.Fatalf("unexpected output: got %q want %q", stdout, want)
	}
}

func TestRunRejectsLowMinLettersBeforeReadingWordlist(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	missing := filepath.Join(t.TempDir(), "never-read.txt")

	_, _, err := runCLI(t, "-w", missing, "-m", "1")
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "min_letters") {
		t.Fatalf("expected min_letters error before word list access, got: %v", err)
	}
}

func TestRunCaseSensitiveByDefault(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	words := writeWordlist(t, "Evil Live")

	stdout, _, err := runCLI(t, "-w", words)
	if err != nil {
		t.Fatalf("command failed: %v", err)
	}
	if stdout != "Evil\nLive\n" {
		t.Fatalf("expected separate singleton groups, got %q", stdout)
	}
}

func TestRunIgnoreCapitals(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	words := writeWordlist(t, "Evil Live")

	stdout, _, err := runCLI(t, "-w", words, "-c")
	if err != nil {
		t.Fatalf("command failed: %v", err)
	}
	if stdout != "Evil, Live\n" {
		t.Fatalf("expected one group with capitals ignored, got %q", stdout)
	}
}

func TestRunExcludeCapitals(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	words := writeWordlist(t, "Apple apple")

	stdout, _, err := runCLI(t, "-w", words, "-x")
	if err != nil {
		t.Fatalf("command failed: %v", err)
	}
	if stdout != "apple\n" {
		t.Fatalf("expected capitalized word dropped, got %q", stdout)
	}
}

func TestRunMinGroupSize(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	words := writeWordlist(t, "listen silent enlist banana")

	stdout, _, err := runCLI(t, "-w", words, "--min-group-size", "2")
	if err != nil {
		t.Fatalf("command failed: %v", err)
	}
	if stdout != "listen, silent, enlist\n" {
		t.Fatalf("expected singleton suppressed, got %q", stdout)
	}
}

func TestRunEmptyFilteredListProducesEmptyOutput(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	words := writeWordlist(t, "to be or not")

	stdout, _, err := runCLI(t, "-w", words)
	if err != nil {
		t.Fatalf("expected success for empty result, got: %v", err)
	}
	if stdout != "" {
		t.Fatalf("expected empty output, got %q", stdout)
	}
}

func TestRunWritesFileAndEchoes(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	words := writeWordlist(t, "listen silent banana")
	outPath := filepath.Join(t.TempDir(), "out.txt")

	stdout, _, err := runCLI(t, "-w", words, "-o", outPath, "-p")
	if err != nil {
		t.Fatalf("command failed: %v", err)
	}
	fileContent, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("output file missing: %v", err)
	}
	want := "banana\nlisten, silent\n"
	if string(fileContent) != want {
		t.Fatalf("unexpected file content: %q", fileContent)
	}
	if stdout != want {
		t.Fatalf("echo differs from file content: %q", stdout)
	}
}

func TestRunFileWithoutPrintDoesNotEcho(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	words := writeWordlist(t, "listen silent")
	outPath := filepath.Join(t.TempDir(), "out.txt")

	stdout, _, err := runCLI(t, "-w", words, "-o", outPath)
	if err != nil {
		t.Fatalf("command failed: %v", err)
	}
	if stdout != "" {
		t.Fatalf("expected silent stdout, got %q", stdout)
	}
	if _, err := os.Stat(outPath); err != nil {
		t.Fatalf("output file missing: %v", err)
	}
}

func TestRunMissingOutputDirFailsBeforeProcessing(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	missingWords := filepath.Join(t.TempDir(), "never-read.txt")
	badOut := filepath.Join(t.TempDir(), "nodir", "out.txt")

	_, _, err := runCLI(t, "-w", missingWords, "-o", badOut)
	if err == nil {
		t.Fatal("expected error for missing output directory")
	}
	if !strings.Contains(err.Error(), "output directory") {
		t.Fatalf("expected output directory error to win, got: %v", err)
	}
}

func TestRunWarnsOnOverwrite(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	words := writeWordlist(t, "listen silent")
	outPath := filepath.Join(t.TempDir(), "out.txt")
	if err := os.WriteFile(outPath, []byte("old"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, stderr, err := runCLI(t, "-w", words, "-o", outPath)
	if err != nil {
		t.Fatalf("overwrite must not be fatal: %v", err)
	}
	if !strings.Contains(stderr, "Warning: will overwrite") {
		t.Fatalf("expected overwrite warning on stderr, got %q", stderr)
	}
}

func TestRunVerboseSummary(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	words := writeWordlist(t, "listen silent banana")

	stdout, stderr, err := runCLI(t, "-w", words, "-v")
	if err != nil {
		t.Fatalf("command failed: %v", err)
	}
	if !strings.Contains(stderr, "Words read") {
		t.Fatalf("expected summary table on stderr, got %q", stderr)
	}
	if !strings.Contains(stderr, "word list resolved") {
		t.Fatalf("expected debug progress on stderr, got %q", stderr)
	}
	if strings.Contains(stdout, "Words read") {
		t.Fatal("summary leaked into stdout")
	}
}

func TestRunNoWordlistAndNoSystemDictionary(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	configPath := filepath.Join(dir, "anagrams.toml")
	probe := filepath.Join(dir, "missing-dict")
	content := "[wordlist]\nsystem_paths = [\"" + probe + "\"]\n"
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	_, _, err := runCLI(t, "--config", configPath)
	if err == nil {
		t.Fatal("expected error when no dictionary can be resolved")
	}
	if !strings.Contains(err.Error(), "no word list") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRunProbesConfiguredSystemPaths(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	dict := filepath.Join(dir, "dict")
	if err := os.WriteFile(dict, []byte("stable tables"), 0o644); err != nil {
		t.Fatal(err)
	}
	configPath := filepath.Join(dir, "anagrams.toml")
	missing := filepath.Join(dir, "missing-dict")
	content := "[wordlist]\nsystem_paths = [\"" + missing + "\", \"" + dict + "\"]\n"
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	stdout, _, err := runCLI(t, "--config", configPath)
	if err != nil {
		t.Fatalf("command failed: %v", err)
	}
	if stdout != "stable, tables\n" {
		t.Fatalf("unexpected output: %q", stdout)
	}
}

func TestConfigInitAndValidate(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	configPath := filepath.Join(t.TempDir(), "config.toml")

	stdout, _, err := runCLI(t, "config", "init", "--path", configPath)
	if err != nil {
		t.Fatalf("config init failed: %v", err)
	}
	if !strings.Contains(stdout, configPath) {
		t.Fatalf("init should report the target path, got %q", stdout)
	}

	stdout, _, err = runCLI(t, "config", "validate", "--config", configPath)
	if err != nil {
		t.Fatalf("config validate failed: %v", err)
	}
	if !strings.Contains(stdout, "Configuration valid") {
		t.Fatalf("unexpected validate output: %q", stdout)
	}
}

func TestConfigInitRefusesOverwrite(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	configPath := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(configPath, []byte("existing"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, _, err := runCLI(t, "config", "init", "--path", configPath)
	if err == nil {
		t.Fatal("expected refusal without --overwrite")
	}

	if _, _, err := runCLI(t, "config", "init", "--path", configPath, "--overwrite"); err != nil {
		t.Fatalf("overwrite should succeed: %v", err)
	}
}
