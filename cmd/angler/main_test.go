package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"anglermatch/internal/catalog"
	"anglermatch/internal/onboarding"

	"github.com/fatih/color"
)

func init() {
	color.NoColor = true
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"ANGLER_DEVICE_LAT", "ANGLER_DEVICE_LON", "ANGLER_DECK_FILE",
		"ANGLER_DARK_MODE", "ANGLER_LOG_LEVEL", "ANGLER_DEBUG",
	} {
		t.Setenv(k, "")
	}
}

// execute runs the root command with args and returns its output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	// Flag values outlive Execute; reset them for the next run.
	defer func() {
		rootCmd.SetArgs(nil)
		verbose, darkMode = false, false
		_ = configInitCmd.Flags().Set("force", "false")
	}()

	err := rootCmd.Execute()
	return buf.String(), err
}

func TestPrintDeck(t *testing.T) {
	var buf bytes.Buffer
	printDeck(&buf, catalog.DefaultAnglers())
	out := buf.String()

	for _, want := range []string{
		"Mike Johnson, 34", "★ 4.8", "2.3 miles · Lake Michigan",
		"Experienced (5-10 years) · Serious Sport Fishing · 127 catches",
		"Fly Fishing, Trout, Shore Fishing", "Available: Next Tuesday, 5:30 AM",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("deck output missing %q:\n%s", want, out)
		}
	}
	if strings.Index(out, "Mike Johnson") > strings.Index(out, "David Rodriguez") {
		t.Fatalf("deck printed out of order:\n%s", out)
	}
}

func TestPrintDeckEmpty(t *testing.T) {
	var buf bytes.Buffer
	printDeck(&buf, nil)
	if !strings.Contains(buf.String(), "No more anglers nearby") {
		t.Fatalf("expected empty-deck notice, got %q", buf.String())
	}
}

func TestPrintCalendar(t *testing.T) {
	var buf bytes.Buffer
	printCalendar(&buf, time.Date(2024, time.February, 27, 8, 0, 0, 0, time.UTC))
	out := buf.String()

	for _, want := range []string{"Today        2024-02-27", "Tomorrow     2024-02-28", "Thu, Feb 29  2024-02-29", "2024-03-11", "Early Morning", "Night fishing adventures"} {
		if !strings.Contains(out, want) {
			t.Fatalf("calendar missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "2024-03-12") {
		t.Fatalf("calendar runs past fourteen days:\n%s", out)
	}
}

func TestPrintSummary(t *testing.T) {
	anglers := catalog.DefaultAnglers()

	var buf bytes.Buffer
	printSummary(&buf, onboarding.Session{Stage: onboarding.StageLocation}, anglers)
	if !strings.Contains(buf.String(), "stopped at the location step") {
		t.Fatalf("unexpected summary: %q", buf.String())
	}

	buf.Reset()
	printSummary(&buf, onboarding.Session{Stage: onboarding.StageMatching}, anglers)
	if !strings.Contains(buf.String(), "No matches") {
		t.Fatalf("unexpected summary: %q", buf.String())
	}

	buf.Reset()
	printSummary(&buf, onboarding.Session{Stage: onboarding.StageMatching, Matches: []string{"3", "1", "ghost"}}, anglers)
	out := buf.String()
	if !strings.Contains(out, "3 matches found!") || !strings.Contains(out, "♥ David Rodriguez") || !strings.Contains(out, "♥ ghost") {
		t.Fatalf("unexpected summary: %q", out)
	}
}

func TestDeckCommandReadsConfiguredFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	deck := filepath.Join(dir, "deck.yaml")
	if err := os.WriteFile(deck, []byte("anglers:\n  - id: x\n    name: Solo Angler\n    age: 50\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("ANGLER_DECK_FILE", deck)

	out, err := execute(t, "deck", "--config", filepath.Join(dir, "config.yaml"))
	if err != nil {
		t.Fatalf("deck returned error: %v", err)
	}
	if !strings.Contains(out, "Solo Angler, 50") || strings.Contains(out, "Mike Johnson") {
		t.Fatalf("expected only the configured deck, got:\n%s", out)
	}
}

func TestConfigInitAndShow(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "angler", "config.yaml")

	out, err := execute(t, "config", "init", "--config", path)
	if err != nil {
		t.Fatalf("config init returned error: %v", err)
	}
	if !strings.Contains(out, "Wrote default config") {
		t.Fatalf("unexpected output: %s", out)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config file not written: %v", err)
	}

	if _, err := execute(t, "config", "init", "--config", path); err == nil || !strings.Contains(err.Error(), "already exists") {
		t.Fatalf("expected refusal to overwrite, got %v", err)
	}

	out, err = execute(t, "config", "show", "--config", path)
	if err != nil {
		t.Fatalf("config show returned error: %v", err)
	}
	if !strings.Contains(out, "default_radius: 25") {
		t.Fatalf("config show missing radius:\n%s", out)
	}
}

func TestInvalidConfigIsRejected(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("location:\n  default_radius: 500\n"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := execute(t, "calendar", "--config", path)
	if err == nil || !strings.Contains(err.Error(), "default_radius") {
		t.Fatalf("expected radius validation error, got %v", err)
	}
}

func TestConfigInitForceRepairsInvalidFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("location:\n  default_radius: 500\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := execute(t, "config", "init", "--config", path); err == nil || !strings.Contains(err.Error(), "already exists") {
		t.Fatalf("expected refusal without --force, got %v", err)
	}

	out, err := execute(t, "--config", path, "config", "init", "--force")
	if err != nil {
		t.Fatalf("config init --force returned error: %v", err)
	}
	if !strings.Contains(out, "Wrote default config") {
		t.Fatalf("unexpected output: %s", out)
	}

	out, err = execute(t, "config", "show", "--config", path)
	if err != nil {
		t.Fatalf("repaired config does not load: %v", err)
	}
	if !strings.Contains(out, "default_radius: 25") {
		t.Fatalf("config not reset to defaults:\n%s", out)
	}
}

func TestConfigLoggingRecordsEnvOverrides(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	t.Setenv("ANGLER_DARK_MODE", "sometimes")

	if _, err := execute(t, "calendar", "-v", "--config", filepath.Join(dir, "config.yaml")); err != nil {
		t.Fatalf("calendar returned error: %v", err)
	}

	logs, err := filepath.Glob(filepath.Join(dir, "logs", "*_angler.log"))
	if err != nil || len(logs) != 1 {
		t.Fatalf("expected one log file, got %v (%v)", logs, err)
	}
	data, err := os.ReadFile(logs[0])
	if err != nil {
		t.Fatal(err)
	}
	out := string(data)
	for _, want := range []string{"config loaded", "ignoring unparseable env override", "ANGLER_DARK_MODE"} {
		if !strings.Contains(out, want) {
			t.Fatalf("log missing %q:\n%s", want, out)
		}
	}
}
