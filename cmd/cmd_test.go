package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// testDeps wires command dependencies to buffers and a temp database.
type testDeps struct {
	stdout *bytes.Buffer
	stderr *bytes.Buffer
	exit   int
	exited bool
}

func setupTestDeps(t *testing.T) *testDeps {
	t.Helper()

	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.toml")
	// Notifications off so tests never reach the desktop.
	if err := os.WriteFile(configPath, []byte("notifications = false\n"), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	td := &testDeps{
		stdout: &bytes.Buffer{},
		stderr: &bytes.Buffer{},
	}

	SetDeps(&Deps{
		Stdout: td.stdout,
		Stderr: td.stderr,
		Stdin:  strings.NewReader(""),
		Exit: func(code int) {
			td.exit = code
			td.exited = true
		},
		StorePath:  func() (string, error) { return filepath.Join(dir, "dayflow.db"), nil },
		ConfigPath: func() (string, error) { return configPath, nil },
	})
	t.Cleanup(ResetDeps)

	return td
}

func (td *testDeps) reset() {
	td.stdout.Reset()
	td.stderr.Reset()
	td.exit = 0
	td.exited = false
}

func TestJournalCommand(t *testing.T) {
	td := setupTestDeps(t)

	setJournal([]string{"Slow", "morning,", "good", "afternoon"})

	if td.exited {
		t.Fatalf("Unexpected exit %d: %s", td.exit, td.stderr.String())
	}
	if !strings.Contains(td.stdout.String(), "Journal saved for") {
		t.Errorf("Expected confirmation, got: %q", td.stdout.String())
	}

	today := time.Now().Format("2006-01-02")
	td.reset()
	showEntry(today)
	if !strings.Contains(td.stdout.String(), "Slow morning, good afternoon") {
		t.Errorf("Expected journal text in show output, got: %q", td.stdout.String())
	}
}

func TestSlotAndTimerCommands(t *testing.T) {
	td := setupTestDeps(t)

	slotDescFlag = "quadratics"
	addSlot("09:00", []string{"Algebra", "revision"})
	slotDescFlag = ""
	if td.exited {
		t.Fatalf("Unexpected exit %d: %s", td.exit, td.stderr.String())
	}
	if !strings.Contains(td.stdout.String(), `Added slot "Algebra revision" at 09:00`) {
		t.Errorf("Unexpected add output: %q", td.stdout.String())
	}

	td.reset()
	applyTimer("start", "1")
	if td.exited {
		t.Fatalf("Unexpected exit %d: %s", td.exit, td.stderr.String())
	}
	if !strings.Contains(td.stdout.String(), "Started Algebra revision") {
		t.Errorf("Unexpected start output: %q", td.stdout.String())
	}

	// A second start is rejected without error.
	td.reset()
	applyTimer("start", "1")
	if td.exited {
		t.Fatalf("Unexpected exit %d: %s", td.exit, td.stderr.String())
	}
	if !strings.Contains(td.stdout.String(), "already active") {
		t.Errorf("Expected debounce message, got: %q", td.stdout.String())
	}

	td.reset()
	applyTimer("pause", "1")
	if !strings.Contains(td.stdout.String(), "Paused Algebra revision") {
		t.Errorf("Unexpected pause output: %q", td.stdout.String())
	}

	td.reset()
	showEntry("")
	out := td.stdout.String()
	if !strings.Contains(out, "[paused]") {
		t.Errorf("Expected paused status in show output, got: %q", out)
	}
	if !strings.Contains(out, "Started") || !strings.Contains(out, "Paused") {
		t.Errorf("Expected timer history in show output, got: %q", out)
	}
}

func TestTimerCommandErrors(t *testing.T) {
	td := setupTestDeps(t)

	applyTimer("resume", "1")
	if !td.exited || td.exit != 1 {
		t.Errorf("Expected exit 1 for unknown action, got exited=%t code=%d", td.exited, td.exit)
	}
	if !strings.Contains(td.stderr.String(), "Unknown timer action") {
		t.Errorf("Unexpected stderr: %q", td.stderr.String())
	}

	// No entry for today yet.
	td.reset()
	applyTimer("start", "1")
	if !td.exited || td.exit != 1 {
		t.Errorf("Expected exit 1 for missing entry, got exited=%t code=%d", td.exited, td.exit)
	}

	td.reset()
	addSlot("09:00", []string{"Reading"})
	td.reset()
	applyTimer("start", "5")
	if !td.exited || !strings.Contains(td.stderr.String(), "does not exist") {
		t.Errorf("Expected out-of-range slot error, got: %q", td.stderr.String())
	}
}

func TestTargetCommands(t *testing.T) {
	td := setupTestDeps(t)

	addTarget([]string{"Finish", "chapter", "3"})
	if td.exited {
		t.Fatalf("Unexpected exit %d: %s", td.exit, td.stderr.String())
	}

	td.reset()
	toggleTarget("1")
	if !strings.Contains(td.stdout.String(), "Target 1 done: Finish chapter 3") {
		t.Errorf("Unexpected toggle output: %q", td.stdout.String())
	}

	td.reset()
	toggleTarget("1")
	if !strings.Contains(td.stdout.String(), "Target 1 open: Finish chapter 3") {
		t.Errorf("Expected toggle back to open, got: %q", td.stdout.String())
	}

	td.reset()
	toggleTarget("9")
	if !td.exited || !strings.Contains(td.stderr.String(), "does not exist") {
		t.Errorf("Expected out-of-range target error, got: %q", td.stderr.String())
	}
}

func TestSearchCommand(t *testing.T) {
	td := setupTestDeps(t)

	setJournal([]string{"Reviewed", "the", "quarterly", "roadmap"})
	td.reset()

	searchEntries("roadmap")
	if !strings.Contains(td.stdout.String(), "Found 1 entries") {
		t.Errorf("Expected a match, got: %q", td.stdout.String())
	}

	td.reset()
	searchEntries("nonexistent")
	if !strings.Contains(td.stdout.String(), "No entries matching") {
		t.Errorf("Expected no matches, got: %q", td.stdout.String())
	}
}

func TestDeleteCommand(t *testing.T) {
	td := setupTestDeps(t)

	setJournal([]string{"short", "day"})
	td.reset()

	deleteYesFlag = true
	deleteEntry("today")
	deleteYesFlag = false
	if td.exited {
		t.Fatalf("Unexpected exit %d: %s", td.exit, td.stderr.String())
	}
	if !strings.Contains(td.stdout.String(), "Deleted entry for") {
		t.Errorf("Unexpected delete output: %q", td.stdout.String())
	}

	td.reset()
	showEntry("today")
	if !strings.Contains(td.stdout.String(), "No entry for") {
		t.Errorf("Expected entry gone, got: %q", td.stdout.String())
	}
}

func TestListRecentEmpty(t *testing.T) {
	td := setupTestDeps(t)

	listRecent()
	if td.exited {
		t.Fatalf("Unexpected exit %d: %s", td.exit, td.stderr.String())
	}
	if !strings.Contains(td.stdout.String(), "No entries yet.") {
		t.Errorf("Unexpected output: %q", td.stdout.String())
	}
}

func TestResolveDateInvalid(t *testing.T) {
	td := setupTestDeps(t)

	if _, ok := resolveDate("not-a-date"); ok {
		t.Error("Expected resolveDate to fail")
	}
	if !td.exited || td.exit != 1 {
		t.Errorf("Expected exit 1, got exited=%t code=%d", td.exited, td.exit)
	}
}
