package blocklist

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ispmail/userctl/internal/directory"
)

func newTestFile(t *testing.T, content string) *File {
	t.Helper()
	path := filepath.Join(t.TempDir(), "access")
	if content != "" {
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("seed blocklist: %v", err)
		}
	}
	f := New(path, "")
	return f
}

func TestEntriesSkipsCommentsAndNonRejectLines(t *testing.T) {
	f := newTestFile(t, "# blocked senders\n\nspam@example.com REJECT\nfriend@example.com OK\nbaddomain.net REJECT\n")
	entries, err := f.Entries()
	if err != nil {
		t.Fatalf("Entries returned error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %v", entries)
	}
	if entries[0] != "baddomain.net" || entries[1] != "spam@example.com" {
		t.Fatalf("unexpected entries: %v", entries)
	}
}

func TestEntriesMissingFileMeansEmpty(t *testing.T) {
	f := newTestFile(t, "")
	entries, err := f.Entries()
	if err != nil {
		t.Fatalf("Entries returned error: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected no entries, got %v", entries)
	}
}

func TestAddAppendsRejectRecord(t *testing.T) {
	f := newTestFile(t, "# keep me\n")
	if err := f.Add("spam@example.com"); err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	data, err := os.ReadFile(f.Path)
	if err != nil {
		t.Fatalf("read blocklist: %v", err)
	}
	if !strings.Contains(string(data), "# keep me") {
		t.Fatalf("comment line lost: %q", data)
	}
	if !strings.Contains(string(data), "spam@example.com REJECT\n") {
		t.Fatalf("missing REJECT record: %q", data)
	}
}

func TestAddRejectsDuplicate(t *testing.T) {
	f := newTestFile(t, "spam@example.com REJECT\n")
	err := f.Add("spam@example.com")
	if err == nil {
		t.Fatalf("expected duplicate add to fail")
	}
	if !directory.IsValidation(err) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestRemoveRewritesOnlyMatchingRecord(t *testing.T) {
	f := newTestFile(t, "# blocked senders\nspam@example.com REJECT\nbaddomain.net REJECT\nfriend@example.com OK\n")
	if err := f.Remove("spam@example.com"); err != nil {
		t.Fatalf("Remove returned error: %v", err)
	}
	data, err := os.ReadFile(f.Path)
	if err != nil {
		t.Fatalf("read blocklist: %v", err)
	}
	text := string(data)
	if strings.Contains(text, "spam@example.com") {
		t.Fatalf("removed entry still present: %q", text)
	}
	for _, keep := range []string{"# blocked senders", "baddomain.net REJECT", "friend@example.com OK"} {
		if !strings.Contains(text, keep) {
			t.Fatalf("line %q lost on rewrite: %q", keep, text)
		}
	}
}

func TestMutationsRunRebuildCommand(t *testing.T) {
	f := newTestFile(t, "")
	f.Rebuild = "postmap hash:" + f.Path
	var ran []string
	f.runner = func(command string) error {
		ran = append(ran, command)
		return nil
	}

	if err := f.Add("spam@example.com"); err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	if err := f.Remove("spam@example.com"); err != nil {
		t.Fatalf("Remove returned error: %v", err)
	}
	if len(ran) != 2 {
		t.Fatalf("expected rebuild after each mutation, got %v", ran)
	}
	if ran[0] != f.Rebuild {
		t.Fatalf("unexpected rebuild command: %q", ran[0])
	}
}
