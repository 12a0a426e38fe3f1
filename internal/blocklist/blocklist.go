// Package blocklist maintains the postfix access map that rejects mail
// from abusive senders. Entries are "<address> REJECT" lines in a plain
// text file; after every change the postmap database is rebuilt so
// postfix picks the change up.
package blocklist

import (
	"fmt"
	"os"
	"os/exec"
	"sort"
	"strings"

	"github.com/ispmail/userctl/internal/directory"
	"github.com/ispmail/userctl/internal/logging/events"
)

// File manages one postfix access file and its compiled map.
type File struct {
	Path string

	// Rebuild is the shell command run after every change, typically
	// "postmap hash:/etc/postfix/access". Tests swap it out.
	Rebuild string

	runner func(command string) error
}

// New returns a blocklist over path that rebuilds with the given command.
func New(path, rebuild string) *File {
	return &File{Path: path, Rebuild: rebuild, runner: runShell}
}

func runShell(command string) error {
	out, err := exec.Command("sh", "-c", command).CombinedOutput()
	if err != nil {
		return fmt.Errorf("%s: %w (%s)", command, err, strings.TrimSpace(string(out)))
	}
	return nil
}

// rejectAddress extracts the blocked address from an access-file line, or
// "" when the line is blank, a comment, or not a REJECT entry.
func rejectAddress(line string) string {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return ""
	}
	addr, action, found := strings.Cut(line, " ")
	if !found || strings.TrimSpace(action) != "REJECT" {
		return ""
	}
	return addr
}

// Entries returns the blocked addresses sorted alphabetically. Blank
// lines, comments and non-REJECT records are skipped. A missing file
// means nothing is blocked yet.
func (f *File) Entries() ([]string, error) {
	lines, err := f.readLines()
	if err != nil {
		return nil, err
	}
	var entries []string
	for _, line := range lines {
		if addr := rejectAddress(line); addr != "" {
			entries = append(entries, addr)
		}
	}
	sort.Strings(entries)
	return entries, nil
}

// Add blocks an address by appending a REJECT record. Adding an address
// that is already blocked is a validation error surfaced to the operator.
func (f *File) Add(address string) error {
	entries, err := f.Entries()
	if err != nil {
		return err
	}
	for _, e := range entries {
		if e == address {
			return directory.Validationf("'%s' is already blocked", address)
		}
	}
	handle, err := os.OpenFile(f.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open blocklist %s: %w", f.Path, err)
	}
	_, err = fmt.Fprintf(handle, "%s REJECT\n", address)
	if cerr := handle.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("append to blocklist %s: %w", f.Path, err)
	}
	events.Blocklist.Blocked(address)
	return f.rebuild()
}

// Remove unblocks an address, rewriting the file without the matching
// REJECT record. Other lines, including comments, survive untouched.
func (f *File) Remove(address string) error {
	lines, err := f.readLines()
	if err != nil {
		return err
	}
	kept := lines[:0]
	for _, line := range lines {
		if rejectAddress(line) == address {
			continue
		}
		kept = append(kept, line)
	}
	var b strings.Builder
	for _, line := range kept {
		b.WriteString(line)
		b.WriteString("\n")
	}
	if err := os.WriteFile(f.Path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("write blocklist %s: %w", f.Path, err)
	}
	events.Blocklist.Unblocked(address)
	return f.rebuild()
}

func (f *File) readLines() ([]string, error) {
	data, err := os.ReadFile(f.Path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read blocklist %s: %w", f.Path, err)
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) == 1 && lines[0] == "" {
		return nil, nil
	}
	return lines, nil
}

func (f *File) rebuild() error {
	if f.Rebuild == "" {
		return nil
	}
	err := f.runner(f.Rebuild)
	events.Blocklist.Rebuild(f.Rebuild, err)
	if err != nil {
		return fmt.Errorf("rebuild postfix map: %w", err)
	}
	return nil
}
