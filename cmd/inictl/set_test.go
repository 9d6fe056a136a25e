package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	ini "github.com/Snowlt/go-ini"
)

func writeTestFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "app.ini")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}
	return path
}

func TestSetCommand(t *testing.T) {
	path := writeTestFile(t, "[server]\nhost=127.0.0.1\n")

	if err := runSet([]string{path, "server", "port", "8080"}); err != nil {
		t.Fatalf("runSet failed: %v", err)
	}
	if err := runSet([]string{path, "client", "retries", "3"}); err != nil {
		t.Fatalf("runSet failed to create section: %v", err)
	}

	doc, err := ini.Load(path)
	if err != nil {
		t.Fatalf("failed to reload file: %v", err)
	}
	server, ok := doc.Section("server")
	if !ok {
		t.Fatal("server section missing after set")
	}
	if got, _ := server.Get("port"); got != "8080" {
		t.Errorf("port = %q, want %q", got, "8080")
	}
	if keys := server.Keys(); !slicesEqual(keys, []string{"host", "port"}) {
		t.Errorf("server keys = %v, want [host port]", keys)
	}
	if _, ok := doc.Section("client"); !ok {
		t.Error("client section was not created")
	}
}

func TestSetCommandWithComment(t *testing.T) {
	path := writeTestFile(t, "")

	setComment = "added by test"
	defer func() { setComment = "" }()

	if err := runSet([]string{path, "server", "host", "10.0.0.1"}); err != nil {
		t.Fatalf("runSet failed: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read back file: %v", err)
	}
	if !strings.Contains(string(raw), "; added by test") {
		t.Errorf("comment missing from output:\n%s", raw)
	}
}

func TestDelCommand(t *testing.T) {
	path := writeTestFile(t, "[server]\nhost=127.0.0.1\nport=8080\n[old]\nk=v\n")

	if err := runDel([]string{path, "server", "port"}); err != nil {
		t.Fatalf("runDel key failed: %v", err)
	}
	if err := runDel([]string{path, "old"}); err != nil {
		t.Fatalf("runDel section failed: %v", err)
	}
	if err := runDel([]string{path, "missing"}); err == nil {
		t.Error("deleting an absent section should fail")
	}

	doc, err := ini.Load(path)
	if err != nil {
		t.Fatalf("failed to reload file: %v", err)
	}
	server, _ := doc.Section("server")
	if server == nil || server.Has("port") {
		t.Error("port should be gone")
	}
	if _, ok := doc.Section("old"); ok {
		t.Error("old section should be gone")
	}
}

func slicesEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
