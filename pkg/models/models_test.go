package models

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDummyAgentLifecycle(t *testing.T) {
	ctx := context.Background()
	agent := NewDummyAgent("")

	path := filepath.Join(t.TempDir(), "note.txt")
	if err := os.WriteFile(path, []byte("hello"), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}

	f, err := agent.UploadFile(ctx, path, "Note")
	if err != nil {
		t.Fatalf("UploadFile returned error: %v", err)
	}
	if f.Name == "" || f.State != "ACTIVE" {
		t.Fatalf("unexpected uploaded file: %+v", f)
	}

	got, err := agent.GetFile(ctx, f.Name)
	if err != nil {
		t.Fatalf("GetFile returned error: %v", err)
	}
	if got.DisplayName != "Note" {
		t.Fatalf("display name = %q, want %q", got.DisplayName, "Note")
	}

	files, err := agent.ListFiles(ctx)
	if err != nil || len(files) != 1 {
		t.Fatalf("ListFiles = %v, %v; want one file", files, err)
	}

	if err := agent.DeleteFile(ctx, f.Name); err != nil {
		t.Fatalf("DeleteFile returned error: %v", err)
	}
	if _, err := agent.GetFile(ctx, f.Name); err == nil {
		t.Fatalf("expected error getting deleted file")
	}
	if err := agent.DeleteFile(ctx, f.Name); err == nil {
		t.Fatalf("expected error deleting twice")
	}
}

func TestDummyAgentUploadMissingFile(t *testing.T) {
	agent := NewDummyAgent("")
	if _, err := agent.UploadFile(context.Background(), filepath.Join(t.TempDir(), "nope.png"), "x"); err == nil {
		t.Fatalf("expected error for missing local file")
	}
}

func TestDummyAgentGenerateMentionsFile(t *testing.T) {
	agent := NewDummyAgent("Prefix:")
	out, err := agent.GenerateWithFile(context.Background(), "describe", &RemoteFile{DisplayName: "Chart"})
	if err != nil {
		t.Fatalf("GenerateWithFile returned error: %v", err)
	}
	if !strings.HasPrefix(out, "Prefix:") || !strings.Contains(out, "Chart") {
		t.Fatalf("unexpected response: %q", out)
	}
}
