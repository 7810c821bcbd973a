package deploy

import (
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestWriteConfigVercel(t *testing.T) {
	dir := t.TempDir()
	path, err := WriteConfig("vercel", dir)
	if err != nil {
		t.Fatalf("write config: %v", err)
	}
	if filepath.Base(path) != "vercel.json" {
		t.Errorf("file name: got %s, want vercel.json", filepath.Base(path))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	var cfg map[string]any
	if err := json.Unmarshal(data, &cfg); err != nil {
		t.Fatalf("vercel.json is not valid JSON: %v", err)
	}
	if cfg["outputDirectory"] != "public" {
		t.Errorf("outputDirectory: got %v, want public", cfg["outputDirectory"])
	}
}

func TestWriteConfigNetlify(t *testing.T) {
	dir := t.TempDir()
	path, err := WriteConfig("netlify", dir)
	if err != nil {
		t.Fatalf("write config: %v", err)
	}
	if filepath.Base(path) != "netlify.toml" {
		t.Errorf("file name: got %s, want netlify.toml", filepath.Base(path))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !strings.Contains(string(data), `publish = "public"`) {
		t.Errorf("netlify.toml missing publish dir:\n%s", data)
	}
}

func TestWriteConfigUnknownPlatform(t *testing.T) {
	if _, err := WriteConfig("heroku", t.TempDir()); err == nil {
		t.Error("expected an error for an unsupported platform")
	}
}

func TestNewS3UploaderRequiresBucket(t *testing.T) {
	if _, err := NewS3Uploader(nil, discardLogger()); err == nil {
		t.Error("expected an error without s3 settings")
	}
}
