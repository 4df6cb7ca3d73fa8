package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestGetConfig(t *testing.T) {
	dir := t.TempDir()
	fp := filepath.Join(dir, "config.yml")
	body := "searchPaths:\n  - /usr/lib/python3\n  - /opt/site-packages\nlogFile: /tmp/bridge.log\n"
	if err := os.WriteFile(fp, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := GetConfig(fp)
	if err != nil {
		t.Fatalf("GetConfig: %v", err)
	}
	want := &Config{
		SearchPaths: []string{"/usr/lib/python3", "/opt/site-packages"},
		LogFile:     "/tmp/bridge.log",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unmatch (-want +got):\n%s", diff)
	}
}

func TestGetConfigNotFound(t *testing.T) {
	_, err := GetConfig(filepath.Join(t.TempDir(), "missing.yml"))
	if !errors.Is(err, ErrNotFoundConfig) {
		t.Errorf("want ErrNotFoundConfig, got %v", err)
	}
}

func TestGetConfigInvalidYaml(t *testing.T) {
	dir := t.TempDir()
	fp := filepath.Join(dir, "config.yml")
	if err := os.WriteFile(fp, []byte("searchPaths: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := GetConfig(fp); err == nil {
		t.Error("want unmarshal error, got nil")
	}
}
