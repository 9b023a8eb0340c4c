package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Attempts.LockThreshold != 3 || cfg.Attempts.MinExplanationChars != 20 {
		t.Errorf("defaults = %+v", cfg.Attempts)
	}
	if cfg.ReviewerMode {
		t.Error("reviewer mode must default off")
	}
}

func TestLoadExplicitMissingFileFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("explicitly named missing file must fail")
	}
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
dbPath: /tmp/hub.db
contentDir: /srv/lessons
reviewerMode: true
attempts:
  lockThreshold: 5
  minExplanationChars: 40
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DBPath != "/tmp/hub.db" || cfg.ContentDir != "/srv/lessons" {
		t.Errorf("paths = %+v", cfg)
	}
	if !cfg.ReviewerMode {
		t.Error("reviewerMode not read")
	}
	if cfg.Attempts.LockThreshold != 5 || cfg.Attempts.MinExplanationChars != 40 {
		t.Errorf("attempts = %+v", cfg.Attempts)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "contentDir: /srv/lessons\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Attempts.LockThreshold != 3 {
		t.Errorf("lockThreshold = %d, want default", cfg.Attempts.LockThreshold)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "dbPath: /from/file.db\nattempts:\n  lockThreshold: 5\n")
	t.Setenv("LEARNINGHUB_DB", "/from/env.db")
	t.Setenv("LEARNINGHUB_LOCK_THRESHOLD", "7")
	t.Setenv("LEARNINGHUB_REVIEWER_MODE", "1")

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.DBPath != "/from/env.db" {
		t.Errorf("dbPath = %q", cfg.DBPath)
	}
	if cfg.Attempts.LockThreshold != 7 {
		t.Errorf("lockThreshold = %d", cfg.Attempts.LockThreshold)
	}
	if !cfg.ReviewerMode {
		t.Error("reviewer mode env override ignored")
	}
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Attempts.LockThreshold = 0
	if err := cfg.Validate(); err == nil {
		t.Error("zero lock threshold must fail validation")
	}

	cfg = Default()
	cfg.Attempts.MinExplanationChars = -1
	if err := cfg.Validate(); err == nil {
		t.Error("negative explanation minimum must fail validation")
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := writeConfig(t, "attempts: [not a map\n")
	if _, err := Load(path); err == nil {
		t.Error("malformed yaml must fail")
	}
}
