package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("GRIDSEL_DATA_DIR", t.TempDir())

	c, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if c.Template.RepoURL != DefaultTemplateRepo {
		t.Fatalf("expected default repo, got %q", c.Template.RepoURL)
	}
	if c.Preview.Rows != 8 || c.Preview.Columns != 16 {
		t.Fatalf("unexpected preview size %dx%d", c.Preview.Rows, c.Preview.Columns)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("GRIDSEL_DATA_DIR", t.TempDir())

	c := Default()
	c.Template.Ref = "develop"
	c.Template.AuthMethod = AuthToken
	c.Preview.Rows = 4
	c.Preview.VimKeys = false
	if err := Save(c); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if got.Template.Ref != "develop" || got.Template.AuthMethod != AuthToken {
		t.Fatalf("template settings not persisted: %+v", got.Template)
	}
	if got.Preview.Rows != 4 || got.Preview.VimKeys {
		t.Fatalf("preview settings not persisted: %+v", got.Preview)
	}
}

func TestLoadNormalizesInvalidValues(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("GRIDSEL_DATA_DIR", dir)

	raw := `{"version":1,"template":{"repo_url":"","auth_method":"password"},"preview":{"rows":-1,"columns":0}}`
	if err := os.WriteFile(filepath.Join(dir, "config.json"), []byte(raw), 0600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	c, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if c.Template.AuthMethod != AuthNone {
		t.Fatalf("expected auth method to fall back to none, got %q", c.Template.AuthMethod)
	}
	if c.Template.RepoURL != DefaultTemplateRepo {
		t.Fatalf("expected default repo, got %q", c.Template.RepoURL)
	}
	if c.Preview.Rows != 8 || c.Preview.Columns != 16 {
		t.Fatalf("expected default preview size, got %dx%d", c.Preview.Rows, c.Preview.Columns)
	}
}

func TestParseAuthMethod(t *testing.T) {
	for _, s := range []string{"none", "token", "ssh_key"} {
		if _, ok := ParseAuthMethod(s); !ok {
			t.Fatalf("expected %q to be accepted", s)
		}
	}
	if _, ok := ParseAuthMethod("basic"); ok {
		t.Fatalf("expected unknown auth method to be rejected")
	}
}
