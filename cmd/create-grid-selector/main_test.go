package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Vansh-Raja/create-grid-selector/internal/config"
	"github.com/Vansh-Raja/create-grid-selector/internal/scaffold"
	"github.com/zalando/go-keyring"
)

type stubCloner struct {
	req *scaffold.CloneRequest
}

func (s *stubCloner) Clone(_ context.Context, dst string, req scaffold.CloneRequest) error {
	*s.req = req
	return os.MkdirAll(filepath.Join(dst, "src"), 0755)
}

func execute(t *testing.T, c *cli, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("GRIDSEL_DATA_DIR", t.TempDir())
	cmd := c.rootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func testCLI(req *scaffold.CloneRequest) *cli {
	c := newCLI()
	c.newCloner = func() scaffold.Cloner { return &stubCloner{req: req} }
	return c
}

func TestScaffoldCommand(t *testing.T) {
	var req scaffold.CloneRequest
	dir := filepath.Join(t.TempDir(), "grid")

	out, err := execute(t, testCLI(&req), "", "-x", "16", "-y", "8", "-d", dir)
	if err != nil {
		t.Fatalf("command returned error: %v\n%s", err, out)
	}
	if req.URL != config.DefaultTemplateRepo {
		t.Fatalf("unexpected clone url %q", req.URL)
	}
	for _, want := range []string{"Success!", "- Columns: 16", "- Rows: 8", "npm install"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
	pages, err := os.ReadFile(filepath.Join(dir, "starter-kit", "src", "pages.js"))
	if err != nil {
		t.Fatalf("pages.js not written: %v", err)
	}
	if !strings.Contains(string(pages), "columns: 16,") {
		t.Fatalf("unexpected pages.js:\n%s", pages)
	}
}

func TestScaffoldCommandRejectsNonPositive(t *testing.T) {
	var req scaffold.CloneRequest
	dir := filepath.Join(t.TempDir(), "grid")

	_, err := execute(t, testCLI(&req), "", "--columns", "0", "--rows", "8", "--dir", dir)
	if !errors.Is(err, scaffold.ErrInvalidColumns) {
		t.Fatalf("expected ErrInvalidColumns, got %v", err)
	}
	_, err = execute(t, testCLI(&req), "", "--columns", "3", "--rows", "-1", "--dir", dir)
	if !errors.Is(err, scaffold.ErrInvalidRows) {
		t.Fatalf("expected ErrInvalidRows, got %v", err)
	}
	if _, statErr := os.Stat(dir); !os.IsNotExist(statErr) {
		t.Fatalf("no directory should be created on validation failure")
	}
}

func TestScaffoldCommandRejectsNonInteger(t *testing.T) {
	var req scaffold.CloneRequest
	if _, err := execute(t, testCLI(&req), "", "--columns", "abc", "--rows", "8"); err == nil {
		t.Fatalf("expected error for non-integer columns")
	}
}

func TestScaffoldCommandRequiresDimensions(t *testing.T) {
	var req scaffold.CloneRequest
	if _, err := execute(t, testCLI(&req), "", "--columns", "4"); err == nil {
		t.Fatalf("expected error when --rows is missing")
	}
}

func TestScaffoldCommandRejectsUnknownAuth(t *testing.T) {
	var req scaffold.CloneRequest
	_, err := execute(t, testCLI(&req), "", "-x", "2", "-y", "2", "-d", t.TempDir(), "--auth", "password")
	if err == nil {
		t.Fatalf("expected error for unknown auth method")
	}
}

func TestAuthSetFromStdin(t *testing.T) {
	keyring.MockInit()
	var req scaffold.CloneRequest

	out, err := execute(t, testCLI(&req), "secret-token\n", "auth", "set", "--token-stdin")
	if err != nil {
		t.Fatalf("auth set returned error: %v", err)
	}
	if !strings.Contains(out, "token: stored") {
		t.Fatalf("unexpected output %q", out)
	}
	got, err := keyring.Get("create-grid-selector", "template-token-v1")
	if err != nil || got != "secret-token" {
		t.Fatalf("token not stored: %q, %v", got, err)
	}
}

func TestAuthSetRequiresOneSource(t *testing.T) {
	keyring.MockInit()
	var req scaffold.CloneRequest
	if _, err := execute(t, testCLI(&req), "", "auth", "set"); err == nil {
		t.Fatalf("expected error without a token source")
	}
	if _, err := execute(t, testCLI(&req), "x", "auth", "set", "--token", "a", "--token-stdin"); err == nil {
		t.Fatalf("expected error with two token sources")
	}
}

func TestVersionCommand(t *testing.T) {
	var req scaffold.CloneRequest
	out, err := execute(t, testCLI(&req), "", "version")
	if err != nil {
		t.Fatalf("version returned error: %v", err)
	}
	if strings.TrimSpace(out) != "create-grid-selector dev" {
		t.Fatalf("unexpected version output %q", out)
	}
}
