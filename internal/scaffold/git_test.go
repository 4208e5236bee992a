package scaffold

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Vansh-Raja/create-grid-selector/internal/config"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/transport/http"
)

// newTemplateRepo creates a local repository with one commit holding
// src/components.js and returns its path and branch name.
func newTemplateRepo(t *testing.T) (string, string) {
	t.Helper()
	src := t.TempDir()
	repo, err := git.PlainInit(src, false)
	if err != nil {
		t.Fatalf("PlainInit returned error: %v", err)
	}
	if err := os.MkdirAll(filepath.Join(src, "src"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(src, "src", "components.js"), []byte("export * from \"./Header\";\n"), 0644); err != nil {
		t.Fatal(err)
	}
	wt, err := repo.Worktree()
	if err != nil {
		t.Fatalf("Worktree returned error: %v", err)
	}
	if _, err := wt.Add("src/components.js"); err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	_, err = wt.Commit("starter kit", &git.CommitOptions{
		Author: &object.Signature{Name: "Starter", Email: "starter@example.com", When: time.Now()},
	})
	if err != nil {
		t.Fatalf("Commit returned error: %v", err)
	}
	head, err := repo.Head()
	if err != nil {
		t.Fatalf("Head returned error: %v", err)
	}
	return src, head.Name().Short()
}

func TestGitClonerClonesLocalRepository(t *testing.T) {
	src, branch := newTemplateRepo(t)

	for _, ref := range []string{"", branch} {
		dst := filepath.Join(t.TempDir(), "starter-kit")
		err := (&GitCloner{}).Clone(context.Background(), dst, CloneRequest{URL: src, Ref: ref})
		if err != nil {
			t.Fatalf("Clone(ref=%q) returned error: %v", ref, err)
		}
		b, err := os.ReadFile(filepath.Join(dst, "src", "components.js"))
		if err != nil {
			t.Fatalf("cloned file missing for ref %q: %v", ref, err)
		}
		if string(b) != "export * from \"./Header\";\n" {
			t.Fatalf("unexpected cloned content %q", b)
		}
	}
}

func TestGitClonerUnknownRefRemovesCheckout(t *testing.T) {
	src, _ := newTemplateRepo(t)
	dst := filepath.Join(t.TempDir(), "starter-kit")

	err := (&GitCloner{}).Clone(context.Background(), dst, CloneRequest{URL: src, Ref: "no-such-branch"})
	if err == nil {
		t.Fatalf("expected error for unknown ref")
	}
	if _, statErr := os.Stat(dst); !os.IsNotExist(statErr) {
		t.Fatalf("expected %s to be removed after failed clone, got %v", dst, statErr)
	}
}

func TestAuthForNone(t *testing.T) {
	c := &GitCloner{}
	auth, err := c.authFor(CloneRequest{Auth: config.AuthNone})
	if err != nil || auth != nil {
		t.Fatalf("expected no auth, got %v, %v", auth, err)
	}
}

func TestAuthForToken(t *testing.T) {
	c := &GitCloner{TokenSource: func() (string, error) { return " tok \n", nil }}
	auth, err := c.authFor(CloneRequest{Auth: config.AuthToken})
	if err != nil {
		t.Fatalf("authFor returned error: %v", err)
	}
	basic, ok := auth.(*http.BasicAuth)
	if !ok {
		t.Fatalf("expected basic auth, got %T", auth)
	}
	if basic.Password != "tok" || basic.Username == "" {
		t.Fatalf("unexpected credentials %+v", basic)
	}
}

func TestAuthForTokenErrors(t *testing.T) {
	missing := errors.New("not found")
	c := &GitCloner{TokenSource: func() (string, error) { return "", missing }}
	if _, err := c.authFor(CloneRequest{Auth: config.AuthToken}); !errors.Is(err, missing) {
		t.Fatalf("expected wrapped token error, got %v", err)
	}

	c = &GitCloner{TokenSource: func() (string, error) { return "  ", nil }}
	if _, err := c.authFor(CloneRequest{Auth: config.AuthToken}); err == nil {
		t.Fatalf("expected error for empty token")
	}
}

func TestAuthForSSHKeyMissingFile(t *testing.T) {
	c := &GitCloner{}
	_, err := c.authFor(CloneRequest{Auth: config.AuthSSHKey, SSHKeyPath: filepath.Join(t.TempDir(), "id_missing")})
	if err == nil {
		t.Fatalf("expected error for missing key file")
	}
}

func TestAuthForUnknownMethod(t *testing.T) {
	c := &GitCloner{}
	if _, err := c.authFor(CloneRequest{Auth: "password"}); err == nil {
		t.Fatalf("expected error for unknown auth method")
	}
}
