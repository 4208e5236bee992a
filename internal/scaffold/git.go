package scaffold

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Vansh-Raja/create-grid-selector/internal/config"
	"github.com/Vansh-Raja/create-grid-selector/internal/securestore"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/transport"
	"github.com/go-git/go-git/v5/plumbing/transport/http"
	"github.com/go-git/go-git/v5/plumbing/transport/ssh"
	"golang.org/x/crypto/ssh/knownhosts"
)

// CloneRequest describes the template repository to fetch.
type CloneRequest struct {
	URL            string
	Ref            string
	Auth           config.AuthMethod
	SSHKeyPath     string
	KnownHostsPath string
	Progress       io.Writer
}

// Cloner fetches a repository into dst.
type Cloner interface {
	Clone(ctx context.Context, dst string, req CloneRequest) error
}

// GitCloner clones with go-git, so no git binary is required.
type GitCloner struct {
	// TokenSource returns the HTTPS token for AuthToken. Defaults to the
	// secure store.
	TokenSource func() (string, error)
}

// NewGitCloner creates a cloner reading tokens from the secure store.
func NewGitCloner() *GitCloner {
	return &GitCloner{TokenSource: securestore.GetTemplateToken}
}

// Clone implements Cloner.
func (c *GitCloner) Clone(ctx context.Context, dst string, req CloneRequest) error {
	auth, err := c.authFor(req)
	if err != nil {
		return err
	}

	opts := &git.CloneOptions{
		URL:      req.URL,
		Auth:     auth,
		Progress: req.Progress,
	}
	if req.Ref != "" {
		opts.ReferenceName = plumbing.NewBranchReferenceName(req.Ref)
		opts.SingleBranch = true
	}

	if _, err := git.PlainCloneContext(ctx, dst, false, opts); err != nil {
		// Leave no half-written checkout behind; a rerun would refuse it.
		_ = os.RemoveAll(dst)
		if errors.Is(err, transport.ErrEmptyRemoteRepository) {
			return fmt.Errorf("failed to clone %s: remote repository is empty", req.URL)
		}
		return fmt.Errorf("failed to clone %s: %w", req.URL, err)
	}
	return nil
}

// authFor returns the authentication method for the request
func (c *GitCloner) authFor(req CloneRequest) (transport.AuthMethod, error) {
	switch req.Auth {
	case "", config.AuthNone:
		return nil, nil
	case config.AuthToken:
		if c.TokenSource == nil {
			return nil, fmt.Errorf("no token source configured")
		}
		token, err := c.TokenSource()
		if err != nil {
			return nil, fmt.Errorf("failed to load template token: %w", err)
		}
		token = strings.TrimSpace(token)
		if token == "" {
			return nil, fmt.Errorf("template token is empty")
		}
		// Hosts ignore the username for token auth but require it to be set.
		return &http.BasicAuth{Username: "git", Password: token}, nil
	case config.AuthSSHKey:
		return sshAuth(req.SSHKeyPath, req.KnownHostsPath)
	default:
		return nil, fmt.Errorf("unknown auth method: %s", req.Auth)
	}
}

func sshAuth(keyPath, knownHostsPath string) (transport.AuthMethod, error) {
	if keyPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}

		// Try common key locations
		keyPaths := []string{
			filepath.Join(home, ".ssh", "id_ed25519"),
			filepath.Join(home, ".ssh", "id_rsa"),
			filepath.Join(home, ".ssh", "id_ecdsa"),
		}
		for _, p := range keyPaths {
			if _, err := os.Stat(p); err == nil {
				keyPath = p
				break
			}
		}
	}
	if keyPath == "" {
		return nil, fmt.Errorf("no SSH key found")
	}

	auth, err := ssh.NewPublicKeysFromFile("git", keyPath, "")
	if err != nil {
		return nil, fmt.Errorf("failed to load SSH key: %w", err)
	}
	if knownHostsPath != "" {
		cb, err := knownhosts.New(knownHostsPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load known_hosts: %w", err)
		}
		auth.HostKeyCallback = cb
	}
	return auth, nil
}
