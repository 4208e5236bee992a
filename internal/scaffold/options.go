package scaffold

import (
	"errors"
	"path"
	"strings"

	"github.com/Vansh-Raja/create-grid-selector/internal/config"
)

var (
	ErrInvalidColumns = errors.New("columns must be a positive integer")
	ErrInvalidRows    = errors.New("rows must be a positive integer")
	ErrCheckoutExists = errors.New("checkout directory already exists and is not empty")
)

// Options configures one scaffold run.
type Options struct {
	Columns int
	Rows    int
	Dir     string

	RepoURL        string
	Ref            string
	Auth           config.AuthMethod
	SSHKeyPath     string
	KnownHostsPath string
}

// Validate checks the grid size. Nothing touches the filesystem before it
// passes.
func (o Options) Validate() error {
	if o.Columns < 1 {
		return ErrInvalidColumns
	}
	if o.Rows < 1 {
		return ErrInvalidRows
	}
	return nil
}

func (o Options) withDefaults() Options {
	if strings.TrimSpace(o.Dir) == "" {
		o.Dir = "."
	}
	if strings.TrimSpace(o.RepoURL) == "" {
		o.RepoURL = config.DefaultTemplateRepo
	}
	if o.Auth == "" {
		o.Auth = config.AuthNone
	}
	return o
}

// RepoName returns the directory a clone of url lands in, mirroring git's
// own naming: the last path element without a ".git" suffix.
func RepoName(url string) string {
	u := strings.TrimRight(strings.TrimSpace(url), "/")
	u = strings.ReplaceAll(u, ":", "/")
	name := strings.TrimSuffix(path.Base(u), ".git")
	if name == "" || name == "." || name == "/" {
		return "starter-kit"
	}
	return name
}
