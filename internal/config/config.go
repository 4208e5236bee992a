package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
)

// DefaultTemplateRepo is the starter kit every project is generated from.
const DefaultTemplateRepo = "https://github.com/symbo-ls/starter-kit"

// AuthMethod represents how the template repository is authenticated.
type AuthMethod string

const (
	AuthNone   AuthMethod = "none"
	AuthToken  AuthMethod = "token"
	AuthSSHKey AuthMethod = "ssh_key"
)

// ParseAuthMethod returns the auth method for s and whether it is known.
func ParseAuthMethod(s string) (AuthMethod, bool) {
	switch m := AuthMethod(s); m {
	case AuthNone, AuthToken, AuthSSHKey:
		return m, true
	default:
		return "", false
	}
}

type Config struct {
	Version int `json:"version"`

	Template struct {
		RepoURL        string     `json:"repo_url"`
		Ref            string     `json:"ref"`
		AuthMethod     AuthMethod `json:"auth_method"`
		SSHKeyPath     string     `json:"ssh_key_path"`
		KnownHostsPath string     `json:"known_hosts_path"`
	} `json:"template"`

	Preview struct {
		Rows    int  `json:"rows"`
		Columns int  `json:"columns"`
		VimKeys bool `json:"vim_keys"`
	} `json:"preview"`
}

func Default() Config {
	var c Config
	c.Version = 1

	c.Template.RepoURL = DefaultTemplateRepo
	c.Template.Ref = "" // empty means the remote's default branch
	c.Template.AuthMethod = AuthNone
	c.Template.SSHKeyPath = ""
	c.Template.KnownHostsPath = ""

	c.Preview.Rows = 8
	c.Preview.Columns = 16
	c.Preview.VimKeys = true
	return c
}

// DataDir returns the base data directory for create-grid-selector.
// Respects GRIDSEL_DATA_DIR env var for testing/custom setups.
func DataDir() (string, error) {
	if dir := os.Getenv("GRIDSEL_DATA_DIR"); dir != "" {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return "", err
		}
		return dir, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "create-grid-selector"), nil
}

func Path() (string, error) {
	dir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

func Load() (Config, error) {
	path, err := Path()
	if err != nil {
		return Default(), err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Default(), err
	}
	c := Default()
	if err := json.Unmarshal(b, &c); err != nil {
		return Default(), err
	}
	c = withDefaults(c)
	return c, nil
}

func Save(c Config) error {
	path, err := Path()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	c = withDefaults(c)
	b, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0600); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

func withDefaults(c Config) Config {
	def := Default()
	if c.Version == 0 {
		c.Version = def.Version
	}

	if c.Template.RepoURL == "" {
		c.Template.RepoURL = def.Template.RepoURL
	}
	if _, ok := ParseAuthMethod(string(c.Template.AuthMethod)); !ok {
		c.Template.AuthMethod = def.Template.AuthMethod
	}

	// Grid sizes: normalize invalid values.
	if c.Preview.Rows <= 0 {
		c.Preview.Rows = def.Preview.Rows
	}
	if c.Preview.Columns <= 0 {
		c.Preview.Columns = def.Preview.Columns
	}
	return c
}

// KnownHostsFile returns the known_hosts file used to verify SSH clones.
// An empty result means no file was found.
func (c *Config) KnownHostsFile() string {
	if c.Template.KnownHostsPath != "" {
		return c.Template.KnownHostsPath
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	p := filepath.Join(home, ".ssh", "known_hosts")
	if _, err := os.Stat(p); err != nil {
		return ""
	}
	return p
}
