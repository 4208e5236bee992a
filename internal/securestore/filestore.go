package securestore

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/Vansh-Raja/create-grid-selector/internal/config"
)

const tokenFileName = "template-token"

// tokenFile holds the template token when no OS keyring is available.
type tokenFile struct {
	path string
}

func getTokenFile() (*tokenFile, error) {
	dir, err := config.DataDir()
	if err != nil {
		return nil, err
	}
	return &tokenFile{path: filepath.Join(dir, tokenFileName)}, nil
}

func (tf *tokenFile) read() (string, error) {
	b, err := os.ReadFile(tf.path)
	if errors.Is(err, os.ErrNotExist) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	token := strings.TrimSpace(string(b))
	if token == "" {
		return "", ErrNotFound
	}
	return token, nil
}

func (tf *tokenFile) write(token string) error {
	if err := os.MkdirAll(filepath.Dir(tf.path), 0700); err != nil {
		return err
	}
	tmp := tf.path + ".tmp"
	if err := os.WriteFile(tmp, []byte(token+"\n"), 0600); err != nil {
		return err
	}
	return os.Rename(tmp, tf.path)
}

func (tf *tokenFile) remove() error {
	err := os.Remove(tf.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}
