package securestore

import (
	"errors"
	"strings"

	"github.com/zalando/go-keyring"
)

const (
	serviceName       = "create-grid-selector"
	templateTokenUser = "template-token-v1"
)

// ErrNotFound is returned when no token has been stored.
var ErrNotFound = errors.New("secret not found")

// GetTemplateToken returns the HTTPS token used to clone the template
// repository. The OS keyring is tried first, then the token file written on
// systems without a keyring service.
func GetTemplateToken() (string, error) {
	v, err := keyring.Get(serviceName, templateTokenUser)
	if err == nil {
		return strings.TrimSpace(v), nil
	}

	tf, ferr := getTokenFile()
	if ferr != nil {
		if err == keyring.ErrNotFound {
			return "", ErrNotFound
		}
		return "", err
	}
	return tf.read()
}

// StoreTemplateToken saves the token, falling back to the token file when
// the keyring is unavailable.
func StoreTemplateToken(token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return errors.New("token cannot be empty")
	}
	tf, ferr := getTokenFile()
	if err := keyring.Set(serviceName, templateTokenUser, token); err != nil {
		if ferr != nil {
			return err
		}
		return tf.write(token)
	}
	// A stale fallback copy would resurface if the keyring entry is lost.
	if ferr == nil {
		return tf.remove()
	}
	return nil
}

// ClearTemplateToken removes the token from the keyring and the token file.
// Missing entries are not an error, and neither is an unavailable keyring:
// then the token can only have lived in the file.
func ClearTemplateToken() error {
	kerr := keyring.Delete(serviceName, templateTokenUser)
	tf, ferr := getTokenFile()
	if ferr != nil {
		if kerr == nil || kerr == keyring.ErrNotFound {
			return nil
		}
		return kerr
	}
	return tf.remove()
}
