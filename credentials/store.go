package credentials

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/kbukum/wordcab-go/errors"
)

// EnvAPIKey is the environment variable consulted when no explicit API key
// is provided.
const EnvAPIKey = "WORDCAB_API_KEY"

const (
	tokenDirPerm  = 0o700
	tokenFilePerm = 0o600
)

// Store persists an account's API token on disk. The token file holds a
// single "email:token" line under the user's home directory.
type Store struct {
	path string
}

// NewStore returns a store rooted at ~/.wordcab/token.
func NewStore() (*Store, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "cannot resolve home directory").WithCause(err)
	}
	return NewStoreAt(filepath.Join(home, ".wordcab", "token")), nil
}

// NewStoreAt returns a store backed by the given file path.
func NewStoreAt(path string) *Store {
	return &Store{path: path}
}

// Path returns the token file location.
func (s *Store) Path() string { return s.path }

// Save writes the email/token pair, creating the parent directory if needed.
// The file is written with owner-only permissions.
func (s *Store) Save(email, token string) error {
	if email == "" {
		return errors.InvalidInput("email", "must not be empty")
	}
	if token == "" {
		return errors.InvalidInput("token", "must not be empty")
	}
	if err := os.MkdirAll(filepath.Dir(s.path), tokenDirPerm); err != nil {
		return errors.New(errors.ErrCodeInvalidInput, "cannot create credentials directory").WithCause(err)
	}
	data := email + ":" + token
	if err := os.WriteFile(s.path, []byte(data), tokenFilePerm); err != nil {
		return errors.New(errors.ErrCodeInvalidInput, "cannot write token file").WithCause(err)
	}
	return nil
}

// Load reads the stored email/token pair. A missing or malformed file yields
// a missing-API-key error.
func (s *Store) Load() (email, token string, err error) {
	data, readErr := os.ReadFile(s.path)
	if readErr != nil {
		return "", "", errors.MissingAPIKey().WithCause(readErr)
	}
	line := strings.TrimSpace(string(data))
	idx := strings.Index(line, ":")
	if idx <= 0 || idx == len(line)-1 {
		return "", "", errors.MissingAPIKey().WithDetail("path", s.path)
	}
	return line[:idx], line[idx+1:], nil
}

// Remove deletes the stored credentials. Removing credentials that are not
// there is not an error.
func (s *Store) Remove() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return errors.New(errors.ErrCodeInvalidInput, "cannot remove token file").WithCause(err)
	}
	return nil
}

// ResolveAPIKey resolves the API key to use, in order of precedence:
// the explicit value, the WORDCAB_API_KEY environment variable, then the
// stored token. Returns a missing-API-key error when none is available.
func ResolveAPIKey(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	if key := os.Getenv(EnvAPIKey); key != "" {
		return key, nil
	}
	store, err := NewStore()
	if err != nil {
		return "", err
	}
	_, token, err := store.Load()
	if err != nil {
		return "", err
	}
	return token, nil
}
