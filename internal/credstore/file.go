// ABOUTME: File-backed credential store under the user config directory
// ABOUTME: Persists credentials as JSON with owner-only permissions

package credstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// FileStore persists credentials as a single JSON file in configDir.
// Tokens are stored in the clear; the file is readable only by its owner.
type FileStore struct {
	mu        sync.Mutex
	configDir string
}

// NewFileStore creates a file store rooted at the given config directory.
func NewFileStore(configDir string) *FileStore {
	return &FileStore{configDir: configDir}
}

// DefaultConfigDir returns the XDG config directory for wayfarer
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "wayfarer")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "wayfarer")
}

// credentialsFile returns the path to the credentials JSON
func (fs *FileStore) credentialsFile() string {
	return filepath.Join(fs.configDir, "credentials.json")
}

func (fs *FileStore) Get(key string) (string, bool, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	values, err := fs.load()
	if err != nil {
		return "", false, err
	}
	value, ok := values[key]
	return value, ok, nil
}

func (fs *FileStore) Set(key, value string) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	values, err := fs.load()
	if err != nil {
		return err
	}
	values[key] = value
	return fs.save(values)
}

// Delete removes a key. An unreadable store is cleared wholesale so that
// clearing always succeeds.
func (fs *FileStore) Delete(key string) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	values, err := fs.load()
	if err != nil {
		if rmErr := os.Remove(fs.credentialsFile()); rmErr != nil && !os.IsNotExist(rmErr) {
			return rmErr
		}
		return nil
	}
	if _, ok := values[key]; !ok {
		return nil
	}
	delete(values, key)
	return fs.save(values)
}

// load reads the credentials file. A missing file yields an empty map.
func (fs *FileStore) load() (map[string]string, error) {
	data, err := os.ReadFile(fs.credentialsFile())
	if os.IsNotExist(err) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, err
	}

	values := make(map[string]string)
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("corrupt credentials file: %w", err)
	}
	return values, nil
}

// save writes the credentials file with owner-only permissions.
func (fs *FileStore) save(values map[string]string) error {
	if err := os.MkdirAll(fs.configDir, 0700); err != nil {
		return err
	}

	data, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(fs.credentialsFile(), data, 0600)
}
