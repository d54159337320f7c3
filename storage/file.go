package storage

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/pkg/errors"
)

var _ Port = (*FilePort)(nil)

// FilePort persists each key as a file under a data directory. Writes go
// through a temporary file and rename so a crash never leaves a partially
// written value.
type FilePort struct {
	dir string
	mu  sync.Mutex
}

// NewFilePort creates the data directory if needed and returns a file-backed
// storage port.
func NewFilePort(dir string) (*FilePort, error) {
	if dir == "" {
		return nil, errors.New("[NewFilePort] dir is required")
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, errors.Wrap(err, "[NewFilePort] os.MkdirAll")
	}
	return &FilePort{dir: dir}, nil
}

// Load retrieves a stored value by key.
func (p *FilePort) Load(key string) ([]byte, bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	data, err := os.ReadFile(p.path(key))
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Wrap(err, "[FilePort.Load] os.ReadFile")
	}
	return data, true, nil
}

// Save stores a value, overwriting any previous value for the key.
func (p *FilePort) Save(key string, value []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	target := p.path(key)
	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, value, 0o600); err != nil {
		return errors.Wrap(err, "[FilePort.Save] os.WriteFile")
	}
	if err := os.Rename(tmp, target); err != nil {
		return errors.Wrap(err, "[FilePort.Save] os.Rename")
	}
	return nil
}

// Remove deletes a key. Missing keys are ignored.
func (p *FilePort) Remove(key string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	err := os.Remove(p.path(key))
	if err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "[FilePort.Remove] os.Remove")
	}
	return nil
}

func (p *FilePort) path(key string) string {
	// Keys are dotted partition names, safe as file names.
	name := strings.ReplaceAll(key, string(filepath.Separator), "_")
	return filepath.Join(p.dir, name+".json")
}
